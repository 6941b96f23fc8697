package heap

import (
	"math/rand"
	"testing"
)

// BenchmarkUpdateQualityAndPenalty measures the O(log n) arbitrary-entry
// update on a 10000-polygon heap, the operation GETMe sequential performs
// once per accepted transformation.
func BenchmarkUpdateQualityAndPenalty(b *testing.B) {
	const n = 10_000
	rng := rand.New(rand.NewSource(42))
	ratios := make([]float64, n)
	for i := range ratios {
		ratios[i] = rng.Float64()
	}
	h := New(ratios, func(int) bool { return false })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.UpdateQualityAndPenalty(rng.Intn(n), rng.Float64(), rng.Float64()-0.5)
	}
}

// BenchmarkNew measures heap construction from an initial mean-ratio vector.
func BenchmarkNew(b *testing.B) {
	const n = 10_000
	rng := rand.New(rand.NewSource(42))
	ratios := make([]float64, n)
	for i := range ratios {
		ratios[i] = rng.Float64()
	}
	isFixed := func(i int) bool { return i%7 == 0 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = New(ratios, isFixed)
	}
}
