// Package distortion perturbs mesh node positions with bounded random
// displacements, for generating irregular test meshes and stress-testing
// the smoothing package's ability to recover geometric quality.
//
// Randomness is never hidden behind a package-level global: every function
// here takes an explicit *rand.Rand, so tests and benchmarks get
// reproducible perturbation by constructing the *rand.Rand from a fixed
// seed.
package distortion
