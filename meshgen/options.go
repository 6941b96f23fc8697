package meshgen

import "github.com/katalvlaran/getme2d/vec2"

// config holds the resolved parameters shared by every constructor in this
// package. Unexported: callers only ever see Option values.
type config struct {
	center        vec2.Vector2
	outerRadius   float64
	innerRadius   float64
	cellSize      float64
	fixedBoundary bool
}

func newConfig() config {
	return config{
		center:        vec2.Vector2{},
		outerRadius:   1.0,
		innerRadius:   0.5,
		cellSize:      1.0,
		fixedBoundary: true,
	}
}

// Option customizes a meshgen constructor's resolved config before mesh
// construction begins.
type Option func(*config)

// WithCenter places the generated mesh's center at c instead of the origin.
// For RectangularGrid, c is the position of node 0 (the grid's bottom-left
// corner), not the grid's midpoint.
func WithCenter(c vec2.Vector2) Option {
	return func(cfg *config) { cfg.center = c }
}

// WithOuterRadius sets the outer rim radius used by RegularPolygonFan and
// PolygonRing. Panics if radius is not strictly positive.
func WithOuterRadius(radius float64) Option {
	if radius <= 0.0 {
		panic("meshgen: WithOuterRadius(<=0)")
	}
	return func(cfg *config) { cfg.outerRadius = radius }
}

// WithInnerRadius sets PolygonRing's inner rim radius. Panics if radius is
// not strictly positive.
func WithInnerRadius(radius float64) Option {
	if radius <= 0.0 {
		panic("meshgen: WithInnerRadius(<=0)")
	}
	return func(cfg *config) { cfg.innerRadius = radius }
}

// WithCellSize sets RectangularGrid's node spacing. Panics if size is not
// strictly positive.
func WithCellSize(size float64) Option {
	if size <= 0.0 {
		panic("meshgen: WithCellSize(<=0)")
	}
	return func(cfg *config) { cfg.cellSize = size }
}

// WithFixedBoundary controls whether the mesh's outer boundary nodes are
// marked fixed. Defaults to true: a mesh with no fixed boundary has nothing
// anchoring smoothing algorithms and will tend to collapse toward its
// centroid.
func WithFixedBoundary(fixed bool) Option {
	return func(cfg *config) { cfg.fixedBoundary = fixed }
}

func resolve(opts []Option) config {
	cfg := newConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
