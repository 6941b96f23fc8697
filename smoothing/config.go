package smoothing

import "github.com/katalvlaran/getme2d/transform"

// Default configuration values shared by the smoothing algorithms.
const (
	// DefaultMaxIterations bounds algorithms that improve every element
	// within one smoothing step (the Laplacian and simultaneous GETMe
	// variants).
	DefaultMaxIterations = 10_000

	// DefaultQMeanImprovementThreshold terminates a quality-based algorithm
	// once one iteration's improvement of the mean element quality number
	// drops to or below this threshold.
	DefaultQMeanImprovementThreshold = 1.0e-4

	// DefaultSequentialRelaxationParameterRho is GETMe sequential's
	// conservative default relaxation factor, chosen since it repeatedly
	// targets the single worst-quality polygon and must avoid invalidating
	// its neighbors.
	DefaultSequentialRelaxationParameterRho = 0.01

	// DefaultSequentialMaxIterations is much larger than the simultaneous
	// default since GETMe sequential transforms only one polygon per
	// iteration.
	DefaultSequentialMaxIterations = 1_000_000

	// DefaultQualityEvaluationCycleLength iterations form one GETMe
	// sequential quality-evaluation cycle.
	DefaultQualityEvaluationCycleLength = 100

	// DefaultMaxNoImprovementCycles terminates GETMe sequential once this
	// many consecutive cycles produced no q_min* improvement.
	DefaultMaxNoImprovementCycles = 20

	// DefaultPenaltyInvalid, DefaultPenaltyRepeated and DefaultPenaltySuccess
	// are the penalty adjustments GETMe sequential applies to a polygon's
	// heap entry depending on the outcome of transforming it.
	DefaultPenaltyInvalid    = 1.0e-4
	DefaultPenaltyRepeated   = 1.0e-5
	DefaultPenaltySuccess    = 1.0e-3
	defaultWeightExponentEta = 0.0
	defaultSimultaneousRho   = 1.0
)

// BasicLaplaceConfig configures BasicLaplace. MaxSquaredNodeRelocationDistanceThreshold
// is the square of the caller's chosen distance threshold, squared once at
// construction time to avoid repeated square roots in the hot loop.
type BasicLaplaceConfig struct {
	MaxSquaredNodeRelocationDistanceThreshold float64
	MaxIterations                             int
}

// BasicLaplaceOption customizes a BasicLaplaceConfig built by
// NewBasicLaplaceConfig.
type BasicLaplaceOption func(*BasicLaplaceConfig)

// NewBasicLaplaceConfig builds a BasicLaplaceConfig that terminates once the
// largest node relocation distance of an iteration drops to or below
// maxNodeRelocationDistanceThreshold.
func NewBasicLaplaceConfig(maxNodeRelocationDistanceThreshold float64, opts ...BasicLaplaceOption) BasicLaplaceConfig {
	cfg := BasicLaplaceConfig{
		MaxSquaredNodeRelocationDistanceThreshold: maxNodeRelocationDistanceThreshold * maxNodeRelocationDistanceThreshold,
		MaxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithBasicLaplaceMaxIterations overrides the default iteration cap. Panics
// if n <= 0: a non-terminating or already-terminated cap is a programmer
// error, not a runtime condition.
func WithBasicLaplaceMaxIterations(n int) BasicLaplaceOption {
	if n <= 0 {
		panic("smoothing: WithBasicLaplaceMaxIterations requires n > 0")
	}
	return func(c *BasicLaplaceConfig) { c.MaxIterations = n }
}

// SmartLaplaceConfig configures SmartLaplace.
type SmartLaplaceConfig struct {
	QMeanImprovementThreshold float64
	MaxIterations             int
}

// SmartLaplaceOption customizes a SmartLaplaceConfig built by
// NewSmartLaplaceConfig.
type SmartLaplaceOption func(*SmartLaplaceConfig)

// NewSmartLaplaceConfig builds a SmartLaplaceConfig with the package
// defaults (q-mean improvement threshold 1e-4, 10000 max iterations).
func NewSmartLaplaceConfig(opts ...SmartLaplaceOption) SmartLaplaceConfig {
	cfg := SmartLaplaceConfig{
		QMeanImprovementThreshold: DefaultQMeanImprovementThreshold,
		MaxIterations:             DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSmartLaplaceQMeanThreshold overrides the q-mean improvement threshold.
func WithSmartLaplaceQMeanThreshold(threshold float64) SmartLaplaceOption {
	return func(c *SmartLaplaceConfig) { c.QMeanImprovementThreshold = threshold }
}

// WithSmartLaplaceMaxIterations overrides the default iteration cap. Panics
// if n <= 0.
func WithSmartLaplaceMaxIterations(n int) SmartLaplaceOption {
	if n <= 0 {
		panic("smoothing: WithSmartLaplaceMaxIterations requires n > 0")
	}
	return func(c *SmartLaplaceConfig) { c.MaxIterations = n }
}

// BasicGetmeSimultaneousConfig configures BasicGetmeSimultaneous.
type BasicGetmeSimultaneousConfig struct {
	MaxSquaredNodeRelocationDistanceThreshold float64
	MaxIterations                             int
	PolygonTransformations                    []transform.Transformation
}

// BasicGetmeSimultaneousOption customizes a BasicGetmeSimultaneousConfig
// built by NewBasicGetmeSimultaneousConfig.
type BasicGetmeSimultaneousOption func(*BasicGetmeSimultaneousConfig)

// NewBasicGetmeSimultaneousConfig builds a BasicGetmeSimultaneousConfig with
// a regularizing transformation table sized for maxPolygonSize and chosen
// from set.
func NewBasicGetmeSimultaneousConfig(maxNodeRelocationDistanceThreshold float64, maxPolygonSize int, set TransformationSet, opts ...BasicGetmeSimultaneousOption) (BasicGetmeSimultaneousConfig, error) {
	transformations, err := RegularizingTransformations(maxPolygonSize, set)
	if err != nil {
		return BasicGetmeSimultaneousConfig{}, err
	}
	cfg := BasicGetmeSimultaneousConfig{
		MaxSquaredNodeRelocationDistanceThreshold: maxNodeRelocationDistanceThreshold * maxNodeRelocationDistanceThreshold,
		MaxIterations:           DefaultMaxIterations,
		PolygonTransformations:  transformations,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, nil
}

// WithBasicGetmeSimultaneousMaxIterations overrides the default iteration
// cap. Panics if n <= 0.
func WithBasicGetmeSimultaneousMaxIterations(n int) BasicGetmeSimultaneousOption {
	if n <= 0 {
		panic("smoothing: WithBasicGetmeSimultaneousMaxIterations requires n > 0")
	}
	return func(c *BasicGetmeSimultaneousConfig) { c.MaxIterations = n }
}

// GetmeSimultaneousConfig configures GetmeSimultaneous.
type GetmeSimultaneousConfig struct {
	WeightExponentEta         float64
	RelaxationParameterRho    float64
	QMeanImprovementThreshold float64
	MaxIterations             int
	PolygonTransformations    []transform.Transformation
}

// GetmeSimultaneousOption customizes a GetmeSimultaneousConfig built by
// NewGetmeSimultaneousConfig.
type GetmeSimultaneousOption func(*GetmeSimultaneousConfig)

// NewGetmeSimultaneousConfig builds a GetmeSimultaneousConfig with the
// package defaults (eta=0, rho=1, q-mean threshold 1e-4, 10000 max
// iterations) and a regularizing transformation table sized for
// maxPolygonSize.
func NewGetmeSimultaneousConfig(maxPolygonSize int, set TransformationSet, opts ...GetmeSimultaneousOption) (GetmeSimultaneousConfig, error) {
	transformations, err := RegularizingTransformations(maxPolygonSize, set)
	if err != nil {
		return GetmeSimultaneousConfig{}, err
	}
	cfg := GetmeSimultaneousConfig{
		WeightExponentEta:         defaultWeightExponentEta,
		RelaxationParameterRho:    defaultSimultaneousRho,
		QMeanImprovementThreshold: DefaultQMeanImprovementThreshold,
		MaxIterations:             DefaultMaxIterations,
		PolygonTransformations:    transformations,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, nil
}

// WithGetmeSimultaneousWeightExponentEta overrides the weight exponent used
// to favor transforming lower-quality polygons more strongly.
func WithGetmeSimultaneousWeightExponentEta(eta float64) GetmeSimultaneousOption {
	return func(c *GetmeSimultaneousConfig) { c.WeightExponentEta = eta }
}

// WithGetmeSimultaneousRelaxationParameterRho overrides the relaxation
// factor. Panics if rho is outside (0,1].
func WithGetmeSimultaneousRelaxationParameterRho(rho float64) GetmeSimultaneousOption {
	if rho <= 0.0 || rho > 1.0 {
		panic("smoothing: WithGetmeSimultaneousRelaxationParameterRho requires rho in (0,1]")
	}
	return func(c *GetmeSimultaneousConfig) { c.RelaxationParameterRho = rho }
}

// WithGetmeSimultaneousQMeanThreshold overrides the q-mean improvement
// threshold.
func WithGetmeSimultaneousQMeanThreshold(threshold float64) GetmeSimultaneousOption {
	return func(c *GetmeSimultaneousConfig) { c.QMeanImprovementThreshold = threshold }
}

// WithGetmeSimultaneousMaxIterations overrides the default iteration cap.
// Panics if n <= 0.
func WithGetmeSimultaneousMaxIterations(n int) GetmeSimultaneousOption {
	if n <= 0 {
		panic("smoothing: WithGetmeSimultaneousMaxIterations requires n > 0")
	}
	return func(c *GetmeSimultaneousConfig) { c.MaxIterations = n }
}

// GetmeSequentialConfig configures GetmeSequential.
type GetmeSequentialConfig struct {
	RelaxationParameterRho       float64
	MaxIterations                int
	QualityEvaluationCycleLength int
	MaxNoImprovementCycles       int
	PenaltyInvalid               float64
	PenaltyRepeated              float64
	PenaltySuccess               float64
	PolygonTransformations       []transform.Transformation
}

// GetmeSequentialOption customizes a GetmeSequentialConfig built by
// NewGetmeSequentialConfig.
type GetmeSequentialOption func(*GetmeSequentialConfig)

// NewGetmeSequentialConfig builds a GetmeSequentialConfig with the package
// defaults and a regularizing transformation table sized for maxPolygonSize.
func NewGetmeSequentialConfig(maxPolygonSize int, set TransformationSet, opts ...GetmeSequentialOption) (GetmeSequentialConfig, error) {
	transformations, err := RegularizingTransformations(maxPolygonSize, set)
	if err != nil {
		return GetmeSequentialConfig{}, err
	}
	cfg := GetmeSequentialConfig{
		RelaxationParameterRho:       DefaultSequentialRelaxationParameterRho,
		MaxIterations:                DefaultSequentialMaxIterations,
		QualityEvaluationCycleLength: DefaultQualityEvaluationCycleLength,
		MaxNoImprovementCycles:       DefaultMaxNoImprovementCycles,
		PenaltyInvalid:               DefaultPenaltyInvalid,
		PenaltyRepeated:              DefaultPenaltyRepeated,
		PenaltySuccess:               DefaultPenaltySuccess,
		PolygonTransformations:       transformations,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, nil
}

// WithGetmeSequentialRelaxationParameterRho overrides the relaxation factor.
// Panics if rho is outside (0,1].
func WithGetmeSequentialRelaxationParameterRho(rho float64) GetmeSequentialOption {
	if rho <= 0.0 || rho > 1.0 {
		panic("smoothing: WithGetmeSequentialRelaxationParameterRho requires rho in (0,1]")
	}
	return func(c *GetmeSequentialConfig) { c.RelaxationParameterRho = rho }
}

// WithGetmeSequentialMaxIterations overrides the default iteration cap.
// Panics if n <= 0.
func WithGetmeSequentialMaxIterations(n int) GetmeSequentialOption {
	if n <= 0 {
		panic("smoothing: WithGetmeSequentialMaxIterations requires n > 0")
	}
	return func(c *GetmeSequentialConfig) { c.MaxIterations = n }
}

// WithGetmeSequentialQualityEvaluationCycleLength overrides the number of
// iterations forming one quality-evaluation cycle. Panics if n <= 0.
func WithGetmeSequentialQualityEvaluationCycleLength(n int) GetmeSequentialOption {
	if n <= 0 {
		panic("smoothing: WithGetmeSequentialQualityEvaluationCycleLength requires n > 0")
	}
	return func(c *GetmeSequentialConfig) { c.QualityEvaluationCycleLength = n }
}

// WithGetmeSequentialMaxNoImprovementCycles overrides the number of
// consecutive no-improvement cycles that trigger termination. Panics if
// n <= 0.
func WithGetmeSequentialMaxNoImprovementCycles(n int) GetmeSequentialOption {
	if n <= 0 {
		panic("smoothing: WithGetmeSequentialMaxNoImprovementCycles requires n > 0")
	}
	return func(c *GetmeSequentialConfig) { c.MaxNoImprovementCycles = n }
}

// WithGetmeSequentialPenalties overrides the three penalty adjustments
// applied to a polygon's heap entry.
func WithGetmeSequentialPenalties(invalid, repeated, success float64) GetmeSequentialOption {
	return func(c *GetmeSequentialConfig) {
		c.PenaltyInvalid = invalid
		c.PenaltyRepeated = repeated
		c.PenaltySuccess = success
	}
}

// GetmeConfig configures the combined Getme algorithm: GetmeSimultaneous run
// to completion, its result mesh fed into GetmeSequential.
type GetmeConfig struct {
	Simultaneous GetmeSimultaneousConfig
	Sequential   GetmeSequentialConfig
}

// NewGetmeConfig builds a GetmeConfig whose two phases share the same
// maximal polygon size and transformation set.
func NewGetmeConfig(maxPolygonSize int, set TransformationSet) (GetmeConfig, error) {
	sim, err := NewGetmeSimultaneousConfig(maxPolygonSize, set)
	if err != nil {
		return GetmeConfig{}, err
	}
	seq, err := NewGetmeSequentialConfig(maxPolygonSize, set)
	if err != nil {
		return GetmeConfig{}, err
	}
	return GetmeConfig{Simultaneous: sim, Sequential: seq}, nil
}

// NewGetmeConfigFromParts builds a GetmeConfig from independently
// constructed phase configurations, e.g. ones using different
// TransformationSets or per-phase overrides.
func NewGetmeConfigFromParts(sim GetmeSimultaneousConfig, seq GetmeSequentialConfig) GetmeConfig {
	return GetmeConfig{Simultaneous: sim, Sequential: seq}
}
