package meshgen

import (
	"fmt"
	"io"

	"github.com/katalvlaran/getme2d/vec2"
	"gopkg.in/yaml.v3"
)

// Preset is a YAML-serializable bundle of meshgen Option values, letting a
// caller (cmd/getme2d, a test fixture) keep named mesh-generation presets in
// a config file instead of hardcoding constructor arguments. Any field left
// at its YAML zero value is treated as "use the constructor's default" and
// produces no Option, except FixedBoundary, which is a pointer so an
// explicit `false` can be told apart from an absent key.
type Preset struct {
	CenterX       float64 `yaml:"center_x"`
	CenterY       float64 `yaml:"center_y"`
	OuterRadius   float64 `yaml:"outer_radius"`
	InnerRadius   float64 `yaml:"inner_radius"`
	CellSize      float64 `yaml:"cell_size"`
	FixedBoundary *bool   `yaml:"fixed_boundary"`
}

// LoadPreset decodes a single Preset document from r.
func LoadPreset(r io.Reader) (Preset, error) {
	var p Preset
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return Preset{}, fmt.Errorf("meshgen: decode preset: %w", err)
	}
	return p, nil
}

// Options resolves p to the Option slice its non-zero fields describe, in
// the order meshgen's own option constructors validate them.
func (p Preset) Options() []Option {
	var opts []Option
	if p.CenterX != 0.0 || p.CenterY != 0.0 {
		opts = append(opts, WithCenter(vec2.Vector2{X: p.CenterX, Y: p.CenterY}))
	}
	if p.OuterRadius != 0.0 {
		opts = append(opts, WithOuterRadius(p.OuterRadius))
	}
	if p.InnerRadius != 0.0 {
		opts = append(opts, WithInnerRadius(p.InnerRadius))
	}
	if p.CellSize != 0.0 {
		opts = append(opts, WithCellSize(p.CellSize))
	}
	if p.FixedBoundary != nil {
		opts = append(opts, WithFixedBoundary(*p.FixedBoundary))
	}
	return opts
}
