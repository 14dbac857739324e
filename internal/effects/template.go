// Package effects loads effect templates and runs the short-lived effect
// instances spawned from them.
package effects

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/materialfx/pkg/math"
)

// Template is the immutable description of one effect kind.
type Template struct {
	Name       string
	Kind       Kind
	Asset      string
	DurationMs uint32
	ScaleRate  math.Vec2 // per-tick billboard size multiplier
	AlphaRate  float32   // per-tick alpha multiplier
	Scale      math.Vec2 // initial billboard size
	FaceCamera FaceCameraMode
}

// templateDoc is a template file as written on disk.
type templateDoc struct {
	Asset      string         `yaml:"asset"`
	Kind       Kind           `yaml:"kind"`
	DurationMs uint32         `yaml:"duration_ms"`
	ScaleRate  []float32      `yaml:"scale_rate"`
	AlphaRate  *float32       `yaml:"alpha_rate"`
	Scale      []float32      `yaml:"scale"`
	FaceCamera FaceCameraMode `yaml:"face_camera"`
}

var (
	errNoAsset     = errors.New("asset must not be empty")
	errInvalidKind = errors.New("kind must be one of water, ripple, waterfall_splash, lava_bubble")
)

// parseTemplate decodes and validates one template file. Missing rate and
// scale fields default to identity values.
func parseTemplate(name string, data []byte) (*Template, error) {
	var doc templateDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if !doc.Kind.Valid() {
		return nil, fmt.Errorf("%w (got %s)", errInvalidKind, doc.Kind)
	}
	if doc.Asset == "" {
		return nil, errNoAsset
	}

	scaleRate, err := vec2Field("scale_rate", doc.ScaleRate)
	if err != nil {
		return nil, err
	}
	scale, err := vec2Field("scale", doc.Scale)
	if err != nil {
		return nil, err
	}

	alpha := float32(1)
	if doc.AlphaRate != nil {
		alpha = *doc.AlphaRate
	}

	return &Template{
		Name:       name,
		Kind:       doc.Kind,
		Asset:      doc.Asset,
		DurationMs: doc.DurationMs,
		ScaleRate:  scaleRate,
		AlphaRate:  alpha,
		Scale:      scale,
		FaceCamera: doc.FaceCamera,
	}, nil
}

// vec2Field reads [x, y] or [x, y, z]; z is dropped.
func vec2Field(field string, v []float32) (math.Vec2, error) {
	switch len(v) {
	case 0:
		return math.Vec2{X: 1, Y: 1}, nil
	case 2, 3:
		return math.Vec2{X: v[0], Y: v[1]}, nil
	default:
		return math.Vec2{}, fmt.Errorf("%s: expected 2 or 3 components, got %d", field, len(v))
	}
}
