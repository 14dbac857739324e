package effects

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind selects an effect's spawn and update behavior. The numeric values
// match the splash type numbers used by existing template files.
type Kind int

const (
	KindInvalid Kind = iota
	KindWater
	KindRipple
	KindWaterfallSplash
	KindLavaBubble
	kindCount
)

var kindNames = [...]string{
	KindInvalid:         "invalid",
	KindWater:           "water",
	KindRipple:          "ripple",
	KindWaterfallSplash: "waterfall_splash",
	KindLavaBubble:      "lava_bubble",
}

// Valid reports whether k is one of the four spawnable kinds.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindCount
}

func (k Kind) String() string {
	if k >= KindInvalid && k < kindCount {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind accepts a kind name or its number.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		return Kind(n), nil
	}
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return KindInvalid, fmt.Errorf("unknown effect kind %q", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: effect kind must be a scalar", value.Line)
	}
	parsed, err := ParseKind(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = parsed
	return nil
}

// FaceCameraMode is how a billboard is oriented towards the camera.
type FaceCameraMode uint8

const (
	FaceCameraNone FaceCameraMode = iota
	FaceCameraRotateXYZ
	FaceCameraRotateY
	FaceCameraLookAtXYZ
	FaceCameraLookAtY
	FaceCameraLookAtMixed
	FaceCameraDirection
)

var faceCameraNames = [...]string{
	FaceCameraNone:        "none",
	FaceCameraRotateXYZ:   "rotate_xyz",
	FaceCameraRotateY:     "rotate_y",
	FaceCameraLookAtXYZ:   "lookat_xyz",
	FaceCameraLookAtY:     "lookat_y",
	FaceCameraLookAtMixed: "lookat_mixed",
	FaceCameraDirection:   "direction",
}

func (m FaceCameraMode) String() string {
	if int(m) < len(faceCameraNames) {
		return faceCameraNames[m]
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *FaceCameraMode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: face camera mode must be a scalar", value.Line)
	}
	s := strings.ToLower(strings.TrimSpace(value.Value))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= len(faceCameraNames) {
			return fmt.Errorf("line %d: face camera mode %d out of range", value.Line, n)
		}
		*m = FaceCameraMode(n)
		return nil
	}
	for i, name := range faceCameraNames {
		if name == s {
			*m = FaceCameraMode(i)
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown face camera mode %q", value.Line, value.Value)
}
