// Package contact decodes the contact points of a single collision event and
// classifies them as ground or liquid contacts.
package contact

import (
	"github.com/Faultbox/materialfx/pkg/math"
)

// Headroom is how far above the body centre a contact may sit and still count.
// Contacts higher than this are overhead and ignored.
const Headroom = 1.0

// GroundNormalY is the minimum normal Y component of a ground contact.
const GroundNormalY = 0.75

// Sample is one contact point of a collision event.
type Sample struct {
	Position math.Vec3
	Normal   math.Vec3
	Distance float32
	Impulse  float32
}

// BodyKind describes the other body of a collision event.
type BodyKind uint8

const (
	// Solid is a regular colliding body.
	Solid BodyKind = iota
	// LiquidTrigger is a non-colliding volume on the liquid layer.
	LiquidTrigger
	// OtherTrigger is any other non-colliding volume.
	OtherTrigger
)

func (k BodyKind) String() string {
	switch k {
	case Solid:
		return "solid"
	case LiquidTrigger:
		return "liquid"
	case OtherTrigger:
		return "trigger"
	default:
		return "unknown"
	}
}

// Verdict is the classification of one collision event.
// LiquidSurface is only meaningful when IsLiquid is set.
type Verdict struct {
	IsGround      bool
	IsLiquid      bool
	LiquidSurface math.Vec3
}

// Classify inspects the contacts of one collision event against a body whose
// centre is at bodyCenterY. It never mutates caller state.
func Classify(samples []Sample, bodyCenterY float32, other BodyKind) Verdict {
	var v Verdict

	if other == OtherTrigger {
		return v
	}

	for _, s := range samples {
		if s.Position.Y >= bodyCenterY+Headroom {
			continue
		}

		if other == LiquidTrigger {
			v.IsLiquid = true
			v.LiquidSurface = s.Position
			return v
		}

		if s.Normal.Y > GroundNormalY {
			v.IsGround = true
		}
	}

	return v
}
