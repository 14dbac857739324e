// Package event carries the per-tick events exchanged between the physics
// host, the locomotion controller and the effect manager.
package event

import (
	"github.com/Faultbox/materialfx/internal/contact"
	"github.com/Faultbox/materialfx/internal/effects"
	"github.com/Faultbox/materialfx/pkg/math"
)

// Kind identifies an event and its payload. Lower kinds are dispatched first
// within a tick.
type Kind uint8

const (
	// KindCollision carries one collision event of the character body.
	// Payload: Collision
	KindCollision Kind = iota

	// KindAnimationTrigger carries a marker reached by the playing clip.
	// Payload: AnimationTrigger
	KindAnimationTrigger

	// KindSpawnEffect asks the effect manager for a new instance.
	// Payload: SpawnEffect
	KindSpawnEffect
)

func (k Kind) String() string {
	switch k {
	case KindCollision:
		return "collision"
	case KindAnimationTrigger:
		return "animation_trigger"
	case KindSpawnEffect:
		return "spawn_effect"
	default:
		return "unknown"
	}
}

// Collision is the payload of KindCollision. Contacts is the packed contact
// buffer as delivered by the physics collaborator.
type Collision struct {
	Contacts []byte
	Other    contact.BodyKind
	// Platform is set when the other body is a moving platform.
	Platform VelocitySource
}

// VelocitySource reports the linear velocity of a body.
type VelocitySource interface {
	LinearVelocity() math.Vec3
}

// AnimationTrigger is the payload of KindAnimationTrigger.
type AnimationTrigger struct {
	Data     string
	Position math.Vec3 // world position of the node named by Data
}

// SpawnEffect is the payload of KindSpawnEffect. Fire and forget.
type SpawnEffect struct {
	Kind     effects.Kind
	Position math.Vec3
	Facing   math.Vec3
}

// Event is a tagged union; only the payload matching Kind is set.
type Event struct {
	Kind      Kind
	Collision *Collision
	Trigger   *AnimationTrigger
	Spawn     *SpawnEffect
}

// NewCollision wraps a collision payload.
func NewCollision(c Collision) Event {
	return Event{Kind: KindCollision, Collision: &c}
}

// NewAnimationTrigger wraps an animation trigger payload.
func NewAnimationTrigger(t AnimationTrigger) Event {
	return Event{Kind: KindAnimationTrigger, Trigger: &t}
}

// NewSpawnEffect wraps a spawn payload.
func NewSpawnEffect(s SpawnEffect) Event {
	return Event{Kind: KindSpawnEffect, Spawn: &s}
}
