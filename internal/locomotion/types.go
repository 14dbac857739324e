// Package locomotion implements the physics-tick character controller: it
// turns control input and collision contacts into movement impulses, ground
// and jump state, animation selection and liquid footstep effects.
package locomotion

import (
	"github.com/Faultbox/materialfx/internal/event"
	"github.com/Faultbox/materialfx/pkg/math"
)

// Controls is the input state sampled once per frame by the input layer.
// Yaw and Pitch are in degrees.
type Controls struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Jump    bool

	Yaw   float32
	Pitch float32
}

// Phase is the animation state selected on the last tick.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseMoving
	PhaseJumpStart
	PhaseAirborne
	PhaseFalling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseMoving:
		return "moving"
	case PhaseJumpStart:
		return "jump_start"
	case PhaseAirborne:
		return "airborne"
	case PhaseFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// State is the controller's per-tick movement state.
//
// OnGround and InLiquid are latched by collision events and cleared at the
// end of every tick, so they must be re-asserted before each FixedUpdate.
type State struct {
	OnGround         bool
	InLiquid         bool
	LiquidSurface    math.Vec3
	AirTimer         float32
	JumpArmed        bool
	JumpInProgress   bool
	MoveDir          math.Vec3
	Facing           math.Vec3
	OnMovingPlatform bool
	Phase            Phase
	Clip             string
}

// Body is the character's rigid body.
type Body interface {
	Position() math.Vec3
	LinearVelocity() math.Vec3
	ApplyImpulse(impulse math.Vec3)
}

// RaycastHit is the result of a single ray query.
type RaycastHit struct {
	Hit      bool
	Distance float32
	Normal   math.Vec3
}

// Raycaster answers blocking ray queries against the physics world.
type Raycaster interface {
	Raycast(origin, direction math.Vec3, maxDistance float32, mask uint32) RaycastHit
}

// Animator plays clips on the character's animated model.
type Animator interface {
	PlayExclusive(clip string, layer int, looped bool, fadeTime float32)
	StopLayer(layer int)
	IsAtEnd(clip string) bool
	SetTime(clip string, t float32)
}

// Emitter receives spawn requests for liquid footsteps. *event.Pump
// satisfies it.
type Emitter interface {
	PublishSpawn(event.SpawnEffect)
}

// Deps are the collaborators a Controller runs against. Emitter is
// optional; without it footsteps never spawn effects.
type Deps struct {
	Body      Body
	Raycaster Raycaster
	Animator  Animator
	Emitter   Emitter
}
