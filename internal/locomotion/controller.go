package locomotion

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/materialfx/internal/contact"
	"github.com/Faultbox/materialfx/internal/effects"
	"github.com/Faultbox/materialfx/internal/event"
	"github.com/Faultbox/materialfx/internal/fault"
	"github.com/Faultbox/materialfx/internal/logger"
	"github.com/Faultbox/materialfx/pkg/math"
)

// Controller drives one character. It owns its State exclusively and is
// not safe for concurrent use.
type Controller struct {
	body   Body
	ray    Raycaster
	anim   Animator
	emit   Emitter
	tuning Tuning
	log    *zap.Logger

	state    State
	platform event.VelocitySource
}

// New creates a controller. A missing body, raycaster or animator is a
// *fault.PreconditionError; the controller cannot run without them.
func New(deps Deps, tuning Tuning, log *zap.Logger) (*Controller, error) {
	switch {
	case deps.Body == nil:
		return nil, &fault.PreconditionError{Component: "locomotion", Missing: "body"}
	case deps.Raycaster == nil:
		return nil, &fault.PreconditionError{Component: "locomotion", Missing: "raycaster"}
	case deps.Animator == nil:
		return nil, &fault.PreconditionError{Component: "locomotion", Missing: "animator"}
	}

	return &Controller{
		body:   deps.Body,
		ray:    deps.Raycaster,
		anim:   deps.Animator,
		emit:   deps.Emitter,
		tuning: tuning,
		log:    logger.OrNop(log),
		state: State{
			JumpArmed: true,
			Facing:    math.Forward,
		},
	}, nil
}

// Start puts the character into its airborne loop so it never shows a
// bind pose before the first tick.
func (c *Controller) Start() {
	c.play(c.tuning.Clips.JumpLoop, true, 0)
	c.state.Phase = PhaseAirborne
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// SoftGrounded reports whether the character has been airborne for less
// than the in-air threshold.
func (c *Controller) SoftGrounded() bool {
	return c.state.AirTimer < c.tuning.InAirThreshold
}

// HandleCollision applies one collision event of the current tick.
func (c *Controller) HandleCollision(col event.Collision) {
	samples, err := contact.Decode(col.Contacts)
	if err != nil {
		c.log.Debug("contact buffer", zap.Error(err), zap.Int("samples", len(samples)))
	}

	v := contact.Classify(samples, c.body.Position().Y, col.Other)

	if v.IsLiquid {
		c.state.InLiquid = true
		c.state.LiquidSurface = v.LiquidSurface
	}

	if v.IsGround {
		c.state.OnGround = true
		if col.Platform != nil {
			c.state.OnMovingPlatform = true
			c.platform = col.Platform
		} else {
			c.state.OnMovingPlatform = false
			c.platform = nil
		}
	}
}

// HandleAnimationTrigger reacts to markers in the playing clip. A foot
// marker while standing in liquid spawns a ripple on the liquid surface
// below the foot.
func (c *Controller) HandleAnimationTrigger(trig event.AnimationTrigger) {
	if !strings.Contains(strings.ToLower(trig.Data), "foot") {
		return
	}
	if !c.state.InLiquid || c.emit == nil {
		return
	}

	pos := trig.Position
	pos.Y = c.state.LiquidSurface.Y
	c.emit.PublishSpawn(event.SpawnEffect{
		Kind:     effects.KindRipple,
		Position: pos,
		Facing:   c.state.Facing,
	})
}

// FixedUpdate runs one physics tick.
func (c *Controller) FixedUpdate(ctrl Controls, timeStep float32) {
	s := &c.state

	if !s.OnGround {
		s.AirTimer += timeStep
	} else {
		s.AirTimer = 0
	}
	softGrounded := c.SoftGrounded()

	facing := math.QuatFromYaw(ctrl.Yaw)
	s.Facing = facing.Rotate(math.Forward)

	moveDir := inputDirection(ctrl)
	s.MoveDir = facing.Rotate(moveDir)

	c.applyMoveImpulse(softGrounded)

	if softGrounded {
		if !s.OnMovingPlatform {
			c.applyBrake()
		}
		c.updateJump(ctrl.Jump)
	}

	c.selectAnimation(softGrounded, !moveDir.IsZero())

	s.OnGround = false
	s.InLiquid = false
}

// inputDirection returns the local move direction, normalized so diagonal
// movement is not faster.
func inputDirection(ctrl Controls) math.Vec3 {
	var dir math.Vec3
	if ctrl.Forward {
		dir = dir.Add(math.Forward)
	}
	if ctrl.Back {
		dir = dir.Add(math.Back)
	}
	if ctrl.Left {
		dir = dir.Add(math.Left)
	}
	if ctrl.Right {
		dir = dir.Add(math.Right)
	}
	if dir.LengthSquared() > 0 {
		dir = dir.Normalize()
	}
	return dir
}

func (c *Controller) applyMoveImpulse(softGrounded bool) {
	s := &c.state

	force := c.tuning.InAirMoveForce
	if softGrounded {
		force = c.tuning.MoveForce
	}
	moveForce := s.MoveDir.Scale(force)

	if !s.OnMovingPlatform {
		if !moveForce.IsZero() {
			c.body.ApplyImpulse(moveForce)
		}
		return
	}

	if s.MoveDir.LengthSquared() == 0 {
		return
	}

	if s.OnGround && c.platform != nil {
		// Match the platform's horizontal velocity, then steer on top of it.
		delta := c.platform.LinearVelocity().Sub(c.body.LinearVelocity())
		delta.Y = 0
		delta = delta.Add(moveForce.Scale(c.tuning.PlatformForceMultiplier))
		c.body.ApplyImpulse(delta)
		return
	}

	c.body.ApplyImpulse(moveForce)
}

// applyBrake opposes lateral velocity. Tuned friction, not a physical model.
func (c *Controller) applyBrake() {
	vel := c.body.LinearVelocity()
	lateral := vel.Sub(math.Up.Scale(math.Up.Dot(vel)))
	if lateral.LengthSquared() <= math.Epsilon {
		return
	}
	dir := lateral.Scale(1 / lateral.Length())
	c.body.ApplyImpulse(dir.Scale(-lateral.Length() * c.tuning.BrakeForce))
}

// updateJump fires on the press edge only; the key must be released
// before the next jump.
func (c *Controller) updateJump(jumpHeld bool) {
	s := &c.state

	if !jumpHeld {
		s.JumpArmed = true
		return
	}
	if !s.JumpArmed {
		return
	}

	s.JumpArmed = false
	s.JumpInProgress = true
	c.body.ApplyImpulse(math.Up.Scale(c.tuning.JumpForce))

	clip := c.tuning.Clips.JumpStart
	c.anim.StopLayer(animLayer)
	c.play(clip, false, fadeJumpStart)
	c.anim.SetTime(clip, 0)
	s.Phase = PhaseJumpStart

	c.log.Debug("jump", zap.Float32("air_timer", s.AirTimer))
}

func (c *Controller) selectAnimation(softGrounded, moving bool) {
	s := &c.state
	clips := c.tuning.Clips

	if !s.OnGround || s.JumpInProgress {
		if s.JumpInProgress {
			if c.anim.IsAtEnd(clips.JumpStart) {
				c.play(clips.JumpLoop, true, fadeJumpLoop)
				c.anim.SetTime(clips.JumpLoop, 0)
				s.JumpInProgress = false
				s.Phase = PhaseAirborne
			}
			return
		}

		hit := c.ray.Raycast(c.body.Position(), math.Down, c.tuning.RayDistance, c.tuning.RayMask)
		if !hit.Hit || hit.Distance > c.tuning.StepDownHeight {
			c.play(clips.Fall, true, fadeDefault)
			s.Phase = PhaseFalling
		}
		// Within step-down height the current clip carries on.
		return
	}

	if softGrounded && moving {
		c.play(clips.Run, true, fadeDefault)
		s.Phase = PhaseMoving
	} else {
		c.play(clips.Idle, true, fadeDefault)
		s.Phase = PhaseIdle
	}
}

func (c *Controller) play(clip string, looped bool, fade float32) {
	if c.state.Clip != clip {
		c.log.Debug("clip", zap.String("from", c.state.Clip), zap.String("to", clip))
	}
	c.anim.PlayExclusive(clip, animLayer, looped, fade)
	c.state.Clip = clip
}
