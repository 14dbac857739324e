package sim

import (
	"io/fs"

	"go.uber.org/zap"

	"github.com/Faultbox/materialfx/internal/effects"
	"github.com/Faultbox/materialfx/internal/event"
	"github.com/Faultbox/materialfx/internal/locomotion"
	"github.com/Faultbox/materialfx/internal/logger"
	"github.com/Faultbox/materialfx/pkg/math"
)

// Options configures a Host.
type Options struct {
	Level    Level
	Gravity  float32
	TimeStep float32 // seconds per tick
	Tuning   locomotion.Tuning
	Clips    []Clip // nil uses DefaultClips for the tuning's clip names
	Registry *effects.Registry
	Assets   fs.FS
}

// Host owns the world, animator, scene and event pump of one character and
// advances them one fixed tick at a time.
type Host struct {
	world    *World
	anim     *Animator
	scene    *Scene
	pump     *event.Pump
	ctrl     *locomotion.Controller
	fx       *effects.Manager
	handlers event.Handlers
	timeStep float32
	tick     uint64
	log      *zap.Logger
}

// NewHost wires a controller and an effect manager to fresh collaborators.
func NewHost(opts Options, log *zap.Logger) (*Host, error) {
	log = logger.OrNop(log)

	h := &Host{
		world:    NewWorld(opts.Level, opts.Gravity, log.Named("world")),
		scene:    NewScene(opts.Assets, log.Named("scene")),
		pump:     event.NewPump(log.Named("pump")),
		timeStep: opts.TimeStep,
		log:      log,
	}

	clips := opts.Clips
	if clips == nil {
		clips = DefaultClips(opts.Tuning.Clips)
	}
	body := h.world.Body()
	// Feet bones sit at the body origin.
	h.anim = NewAnimator(clips, func(string) math.Vec3 { return body.Position() }, log.Named("anim"))

	var err error
	h.ctrl, err = locomotion.New(locomotion.Deps{
		Body:      body,
		Raycaster: h.world,
		Animator:  h.anim,
		Emitter:   h.pump,
	}, opts.Tuning, log.Named("locomotion"))
	if err != nil {
		return nil, err
	}

	h.fx, err = effects.NewManager(opts.Registry, h.scene, log.Named("effects"))
	if err != nil {
		return nil, err
	}

	h.handlers = event.Handlers{
		Collision:        h.ctrl.HandleCollision,
		AnimationTrigger: h.ctrl.HandleAnimationTrigger,
		SpawnEffect: func(s event.SpawnEffect) {
			h.fx.OnTrigger(s.Kind, s.Position, s.Facing)
		},
	}

	h.ctrl.Start()
	return h, nil
}

// Step runs one tick. Collisions of this tick reach the controller before
// its update, and markers passed during the previous tick's animation are
// delivered after them.
func (h *Host) Step(controls locomotion.Controls) {
	dt := h.timeStep

	// 1. Physics
	for _, col := range h.world.Step(dt) {
		h.pump.Push(event.NewCollision(col))
	}

	// 2. Animation markers from the last tick
	for _, trig := range h.anim.TakeTriggers() {
		h.pump.Push(event.NewAnimationTrigger(trig))
	}

	// 3. Dispatch, including spawns raised by the handlers
	h.pump.Drain(h.handlers)

	// 4. Character
	h.ctrl.FixedUpdate(controls, dt)
	h.anim.Advance(dt)

	// 5. Effects
	h.fx.Advance(dt)

	h.tick++
}

// Tick returns the number of ticks run.
func (h *Host) Tick() uint64 { return h.tick }

// Controller returns the character controller.
func (h *Host) Controller() *locomotion.Controller { return h.ctrl }

// Effects returns the effect manager.
func (h *Host) Effects() *effects.Manager { return h.fx }

// World returns the physics world.
func (h *Host) World() *World { return h.world }

// Scene returns the scene the effects are attached to.
func (h *Host) Scene() *Scene { return h.scene }

// Animator returns the character animator.
func (h *Host) Animator() *Animator { return h.anim }

// Dispatched returns the number of events delivered so far.
func (h *Host) Dispatched() uint64 { return h.pump.Dispatched() }
