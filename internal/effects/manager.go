package effects

import (
	stdmath "math"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/materialfx/internal/fault"
	"github.com/Faultbox/materialfx/internal/logger"
	"github.com/Faultbox/materialfx/pkg/math"
)

// Phase is the lifecycle position of an effect instance.
type Phase uint8

const (
	PhaseSpawned Phase = iota
	PhaseActive
	PhaseExpired
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawned:
		return "spawned"
	case PhaseActive:
		return "active"
	case PhaseExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Instance is one live effect spawned from a template.
type Instance struct {
	ID        ulid.ULID
	Template  *Template
	Position  math.Vec3
	Direction math.Vec3
	ElapsedMs uint32
	Phase     Phase

	node      Node
	billboard Billboard
}

// Expired reports whether the instance has outlived its template duration.
func (i *Instance) Expired() bool {
	return i.ElapsedMs > i.Template.DurationMs
}

// Alpha returns the alpha of the instance's billboard, or 1 for kinds
// without one.
func (i *Instance) Alpha() float32 {
	if i.billboard == nil {
		return 1
	}
	return i.billboard.Alpha()
}

// Manager owns the active effect instances. It is not safe for concurrent
// use; the host calls OnTrigger and Advance from the tick loop only.
type Manager struct {
	registry *Registry
	scene    Scene
	log      *zap.Logger

	active  []*Instance
	spawned uint64
	retired uint64
}

// NewManager creates a manager spawning templates from registry into scene.
func NewManager(registry *Registry, scene Scene, log *zap.Logger) (*Manager, error) {
	if scene == nil {
		return nil, &fault.PreconditionError{Component: "effects", Missing: "scene"}
	}
	return &Manager{
		registry: registry,
		scene:    scene,
		log:      logger.OrNop(log),
	}, nil
}

// OnTrigger spawns the first registered template of kind at position. The
// effect always points down, whatever facing the trigger carried. Unknown
// kinds are ignored and unresolved assets skip the spawn.
func (m *Manager) OnTrigger(kind Kind, position, facing math.Vec3) {
	t, ok := m.registry.Find(kind)
	if !ok {
		return
	}

	inst := &Instance{
		ID:        ulid.Make(),
		Template:  t,
		Position:  position,
		Direction: math.Down,
		Phase:     PhaseSpawned,
	}
	inst.node = m.scene.CreateNode(position, inst.Direction)

	if err := behaviorFor(kind).build(inst); err != nil {
		inst.node.Remove()
		m.log.Warn("effect spawn skipped",
			zap.Stringer("kind", kind),
			zap.String("template", t.Name),
			zap.Error(err))
		return
	}

	m.active = append(m.active, inst)
	m.spawned++
	m.log.Debug("effect spawned",
		zap.Stringer("id", inst.ID),
		zap.Stringer("kind", kind),
		zap.Float32("x", position.X),
		zap.Float32("y", position.Y),
		zap.Float32("z", position.Z),
		zap.Float32("facing_y", facing.Y))
}

// Advance ages every active instance by timeStep seconds, applies the
// per-kind update to those still within their duration and removes the rest.
func (m *Manager) Advance(timeStep float32) {
	stepMs := uint32(stdmath.Round(float64(timeStep) * 1000))

	for _, inst := range m.active {
		inst.ElapsedMs += stepMs
		if inst.Expired() {
			continue
		}
		inst.Phase = PhaseActive
		behaviorFor(inst.Template.Kind).update(inst)
	}

	kept := m.active[:0]
	for _, inst := range m.active {
		if !inst.Expired() {
			kept = append(kept, inst)
			continue
		}
		inst.Phase = PhaseExpired
		inst.node.Remove()
		inst.node, inst.billboard = nil, nil
		m.retired++
		m.log.Debug("effect expired",
			zap.Stringer("id", inst.ID),
			zap.Uint32("elapsed_ms", inst.ElapsedMs))
	}
	for i := len(kept); i < len(m.active); i++ {
		m.active[i] = nil
	}
	m.active = kept
}

// Active returns copies of the live instances in spawn order.
func (m *Manager) Active() []Instance {
	out := make([]Instance, len(m.active))
	for i, inst := range m.active {
		out[i] = *inst
	}
	return out
}

// Len returns the number of live instances.
func (m *Manager) Len() int {
	return len(m.active)
}

// Stats returns how many instances were spawned and retired so far.
func (m *Manager) Stats() (spawned, retired uint64) {
	return m.spawned, m.retired
}
