// Package sim is a headless host for the locomotion controller and the
// effect manager. It provides a minimal box world, a clip animator and an
// in-memory scene, and runs them on a fixed tick.
package sim

import (
	"go.uber.org/zap"

	"github.com/Faultbox/materialfx/internal/contact"
	"github.com/Faultbox/materialfx/internal/event"
	"github.com/Faultbox/materialfx/internal/locomotion"
	"github.com/Faultbox/materialfx/internal/logger"
	"github.com/Faultbox/materialfx/pkg/math"
)

// ColliderKind tags a box in the world.
type ColliderKind uint8

const (
	ColliderSolid ColliderKind = iota
	ColliderLiquid
	ColliderPlatform
	ColliderTrigger
)

func (k ColliderKind) String() string {
	switch k {
	case ColliderSolid:
		return "solid"
	case ColliderLiquid:
		return "liquid"
	case ColliderPlatform:
		return "platform"
	case ColliderTrigger:
		return "trigger"
	default:
		return "unknown"
	}
}

// supports reports whether the character can stand on the collider.
func (k ColliderKind) supports() bool {
	return k == ColliderSolid || k == ColliderPlatform
}

// DefaultLayer is the collision layer of colliders that do not set one.
const DefaultLayer = 1

// Collider is a box in the world. Platforms move along Velocity and turn
// back once they are Travel away from where they started.
type Collider struct {
	Name     string
	Kind     ColliderKind
	Box      AABB
	Layer    uint32
	Velocity math.Vec3
	Travel   float32

	travelled float32
}

// LinearVelocity returns the collider velocity. It makes a platform usable
// as the velocity source of a collision event.
func (c *Collider) LinearVelocity() math.Vec3 {
	return c.Velocity
}

func (c *Collider) move(dt float32) math.Vec3 {
	if c.Kind != ColliderPlatform || c.Velocity.IsZero() {
		return math.Vec3{}
	}
	step := c.Velocity.Scale(dt)
	c.Box = c.Box.Translate(step)
	c.travelled += step.Length()
	if c.Travel > 0 && c.travelled >= c.Travel {
		c.travelled = 0
		c.Velocity = c.Velocity.Negate()
	}
	return step
}

// Body is the character body: a point at the feet with unit mass unless
// configured otherwise.
type Body struct {
	position math.Vec3
	velocity math.Vec3
	mass     float32
}

// Position returns the feet position.
func (b *Body) Position() math.Vec3 { return b.position }

// LinearVelocity returns the current velocity.
func (b *Body) LinearVelocity() math.Vec3 { return b.velocity }

// ApplyImpulse changes the velocity immediately.
func (b *Body) ApplyImpulse(impulse math.Vec3) {
	b.velocity = b.velocity.Add(impulse.Scale(1 / b.mass))
}

// Level describes the static layout of a world.
type Level struct {
	Spawn     math.Vec3
	Colliders []Collider
}

// DefaultLevel is a flat floor with a shallow pool ahead of the spawn point
// and a platform shuttling off to the side.
func DefaultLevel() Level {
	return Level{
		Spawn: math.Vec3{},
		Colliders: []Collider{
			{Name: "floor", Kind: ColliderSolid, Box: AABB{Min: math.Vec3{X: -50, Y: -1, Z: -50}, Max: math.Vec3{X: 50, Y: 0, Z: 50}}},
			{Name: "pool", Kind: ColliderLiquid, Box: AABB{Min: math.Vec3{X: -4, Y: -0.5, Z: 4}, Max: math.Vec3{X: 4, Y: 0.3, Z: 10}}},
			{Name: "lift", Kind: ColliderPlatform, Box: AABB{Min: math.Vec3{X: 8, Y: 0, Z: -2}, Max: math.Vec3{X: 12, Y: 0.5, Z: 2}}, Velocity: math.Vec3{Z: 1}, Travel: 6},
		},
	}
}

// World integrates the character body against box colliders. Only landing
// on top faces is resolved; walls are not.
type World struct {
	body      *Body
	colliders []*Collider
	gravity   float32
	log       *zap.Logger

	standingOn *Collider
}

// NewWorld creates a world from level with the body resting at its spawn.
func NewWorld(level Level, gravity float32, log *zap.Logger) *World {
	w := &World{
		body:    &Body{position: level.Spawn, mass: 1},
		gravity: gravity,
		log:     logger.OrNop(log),
	}
	for i := range level.Colliders {
		c := level.Colliders[i]
		if c.Layer == 0 {
			c.Layer = DefaultLayer
		}
		w.colliders = append(w.colliders, &c)
	}
	return w
}

// Body returns the character body.
func (w *World) Body() *Body {
	return w.body
}

// Collider returns the collider named name, or nil.
func (w *World) Collider(name string) *Collider {
	for _, c := range w.colliders {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Step advances the world by dt seconds and returns the collision events
// of the character body, one per touched collider.
func (w *World) Step(dt float32) []event.Collision {
	b := w.body

	for _, c := range w.colliders {
		step := c.move(dt)
		if c == w.standingOn {
			b.position = b.position.Add(step)
		}
	}

	b.velocity.Y += w.gravity * dt
	prev := b.position
	b.position = b.position.Add(b.velocity.Scale(dt))
	wasStanding := w.standingOn != nil
	w.standingOn = nil

	var events []event.Collision
	for _, c := range w.colliders {
		switch {
		case c.Kind.supports():
			if col, ok := w.land(c, prev); ok {
				events = append(events, col)
			}
		default:
			if col, ok := w.overlap(c); ok {
				events = append(events, col)
			}
		}
	}

	if !wasStanding && w.standingOn != nil {
		w.log.Debug("landed", zap.String("on", w.standingOn.Name), zap.Float32("y", b.position.Y))
	}
	return events
}

// land resolves a body that crossed the top face of c this step.
func (w *World) land(c *Collider, prev math.Vec3) (event.Collision, bool) {
	b := w.body
	top := c.Box.Max.Y
	if !c.Box.ContainsXZ(b.position) || b.velocity.Y > 0 {
		return event.Collision{}, false
	}
	if b.position.Y >= top || prev.Y < top-landingSlop {
		return event.Collision{}, false
	}

	depth := top - b.position.Y
	impulse := -b.velocity.Y * b.mass
	b.position.Y = top
	b.velocity.Y = 0
	w.standingOn = c

	col := event.Collision{
		Contacts: contact.Encode([]contact.Sample{{
			Position: b.position,
			Normal:   math.Up,
			Distance: -depth,
			Impulse:  impulse,
		}}),
		Other: contact.Solid,
	}
	if c.Kind == ColliderPlatform {
		col.Platform = c
	}
	return col, true
}

// overlap reports a trigger volume around the feet.
func (w *World) overlap(c *Collider) (event.Collision, bool) {
	p := w.body.position
	if !c.Box.ContainsXZ(p) || p.Y > c.Box.Max.Y || p.Y+characterHeight < c.Box.Min.Y {
		return event.Collision{}, false
	}

	other := contact.OtherTrigger
	if c.Kind == ColliderLiquid {
		other = contact.LiquidTrigger
	}
	surface := math.Vec3{X: p.X, Y: c.Box.Max.Y, Z: p.Z}
	return event.Collision{
		Contacts: contact.Encode([]contact.Sample{{
			Position: surface,
			Normal:   math.Up,
			Distance: p.Y - surface.Y,
		}}),
		Other: other,
	}, true
}

// Raycast returns the nearest supporting collider on a layer in mask.
func (w *World) Raycast(origin, direction math.Vec3, maxDistance float32, mask uint32) locomotion.RaycastHit {
	ray := Ray{Origin: origin, Direction: direction}
	best := locomotion.RaycastHit{}
	for _, c := range w.colliders {
		if !c.Kind.supports() || c.Layer&mask == 0 {
			continue
		}
		t, normal, ok := ray.IntersectAABB(c.Box)
		if !ok || t > maxDistance {
			continue
		}
		if !best.Hit || t < best.Distance {
			best = locomotion.RaycastHit{Hit: true, Distance: t, Normal: normal}
		}
	}
	return best
}

const (
	// landingSlop is how far below a top face the body may have been on the
	// previous step and still be lifted onto it.
	landingSlop     = 0.05
	characterHeight = 1.8
)

// Colliders returns a snapshot of the world's colliders.
func (w *World) Colliders() []Collider {
	out := make([]Collider, len(w.colliders))
	for i, c := range w.colliders {
		out[i] = *c
	}
	return out
}
