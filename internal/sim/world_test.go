package sim

import (
	"testing"

	"github.com/Faultbox/materialfx/internal/contact"
	"github.com/Faultbox/materialfx/internal/event"
	"github.com/Faultbox/materialfx/pkg/math"
)

const dt = float32(1.0 / 60.0)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func levelAt(spawn math.Vec3) Level {
	l := DefaultLevel()
	l.Spawn = spawn
	return l
}

func find(cols []event.Collision, kind contact.BodyKind) (event.Collision, bool) {
	for _, c := range cols {
		if c.Other == kind {
			return c, true
		}
	}
	return event.Collision{}, false
}

func TestWorldFallsAndLands(t *testing.T) {
	w := NewWorld(levelAt(math.Vec3{Y: 1}), -9.81, nil)

	var landed []event.Collision
	for i := 0; i < 120 && landed == nil; i++ {
		landed = w.Step(dt)
	}
	if landed == nil {
		t.Fatal("body never landed")
	}

	if y := w.Body().Position().Y; y != 0 {
		t.Errorf("expected feet on the floor, got y=%f", y)
	}
	if vy := w.Body().LinearVelocity().Y; vy != 0 {
		t.Errorf("expected vertical velocity cleared, got %f", vy)
	}

	col, ok := find(landed, contact.Solid)
	if !ok {
		t.Fatal("expected a solid collision")
	}
	samples, err := contact.Decode(col.Contacts)
	if err != nil || len(samples) != 1 {
		t.Fatalf("Decode: %v, %d samples", err, len(samples))
	}
	if samples[0].Normal != math.Up {
		t.Errorf("normal = %+v, want up", samples[0].Normal)
	}
	if samples[0].Impulse <= 0 {
		t.Errorf("expected a positive landing impulse, got %f", samples[0].Impulse)
	}
	if col.Platform != nil {
		t.Error("floor must not report a platform")
	}
}

func TestWorldRestingReportsGroundEveryStep(t *testing.T) {
	w := NewWorld(levelAt(math.Vec3{}), -9.81, nil)
	for i := 0; i < 10; i++ {
		cols := w.Step(dt)
		col, ok := find(cols, contact.Solid)
		if !ok {
			t.Fatalf("step %d: no ground collision", i)
		}
		samples, _ := contact.Decode(col.Contacts)
		v := contact.Classify(samples, w.Body().Position().Y, col.Other)
		if !v.IsGround {
			t.Fatalf("step %d: contact not classified as ground", i)
		}
	}
}

func TestWorldLiquidOverlap(t *testing.T) {
	w := NewWorld(levelAt(math.Vec3{Z: 6}), -9.81, nil)
	cols := w.Step(dt)

	if _, ok := find(cols, contact.Solid); !ok {
		t.Error("expected the floor under the pool")
	}
	col, ok := find(cols, contact.LiquidTrigger)
	if !ok {
		t.Fatal("expected a liquid collision inside the pool")
	}

	samples, _ := contact.Decode(col.Contacts)
	v := contact.Classify(samples, w.Body().Position().Y, col.Other)
	if !v.IsLiquid {
		t.Fatal("expected liquid verdict")
	}
	if v.LiquidSurface.Y != 0.3 {
		t.Errorf("surface y = %f, want 0.3", v.LiquidSurface.Y)
	}
	if v.IsGround {
		t.Error("liquid contact must not be ground")
	}
}

func TestWorldOutsideLiquid(t *testing.T) {
	w := NewWorld(levelAt(math.Vec3{Z: 12}), -9.81, nil)
	if _, ok := find(w.Step(dt), contact.LiquidTrigger); ok {
		t.Error("unexpected liquid collision outside the pool")
	}
}

func TestWorldOtherTrigger(t *testing.T) {
	l := levelAt(math.Vec3{X: -20})
	l.Colliders = append(l.Colliders, Collider{
		Name: "zone", Kind: ColliderTrigger,
		Box: AABB{Min: math.Vec3{X: -22, Y: -1, Z: -2}, Max: math.Vec3{X: -18, Y: 2, Z: 2}},
	})
	w := NewWorld(l, -9.81, nil)

	if _, ok := find(w.Step(dt), contact.OtherTrigger); !ok {
		t.Error("expected a trigger collision")
	}
}

func TestWorldPlatformCarriesBody(t *testing.T) {
	w := NewWorld(levelAt(math.Vec3{X: 10, Y: 0.5}), -9.81, nil)
	lift := w.Collider("lift")
	if lift == nil {
		t.Fatal("default level has no lift")
	}

	cols := w.Step(dt)
	col, ok := find(cols, contact.Solid)
	if !ok {
		t.Fatal("expected a collision with the lift")
	}
	if col.Platform == nil {
		t.Fatal("expected the lift as velocity source")
	}
	if v := col.Platform.LinearVelocity(); v != (math.Vec3{Z: 1}) {
		t.Errorf("platform velocity = %+v", v)
	}

	for i := 0; i < 30; i++ {
		w.Step(dt)
	}
	if z := w.Body().Position().Z; z < 0.4 {
		t.Errorf("expected body carried forward, z=%f", z)
	}
	if y := w.Body().Position().Y; abs(y-0.5) > 1e-4 {
		t.Errorf("expected body to stay on the lift, y=%f", y)
	}
}

func TestPlatformTurnsBack(t *testing.T) {
	c := &Collider{Kind: ColliderPlatform, Velocity: math.Vec3{Z: 1}, Travel: 1}
	for i := 0; i < 61; i++ {
		c.move(dt)
	}
	if c.Velocity.Z != -1 {
		t.Errorf("expected platform to reverse, velocity %+v", c.Velocity)
	}
}

func TestWorldRaycast(t *testing.T) {
	w := NewWorld(DefaultLevel(), -9.81, nil)

	tests := []struct {
		name    string
		origin  math.Vec3
		maxDist float32
		mask    uint32
		hit     bool
		dist    float32
	}{
		{"floor below", math.Vec3{Y: 2}, 50, 0xff, true, 2},
		{"pool is not solid", math.Vec3{Y: 2, Z: 6}, 50, 0xff, true, 2},
		{"lift above floor", math.Vec3{X: 10, Y: 2}, 50, 0xff, true, 1.5},
		{"too far", math.Vec3{Y: 2}, 1, 0xff, false, 0},
		{"masked out", math.Vec3{Y: 2}, 50, 0x2, false, 0},
		{"resting on floor", math.Vec3{}, 50, 0xff, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := w.Raycast(tt.origin, math.Down, tt.maxDist, tt.mask)
			if hit.Hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit.Hit, tt.hit)
			}
			if !tt.hit {
				return
			}
			if abs(hit.Distance-tt.dist) > 1e-4 {
				t.Errorf("distance = %f, want %f", hit.Distance, tt.dist)
			}
			if hit.Normal != math.Up {
				t.Errorf("normal = %+v, want up", hit.Normal)
			}
		})
	}
}

func TestRayIntersectAABBInside(t *testing.T) {
	r := Ray{Origin: math.Vec3{}, Direction: math.Right}
	d, n, ok := r.IntersectAABB(Box(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1}))
	if !ok || d != 1 {
		t.Fatalf("expected exit at 1, got %f %v", d, ok)
	}
	if n != math.Right {
		t.Errorf("exit normal = %+v", n)
	}
}

func TestBodyApplyImpulse(t *testing.T) {
	b := &Body{mass: 2}
	b.ApplyImpulse(math.Vec3{X: 4})
	if b.LinearVelocity().X != 2 {
		t.Errorf("velocity = %+v, want x=2", b.LinearVelocity())
	}
}
