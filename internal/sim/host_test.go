package sim

import (
	"errors"
	"os"
	"testing"

	"github.com/Faultbox/materialfx/internal/effects"
	"github.com/Faultbox/materialfx/internal/fault"
	"github.com/Faultbox/materialfx/internal/locomotion"
	"github.com/Faultbox/materialfx/pkg/math"
)

func newTestHost(t *testing.T, level Level) *Host {
	t.Helper()
	registry := effects.NewRegistry(&effects.Template{
		Name:       "ripple",
		Kind:       effects.KindRipple,
		Asset:      "materials/ripple.yaml",
		DurationMs: 1000,
		ScaleRate:  math.Vec2{X: 1.02, Y: 1.02},
		AlphaRate:  0.97,
		Scale:      math.Vec2{X: 0.5, Y: 0.5},
		FaceCamera: effects.FaceCameraDirection,
	})
	h, err := NewHost(Options{
		Level:    level,
		Gravity:  -9.81,
		TimeStep: dt,
		Tuning:   locomotion.DefaultTuning(),
		Registry: registry,
		Assets:   testAssets(),
	}, nil)
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	return h
}

func TestHostStartsAirborne(t *testing.T) {
	h := newTestHost(t, DefaultLevel())
	st := h.Controller().State()
	if st.Phase != locomotion.PhaseAirborne {
		t.Errorf("phase = %s, want airborne", st.Phase)
	}
	if h.Animator().Playing(0) != locomotion.DefaultTuning().Clips.JumpLoop {
		t.Errorf("playing %q before the first tick", h.Animator().Playing(0))
	}
}

func TestHostIdleSettles(t *testing.T) {
	h := newTestHost(t, DefaultLevel())
	for i := 0; i < 10; i++ {
		h.Step(locomotion.Controls{})
	}

	st := h.Controller().State()
	if st.Phase != locomotion.PhaseIdle {
		t.Errorf("phase = %s, want idle", st.Phase)
	}
	if st.AirTimer != 0 {
		t.Errorf("air timer = %f on the floor", st.AirTimer)
	}
	if h.Tick() != 10 {
		t.Errorf("Tick = %d", h.Tick())
	}
	if h.Dispatched() < 10 {
		t.Errorf("expected at least one collision per tick, dispatched %d", h.Dispatched())
	}
}

func TestHostWalkThroughPoolSpawnsRipples(t *testing.T) {
	h := newTestHost(t, DefaultLevel())
	pool := h.World().Collider("pool").Box
	forward := locomotion.Controls{Forward: true}

	sawMoving := false
	for i := 0; i < 300; i++ {
		h.Step(forward)
		if h.Controller().State().Phase == locomotion.PhaseMoving {
			sawMoving = true
		}
		for _, inst := range h.Effects().Active() {
			if inst.Position.Y != pool.Max.Y {
				t.Fatalf("tick %d: ripple at y=%f, want the pool surface", i, inst.Position.Y)
			}
			if inst.Position.Z < pool.Min.Z-0.1 || inst.Position.Z > pool.Max.Z+0.1 {
				t.Fatalf("tick %d: ripple outside the pool at z=%f", i, inst.Position.Z)
			}
			if inst.Direction != math.Down {
				t.Fatalf("tick %d: ripple direction %+v", i, inst.Direction)
			}
		}
	}

	if !sawMoving {
		t.Error("character never ran")
	}
	if z := h.World().Body().Position().Z; z < pool.Max.Z {
		t.Fatalf("character did not cross the pool, z=%f", z)
	}

	spawned, _ := h.Effects().Stats()
	if spawned < 3 {
		t.Fatalf("expected several ripples, got %d", spawned)
	}

	for i := 0; i < 90; i++ {
		h.Step(locomotion.Controls{})
	}
	spawnedAfter, retired := h.Effects().Stats()
	if spawnedAfter != spawned {
		t.Errorf("ripples spawned out of the pool: %d -> %d", spawned, spawnedAfter)
	}
	if h.Effects().Len() != 0 || retired != spawned {
		t.Errorf("expected every ripple retired: live %d, retired %d of %d", h.Effects().Len(), retired, spawned)
	}
	if h.Scene().Len() != 0 {
		t.Errorf("scene still holds %d nodes", h.Scene().Len())
	}
}

func TestHostJump(t *testing.T) {
	h := newTestHost(t, DefaultLevel())
	for i := 0; i < 30; i++ {
		h.Step(locomotion.Controls{})
	}

	h.Step(locomotion.Controls{Jump: true})
	if got := h.Controller().State().Phase; got != locomotion.PhaseJumpStart {
		t.Fatalf("phase = %s after jump press, want jump_start", got)
	}

	seen := make(map[locomotion.Phase]bool)
	peak := float32(0)
	for i := 0; i < 150; i++ {
		h.Step(locomotion.Controls{})
		seen[h.Controller().State().Phase] = true
		if y := h.World().Body().Position().Y; y > peak {
			peak = y
		}
	}

	if !seen[locomotion.PhaseAirborne] || !seen[locomotion.PhaseFalling] {
		t.Errorf("expected airborne and falling phases, saw %v", seen)
	}
	if peak < 1 {
		t.Errorf("jump peaked at %f", peak)
	}
	if got := h.Controller().State().Phase; got != locomotion.PhaseIdle {
		t.Errorf("phase = %s after landing, want idle", got)
	}
	if y := h.World().Body().Position().Y; y != 0 {
		t.Errorf("expected to land on the floor, y=%f", y)
	}
}

func TestHostWithoutTemplates(t *testing.T) {
	h, err := NewHost(Options{
		Level:    DefaultLevel(),
		Gravity:  -9.81,
		TimeStep: dt,
		Tuning:   locomotion.DefaultTuning(),
	}, nil)
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	for i := 0; i < 300; i++ {
		h.Step(locomotion.Controls{Forward: true})
	}
	if spawned, _ := h.Effects().Stats(); spawned != 0 {
		t.Errorf("empty registry spawned %d effects", spawned)
	}
}

func TestHostMissingAssetSkipsSpawn(t *testing.T) {
	h, err := NewHost(Options{
		Level:    levelAt(math.Vec3{Z: 6}),
		Gravity:  -9.81,
		TimeStep: dt,
		Tuning:   locomotion.DefaultTuning(),
		Registry: effects.NewRegistry(&effects.Template{Name: "ripple", Kind: effects.KindRipple, Asset: "materials/none.yaml", DurationMs: 100}),
	}, nil)
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	for i := 0; i < 120; i++ {
		h.Step(locomotion.Controls{Forward: true})
	}
	if h.Effects().Len() != 0 || h.Scene().Len() != 0 {
		t.Errorf("unresolved asset left %d effects and %d nodes", h.Effects().Len(), h.Scene().Len())
	}

	_, err = h.Scene().CreateNode(math.Vec3{Z: 0}, math.Down).CreateBillboard("materials/none.yaml", effects.FaceCameraNone, math.Vec2{X: 1, Y: 1})
	var resErr *fault.ResourceError
	if !errors.As(err, &resErr) {
		t.Errorf("expected *fault.ResourceError, got %v", err)
	}
}

func TestHostWithShippedData(t *testing.T) {
	assets := os.DirFS("../../data")
	registry, err := effects.LoadRegistry(assets, "effects/splash_list.yaml", nil)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	h, err := NewHost(Options{
		Level:    DefaultLevel(),
		Gravity:  -9.81,
		TimeStep: dt,
		Tuning:   locomotion.DefaultTuning(),
		Registry: registry,
		Assets:   assets,
	}, nil)
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}

	for i := 0; i < 240; i++ {
		h.Step(locomotion.Controls{Forward: true})
	}
	if spawned, _ := h.Effects().Stats(); spawned == 0 {
		t.Error("expected ripples from the shipped templates")
	}
}
