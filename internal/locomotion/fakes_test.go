package locomotion

import (
	"github.com/Faultbox/materialfx/internal/contact"
	"github.com/Faultbox/materialfx/internal/event"
	"github.com/Faultbox/materialfx/pkg/math"
)

type fakeBody struct {
	position math.Vec3
	velocity math.Vec3
	impulses []math.Vec3
}

func (b *fakeBody) Position() math.Vec3       { return b.position }
func (b *fakeBody) LinearVelocity() math.Vec3 { return b.velocity }
func (b *fakeBody) ApplyImpulse(i math.Vec3)  { b.impulses = append(b.impulses, i) }

// upward returns the impulses with a positive vertical component.
func (b *fakeBody) upward() []math.Vec3 {
	var out []math.Vec3
	for _, i := range b.impulses {
		if i.Y > 0 {
			out = append(out, i)
		}
	}
	return out
}

type fakeRay struct {
	hit   RaycastHit
	calls int
}

func (r *fakeRay) Raycast(origin, direction math.Vec3, maxDistance float32, mask uint32) RaycastHit {
	r.calls++
	return r.hit
}

type play struct {
	clip   string
	looped bool
	fade   float32
}

type fakeAnimator struct {
	plays []play
	atEnd map[string]bool
	times map[string]float32
	stops int
}

func newFakeAnimator() *fakeAnimator {
	return &fakeAnimator{atEnd: map[string]bool{}, times: map[string]float32{}}
}

func (a *fakeAnimator) PlayExclusive(clip string, layer int, looped bool, fadeTime float32) {
	a.plays = append(a.plays, play{clip: clip, looped: looped, fade: fadeTime})
}

func (a *fakeAnimator) StopLayer(layer int) { a.stops++ }

func (a *fakeAnimator) IsAtEnd(clip string) bool { return a.atEnd[clip] }

func (a *fakeAnimator) SetTime(clip string, t float32) { a.times[clip] = t }

func (a *fakeAnimator) last() play {
	if len(a.plays) == 0 {
		return play{}
	}
	return a.plays[len(a.plays)-1]
}

type fakeEmitter struct {
	spawns []event.SpawnEffect
}

func (e *fakeEmitter) PublishSpawn(s event.SpawnEffect) { e.spawns = append(e.spawns, s) }

type fakePlatform struct {
	velocity math.Vec3
}

func (p *fakePlatform) LinearVelocity() math.Vec3 { return p.velocity }

// groundContact is a solid collision with one upward contact at the feet.
func groundContact(feet math.Vec3) event.Collision {
	return event.Collision{
		Contacts: contact.Encode([]contact.Sample{{Position: feet, Normal: math.Up}}),
		Other:    contact.Solid,
	}
}

func liquidContact(surface math.Vec3) event.Collision {
	return event.Collision{
		Contacts: contact.Encode([]contact.Sample{{Position: surface, Normal: math.Up}}),
		Other:    contact.LiquidTrigger,
	}
}
