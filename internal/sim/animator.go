package sim

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/materialfx/internal/event"
	"github.com/Faultbox/materialfx/internal/locomotion"
	"github.com/Faultbox/materialfx/internal/logger"
	"github.com/Faultbox/materialfx/pkg/math"
)

// Marker is a trigger point inside a clip. Data names the bone whose world
// position is reported with the trigger.
type Marker struct {
	Time float32
	Data string
}

// Clip is an animation clip. Length is in seconds.
type Clip struct {
	Name    string
	Length  float32
	Markers []Marker
}

// DefaultClips returns clip definitions for the character's clip names.
// The run cycle strikes the left foot, then the right.
func DefaultClips(names locomotion.Clips) []Clip {
	return []Clip{
		{Name: names.Idle, Length: 2.0},
		{Name: names.Run, Length: 0.8, Markers: []Marker{
			{Time: 0.2, Data: "Bip01_L_Foot"},
			{Time: 0.6, Data: "Bip01_R_Foot"},
		}},
		{Name: names.JumpStart, Length: 0.3},
		{Name: names.JumpLoop, Length: 1.0},
		{Name: names.Fall, Length: 1.0},
	}
}

type clipState struct {
	clip   *Clip
	time   float32
	looped bool
	fade   float32
}

// Locator returns the world position of a bone.
type Locator func(bone string) math.Vec3

// Animator plays at most one clip per layer and collects the markers the
// playing clips pass.
type Animator struct {
	clips   map[string]*Clip
	layers  map[int]*clipState
	states  map[string]*clipState
	locate  Locator
	pending []event.AnimationTrigger
	log     *zap.Logger
}

// NewAnimator creates an animator for clips. Unknown clips play with zero
// length so they end immediately.
func NewAnimator(clips []Clip, locate Locator, log *zap.Logger) *Animator {
	a := &Animator{
		clips:  make(map[string]*Clip, len(clips)),
		layers: make(map[int]*clipState),
		states: make(map[string]*clipState),
		locate: locate,
		log:    logger.OrNop(log),
	}
	for i := range clips {
		c := clips[i]
		a.clips[c.Name] = &c
	}
	return a
}

// PlayExclusive makes clip the only clip on layer. A clip that is already
// playing keeps its time.
func (a *Animator) PlayExclusive(clip string, layer int, looped bool, fadeTime float32) {
	if cur, ok := a.layers[layer]; ok && cur.clip.Name == clip {
		cur.looped = looped
		return
	}
	a.StopLayer(layer)

	c, ok := a.clips[clip]
	if !ok {
		a.log.Warn("unknown clip", zap.String("clip", clip))
		c = &Clip{Name: clip}
		a.clips[clip] = c
	}
	st := &clipState{clip: c, looped: looped, fade: fadeTime}
	a.layers[layer] = st
	a.states[clip] = st
}

// StopLayer stops whatever plays on layer.
func (a *Animator) StopLayer(layer int) {
	if cur, ok := a.layers[layer]; ok {
		delete(a.states, cur.clip.Name)
		delete(a.layers, layer)
	}
}

// IsAtEnd reports whether a non-looped clip has played to its end.
func (a *Animator) IsAtEnd(clip string) bool {
	st, ok := a.states[clip]
	if !ok || st.looped {
		return false
	}
	return st.time >= st.clip.Length
}

// SetTime moves a playing clip to t, clamped to its length.
func (a *Animator) SetTime(clip string, t float32) {
	st, ok := a.states[clip]
	if !ok {
		return
	}
	st.time = clamp(t, 0, st.clip.Length)
}

// Playing returns the clip on layer, or "".
func (a *Animator) Playing(layer int) string {
	if st, ok := a.layers[layer]; ok {
		return st.clip.Name
	}
	return ""
}

// Advance moves every playing clip forward by dt seconds and records the
// markers crossed.
func (a *Animator) Advance(dt float32) {
	for _, st := range a.layers {
		from := st.time
		to := from + dt
		length := st.clip.Length

		if !st.looped || length <= 0 {
			to = clamp(to, 0, length)
			a.fire(st.clip, from, to)
			st.time = to
			continue
		}

		if to < length {
			a.fire(st.clip, from, to)
			st.time = to
			continue
		}
		a.fire(st.clip, from, length)
		to = float32(gomath.Mod(float64(to), float64(length)))
		a.fire(st.clip, -1, to)
		st.time = to
	}
}

// fire records markers in (from, to].
func (a *Animator) fire(c *Clip, from, to float32) {
	for _, m := range c.Markers {
		if m.Time > from && m.Time <= to {
			var pos math.Vec3
			if a.locate != nil {
				pos = a.locate(m.Data)
			}
			a.pending = append(a.pending, event.AnimationTrigger{Data: m.Data, Position: pos})
		}
	}
}

// TakeTriggers returns and clears the markers recorded since the last call.
func (a *Animator) TakeTriggers() []event.AnimationTrigger {
	out := a.pending
	a.pending = nil
	return out
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
