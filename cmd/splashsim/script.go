package main

import (
	"github.com/Faultbox/materialfx/internal/config"
	"github.com/Faultbox/materialfx/internal/locomotion"
)

// script replays the configured steps, starting over when it runs out.
type script struct {
	steps []config.ScriptStep
	step  int
	tick  int
}

func newScript(steps []config.ScriptStep) *script {
	s := &script{}
	for _, st := range steps {
		if st.Ticks > 0 {
			s.steps = append(s.steps, st)
		}
	}
	return s
}

// next returns the controls for the coming tick.
func (s *script) next() locomotion.Controls {
	if len(s.steps) == 0 {
		return locomotion.Controls{}
	}

	st := s.steps[s.step]
	s.tick++
	if s.tick >= st.Ticks {
		s.tick = 0
		s.step = (s.step + 1) % len(s.steps)
	}

	return locomotion.Controls{
		Forward: st.Forward,
		Back:    st.Back,
		Left:    st.Left,
		Right:   st.Right,
		Jump:    st.Jump,
		Yaw:     st.Yaw,
	}
}
