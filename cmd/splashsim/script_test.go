package main

import (
	"testing"

	"github.com/Faultbox/materialfx/internal/config"
	"github.com/Faultbox/materialfx/internal/locomotion"
)

func TestScriptReplaysSteps(t *testing.T) {
	s := newScript([]config.ScriptStep{
		{Ticks: 2, Forward: true},
		{Ticks: 0, Back: true},
		{Ticks: 1, Jump: true, Yaw: 90},
	})

	want := []locomotion.Controls{
		{Forward: true},
		{Forward: true},
		{Jump: true, Yaw: 90},
		{Forward: true},
	}
	for i, w := range want {
		if got := s.next(); got != w {
			t.Errorf("tick %d: got %+v, want %+v", i, got, w)
		}
	}
}

func TestScriptEmpty(t *testing.T) {
	s := newScript(nil)
	if got := s.next(); got != (locomotion.Controls{}) {
		t.Errorf("empty script produced %+v", got)
	}
}

func TestTuningFromConfig(t *testing.T) {
	lc := config.Default().Locomotion
	lc.JumpForce = 9
	lc.Clips.Run = "run.ani"

	tuning := tuningFrom(lc)
	if tuning.JumpForce != 9 || tuning.Clips.Run != "run.ani" {
		t.Errorf("tuning = %+v", tuning)
	}
	def := locomotion.DefaultTuning()
	if tuning.RayDistance != def.RayDistance || tuning.RayMask != def.RayMask {
		t.Error("ray settings should keep their defaults")
	}
	if tuning.MoveForce != def.MoveForce {
		t.Errorf("move force = %f", tuning.MoveForce)
	}
}
