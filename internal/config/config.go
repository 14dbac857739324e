// Package config handles simulation configuration loading and management.
package config

import "time"

// Config holds all settings of the splash simulation.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Locomotion LocomotionConfig `yaml:"locomotion"`
	Effects    EffectsConfig    `yaml:"effects"`
	View       ViewConfig       `yaml:"view"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SimulationConfig holds the fixed-step loop settings and the scripted input.
type SimulationConfig struct {
	TickRate int          `yaml:"tick_rate"` // physics ticks per second
	Ticks    int          `yaml:"ticks"`     // 0 runs the script once
	Gravity  float32      `yaml:"gravity"`
	Script   []ScriptStep `yaml:"script"`
}

// ScriptStep holds the controls for a run of consecutive ticks.
type ScriptStep struct {
	Ticks   int     `yaml:"ticks"`
	Forward bool    `yaml:"forward"`
	Back    bool    `yaml:"back"`
	Left    bool    `yaml:"left"`
	Right   bool    `yaml:"right"`
	Jump    bool    `yaml:"jump"`
	Yaw     float32 `yaml:"yaw"`
}

// LocomotionConfig holds the character controller tuning.
type LocomotionConfig struct {
	MoveForce               float32     `yaml:"move_force"`
	InAirMoveForce          float32     `yaml:"in_air_move_force"`
	BrakeForce              float32     `yaml:"brake_force"`
	JumpForce               float32     `yaml:"jump_force"`
	InAirThreshold          float32     `yaml:"in_air_threshold"`
	PlatformForceMultiplier float32     `yaml:"platform_force_multiplier"`
	StepDownHeight          float32     `yaml:"step_down_height"`
	Clips                   ClipsConfig `yaml:"clips"`
}

// ClipsConfig names the character animation clips.
type ClipsConfig struct {
	Idle      string `yaml:"idle"`
	Run       string `yaml:"run"`
	JumpStart string `yaml:"jump_start"`
	JumpLoop  string `yaml:"jump_loop"`
	Fall      string `yaml:"fall"`
}

// EffectsConfig locates the effect template list.
type EffectsConfig struct {
	DataDir string `yaml:"data_dir"`
	List    string `yaml:"list"` // relative to DataDir
}

// ViewConfig holds the terminal view settings. Enabled runs the
// simulation in real time.
type ViewConfig struct {
	Enabled       bool    `yaml:"enabled"`
	CellsPerMeter float32 `yaml:"cells_per_meter"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// TimeStep returns the fixed tick duration in seconds.
func (s SimulationConfig) TimeStep() float32 {
	if s.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1 / float32(s.TickRate)
}

// TickDuration returns the fixed tick duration.
func (s SimulationConfig) TickDuration() time.Duration {
	return time.Duration(float64(time.Second) * float64(s.TimeStep()))
}

// ScriptTicks returns the number of ticks the script covers.
func (s SimulationConfig) ScriptTicks() int {
	total := 0
	for _, step := range s.Script {
		total += step.Ticks
	}
	return total
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TickRate: 60,
			Ticks:    0,
			Gravity:  -9.81,
			Script: []ScriptStep{
				{Ticks: 30},
				{Ticks: 240, Forward: true},
				{Ticks: 1, Forward: true, Jump: true},
				{Ticks: 60, Forward: true},
				{Ticks: 60},
			},
		},
		Locomotion: LocomotionConfig{
			MoveForce:               0.8,
			InAirMoveForce:          0.02,
			BrakeForce:              0.2,
			JumpForce:               7.0,
			InAirThreshold:          0.1,
			PlatformForceMultiplier: 0.25,
			StepDownHeight:          0.5,
			Clips: ClipsConfig{
				Idle:      "Models/Beta/Beta_Idle.ani",
				Run:       "Models/Beta/Beta_Run.ani",
				JumpStart: "Models/Beta/Beta_JumpStart.ani",
				JumpLoop:  "Models/Beta/Beta_JumpLoop1.ani",
				Fall:      "Models/Beta/Beta_JumpLoop1.ani",
			},
		},
		Effects: EffectsConfig{
			DataDir: "data",
			List:    "effects/splash_list.yaml",
		},
		View: ViewConfig{
			Enabled:       false,
			CellsPerMeter: 2,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
