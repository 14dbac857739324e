// Package main is the entry point for the splash simulation.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/materialfx/internal/config"
	"github.com/Faultbox/materialfx/internal/effects"
	"github.com/Faultbox/materialfx/internal/locomotion"
	"github.com/Faultbox/materialfx/internal/logger"
	"github.com/Faultbox/materialfx/internal/sim"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger; the terminal view owns the console, so logs only
	// go to the log file while it runs
	if err := initLogger(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== MaterialFX splash simulation ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("simulation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("simulation finished normally")
}

func initLogger(cfg *config.Config) error {
	if !cfg.View.Enabled {
		return logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	}
	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	return logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, false)
}

func run(cfg *config.Config) error {
	assets := os.DirFS(cfg.Effects.DataDir)

	registry, err := effects.LoadRegistry(assets, cfg.Effects.List, logger.Named("registry"))
	if err != nil {
		return fmt.Errorf("loading effect templates: %w", err)
	}
	logger.Info("effect templates loaded",
		zap.String("data_dir", cfg.Effects.DataDir),
		zap.Int("templates", registry.Len()))

	host, err := sim.NewHost(sim.Options{
		Level:    sim.DefaultLevel(),
		Gravity:  cfg.Simulation.Gravity,
		TimeStep: cfg.Simulation.TimeStep(),
		Tuning:   tuningFrom(cfg.Locomotion),
		Registry: registry,
		Assets:   assets,
	}, logger.Log)
	if err != nil {
		return fmt.Errorf("creating host: %w", err)
	}

	script := newScript(cfg.Simulation.Script)
	if cfg.View.Enabled {
		if err := runView(host, script, cfg); err != nil {
			return err
		}
	} else {
		runHeadless(host, script, cfg)
	}

	spawned, retired := host.Effects().Stats()
	logger.Info("simulation stats",
		zap.Uint64("ticks", host.Tick()),
		zap.Duration("simulated", cfg.Simulation.TickDuration()*time.Duration(host.Tick())),
		zap.Uint64("events", host.Dispatched()),
		zap.Uint64("effects_spawned", spawned),
		zap.Uint64("effects_retired", retired),
		zap.Int("effects_live", host.Effects().Len()))
	return nil
}

func runHeadless(host *sim.Host, script *script, cfg *config.Config) {
	ticks := cfg.Simulation.Ticks
	if ticks <= 0 {
		ticks = cfg.Simulation.ScriptTicks()
	}

	for i := 0; i < ticks; i++ {
		host.Step(script.next())

		if cfg.Simulation.TickRate > 0 && (i+1)%cfg.Simulation.TickRate == 0 {
			logTick(host)
		}
	}
}

func logTick(host *sim.Host) {
	st := host.Controller().State()
	pos := host.World().Body().Position()
	logger.Log.Debug("tick",
		zap.Uint64("tick", host.Tick()),
		zap.Stringer("phase", st.Phase),
		zap.Float32("x", pos.X),
		zap.Float32("y", pos.Y),
		zap.Float32("z", pos.Z),
		zap.Int("effects", host.Effects().Len()))
}

func tuningFrom(lc config.LocomotionConfig) locomotion.Tuning {
	t := locomotion.DefaultTuning()
	t.MoveForce = lc.MoveForce
	t.InAirMoveForce = lc.InAirMoveForce
	t.BrakeForce = lc.BrakeForce
	t.JumpForce = lc.JumpForce
	t.InAirThreshold = lc.InAirThreshold
	t.PlatformForceMultiplier = lc.PlatformForceMultiplier
	t.StepDownHeight = lc.StepDownHeight
	t.Clips = locomotion.Clips{
		Idle:      lc.Clips.Idle,
		Run:       lc.Clips.Run,
		JumpStart: lc.Clips.JumpStart,
		JumpLoop:  lc.Clips.JumpLoop,
		Fall:      lc.Clips.Fall,
	}
	return t
}
