package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagTicks   = flag.Int("ticks", 0, "Number of ticks to simulate (0 runs the script once)")
	flagData    = flag.String("data", "", "Directory holding the effect templates")
	flagLogFile = flag.String("log-file", "", "Write logs to this file as well")
	flagView    = flag.Bool("view", false, "Show a top-down terminal view and run in real time")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTicks > 0 {
		cfg.Simulation.Ticks = *flagTicks
	}
	if *flagData != "" {
		cfg.Effects.DataDir = *flagData
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagView {
		cfg.View.Enabled = true
	}
}
