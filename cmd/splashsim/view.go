package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/materialfx/internal/config"
	"github.com/Faultbox/materialfx/internal/sim"
	"github.com/Faultbox/materialfx/internal/view"
)

// runView steps the host in real time and draws every tick until the
// tick budget runs out or the user quits with Esc, q or Ctrl-C. Without a
// tick budget the script repeats forever.
func runView(host *sim.Host, script *script, cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	v := view.New(screen, cfg.View.CellsPerMeter)

	ticker := time.NewTicker(cfg.Simulation.TickDuration())
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for ticks := cfg.Simulation.Ticks; ticks <= 0 || int(host.Tick()) < ticks; {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			host.Step(script.next())
			v.Draw(host)
			if cfg.Simulation.TickRate > 0 && int(host.Tick())%cfg.Simulation.TickRate == 0 {
				logTick(host)
			}
		}
	}
	return nil
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
