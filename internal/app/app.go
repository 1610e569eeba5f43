package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/timegraph/internal/backend"
	"github.com/atomicstack/timegraph/internal/capture"
	"github.com/atomicstack/timegraph/internal/logging/events"
	"github.com/atomicstack/timegraph/internal/timegraph"
	"github.com/atomicstack/timegraph/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width        int
	Height       int
	Threads      int
	Duration     time.Duration
	Seed         uint64
	Live         bool
	LiveInterval time.Duration
	LayoutPath   string
	Filter       string
}

// liveSteps is how many polls a live capture takes to reach its full length.
const liveSteps = 20

// Provider builds the capture source described by cfg. Live captures start at
// a tenth of the duration and grow by a step per poll.
func Provider(cfg Config) (capture.Provider, time.Duration, error) {
	opts := capture.SynthOptions{
		ProcessID:   4200,
		ProcessName: "synthetic",
		Threads:     cfg.Threads,
		Duration:    capture.Tick(cfg.Duration.Nanoseconds()),
		Seed:        cfg.Seed,
		Version:     1,
	}
	if !cfg.Live {
		c, err := capture.Synthesize(opts)
		if err != nil {
			return nil, 0, fmt.Errorf("build capture: %w", err)
		}
		return capture.Static{Capture: c}, 0, nil
	}
	limit := opts.Duration
	opts.Duration = max(limit/10, 1)
	step := max((limit-opts.Duration)/liveSteps, 1)
	return capture.NewLive(opts, step, limit), cfg.LiveInterval, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	layout, err := timegraph.LoadLayout(cfg.LayoutPath)
	if err != nil {
		return fmt.Errorf("load layout: %w", err)
	}
	provider, interval, err := Provider(cfg)
	if err != nil {
		return err
	}
	watcher := backend.NewWatcher(provider, interval)
	defer watcher.Stop()
	model := ui.NewModel(layout, cfg.Width, cfg.Height, watcher, provider, cfg.Filter)
	defer model.Close()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	events.App.Stop(stopReason(err))
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func stopReason(err error) string {
	if err == nil {
		return "quit"
	}
	return err.Error()
}
