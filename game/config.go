package game

import "github.com/pthm-cable/aquarium/telemetry"

// Options holds configuration for game initialization that is not part of
// the simulation config file.
type Options struct {
	Seed      int64
	LogStats  bool   // log window stats and perf via slog
	OutputDir string // CSV output directory, empty to disable

	// StatsWindow overrides telemetry.stats_window when positive.
	StatsWindow float64

	// StatsCallback receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}

// DefaultOptions returns the default game options.
func DefaultOptions() Options {
	return Options{Seed: 42}
}
