package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/autopilot"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/game"
	"github.com/pthm-cable/aquarium/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	speed := flag.Float64("speed", 1, "Initial time scale")
	pilot := flag.Bool("autopilot", true, "Let the scripted player run the tank in headless mode")
	overlays := flag.String("overlays", "", "Overlay changes at startup, e.g. \"perf,-hunger_bars\" or \"none,effects\"")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	g, err := game.New(cfg, game.Options{
		Seed:        rngSeed,
		LogStats:    *logStats,
		OutputDir:   *outputDir,
		StatsWindow: *statsWindow,
	})
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	if err := g.SetTimeScale(*speed); err != nil {
		slog.Error("invalid speed", "error", err)
		return
	}

	if *headless {
		runHeadless(g, *maxTicks, *pilot)
		return
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Aquarium")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	app := ui.NewApp(g)
	if err := app.Overlays().Apply(*overlays); err != nil {
		slog.Warn("overlay flag", "error", err)
	}
	for !rl.WindowShouldClose() {
		app.Frame()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			break
		}
	}
}

// runHeadless advances the game one nominal frame at a time with no window.
func runHeadless(g *game.Game, maxTicks int, usePilot bool) {
	dt := g.Config().Derived.TickDT

	slog.Info("starting headless simulation",
		"seed", g.Seed(),
		"max_ticks", maxTicks,
		"time_scale", g.TimeScale(),
		"autopilot", usePilot,
	)

	var p *autopilot.Pilot
	if usePilot {
		p = autopilot.New(autopilot.DefaultPolicy())
	}

	for {
		g.Update(dt)
		if p != nil {
			p.Step(g, dt*g.TimeScale())
		}

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached",
				"tick", g.Tick(),
				"sim_time", g.SimTime(),
				"coins", g.Coins(),
				"fish", g.FishCount(),
				"total_sold", g.TotalSold(),
			)
			return
		}
	}
}
