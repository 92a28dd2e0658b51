// Package game runs the aquarium: it owns the ECS world, the simulation
// clock and the coin balance, advances the population each tick and applies
// player commands.
package game

import (
	"fmt"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/systems"
	"github.com/pthm-cable/aquarium/telemetry"
)

// Game holds the complete simulation state. It is not safe for concurrent
// use; the caller drives Update and commands from one goroutine and reads
// snapshots between them.
type Game struct {
	cfg    *config.Config
	world  *ecs.World
	rng    *rand.Rand
	seed   int64
	bounds systems.Bounds

	// Entity mappers
	fishMap *ecs.Map6[
		components.Position,
		components.Velocity,
		components.Body,
		components.Fish,
		components.Motion,
		components.Breeding,
	]
	fishFilter *ecs.Filter6[
		components.Position,
		components.Velocity,
		components.Body,
		components.Fish,
		components.Motion,
		components.Breeding,
	]
	seaweedMap    *ecs.Map2[components.Position, components.Seaweed]
	seaweedFilter *ecs.Filter2[components.Position, components.Seaweed]

	// Fish IDs are monotonic and never reused.
	fishByID map[uint32]ecs.Entity
	nextID   uint32

	seaweedCount int
	nextSlot     int // next seaweed spawn point

	// Clock
	tick      int32
	simTime   float64
	timeScale float64
	paused    bool

	// Economy
	coins     float64
	totalSold int
	autoFeed  bool

	// Pending breeding selection, zero when none
	selected uint32

	notifications []telemetry.Event
	effects       []telemetry.Event

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	achievements  *telemetry.AchievementTracker
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)

	// Scratch buffers reused across steps
	stageBuf []int
}

// New creates a game with an empty tank and the starting coin balance.
func New(cfg *config.Config, opts Options) (*Game, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidArgument)
	}
	world := ecs.NewWorld()

	window := cfg.Telemetry.StatsWindow
	if opts.StatsWindow > 0 {
		window = opts.StatsWindow
	}

	g := &Game{
		cfg:    cfg,
		world:  world,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		seed:   opts.Seed,
		bounds: systems.BoundsFromConfig(cfg),
		fishMap: ecs.NewMap6[
			components.Position,
			components.Velocity,
			components.Body,
			components.Fish,
			components.Motion,
			components.Breeding,
		](world),
		fishFilter: ecs.NewFilter6[
			components.Position,
			components.Velocity,
			components.Body,
			components.Fish,
			components.Motion,
			components.Breeding,
		](world),
		seaweedMap:    ecs.NewMap2[components.Position, components.Seaweed](world),
		seaweedFilter: ecs.NewFilter2[components.Position, components.Seaweed](world),
		fishByID:      make(map[uint32]ecs.Entity),
		nextID:        1,
		timeScale:     1,
		coins:         cfg.Economy.StartingCoins,
		collector:     telemetry.NewCollector(window),
		perfCollector: telemetry.NewPerfCollector(int(window * cfg.Physics.SpeedScalar)),
		achievements:  telemetry.NewAchievementTracker(cfg.Achievements),
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}
	g.outputManager = om

	return g, nil
}

// Close flushes and closes telemetry output.
func (g *Game) Close() error {
	return g.outputManager.Close()
}

// Config returns the simulation config.
func (g *Game) Config() *config.Config { return g.cfg }

// Seed returns the RNG seed the game was created with.
func (g *Game) Seed() int64 { return g.seed }

// Tick returns the number of simulation steps run so far.
func (g *Game) Tick() int32 { return g.tick }

// SimTime returns elapsed simulated seconds.
func (g *Game) SimTime() float64 { return g.simTime }

// Coins returns the coin balance.
func (g *Game) Coins() float64 { return g.coins }

// TotalSold returns the number of fish sold.
func (g *Game) TotalSold() int { return g.totalSold }

// FishCount returns the population size.
func (g *Game) FishCount() int { return len(g.fishByID) }

// SeaweedCount returns the number of seaweed in the tank.
func (g *Game) SeaweedCount() int { return g.seaweedCount }

// TimeScale returns the simulation speed multiplier.
func (g *Game) TimeScale() float64 { return g.timeScale }

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool { return g.paused }

// AutoFeed reports whether automatic seaweed purchases are on.
func (g *Game) AutoFeed() bool { return g.autoFeed }

// Selected returns the fish awaiting a breeding partner, or zero.
func (g *Game) Selected() uint32 { return g.selected }

// PerfStats returns step timing over the current window.
func (g *Game) PerfStats() telemetry.PerfStats { return g.perfCollector.Stats() }

// SetStatsCallback replaces the callback receiving flushed stats windows.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) { g.statsCallback = fn }

// RecordFrame marks a rendered frame for FPS tracking.
func (g *Game) RecordFrame() { g.perfCollector.RecordFrame() }

// IncomeRate returns the current passive income in coins per second.
func (g *Game) IncomeRate() float64 {
	return systems.IncomeRate(g.stages(), g.cfg)
}

// stages returns the stage of every fish. The slice is reused.
func (g *Game) stages() []int {
	g.stageBuf = g.stageBuf[:0]
	query := g.fishFilter.Query()
	for query.Next() {
		_, _, _, fish, _, _ := query.Get()
		g.stageBuf = append(g.stageBuf, fish.Stage)
	}
	return g.stageBuf
}
