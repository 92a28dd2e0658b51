package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/aquarium/systems"
	"github.com/pthm-cable/aquarium/telemetry"
)

// maxQueued bounds each front-end queue when nobody drains it.
const maxQueued = 256

// emit stamps an event, counts it and queues it for the front-end.
func (g *Game) emit(ev telemetry.Event) {
	ev.Tick = g.tick
	ev.SimTime = g.simTime
	g.collector.Record(ev)
	if ev.Notable() {
		g.notifications = appendCapped(g.notifications, ev)
	}
	if ev.Located() {
		g.effects = appendCapped(g.effects, ev)
	}
}

// appendCapped appends ev, dropping the oldest entry once the queue is full.
func appendCapped(queue []telemetry.Event, ev telemetry.Event) []telemetry.Event {
	if len(queue) >= maxQueued {
		queue = append(queue[:0], queue[1:]...)
	}
	return append(queue, ev)
}

// Notifications drains the queued player-facing events, oldest first.
func (g *Game) Notifications() []telemetry.Event {
	out := g.notifications
	g.notifications = nil
	return out
}

// Effects drains the queued events that happened at a point in the tank,
// oldest first. The front-end turns them into particles.
func (g *Game) Effects() []telemetry.Event {
	out := g.effects
	g.effects = nil
	return out
}

// checkAchievements unlocks sales milestones reached by the last sale.
func (g *Game) checkAchievements() {
	for _, a := range g.achievements.Check(g.totalSold, g.tick, g.simTime) {
		a.LogAchievement()
		g.emit(telemetry.Event{
			Type:    telemetry.EventAchievement,
			Count:   a.Sales,
			Message: a.Description(),
		})
		if err := g.outputManager.WriteAchievement(a); err != nil {
			slog.Error("failed to write achievement", "error", err)
		}
	}
}

// flushTelemetry closes the stats window once it has elapsed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.simTime) {
		return
	}

	stats := g.collector.Flush(g.tick, g.simTime, g.samplePopulation())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// samplePopulation collects the end-of-window population state.
func (g *Game) samplePopulation() telemetry.Population {
	pop := telemetry.Population{
		Fish:    g.FishCount(),
		Seaweed: g.seaweedCount,
		Coins:   g.coins,
		Hungers: make([]float64, 0, g.FishCount()),
		Stages:  make([]float64, 0, g.FishCount()),
	}

	query := g.fishFilter.Query()
	for query.Next() {
		_, _, _, fish, _, _ := query.Get()
		pop.Hungers = append(pop.Hungers, fish.Hunger)
		pop.Stages = append(pop.Stages, float64(fish.Stage))
		if systems.IsHungry(fish, g.cfg) {
			pop.Hungry++
		}
		if fish.Stage >= g.cfg.Growth.MaxStage {
			pop.Mature++
		}
	}
	return pop
}

func starvedMessage(id uint32) string {
	return fmt.Sprintf("Fish #%d starved", id)
}

func grewMessage(id uint32, stage int) string {
	return fmt.Sprintf("Fish #%d grew to stage %d", id, stage)
}

func bredMessage(a, b uint32) string {
	return fmt.Sprintf("Fish #%d and #%d bred", a, b)
}

func hatchMessage(mother uint32, n int) string {
	return fmt.Sprintf("Fish #%d had %d babies", mother, n)
}
