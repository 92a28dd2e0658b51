package telemetry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/pthm-cable/aquarium/config"
)

// Achievement is an unlocked sales milestone.
type Achievement struct {
	Name    string  `csv:"name"`
	Sales   int     `csv:"sales"`
	Tick    int32   `csv:"tick"`
	SimTime float64 `csv:"sim_time"`
}

// Description returns the player-facing text.
func (a Achievement) Description() string {
	if a.Sales == 1 {
		return fmt.Sprintf("%s: sold your first fish", a.Name)
	}
	return fmt.Sprintf("%s: sold %d fish", a.Name, a.Sales)
}

// LogAchievement logs the achievement using slog.
func (a Achievement) LogAchievement() {
	slog.Info("achievement_unlocked",
		"name", a.Name,
		"sales", a.Sales,
		"tick", a.Tick,
		"sim_time", a.SimTime,
	)
}

// AchievementTracker unlocks sales milestones. Each milestone fires once.
type AchievementTracker struct {
	milestones []config.AchievementConfig
	unlocked   []bool
}

// NewAchievementTracker creates a tracker for the given milestones.
func NewAchievementTracker(milestones []config.AchievementConfig) *AchievementTracker {
	ms := make([]config.AchievementConfig, len(milestones))
	copy(ms, milestones)
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].Sales < ms[j].Sales })
	return &AchievementTracker{
		milestones: ms,
		unlocked:   make([]bool, len(ms)),
	}
}

// Check returns the milestones newly reached at totalSold, in ascending order.
func (t *AchievementTracker) Check(totalSold int, tick int32, simTime float64) []Achievement {
	var out []Achievement
	for i, m := range t.milestones {
		if t.unlocked[i] || totalSold < m.Sales {
			continue
		}
		t.unlocked[i] = true
		out = append(out, Achievement{Name: m.Name, Sales: m.Sales, Tick: tick, SimTime: simTime})
	}
	return out
}

// Unlocked returns the names of unlocked milestones.
func (t *AchievementTracker) Unlocked() []string {
	var names []string
	for i, m := range t.milestones {
		if t.unlocked[i] {
			names = append(names, m.Name)
		}
	}
	return names
}
