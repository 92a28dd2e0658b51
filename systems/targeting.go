package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

// FoodCandidate is a seaweed that may be targeted this tick.
type FoodCandidate struct {
	E   ecs.Entity
	Pos components.Position
}

// TargetCost scores a seaweed for a fish at from. Distant seaweed and seaweed
// already targeted by other fish cost more.
func TargetCost(from, to components.Position, contenders int, cfg *config.Config) float64 {
	t := &cfg.Targeting
	return Distance(from, to)*t.DistanceWeight + float64(contenders)*t.ContentionWeight
}

// ChooseTarget returns the index of the cheapest candidate, or -1 if there
// are none. contention holds how many other fish target each seaweed; the
// caller must not count the choosing fish itself. Ties go to the earliest
// candidate.
func ChooseTarget(from components.Position, candidates []FoodCandidate, contention map[ecs.Entity]int, cfg *config.Config) int {
	best := -1
	var bestCost float64
	for i, c := range candidates {
		cost := TargetCost(from, c.Pos, contention[c.E], cfg)
		if best < 0 || cost < bestCost {
			best = i
			bestCost = cost
		}
	}
	return best
}
