package main

import (
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/systems"
)

// StageRow is the best-case economics of raising one fish to a stage.
type StageRow struct {
	Stage       int
	Meals       int     // Meals eaten from stage 1 to reach this stage
	GrowSeconds float64 // Fastest time to reach the stage, limited by the eat cooldown
	FeedCost    float64 // Seaweed bought for those meals
	Earned      float64 // Passive income collected while growing
	IncomeRate  float64 // Coins per second at this stage
	SellPrice   float64
	Margin      float64 // Sale plus income minus fish and feed cost

	HungerRate   float64 // Hunger per second
	ToHungry     float64 // Seconds from a meal until the fish seeks food
	ToStarvation float64 // Seconds from a meal until the fish can starve
}

// StageEconomics tabulates every stage for a fish bought at price.
func StageEconomics(cfg *config.Config, price float64) []StageRow {
	rows := make([]StageRow, 0, cfg.Growth.MaxStage)

	var meals int
	var grow, earned float64
	for stage := 1; stage <= cfg.Growth.MaxStage; stage++ {
		if stage > 1 {
			prev := cfg.FoodNeeded(stage - 1)
			seconds := float64(prev) * cfg.Feeding.EatCooldown
			meals += prev
			grow += seconds
			earned += seconds * systems.IncomeRate([]int{stage - 1}, cfg)
		}

		feed := float64(meals) * cfg.Economy.SeaweedPrice
		sell := systems.SellPrice(stage, cfg)
		rate := systems.HungerRate(stage, cfg)

		row := StageRow{
			Stage:       stage,
			Meals:       meals,
			GrowSeconds: grow,
			FeedCost:    feed,
			Earned:      earned,
			IncomeRate:  systems.IncomeRate([]int{stage}, cfg),
			SellPrice:   sell,
			Margin:      sell + earned - feed - price,
			HungerRate:  rate,
		}
		if rate > 0 {
			row.ToHungry = cfg.Hunger.HungryThreshold / rate
			row.ToStarvation = cfg.Hunger.DeathThreshold / rate
		}
		rows = append(rows, row)
	}
	return rows
}

// BestStage returns the stage with the highest margin per second of
// growing, which is where a player should sell. It returns 1 when the
// schedule has a single stage.
func BestStage(rows []StageRow) int {
	best, bestRate := 1, 0.0
	found := false
	for _, r := range rows {
		if r.GrowSeconds <= 0 {
			continue
		}
		rate := r.Margin / r.GrowSeconds
		if !found || rate > bestRate {
			best, bestRate, found = r.Stage, rate, true
		}
	}
	return best
}
