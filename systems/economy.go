package systems

import "github.com/pthm-cable/aquarium/config"

// SellPrice returns the coins paid for a fish at the given stage.
func SellPrice(stage int, cfg *config.Config) float64 {
	e := &cfg.Economy
	return e.SellBasePrice * (1 + float64(stage-1)*e.SellStageBonus)
}

// StageMultiplier is the income weight of one fish. It grows super-linearly
// so raising fish pays more than hoarding babies: 1, 2, 4, 7, 11 for
// stages 1 to 5.
func StageMultiplier(stage int) float64 {
	s := float64(stage)
	return 1 + (s-1)*(s/2)
}

// IncomeRate returns coins per second for a population with the given stages.
func IncomeRate(stages []int, cfg *config.Config) float64 {
	var sum float64
	for _, s := range stages {
		sum += StageMultiplier(s)
	}
	return cfg.Economy.BaseIncome * sum
}

// ApplyPenalty deducts penalty from coins without going below zero.
func ApplyPenalty(coins, penalty float64) float64 {
	coins -= penalty
	if coins < 0 {
		return 0
	}
	return coins
}
