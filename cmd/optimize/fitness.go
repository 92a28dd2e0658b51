package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/aquarium/autopilot"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/game"
	"github.com/pthm-cable/aquarium/telemetry"
)

// FitnessEvaluator runs headless autopilot games and scores the economy.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int32
	seeds       []int64
	baseConfig  *config.Config
	policy      autopilot.Policy
	target      float64 // Wanted final coins as a multiple of the starting coins
	statsWindow float64

	// Best run tracking
	mu          sync.Mutex
	bestFitness float64
	bestWindows []telemetry.WindowStats
	lastQuality Quality // from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config, target float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		policy:      autopilot.DefaultPolicy(),
		target:      target,
		statsWindow: 30,
		bestFitness: math.Inf(1),
	}
}

// BestWindows returns the window stats of the best seed of the best
// evaluation.
func (fe *FitnessEvaluator) BestWindows() []telemetry.WindowStats {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestWindows
}

// LastQuality returns the averaged quality of the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() Quality {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// runResult holds the results from a single simulation run.
type runResult struct {
	startCoins  float64
	finalCoins  float64
	bankrupt    bool // ran out of fish with no money to restock
	windowStats []telemetry.WindowStats
}

// Quality breaks the score of a run into its parts, each in [0, 1].
type Quality struct {
	Profit    float64 // closeness of final coins to the target multiple
	Survival  float64 // share of fish that did not starve
	Sales     float64 // share of windows with at least one sale
	Stability float64 // steadiness of passive income
	Total     float64
}

// Quality component weights.
const (
	qualityWeightProfit    = 0.40
	qualityWeightSurvival  = 0.30
	qualityWeightSales     = 0.15
	qualityWeightStability = 0.15

	qualityWarmupWindows = 1 // skip the opening purchases
)

// Evaluate computes fitness for a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.baseConfig.Clone()
	fe.params.ApplyToConfig(cfg, x)

	type seedResult struct {
		quality Quality
		windows []telemetry.WindowStats
	}
	results := make([]seedResult, len(fe.seeds))

	// Games share nothing, so seeds run in parallel.
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			r := fe.runSimulation(cfg.Clone(), s)
			results[idx] = seedResult{quality: fe.computeQuality(r), windows: r.windowStats}
		}(i, seed)
	}
	wg.Wait()

	var avg Quality
	best := -1.0
	var bestWindows []telemetry.WindowStats
	for _, r := range results {
		avg.Profit += r.quality.Profit
		avg.Survival += r.quality.Survival
		avg.Sales += r.quality.Sales
		avg.Stability += r.quality.Stability
		avg.Total += r.quality.Total
		if r.quality.Total > best {
			best = r.quality.Total
			bestWindows = r.windows
		}
	}
	n := float64(len(results))
	avg.Profit /= n
	avg.Survival /= n
	avg.Sales /= n
	avg.Stability /= n
	avg.Total /= n

	fitness := -avg.Total

	fe.mu.Lock()
	if fitness < fe.bestFitness {
		fe.bestFitness = fitness
		fe.bestWindows = bestWindows
	}
	fe.lastQuality = avg
	fe.mu.Unlock()

	return fitness
}

// runSimulation plays one seeded game with the autopilot until maxTicks or
// bankruptcy.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) *runResult {
	result := &runResult{startCoins: cfg.Economy.StartingCoins}

	g, err := game.New(cfg, game.Options{
		Seed:        seed,
		StatsWindow: fe.statsWindow,
		StatsCallback: func(stats telemetry.WindowStats) {
			result.windowStats = append(result.windowStats, stats)
		},
	})
	if err != nil {
		result.bankrupt = true
		return result
	}
	defer g.Close()

	cheapest := math.Inf(1)
	for _, sp := range cfg.Species {
		cheapest = math.Min(cheapest, sp.Price)
	}

	pilot := autopilot.New(fe.policy)
	dt := cfg.Derived.TickDT
	for g.Tick() < fe.maxTicks {
		g.Update(dt)
		pilot.Step(g, dt)

		if g.FishCount() == 0 && g.Coins() < cheapest {
			result.bankrupt = true
			break
		}
	}

	result.finalCoins = g.Coins()
	return result
}

// computeQuality scores a run in [0, 1].
func (fe *FitnessEvaluator) computeQuality(r *runResult) Quality {
	var q Quality
	if r.bankrupt {
		return q
	}

	// 1. Profit: Gaussian in log space around the target multiple
	if r.finalCoins > 0 && r.startCoins > 0 {
		logErr := math.Log(r.finalCoins / (r.startCoins * fe.target))
		q.Profit = math.Exp(-logErr * logErr)
	}

	windows := r.windowStats
	if len(windows) > qualityWarmupWindows {
		windows = windows[qualityWarmupWindows:]
	}

	// 2. Survival: starved against everything that entered the tank
	var entered, starved, salesWindows int
	income := make([]float64, 0, len(windows))
	for _, w := range r.windowStats {
		entered += w.FishBought + w.Births
		starved += w.Starved
	}
	for _, w := range windows {
		if w.FishSold > 0 {
			salesWindows++
		}
		income = append(income, w.Income)
	}
	q.Survival = 1
	if entered > 0 {
		q.Survival = clamp01(1 - float64(starved)/float64(entered))
	}

	// 3. Sales pacing
	if len(windows) > 0 {
		q.Sales = float64(salesWindows) / float64(len(windows))
	}

	// 4. Income stability (coefficient of variation across windows)
	if len(income) >= 2 {
		mean, std := stat.MeanStdDev(income, nil)
		if mean > 0 {
			cv := std / mean
			q.Stability = math.Exp(-cv * cv)
		}
	}

	q.Total = clamp01(qualityWeightProfit*q.Profit +
		qualityWeightSurvival*q.Survival +
		qualityWeightSales*q.Sales +
		qualityWeightStability*q.Stability)
	return q
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
