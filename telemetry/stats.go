package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	Fish    int     `csv:"fish"`
	Seaweed int     `csv:"seaweed"`
	Coins   float64 `csv:"coins"`

	// Events during window
	FishBought    int `csv:"fish_bought"`
	FishSold      int `csv:"fish_sold"`
	SeaweedBought int `csv:"seaweed_bought"`
	Meals         int `csv:"meals"`
	Growths       int `csv:"growths"`
	Pairings      int `csv:"pairings"`
	Cancellations int `csv:"cancellations"`
	Breedings     int `csv:"breedings"`
	Births        int `csv:"births"`
	Starved       int `csv:"starved"`

	// Coin flows during window
	Income       float64 `csv:"income"`        // Passive income from the population
	Spent        float64 `csv:"spent"`         // Purchases
	SalesRevenue float64 `csv:"sales_revenue"` // Fish sold
	Penalties    float64 `csv:"penalties"`     // Starvation penalties actually deducted

	// Hunger distribution (sampled at window end)
	HungerMean float64 `csv:"hunger_mean"`
	HungerP10  float64 `csv:"hunger_p10"`
	HungerP50  float64 `csv:"hunger_p50"`
	HungerP90  float64 `csv:"hunger_p90"`
	Hungry     int     `csv:"hungry"`

	// Growth distribution
	StageMean float64 `csv:"stage_mean"`
	StageStd  float64 `csv:"stage_std"`
	Mature    int     `csv:"mature"`
}

// ComputeHungerStats calculates mean and deciles from hunger values.
func ComputeHungerStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.LinInterp, sorted, nil)
	p50 = stat.Quantile(0.50, stat.LinInterp, sorted, nil)
	p90 = stat.Quantile(0.90, stat.LinInterp, sorted, nil)
	return mean, p10, p50, p90
}

// ComputeStageStats calculates mean and standard deviation of stages.
// The deviation is zero for fewer than two fish.
func ComputeStageStats(values []float64) (mean, std float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}
	return stat.MeanStdDev(values, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("fish", s.Fish),
		slog.Int("seaweed", s.Seaweed),
		slog.Float64("coins", s.Coins),
		slog.Int("births", s.Births),
		slog.Int("starved", s.Starved),
		slog.Float64("hunger_mean", s.HungerMean),
		slog.Float64("stage_mean", s.StageMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("window_stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"fish", s.Fish,
		"seaweed", s.Seaweed,
		"coins", s.Coins,
		"fish_bought", s.FishBought,
		"fish_sold", s.FishSold,
		"seaweed_bought", s.SeaweedBought,
		"meals", s.Meals,
		"growths", s.Growths,
		"pairings", s.Pairings,
		"breedings", s.Breedings,
		"births", s.Births,
		"starved", s.Starved,
		"income", s.Income,
		"spent", s.Spent,
		"sales_revenue", s.SalesRevenue,
		"penalties", s.Penalties,
		"hunger_mean", s.HungerMean,
		"hunger_p10", s.HungerP10,
		"hunger_p50", s.HungerP50,
		"hunger_p90", s.HungerP90,
		"hungry", s.Hungry,
		"stage_mean", s.StageMean,
		"stage_std", s.StageStd,
		"mature", s.Mature,
	)
}
