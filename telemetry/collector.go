package telemetry

// Population is the state sampled at the end of a stats window.
type Population struct {
	Fish    int
	Seaweed int
	Coins   float64
	Hungers []float64
	Stages  []float64
	Hungry  int // fish above the hungry threshold
	Mature  int // fish at the final stage
}

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec float64

	// Current window tracking
	windowStartTick int32
	windowStartTime float64

	// Event counters for current window
	counts        [numEventTypes]int
	seaweedBought int
	births        int
	income        float64
	spent         float64
	salesRevenue  float64
	penalties     float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds.
func NewCollector(windowDurationSec float64) *Collector {
	if windowDurationSec <= 0 {
		windowDurationSec = 10
	}
	return &Collector{windowDurationSec: windowDurationSec}
}

// Record counts an event in the current window.
func (c *Collector) Record(ev Event) {
	if ev.Type >= numEventTypes {
		return
	}
	c.counts[ev.Type]++

	switch ev.Type {
	case EventSeaweedBought:
		c.seaweedBought += ev.Count
	case EventHatch:
		c.births += ev.Count
	case EventFishSold:
		c.salesRevenue += ev.Coins
	case EventStarved:
		c.penalties -= ev.Coins
	}
	if ev.Coins < 0 && ev.Type != EventStarved {
		c.spent -= ev.Coins
	}
}

// RecordIncome adds passive income earned during a step.
func (c *Collector) RecordIncome(amount float64) {
	c.income += amount
}

// ShouldFlush returns true once the window has covered its duration.
func (c *Collector) ShouldFlush(simTime float64) bool {
	return simTime-c.windowStartTime >= c.windowDurationSec
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, simTime float64, pop Population) WindowStats {
	hMean, hP10, hP50, hP90 := ComputeHungerStats(pop.Hungers)
	sMean, sStd := ComputeStageStats(pop.Stages)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      simTime,

		Fish:    pop.Fish,
		Seaweed: pop.Seaweed,
		Coins:   pop.Coins,

		FishBought:    c.counts[EventFishBought],
		FishSold:      c.counts[EventFishSold],
		SeaweedBought: c.seaweedBought,
		Meals:         c.counts[EventMeal],
		Growths:       c.counts[EventGrowth],
		Pairings:      c.counts[EventPaired],
		Cancellations: c.counts[EventCancelled],
		Breedings:     c.counts[EventBred],
		Births:        c.births,
		Starved:       c.counts[EventStarved],

		Income:       c.income,
		Spent:        c.spent,
		SalesRevenue: c.salesRevenue,
		Penalties:    c.penalties,

		HungerMean: hMean,
		HungerP10:  hP10,
		HungerP50:  hP50,
		HungerP90:  hP90,
		Hungry:     pop.Hungry,

		StageMean: sMean,
		StageStd:  sStd,
		Mature:    pop.Mature,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.windowStartTime = simTime
	c.counts = [numEventTypes]int{}
	c.seaweedBought = 0
	c.births = 0
	c.income = 0
	c.spent = 0
	c.salesRevenue = 0
	c.penalties = 0

	return stats
}

// WindowDuration returns the window length in simulated seconds.
func (c *Collector) WindowDuration() float64 {
	return c.windowDurationSec
}
