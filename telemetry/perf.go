package telemetry

import (
	"log/slog"
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Phase names for the simulation step.
const (
	PhaseStarvation = "starvation"
	PhaseFish       = "fish"
	PhaseContact    = "contact"
	PhaseSpawning   = "spawning"
	PhaseEconomy    = "economy"
	PhaseTelemetry  = "telemetry"
)

var phaseOrder = []string{
	PhaseStarvation, PhaseFish, PhaseContact,
	PhaseSpawning, PhaseEconomy, PhaseTelemetry,
}

// Phases returns the step phases in execution order.
func Phases() []string {
	return append([]string(nil), phaseOrder...)
}

// stepSample is the timing of one simulation step, in seconds.
type stepSample struct {
	total  float64
	phases map[string]float64
}

// PerfCollector times simulation steps over a ring of recent samples.
// A rendered frame may run zero or many steps depending on the time
// scale, so frames are counted separately.
type PerfCollector struct {
	ring  []stepSample
	next  int
	count int

	stepStart  time.Time
	phaseStart time.Time
	phase      string
	current    map[string]float64

	lastFrame      time.Time
	frameDuration  time.Duration
	stepsThisFrame int
	stepsPerFrame  int
}

// NewPerfCollector keeps the last windowSize steps (60 when not positive).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		ring:    make([]stepSample, windowSize),
		current: make(map[string]float64),
	}
}

// StartTick begins timing a simulation step.
func (p *PerfCollector) StartTick() {
	p.stepStart = time.Now()
	p.current = make(map[string]float64, len(phaseOrder))
	p.phase = ""
}

// StartPhase closes the running phase, if any, and opens the next one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = phase
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase != "" {
		p.current[p.phase] += now.Sub(p.phaseStart).Seconds()
	}
}

// EndTick closes the step and stores it, overwriting the oldest sample
// once the ring is full.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.phase = ""

	p.ring[p.next] = stepSample{total: now.Sub(p.stepStart).Seconds(), phases: p.current}
	p.next = (p.next + 1) % len(p.ring)
	p.count = min(p.count+1, len(p.ring))
	p.stepsThisFrame++
}

// RecordFrame marks the end of a rendered frame.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frameDuration = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
	p.stepsPerFrame = p.stepsThisFrame
	p.stepsThisFrame = 0
}

// PerfStats summarises the sampled steps.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	P95TickDuration time.Duration

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // Share of the average step, 0..100

	TicksPerSecond float64 // Step throughput if nothing else ran

	FrameDuration time.Duration
	FPS           float64
	StepsPerFrame int // Steps run during the last rendered frame
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Stats aggregates the samples currently in the ring.
func (p *PerfCollector) Stats() PerfStats {
	out := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.frameDuration,
		StepsPerFrame: p.stepsPerFrame,
	}
	if p.frameDuration > 0 {
		out.FPS = 1 / p.frameDuration.Seconds()
	}
	if p.count == 0 {
		return out
	}

	totals := make([]float64, p.count)
	phaseSum := make(map[string]float64)
	for i, s := range p.ring[:p.count] {
		totals[i] = s.total
		for name, d := range s.phases {
			phaseSum[name] += d
		}
	}

	mean := stat.Mean(totals, nil)
	out.AvgTickDuration = seconds(mean)
	out.MinTickDuration = seconds(floats.Min(totals))
	out.MaxTickDuration = seconds(floats.Max(totals))

	slices.Sort(totals)
	out.P95TickDuration = seconds(stat.Quantile(0.95, stat.Empirical, totals, nil))

	n := float64(p.count)
	for name, sum := range phaseSum {
		avg := sum / n
		out.PhaseAvg[name] = seconds(avg)
		if mean > 0 {
			out.PhasePct[name] = avg / mean * 100
		}
	}
	if mean > 0 {
		out.TicksPerSecond = 1 / mean
	}
	return out
}

// LogStats logs the summary at info level.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// LogValue implements slog.LogValuer. Phases under 0.1% are left out.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_step_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("p95_step_us", s.P95TickDuration.Microseconds()),
		slog.Int64("max_step_us", s.MaxTickDuration.Microseconds()),
		slog.Int("steps_per_sec", int(s.TicksPerSecond)),
	}
	if s.FPS > 0 {
		attrs = append(attrs,
			slog.Int("fps", int(s.FPS)),
			slog.Int("steps_per_frame", s.StepsPerFrame))
	}
	for _, phase := range phaseOrder {
		if pct := s.PhasePct[phase]; pct > 0.1 {
			attrs = append(attrs, slog.Float64(phase+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one row of perf.csv.
type PerfStatsCSV struct {
	WindowEnd     int32   `csv:"window_end"`
	AvgTickUS     int64   `csv:"avg_step_us"`
	MinTickUS     int64   `csv:"min_step_us"`
	MaxTickUS     int64   `csv:"max_step_us"`
	P95TickUS     int64   `csv:"p95_step_us"`
	TicksPerSec   float64 `csv:"steps_per_sec"`
	FPS           float64 `csv:"fps"`
	StepsPerFrame int     `csv:"steps_per_frame"`
	StarvationPct float64 `csv:"starvation_pct"`
	FishPct       float64 `csv:"fish_pct"`
	ContactPct    float64 `csv:"contact_pct"`
	SpawningPct   float64 `csv:"spawning_pct"`
	EconomyPct    float64 `csv:"economy_pct"`
	TelemetryPct  float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats for the window ending at windowEnd.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:     windowEnd,
		AvgTickUS:     s.AvgTickDuration.Microseconds(),
		MinTickUS:     s.MinTickDuration.Microseconds(),
		MaxTickUS:     s.MaxTickDuration.Microseconds(),
		P95TickUS:     s.P95TickDuration.Microseconds(),
		TicksPerSec:   s.TicksPerSecond,
		FPS:           s.FPS,
		StepsPerFrame: s.StepsPerFrame,
		StarvationPct: s.PhasePct[PhaseStarvation],
		FishPct:       s.PhasePct[PhaseFish],
		ContactPct:    s.PhasePct[PhaseContact],
		SpawningPct:   s.PhasePct[PhaseSpawning],
		EconomyPct:    s.PhasePct[PhaseEconomy],
		TelemetryPct:  s.PhasePct[PhaseTelemetry],
	}
}
