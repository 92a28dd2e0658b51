package telemetry

import (
	"testing"
	"time"
)

func runSteps(pc *PerfCollector, n int, phases ...string) {
	for range n {
		pc.StartTick()
		for _, ph := range phases {
			pc.StartPhase(ph)
		}
		pc.EndTick()
	}
}

func TestPerfCollector_PhasesTracked(t *testing.T) {
	pc := NewPerfCollector(10)
	for range 5 {
		pc.StartTick()
		pc.StartPhase(PhaseStarvation)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseFish)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTickDuration <= 0 {
		t.Fatal("expected positive average step duration")
	}
	for _, ph := range []string{PhaseStarvation, PhaseFish} {
		if stats.PhaseAvg[ph] <= 0 {
			t.Errorf("phase %s not tracked", ph)
		}
	}
	if _, ok := stats.PhaseAvg[PhaseEconomy]; ok {
		t.Error("phase that never ran should be absent")
	}
}

func TestPerfCollector_Ordering(t *testing.T) {
	pc := NewPerfCollector(5)
	runSteps(pc, 12, PhaseStarvation, PhaseFish)

	s := pc.Stats()
	if !(s.MinTickDuration <= s.AvgTickDuration && s.AvgTickDuration <= s.MaxTickDuration) {
		t.Errorf("want min <= avg <= max, got %v %v %v", s.MinTickDuration, s.AvgTickDuration, s.MaxTickDuration)
	}
	if s.P95TickDuration < s.MinTickDuration || s.P95TickDuration > s.MaxTickDuration {
		t.Errorf("p95 %v outside [%v, %v]", s.P95TickDuration, s.MinTickDuration, s.MaxTickDuration)
	}
	if s.TicksPerSecond <= 0 {
		t.Error("expected positive steps per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)
	for range 5 {
		pc.StartTick()
		pc.StartPhase("fast")
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase("slow")
		time.Sleep(100 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.PhasePct["slow"] <= stats.PhasePct["fast"] {
		t.Errorf("slow %v%% should exceed fast %v%%", stats.PhasePct["slow"], stats.PhasePct["fast"])
	}
	if total := stats.PhasePct["slow"] + stats.PhasePct["fast"]; total > 100.0001 {
		t.Errorf("phase shares sum to %v%%", total)
	}
}

func TestPerfCollector_Empty(t *testing.T) {
	stats := NewPerfCollector(0).Stats()
	if stats.AvgTickDuration != 0 || stats.P95TickDuration != 0 {
		t.Error("expected zero durations for an empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollector_StepsPerFrame(t *testing.T) {
	pc := NewPerfCollector(60)

	pc.RecordFrame()
	runSteps(pc, 6, PhaseFish)
	pc.RecordFrame()
	if got := pc.Stats().StepsPerFrame; got != 6 {
		t.Errorf("steps per frame = %d, want 6", got)
	}

	// A paused frame runs no steps.
	pc.RecordFrame()
	if got := pc.Stats().StepsPerFrame; got != 0 {
		t.Errorf("steps per frame = %d, want 0", got)
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)
	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("frame duration = %v, want >= 15ms", stats.FrameDuration)
	}
	if stats.FPS <= 0 || stats.FPS > 65 {
		t.Errorf("fps = %v, want in (0, 65]", stats.FPS)
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: 250 * time.Microsecond,
		P95TickDuration: 400 * time.Microsecond,
		StepsPerFrame:   3,
		PhasePct: map[string]float64{
			PhaseFish:     70,
			PhaseSpawning: 5,
		},
	}

	rec := stats.ToCSV(600)
	if rec.WindowEnd != 600 || rec.AvgTickUS != 250 || rec.P95TickUS != 400 {
		t.Errorf("timing fields = (%d, %d, %d), want (600, 250, 400)", rec.WindowEnd, rec.AvgTickUS, rec.P95TickUS)
	}
	if rec.StepsPerFrame != 3 {
		t.Errorf("steps per frame = %d, want 3", rec.StepsPerFrame)
	}
	if rec.FishPct != 70 || rec.SpawningPct != 5 || rec.StarvationPct != 0 {
		t.Errorf("phase pct = (%v, %v, %v), want (70, 5, 0)", rec.FishPct, rec.SpawningPct, rec.StarvationPct)
	}
}
