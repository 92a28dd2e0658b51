package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/aquarium/config"
)

func TestStageEconomics(t *testing.T) {
	cfg := config.MustLoad("")
	rows := StageEconomics(cfg, 8)

	if len(rows) != cfg.Growth.MaxStage {
		t.Fatalf("got %d rows, want %d", len(rows), cfg.Growth.MaxStage)
	}

	first := rows[0]
	if first.Meals != 0 || first.GrowSeconds != 0 || first.FeedCost != 0 {
		t.Errorf("stage 1 should cost nothing to reach, got %+v", first)
	}
	if math.Abs(first.Margin-(3-8)) > 1e-9 {
		t.Errorf("stage 1 margin = %v, want -5", first.Margin)
	}
	if math.Abs(first.ToHungry-60) > 1e-9 || math.Abs(first.ToStarvation-300) > 1e-9 {
		t.Errorf("stage 1 hunger timings = %v, %v", first.ToHungry, first.ToStarvation)
	}

	// Stage 2: 3 meals at 5s cooldown and 3 coins each, 0.02/s income while at stage 1.
	second := rows[1]
	tests := []struct {
		name      string
		got, want float64
	}{
		{"grow seconds", second.GrowSeconds, 15},
		{"feed cost", second.FeedCost, 9},
		{"earned", second.Earned, 0.3},
		{"sell price", second.SellPrice, 4.2},
		{"margin", second.Margin, 4.2 + 0.3 - 9 - 8},
		{"income rate", second.IncomeRate, 0.04},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if last := rows[len(rows)-1]; last.Meals != 25 {
		t.Errorf("meals to final stage = %d, want 25", last.Meals)
	}
}

func TestBestStage(t *testing.T) {
	rows := []StageRow{
		{Stage: 1, Margin: 100},
		{Stage: 2, GrowSeconds: 10, Margin: 5},
		{Stage: 3, GrowSeconds: 20, Margin: 20},
		{Stage: 4, GrowSeconds: 40, Margin: 30},
	}
	if got := BestStage(rows); got != 3 {
		t.Errorf("BestStage = %d, want 3", got)
	}
	if got := BestStage(rows[:1]); got != 1 {
		t.Errorf("single stage BestStage = %d, want 1", got)
	}
}
