package systems

import (
	"math"
	"testing"
)

func TestSellPrice(t *testing.T) {
	cfg := testConfig()
	for stage := 1; stage <= cfg.Growth.MaxStage; stage++ {
		want := cfg.Economy.SellBasePrice * (1 + float64(stage-1)*0.4)
		if got := SellPrice(stage, cfg); got != want {
			t.Errorf("SellPrice(%d) = %v, want %v", stage, got, want)
		}
	}
}

func TestStageMultiplier(t *testing.T) {
	want := []float64{1, 2, 4, 7, 11}
	for i, w := range want {
		if got := StageMultiplier(i + 1); got != w {
			t.Errorf("StageMultiplier(%d) = %v, want %v", i+1, got, w)
		}
	}
}

func TestIncomeRate(t *testing.T) {
	cfg := testConfig()
	got := IncomeRate([]int{1, 1, 5}, cfg)
	want := cfg.Economy.BaseIncome * (1 + 1 + 11)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("IncomeRate = %v, want %v", got, want)
	}
	if IncomeRate(nil, cfg) != 0 {
		t.Error("empty tank should earn nothing")
	}
}

func TestApplyPenalty_ClampsAtZero(t *testing.T) {
	tests := []struct {
		coins, penalty, want float64
	}{
		{10, 5, 5},
		{3, 5, 0},
		{0, 5, 0},
	}
	for _, tt := range tests {
		if got := ApplyPenalty(tt.coins, tt.penalty); got != tt.want {
			t.Errorf("ApplyPenalty(%v, %v) = %v, want %v", tt.coins, tt.penalty, got, tt.want)
		}
	}
}
