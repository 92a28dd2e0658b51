package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/aquarium/components"
)

// ---------- Hunger ----------

func TestHungerRate_GrowsWithStage(t *testing.T) {
	cfg := testConfig()
	tests := []struct {
		stage int
		want  float64
	}{
		{1, 0.5},
		{2, 0.625},
		{5, 1.0},
	}
	for _, tt := range tests {
		if got := HungerRate(tt.stage, cfg); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("HungerRate(%d) = %v, want %v", tt.stage, got, tt.want)
		}
	}
}

func TestStarving_RequiresEmptyRegistry(t *testing.T) {
	cfg := testConfig()
	fish := newTestFish(1, 1, components.SexMale)
	fish.Hunger = cfg.Hunger.DeathThreshold + 1

	if Starving(&fish, 1, cfg) {
		t.Error("fish must not starve while seaweed exists")
	}
	if !Starving(&fish, 0, cfg) {
		t.Error("fish above death threshold with no seaweed must starve")
	}

	fish.Hunger = cfg.Hunger.DeathThreshold - 1
	if Starving(&fish, 0, cfg) {
		t.Error("fish below death threshold must not starve")
	}
}

// ---------- Eating and growth ----------

func TestCanEat_Cooldown(t *testing.T) {
	cfg := testConfig()
	fish := newTestFish(1, 1, components.SexMale)
	fish.LastEat = 10

	if CanEat(&fish, 14.9, cfg) {
		t.Error("fish ate inside cooldown")
	}
	if !CanEat(&fish, 15, cfg) {
		t.Error("fish should eat once cooldown has elapsed")
	}
}

func TestEat_ResetsHungerAndCountsFood(t *testing.T) {
	cfg := testConfig()
	fish := newTestFish(1, 1, components.SexMale)
	fish.Hunger = 42
	fish.HasTarget = true
	body := BodyForStage(1, cfg)

	grew := Eat(&fish, &body, 20, cfg)

	if grew {
		t.Error("one meal should not grow a stage-1 fish")
	}
	if fish.Hunger != 0 || fish.FoodEaten != 1 || fish.LastEat != 20 {
		t.Errorf("after eating: hunger=%v food=%d lastEat=%v", fish.Hunger, fish.FoodEaten, fish.LastEat)
	}
	if fish.HasTarget {
		t.Error("target should be cleared after eating")
	}
}

func TestGrow_StageSchedule(t *testing.T) {
	cfg := testConfig()
	fish := newTestFish(1, 1, components.SexFemale)
	body := BodyForStage(1, cfg)

	meals := 0
	for fish.Stage < cfg.Growth.MaxStage {
		prevStage := fish.Stage
		Eat(&fish, &body, float64(meals)*10, cfg)
		meals++

		if fish.Stage < prevStage {
			t.Fatalf("stage decreased from %d to %d", prevStage, fish.Stage)
		}
		if fish.Stage < cfg.Growth.MaxStage && fish.FoodEaten >= cfg.FoodNeeded(fish.Stage) {
			t.Fatalf("food eaten %d not below requirement %d at stage %d", fish.FoodEaten, cfg.FoodNeeded(fish.Stage), fish.Stage)
		}
		if meals > 100 {
			t.Fatal("fish never reached max stage")
		}
	}

	// 3 + 5 + 7 + 10 meals to reach stage 5
	if meals != 25 {
		t.Errorf("meals to max stage = %d, want 25", meals)
	}
	wantW := cfg.Fish.BodyWidth * SizeScale(cfg.Growth.MaxStage, cfg)
	if math.Abs(body.Width-wantW) > 1e-9 {
		t.Errorf("body width = %v, want %v", body.Width, wantW)
	}

	// Max stage is final
	if Grow(&fish, &body, cfg) {
		t.Error("fish grew past max stage")
	}
}
