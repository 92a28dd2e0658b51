package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/game"
)

func descriptor(t *testing.T, cfg *config.Config, id string) components.FieldDescriptor {
	t.Helper()
	for _, fd := range components.FishFieldDescriptors(cfg.Hunger.DeathThreshold) {
		if fd.ID == id {
			return fd
		}
	}
	t.Fatalf("no descriptor %q", id)
	return components.FieldDescriptor{}
}

func TestFishField(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	fish := game.FishView{
		ID:         4,
		Species:    components.SpeciesTetra,
		Sex:        components.SexFemale,
		Stage:      2,
		FoodEaten:  1,
		FoodNeeded: 3,
		Hunger:     cfg.Hunger.DeathThreshold / 2,
		Hungry:     true,
		SellPrice:  5,
	}

	tests := []struct {
		id       string
		contains string
	}{
		{"species", "Tetra"},
		{"sex", "female"},
		{"stage", "2"},
		{"food", "1/3"},
		{"hunger", "hungry"},
		{"breeding", "Idle"},
		{"sell_price", "5.0"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			v := FishField(descriptor(t, cfg, tt.id), fish, cfg)
			if !v.Visible {
				t.Fatal("field should be visible")
			}
			if !strings.Contains(v.Text, tt.contains) {
				t.Errorf("text = %q, want it to contain %q", v.Text, tt.contains)
			}
		})
	}
}

func TestFishField_HungerBarRatio(t *testing.T) {
	cfg, _ := config.Load("")
	fd := descriptor(t, cfg, "hunger")

	v := FishField(fd, game.FishView{Hunger: cfg.Hunger.DeathThreshold / 4}, cfg)
	if math.Abs(v.Ratio-0.25) > 1e-9 {
		t.Errorf("ratio = %v, want 0.25", v.Ratio)
	}

	v = FishField(fd, game.FishView{Hunger: cfg.Hunger.DeathThreshold * 2}, cfg)
	if v.Ratio != 1 {
		t.Errorf("ratio should clamp to 1, got %v", v.Ratio)
	}

	v = FishField(fd, game.FishView{}, cfg)
	if !v.Visible {
		t.Error("hunger shows even at zero")
	}
}

func TestFishField_FinalStageFood(t *testing.T) {
	cfg, _ := config.Load("")
	v := FishField(descriptor(t, cfg, "food"), game.FishView{Stage: cfg.Growth.MaxStage, FoodEaten: 7}, cfg)
	if v.Text != "7 (grown)" {
		t.Errorf("text = %q, want %q", v.Text, "7 (grown)")
	}
}

func TestFishField_BreedingStates(t *testing.T) {
	cfg, _ := config.Load("")
	fd := descriptor(t, cfg, "breeding")

	tests := []struct {
		fish     game.FishView
		contains string
	}{
		{game.FishView{Breeding: components.BreedSelected}, "Selected"},
		{game.FishView{Breeding: components.BreedPaired, Partner: 9}, "Paired with #9"},
		{game.FishView{Breeding: components.BreedContact, Partner: 9, Contact: 1}, "Touching #9 (1.0/"},
		{game.FishView{Breeding: components.BreedFertilized, Gestation: 2.5}, "Hatching in 2.5s"},
	}

	for _, tt := range tests {
		t.Run(tt.fish.Breeding.String(), func(t *testing.T) {
			v := FishField(fd, tt.fish, cfg)
			if !strings.Contains(v.Text, tt.contains) {
				t.Errorf("text = %q, want it to contain %q", v.Text, tt.contains)
			}
		})
	}
}

func TestFishField_UnknownID(t *testing.T) {
	cfg, _ := config.Load("")
	v := FishField(components.FieldDescriptor{ID: "bogus"}, game.FishView{}, cfg)
	if v.Visible {
		t.Error("unknown field should be hidden")
	}
}

func TestHUDFromSnapshot(t *testing.T) {
	snap := game.Snapshot{
		Fish:       make([]game.FishView, 3),
		Seaweed:    make([]game.SeaweedView, 2),
		Coins:      12.5,
		IncomeRate: 0.4,
		TimeScale:  3,
		Paused:     true,
	}
	h := HUDFromSnapshot(snap, true)
	if h.Fish != 3 || h.Seaweed != 2 || h.Coins != 12.5 || !h.SellMode || !h.Paused || h.TimeScale != 3 {
		t.Errorf("unexpected HUD data %+v", h)
	}
}

func TestFormatSimTime(t *testing.T) {
	tests := []struct {
		sec  float64
		want string
	}{
		{0, "0:00"},
		{59.9, "0:59"},
		{61, "1:01"},
		{3725, "62:05"},
	}
	for _, tt := range tests {
		if got := formatSimTime(tt.sec); got != tt.want {
			t.Errorf("formatSimTime(%v) = %q, want %q", tt.sec, got, tt.want)
		}
	}
}
