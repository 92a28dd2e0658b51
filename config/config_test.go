package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Growth.MaxStage != 5 {
		t.Errorf("max_stage = %d, want 5", cfg.Growth.MaxStage)
	}
	if cfg.Economy.StartingCoins != 200 {
		t.Errorf("starting_coins = %v, want 200", cfg.Economy.StartingCoins)
	}
	if idx, ok := cfg.Derived.SpeciesIndex["Guppy"]; !ok || cfg.Species[idx].Price != 8 {
		t.Errorf("Guppy price lookup failed: idx=%d ok=%v", idx, ok)
	}
	if len(cfg.Seaweed.SpawnPoints) != 5 {
		t.Errorf("spawn points = %d, want 5", len(cfg.Seaweed.SpawnPoints))
	}
	if cfg.Derived.TickDT <= 0 {
		t.Errorf("derived tick dt = %v, want > 0", cfg.Derived.TickDT)
	}
}

func TestFoodNeeded(t *testing.T) {
	cfg := MustLoad("")

	tests := []struct {
		stage int
		want  int
	}{
		{0, 0},
		{1, 3},
		{2, 5},
		{4, 10},
		{5, 0},
		{6, 0},
	}
	for _, tt := range tests {
		if got := cfg.FoodNeeded(tt.stage); got != tt.want {
			t.Errorf("FoodNeeded(%d) = %d, want %d", tt.stage, got, tt.want)
		}
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := "economy:\n  starting_coins: 50\nbreeding:\n  brood_min: 1\n  brood_max: 2\n"
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Economy.StartingCoins != 50 {
		t.Errorf("starting_coins = %v, want 50", cfg.Economy.StartingCoins)
	}
	// Untouched fields keep their defaults
	if cfg.Economy.SeaweedPrice != 3 {
		t.Errorf("seaweed_price = %v, want default 3", cfg.Economy.SeaweedPrice)
	}
	if cfg.Breeding.BroodMax != 2 {
		t.Errorf("brood_max = %d, want 2", cfg.Breeding.BroodMax)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		overlay string
		wantSub string
	}{
		{"shrinking schedule", "growth:\n  food_needed: [5, 3, 7, 10]\n", "non-decreasing"},
		{"short schedule", "growth:\n  food_needed: [3]\n", "food_needed"},
		{"inverted brood", "breeding:\n  brood_min: 6\n  brood_max: 3\n", "brood"},
		{"no species", "species: []\n", "species"},
		{"zero time scale cap", "physics:\n  max_time_scale: 0\n", "max_time_scale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.overlay), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := MustLoad("")
	cfg.Economy.BaseIncome = 0.5

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if loaded.Economy.BaseIncome != 0.5 {
		t.Errorf("base_income = %v, want 0.5", loaded.Economy.BaseIncome)
	}
}

func TestClone(t *testing.T) {
	cfg := MustLoad("")
	clone := cfg.Clone()

	clone.Economy.SeaweedPrice = 99
	clone.Growth.FoodNeeded[0] = 42
	clone.Species[0].Price = 1
	clone.Derived.SpeciesIndex["Koi"] = 7

	if cfg.Economy.SeaweedPrice == 99 {
		t.Error("scalar field shared with clone")
	}
	if cfg.Growth.FoodNeeded[0] == 42 {
		t.Error("food_needed slice shared with clone")
	}
	if cfg.Species[0].Price == 1 {
		t.Error("species slice shared with clone")
	}
	if _, ok := cfg.Derived.SpeciesIndex["Koi"]; ok {
		t.Error("species index map shared with clone")
	}
	if clone.Derived.TickDT != cfg.Derived.TickDT {
		t.Error("derived values should be copied")
	}
}
