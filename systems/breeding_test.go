package systems

import (
	"testing"

	"github.com/pthm-cable/aquarium/components"
)

// ---------- Pairing ----------

func TestCheckPair(t *testing.T) {
	cfg := testConfig()
	max := cfg.Growth.MaxStage
	now := 1000.0
	ready := components.Breeding{LastBred: now - cfg.Breeding.Cooldown}

	tests := []struct {
		name   string
		a, b   components.Fish
		ab, bb components.Breeding
		ok     bool
	}{
		{"eligible", newTestFish(1, max, components.SexMale), newTestFish(2, max, components.SexFemale), ready, ready, true},
		{"same sex", newTestFish(1, max, components.SexFemale), newTestFish(2, max, components.SexFemale), ready, ready, false},
		{"juvenile", newTestFish(1, max-1, components.SexMale), newTestFish(2, max, components.SexFemale), ready, ready, false},
		{"cooling down", newTestFish(1, max, components.SexMale), newTestFish(2, max, components.SexFemale), ready, components.Breeding{LastBred: now - 1}, false},
		{"already paired", newTestFish(1, max, components.SexMale), newTestFish(2, max, components.SexFemale), components.Breeding{Partner: 9}, ready, false},
		{"pregnant", newTestFish(1, max, components.SexMale), newTestFish(2, max, components.SexFemale), ready, components.Breeding{Fertilized: true}, false},
		{"self", newTestFish(1, max, components.SexMale), newTestFish(1, max, components.SexFemale), ready, ready, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPair(&tt.a, &tt.ab, &tt.b, &tt.bb, now, cfg)
			if (err == nil) != tt.ok {
				t.Errorf("CheckPair err = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestPairAndUnpair_Symmetric(t *testing.T) {
	var a, b components.Breeding
	Pair(1, &a, 2, &b, 50)

	if a.Partner != 2 || b.Partner != 1 {
		t.Fatalf("partners = (%d, %d), want (2, 1)", a.Partner, b.Partner)
	}
	if a.PairedAt != 50 || b.PairedAt != 50 {
		t.Errorf("paired at = (%v, %v), want shared 50", a.PairedAt, b.PairedAt)
	}

	a.Contact, b.Contact = 1, 1
	Unpair(&a, &b)
	if a.Paired() || b.Paired() || a.Contact != 0 || b.Contact != 0 {
		t.Errorf("unpair left state behind: a=%+v b=%+v", a, b)
	}
}

// ---------- Contact and completion ----------

func TestAccrueContact_OnlyInRange(t *testing.T) {
	cfg := testConfig()
	var a, b components.Breeding
	Pair(1, &a, 2, &b, 0)
	dt := 0.5

	if AccrueContact(&a, &b, cfg.Breeding.ContactRange+1, dt, cfg) {
		t.Fatal("completed while out of range")
	}
	if a.Contact != 0 || a.InContact {
		t.Errorf("contact accrued out of range: %+v", a)
	}

	done := false
	steps := 0
	for !done {
		done = AccrueContact(&a, &b, 10, dt, cfg)
		steps++
		if a.Contact != b.Contact {
			t.Fatalf("contact timers diverged: %v vs %v", a.Contact, b.Contact)
		}
		if steps > 100 {
			t.Fatal("contact never completed")
		}
	}
	if want := int(cfg.Breeding.RequiredContact / dt); steps != want {
		t.Errorf("steps to complete = %d, want %d", steps, want)
	}
}

func TestCompleteBreeding_FertilizesFemale(t *testing.T) {
	cfg := testConfig()
	male := newTestFish(1, 5, components.SexMale)
	female := newTestFish(2, 5, components.SexFemale)
	var mb, fb components.Breeding
	Pair(male.ID, &mb, female.ID, &fb, 10)

	CompleteBreeding(&male, &mb, &female, &fb, 12, cfg)

	if mb.Paired() || fb.Paired() {
		t.Error("partners not cleared")
	}
	if mb.LastBred != 12 || fb.LastBred != 12 {
		t.Errorf("cooldowns not restarted: %v, %v", mb.LastBred, fb.LastBred)
	}
	if mb.Fertilized {
		t.Error("male was fertilized")
	}
	if !fb.Fertilized || fb.Gestation != cfg.Breeding.GestationDelay {
		t.Errorf("female state = %+v, want fertilized with full gestation", fb)
	}
	if State(&fb, false) != components.BreedFertilized {
		t.Errorf("female state = %v, want Fertilized", State(&fb, false))
	}
}

func TestGestate(t *testing.T) {
	br := components.Breeding{Fertilized: true, Gestation: 1}
	if Gestate(&br, 0.6) {
		t.Fatal("brood due too early")
	}
	if !Gestate(&br, 0.6) {
		t.Fatal("brood not due after gestation elapsed")
	}
	FinishSpawn(&br, 99)
	if br.Fertilized || br.LastBred != 99 {
		t.Errorf("after spawn: %+v", br)
	}
	if Gestate(&br, 10) {
		t.Error("unfertilized fish reported a due brood")
	}
}

func TestBroodSizeAndOffspring(t *testing.T) {
	cfg := testConfig()
	rng := testRNG()
	bounds := BoundsFromConfig(cfg)

	for i := 0; i < 200; i++ {
		n := BroodSize(rng, cfg)
		if n < cfg.Breeding.BroodMin || n > cfg.Breeding.BroodMax {
			t.Fatalf("brood size %d outside [%d, %d]", n, cfg.Breeding.BroodMin, cfg.Breeding.BroodMax)
		}
	}

	mother := components.Position{X: 10, Y: 590}
	for _, p := range OffspringPositions(rng, mother, 50, bounds, cfg) {
		if p.X < 0 || p.X > bounds.Width || p.Y < 0 || p.Y > bounds.Height {
			t.Fatalf("offspring %+v outside arena", p)
		}
		if p.X > mother.X+cfg.Breeding.SpawnOffset || p.Y < mother.Y-cfg.Breeding.SpawnOffset {
			t.Fatalf("offspring %+v too far from mother", p)
		}
	}
}

func TestState(t *testing.T) {
	tests := []struct {
		name     string
		br       components.Breeding
		selected bool
		want     components.BreedState
	}{
		{"idle", components.Breeding{}, false, components.BreedIdle},
		{"selected", components.Breeding{}, true, components.BreedSelected},
		{"paired", components.Breeding{Partner: 3}, false, components.BreedPaired},
		{"contact", components.Breeding{Partner: 3, InContact: true}, false, components.BreedContact},
		{"fertilized", components.Breeding{Fertilized: true}, false, components.BreedFertilized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := State(&tt.br, tt.selected); got != tt.want {
				t.Errorf("State = %v, want %v", got, tt.want)
			}
		})
	}
}
