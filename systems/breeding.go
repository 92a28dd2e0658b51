package systems

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

// Pairing rejection reasons.
var (
	errNotMature     = errors.New("not fully grown")
	errCoolingDown   = errors.New("breeding cooldown active")
	errAlreadyPaired = errors.New("already paired")
	errPregnant      = errors.New("already fertilized")
	errSameSex       = errors.New("same sex")
	errSameFish      = errors.New("cannot pair a fish with itself")
)

// CheckBreeder returns nil if a single fish may enter a pairing at time now.
func CheckBreeder(fish *components.Fish, br *components.Breeding, now float64, cfg *config.Config) error {
	switch {
	case fish.Stage < cfg.Growth.MaxStage:
		return fmt.Errorf("fish %d: %w (stage %d of %d)", fish.ID, errNotMature, fish.Stage, cfg.Growth.MaxStage)
	case br.Paired():
		return fmt.Errorf("fish %d: %w", fish.ID, errAlreadyPaired)
	case br.Fertilized:
		return fmt.Errorf("fish %d: %w", fish.ID, errPregnant)
	case now-br.LastBred < cfg.Breeding.Cooldown:
		return fmt.Errorf("fish %d: %w (%.0fs left)", fish.ID, errCoolingDown, cfg.Breeding.Cooldown-(now-br.LastBred))
	}
	return nil
}

// CheckPair returns nil if a and b may be paired at time now.
func CheckPair(a *components.Fish, ab *components.Breeding, b *components.Fish, bb *components.Breeding, now float64, cfg *config.Config) error {
	if a.ID == b.ID {
		return errSameFish
	}
	if err := CheckBreeder(a, ab, now, cfg); err != nil {
		return err
	}
	if err := CheckBreeder(b, bb, now, cfg); err != nil {
		return err
	}
	if !a.Sex.Opposite(b.Sex) {
		return fmt.Errorf("fish %d and %d: %w", a.ID, b.ID, errSameSex)
	}
	return nil
}

// Pair links two fish with mutual partner references and a shared start time.
func Pair(aID uint32, ab *components.Breeding, bID uint32, bb *components.Breeding, now float64) {
	ab.Unpair()
	bb.Unpair()
	ab.Partner, bb.Partner = bID, aID
	ab.PairedAt, bb.PairedAt = now, now
}

// Unpair tears a pairing down on both sides.
func Unpair(ab, bb *components.Breeding) {
	ab.Unpair()
	bb.Unpair()
}

// AccrueContact advances the shared contact timer of a pair that is dist
// apart. Time only accrues while the pair is within contact range.
// Returns true once the required contact duration is reached.
func AccrueContact(ab, bb *components.Breeding, dist, dt float64, cfg *config.Config) bool {
	touching := dist <= cfg.Breeding.ContactRange
	ab.InContact, bb.InContact = touching, touching
	if touching {
		ab.Contact += dt
		bb.Contact = ab.Contact
	}
	return ab.Contact >= cfg.Breeding.RequiredContact
}

// CompleteBreeding clears the pairing on both sides, restarts both
// cooldowns and fertilizes the female.
func CompleteBreeding(a *components.Fish, ab *components.Breeding, b *components.Fish, bb *components.Breeding, now float64, cfg *config.Config) {
	Unpair(ab, bb)
	ab.LastBred, bb.LastBred = now, now
	for _, p := range []struct {
		f  *components.Fish
		br *components.Breeding
	}{{a, ab}, {b, bb}} {
		if p.f.Sex == components.SexFemale {
			p.br.Fertilized = true
			p.br.Gestation = cfg.Breeding.GestationDelay
		}
	}
}

// Gestate counts down a pregnancy. Returns true when the brood is due.
func Gestate(br *components.Breeding, dt float64) bool {
	if !br.Fertilized {
		return false
	}
	br.Gestation -= dt
	return br.Gestation <= 0
}

// FinishSpawn ends a pregnancy and restarts the cooldown.
func FinishSpawn(br *components.Breeding, now float64) {
	br.Fertilized = false
	br.Gestation = 0
	br.LastBred = now
}

// BroodSize draws the number of offspring uniformly from [BroodMin, BroodMax].
func BroodSize(rng *rand.Rand, cfg *config.Config) int {
	b := &cfg.Breeding
	return b.BroodMin + rng.Intn(b.BroodMax-b.BroodMin+1)
}

// OffspringPositions scatters n spawn points around the mother, inside bounds.
func OffspringPositions(rng *rand.Rand, mother components.Position, n int, bounds Bounds, cfg *config.Config) []components.Position {
	off := cfg.Breeding.SpawnOffset
	out := make([]components.Position, n)
	for i := range out {
		p := components.Position{
			X: mother.X + uniform(rng, -off, off),
			Y: mother.Y + uniform(rng, -off, off),
		}
		out[i] = bounds.ClampPoint(p)
	}
	return out
}

// State derives the externally visible breeding status. selected reports
// whether the UI currently holds the fish as a pending selection.
func State(br *components.Breeding, selected bool) components.BreedState {
	switch {
	case br.Fertilized:
		return components.BreedFertilized
	case br.Paired() && br.InContact:
		return components.BreedContact
	case br.Paired():
		return components.BreedPaired
	case selected:
		return components.BreedSelected
	}
	return components.BreedIdle
}
