// Package autopilot is a scripted player for headless runs. It keeps the
// tank stocked and fed, pairs adults and sells surplus stock, using only the
// public game commands.
package autopilot

import (
	"errors"
	"log/slog"
	"sort"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/game"
)

// Policy holds the thresholds the pilot plays by.
type Policy struct {
	Interval       float64 // Sim seconds between decisions
	MinFish        int     // Restock below this population
	MaxFish        int     // Sell adults above this population
	Reserve        float64 // Coins held back from fish purchases for seaweed
	SeaweedPerFish float64 // Seaweed kept in the tank per hungry fish
	Breed          bool    // Pair idle adults of opposite sex
}

// DefaultPolicy returns a conservative policy that keeps a small tank alive.
func DefaultPolicy() Policy {
	return Policy{
		Interval:       1,
		MinFish:        4,
		MaxFish:        12,
		Reserve:        15,
		SeaweedPerFish: 1,
		Breed:          true,
	}
}

// Report counts what one decision round did.
type Report struct {
	FishBought    int
	SeaweedBought int
	FishSold      int
	Paired        int
	Revenue       float64
}

// Empty reports whether the round changed nothing.
func (r Report) Empty() bool {
	return r == Report{}
}

// Pilot plays one game.
type Pilot struct {
	policy Policy
	since  float64
	next   components.Species // species bought next, alternating
}

// New returns a pilot that decides on its first Step.
func New(policy Policy) *Pilot {
	return &Pilot{policy: policy, since: policy.Interval}
}

// Policy returns the pilot's policy.
func (p *Pilot) Policy() Policy { return p.policy }

// Step accounts for elapsed sim seconds and runs a decision round once the
// interval has passed. It never returns an error: rejected commands are
// expected and logged at debug level.
func (p *Pilot) Step(g *game.Game, elapsed float64) Report {
	p.since += elapsed
	if p.since < p.policy.Interval {
		return Report{}
	}
	p.since = 0

	var r Report
	snap := g.Snapshot()

	p.feed(g, snap, &r)
	p.restock(g, snap, &r)
	if p.policy.Breed {
		p.breed(g, snap, &r)
	}
	p.sell(g, snap, &r)

	if !r.Empty() {
		slog.Debug("autopilot_round",
			"sim_time", snap.SimTime,
			"bought", r.FishBought,
			"seaweed", r.SeaweedBought,
			"sold", r.FishSold,
			"paired", r.Paired,
			"coins", g.Coins(),
		)
	}
	return r
}

// feed tops the seaweed count up to the hungry population.
func (p *Pilot) feed(g *game.Game, snap game.Snapshot, r *Report) {
	hungry := 0
	for _, f := range snap.Fish {
		if f.Hungry {
			hungry++
		}
	}
	want := int(float64(hungry)*p.policy.SeaweedPerFish+0.5) - len(snap.Seaweed)
	if want <= 0 {
		return
	}

	price := g.Config().Economy.SeaweedPrice
	if price > 0 {
		if affordable := int(g.Coins() / price); affordable < want {
			want = affordable
		}
	}
	if want <= 0 {
		return
	}
	if err := g.BuySeaweed(want); err != nil {
		slog.Debug("autopilot_rejected", "command", "buy_seaweed", "error", err)
		return
	}
	r.SeaweedBought += want
}

// restock buys fish up to MinFish, alternating species, while keeping the
// reserve for food.
func (p *Pilot) restock(g *game.Game, snap game.Snapshot, r *Report) {
	species := g.Config().Species
	for n := len(snap.Fish); n < p.policy.MinFish; n++ {
		sp := p.next
		if g.Coins()-species[sp].Price < p.policy.Reserve {
			return
		}
		if _, err := g.BuyFish(sp); err != nil {
			slog.Debug("autopilot_rejected", "command", "buy_fish", "error", err)
			return
		}
		r.FishBought++
		p.next = components.Species((int(sp) + 1) % len(species))
	}
}

// breed pairs the first idle adult female with the first idle adult male.
// A failed pairing clears the pending selection so the next round starts
// clean.
func (p *Pilot) breed(g *game.Game, snap game.Snapshot, r *Report) {
	if snap.Selected != 0 {
		g.CancelBreedingSelection(snap.Selected)
	}

	maxStage := g.Config().Growth.MaxStage
	var female, male uint32
	for _, f := range snap.Fish {
		if f.Stage < maxStage || f.Breeding != components.BreedIdle {
			continue
		}
		if f.Sex == components.SexFemale && female == 0 {
			female = f.ID
		}
		if f.Sex == components.SexMale && male == 0 {
			male = f.ID
		}
	}
	if female == 0 || male == 0 {
		return
	}

	if err := g.SelectForBreeding(female); err != nil {
		slog.Debug("autopilot_rejected", "command", "select", "error", err)
		return
	}
	if err := g.SelectForBreeding(male); err != nil {
		if !errors.Is(err, game.ErrIneligiblePairing) {
			slog.Debug("autopilot_rejected", "command", "select", "error", err)
		}
		g.CancelBreedingSelection(female)
		return
	}
	r.Paired++
}

// sell sells idle adults, oldest stage first, until the population is back
// at MaxFish.
func (p *Pilot) sell(g *game.Game, snap game.Snapshot, r *Report) {
	excess := len(snap.Fish) - p.policy.MaxFish
	if excess <= 0 {
		return
	}

	var candidates []game.FishView
	for _, f := range snap.Fish {
		if f.Breeding == components.BreedIdle && f.FoodNeeded == 0 {
			candidates = append(candidates, f)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].SellPrice > candidates[j].SellPrice
	})

	for _, f := range candidates {
		if excess == 0 {
			return
		}
		price, err := g.SellFish(f.ID)
		if err != nil {
			slog.Debug("autopilot_rejected", "command", "sell", "error", err)
			continue
		}
		r.FishSold++
		r.Revenue += price
		excess--
	}
}
