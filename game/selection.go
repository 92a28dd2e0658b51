package game

import (
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/systems"
	"github.com/pthm-cable/aquarium/telemetry"
)

// SelectForBreeding handles a player picking a fish for breeding.
//
// The first eligible fish becomes the pending selection. Picking it again
// deselects it. Picking a second eligible fish of the opposite sex pairs the
// two immediately. Picking a fish that is already paired cancels its
// pairing on both sides.
func (g *Game) SelectForBreeding(id uint32) error {
	entity, ok := g.fishByID[id]
	if !ok {
		return fmt.Errorf("%w: no fish %d", ErrInvalidReference, id)
	}
	_, _, _, fish, _, br := g.fishMap.Get(entity)

	if br.Paired() {
		g.cancelPairing(entity)
		return nil
	}
	if g.selected == id {
		g.selected = 0
		return nil
	}
	if err := systems.CheckBreeder(fish, br, g.simTime, g.cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrIneligiblePairing, err)
	}

	other, ok := g.fishByID[g.selected]
	if !ok {
		g.selected = id
		return nil
	}
	_, _, _, oFish, _, oBr := g.fishMap.Get(other)
	if err := systems.CheckPair(oFish, oBr, fish, br, g.simTime, g.cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrIneligiblePairing, err)
	}

	systems.Pair(oFish.ID, oBr, fish.ID, br, g.simTime)
	g.selected = 0

	slog.Info("breeding_paired", "a", oFish.ID, "b", fish.ID)
	g.emit(telemetry.Event{Type: telemetry.EventPaired, FishID: oFish.ID})
	return nil
}

// CancelBreedingSelection drops a pending selection of the fish and tears
// down any pairing it is part of.
func (g *Game) CancelBreedingSelection(id uint32) error {
	entity, ok := g.fishByID[id]
	if !ok {
		return fmt.Errorf("%w: no fish %d", ErrInvalidReference, id)
	}
	if g.selected == id {
		g.selected = 0
	}
	_, _, _, _, _, br := g.fishMap.Get(entity)
	if br.Paired() {
		g.cancelPairing(entity)
	}
	return nil
}

// cancelPairing unpairs entity and its partner and sends both back to
// wandering.
func (g *Game) cancelPairing(entity ecs.Entity) {
	_, vel, _, fish, _, br := g.fishMap.Get(entity)
	partner := br.Partner

	g.unpair(br)
	*vel = systems.WanderVelocity(g.rng, fish.Hungry, g.cfg)

	slog.Info("breeding_cancelled", "a", fish.ID, "b", partner)
	g.emit(telemetry.Event{Type: telemetry.EventCancelled, FishID: fish.ID})
}

// FishAt returns the fish whose body contains the point, preferring the
// one whose centre is closest.
func (g *Game) FishAt(x, y float64) (uint32, bool) {
	point := components.Position{X: x, Y: y}

	var closestID uint32
	closestDist := 0.0
	found := false

	query := g.fishFilter.Query()
	for query.Next() {
		pos, _, body, fish, _, _ := query.Get()

		box := body.Box(*pos, 0)
		if x < box.Min.X || x > box.Max.X || y < box.Min.Y || y > box.Max.Y {
			continue
		}
		dist := systems.Distance(*pos, point)
		if !found || dist < closestDist {
			closestDist = dist
			closestID = fish.ID
			found = true
		}
	}

	return closestID, found
}
