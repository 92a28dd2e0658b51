package game

import (
	"testing"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/systems"
)

const frame = 1.0 / 60.0

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(config.MustLoad(""), Options{Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { g.Close() })
	return g
}

// fishParts returns the components of a live fish.
func fishParts(t *testing.T, g *Game, id uint32) (*components.Position, *components.Velocity, *components.Body, *components.Fish, *components.Motion, *components.Breeding) {
	t.Helper()
	e, ok := g.fishByID[id]
	if !ok {
		t.Fatalf("fish %d not found", id)
	}
	return g.fishMap.Get(e)
}

// spawnAdult places a fully grown fish that is ready to breed.
func spawnAdult(t *testing.T, g *Game, x, y float64, sex components.Sex) uint32 {
	t.Helper()
	_, id := g.spawnFish(components.Position{X: x, Y: y}, components.SpeciesGuppy, sex)
	_, _, body, fish, _, _ := fishParts(t, g, id)
	fish.Stage = g.cfg.Growth.MaxStage
	*body = systems.BodyForStage(fish.Stage, g.cfg)
	return id
}

// assertPartnersSymmetric fails if any partner reference is one-sided or
// points at a missing fish.
func assertPartnersSymmetric(t *testing.T, g *Game) {
	t.Helper()
	for id, e := range g.fishByID {
		_, _, _, _, _, br := g.fishMap.Get(e)
		if !br.Paired() {
			continue
		}
		pe, ok := g.fishByID[br.Partner]
		if !ok {
			t.Fatalf("fish %d references missing partner %d", id, br.Partner)
		}
		_, _, _, _, _, pbr := g.fishMap.Get(pe)
		if pbr.Partner != id {
			t.Fatalf("fish %d -> %d but %d -> %d", id, br.Partner, br.Partner, pbr.Partner)
		}
	}
}
