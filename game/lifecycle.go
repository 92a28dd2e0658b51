package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/systems"
	"github.com/pthm-cable/aquarium/telemetry"
)

// spawnFish creates a stage-1 fish with every component initialised.
// New fish may eat and breed as soon as they are able to.
func (g *Game) spawnFish(pos components.Position, species components.Species, sex components.Sex) (ecs.Entity, uint32) {
	cfg := g.cfg

	id := g.nextID
	g.nextID++

	vel := systems.WanderVelocity(g.rng, false, cfg)
	body := systems.BodyForStage(1, cfg)
	fish := components.Fish{
		ID:      id,
		Species: species,
		Sex:     sex,
		Stage:   1,
		LastEat: g.simTime - cfg.Feeding.EatCooldown,
	}
	motion := systems.NewMotion(g.rng, cfg)
	br := components.Breeding{LastBred: g.simTime - cfg.Breeding.Cooldown}

	pos = g.bounds.ClampPoint(pos)
	entity := g.fishMap.NewEntity(&pos, &vel, &body, &fish, &motion, &br)
	g.fishByID[id] = entity

	return entity, id
}

// randomSex draws a sex with equal odds.
func (g *Game) randomSex() components.Sex {
	if g.rng.Intn(2) == 0 {
		return components.SexMale
	}
	return components.SexFemale
}

// removeFish deletes a fish. A pairing is torn down on both sides and a
// pending selection of the fish is dropped, so no reference outlives it.
func (g *Game) removeFish(entity ecs.Entity) {
	_, _, _, fish, _, br := g.fishMap.Get(entity)

	if br.Paired() {
		g.unpair(br)
	}
	if g.selected == fish.ID {
		g.selected = 0
	}

	delete(g.fishByID, fish.ID)
	g.world.RemoveEntity(entity)
}

// unpair tears down the pairing br belongs to and sends the partner back
// to wandering.
func (g *Game) unpair(br *components.Breeding) {
	if partner, ok := g.fishByID[br.Partner]; ok {
		_, pVel, _, _, _, pBr := g.fishMap.Get(partner)
		pBr.Unpair()
		*pVel = systems.WanderVelocity(g.rng, false, g.cfg)
	}
	br.Unpair()
}

// spawnSeaweed places one seaweed at the next spawn point in the cycle.
func (g *Game) spawnSeaweed() ecs.Entity {
	points := g.cfg.Seaweed.SpawnPoints
	slot := g.nextSlot % len(points)
	g.nextSlot++

	pos := components.Position{X: points[slot].X, Y: points[slot].Y}
	sw := components.Seaweed{Slot: slot, Placed: g.simTime}
	g.seaweedCount++
	return g.seaweedMap.NewEntity(&pos, &sw)
}

// removeSeaweed deletes eaten seaweed.
func (g *Game) removeSeaweed(entity ecs.Entity) {
	if !g.world.Alive(entity) {
		return
	}
	g.world.RemoveEntity(entity)
	g.seaweedCount--
}

// collectSpawns counts down pregnancies and hatches due broods. Offspring
// are created after the query completes.
func (g *Game) collectSpawns(dt float64) {
	cfg := g.cfg

	type brood struct {
		motherID uint32
		pos      components.Position
		species  components.Species
	}
	var due []brood

	query := g.fishFilter.Query()
	for query.Next() {
		pos, _, _, fish, _, br := query.Get()
		if !systems.Gestate(br, dt) {
			continue
		}
		systems.FinishSpawn(br, g.simTime)
		due = append(due, brood{motherID: fish.ID, pos: *pos, species: fish.Species})
	}

	for _, b := range due {
		n := systems.BroodSize(g.rng, cfg)
		ids := make([]uint32, 0, n)
		for _, p := range systems.OffspringPositions(g.rng, b.pos, n, g.bounds, cfg) {
			_, id := g.spawnFish(p, b.species, g.randomSex())
			ids = append(ids, id)
		}

		slog.Info("fish_spawned",
			"mother", b.motherID,
			"count", n,
			"ids", ids,
			"population", g.FishCount(),
		)
		g.emit(telemetry.Event{
			Type:    telemetry.EventHatch,
			FishID:  b.motherID,
			Count:   n,
			Message: hatchMessage(b.motherID, n),
			X:       b.pos.X,
			Y:       b.pos.Y,
		})
	}
}
