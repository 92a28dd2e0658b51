package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/systems"
	"github.com/pthm-cable/aquarium/telemetry"
)

// BuySeaweed buys quantity seaweed, placing them at the spawn points in
// turn. Nothing is bought unless the whole order is affordable.
func (g *Game) BuySeaweed(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: seaweed quantity %d", ErrInvalidArgument, quantity)
	}
	cost := float64(quantity) * g.cfg.Economy.SeaweedPrice
	if g.coins < cost {
		slog.Debug("purchase_rejected", "item", "seaweed", "quantity", quantity, "cost", cost, "coins", g.coins)
		return fmt.Errorf("%w: %d seaweed cost %.0f, have %.1f", ErrInsufficientFunds, quantity, cost, g.coins)
	}

	g.coins -= cost
	for i := 0; i < quantity; i++ {
		g.spawnSeaweed()
	}

	slog.Info("seaweed_bought",
		"quantity", quantity,
		"cost", cost,
		"coins", g.coins,
		"seaweed", g.seaweedCount,
	)
	g.emit(telemetry.Event{Type: telemetry.EventSeaweedBought, Count: quantity, Coins: -cost})
	return nil
}

// BuyFish buys a stage-1 fish of the given species and returns its ID.
func (g *Game) BuyFish(species components.Species) (uint32, error) {
	if int(species) >= len(g.cfg.Species) {
		return 0, fmt.Errorf("%w: unknown species %d", ErrInvalidArgument, species)
	}
	sp := g.cfg.Species[species]
	if g.coins < sp.Price {
		slog.Debug("purchase_rejected", "item", sp.Name, "cost", sp.Price, "coins", g.coins)
		return 0, fmt.Errorf("%w: %s costs %.0f, have %.1f", ErrInsufficientFunds, sp.Name, sp.Price, g.coins)
	}

	g.coins -= sp.Price
	spawn := components.Position{X: g.cfg.Fish.SpawnX, Y: g.cfg.Fish.SpawnY}
	_, id := g.spawnFish(spawn, species, g.randomSex())

	slog.Info("fish_bought",
		"id", id,
		"species", sp.Name,
		"cost", sp.Price,
		"coins", g.coins,
		"population", g.FishCount(),
	)
	g.emit(telemetry.Event{Type: telemetry.EventFishBought, FishID: id, Coins: -sp.Price})
	return id, nil
}

// SellFish removes a fish and pays its stage-dependent price. Returns the
// price paid.
func (g *Game) SellFish(id uint32) (float64, error) {
	entity, ok := g.fishByID[id]
	if !ok {
		return 0, fmt.Errorf("%w: no fish %d", ErrInvalidReference, id)
	}
	pos, _, _, fish, _, _ := g.fishMap.Get(entity)
	stage := fish.Stage
	at := *pos
	price := systems.SellPrice(stage, g.cfg)

	g.removeFish(entity)
	g.coins += price
	g.totalSold++

	slog.Info("fish_sold",
		"id", id,
		"stage", stage,
		"price", price,
		"coins", g.coins,
		"total_sold", g.totalSold,
	)
	g.emit(telemetry.Event{Type: telemetry.EventFishSold, FishID: id, Count: stage, Coins: price, X: at.X, Y: at.Y})
	g.checkAchievements()
	return price, nil
}

// SetTimeScale sets the simulation speed multiplier, which must lie in
// (0, physics.max_time_scale].
func (g *Game) SetTimeScale(multiplier float64) error {
	if !(multiplier > 0) || multiplier > g.cfg.Physics.MaxTimeScale {
		return fmt.Errorf("%w: time scale %v outside (0, %v]", ErrInvalidArgument, multiplier, g.cfg.Physics.MaxTimeScale)
	}
	g.timeScale = multiplier
	return nil
}

// SetPaused pauses or resumes the simulation.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// SetAutoFeed toggles automatic seaweed purchases for hungry fish.
func (g *Game) SetAutoFeed(on bool) {
	g.autoFeed = on
}

// ScatterAll startles every fish into a random direction.
func (g *Game) ScatterAll() {
	query := g.fishFilter.Query()
	for query.Next() {
		_, vel, _, _, _, _ := query.Get()
		*vel = systems.ScatterVelocity(g.rng, g.cfg)
	}
}
