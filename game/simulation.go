package game

import (
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/systems"
	"github.com/pthm-cable/aquarium/telemetry"
)

// Update advances the simulation by elapsed wall seconds scaled by the time
// scale. It does nothing while paused. Long frames are split into equal
// sub-steps no longer than physics.max_step. Non-finite elapsed times and
// frames needing more than physics.max_steps_per_update sub-steps are
// refused and leave the game untouched.
func (g *Game) Update(elapsed float64) {
	if g.paused || !(elapsed > 0) || math.IsInf(elapsed, 0) {
		return
	}

	total := elapsed * g.timeScale
	if math.IsInf(total, 0) || math.IsNaN(total) {
		return
	}
	// The epsilon keeps float noise from adding a sub-step.
	steps := max(math.Ceil(total/g.cfg.Physics.MaxStep-1e-9), 1)
	if steps > float64(g.cfg.Physics.MaxStepsPerUpdate) {
		slog.Warn("update_refused", "elapsed", elapsed, "time_scale", g.timeScale, "steps", steps)
		return
	}
	n := int(steps)
	dt := total / float64(n)
	for i := 0; i < n; i++ {
		g.step(dt)
	}
}

// step runs one simulation step. Phase order matters: starving fish are
// removed before anyone moves, meals resolve before growth, and broods
// hatch after every fish has moved.
func (g *Game) step(dt float64) {
	g.tick++
	g.simTime += dt

	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseStarvation)
	g.starvationSweep()

	g.perfCollector.StartPhase(telemetry.PhaseFish)
	pairs := g.updateFish(dt)

	g.perfCollector.StartPhase(telemetry.PhaseContact)
	g.resolveContacts(pairs, dt)

	g.perfCollector.StartPhase(telemetry.PhaseSpawning)
	g.collectSpawns(dt)

	g.perfCollector.StartPhase(telemetry.PhaseEconomy)
	g.accrueIncome(dt)
	g.autoFeedIfNeeded()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// starvationSweep removes fish that starve this tick and charges the
// penalty for each. Starvation only kills while the tank has no seaweed.
func (g *Game) starvationSweep() {
	cfg := g.cfg

	type deadInfo struct {
		entity ecs.Entity
		id     uint32
		hunger float64
		pos    components.Position
	}
	var toRemove []deadInfo

	query := g.fishFilter.Query()
	for query.Next() {
		pos, _, _, fish, _, _ := query.Get()
		if systems.Starving(fish, g.seaweedCount, cfg) {
			toRemove = append(toRemove, deadInfo{entity: query.Entity(), id: fish.ID, hunger: fish.Hunger, pos: *pos})
		}
	}

	for _, dead := range toRemove {
		g.removeFish(dead.entity)
		before := g.coins
		g.coins = systems.ApplyPenalty(g.coins, cfg.Economy.StarvationPenalty)

		slog.Info("fish_starved",
			"id", dead.id,
			"hunger", dead.hunger,
			"penalty", before-g.coins,
			"coins", g.coins,
		)
		g.emit(telemetry.Event{
			Type:    telemetry.EventStarved,
			FishID:  dead.id,
			Coins:   g.coins - before,
			Message: starvedMessage(dead.id),
			X:       dead.pos.X,
			Y:       dead.pos.Y,
		})
	}
}

// updateFish runs hunger, targeting, movement and feeding for every fish.
// Seaweed eaten during the pass is hidden from later fish and removed
// once the query completes. Returns each active pairing once.
func (g *Game) updateFish(dt float64) [][2]ecs.Entity {
	cfg := g.cfg

	candidates := g.foodCandidates()
	contention := g.targetContention()
	var eaten []ecs.Entity
	var pairs [][2]ecs.Entity

	query := g.fishFilter.Query()
	for query.Next() {
		entity := query.Entity()
		pos, vel, body, fish, motion, br := query.Get()

		systems.AccrueHunger(fish, dt, cfg)
		fish.Hungry = systems.IsHungry(fish, cfg)
		g.retarget(*pos, fish, candidates, contention)

		partner, partnerPos, paired := g.partnerOf(br)
		approaching := paired && systems.Distance(*pos, partnerPos) > cfg.Breeding.ContactRange

		var speed float64
		switch {
		case approaching:
			systems.Approach(*pos, vel, partnerPos, cfg)
			speed = 1
		case fish.HasTarget:
			target, _ := g.seaweedMap.Get(fish.Target)
			systems.Seek(*pos, vel, *target, fish.Hunger, cfg)
			speed = systems.EffectiveSpeed(fish, motion, true, g.simTime, g.rng, dt, cfg)
		default:
			systems.Wander(motion, vel, fish.Hungry, g.rng, dt, cfg)
			speed = systems.EffectiveSpeed(fish, motion, false, g.simTime, g.rng, dt, cfg)
		}
		systems.LimitVelocity(vel, cfg.Fish.MaxVelocity)
		systems.Integrate(pos, vel, *body, speed, dt, g.bounds, cfg)

		if e, ok := g.tryEat(pos, body, fish, &candidates); ok {
			eaten = append(eaten, e)
		}

		if paired && fish.ID < br.Partner {
			pairs = append(pairs, [2]ecs.Entity{entity, partner})
		}
	}

	for _, e := range eaten {
		g.removeSeaweed(e)
	}
	if len(eaten) > 0 {
		g.dropStaleTargets()
	}
	return pairs
}

// dropStaleTargets clears targets that point at removed seaweed.
func (g *Game) dropStaleTargets() {
	query := g.fishFilter.Query()
	for query.Next() {
		_, _, _, fish, _, _ := query.Get()
		if fish.HasTarget && !g.world.Alive(fish.Target) {
			fish.ClearTarget()
		}
	}
}

// foodCandidates lists the seaweed in the tank in query order.
func (g *Game) foodCandidates() []systems.FoodCandidate {
	candidates := make([]systems.FoodCandidate, 0, g.seaweedCount)
	query := g.seaweedFilter.Query()
	for query.Next() {
		pos, _ := query.Get()
		candidates = append(candidates, systems.FoodCandidate{E: query.Entity(), Pos: *pos})
	}
	return candidates
}

// targetContention counts how many fish currently target each seaweed.
func (g *Game) targetContention() map[ecs.Entity]int {
	counts := make(map[ecs.Entity]int)
	query := g.fishFilter.Query()
	for query.Next() {
		_, _, _, fish, _, _ := query.Get()
		if fish.HasTarget {
			counts[fish.Target]++
		}
	}
	return counts
}

// retarget picks the cheapest seaweed for a hungry fish and clears the
// target otherwise. contention is kept current as targets change.
func (g *Game) retarget(pos components.Position, fish *components.Fish, candidates []systems.FoodCandidate, contention map[ecs.Entity]int) {
	if fish.HasTarget {
		contention[fish.Target]--
		fish.ClearTarget()
	}
	if !fish.Hungry || len(candidates) == 0 {
		return
	}

	best := systems.ChooseTarget(pos, candidates, contention, g.cfg)
	if best < 0 {
		return
	}
	fish.Target = candidates[best].E
	fish.HasTarget = true
	contention[fish.Target]++
}

// tryEat feeds the fish from the first touching seaweed, if its cooldown
// allows. The eaten seaweed is dropped from candidates so no other fish can
// eat it this tick.
func (g *Game) tryEat(pos *components.Position, body *components.Body, fish *components.Fish, candidates *[]systems.FoodCandidate) (ecs.Entity, bool) {
	cfg := g.cfg
	if !systems.CanEat(fish, g.simTime, cfg) {
		return ecs.Entity{}, false
	}

	for i, c := range *candidates {
		if !systems.Touches(*pos, *body, c.Pos, cfg) {
			continue
		}
		*candidates = append((*candidates)[:i], (*candidates)[i+1:]...)

		grew := systems.Eat(fish, body, g.simTime, cfg)
		slog.Debug("fish_ate",
			"id", fish.ID,
			"stage", fish.Stage,
			"food_eaten", fish.FoodEaten,
			"food_needed", cfg.FoodNeeded(fish.Stage),
		)
		g.emit(telemetry.Event{Type: telemetry.EventMeal, FishID: fish.ID, X: c.Pos.X, Y: c.Pos.Y})

		if grew {
			slog.Debug("fish_grew", "id", fish.ID, "stage", fish.Stage)
			g.emit(telemetry.Event{
				Type:    telemetry.EventGrowth,
				FishID:  fish.ID,
				Count:   fish.Stage,
				Message: grewMessage(fish.ID, fish.Stage),
				X:       pos.X,
				Y:       pos.Y,
			})
		}
		return c.E, true
	}
	return ecs.Entity{}, false
}

// partnerOf resolves the breeding partner of br.
func (g *Game) partnerOf(br *components.Breeding) (ecs.Entity, components.Position, bool) {
	if !br.Paired() {
		return ecs.Entity{}, components.Position{}, false
	}
	partner, ok := g.fishByID[br.Partner]
	if !ok {
		return ecs.Entity{}, components.Position{}, false
	}
	pos, _, _, _, _, _ := g.fishMap.Get(partner)
	return partner, *pos, true
}

// resolveContacts advances the contact timer of each pair and completes
// breeding for pairs that stayed close long enough.
func (g *Game) resolveContacts(pairs [][2]ecs.Entity, dt float64) {
	cfg := g.cfg

	for _, p := range pairs {
		aPos, aVel, _, aFish, _, aBr := g.fishMap.Get(p[0])
		bPos, bVel, _, bFish, _, bBr := g.fishMap.Get(p[1])

		if !systems.AccrueContact(aBr, bBr, systems.Distance(*aPos, *bPos), dt, cfg) {
			continue
		}
		systems.CompleteBreeding(aFish, aBr, bFish, bBr, g.simTime, cfg)
		*aVel = systems.WanderVelocity(g.rng, aFish.Hungry, cfg)
		*bVel = systems.WanderVelocity(g.rng, bFish.Hungry, cfg)

		mother, at := aFish.ID, *aPos
		if bFish.Sex == components.SexFemale {
			mother, at = bFish.ID, *bPos
		}
		slog.Info("breeding_complete",
			"a", aFish.ID,
			"b", bFish.ID,
			"mother", mother,
			"gestation", cfg.Breeding.GestationDelay,
		)
		g.emit(telemetry.Event{
			Type:    telemetry.EventBred,
			FishID:  mother,
			Message: bredMessage(aFish.ID, bFish.ID),
			X:       at.X,
			Y:       at.Y,
		})
	}
}

// accrueIncome pays passive income for the step.
func (g *Game) accrueIncome(dt float64) {
	earned := dt * systems.IncomeRate(g.stages(), g.cfg)
	g.coins += earned
	g.collector.RecordIncome(earned)
}

// autoFeedIfNeeded buys one seaweed when the tank is empty and some fish is
// very hungry.
func (g *Game) autoFeedIfNeeded() {
	if !g.autoFeed || g.seaweedCount > 0 {
		return
	}

	starving := false
	query := g.fishFilter.Query()
	for query.Next() {
		_, _, _, fish, _, _ := query.Get()
		if fish.Hunger > g.cfg.Hunger.AutoFeedAt {
			starving = true
		}
	}
	if !starving {
		return
	}

	if err := g.BuySeaweed(1); err != nil {
		slog.Debug("auto_feed_skipped", "error", err)
	}
}
