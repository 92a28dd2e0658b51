package systems

import (
	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

// HungerRate returns hunger gained per second at the given stage.
// Bigger fish get hungry faster.
func HungerRate(stage int, cfg *config.Config) float64 {
	return cfg.Hunger.BaseRate + float64(stage-1)*cfg.Hunger.StageIncrement
}

// AccrueHunger increases the fish's hunger for a step of dt seconds.
func AccrueHunger(fish *components.Fish, dt float64, cfg *config.Config) {
	fish.Hunger += HungerRate(fish.Stage, cfg) * dt
}

// IsHungry reports whether the fish should look for food.
func IsHungry(fish *components.Fish, cfg *config.Config) bool {
	return fish.Hunger > cfg.Hunger.HungryThreshold
}

// Starving reports whether the fish dies this tick. Starvation is only
// lethal while the registry holds no seaweed at all; a fish that fails to
// reach existing food lingers at high hunger instead.
func Starving(fish *components.Fish, seaweedCount int, cfg *config.Config) bool {
	return fish.Hunger >= cfg.Hunger.DeathThreshold && seaweedCount == 0
}

// CanEat reports whether the eat cooldown has elapsed at time now.
func CanEat(fish *components.Fish, now float64, cfg *config.Config) bool {
	return now-fish.LastEat >= cfg.Feeding.EatCooldown
}

// Touches reports whether the fish's padded body overlaps the seaweed.
func Touches(pos components.Position, body components.Body, seaweed components.Position, cfg *config.Config) bool {
	reach := body.Box(pos, cfg.Feeding.ReachPadding)
	return Overlaps(reach, components.SeaweedBox(seaweed, cfg.Seaweed.Width, cfg.Seaweed.Height))
}

// Eat applies a successful meal at time now and evaluates growth.
// Returns true if the fish advanced a stage.
func Eat(fish *components.Fish, body *components.Body, now float64, cfg *config.Config) bool {
	fish.LastEat = now
	fish.Hunger = 0
	fish.FoodEaten++
	fish.ClearTarget()
	return Grow(fish, body, cfg)
}

// Grow advances the fish one stage when it has eaten enough, resetting its
// meal count and rescaling its body. Stages never decrease and never pass
// MaxStage.
func Grow(fish *components.Fish, body *components.Body, cfg *config.Config) bool {
	if fish.Stage >= cfg.Growth.MaxStage {
		return false
	}
	if fish.FoodEaten < cfg.FoodNeeded(fish.Stage) {
		return false
	}
	fish.Stage++
	fish.FoodEaten = 0
	*body = BodyForStage(fish.Stage, cfg)
	return true
}

// SizeScale returns the body scale for a stage.
func SizeScale(stage int, cfg *config.Config) float64 {
	return 1 + float64(stage-1)*cfg.Growth.SizePerStage
}

// BodyForStage returns the body of a fish at the given stage.
func BodyForStage(stage int, cfg *config.Config) components.Body {
	return components.NewBody(cfg.Fish.BodyWidth, cfg.Fish.BodyHeight, SizeScale(stage, cfg))
}
