package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

// NewMotion returns the wander state of a freshly created fish.
func NewMotion(rng *rand.Rand, cfg *config.Config) components.Motion {
	mv := &cfg.Movement
	return components.Motion{
		CurrentSpeed:   mv.BaseSpeed,
		Variation:      1,
		VariationEvery: uniform(rng, mv.VariationEveryLo, mv.VariationEveryHi),
		SwimDuration:   uniform(rng, mv.SwimMin, mv.SwimMax),
	}
}

// WanderVelocity draws a fresh wander velocity. Hungry fish use a narrower
// range. A fed fish never starts a swim with zero horizontal speed.
func WanderVelocity(rng *rand.Rand, hungry bool, cfg *config.Config) components.Velocity {
	s := cfg.Fish.BaseSpeed
	mv := &cfg.Movement
	if hungry {
		return components.Velocity{
			X: uniform(rng, -s*mv.HungryRangeX, s*mv.HungryRangeX),
			Y: uniform(rng, -s*mv.HungryRangeY, s*mv.HungryRangeY),
		}
	}
	vx := uniform(rng, -s, s)
	if vx == 0 {
		vx = s
	}
	return components.Velocity{X: vx, Y: uniform(rng, -s*mv.IdleRangeY, s*mv.IdleRangeY)}
}

// ScatterVelocity draws a startled velocity in ±ScatterRange·BaseSpeed.
func ScatterVelocity(rng *rand.Rand, cfg *config.Config) components.Velocity {
	r := cfg.Fish.BaseSpeed * cfg.Movement.ScatterRange
	vx := uniform(rng, -r, r)
	if vx == 0 {
		vx = cfg.Fish.BaseSpeed
	}
	return components.Velocity{X: vx, Y: uniform(rng, -r, r)}
}

// Wander runs the idle swim cycle: swim for a random duration, slow down
// during its final window, then pick a new heading. Small random
// redirections happen at RedirectRate per second.
func Wander(m *components.Motion, vel *components.Velocity, hungry bool, rng *rand.Rand, dt float64, cfg *config.Config) {
	mv := &cfg.Movement

	m.SwimTimer += dt
	switch {
	case m.SwimTimer > m.SwimDuration:
		m.SwimTimer = 0
		m.SwimDuration = uniform(rng, mv.SwimMin, mv.SwimMax)
		*vel = WanderVelocity(rng, hungry, cfg)
	case m.SwimTimer > m.SwimDuration-mv.SlowdownWindow:
		vel.Set(r2.Scale(perFrame(mv.SlowdownFactor, dt, cfg), vel.Vec()))
	}

	if mv.RedirectRate > 0 && rng.Float64() < 1-math.Exp(-mv.RedirectRate*dt) {
		*vel = WanderVelocity(rng, hungry, cfg)
	}
}

// Seek steers vel toward target. Horizontal and vertical components are
// weighted separately so fish swim level, and the result is boosted by
// hunger. Inside the arrival radius the fish stops.
func Seek(pos components.Position, vel *components.Velocity, target components.Position, hunger float64, cfg *config.Config) {
	d := r2.Sub(target.Vec(), pos.Vec())
	dist := r2.Norm(d)
	if dist <= cfg.Feeding.ArrivalRadius {
		*vel = components.Velocity{}
		return
	}
	s := cfg.Fish.BaseSpeed
	boost := SeekBoost(hunger, cfg)
	dir := r2.Scale(1/dist, d)
	vel.X = dir.X * s * cfg.Movement.SeekRangeX * boost
	vel.Y = dir.Y * s * cfg.Movement.SeekRangeY * boost
}

// SeekBoost returns the hunger-driven seek speed multiplier, clamped to
// [1, MaxBoost].
func SeekBoost(hunger float64, cfg *config.Config) float64 {
	h := &cfg.Hunger
	if h.BoostRange <= 0 {
		return 1
	}
	return clamp(1+(hunger-h.HungryThreshold)/h.BoostRange, 1, h.MaxBoost)
}

// Approach steers vel straight at the partner at ApproachSpeed·BaseSpeed,
// stopping inside the arrival radius. Returns the distance to the partner.
func Approach(pos components.Position, vel *components.Velocity, partner components.Position, cfg *config.Config) float64 {
	d := r2.Sub(partner.Vec(), pos.Vec())
	dist := r2.Norm(d)
	if dist <= cfg.Feeding.ArrivalRadius {
		*vel = components.Velocity{}
		return dist
	}
	vel.Set(r2.Scale(cfg.Fish.BaseSpeed*cfg.Breeding.ApproachSpeed/dist, d))
	return dist
}

// SizeSpeedFactor returns the relative speed bonus of small fish. It shrinks
// toward 1 as the stage approaches SpeedBonusSpan.
func SizeSpeedFactor(stage int, cfg *config.Config) float64 {
	g := &cfg.Growth
	if g.SpeedBonusSpan <= 0 {
		return 1
	}
	return 1 + (1-math.Min(float64(stage)/g.SpeedBonusSpan, 1))*g.SpeedBonus
}

// EffectiveSpeed smooths the fish's relative speed toward its target and
// returns the speed to integrate with. Seeking fish speed up with hunger;
// idle fish follow a slow sine around the base speed.
func EffectiveSpeed(fish *components.Fish, m *components.Motion, seeking bool, simTime float64, rng *rand.Rand, dt float64, cfg *config.Config) float64 {
	mv := &cfg.Movement

	var target float64
	if seeking {
		target = mv.SeekSpeed + fish.Hunger*mv.SeekHungerGain
	} else {
		target = mv.BaseSpeed + math.Sin(simTime*mv.SpeedWaveFreq)*mv.SpeedWave
	}
	target *= SizeSpeedFactor(fish.Stage, cfg)

	alpha := 1 - perFrame(1-mv.Smoothing, dt, cfg)
	m.CurrentSpeed += (target - m.CurrentSpeed) * alpha

	m.VariationTimer += dt
	if m.VariationTimer > m.VariationEvery {
		m.VariationTimer = 0
		m.VariationEvery = uniform(rng, mv.VariationEveryLo, mv.VariationEveryHi)
		m.Variation = uniform(rng, mv.VariationMin, mv.VariationMax)
	}
	return m.CurrentSpeed * m.Variation
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
