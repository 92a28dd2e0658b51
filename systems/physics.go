// Package systems contains the per-fish behaviour of the aquarium: movement,
// hunger, feeding, growth, breeding and the economy formulas. Functions here
// operate on component pointers and never touch the ECS world directly.
package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

// Bounds represents the arena.
type Bounds struct {
	Width, Height float64
}

// BoundsFromConfig returns the arena bounds.
func BoundsFromConfig(cfg *config.Config) Bounds {
	return Bounds{Width: cfg.Arena.Width, Height: cfg.Arena.Height}
}

// Box returns the arena as a box anchored at the origin.
func (b Bounds) Box() r2.Box {
	return r2.Box{Max: r2.Vec{X: b.Width, Y: b.Height}}
}

// ClampPoint clamps p into the arena.
func (b Bounds) ClampPoint(p components.Position) components.Position {
	return components.Position{
		X: clamp(p.X, 0, b.Width),
		Y: clamp(p.Y, 0, b.Height),
	}
}

// Integrate advances pos by vel scaled by the effective relative speed and
// keeps the body inside the arena. A wall contact clamps the body against
// the wall and reflects the matching velocity component with damping.
// Returns true if a wall was hit.
func Integrate(pos *components.Position, vel *components.Velocity, body components.Body, speed, dt float64, bounds Bounds, cfg *config.Config) bool {
	step := r2.Scale(speed*cfg.Physics.SpeedScalar*dt, vel.Vec())
	pos.Set(r2.Add(pos.Vec(), step))
	return Bounce(pos, vel, body, bounds, cfg.Physics.BounceDamping)
}

// Bounce clamps the body box into bounds and reflects velocity inelastically.
func Bounce(pos *components.Position, vel *components.Velocity, body components.Body, bounds Bounds, damping float64) bool {
	halfW := body.Width / 2
	halfH := body.Height / 2
	hit := false

	if pos.X-halfW < 0 {
		pos.X = halfW
		vel.X = math.Abs(vel.X) * damping
		hit = true
	} else if pos.X+halfW > bounds.Width {
		pos.X = bounds.Width - halfW
		vel.X = -math.Abs(vel.X) * damping
		hit = true
	}
	if pos.Y-halfH < 0 {
		pos.Y = halfH
		vel.Y = math.Abs(vel.Y) * damping
		hit = true
	} else if pos.Y+halfH > bounds.Height {
		pos.Y = bounds.Height - halfH
		vel.Y = -math.Abs(vel.Y) * damping
		hit = true
	}
	return hit
}

// LimitVelocity scales vel down so its magnitude does not exceed limit.
func LimitVelocity(vel *components.Velocity, limit float64) {
	v := vel.Vec()
	mag := r2.Norm(v)
	if mag > limit && mag > 0 {
		vel.Set(r2.Scale(limit/mag, v))
	}
}

// Overlaps reports whether two boxes intersect with positive area.
func Overlaps(a, b r2.Box) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X &&
		a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

// Distance returns the distance between two positions.
func Distance(a, b components.Position) float64 {
	return r2.Norm(r2.Sub(b.Vec(), a.Vec()))
}

// perFrame converts a factor defined per nominal 1/60 s frame into the
// equivalent factor for a step of dt seconds.
func perFrame(factor, dt float64, cfg *config.Config) float64 {
	return math.Pow(factor, dt*cfg.Physics.SpeedScalar)
}

// clamp clamps v between lo and hi.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
