package components

import "gonum.org/v1/gonum/spatial/r2"

// Position represents an entity's centre in arena coordinates.
type Position struct {
	X, Y float64
}

// Vec returns the position as a gonum vector.
func (p Position) Vec() r2.Vec { return r2.Vec(p) }

// Set stores v into the position.
func (p *Position) Set(v r2.Vec) { *p = Position(v) }

// Velocity represents an entity's velocity in world units per nominal frame.
type Velocity struct {
	X, Y float64
}

// Vec returns the velocity as a gonum vector.
func (v Velocity) Vec() r2.Vec { return r2.Vec(v) }

// Set stores w into the velocity.
func (v *Velocity) Set(w r2.Vec) { *v = Velocity(w) }
