// Package components defines ECS components for the aquarium simulation.
// Every component is a plain record that is fully initialised when its
// entity is created; no field is optional or filled in lazily.
package components

import "gonum.org/v1/gonum/spatial/r2"

// Species identifies a purchasable fish type. It indexes config.Species.
type Species uint8

const (
	SpeciesGuppy Species = iota
	SpeciesTetra
)

// Sex is assigned at creation and never changes.
type Sex uint8

const (
	SexMale Sex = iota
	SexFemale
)

// Opposite reports whether s and o can breed together.
func (s Sex) Opposite(o Sex) bool { return s != o }

// BreedState is the externally visible breeding status of a fish.
type BreedState uint8

const (
	BreedIdle       BreedState = iota // No selection, partner or pregnancy
	BreedSelected                     // Picked by the UI, waiting for a second fish
	BreedPaired                       // Partnered, closing in on the partner
	BreedContact                      // Partnered and touching, contact timer running
	BreedFertilized                   // Gestating a brood
)

// Seaweed is a stationary consumable. Slot is the spawn point it was
// placed at; Placed is the simulation time of purchase.
type Seaweed struct {
	Slot   int
	Placed float64
}

// SeaweedBox returns the seaweed hit box of the given size centred at pos.
func SeaweedBox(pos Position, w, h float64) r2.Box {
	half := r2.Vec{X: w / 2, Y: h / 2}
	c := pos.Vec()
	return r2.Box{Min: r2.Sub(c, half), Max: r2.Add(c, half)}
}
