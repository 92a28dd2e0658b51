package components

import "github.com/mlange-42/ark/ecs"

// Fish bundles identity, growth, hunger and food targeting.
type Fish struct {
	ID        uint32  `inspect:"label"` // Monotonic, never reused
	Species   Species `inspect:"label"`
	Sex       Sex     `inspect:"label"`
	Stage     int     `inspect:"pips"`
	FoodEaten int     `inspect:"bar"` // Meals since the last stage-up
	Hunger    float64 `inspect:"bar,max:150"`
	LastEat   float64 `inspect:"label,fmt:%.1fs"` // Sim time of the last meal

	// Food target. Valid only while HasTarget is set and the entity is alive.
	Target    ecs.Entity `inspect:"skip"`
	HasTarget bool       `inspect:"skip"`
	Hungry    bool       `inspect:"bool"`
}

// ClearTarget drops the food target.
func (f *Fish) ClearTarget() {
	f.Target = ecs.Entity{}
	f.HasTarget = false
}

// Motion holds the idle wander state machine.
type Motion struct {
	CurrentSpeed   float64 `inspect:"label,fmt:%.2f"` // Smoothed relative speed
	Variation      float64 `inspect:"skip"`           // Random speed jitter factor
	VariationTimer float64 `inspect:"skip"`
	VariationEvery float64 `inspect:"skip"` // Seconds until the next jitter draw
	SwimTimer      float64 `inspect:"skip"`
	SwimDuration   float64 `inspect:"skip"` // Seconds until the next redirection
}

// Breeding holds pairing and pregnancy state.
// Partner is the partner's fish ID, zero when unpaired.
type Breeding struct {
	Partner    uint32  `inspect:"label"`
	PairedAt   float64 `inspect:"label,fmt:%.1fs"` // Shared start time of the pairing
	Contact    float64 `inspect:"label,fmt:%.1fs"` // Accumulated seconds in contact range
	InContact  bool    `inspect:"bool"`
	Fertilized bool    `inspect:"bool"`
	Gestation  float64 `inspect:"label,fmt:%.1fs"` // Seconds until the brood hatches
	LastBred   float64 `inspect:"label,fmt:%.1fs"` // Sim time of the last breeding or spawn
}

// Paired reports whether the fish has a partner.
func (b *Breeding) Paired() bool { return b.Partner != 0 }

// Unpair clears the partner reference and contact timer on this side only.
func (b *Breeding) Unpair() {
	b.Partner = 0
	b.PairedAt = 0
	b.Contact = 0
	b.InContact = false
}
