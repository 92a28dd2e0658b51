package components

// FieldDescriptor describes a component field for UI display.
type FieldDescriptor struct {
	ID           string  // Unique identifier
	Label        string  // Display name
	Format       string  // Printf format (e.g., "%.2f")
	Min          float64 // Minimum value (for bars)
	Max          float64 // Maximum value (for bars)
	IsBar        bool    // True to render as progress bar
	ShowWhenZero bool    // Show even when value is zero
	Group        string  // Logical grouping
}

// String returns the display name for a Species.
func (s Species) String() string {
	switch s {
	case SpeciesGuppy:
		return "Guppy"
	case SpeciesTetra:
		return "Tetra"
	}
	return "Unknown"
}

// String returns the display name for a Sex.
func (s Sex) String() string {
	if s == SexFemale {
		return "female"
	}
	return "male"
}

// String returns the display name for a BreedState.
func (b BreedState) String() string {
	names := BreedStateNames()
	if int(b) < len(names) {
		return names[b]
	}
	return "Unknown"
}

// BreedStateNames returns the display names for all breed states.
// The order matches the BreedState constants.
func BreedStateNames() []string {
	return []string{"Idle", "Selected", "Paired", "Breeding", "Fertilized"}
}

// FishFieldDescriptors returns metadata for the fish detail panel.
func FishFieldDescriptors(deathThreshold float64) []FieldDescriptor {
	return []FieldDescriptor{
		{ID: "species", Label: "Species", Group: "identity"},
		{ID: "sex", Label: "Sex", Group: "identity"},
		{ID: "stage", Label: "Stage", Format: "%d", ShowWhenZero: true, Group: "growth"},
		{ID: "food", Label: "Food", Format: "%d/%d", ShowWhenZero: true, Group: "growth"},
		{ID: "hunger", Label: "Hunger", Format: "%.0f", Min: 0, Max: deathThreshold, IsBar: true, ShowWhenZero: true, Group: "growth"},
		{ID: "breeding", Label: "Breeding", Group: "breeding"},
		{ID: "sell_price", Label: "Sell", Format: "%.1f", Group: "economy"},
	}
}
