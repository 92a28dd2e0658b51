package ui

import (
	"fmt"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/game"
)

// FieldValue is the rendered form of one descriptor for one fish.
type FieldValue struct {
	Text    string
	Ratio   float64 // bar fill in [0, 1], bars only
	Visible bool
}

// FishField resolves a descriptor against a fish view.
func FishField(fd components.FieldDescriptor, f game.FishView, cfg *config.Config) FieldValue {
	var (
		text    string
		numeric float64
		isNum   bool
	)

	switch fd.ID {
	case "species":
		text = f.Species.String()
	case "sex":
		text = f.Sex.String()
	case "stage":
		text = fmt.Sprintf(fd.Format, f.Stage)
		numeric, isNum = float64(f.Stage), true
	case "food":
		if f.FoodNeeded == 0 {
			text = fmt.Sprintf("%d (grown)", f.FoodEaten)
		} else {
			text = fmt.Sprintf(fd.Format, f.FoodEaten, f.FoodNeeded)
		}
		numeric, isNum = float64(f.FoodEaten), true
	case "hunger":
		text = fmt.Sprintf(fd.Format, f.Hunger)
		if f.Hungry {
			text += " hungry"
		}
		numeric, isNum = f.Hunger, true
	case "breeding":
		text = breedingText(f, cfg)
	case "sell_price":
		text = fmt.Sprintf(fd.Format, f.SellPrice)
		numeric, isNum = f.SellPrice, true
	default:
		return FieldValue{}
	}

	v := FieldValue{Text: text, Visible: true}
	if isNum && numeric == 0 && !fd.ShowWhenZero {
		v.Visible = false
	}
	if fd.IsBar && fd.Max > fd.Min {
		v.Ratio = clamp01((numeric - fd.Min) / (fd.Max - fd.Min))
	}
	return v
}

// breedingText summarizes where a fish is in the breeding cycle.
func breedingText(f game.FishView, cfg *config.Config) string {
	switch f.Breeding {
	case components.BreedPaired:
		return fmt.Sprintf("Paired with #%d (%.1f/%.1fs)", f.Partner, f.Contact, cfg.Breeding.RequiredContact)
	case components.BreedContact:
		return fmt.Sprintf("Touching #%d (%.1f/%.1fs)", f.Partner, f.Contact, cfg.Breeding.RequiredContact)
	case components.BreedFertilized:
		return fmt.Sprintf("Hatching in %.1fs", f.Gestation)
	}
	return f.Breeding.String()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
