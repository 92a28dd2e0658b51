package ui

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID names a toggleable layer of the tank view.
type OverlayID string

const (
	OverlayHungerBars    OverlayID = "hunger_bars"
	OverlayStageLabels   OverlayID = "stage_labels"
	OverlayEffects       OverlayID = "effects"
	OverlayFoodTargets   OverlayID = "food_targets"
	OverlayBreedingLinks OverlayID = "breeding_links"
	OverlayReachBoxes    OverlayID = "reach_boxes"
	OverlayHistory       OverlayID = "history"
	OverlayPerf          OverlayID = "perf"
)

// OverlayDescriptor describes one overlay and how it is toggled.
type OverlayDescriptor struct {
	ID          OverlayID
	Name        string
	Description string
	Key         int32  // 0 when there is no hotkey
	KeyLabel    string
	Category    string // "visual", "debug" or "panels"
	Exclusive   []OverlayID
	Default     bool
}

// defaultOverlays is the registration order, which is also the order of
// the controls panel. Keys must not collide with keyBindings.
var defaultOverlays = []OverlayDescriptor{
	{ID: OverlayHungerBars, Name: "Hunger Bars", Description: "Show a hunger bar above every fish",
		Key: rl.KeyH, KeyLabel: "H", Category: "visual", Default: true},
	{ID: OverlayStageLabels, Name: "Stage Labels", Description: "Show the growth stage next to every fish",
		Key: rl.KeyL, KeyLabel: "L", Category: "visual"},
	{ID: OverlayEffects, Name: "Effects", Description: "Bubbles, sparkles and coins where things happen",
		Key: rl.KeyE, KeyLabel: "E", Category: "visual", Default: true},

	{ID: OverlayFoodTargets, Name: "Food Targets", Description: "Draw a line from hungry fish to their seaweed",
		Key: rl.KeyR, KeyLabel: "R", Category: "debug"},
	{ID: OverlayBreedingLinks, Name: "Breeding Links", Description: "Link paired fish and show contact progress",
		Key: rl.KeyB, KeyLabel: "B", Category: "debug", Default: true},
	{ID: OverlayReachBoxes, Name: "Reach Boxes", Description: "Show the padded boxes used for eating",
		Key: rl.KeyC, KeyLabel: "C", Category: "debug"},

	{ID: OverlayHistory, Name: "History", Description: "Chart coins and population per stats window",
		Key: rl.KeyM, KeyLabel: "M", Category: "panels", Exclusive: []OverlayID{OverlayPerf}},
	{ID: OverlayPerf, Name: "Performance", Description: "Show per-phase step timing",
		Key: rl.KeyP, KeyLabel: "P", Category: "panels", Exclusive: []OverlayID{OverlayHistory}},
}

// ErrUnknownOverlay is returned by Apply for a name that is not registered.
var ErrUnknownOverlay = errors.New("unknown overlay")

// OverlayRegistry holds overlay state. Enabling an overlay turns off the
// ones it excludes.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]int
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry registers defaultOverlays with their default state.
func NewOverlayRegistry() *OverlayRegistry {
	r := &OverlayRegistry{
		byID:    make(map[OverlayID]int, len(defaultOverlays)),
		enabled: make(map[OverlayID]bool, len(defaultOverlays)),
	}
	for _, desc := range defaultOverlays {
		r.Register(desc)
	}
	return r
}

// Register adds an overlay after the existing ones.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.byID[desc.ID] = len(r.descriptors)
	r.descriptors = append(r.descriptors, desc)
	r.enabled[desc.ID] = desc.Default
}

// SetEnabled sets an overlay's state. Unknown IDs are ignored.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	i, ok := r.byID[id]
	if !ok {
		return
	}
	r.enabled[id] = enabled
	if enabled {
		for _, excl := range r.descriptors[i].Exclusive {
			r.enabled[excl] = false
		}
	}
}

// Toggle flips an overlay and returns its new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.SetEnabled(id, !r.enabled[id])
	return r.enabled[id]
}

func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// Get returns the descriptor for id.
func (r *OverlayRegistry) Get(id OverlayID) (OverlayDescriptor, bool) {
	i, ok := r.byID[id]
	if !ok {
		return OverlayDescriptor{}, false
	}
	return r.descriptors[i], true
}

// All returns every overlay in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// ByCategory returns the overlays of one category in registration order.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var out []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			out = append(out, desc)
		}
	}
	return out
}

// Categories returns each category once, in order of first appearance.
func (r *OverlayRegistry) Categories() []string {
	var cats []string
	for _, desc := range r.descriptors {
		if !slices.Contains(cats, desc.Category) {
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeyPress toggles the overlay bound to key. The last result is
// false when no overlay uses the key.
func (r *OverlayRegistry) HandleKeyPress(key int32) (OverlayID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key == key {
			return desc.ID, r.Toggle(desc.ID), true
		}
	}
	return "", false, false
}

// EnabledOverlays returns the active overlays in registration order.
func (r *OverlayRegistry) EnabledOverlays() []OverlayID {
	var out []OverlayID
	for _, desc := range r.descriptors {
		if r.enabled[desc.ID] {
			out = append(out, desc.ID)
		}
	}
	return out
}

// Apply adjusts overlays from a comma-separated list such as
// "perf,-hunger_bars". A leading '-' disables; "none" first clears every
// overlay. Items apply left to right, so exclusivity follows the last one.
// Every unknown name is reported, and the known ones still apply.
func (r *OverlayRegistry) Apply(list string) error {
	var errs []error
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if item == "none" {
			for id := range r.enabled {
				r.enabled[id] = false
			}
			continue
		}

		on := true
		if name, found := strings.CutPrefix(item, "-"); found {
			item, on = name, false
		}
		id := OverlayID(item)
		if _, ok := r.byID[id]; !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownOverlay, item))
			continue
		}
		r.SetEnabled(id, on)
	}
	return errors.Join(errs...)
}
