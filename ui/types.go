// Package ui is the raylib front-end for the aquarium. It reads a
// game.Snapshot each frame and turns clicks and key presses into game
// commands. Nothing in the simulation imports it.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Action is a player command issued from a button or key.
type Action int

const (
	ActionNone Action = iota
	ActionBuyGuppy
	ActionBuyTetra
	ActionBuySeaweed1
	ActionBuySeaweed10
	ActionBuySeaweed100
	ActionToggleSellMode
	ActionTogglePause
	ActionSpeed1
	ActionSpeed3
	ActionSpeed6
	ActionToggleAutoFeed
	ActionScatter
	ActionCloseDetails
)

// String returns the button label for an action.
func (a Action) String() string {
	switch a {
	case ActionBuyGuppy:
		return "Buy Guppy"
	case ActionBuyTetra:
		return "Buy Tetra"
	case ActionBuySeaweed1:
		return "Seaweed x1"
	case ActionBuySeaweed10:
		return "Seaweed x10"
	case ActionBuySeaweed100:
		return "Seaweed x100"
	case ActionToggleSellMode:
		return "Sell Mode"
	case ActionTogglePause:
		return "Pause"
	case ActionSpeed1:
		return "1x"
	case ActionSpeed3:
		return "3x"
	case ActionSpeed6:
		return "6x"
	case ActionToggleAutoFeed:
		return "Auto-Feed"
	case ActionScatter:
		return "Scatter"
	case ActionCloseDetails:
		return "Close"
	}
	return ""
}

// keyBindings maps keyboard shortcuts to actions.
var keyBindings = []struct {
	Key    int32
	Action Action
}{
	{rl.KeyG, ActionBuyGuppy},
	{rl.KeyT, ActionBuyTetra},
	{rl.KeyF, ActionBuySeaweed1},
	{rl.KeyS, ActionToggleSellMode},
	{rl.KeySpace, ActionTogglePause},
	{rl.KeyOne, ActionSpeed1},
	{rl.KeyThree, ActionSpeed3},
	{rl.KeySix, ActionSpeed6},
	{rl.KeyA, ActionToggleAutoFeed},
	{rl.KeyX, ActionScatter},
	{rl.KeyEscape, ActionCloseDetails},
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	BarBg          rl.Color
	BarFillLow     rl.Color
	BarFillMedium  rl.Color
	BarFillHigh    rl.Color
	Water          rl.Color
	Sand           rl.Color
	Seaweed        rl.Color
	Guppy          rl.Color
	Tetra          rl.Color
	SelectFirst    rl.Color
	SelectPartner  rl.Color
	SellHighlight  rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.LightGray,
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFillLow:     rl.Color{R: 100, G: 200, B: 100, A: 255},
		BarFillMedium:  rl.Color{R: 200, G: 180, B: 100, A: 255},
		BarFillHigh:    rl.Color{R: 200, G: 100, B: 100, A: 255},
		Water:          rl.Color{R: 24, G: 70, B: 110, A: 255},
		Sand:           rl.Color{R: 194, G: 178, B: 128, A: 255},
		Seaweed:        rl.Color{R: 40, G: 160, B: 70, A: 255},
		Guppy:          rl.Color{R: 255, G: 150, B: 60, A: 255},
		Tetra:          rl.Color{R: 90, G: 200, B: 230, A: 255},
		SelectFirst:    rl.Color{R: 0, G: 255, B: 0, A: 255},
		SelectPartner:  rl.Color{R: 255, G: 255, B: 0, A: 255},
		SellHighlight:  rl.Color{R: 255, G: 165, B: 0, A: 255},
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     70,
		BarHeight:      12,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
