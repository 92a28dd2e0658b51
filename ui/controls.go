package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// buttonPressed draws a raygui button and reports a click on it.
func buttonPressed(bounds rl.Rectangle, text string) bool {
	return gui.Button(bounds, text)
}

// ShopState is what the shop buttons need to label themselves.
type ShopState struct {
	Paused    bool
	AutoFeed  bool
	SellMode  bool
	TimeScale float64
}

// ShopPanel renders the purchase, sell and speed buttons along the bottom
// of the screen.
type ShopPanel struct {
	renderer *Renderer
	height   float32
}

// NewShopPanel creates a shop panel.
func NewShopPanel() *ShopPanel {
	return &ShopPanel{renderer: NewRenderer(), height: 64}
}

// Height returns the vertical space the panel occupies.
func (s *ShopPanel) Height() int32 {
	return int32(s.height)
}

// Draw renders the panel and returns the action clicked this frame.
func (s *ShopPanel) Draw(screenWidth, screenHeight int32, state ShopState) Action {
	r := s.renderer
	pad := float32(r.Theme.Padding)
	top := float32(screenHeight) - s.height
	r.DrawPanel(0, int32(top), screenWidth, int32(s.height))

	rowH := (s.height - pad*1.5) / 2
	width := float32(screenWidth) - 2*pad

	label := func(a Action) string { return shopLabel(a, state) }

	buy := drawButtonRow(pad, top+pad/2, width, rowH, []Action{
		ActionBuyGuppy, ActionBuyTetra,
		ActionBuySeaweed1, ActionBuySeaweed10, ActionBuySeaweed100,
		ActionToggleAutoFeed, ActionToggleSellMode,
	}, label)

	sim := drawButtonRow(pad, top+pad+rowH, width, rowH, []Action{
		ActionTogglePause, ActionSpeed1, ActionSpeed3, ActionSpeed6, ActionScatter,
	}, label)

	if buy != ActionNone {
		return buy
	}
	return sim
}

// shopLabel decorates toggle buttons with their current state.
func shopLabel(a Action, state ShopState) string {
	switch a {
	case ActionTogglePause:
		if state.Paused {
			return "Resume"
		}
		return "Pause"
	case ActionToggleAutoFeed:
		return fmt.Sprintf("Auto-Feed: %s", onOff(state.AutoFeed))
	case ActionToggleSellMode:
		return fmt.Sprintf("Sell Mode: %s", onOff(state.SellMode))
	case ActionSpeed1, ActionSpeed3, ActionSpeed6:
		if speedOf(a) == state.TimeScale {
			return "[" + a.String() + "]"
		}
	}
	return a.String()
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// ControlsPanel renders the overlay toggle list.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the controls panel.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry) int32 {
	if !c.visible {
		return c.y
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	categories := overlays.Categories()
	totalItems := 0
	for _, cat := range categories {
		totalItems += len(overlays.ByCategory(cat)) + 1 // +1 for category header
	}
	panelHeight := int32(totalItems)*lineHeight + padding*3 + lineHeight

	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	y := c.y + padding

	rl.DrawText("Overlays", c.x+padding, y, 16, rl.White)
	y += lineHeight + 4

	for _, category := range categories {
		rl.DrawText(categoryLabel(category), c.x+padding, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		y += lineHeight

		for _, desc := range overlays.ByCategory(category) {
			c.drawToggle(c.x+padding, y, desc, overlays.IsEnabled(desc.ID), c.width-padding*2)
			y += lineHeight
		}

		y += 4
	}

	return y
}

// drawToggle draws a single overlay toggle line.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	r := c.renderer

	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	nameColor := r.Theme.LabelColor
	if enabled {
		statusColor = rl.Color{R: 100, G: 200, B: 100, A: 255}
		nameColor = rl.White
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, nameColor)

	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Color{R: 150, G: 150, B: 150, A: 255})
	}
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "visual":
		return "Visual"
	case "debug":
		return "Debug"
	case "panels":
		return "Panels"
	default:
		return cat
	}
}
