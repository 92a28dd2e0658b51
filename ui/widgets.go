package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/components"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawLevelBar draws a bar that turns from green to red as ratio rises.
func (r *Renderer) DrawLevelBar(x, y int32, label, valueText string, ratio float32, width int32) int32 {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	barX := x + r.Theme.LabelWidth
	barWidth := width - r.Theme.LabelWidth - 50

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawRectangle(barX, y+2, barWidth, r.Theme.BarHeight, r.Theme.BarBg)

	barColor := r.Theme.BarFillLow
	if ratio >= 0.6 {
		barColor = r.Theme.BarFillHigh
	} else if ratio >= 0.3 {
		barColor = r.Theme.BarFillMedium
	}
	rl.DrawRectangle(barX, y+2, int32(float32(barWidth)*ratio), r.Theme.BarHeight, barColor)

	rl.DrawText(valueText, barX+barWidth+5, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight + 2
}

// DrawField renders one descriptor-driven fish field.
func (r *Renderer) DrawField(x, y int32, fd components.FieldDescriptor, v FieldValue, width int32) int32 {
	if fd.IsBar {
		return r.DrawLevelBar(x, y, fd.Label, v.Text, float32(v.Ratio), width)
	}
	return r.DrawLabelValue(x, y, fd.Label, v.Text)
}

// drawButtonRow lays out equal-width buttons and returns the action whose
// button was clicked this frame.
func drawButtonRow(x, y, width, height float32, actions []Action, label func(Action) string) Action {
	const gap = 4
	n := float32(len(actions))
	w := (width - gap*(n-1)) / n
	clicked := ActionNone
	for i, a := range actions {
		bounds := rl.Rectangle{X: x + float32(i)*(w+gap), Y: y, Width: w, Height: height}
		if buttonPressed(bounds, label(a)) {
			clicked = a
		}
	}
	return clicked
}

func formatCoins(c float64) string {
	return fmt.Sprintf("%.1f", c)
}
