package inspector

import (
	"fmt"
	"math"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/game"
)

// Panel dimensions
const (
	PanelWidth   = 300
	PanelPadding = 10
	HeaderHeight = 30
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorSection     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
)

// Inspector tracks which fish is being inspected and renders its
// components. It holds a fish ID, not an entity, so a fish that dies or is
// sold simply stops resolving.
type Inspector struct {
	cfg         *config.Config
	selected    uint32
	hasSelected bool
	panelX      int32
	panelY      int32
}

// NewInspector creates an inspector anchored to the right edge. The
// config scales the growth widgets.
func NewInspector(screenWidth int32, cfg *config.Config) *Inspector {
	return &Inspector{
		cfg:    cfg,
		panelX: screenWidth - PanelWidth - 10,
		panelY: 10,
	}
}

// Resize re-anchors the panel after the window changes size.
func (ins *Inspector) Resize(screenWidth int32) {
	ins.panelX = screenWidth - PanelWidth - 10
}

// Select starts inspecting a fish.
func (ins *Inspector) Select(id uint32) {
	ins.selected = id
	ins.hasSelected = true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
	ins.selected = 0
}

// Selected returns the inspected fish ID.
func (ins *Inspector) Selected() (uint32, bool) {
	return ins.selected, ins.hasSelected
}

// Contains reports whether a screen point falls on the open panel.
// A click on the close button deselects.
func (ins *Inspector) Contains(mouseX, mouseY, panelHeight int32) bool {
	if !ins.hasSelected {
		return false
	}
	closeX := ins.panelX + PanelWidth - 25
	closeY := ins.panelY + 5
	if mouseX >= closeX && mouseX <= closeX+20 && mouseY >= closeY && mouseY <= closeY+20 {
		ins.Deselect()
		return true
	}
	return mouseX >= ins.panelX && mouseX <= ins.panelX+PanelWidth &&
		mouseY >= ins.panelY && mouseY <= ins.panelY+panelHeight
}

// FishSections lays out a fish's components in display order. Stage pips
// run to the final stage and the meal bar fills toward the next stage-up.
func FishSections(c game.FishComponents, cfg *config.Config) []Section {
	fish := SectionFor(&c.Fish)
	setOption(fish, "Stage", "max", strconv.Itoa(cfg.Growth.MaxStage))
	setOption(fish, "FoodEaten", "max", strconv.Itoa(cfg.FoodNeeded(c.Fish.Stage)))

	return []Section{
		fish,
		SectionFor(&c.Breeding),
		SectionFor(&c.Motion),
		SectionFor(&c.Body),
	}
}

func setOption(s Section, field, key, value string) {
	for _, f := range s.Fields {
		if f.Name == field {
			f.Options[key] = value
			return
		}
	}
}

// PanelHeight computes the height Draw will use for these sections.
func PanelHeight(sections []Section) int32 {
	height := int32(HeaderHeight + PanelPadding)
	height += 22 + 8 // position line and separator
	for _, s := range sections {
		height += 20 + sectionHeight(s) + 8
	}
	return height + PanelPadding
}

// Draw renders the inspector panel for one fish.
func (ins *Inspector) Draw(c game.FishComponents) {
	if !ins.hasSelected {
		return
	}

	sections := FishSections(c, ins.cfg)
	panelHeight := PanelHeight(sections)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, panelHeight, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(panelHeight)},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText(fmt.Sprintf("FISH #%d", c.Fish.ID), ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	closeX := ins.panelX + PanelWidth - 25
	closeY := ins.panelY + 5
	rl.DrawRectangle(closeX, closeY, 20, 20, ColorCloseBtn)
	rl.DrawText("X", closeX+6, closeY+3, 14, rl.White)

	y := ins.panelY + HeaderHeight + PanelPadding
	x := ins.panelX + PanelPadding

	rl.DrawText(fmt.Sprintf("Pos (%.0f, %.0f)  Vel (%.2f, %.2f)",
		c.Position.X, c.Position.Y, c.Velocity.X, c.Velocity.Y), x, y, 12, ColorTextDim)
	y += 22
	rl.DrawLine(x, y, ins.panelX+PanelWidth-PanelPadding, y, ColorPanelBorder)
	y += 8

	for _, s := range sections {
		ins.drawSectionHeader(x, y, s.Title)
		y += 20
		for _, f := range s.Fields {
			y += DrawField(x, y, f)
		}
		y += 8
	}
}

// drawSectionHeader renders a section title.
func (ins *Inspector) drawSectionHeader(x, y int32, title string) {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
}

// DrawRangeRing outlines a circle in screen space, used for the contact
// range around an inspected fish.
func DrawRangeRing(cx, cy, radius float32, color rl.Color) {
	drawArc(cx, cy, radius, 0, 2*math.Pi, color)
}

// drawArc draws an arc between two angles.
func drawArc(cx, cy, radius, startAngle, endAngle float32, color rl.Color) {
	const segments = 32
	angleStep := (endAngle - startAngle) / float32(segments)

	for i := 0; i < segments; i++ {
		a1 := startAngle + float32(i)*angleStep
		a2 := a1 + angleStep

		x1 := cx + radius*float32(math.Cos(float64(a1)))
		y1 := cy + radius*float32(math.Sin(float64(a1)))
		x2 := cx + radius*float32(math.Cos(float64(a2)))
		y2 := cy + radius*float32(math.Sin(float64(a2)))

		rl.DrawLineV(rl.Vector2{X: x1, Y: y1}, rl.Vector2{X: x2, Y: y2}, color)
	}
}
