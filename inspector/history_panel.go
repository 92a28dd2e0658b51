package inspector

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/telemetry"
)

const (
	// History buffer size (number of windows to keep)
	historySize = 120

	// Coin series share the left axis.
	seriesCoins   = 0
	seriesIncome  = 1
	seriesSpent   = 2
	seriesRevenue = 3

	// Population series share the right axis.
	seriesFish    = 4
	seriesSeaweed = 5
	seriesHunger  = 6
	seriesMature  = 7
	numSeries     = 8
)

var (
	coinSeries       = []int{seriesCoins, seriesIncome, seriesSpent, seriesRevenue}
	populationSeries = []int{seriesFish, seriesSeaweed, seriesHunger, seriesMature}
)

// HistoryPanel charts telemetry windows: the coin balance and flows on one
// axis, the tank population on the other.
type HistoryPanel struct {
	panelWidth  int32
	panelHeight int32
	panelX      int32
	panelY      int32

	latest telemetry.WindowStats

	// Ring buffers
	history      [numSeries][]float64
	historyIndex int
	historyCount int

	// Toggled by clicking the legend
	seriesVisible [numSeries]bool

	seriesNames  [numSeries]string
	seriesColors [numSeries]rl.Color
}

// Panel colors
var (
	colorHistoryTitle   = rl.Color{R: 200, G: 200, B: 220, A: 255}
	colorHistoryPanelBg = rl.Color{R: 20, G: 20, B: 30, A: 230}
	colorGraphBg        = rl.Color{R: 15, G: 15, B: 25, A: 255}
	colorGraphGrid      = rl.Color{R: 40, G: 40, B: 50, A: 255}
	colorGraphBorder    = rl.Color{R: 60, G: 60, B: 70, A: 255}
)

// NewHistoryPanel creates a panel along the bottom of the screen.
func NewHistoryPanel(screenWidth, screenHeight int32) *HistoryPanel {
	p := &HistoryPanel{panelHeight: 180}
	p.Resize(screenWidth, screenHeight)

	for i := 0; i < numSeries; i++ {
		p.history[i] = make([]float64, historySize)
	}

	p.seriesVisible = [numSeries]bool{
		true,  // Coins
		true,  // Income
		false, // Spent
		false, // Revenue
		true,  // Fish
		true,  // Seaweed
		false, // Hunger
		false, // Mature
	}

	p.seriesNames = [numSeries]string{
		"Coins",
		"Income",
		"Spent",
		"Sales",
		"Fish",
		"Seaweed",
		"Hunger",
		"Mature",
	}

	p.seriesColors = [numSeries]rl.Color{
		{R: 255, G: 215, B: 0, A: 255},
		{R: 150, G: 255, B: 150, A: 255},
		{R: 255, G: 120, B: 100, A: 255},
		{R: 255, G: 170, B: 60, A: 255},
		{R: 100, G: 149, B: 237, A: 255},
		{R: 80, G: 180, B: 80, A: 255},
		{R: 220, G: 100, B: 180, A: 255},
		{R: 200, G: 200, B: 255, A: 255},
	}

	return p
}

// Resize updates panel dimensions when the window is resized.
func (p *HistoryPanel) Resize(screenWidth, screenHeight int32) {
	p.panelWidth = screenWidth - 20
	if p.panelWidth < 400 {
		p.panelWidth = 400
	}
	p.panelX = 10
	p.panelY = screenHeight - p.panelHeight - 10
}

// Update records one flushed stats window.
func (p *HistoryPanel) Update(s telemetry.WindowStats) {
	p.latest = s
	idx := p.historyIndex

	p.history[seriesCoins][idx] = s.Coins
	p.history[seriesIncome][idx] = s.Income
	p.history[seriesSpent][idx] = s.Spent
	p.history[seriesRevenue][idx] = s.SalesRevenue
	p.history[seriesFish][idx] = float64(s.Fish)
	p.history[seriesSeaweed][idx] = float64(s.Seaweed)
	p.history[seriesHunger][idx] = s.HungerMean
	p.history[seriesMature][idx] = float64(s.Mature)

	p.historyIndex = (p.historyIndex + 1) % historySize
	if p.historyCount < historySize {
		p.historyCount++
	}
}

// Len returns the number of recorded windows.
func (p *HistoryPanel) Len() int {
	return p.historyCount
}

// values returns a series oldest first.
func (p *HistoryPanel) values(series int) []float64 {
	out := make([]float64, p.historyCount)
	for i := range out {
		idx := (p.historyIndex - p.historyCount + i + historySize) % historySize
		out[i] = p.history[series][idx]
	}
	return out
}

// HandleInput processes mouse clicks for legend toggling.
// Returns true if the click landed on the panel.
func (p *HistoryPanel) HandleInput(mx, my int32) bool {
	if mx < p.panelX || mx > p.panelX+p.panelWidth || my < p.panelY || my > p.panelY+p.panelHeight {
		return false
	}

	legendY := p.panelY + p.panelHeight - 24
	legendX := p.panelX + 10
	for i := 0; i < numSeries; i++ {
		itemX := legendX + int32(i)*80
		if mx >= itemX && mx < itemX+75 && my >= legendY && my < legendY+18 {
			p.seriesVisible[i] = !p.seriesVisible[i]
			break
		}
	}
	return true
}

// Draw renders the panel with graphs.
func (p *HistoryPanel) Draw() {
	rl.DrawRectangle(p.panelX, p.panelY, p.panelWidth, p.panelHeight, colorHistoryPanelBg)
	rl.DrawRectangleLines(p.panelX, p.panelY, p.panelWidth, p.panelHeight, colorGraphBorder)

	rl.DrawText("HISTORY", p.panelX+10, p.panelY+6, 14, colorHistoryTitle)

	if p.historyCount == 0 {
		rl.DrawText("Waiting for data...", p.panelX+100, p.panelY+70, 14, ColorTextDim)
		return
	}

	summaryWidth := int32(150)
	p.drawSummary(p.panelX+10, p.panelY+28)
	p.drawGraph(p.panelX+summaryWidth+20, p.panelY+24, p.panelWidth-summaryWidth-40, p.panelHeight-54)
	p.drawLegend(p.panelX+10, p.panelY+p.panelHeight-24)
}

// drawSummary prints the latest window's headline numbers.
func (p *HistoryPanel) drawSummary(x, y int32) {
	s := p.latest
	lines := []string{
		fmt.Sprintf("Coins  %s", formatAmount(s.Coins)),
		fmt.Sprintf("Fish   %d (%d mature)", s.Fish, s.Mature),
		fmt.Sprintf("Hungry %d", s.Hungry),
		fmt.Sprintf("Born   %d  Starved %d", s.Births, s.Starved),
		fmt.Sprintf("Sold   %d", s.FishSold),
	}
	for _, line := range lines {
		rl.DrawText(line, x, y, 11, ColorText)
		y += 16
	}
}

// drawGraph renders the line graph.
func (p *HistoryPanel) drawGraph(x, y, w, h int32) {
	rl.DrawRectangle(x, y, w, h, colorGraphBg)
	rl.DrawRectangleLines(x, y, w, h, colorGraphBorder)

	for i := int32(1); i < 4; i++ {
		gridY := y + (h * i / 4)
		rl.DrawLine(x, gridY, x+w, gridY, colorGraphGrid)
	}
	for i := int32(1); i < 6; i++ {
		gridX := x + (w * i / 6)
		rl.DrawLine(gridX, y, gridX, y+h, colorGraphGrid)
	}

	if p.historyCount < 2 {
		return
	}

	coinMin, coinMax := p.seriesRange(coinSeries)
	popMin, popMax := p.seriesRange(populationSeries)

	for _, series := range coinSeries {
		if p.seriesVisible[series] {
			p.drawSeriesLine(x, y, w, h, series, coinMin, coinMax)
		}
	}
	for _, series := range populationSeries {
		if p.seriesVisible[series] {
			p.drawSeriesLine(x, y, w, h, series, popMin, popMax)
		}
	}

	rl.DrawText(formatAmount(coinMax), x+2, y+2, 9, ColorTextDim)
	rl.DrawText(formatAmount(coinMin), x+2, y+h-10, 9, ColorTextDim)
	popMaxLabel := fmt.Sprintf("%.0f", popMax)
	popMinLabel := fmt.Sprintf("%.0f", popMin)
	rl.DrawText(popMaxLabel, x+w-rl.MeasureText(popMaxLabel, 9)-2, y+2, 9, ColorTextDim)
	rl.DrawText(popMinLabel, x+w-rl.MeasureText(popMinLabel, 9)-2, y+h-10, 9, ColorTextDim)
}

// seriesRange finds min/max across the visible series of a group.
func (p *HistoryPanel) seriesRange(group []int) (lo, hi float64) {
	lo = math.MaxFloat64
	hi = -math.MaxFloat64
	hasVisible := false

	for _, s := range group {
		if !p.seriesVisible[s] {
			continue
		}
		hasVisible = true
		for _, v := range p.values(s) {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}

	if !hasVisible || lo >= hi {
		return 0, 1
	}

	padding := (hi - lo) * 0.1
	if padding < 0.001 {
		padding = 0.001
	}
	return lo - padding, hi + padding
}

// drawSeriesLine draws one data series as a line.
func (p *HistoryPanel) drawSeriesLine(x, y, w, h int32, series int, minVal, maxVal float64) {
	color := p.seriesColors[series]
	valueRange := maxVal - minVal
	if valueRange <= 0 {
		valueRange = 1
	}

	var prevX, prevY int32
	for i, v := range p.values(series) {
		px := x + int32(float64(i)*float64(w)/float64(p.historyCount-1))
		py := y + h - int32((v-minVal)/valueRange*float64(h))
		if py < y {
			py = y
		}
		if py > y+h {
			py = y + h
		}

		if i > 0 {
			rl.DrawLine(prevX, prevY, px, py, color)
		}
		prevX, prevY = px, py
	}
}

// drawLegend draws the interactive legend.
func (p *HistoryPanel) drawLegend(x, y int32) {
	itemWidth := int32(80)

	for i := 0; i < numSeries; i++ {
		itemX := x + int32(i)*itemWidth
		color := p.seriesColors[i]
		textColor := ColorText
		if !p.seriesVisible[i] {
			color.A = 80
			textColor = ColorTextDim
		}
		rl.DrawRectangle(itemX, y+2, 10, 10, color)
		rl.DrawText(p.seriesNames[i], itemX+14, y, 11, textColor)
	}

	rl.DrawText("(click to toggle)", x+int32(numSeries)*itemWidth+10, y, 10, ColorTextDim)
}

// formatAmount formats a coin value for display.
func formatAmount(v float64) string {
	switch {
	case math.Abs(v) >= 10000:
		return fmt.Sprintf("%.0fk", v/1000)
	case math.Abs(v) >= 1000:
		return fmt.Sprintf("%.1fk", v/1000)
	case math.Abs(v) >= 100:
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
