package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/game"
	"github.com/pthm-cable/aquarium/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Coins      float64
	IncomeRate float64
	Fish       int
	Seaweed    int
	TotalSold  int
	SimTime    float64
	TimeScale  float64
	FPS        int32
	Paused     bool
	AutoFeed   bool
	SellMode   bool
}

// HUDFromSnapshot fills HUD data from a game snapshot.
func HUDFromSnapshot(s game.Snapshot, sellMode bool) HUDData {
	return HUDData{
		Coins:      s.Coins,
		IncomeRate: s.IncomeRate,
		Fish:       len(s.Fish),
		Seaweed:    len(s.Seaweed),
		TotalSold:  s.TotalSold,
		SimTime:    s.SimTime,
		TimeScale:  s.TimeScale,
		Paused:     s.Paused,
		AutoFeed:   s.AutoFeed,
		SellMode:   sellMode,
	}
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(
		fmt.Sprintf("Coins: %s  (+%.1f/s)", formatCoins(data.Coins), data.IncomeRate),
		10, 10, 20, rl.Gold,
	)

	rl.DrawText(
		fmt.Sprintf("Fish: %d | Seaweed: %d | Sold: %d", data.Fish, data.Seaweed, data.TotalSold),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Time: %s | Speed: %.0fx | FPS: %d", formatSimTime(data.SimTime), data.TimeScale, data.FPS),
		10, 55, 16, rl.LightGray,
	)

	y := int32(75)
	if data.Paused {
		rl.DrawText("PAUSED", 10, y, 16, rl.Yellow)
		y += 20
	}
	if data.SellMode {
		rl.DrawText("SELL MODE: click a fish to sell it", 10, y, 16, h.renderer.Theme.SellHighlight)
		y += 20
	}
	if data.AutoFeed {
		rl.DrawText("Auto-feed on", 10, y, 14, rl.Green)
	}
}

// DrawControls renders the control legend just above the shop.
func (h *HUD) DrawControls(y int32, controls string) {
	rl.DrawText(controls, 10, y, 12, rl.Gray)
}

// formatSimTime renders simulated seconds as m:ss.
func formatSimTime(sec float64) string {
	d := time.Duration(sec * float64(time.Second))
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// PerfPanel renders per-phase step timing.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	phases := telemetry.Phases()
	lineHeight := int32(14)
	height := lineHeight*int32(len(phases)+3) + 26
	p.renderer.DrawPanel(p.x-6, p.y-6, 280, height)

	x, y := p.x, p.y
	rl.DrawText("Step Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Avg: %s  Max: %s  (%.0f steps/s)",
		stats.AvgTickDuration.Round(time.Microsecond),
		stats.MaxTickDuration.Round(time.Microsecond),
		stats.TicksPerSecond), x, y, 12, rl.Yellow)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("p95: %s  %d steps/frame",
		stats.P95TickDuration.Round(time.Microsecond), stats.StepsPerFrame), x, y, 12, rl.Yellow)
	y += lineHeight + 2

	for _, phase := range phases {
		pct := stats.PhasePct[phase]
		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-12s %8s %5.1f%%", phase, stats.PhaseAvg[phase].Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += lineHeight
	}
}

// DetailsPanel shows the player-facing summary of one fish.
type DetailsPanel struct {
	renderer *Renderer
	fields   []components.FieldDescriptor
	width    int32
}

// NewDetailsPanel creates a details panel using the fish descriptors.
func NewDetailsPanel(cfg *config.Config) *DetailsPanel {
	return &DetailsPanel{
		renderer: NewRenderer(),
		fields:   components.FishFieldDescriptors(cfg.Hunger.DeathThreshold),
		width:    260,
	}
}

// Draw renders the panel centered horizontally near the top of the screen.
func (d *DetailsPanel) Draw(screenWidth int32, fish game.FishView, cfg *config.Config) {
	r := d.renderer
	pad := r.Theme.Padding

	values := make([]FieldValue, len(d.fields))
	rows := int32(0)
	for i, fd := range d.fields {
		values[i] = FishField(fd, fish, cfg)
		if values[i].Visible {
			rows++
		}
	}

	x := (screenWidth - d.width) / 2
	y := int32(10)
	height := pad*2 + r.Theme.LineHeight + 6 + rows*(r.Theme.LineHeight+2)
	r.DrawPanel(x, y, d.width, height)

	cy := r.DrawSectionHeader(x+pad, y+pad, fmt.Sprintf("Fish #%d", fish.ID)) + 6
	for i, fd := range d.fields {
		if !values[i].Visible {
			continue
		}
		cy = r.DrawField(x+pad, cy, fd, values[i], d.width-pad*2)
	}
}
