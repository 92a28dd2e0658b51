// Economy preview tool - interactive per-stage profit table with sliders.
//
// Usage: go run ./cmd/economypreview [-config my.yaml]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"

	"github.com/pthm-cable/aquarium/config"
)

const (
	windowWidth  = 1000
	windowHeight = 640
	tableWidth   = 600
	panelWidth   = windowWidth - tableWidth - 30
)

// slider binds a raygui slider to a config value.
type slider struct {
	label    string
	min, max float32
	format   string
	field    func(*config.Config) *float64
}

var sliders = []slider{
	{"Seaweed price", 1, 10, "%.1f", func(c *config.Config) *float64 { return &c.Economy.SeaweedPrice }},
	{"Sell base price", 1, 10, "%.1f", func(c *config.Config) *float64 { return &c.Economy.SellBasePrice }},
	{"Sell stage bonus", 0, 2, "%.2f", func(c *config.Config) *float64 { return &c.Economy.SellStageBonus }},
	{"Base income (/s)", 0, 0.1, "%.3f", func(c *config.Config) *float64 { return &c.Economy.BaseIncome }},
	{"Hunger base rate (/s)", 0.1, 2, "%.2f", func(c *config.Config) *float64 { return &c.Hunger.BaseRate }},
	{"Hunger per stage (/s)", 0, 0.5, "%.3f", func(c *config.Config) *float64 { return &c.Hunger.StageIncrement }},
	{"Eat cooldown (s)", 1, 15, "%.1f", func(c *config.Config) *float64 { return &c.Feeding.EatCooldown }},
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	flag.Parse()

	base, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := base.Clone()
	species := 0

	rl.InitWindow(windowWidth, windowHeight, "Economy Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	for !rl.WindowShouldClose() {
		sp := cfg.Species[species]
		rows := StageEconomics(cfg, sp.Price)
		best := BestStage(rows)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawTable(rows, best, sp)
		drawMarginChart(rows, best, 10, 300, tableWidth, 280)

		// Control panel
		panelX := float32(tableWidth + 20)
		panelY := float32(10)

		rl.DrawText("Economy Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		for _, s := range sliders {
			v := s.field(cfg)
			rl.DrawText(s.label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			newVal := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				"", "",
				float32(*v), s.min, s.max,
			)
			rl.DrawText(fmt.Sprintf(s.format, *v), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			if newVal != float32(*v) {
				*v = float64(newVal)
			}
			panelY += 35
		}

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Species: "+sp.Name) {
			species = (species + 1) % len(cfg.Species)
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			cfg = base.Clone()
		}
		panelY += 45

		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		yaml := yamlSnippet(cfg)
		for _, line := range strings.Split(yaml, "\n") {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}

func drawTable(rows []StageRow, best int, sp config.SpeciesConfig) {
	x, y := int32(10), int32(10)
	rl.DrawText(fmt.Sprintf("%s (costs %.0f): best sale at stage %d", sp.Name, sp.Price, best), x, y, 20, rl.DarkGray)
	y += 35

	cols := []struct {
		title string
		width int32
	}{
		{"Stage", 50}, {"Meals", 50}, {"Grow", 60}, {"Feed", 60}, {"Earned", 60},
		{"Sell", 50}, {"Margin", 70}, {"Income/s", 70}, {"Hungry", 60}, {"Starve", 60},
	}
	cx := x
	for _, c := range cols {
		rl.DrawText(c.title, cx, y, 14, rl.Gray)
		cx += c.width
	}
	y += 20

	for _, r := range rows {
		color := rl.DarkGray
		if r.Stage == best {
			color = rl.DarkGreen
		}
		cells := []string{
			fmt.Sprintf("%d", r.Stage),
			fmt.Sprintf("%d", r.Meals),
			fmt.Sprintf("%.0fs", r.GrowSeconds),
			fmt.Sprintf("%.1f", r.FeedCost),
			fmt.Sprintf("%.1f", r.Earned),
			fmt.Sprintf("%.1f", r.SellPrice),
			fmt.Sprintf("%+.1f", r.Margin),
			fmt.Sprintf("%.3f", r.IncomeRate),
			fmt.Sprintf("%.0fs", r.ToHungry),
			fmt.Sprintf("%.0fs", r.ToStarvation),
		}
		cx = x
		for i, c := range cells {
			rl.DrawText(c, cx, y, 14, color)
			cx += cols[i].width
		}
		y += 20
	}
}

// drawMarginChart draws one bar per stage around a zero line.
func drawMarginChart(rows []StageRow, best int, x, y, w, h int32) {
	rl.DrawRectangleLines(x, y, w, h, rl.LightGray)
	if len(rows) == 0 {
		return
	}

	var extent float64
	for _, r := range rows {
		extent = max(extent, r.Margin, -r.Margin)
	}
	if extent == 0 {
		extent = 1
	}

	zero := y + h/2
	rl.DrawLine(x, zero, x+w, zero, rl.Gray)

	barW := w / int32(len(rows))
	for i, r := range rows {
		bh := int32(float64(h/2-10) * r.Margin / extent)
		bx := x + int32(i)*barW + barW/4
		color := rl.Maroon
		if r.Margin >= 0 {
			color = rl.DarkGreen
		}
		if r.Stage == best {
			color = rl.ColorBrightness(color, 0.3)
		}
		if bh >= 0 {
			rl.DrawRectangle(bx, zero-bh, barW/2, bh, color)
		} else {
			rl.DrawRectangle(bx, zero, barW/2, -bh, color)
		}
		rl.DrawText(fmt.Sprintf("S%d", r.Stage), bx, y+h-16, 12, rl.Gray)
	}
	rl.DrawText("margin per fish", x+4, y+4, 12, rl.Gray)
}

func yamlSnippet(cfg *config.Config) string {
	return fmt.Sprintf(`economy:
  seaweed_price: %.2f
  sell_base_price: %.2f
  sell_stage_bonus: %.3f
  base_income: %.4f
hunger:
  base_rate: %.3f
  stage_increment: %.4f
feeding:
  eat_cooldown: %.2f`,
		cfg.Economy.SeaweedPrice, cfg.Economy.SellBasePrice, cfg.Economy.SellStageBonus,
		cfg.Economy.BaseIncome, cfg.Hunger.BaseRate, cfg.Hunger.StageIncrement,
		cfg.Feeding.EatCooldown)
}
