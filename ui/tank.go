package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/camera"
	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/game"
)

// TankRenderer draws the tank contents through a camera.
type TankRenderer struct {
	theme Theme
	cfg   *config.Config
	cam   *camera.Camera
}

// NewTankRenderer creates a renderer for the tank.
func NewTankRenderer(cfg *config.Config, cam *camera.Camera) *TankRenderer {
	return &TankRenderer{theme: DefaultTheme(), cfg: cfg, cam: cam}
}

// TankView carries the front-end state the tank drawing depends on.
type TankView struct {
	Snapshot game.Snapshot
	Overlays *OverlayRegistry
	SellMode bool
	Hover    uint32 // fish under the cursor, zero if none
	Details  uint32 // fish with details open, zero if none
	Effects  *Effects
}

// Draw renders water, seaweed, fish and enabled overlays.
func (t *TankRenderer) Draw(v TankView) {
	t.drawWater()

	for _, sw := range v.Snapshot.Seaweed {
		t.drawSeaweed(sw)
	}

	byID := make(map[uint32]game.FishView, len(v.Snapshot.Fish))
	for _, f := range v.Snapshot.Fish {
		byID[f.ID] = f
	}

	if v.Overlays.IsEnabled(OverlayFoodTargets) {
		for _, f := range v.Snapshot.Fish {
			if f.HasTarget {
				t.line(f.X, f.Y, f.TargetX, f.TargetY, rl.Fade(t.theme.Seaweed, 0.6))
			}
		}
	}
	if v.Overlays.IsEnabled(OverlayBreedingLinks) {
		t.drawBreedingLinks(v.Snapshot.Fish, byID)
	}

	for _, f := range v.Snapshot.Fish {
		t.drawFish(f)
	}

	for _, f := range v.Snapshot.Fish {
		switch {
		case v.SellMode && f.ID == v.Hover:
			t.outline(f, t.theme.SellHighlight, 3)
		case f.ID == v.Snapshot.Selected:
			t.outline(f, t.theme.SelectFirst, 2)
		case f.Partner != 0:
			t.outline(f, t.theme.SelectPartner, 2)
		case f.ID == v.Details:
			t.outline(f, rl.RayWhite, 1)
		}

		if v.Overlays.IsEnabled(OverlayReachBoxes) {
			t.drawReachBox(f)
		}
		if v.Overlays.IsEnabled(OverlayHungerBars) {
			t.drawHungerBar(f)
		}
		if v.Overlays.IsEnabled(OverlayStageLabels) {
			sx, sy := t.cam.WorldToScreen(float32(f.X+f.Width/2), float32(f.Y-f.Height/2))
			rl.DrawText(fmt.Sprintf("S%d", f.Stage), int32(sx)+2, int32(sy)-2, 10, rl.RayWhite)
		}
	}

	if v.Effects != nil && v.Overlays.IsEnabled(OverlayEffects) {
		v.Effects.Draw(t.cam)
	}
}

// drawWater fills the tank and lays sand along the bottom.
func (t *TankRenderer) drawWater() {
	w, h := float32(t.cfg.Arena.Width), float32(t.cfg.Arena.Height)
	x0, y0 := t.cam.WorldToScreen(0, 0)
	x1, y1 := t.cam.WorldToScreen(w, h)
	rl.DrawRectangleGradientV(int32(x0), int32(y0), int32(x1-x0), int32(y1-y0),
		rl.ColorBrightness(t.theme.Water, 0.15), rl.ColorBrightness(t.theme.Water, -0.35))

	sandH := t.cam.Scale(h * 0.04)
	rl.DrawRectangle(int32(x0), int32(y1-sandH), int32(x1-x0), int32(sandH), t.theme.Sand)
}

func (t *TankRenderer) drawSeaweed(sw game.SeaweedView) {
	r := t.rect(sw.X, sw.Y, sw.Width, sw.Height)
	rl.DrawRectangleRec(r, t.theme.Seaweed)
	stripe := r
	stripe.X += r.Width / 3
	stripe.Width = r.Width / 3
	rl.DrawRectangleRec(stripe, rl.ColorBrightness(t.theme.Seaweed, -0.3))
}

// drawFish draws a body ellipse with a tail trailing opposite the heading.
func (t *TankRenderer) drawFish(f game.FishView) {
	color := t.theme.Guppy
	if f.Species == components.SpeciesTetra {
		color = t.theme.Tetra
	}
	if f.Sex == components.SexFemale {
		color = rl.ColorBrightness(color, 0.25)
	}

	cx, cy := t.cam.WorldToScreen(float32(f.X), float32(f.Y))
	rx := t.cam.Scale(float32(f.Width) / 2)
	ry := t.cam.Scale(float32(f.Height) / 2)

	dir := float32(1)
	if f.VX < 0 {
		dir = -1
	}
	tailBase := rl.Vector2{X: cx - dir*rx*0.8, Y: cy}
	tailTop := rl.Vector2{X: cx - dir*rx*1.4, Y: cy - ry*0.9}
	tailBottom := rl.Vector2{X: cx - dir*rx*1.4, Y: cy + ry*0.9}
	if dir > 0 {
		rl.DrawTriangle(tailBase, tailTop, tailBottom, rl.ColorBrightness(color, -0.2))
	} else {
		rl.DrawTriangle(tailBase, tailBottom, tailTop, rl.ColorBrightness(color, -0.2))
	}

	rl.DrawEllipse(int32(cx), int32(cy), rx, ry, color)

	eye := rl.Vector2{X: cx + dir*rx*0.5, Y: cy - ry*0.2}
	rl.DrawCircleV(eye, float32(math.Max(1, float64(ry*0.2))), rl.Black)
}

// drawBreedingLinks joins each pair once and shows contact progress.
func (t *TankRenderer) drawBreedingLinks(fish []game.FishView, byID map[uint32]game.FishView) {
	for _, f := range fish {
		if f.Partner == 0 || f.ID > f.Partner {
			continue
		}
		p, ok := byID[f.Partner]
		if !ok {
			continue
		}
		color := t.theme.SelectPartner
		if f.Breeding == components.BreedContact {
			color = rl.Pink
		}
		t.line(f.X, f.Y, p.X, p.Y, color)

		mx, my := t.cam.WorldToScreen(float32((f.X+p.X)/2), float32((f.Y+p.Y)/2))
		progress := f.Contact / t.cfg.Breeding.RequiredContact
		rl.DrawText(fmt.Sprintf("%.0f%%", clamp01(progress)*100), int32(mx), int32(my)-12, 10, color)
	}
}

func (t *TankRenderer) drawHungerBar(f game.FishView) {
	ratio := float32(clamp01(f.Hunger / t.cfg.Hunger.DeathThreshold))
	r := t.rect(f.X, f.Y-f.Height/2-4, f.Width, 0)
	r.Height = 3
	color := t.theme.BarFillLow
	if f.Hungry {
		color = t.theme.BarFillMedium
	}
	if ratio > 0.8 {
		color = t.theme.BarFillHigh
	}
	rl.DrawRectangleRec(r, t.theme.BarBg)
	r.Width *= ratio
	rl.DrawRectangleRec(r, color)
}

func (t *TankRenderer) drawReachBox(f game.FishView) {
	pad := t.cfg.Feeding.ReachPadding
	rl.DrawRectangleLinesEx(t.rect(f.X, f.Y, f.Width+pad, f.Height+pad), 1, rl.Fade(rl.RayWhite, 0.4))
}

func (t *TankRenderer) outline(f game.FishView, color rl.Color, thick float32) {
	rl.DrawRectangleLinesEx(t.rect(f.X, f.Y, f.Width, f.Height), thick, color)
}

// rect converts a centered world box to a screen rectangle.
func (t *TankRenderer) rect(x, y, w, h float64) rl.Rectangle {
	sx, sy := t.cam.WorldToScreen(float32(x-w/2), float32(y-h/2))
	return rl.Rectangle{X: sx, Y: sy, Width: t.cam.Scale(float32(w)), Height: t.cam.Scale(float32(h))}
}

func (t *TankRenderer) line(x0, y0, x1, y1 float64, color rl.Color) {
	ax, ay := t.cam.WorldToScreen(float32(x0), float32(y0))
	bx, by := t.cam.WorldToScreen(float32(x1), float32(y1))
	rl.DrawLineV(rl.Vector2{X: ax, Y: ay}, rl.Vector2{X: bx, Y: by}, color)
}
