package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/camera"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/game"
	"github.com/pthm-cable/aquarium/inspector"
	"github.com/pthm-cable/aquarium/telemetry"
)

const controlsLegend = "[G/T] buy fish  [F] seaweed  [S] sell mode  [Space] pause  [1/3/6] speed  " +
	"[A] auto-feed  [X] scatter  [K] overlays  right-click: inspect  wheel: zoom"

// App is the graphical front-end. Call Frame once per rendered frame
// between raylib's window setup and teardown.
type App struct {
	game *game.Game
	cfg  *config.Config

	cam       *camera.Camera
	tank      *TankRenderer
	hud       *HUD
	shop      *ShopPanel
	controls  *ControlsPanel
	overlays  *OverlayRegistry
	details   *DetailsPanel
	perf      *PerfPanel
	inspector *inspector.Inspector
	history   *inspector.HistoryPanel
	toasts    *Toasts
	effects   *Effects
	ctrl      *Controller

	screenW, screenH int32
}

// NewApp builds the front-end for g. The raylib window must already exist.
func NewApp(g *game.Game) *App {
	cfg := g.Config()
	screenW, screenH := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

	toasts := NewToasts(4, 6)
	shop := NewShopPanel()
	cam := camera.New(float32(screenW), float32(screenH-shop.Height()),
		float32(cfg.Arena.Width), float32(cfg.Arena.Height))

	a := &App{
		game:      g,
		cfg:       cfg,
		cam:       cam,
		tank:      NewTankRenderer(cfg, cam),
		hud:       NewHUD(),
		shop:      shop,
		controls:  NewControlsPanel(10, 120, 200),
		overlays:  NewOverlayRegistry(),
		details:   NewDetailsPanel(cfg),
		perf:      NewPerfPanel(16, screenH-shop.Height()-160),
		inspector: inspector.NewInspector(screenW, cfg),
		history:   inspector.NewHistoryPanel(screenW, screenH-shop.Height()),
		toasts:    toasts,
		effects:   NewEffects(g.Seed()),
		ctrl:      NewController(g, toasts),
		screenW:   screenW,
		screenH:   screenH,
	}

	g.SetStatsCallback(func(s telemetry.WindowStats) { a.history.Update(s) })

	// Escape closes panels instead of the window.
	rl.SetExitKey(0)

	return a
}

// Overlays exposes the overlay state, for setting it up from flags.
func (a *App) Overlays() *OverlayRegistry { return a.overlays }

// Frame handles input, advances the game by the frame time and draws.
func (a *App) Frame() {
	dt := rl.GetFrameTime()

	a.handleResize()
	a.handleKeys()
	a.handleMouse()

	a.game.Update(float64(dt))
	a.game.RecordFrame()
	a.ctrl.Poll()
	a.toasts.Update(dt)
	for _, ev := range a.game.Effects() {
		a.effects.Emit(ev)
	}
	a.effects.Update(dt)

	a.draw()
}

func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	a.screenW, a.screenH = int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	tankH := a.screenH - a.shop.Height()
	a.cam.Resize(float32(a.screenW), float32(tankH))
	a.inspector.Resize(a.screenW)
	a.history.Resize(a.screenW, tankH)
	a.perf.SetPosition(16, tankH-160)
}

// handleKeys drains the key queue into actions and overlay toggles.
func (a *App) handleKeys() {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if key == rl.KeyK {
			a.controls.Toggle()
			continue
		}
		if _, _, ok := a.overlays.HandleKeyPress(key); ok {
			continue
		}
		action := actionForKey(key)
		if action == ActionCloseDetails {
			a.inspector.Deselect()
		}
		a.ctrl.Do(action)
	}
}

// actionForKey returns the action bound to a key.
func actionForKey(key int32) Action {
	for _, b := range keyBindings {
		if b.Key == key {
			return b.Action
		}
	}
	return ActionNone
}

func (a *App) handleMouse() {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.cam.ZoomBy(1 + 0.1*wheel)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		d := rl.GetMouseDelta()
		a.cam.Pan(-d.X, -d.Y)
	}

	mx, my := rl.GetMouseX(), rl.GetMouseY()
	if my >= a.screenH-a.shop.Height() {
		return // raygui owns the shop strip
	}
	wx, wy := a.cam.ScreenToWorld(float32(mx), float32(my))

	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		if id, ok := a.game.FishAt(float64(wx), float64(wy)); ok {
			a.inspector.Select(id)
		} else {
			a.inspector.Deselect()
		}
		return
	}

	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	if a.inspector.Contains(mx, my, a.inspectorHeight()) {
		return
	}
	if a.overlays.IsEnabled(OverlayHistory) && a.history.HandleInput(mx, my) {
		return
	}
	a.ctrl.Click(float64(wx), float64(wy))
}

func (a *App) inspectorHeight() int32 {
	id, ok := a.inspector.Selected()
	if !ok {
		return 0
	}
	c, ok := a.game.Inspect(id)
	if !ok {
		return 0
	}
	return inspector.PanelHeight(inspector.FishSections(c, a.cfg))
}

func (a *App) draw() {
	snap := a.game.Snapshot()
	tankH := a.screenH - a.shop.Height()

	var hover uint32
	mx, my := rl.GetMouseX(), rl.GetMouseY()
	if my < tankH {
		wx, wy := a.cam.ScreenToWorld(float32(mx), float32(my))
		hover, _ = a.game.FishAt(float64(wx), float64(wy))
	}

	detailsID := uint32(0)
	fish, hasDetails := a.ctrl.Details()
	if hasDetails {
		detailsID = fish.ID
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	a.tank.Draw(TankView{
		Snapshot: snap,
		Overlays: a.overlays,
		SellMode: a.ctrl.SellMode(),
		Hover:    hover,
		Details:  detailsID,
		Effects:  a.effects,
	})

	inspected, inspecting := a.inspected()
	if inspecting {
		sx, sy := a.cam.WorldToScreen(float32(inspected.Position.X), float32(inspected.Position.Y))
		inspector.DrawRangeRing(sx, sy, a.cam.Scale(float32(a.cfg.Breeding.ContactRange)), rl.Fade(rl.Yellow, 0.5))
	}

	hudData := HUDFromSnapshot(snap, a.ctrl.SellMode())
	hudData.FPS = rl.GetFPS()
	a.hud.Draw(hudData)

	if hasDetails {
		a.details.Draw(a.screenW, fish, a.cfg)
	}

	toastX := int32(10)
	if a.controls.IsVisible() {
		a.controls.Draw(a.overlays)
		toastX = 220
	}
	a.toasts.Draw(toastX, 120, a.tank.theme)

	if a.overlays.IsEnabled(OverlayHistory) {
		a.history.Draw()
	}
	if a.overlays.IsEnabled(OverlayPerf) {
		a.perf.Draw(a.game.PerfStats())
	}
	if inspecting {
		a.inspector.Draw(inspected)
	}

	a.hud.DrawControls(tankH-16, controlsLegend)
	action := a.shop.Draw(a.screenW, a.screenH, ShopState{
		Paused:    snap.Paused,
		AutoFeed:  snap.AutoFeed,
		SellMode:  a.ctrl.SellMode(),
		TimeScale: snap.TimeScale,
	})

	rl.EndDrawing()

	a.ctrl.Do(action)
}

// inspected resolves the inspector's fish, closing it if the fish is gone.
func (a *App) inspected() (game.FishComponents, bool) {
	id, ok := a.inspector.Selected()
	if !ok {
		return game.FishComponents{}, false
	}
	c, ok := a.game.Inspect(id)
	if !ok {
		a.inspector.Deselect()
	}
	return c, ok
}
