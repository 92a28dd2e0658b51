package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/telemetry"
)

// ToastLevel colors a notification.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastGood
	ToastBad
	ToastAchievement
)

// Toast is one on-screen notification.
type Toast struct {
	Text  string
	Level ToastLevel
	Age   float32 // seconds shown so far
}

// Toasts is a short queue of notifications that fade out after ttl
// seconds of real time.
type Toasts struct {
	items []Toast
	ttl   float32
	max   int
}

// NewToasts creates a queue keeping at most limit toasts for ttl seconds.
func NewToasts(ttl float32, limit int) *Toasts {
	return &Toasts{ttl: ttl, max: limit}
}

// Push adds a toast, dropping the oldest if the queue is full.
func (t *Toasts) Push(text string, level ToastLevel) {
	t.items = append(t.items, Toast{Text: text, Level: level})
	if len(t.items) > t.max {
		t.items = t.items[len(t.items)-t.max:]
	}
}

// PushEvent adds a toast for a game notification.
func (t *Toasts) PushEvent(ev telemetry.Event) {
	text := ev.Message
	if text == "" {
		text = ev.Type.String()
	}
	t.Push(text, eventLevel(ev.Type))
}

func eventLevel(et telemetry.EventType) ToastLevel {
	switch et {
	case telemetry.EventAchievement:
		return ToastAchievement
	case telemetry.EventStarved:
		return ToastBad
	case telemetry.EventBred, telemetry.EventHatch, telemetry.EventGrowth:
		return ToastGood
	}
	return ToastInfo
}

// Update ages toasts by dt and drops expired ones.
func (t *Toasts) Update(dt float32) {
	kept := t.items[:0]
	for _, item := range t.items {
		item.Age += dt
		if item.Age < t.ttl {
			kept = append(kept, item)
		}
	}
	t.items = kept
}

// Active returns the visible toasts, oldest first.
func (t *Toasts) Active() []Toast {
	return t.items
}

// Draw stacks toasts downward from (x, y), newest at the bottom. Toasts
// fade over the last second of their life.
func (t *Toasts) Draw(x, y int32, theme Theme) {
	for _, item := range t.items {
		color := toastColor(item.Level)
		if remaining := t.ttl - item.Age; remaining < 1 {
			color = rl.Fade(color, remaining)
		}
		width := rl.MeasureText(item.Text, theme.HeaderFontSize) + theme.Padding*2
		bg := rl.Fade(theme.PanelBg, float32(color.A)/255)
		rl.DrawRectangle(x, y, width, theme.LineHeight+8, bg)
		rl.DrawText(item.Text, x+theme.Padding, y+4, theme.HeaderFontSize, color)
		y += theme.LineHeight + 12
	}
}

func toastColor(level ToastLevel) rl.Color {
	switch level {
	case ToastGood:
		return rl.Color{R: 120, G: 220, B: 120, A: 255}
	case ToastBad:
		return rl.Color{R: 230, G: 90, B: 90, A: 255}
	case ToastAchievement:
		return rl.Gold
	}
	return rl.RayWhite
}
