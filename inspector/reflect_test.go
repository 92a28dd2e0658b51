package inspector

import (
	"strconv"
	"testing"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/game"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag    string
		widget Widget
		opts   map[string]string
	}{
		{"", WidgetAuto, map[string]string{}},
		{"skip", WidgetSkip, map[string]string{}},
		{"bool", WidgetBool, map[string]string{}},
		{"pips,max:5", WidgetPips, map[string]string{"max": "5"}},
		{"bar,max:150", WidgetBar, map[string]string{"max": "150"}},
		{"label,fmt:%.1fs", WidgetLabel, map[string]string{"fmt": "%.1fs"}},
		{"mystery", WidgetAuto, map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			w, opts := ParseTag(tt.tag)
			if w != tt.widget {
				t.Errorf("widget = %d, want %d", w, tt.widget)
			}
			if len(opts) != len(tt.opts) {
				t.Fatalf("options = %v, want %v", opts, tt.opts)
			}
			for k, v := range tt.opts {
				if opts[k] != v {
					t.Errorf("option %q = %q, want %q", k, opts[k], v)
				}
			}
		})
	}
}

func TestExtractFields_SkipsTaggedFields(t *testing.T) {
	fish := components.Fish{ID: 7, Species: components.SpeciesTetra, Stage: 3, Hunger: 42, HasTarget: true}
	fields := ExtractFields(&fish)

	names := make(map[string]Field)
	for _, f := range fields {
		names[f.Name] = f
	}

	for _, skipped := range []string{"Target", "HasTarget"} {
		if _, ok := names[skipped]; ok {
			t.Errorf("field %s should be skipped", skipped)
		}
	}

	hunger, ok := names["Hunger"]
	if !ok {
		t.Fatal("Hunger missing")
	}
	if hunger.Widget != WidgetBar || GetMax(hunger.Options) != 150 {
		t.Errorf("Hunger should be a bar with max 150, got widget %d max %v", hunger.Widget, GetMax(hunger.Options))
	}

	if names["Hungry"].Widget != WidgetBool {
		t.Errorf("Hungry should render as bool")
	}
	if got := FormatValue(names["Species"].Value, ""); got != "Tetra" {
		t.Errorf("Species formatted as %q, want Tetra", got)
	}
}

func TestExtractFields_NonStruct(t *testing.T) {
	if fields := ExtractFields(3); fields != nil {
		t.Errorf("expected nil for non-struct, got %v", fields)
	}
	var nilFish *components.Fish
	if fields := ExtractFields(nilFish); fields != nil {
		t.Errorf("expected nil for nil pointer, got %v", fields)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		fmt   string
		want  string
	}{
		{"float default", 1.234, "", "1.23"},
		{"custom format", 12.345, "%.1fs", "12.3s"},
		{"int", 5, "", "5"},
		{"stringer", components.SexFemale, "", "female"},
		{"bool", true, "", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.value, tt.fmt); got != tt.want {
				t.Errorf("FormatValue(%v, %q) = %q, want %q", tt.value, tt.fmt, got, tt.want)
			}
		})
	}
}

func TestGetMax(t *testing.T) {
	if GetMax(nil) != 1 {
		t.Error("missing max should default to 1")
	}
	if GetMax(map[string]string{"max": "bogus"}) != 1 {
		t.Error("unparseable max should default to 1")
	}
	if GetMax(map[string]string{"max": "0"}) != 1 {
		t.Error("non-positive max should default to 1")
	}
	if GetMax(map[string]string{"max": "150"}) != 150 {
		t.Error("max:150 should parse")
	}
}

func TestFishSections(t *testing.T) {
	c := game.FishComponents{
		Fish:     components.Fish{ID: 3, Stage: 2, FoodEaten: 1},
		Breeding: components.Breeding{Partner: 4},
	}
	cfg := config.MustLoad("")
	sections := FishSections(c, cfg)

	want := []string{"FISH", "BREEDING", "MOTION", "BODY"}
	if len(sections) != len(want) {
		t.Fatalf("got %d sections, want %d", len(sections), len(want))
	}
	for i, s := range sections {
		if s.Title != want[i] {
			t.Errorf("section %d title = %q, want %q", i, s.Title, want[i])
		}
		if len(s.Fields) == 0 {
			t.Errorf("section %s has no fields", s.Title)
		}
	}

	if PanelHeight(sections) <= HeaderHeight {
		t.Error("panel height should cover the sections")
	}

	opts := map[string]map[string]string{}
	for _, f := range sections[0].Fields {
		opts[f.Name] = f.Options
	}
	if got := opts["Stage"]["max"]; got != strconv.Itoa(cfg.Growth.MaxStage) {
		t.Errorf("stage pips max = %q, want %d", got, cfg.Growth.MaxStage)
	}
	if got := opts["FoodEaten"]["max"]; got != strconv.Itoa(cfg.FoodNeeded(2)) {
		t.Errorf("meal bar max = %q, want %d", got, cfg.FoodNeeded(2))
	}
}

func TestInspectorSelection(t *testing.T) {
	ins := NewInspector(800, config.MustLoad(""))

	if ins.Contains(700, 20, 300) {
		t.Error("closed panel should not capture clicks")
	}

	ins.Select(9)
	if id, ok := ins.Selected(); !ok || id != 9 {
		t.Fatalf("Selected() = %d, %v; want 9, true", id, ok)
	}
	if !ins.Contains(600, 100, 300) {
		t.Error("click inside open panel should be captured")
	}
	if ins.Contains(100, 100, 300) {
		t.Error("click outside panel should not be captured")
	}

	// Close button sits in the top-right corner of the panel.
	closeX := int32(800 - 10 - 25 + 5)
	if !ins.Contains(closeX, 15, 300) {
		t.Error("close button click should be captured")
	}
	if _, ok := ins.Selected(); ok {
		t.Error("close button should deselect")
	}
}
