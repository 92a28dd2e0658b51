package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
)

func TestChooseTarget(t *testing.T) {
	cfg := testConfig()
	w := ecs.NewWorld()
	m := ecs.NewMap[components.Seaweed](w)
	near := m.NewEntity(&components.Seaweed{Slot: 0})
	far := m.NewEntity(&components.Seaweed{Slot: 1})
	twin := m.NewEntity(&components.Seaweed{Slot: 2})

	from := components.Position{X: 0, Y: 0}
	candidates := []FoodCandidate{
		{E: near, Pos: components.Position{X: 10, Y: 0}},
		{E: far, Pos: components.Position{X: 100, Y: 0}},
		{E: twin, Pos: components.Position{X: 0, Y: 10}},
	}

	tests := []struct {
		name       string
		contention map[ecs.Entity]int
		want       int
	}{
		{"nearest wins", nil, 0},
		{"tie keeps first", map[ecs.Entity]int{}, 0},
		{"contended near loses to free twin", map[ecs.Entity]int{near: 1}, 2},
		{"crowded nearby loses to far", map[ecs.Entity]int{near: 3, twin: 3}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChooseTarget(from, candidates, tt.contention, cfg); got != tt.want {
				t.Errorf("ChooseTarget = %d, want %d", got, tt.want)
			}
		})
	}

	if got := ChooseTarget(from, nil, nil, cfg); got != -1 {
		t.Errorf("ChooseTarget with no candidates = %d, want -1", got)
	}
}
