package inspector

import (
	"testing"

	"github.com/pthm-cable/aquarium/telemetry"
)

func TestHistoryPanel_RecordsOldestFirst(t *testing.T) {
	p := NewHistoryPanel(800, 600)

	for i := 1; i <= 3; i++ {
		p.Update(telemetry.WindowStats{Coins: float64(i * 10), Fish: i})
	}

	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	coins := p.values(seriesCoins)
	for i, want := range []float64{10, 20, 30} {
		if coins[i] != want {
			t.Errorf("coins[%d] = %v, want %v", i, coins[i], want)
		}
	}
}

func TestHistoryPanel_RingBufferWraps(t *testing.T) {
	p := NewHistoryPanel(800, 600)

	total := historySize + 5
	for i := 0; i < total; i++ {
		p.Update(telemetry.WindowStats{Fish: i})
	}

	if p.Len() != historySize {
		t.Fatalf("Len() = %d, want %d", p.Len(), historySize)
	}
	fish := p.values(seriesFish)
	if fish[0] != 5 {
		t.Errorf("oldest kept window = %v, want 5", fish[0])
	}
	if fish[len(fish)-1] != float64(total-1) {
		t.Errorf("newest window = %v, want %d", fish[len(fish)-1], total-1)
	}
}

func TestHistoryPanel_SeriesRange(t *testing.T) {
	p := NewHistoryPanel(800, 600)

	lo, hi := p.seriesRange(coinSeries)
	if lo != 0 || hi != 1 {
		t.Errorf("empty range = (%v, %v), want (0, 1)", lo, hi)
	}

	p.Update(telemetry.WindowStats{Coins: 100})
	p.Update(telemetry.WindowStats{Coins: 200})

	lo, hi = p.seriesRange(coinSeries)
	if lo >= 0 || hi <= 200 {
		t.Errorf("range (%v, %v) should pad around [0, 200]", lo, hi)
	}
}

func TestHistoryPanel_LegendToggle(t *testing.T) {
	p := NewHistoryPanel(800, 600)

	legendY := p.panelY + p.panelHeight - 24
	coinsX := p.panelX + 10

	if !p.HandleInput(coinsX+5, legendY+5) {
		t.Fatal("click on legend should be captured")
	}
	if p.seriesVisible[seriesCoins] {
		t.Error("clicking Coins should hide it")
	}

	if p.HandleInput(5, 5) {
		t.Error("click outside panel should not be captured")
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{5.3, "5.3"},
		{150, "150"},
		{2500, "2.5k"},
		{25000, "25k"},
		{-1500, "-1.5k"},
	}

	for _, tt := range tests {
		if got := formatAmount(tt.v); got != tt.want {
			t.Errorf("formatAmount(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
