package game

import (
	"errors"
	"math"
	"testing"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/systems"
	"github.com/pthm-cable/aquarium/telemetry"
)

// ---------- Purchases ----------

func TestBuyFishAndSeaweed_EndToEnd(t *testing.T) {
	g := newTestGame(t)

	if g.Coins() != 200 {
		t.Fatalf("starting coins = %v, want 200", g.Coins())
	}

	id, err := g.BuyFish(components.SpeciesGuppy)
	if err != nil {
		t.Fatalf("BuyFish: %v", err)
	}
	if g.Coins() != 192 || g.FishCount() != 1 {
		t.Fatalf("after guppy: coins=%v fish=%d, want 192 and 1", g.Coins(), g.FishCount())
	}

	if err := g.BuySeaweed(5); err != nil {
		t.Fatalf("BuySeaweed: %v", err)
	}
	if g.Coins() != 177 || g.SeaweedCount() != 5 {
		t.Fatalf("after seaweed: coins=%v seaweed=%d, want 177 and 5", g.Coins(), g.SeaweedCount())
	}

	// Hungry fish sitting on the first seaweed.
	pos, _, _, fish, _, _ := fishParts(t, g, id)
	first := g.cfg.Seaweed.SpawnPoints[0]
	*pos = components.Position{X: first.X, Y: first.Y}
	fish.Hunger = 40

	for i := 0; i < 30; i++ {
		g.Update(frame)
	}

	_, _, _, fish, _, _ = fishParts(t, g, id)
	if fish.FoodEaten != 1 {
		t.Errorf("FoodEaten = %d, want 1", fish.FoodEaten)
	}
	if fish.Hunger >= 1 {
		t.Errorf("hunger = %v, want reset to near zero", fish.Hunger)
	}
	if g.SeaweedCount() != 4 {
		t.Errorf("seaweed = %d, want 4", g.SeaweedCount())
	}
}

func TestBuy_InsufficientFundsLeavesStateUnchanged(t *testing.T) {
	g := newTestGame(t)
	g.coins = 7

	if _, err := g.BuyFish(components.SpeciesGuppy); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("BuyFish err = %v, want ErrInsufficientFunds", err)
	}
	if err := g.BuySeaweed(3); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("BuySeaweed err = %v, want ErrInsufficientFunds", err)
	}
	if g.Coins() != 7 || g.FishCount() != 0 || g.SeaweedCount() != 0 {
		t.Errorf("state changed: coins=%v fish=%d seaweed=%d", g.Coins(), g.FishCount(), g.SeaweedCount())
	}

	// Two seaweed are affordable; the partial order still succeeds.
	if err := g.BuySeaweed(2); err != nil {
		t.Errorf("BuySeaweed(2): %v", err)
	}
	if g.Coins() != 1 {
		t.Errorf("coins = %v, want 1", g.Coins())
	}
}

func TestBuy_InvalidArguments(t *testing.T) {
	g := newTestGame(t)

	if err := g.BuySeaweed(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("BuySeaweed(0) err = %v", err)
	}
	if _, err := g.BuyFish(components.Species(9)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("BuyFish(9) err = %v", err)
	}
	if g.Coins() != 200 {
		t.Errorf("coins = %v, want 200", g.Coins())
	}
}

func TestBuySeaweed_CyclesSpawnPoints(t *testing.T) {
	g := newTestGame(t)
	points := g.cfg.Seaweed.SpawnPoints

	if err := g.BuySeaweed(len(points) + 1); err != nil {
		t.Fatalf("BuySeaweed: %v", err)
	}

	seen := make(map[components.Position]int)
	for _, sw := range g.Snapshot().Seaweed {
		seen[components.Position{X: sw.X, Y: sw.Y}]++
	}
	first := components.Position{X: points[0].X, Y: points[0].Y}
	if seen[first] != 2 {
		t.Errorf("first spawn point used %d times, want 2", seen[first])
	}
	for _, p := range points[1:] {
		if seen[components.Position{X: p.X, Y: p.Y}] != 1 {
			t.Errorf("spawn point %+v not used exactly once", p)
		}
	}
}

// ---------- Selling ----------

func TestSellFish_PriceAndIDs(t *testing.T) {
	g := newTestGame(t)

	id, err := g.BuyFish(components.SpeciesTetra)
	if err != nil {
		t.Fatal(err)
	}
	_, _, body, fish, _, _ := fishParts(t, g, id)
	fish.Stage = 3
	*body = systems.BodyForStage(3, g.cfg)

	before := g.Coins()
	price, err := g.SellFish(id)
	if err != nil {
		t.Fatalf("SellFish: %v", err)
	}

	want := g.cfg.Economy.SellBasePrice * (1 + 2*0.4)
	if price != systems.SellPrice(3, g.cfg) || math.Abs(price-want) > 1e-12 {
		t.Errorf("price = %v, want %v", price, want)
	}
	if g.Coins() != before+price {
		t.Errorf("coins = %v, want %v", g.Coins(), before+price)
	}
	if g.FishCount() != 0 || g.TotalSold() != 1 {
		t.Errorf("fish=%d sold=%d, want 0 and 1", g.FishCount(), g.TotalSold())
	}

	if _, err := g.SellFish(id); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("second sale err = %v, want ErrInvalidReference", err)
	}

	next, err := g.BuyFish(components.SpeciesGuppy)
	if err != nil {
		t.Fatal(err)
	}
	if next <= id {
		t.Errorf("new fish reused ID space: got %d after %d", next, id)
	}
}

func TestSellFish_Achievements(t *testing.T) {
	g := newTestGame(t)

	sell := func() {
		t.Helper()
		_, id := g.spawnFish(components.Position{X: 400, Y: 300}, components.SpeciesGuppy, components.SexMale)
		if _, err := g.SellFish(id); err != nil {
			t.Fatal(err)
		}
	}

	achievements := func() []string {
		var names []string
		for _, ev := range g.Notifications() {
			if ev.Type == telemetry.EventAchievement {
				names = append(names, ev.Message)
			}
		}
		return names
	}

	sell()
	if got := achievements(); len(got) != 1 || got[0] != "First Sale: sold your first fish" {
		t.Fatalf("after first sale: %v", got)
	}

	for i := 0; i < 8; i++ {
		sell()
	}
	if got := achievements(); len(got) != 0 {
		t.Fatalf("unexpected achievements at 9 sales: %v", got)
	}

	sell()
	if got := achievements(); len(got) != 1 || got[0] != "Fishmonger: sold 10 fish" {
		t.Fatalf("after tenth sale: %v", got)
	}
}

// ---------- Clock controls ----------

func TestUpdate_PausedIsNoOp(t *testing.T) {
	g := newTestGame(t)
	id, _ := g.BuyFish(components.SpeciesGuppy)
	pos, _, _, fish, _, _ := fishParts(t, g, id)
	startPos, startHunger, startCoins := *pos, fish.Hunger, g.Coins()

	g.SetPaused(true)
	g.Update(1)

	pos, _, _, fish, _, _ = fishParts(t, g, id)
	if g.Tick() != 0 || g.SimTime() != 0 {
		t.Errorf("clock advanced while paused: tick=%d time=%v", g.Tick(), g.SimTime())
	}
	if *pos != startPos || fish.Hunger != startHunger || g.Coins() != startCoins {
		t.Error("state changed while paused")
	}

	g.SetPaused(false)
	g.Update(frame)
	if g.Tick() != 1 {
		t.Errorf("tick after resume = %d, want 1", g.Tick())
	}
}

func TestUpdate_TimeScale(t *testing.T) {
	tests := []struct {
		scale     float64
		wantTicks int32
	}{
		{1, 1},
		{3, 1},
		{6, 2},
	}

	for _, tt := range tests {
		g := newTestGame(t)
		if err := g.SetTimeScale(tt.scale); err != nil {
			t.Fatal(err)
		}
		g.Update(frame)

		if math.Abs(g.SimTime()-frame*tt.scale) > 1e-12 {
			t.Errorf("scale %v: sim time = %v, want %v", tt.scale, g.SimTime(), frame*tt.scale)
		}
		if g.Tick() != tt.wantTicks {
			t.Errorf("scale %v: ticks = %d, want %d", tt.scale, g.Tick(), tt.wantTicks)
		}
	}
}

func TestSetTimeScale_Rejects(t *testing.T) {
	g := newTestGame(t)
	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1), 1e300, g.cfg.Physics.MaxTimeScale + 1} {
		if err := g.SetTimeScale(v); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("SetTimeScale(%v) err = %v", v, err)
		}
	}
	if g.TimeScale() != 1 {
		t.Errorf("time scale = %v, want 1", g.TimeScale())
	}
}

func TestUpdate_RejectsNonFinite(t *testing.T) {
	tests := []struct {
		name    string
		elapsed float64
	}{
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
		{"nan", math.NaN()},
		{"too many sub-steps", 1e300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			id, err := g.BuyFish(components.SpeciesGuppy)
			if err != nil {
				t.Fatal(err)
			}
			pos, _, _, fish, _, _ := fishParts(t, g, id)
			wantPos, wantHunger := *pos, fish.Hunger
			wantCoins, wantTime := g.Coins(), g.SimTime()

			g.Update(tt.elapsed)

			if g.Tick() != 0 || g.SimTime() != wantTime || g.Coins() != wantCoins {
				t.Errorf("state changed: tick=%d simTime=%v coins=%v", g.Tick(), g.SimTime(), g.Coins())
			}
			if *pos != wantPos || fish.Hunger != wantHunger {
				t.Errorf("fish changed: pos=%+v hunger=%v", *pos, fish.Hunger)
			}

			// The game keeps working afterwards.
			g.Update(frame)
			if g.Tick() != 1 || math.IsNaN(pos.X) || math.IsNaN(pos.Y) {
				t.Errorf("after a normal frame: tick=%d pos=%+v", g.Tick(), *pos)
			}
		})
	}
}

func TestUpdate_MaxTimeScaleSubdivides(t *testing.T) {
	g := newTestGame(t)
	maxScale := g.cfg.Physics.MaxTimeScale
	if err := g.SetTimeScale(maxScale); err != nil {
		t.Fatal(err)
	}

	g.Update(frame)

	total := frame * maxScale
	wantSteps := int32(math.Ceil(total/g.cfg.Physics.MaxStep - 1e-9))
	if g.Tick() != wantSteps {
		t.Errorf("ticks = %d, want %d", g.Tick(), wantSteps)
	}
	if math.Abs(g.SimTime()-total) > 1e-9 {
		t.Errorf("sim time = %v, want %v", g.SimTime(), total)
	}
	if g.SimTime()/float64(g.Tick()) > g.cfg.Physics.MaxStep+1e-12 {
		t.Errorf("sub-step %v longer than max_step %v", g.SimTime()/float64(g.Tick()), g.cfg.Physics.MaxStep)
	}
}

// ---------- Misc commands ----------

func TestScatterAll(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 5; i++ {
		if _, err := g.BuyFish(components.SpeciesGuppy); err != nil {
			t.Fatal(err)
		}
	}

	g.ScatterAll()

	limit := g.cfg.Fish.BaseSpeed * g.cfg.Movement.ScatterRange
	for _, f := range g.Snapshot().Fish {
		if math.Abs(f.VX) > limit || math.Abs(f.VY) > limit {
			t.Errorf("fish %d velocity (%v, %v) outside ±%v", f.ID, f.VX, f.VY, limit)
		}
		if f.VX == 0 {
			t.Errorf("fish %d scattered with no horizontal speed", f.ID)
		}
	}
}

func TestAutoFeed(t *testing.T) {
	for _, on := range []bool{false, true} {
		g := newTestGame(t)
		id, _ := g.BuyFish(components.SpeciesGuppy)
		_, _, _, fish, _, _ := fishParts(t, g, id)
		fish.Hunger = g.cfg.Hunger.AutoFeedAt + 1

		g.SetAutoFeed(on)
		g.Update(frame)

		want := 0
		if on {
			want = 1
		}
		if g.SeaweedCount() != want {
			t.Errorf("auto feed %v: seaweed = %d, want %d", on, g.SeaweedCount(), want)
		}
	}
}

func TestFishAt(t *testing.T) {
	g := newTestGame(t)
	id, _ := g.BuyFish(components.SpeciesGuppy)
	pos, _, _, _, _, _ := fishParts(t, g, id)

	got, ok := g.FishAt(pos.X+5, pos.Y+5)
	if !ok || got != id {
		t.Errorf("FishAt on fish = (%d, %v), want (%d, true)", got, ok, id)
	}
	if _, ok := g.FishAt(pos.X+200, pos.Y); ok {
		t.Error("FishAt found a fish in empty water")
	}
}

func TestEffects_SaleCarriesPosition(t *testing.T) {
	g := newTestGame(t)
	_, id := g.spawnFish(components.Position{X: 123, Y: 456}, components.SpeciesGuppy, components.SexMale)
	if _, err := g.SellFish(id); err != nil {
		t.Fatal(err)
	}

	effects := g.Effects()
	if len(effects) != 1 {
		t.Fatalf("got %d effects, want 1", len(effects))
	}
	if ev := effects[0]; ev.Type != telemetry.EventFishSold || ev.X != 123 || ev.Y != 456 {
		t.Errorf("unexpected effect %+v", ev)
	}
	if len(g.Effects()) != 0 {
		t.Error("Effects should drain the queue")
	}
}

func TestEffects_QueueIsBounded(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < maxQueued+10; i++ {
		g.emit(telemetry.Event{Type: telemetry.EventMeal, FishID: uint32(i)})
	}

	effects := g.Effects()
	if len(effects) != maxQueued {
		t.Fatalf("queue length = %d, want %d", len(effects), maxQueued)
	}
	if effects[0].FishID != 10 {
		t.Errorf("oldest kept event = %d, want 10", effects[0].FishID)
	}
}
