package game

import (
	"sort"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/systems"
)

// FishView is a read-only copy of one fish for rendering.
type FishView struct {
	ID      uint32
	Species components.Species
	Sex     components.Sex

	X, Y          float64
	VX, VY        float64
	Width, Height float64

	Stage      int
	FoodEaten  int
	FoodNeeded int // zero at the final stage
	Hunger     float64
	Hungry     bool
	HasTarget  bool
	TargetX    float64 // seaweed position, valid with HasTarget
	TargetY    float64

	Breeding  components.BreedState
	Partner   uint32
	Contact   float64 // seconds of contact accrued with the partner
	Gestation float64 // seconds until the brood hatches
	SellPrice float64
}

// SeaweedView is a read-only copy of one seaweed.
type SeaweedView struct {
	X, Y          float64
	Width, Height float64
}

// Snapshot is the state the front-end reads between updates.
type Snapshot struct {
	Tick    int32
	SimTime float64

	Fish    []FishView // ordered by ID
	Seaweed []SeaweedView

	Coins      float64
	IncomeRate float64
	TotalSold  int

	TimeScale float64
	Paused    bool
	AutoFeed  bool
	Selected  uint32
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		SimTime:    g.simTime,
		Fish:       make([]FishView, 0, g.FishCount()),
		Seaweed:    make([]SeaweedView, 0, g.seaweedCount),
		Coins:      g.coins,
		IncomeRate: g.IncomeRate(),
		TotalSold:  g.totalSold,
		TimeScale:  g.timeScale,
		Paused:     g.paused,
		AutoFeed:   g.autoFeed,
		Selected:   g.selected,
	}

	query := g.fishFilter.Query()
	for query.Next() {
		pos, vel, body, fish, _, br := query.Get()
		s.Fish = append(s.Fish, g.fishView(pos, vel, body, fish, br))
	}
	sort.Slice(s.Fish, func(i, j int) bool { return s.Fish[i].ID < s.Fish[j].ID })

	sw := g.cfg.Seaweed
	swQuery := g.seaweedFilter.Query()
	for swQuery.Next() {
		pos, _ := swQuery.Get()
		s.Seaweed = append(s.Seaweed, SeaweedView{X: pos.X, Y: pos.Y, Width: sw.Width, Height: sw.Height})
	}

	return s
}

// Fish returns a view of one fish.
func (g *Game) Fish(id uint32) (FishView, bool) {
	entity, ok := g.fishByID[id]
	if !ok {
		return FishView{}, false
	}
	pos, vel, body, fish, _, br := g.fishMap.Get(entity)
	return g.fishView(pos, vel, body, fish, br), true
}

func (g *Game) fishView(pos *components.Position, vel *components.Velocity, body *components.Body, fish *components.Fish, br *components.Breeding) FishView {
	v := FishView{
		ID:         fish.ID,
		Species:    fish.Species,
		Sex:        fish.Sex,
		X:          pos.X,
		Y:          pos.Y,
		VX:         vel.X,
		VY:         vel.Y,
		Width:      body.Width,
		Height:     body.Height,
		Stage:      fish.Stage,
		FoodEaten:  fish.FoodEaten,
		FoodNeeded: g.cfg.FoodNeeded(fish.Stage),
		Hunger:     fish.Hunger,
		Hungry:     fish.Hungry,
		HasTarget:  fish.HasTarget && g.world.Alive(fish.Target),
		Breeding:   systems.State(br, g.selected == fish.ID),
		Partner:    br.Partner,
		Contact:    br.Contact,
		Gestation:  br.Gestation,
		SellPrice:  systems.SellPrice(fish.Stage, g.cfg),
	}
	if v.HasTarget {
		target, _ := g.seaweedMap.Get(fish.Target)
		v.TargetX, v.TargetY = target.X, target.Y
	}
	return v
}

// FishComponents is a copy of every component on one fish, for debug views.
type FishComponents struct {
	Position components.Position
	Velocity components.Velocity
	Body     components.Body
	Fish     components.Fish
	Motion   components.Motion
	Breeding components.Breeding
}

// Inspect copies the raw components of one fish.
func (g *Game) Inspect(id uint32) (FishComponents, bool) {
	entity, ok := g.fishByID[id]
	if !ok {
		return FishComponents{}, false
	}
	pos, vel, body, fish, motion, br := g.fishMap.Get(entity)
	return FishComponents{
		Position: *pos,
		Velocity: *vel,
		Body:     *body,
		Fish:     *fish,
		Motion:   *motion,
		Breeding: *br,
	}, true
}
