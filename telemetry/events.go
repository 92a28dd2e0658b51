// Package telemetry provides aquarium event counting, windowed statistics,
// sales achievements and CSV output.
package telemetry

// EventType identifies telemetry events.
type EventType uint8

const (
	EventFishBought EventType = iota
	EventFishSold
	EventSeaweedBought
	EventMeal
	EventGrowth
	EventPaired
	EventCancelled
	EventBred
	EventHatch
	EventStarved
	EventAchievement

	numEventTypes
)

var eventNames = [numEventTypes]string{
	"fish_bought",
	"fish_sold",
	"seaweed_bought",
	"meal",
	"growth",
	"paired",
	"cancelled",
	"bred",
	"hatch",
	"starved",
	"achievement",
}

// String returns the snake_case name of the event type.
func (t EventType) String() string {
	if t < numEventTypes {
		return eventNames[t]
	}
	return "unknown"
}

// Event represents a single simulation event.
type Event struct {
	Type    EventType
	Tick    int32
	SimTime float64
	FishID  uint32

	// Optional fields depending on event type
	Count   int     // seaweed bought, brood size or new stage
	Coins   float64 // signed coin change caused by the event
	Message string  // human readable text for notifications

	// Where it happened, for Located events
	X, Y float64
}

// Notable reports whether the front-end should surface the event to the
// player. Routine events such as meals are only counted.
func (e Event) Notable() bool {
	switch e.Type {
	case EventAchievement, EventStarved, EventBred, EventHatch, EventGrowth:
		return true
	}
	return false
}

// Located reports whether the event happened at a point in the tank.
func (e Event) Located() bool {
	switch e.Type {
	case EventFishSold, EventMeal, EventGrowth, EventBred, EventHatch, EventStarved:
		return true
	}
	return false
}
