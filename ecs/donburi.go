package ecs

import (
	"github.com/phanxgames/picsel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PlotEventType is the Donburi event type for plotter events.
var PlotEventType = events.NewEventType[picsel.Event]()

var _ picsel.EventSink = (*donburiSink)(nil)

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on PlotEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) picsel.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event picsel.Event) {
	PlotEventType.Publish(s.world, event)
}
