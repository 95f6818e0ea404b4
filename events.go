package picsel

// EventType identifies a kind of plotter event.
type EventType uint8

const (
	EventPick   EventType = iota // a double click hit an item
	EventApply                   // a transition to another strategy started
	EventReload                  // a reload pass completed
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventPick:
		return "pick"
	case EventApply:
		return "apply"
	case EventReload:
		return "reload"
	default:
		return "unknown"
	}
}

// EventSink is the interface for optional event consumers, such as the ECS
// bridge in picsel/ecs.
type EventSink interface {
	EmitEvent(event Event)
}

// Event describes something the plotter did.
type Event struct {
	Type EventType
	// Item and Screen are set for EventPick.
	Item   ItemRef
	Screen Vec2
	// Strategy is set for EventApply.
	Strategy string
	// Items is the number of processed items for EventReload.
	Items int
}
