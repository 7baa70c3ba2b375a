package dnd

// Event is an immutable snapshot of the session delivered to listeners.
type Event struct {
	Type      EventType
	SessionID string

	// DragType and Data are the payload in flight.
	DragType string
	Data     any

	Source      *Node
	Top         *DropZone
	PreviousTop *DropZone // set for EventDragTopChanged only
	Position    Vec2
	Mode        Mode

	// Success is meaningful for EventDrop and EventDragEnd: whether the
	// release happened over a zone that allows the drop.
	Success bool

	// Native is the pointer sample that caused the event.
	Native PointerEvent
}

// DragSource makes a node draggable. Assign it to Node.Drag.
type DragSource struct {
	// Type and Data are the payload a drag from this source carries.
	Type string
	Data any

	// Mode is applied to the session right after it starts. Empty means
	// copy.
	Mode Mode

	// Disabled sources never start a gesture.
	Disabled bool

	// GoBack animates the drag image back to the source when the drop
	// fails.
	GoBack bool

	// Delta overrides the tracker's drag threshold in pixels. Zero keeps
	// the default.
	Delta float64

	// Handle restricts where a press starts a gesture: only presses whose
	// frontmost hit lies in Handle's subtree count. Nil means anywhere on
	// the source.
	Handle *Node

	// Image is shown under the pointer while no zone is top. Nil uses a
	// plain box the size of the source node.
	Image *Node

	// OnDragStart and OnDragEnd run only for sessions started from this
	// source.
	OnDragStart func(Event)
	OnDragEnd   func(Event)

	// OnClick runs when a press on this source is released over it.
	OnClick func(ClickContext)
}

// ClickContext carries click data for a drag source.
type ClickContext struct {
	Node    *Node
	GlobalX float64
	GlobalY float64
	Kind    PointerKind

	// InDrag reports whether a drag session was still in progress when the
	// click was dispatched. Clicks that end a drag see true and should
	// usually be ignored.
	InDrag bool
}

// EntityStore is the interface for optional ECS integration. When set on a
// Bus, every emitted event is forwarded to it.
type EntityStore interface {
	EmitEvent(event Event)
}
