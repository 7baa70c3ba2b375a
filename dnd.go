package dnd

// Vec2 is a 2D point or offset in world coordinates.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Mode is the semantic effect of a completed drop.
type Mode string

const (
	ModeCopy    Mode = "copy"    // the payload is duplicated into the target
	ModeCut     Mode = "cut"     // the payload moves out of the source
	ModeReorder Mode = "reorder" // the payload changes position inside its own list
)

// EventType identifies a drag lifecycle notification.
type EventType uint8

const (
	EventDragStart           EventType = iota // a session became active
	EventDragTopChanged                       // the top drop zone changed
	EventDragPositionChanged                  // the pointer moved during a session
	EventDrop                                 // the pointer was released over a top zone
	EventDragEnd                              // the session finished, successful or not
)

var eventTypeNames = [...]string{
	EventDragStart:           "dragstart",
	EventDragTopChanged:      "dragtopchanged",
	EventDragPositionChanged: "dragpositionchanged",
	EventDrop:                "drop",
	EventDragEnd:             "dragend",
}

// String returns the conventional lowercase event name.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// PointerKind distinguishes mouse input from touch input.
type PointerKind uint8

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

// PointerPhase is the stage of a pointer gesture an event belongs to.
type PointerPhase uint8

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
)

// PointerEvent is a normalized mouse or touch sample. X and Y are world
// coordinates; ScreenX and ScreenY are the raw device coordinates.
type PointerEvent struct {
	Kind    PointerKind
	Phase   PointerPhase
	X, Y    float64
	ScreenX float64
	ScreenY float64

	// OffScreen is set for samples taken while the pointer is outside the
	// viewport. Touch moves flagged this way are discarded.
	OffScreen bool
}
