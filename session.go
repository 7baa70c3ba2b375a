package dnd

import (
	"fmt"

	"github.com/google/uuid"
)

// State is the lifecycle state of a Session.
type State uint8

const (
	StateIdle State = iota
	StateActive
)

// String returns "idle" or "active".
func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}

// Session is the drag-and-drop state machine. It holds at most one drag in
// flight: Idle -> Active on Start, Active -> Idle on Stop. While Idle every
// payload field is zero.
//
// A Session is owned by one Scene (or any caller driving it directly) and is
// not safe for concurrent use.
type Session struct {
	bus   *Bus
	state State

	id       string
	typ      string
	data     any
	source   *Node
	top      *DropZone
	position Vec2
	success  bool
	mode     Mode

	// ending is set while Stop delivers drop and dragend.
	ending bool
}

// NewSession creates an idle session that emits on bus. A nil bus gets a
// fresh one.
func NewSession(bus *Bus) *Session {
	if bus == nil {
		bus = NewBus()
	}
	return &Session{bus: bus}
}

// Bus returns the bus the session emits on.
func (s *Session) Bus() *Bus { return s.bus }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// InProgress reports whether a drag is active.
func (s *Session) InProgress() bool { return s.state == StateActive }

// ID returns the current session id, empty while idle.
func (s *Session) ID() string { return s.id }

// Type returns the drag type in flight.
func (s *Session) Type() string { return s.typ }

// Data returns the payload in flight.
func (s *Session) Data() any { return s.data }

// Source returns the node the drag started from.
func (s *Session) Source() *Node { return s.source }

// Top returns the zone currently authoritative for the pointer, or nil.
func (s *Session) Top() *DropZone { return s.top }

// Position returns the last routed pointer position.
func (s *Session) Position() Vec2 { return s.position }

// Mode returns the session mode.
func (s *Session) Mode() Mode { return s.mode }

// Start begins a drag of data (of type typ) from source, with the pointer at
// (x, y). The session becomes Active in copy mode with no top, and
// EventDragStart is emitted.
func (s *Session) Start(source *Node, ev PointerEvent, x, y float64, typ string, data any) error {
	if s.state == StateActive || s.ending {
		return fmt.Errorf("start %q drag: %w", typ, ErrSessionActive)
	}
	s.id = uuid.NewString()
	s.typ = typ
	s.data = data
	s.source = source
	s.position = Vec2{X: x, Y: y}
	s.top = nil
	s.success = false
	s.mode = ModeCopy
	s.state = StateActive
	debugf("session %s: start %q at (%.1f, %.1f)", s.id, typ, x, y)
	s.emit(EventDragStart, ev, nil)
	return nil
}

// SetMode changes the mode of the active session. An empty mode means copy.
func (s *Session) SetMode(m Mode) error {
	if s.state != StateActive {
		return fmt.Errorf("set mode %q: %w", m, ErrSessionIdle)
	}
	if m == "" {
		m = ModeCopy
	}
	s.mode = m
	return nil
}

// RoutePointer applies one pointer sample. candidate is the zone at which
// resolution stopped (see Registry.Resolve), or nil when it reached the root:
//
//   - nil or a mask: top becomes nil
//   - a zone accepting the drag type: top becomes candidate
//   - any other zone: top becomes nil
//
// EventDragTopChanged is emitted when top changes, always before the
// EventDragPositionChanged of the same sample. Touch samples taken off
// screen are discarded.
func (s *Session) RoutePointer(ev PointerEvent, candidate *DropZone) error {
	if s.state != StateActive {
		return fmt.Errorf("route pointer: %w", ErrSessionIdle)
	}
	if ev.OffScreen && ev.Kind == PointerTouch {
		return nil
	}

	prev := s.top
	switch {
	case candidate == nil, candidate.Mask:
		s.top = nil
	case candidate.AcceptsType(s.typ):
		s.top = candidate
	default:
		s.top = nil
	}
	if s.top != prev {
		debugf("session %s: top %s -> %s", s.id, zoneName(prev), zoneName(s.top))
		s.emit(EventDragTopChanged, ev, prev)
		if s.state != StateActive {
			// A listener ended the session.
			return nil
		}
	}

	s.position = Vec2{X: ev.X, Y: ev.Y}
	s.emit(EventDragPositionChanged, ev, nil)
	return nil
}

// Stop ends the drag. The drop succeeds when top is set and allows the
// payload in the session mode. EventDrop is emitted only when top is set,
// then EventDragEnd carries the outcome. The session is already Idle while
// both are delivered: listeners calling back into it get ErrSessionIdle, and
// Start is rejected until EventDragEnd has been delivered.
func (s *Session) Stop(ev PointerEvent) error {
	if s.state != StateActive {
		return fmt.Errorf("stop: %w", ErrSessionIdle)
	}
	s.success = s.top != nil && s.top.DropAllowed(s.typ, s.data, s.mode)
	debugf("session %s: stop on %s, success=%v", s.id, zoneName(s.top), s.success)
	hasTop := s.top != nil
	drop := s.snapshot(EventDrop, ev, nil)
	end := s.snapshot(EventDragEnd, ev, nil)

	// Listeners of the final events see an idle session; one that starts a
	// new drag must wait until dragend has been delivered.
	s.Reset()
	s.ending = true
	defer func() { s.ending = false }()
	if hasTop {
		s.deliver(drop)
	}
	s.deliver(end)
	return nil
}

// Abort force-stops the drag as if released outside every zone. The current
// top, if any, first receives its leave notification so enter/leave stay
// paired. Used by the focus watchdog.
func (s *Session) Abort(ev PointerEvent) error {
	if s.state != StateActive {
		return fmt.Errorf("abort: %w", ErrSessionIdle)
	}
	if prev := s.top; prev != nil {
		s.top = nil
		s.emit(EventDragTopChanged, ev, prev)
		if s.state != StateActive {
			return nil
		}
	}
	return s.Stop(ev)
}

// Reset returns the session to Idle without emitting anything.
func (s *Session) Reset() {
	s.state = StateIdle
	s.id = ""
	s.typ = ""
	s.data = nil
	s.source = nil
	s.top = nil
	s.position = Vec2{}
	s.success = false
	s.mode = ""
}

// CurrentDropMode is the feedback mode for the source: ModeReorder over a
// reordering zone, the session mode over any other zone that allows the
// drop, empty otherwise.
func (s *Session) CurrentDropMode() Mode {
	if s.state != StateActive || s.top == nil || !s.top.DropAllowed(s.typ, s.data, s.mode) {
		return ""
	}
	if s.top.Reorder {
		return ModeReorder
	}
	return s.mode
}

// snapshot captures the session as an Event.
func (s *Session) snapshot(t EventType, ev PointerEvent, previousTop *DropZone) Event {
	return Event{
		Type:        t,
		SessionID:   s.id,
		DragType:    s.typ,
		Data:        s.data,
		Source:      s.source,
		Top:         s.top,
		PreviousTop: previousTop,
		Position:    s.position,
		Mode:        s.mode,
		Success:     s.success,
		Native:      ev,
	}
}

// emit delivers a snapshot of the session as an event of type t.
func (s *Session) emit(t EventType, ev PointerEvent, previousTop *DropZone) {
	s.deliver(s.snapshot(t, ev, previousTop))
}

// deliver publishes e on the bus, then notifies the zones and the source it
// concerns.
func (s *Session) deliver(e Event) {
	s.bus.emit(e)

	switch e.Type {
	case EventDragStart:
		if src := dragSourceOf(e.Source); src != nil {
			safeCall("source OnDragStart", src.OnDragStart, e)
		}
	case EventDragTopChanged:
		if e.PreviousTop != nil {
			safeCall("zone OnDragLeave", e.PreviousTop.OnDragLeave, e)
		}
		if e.Top != nil {
			safeCall("zone OnDragEnter", e.Top.OnDragEnter, e)
		}
	case EventDragPositionChanged:
		if e.Top != nil {
			safeCall("zone OnDragOver", e.Top.OnDragOver, e)
		}
	case EventDrop:
		if e.Top != nil && e.Success {
			safeCall("zone OnDrop", e.Top.OnDrop, e)
		}
	case EventDragEnd:
		if src := dragSourceOf(e.Source); src != nil {
			safeCall("source OnDragEnd", src.OnDragEnd, e)
		}
	}
}

func dragSourceOf(n *Node) *DragSource {
	if n == nil {
		return nil
	}
	return n.Drag
}
