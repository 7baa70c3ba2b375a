package dnd

import "math"

// DefaultDelta is the distance in device pixels the pointer must travel from
// the press before a gesture becomes a drag.
const DefaultDelta = 3.0

// Gesture describes one press-move-release sequence on a drag source.
type Gesture struct {
	Source *Node
	Kind   PointerKind

	// StartX and StartY are the world position of the press.
	StartX, StartY float64

	startScreenX, startScreenY float64
	delta                      float64

	// Started is set once the pointer crossed the drag threshold.
	Started bool
}

// Tracker turns raw pointer samples into gestures. It raises OnIntent once
// per gesture when the threshold is crossed, forwards every later move to
// OnMove, calls OnRelease synchronously on release and OnEnd from the run
// loop on the next frame, so a click produced by the release still observes
// the drag in progress.
//
// Once a gesture is classified as touch, mouse samples are ignored until it
// ends, which filters the synthetic mouse events some platforms generate
// from touches.
type Tracker struct {
	Delta float64

	OnIntent  func(g Gesture, ev PointerEvent)
	OnMove    func(g Gesture, ev PointerEvent)
	OnRelease func(g Gesture, ev PointerEvent)
	OnEnd     func(g Gesture, ev PointerEvent)

	loop    *RunLoop
	active  bool
	gesture Gesture

	dragMarker   bool
	selectMarker bool
}

// NewTracker creates a tracker that defers gesture ends on loop.
func NewTracker(loop *RunLoop) *Tracker {
	if loop == nil {
		loop = &RunLoop{}
	}
	return &Tracker{Delta: DefaultDelta, loop: loop}
}

// Active reports whether a press is being tracked.
func (t *Tracker) Active() bool { return t.active }

// Gesture returns the gesture being tracked.
func (t *Tracker) Gesture() Gesture { return t.gesture }

// DragInProgress is the global marker set from drag intent until the
// deferred end of the gesture.
func (t *Tracker) DragInProgress() bool { return t.dragMarker }

// SelectionSuppressed is set from the press until the deferred end of the
// gesture; presentation layers use it to disable text selection.
func (t *Tracker) SelectionSuppressed() bool { return t.selectMarker }

// Down starts tracking a press on source. It returns false, tracking
// nothing, when a gesture is already active or source is not an enabled drag
// source.
func (t *Tracker) Down(ev PointerEvent, source *Node) bool {
	if t.active || source == nil || source.Drag == nil || source.Drag.Disabled {
		return false
	}
	delta := source.Drag.Delta
	if delta <= 0 {
		delta = t.Delta
	}
	t.active = true
	t.gesture = Gesture{
		Source:       source,
		Kind:         ev.Kind,
		StartX:       ev.X,
		StartY:       ev.Y,
		startScreenX: ev.ScreenX,
		startScreenY: ev.ScreenY,
		delta:        delta,
	}
	t.selectMarker = true
	return true
}

// Move handles a pointer sample while pressed.
func (t *Tracker) Move(ev PointerEvent) {
	if !t.active {
		return
	}
	if t.gesture.Kind == PointerTouch && ev.Kind == PointerMouse {
		return
	}
	if ev.Kind == PointerTouch && ev.OffScreen {
		return
	}

	if !t.gesture.Started {
		dx := ev.ScreenX - t.gesture.startScreenX
		dy := ev.ScreenY - t.gesture.startScreenY
		if math.Sqrt(dx*dx+dy*dy) <= t.gesture.delta {
			return
		}
		t.gesture.Started = true
		t.dragMarker = true
		if t.OnIntent != nil {
			t.OnIntent(t.gesture, ev)
		}
	}
	if t.OnMove != nil {
		t.OnMove(t.gesture, ev)
	}
}

// Up handles the release. Tracking stops immediately; the end of the
// gesture is deferred to the run loop.
func (t *Tracker) Up(ev PointerEvent) {
	if !t.active {
		return
	}
	if t.gesture.Kind == PointerTouch && ev.Kind == PointerMouse {
		return
	}
	g := t.gesture
	t.active = false
	t.gesture = Gesture{}
	if t.OnRelease != nil {
		t.OnRelease(g, ev)
	}
	t.loop.Defer(func() {
		if g.Started {
			t.dragMarker = false
			if t.OnEnd != nil {
				t.OnEnd(g, ev)
			}
		}
		if !t.active {
			t.selectMarker = false
		}
	})
}

// Cancel drops the tracked gesture without any callback.
func (t *Tracker) Cancel() {
	t.active = false
	t.gesture = Gesture{}
	t.dragMarker = false
	t.selectMarker = false
}
