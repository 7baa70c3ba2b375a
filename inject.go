package dnd

// syntheticPointerEvent represents a single injected input event. Screen
// coordinates are used and converted to world coordinates through the
// viewport, identical to real input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	kind             PointerKind
	blur             bool
}

// InjectPress queues a mouse press at the given screen coordinates. The event
// is consumed on the next frame's Update.
func (s *Scene) InjectPress(x, y float64) {
	s.inject(PointerMouse, x, y, true)
}

// InjectMove queues a mouse move with the button held down. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.inject(PointerMouse, x, y, true)
}

// InjectRelease queues a mouse release at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.inject(PointerMouse, x, y, false)
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full mouse drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The sequence consumes frames frames; the minimum is 2.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	s.injectDrag(PointerMouse, fromX, fromY, toX, toY, frames)
}

// InjectTouchPress queues a touch start at the given screen coordinates.
func (s *Scene) InjectTouchPress(x, y float64) {
	s.inject(PointerTouch, x, y, true)
}

// InjectTouchMove queues a touch move.
func (s *Scene) InjectTouchMove(x, y float64) {
	s.inject(PointerTouch, x, y, true)
}

// InjectTouchRelease queues a touch end.
func (s *Scene) InjectTouchRelease(x, y float64) {
	s.inject(PointerTouch, x, y, false)
}

// InjectTouchDrag is InjectDrag for touch input.
func (s *Scene) InjectTouchDrag(fromX, fromY, toX, toY float64, frames int) {
	s.injectDrag(PointerTouch, fromX, fromY, toX, toY, frames)
}

// InjectBlur queues a loss of window focus, which triggers the watchdog.
func (s *Scene) InjectBlur() {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{blur: true})
}

func (s *Scene) inject(kind PointerKind, x, y float64, pressed bool) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: pressed,
		kind:    kind,
	})
}

func (s *Scene) injectDrag(kind PointerKind, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.inject(kind, fromX, fromY, true)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.inject(kind, x, y, true)
	}
	s.inject(kind, toX, toY, false)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real input
// should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	if evt.blur {
		s.checkFocus(false)
		s.checkFocus(true)
		return true
	}
	s.processPointer(evt.kind, evt.screenX, evt.screenY, evt.pressed)
	return true
}
