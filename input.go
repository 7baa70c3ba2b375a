package dnd

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// processInput is called from Scene.Update to poll the window focus, the
// left mouse button and the first active touch.
func (s *Scene) processInput() {
	s.checkFocus(ebiten.IsFocused())
	s.processTouch()
	s.processMouse()
}

// processMouse handles the left mouse button.
func (s *Scene) processMouse() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(PointerMouse, float64(mx), float64(my), pressed)
}

// processTouch follows a single touch: the first one to appear while no
// touch is tracked. Other touches are ignored until it lifts.
func (s *Scene) processTouch() {
	ids := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = ids

	if s.touchDown {
		if !slices.Contains(ids, s.touchID) {
			s.processPointer(PointerTouch, s.lastTouch.X, s.lastTouch.Y, false)
			return
		}
		tx, ty := ebiten.TouchPosition(s.touchID)
		s.processPointer(PointerTouch, float64(tx), float64(ty), true)
		return
	}
	if len(ids) == 0 {
		return
	}
	s.touchID = ids[0]
	tx, ty := ebiten.TouchPosition(s.touchID)
	s.processPointer(PointerTouch, float64(tx), float64(ty), true)
}

// processPointer turns one polled sample at screen coordinates (sx, sy) into
// a PointerEvent and feeds it to the pointer state machine.
func (s *Scene) processPointer(kind PointerKind, sx, sy float64, pressed bool) {
	down, last := &s.mouseDown, &s.lastMouse
	if kind == PointerTouch {
		down, last = &s.touchDown, &s.lastTouch
	}

	wx, wy := s.viewport.ScreenToWorld(sx, sy)
	ev := PointerEvent{
		Kind:      kind,
		X:         wx,
		Y:         wy,
		ScreenX:   sx,
		ScreenY:   sy,
		OffScreen: !s.viewport.OnScreen(sx, sy),
	}

	switch {
	case pressed && !*down:
		*down = true
		ev.Phase = PointerDown
	case pressed && *down:
		if sx == last.X && sy == last.Y {
			return
		}
		ev.Phase = PointerMove
	case !pressed && *down:
		*down = false
		ev.Phase = PointerUp
	default:
		// Hover: nothing tracks it.
		*last = Vec2{X: sx, Y: sy}
		return
	}
	*last = Vec2{X: sx, Y: sy}
	s.handlePointer(ev)
}

// handlePointer dispatches a normalized event to the tracker.
func (s *Scene) handlePointer(ev PointerEvent) {
	s.lastEvent = ev
	switch ev.Phase {
	case PointerDown:
		if source := s.pressedSource(ev.X, ev.Y); source != nil {
			s.tracker.Down(ev, source)
		}
	case PointerMove:
		s.tracker.Move(ev)
	case PointerUp:
		s.tracker.Up(ev)
	}
}

// pressedSource returns the innermost drag source containing the frontmost
// node at (x, y), or nil. A source with a Handle only counts when the hit
// lies in the handle's subtree.
func (s *Scene) pressedSource(x, y float64) *Node {
	hit := s.registry.HitTest(x, y)
	for n := hit; n != nil; n = n.Parent {
		if n.Drag == nil {
			continue
		}
		if h := n.Drag.Handle; h != nil && !isAncestor(h, hit) {
			return nil
		}
		return n
	}
	return nil
}
