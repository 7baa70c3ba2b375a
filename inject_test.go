package dnd

import "testing"

func TestInjectQueueOrder(t *testing.T) {
	s := NewScene()
	s.InjectPress(10, 20)
	s.InjectMove(30, 40)
	s.InjectRelease(50, 60)
	s.InjectBlur()

	if len(s.injectQueue) != 4 {
		t.Fatalf("expected 4 events, got %d", len(s.injectQueue))
	}
	q := s.injectQueue
	if !q[0].pressed || q[0].screenX != 10 || q[0].kind != PointerMouse {
		t.Error("first event should be a mouse press at (10,20)")
	}
	if !q[1].pressed || q[1].screenX != 30 {
		t.Error("second event should be a move at (30,40)")
	}
	if q[2].pressed || q[2].screenX != 50 {
		t.Error("third event should be a release at (50,60)")
	}
	if !q[3].blur {
		t.Error("fourth event should be a blur")
	}
}

func TestInjectDrag(t *testing.T) {
	s := NewScene()
	s.InjectTouchDrag(0, 0, 100, 200, 6)
	if len(s.injectQueue) != 6 {
		t.Fatalf("expected 6 queued events, got %d", len(s.injectQueue))
	}
	mid := s.injectQueue[2]
	if mid.kind != PointerTouch || !mid.pressed || mid.screenX != 40 || mid.screenY != 80 {
		t.Errorf("second move = %+v, want touch at (40,80)", mid)
	}
	if last := s.injectQueue[5]; last.pressed || last.screenX != 100 {
		t.Errorf("last event = %+v, want release at (100,200)", last)
	}
}

func TestInjectDrag_MinFrames(t *testing.T) {
	s := NewScene()
	s.InjectDrag(0, 0, 100, 100, 1)
	if len(s.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events (clamped), got %d", len(s.injectQueue))
	}
}

func TestProcessInjectedInput(t *testing.T) {
	s := NewScene()
	src := NewBox("src", 100, 100)
	src.Drag = &DragSource{Type: "file"}
	s.Root().AddChild(src)

	if s.processInjectedInput() {
		t.Error("should not consume when queue is empty")
	}

	s.InjectPress(50, 50)
	if !s.processInjectedInput() {
		t.Error("expected processInjectedInput to consume an event")
	}
	if len(s.injectQueue) != 0 {
		t.Errorf("queue should be empty, got %d", len(s.injectQueue))
	}
	if g := s.Tracker().Gesture(); !s.Tracker().Active() || g.Source != src || g.StartX != 50 {
		t.Errorf("press should start tracking src, gesture = %+v", g)
	}
}

func TestInjectBlurIdle(t *testing.T) {
	s := NewScene()
	s.InjectBlur()
	frame(s)
	if !s.focused {
		t.Error("blur should leave the scene focused again")
	}
}
