package dnd

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPosition(t *testing.T) {
	n := NewNode("img")
	n.transformDirty = false
	g := TweenPosition(n, 100, 50, 1.0, ease.Linear)

	g.Update(0.5)
	if !approxEqual(n.X, 50, 1.0) || !approxEqual(n.Y, 25, 1.0) {
		t.Errorf("halfway = (%v, %v), want ~(50, 25)", n.X, n.Y)
	}
	if !n.transformDirty {
		t.Error("tween should mark the node dirty")
	}
	if g.Done {
		t.Error("tween should not be done halfway")
	}

	g.Update(0.5)
	if !g.Done || !approxEqual(n.X, 100, 0.01) || !approxEqual(n.Y, 50, 0.01) {
		t.Errorf("end = (%v, %v) done=%v", n.X, n.Y, g.Done)
	}
}

func TestTweenAlpha(t *testing.T) {
	n := NewNode("img")
	g := TweenAlpha(n, 0, 1.0, ease.Linear)
	g.Update(1.0)
	if !g.Done || !approxEqual(n.Alpha, 0, 0.01) {
		t.Errorf("Alpha = %v done=%v, want 0 done", n.Alpha, g.Done)
	}
}

func TestTweenStopsOnDisposedNode(t *testing.T) {
	n := NewNode("img")
	g := TweenPosition(n, 100, 100, 1.0, ease.Linear)
	n.Dispose()
	g.Update(0.5)
	if !g.Done || n.X != 0 {
		t.Errorf("tween on disposed node: done=%v X=%v", g.Done, n.X)
	}
}
