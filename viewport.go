package dnd

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for both axes.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport maps screen space to the world space of the node tree: a
// scrollable, zoomable window onto a list or tree.
type Viewport struct {
	// Screen is the screen-space rectangle the tree is shown in. A zero
	// rect means the whole screen, with no off-screen detection.
	Screen Rect
	// ScrollX and ScrollY are the world coordinates shown at Screen's
	// top-left corner.
	ScrollX, ScrollY float64
	// Zoom is the scale factor (1.0 = no zoom).
	Zoom float64

	// BoundsEnabled clamps scrolling so the visible area stays within
	// Bounds.
	BoundsEnabled bool
	Bounds        Rect

	scroll *scrollAnim
}

// NewViewport creates a viewport showing the world at the given screen rect.
func NewViewport(screen Rect) *Viewport {
	return &Viewport{Screen: screen, Zoom: 1}
}

func (v *Viewport) zoom() float64 {
	if v.Zoom <= 0 {
		return 1
	}
	return v.Zoom
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (v *Viewport) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	z := v.zoom()
	return (sx-v.Screen.X)/z + v.ScrollX, (sy-v.Screen.Y)/z + v.ScrollY
}

// WorldToScreen converts world coordinates to screen coordinates.
func (v *Viewport) WorldToScreen(wx, wy float64) (sx, sy float64) {
	z := v.zoom()
	return (wx-v.ScrollX)*z + v.Screen.X, (wy-v.ScrollY)*z + v.Screen.Y
}

// viewMatrix returns the world-to-screen affine matrix.
func (v *Viewport) viewMatrix() [6]float64 {
	z := v.zoom()
	return [6]float64{z, 0, 0, z, v.Screen.X - v.ScrollX*z, v.Screen.Y - v.ScrollY*z}
}

// OnScreen reports whether the screen point lies inside the viewport. Always
// true for a zero Screen rect.
func (v *Viewport) OnScreen(sx, sy float64) bool {
	if v.Screen.Width == 0 && v.Screen.Height == 0 {
		return true
	}
	return v.Screen.Contains(sx, sy)
}

// VisibleBounds returns the world-space rectangle currently shown.
func (v *Viewport) VisibleBounds() Rect {
	z := v.zoom()
	return Rect{X: v.ScrollX, Y: v.ScrollY, Width: v.Screen.Width / z, Height: v.Screen.Height / z}
}

// ScrollTo animates the scroll position to (x, y) over duration seconds.
func (v *Viewport) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	v.scroll = &scrollAnim{
		tweenX: gween.New(float32(v.ScrollX), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.ScrollY), float32(y), duration, easeFn),
	}
}

// ScrollIntoView scrolls so node's hit box is fully visible, animating over
// duration seconds. No-op when it already is.
func (v *Viewport) ScrollIntoView(n *Node, duration float32, easeFn ease.TweenFunc) {
	wx, wy := n.LocalToWorld(0, 0)
	vis := v.VisibleBounds()
	x, y := v.ScrollX, v.ScrollY
	switch {
	case wy < vis.Y:
		y = wy
	case wy+n.Height > vis.Y+vis.Height:
		y = wy + n.Height - vis.Height
	}
	switch {
	case wx < vis.X:
		x = wx
	case wx+n.Width > vis.X+vis.Width:
		x = wx + n.Width - vis.Width
	}
	if x != v.ScrollX || y != v.ScrollY {
		v.ScrollTo(x, y, duration, easeFn)
	}
}

// Scrolling reports whether a ScrollTo animation is running.
func (v *Viewport) Scrolling() bool {
	return v.scroll != nil
}

// update advances the scroll animation and clamps to bounds.
func (v *Viewport) update(dt float32) {
	if v.scroll != nil {
		if !v.scroll.doneX {
			val, done := v.scroll.tweenX.Update(dt)
			v.ScrollX = float64(val)
			v.scroll.doneX = done
		}
		if !v.scroll.doneY {
			val, done := v.scroll.tweenY.Update(dt)
			v.ScrollY = float64(val)
			v.scroll.doneY = done
		}
		if v.scroll.doneX && v.scroll.doneY {
			v.scroll = nil
		}
	}
	if v.BoundsEnabled {
		v.clampToBounds()
	}
}

// clampToBounds restricts scrolling so the visible area stays within Bounds.
// When Bounds is smaller than the visible area the scroll pins to its
// top-left.
func (v *Viewport) clampToBounds() {
	vis := v.VisibleBounds()
	maxX := v.Bounds.X + v.Bounds.Width - vis.Width
	maxY := v.Bounds.Y + v.Bounds.Height - vis.Height
	v.ScrollX = math.Max(v.Bounds.X, math.Min(v.ScrollX, maxX))
	v.ScrollY = math.Max(v.Bounds.Y, math.Min(v.ScrollY, maxY))
}
