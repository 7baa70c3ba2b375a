package dnd

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

func (c Color) toRGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	a := clamp(c.A)
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: a,
	}
}

// whitePixel is a 1x1 white image scaled to fill node boxes. Created on the
// first Draw.
var whitePixel *ebiten.Image

// Draw paints every visible node with a Color as a filled box, in painter
// order, through the viewport. The overlay, which holds the drag images, is
// drawn last.
//
// Draw is a minimal renderer for demos and tools; applications with their
// own renderer only need the node transforms.
func (s *Scene) Draw(screen *ebiten.Image) {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	updateWorldTransform(s.root, identityTransform, false)
	updateWorldTransform(s.overlay, identityTransform, false)

	view := s.viewport.viewMatrix()
	var op ebiten.DrawImageOptions
	drawNode(screen, s.root, view, 1, &op)
	drawNode(screen, s.overlay, view, 1, &op)
}

func drawNode(target *ebiten.Image, n *Node, view [6]float64, parentAlpha float64, op *ebiten.DrawImageOptions) {
	if !n.Visible {
		return
	}
	alpha := parentAlpha * n.Alpha
	if alpha <= 0 {
		return
	}
	if n.Color.A > 0 && n.Width > 0 && n.Height > 0 {
		op.GeoM.Reset()
		op.GeoM.Scale(n.Width, n.Height)
		op.GeoM.Concat(affineGeoM(multiplyAffine(view, n.worldTransform)))
		op.ColorScale.Reset()
		a := float32(n.Color.A * alpha)
		op.ColorScale.Scale(float32(n.Color.R)*a, float32(n.Color.G)*a, float32(n.Color.B)*a, a)
		target.DrawImage(whitePixel, op)
	}
	for _, child := range sortedChildrenOf(n) {
		drawNode(target, child, view, alpha, op)
	}
}

// affineGeoM converts a [6]float64 affine matrix into an ebiten.GeoM.
func affineGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
