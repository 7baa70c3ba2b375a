package dnd

import (
	"image/color"
	"testing"
)

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want color.RGBA
	}{
		{"opaque white", Color{1, 1, 1, 1}, color.RGBA{255, 255, 255, 255}},
		{"half alpha premultiplied", Color{1, 0, 0, 0.5}, color.RGBA{128, 0, 0, 128}},
		{"clamped", Color{2, -1, 0, 1}, color.RGBA{255, 0, 0, 255}},
		{"transparent", Color{}, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.toRGBA(); got != tt.want {
				t.Errorf("toRGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAffineGeoM(t *testing.T) {
	m := [6]float64{2, 0.5, -1, 3, 10, 20}
	g := affineGeoM(m)
	for _, p := range []Vec2{{0, 0}, {1, 0}, {0, 1}, {3, -2}} {
		wx, wy := transformPoint(m, p.X, p.Y)
		gx, gy := g.Apply(p.X, p.Y)
		if !approxEqual(gx, wx, epsilon) || !approxEqual(gy, wy, epsilon) {
			t.Errorf("GeoM.Apply(%v) = (%v, %v), want (%v, %v)", p, gx, gy, wx, wy)
		}
	}
}
