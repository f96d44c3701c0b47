package geometry

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestPolygonZeroAngle(t *testing.T) {
	box := RotatedBox{CX: 10, CY: 10, W: 4, H: 2, Angle: 0}
	poly := box.Polygon()

	expected := Polygon{8, 9, 12, 9, 12, 11, 8, 11}
	for i := range expected {
		if !almostEqual(poly[i], expected[i]) {
			t.Errorf("vertex scalar %d: expected %v, got %v", i, expected[i], poly[i])
		}
	}

	x, y, w, h := poly.Bounds()
	if !almostEqual(x, 8) || !almostEqual(y, 9) || !almostEqual(w, 4) || !almostEqual(h, 2) {
		t.Errorf("expected bounds (8, 9, 4, 2), got (%v, %v, %v, %v)", x, y, w, h)
	}

	if !almostEqual(poly.Area(), 8) {
		t.Errorf("expected area 8, got %v", poly.Area())
	}
}

func TestPolygonBoundsMatchBoxAtZeroAngle(t *testing.T) {
	tests := []struct {
		name string
		box  RotatedBox
	}{
		{"unit square at origin", RotatedBox{CX: 0, CY: 0, W: 1, H: 1}},
		{"wide box", RotatedBox{CX: 100, CY: 50, W: 60, H: 10}},
		{"tall box", RotatedBox{CX: -5, CY: 20, W: 3, H: 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := tt.box.Polygon().Bounds()
			if !almostEqual(x, tt.box.CX-tt.box.W/2) || !almostEqual(y, tt.box.CY-tt.box.H/2) {
				t.Errorf("expected origin (%v, %v), got (%v, %v)",
					tt.box.CX-tt.box.W/2, tt.box.CY-tt.box.H/2, x, y)
			}
			if !almostEqual(w, tt.box.W) || !almostEqual(h, tt.box.H) {
				t.Errorf("expected size (%v, %v), got (%v, %v)", tt.box.W, tt.box.H, w, h)
			}
		})
	}
}

func TestAreaInvariantUnderRotation(t *testing.T) {
	box := RotatedBox{CX: 30, CY: 40, W: 12, H: 5}
	want := box.W * box.H

	angles := []float64{0, 0.1, math.Pi / 6, math.Pi / 4, math.Pi / 2, 1.8, math.Pi, -0.7, 2 * math.Pi}
	for _, ang := range angles {
		box.Angle = ang
		got := box.Polygon().Area()
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("angle %v: expected area %v, got %v", ang, want, got)
		}
	}
}

func TestPolygonRotationKeepsCenter(t *testing.T) {
	box := RotatedBox{CX: 7, CY: -3, W: 8, H: 2, Angle: 1.234}
	poly := box.Polygon()

	var cx, cy float64
	for i := 0; i < 4; i++ {
		x, y := poly.Vertex(i)
		cx += x / 4
		cy += y / 4
	}
	if !almostEqual(cx, box.CX) || !almostEqual(cy, box.CY) {
		t.Errorf("expected center (%v, %v), got (%v, %v)", box.CX, box.CY, cx, cy)
	}
}

func TestPolygonQuarterTurn(t *testing.T) {
	// A quarter turn swaps the roles of width and height in the bounds.
	box := RotatedBox{CX: 0, CY: 0, W: 10, H: 4, Angle: math.Pi / 2}
	x, y, w, h := box.Polygon().Bounds()

	if math.Abs(w-4) > 1e-9 || math.Abs(h-10) > 1e-9 {
		t.Errorf("expected bounds size (4, 10), got (%v, %v)", w, h)
	}
	if math.Abs(x+2) > 1e-9 || math.Abs(y+5) > 1e-9 {
		t.Errorf("expected bounds origin (-2, -5), got (%v, %v)", x, y)
	}
}
