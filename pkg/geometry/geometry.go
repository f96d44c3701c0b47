// Package geometry converts rotated bounding boxes into oriented quadrilaterals
// and provides the polygon measurements the dataset assembler needs.
package geometry

import "math"

// RotatedBox is an oriented rectangle given by its center, full width/height
// and rotation angle in radians (positive counter-clockwise, matching the
// HRSC2016 mbox_ang convention).
type RotatedBox struct {
	CX    float64
	CY    float64
	W     float64
	H     float64
	Angle float64
}

// Polygon is a 4-vertex quadrilateral flattened to x1 y1 x2 y2 x3 y3 x4 y4.
// Vertices keep the unrotated corner order (top-left, top-right, bottom-right,
// bottom-left) after rotation; they are never re-sorted, so for large angles
// the "top-left" label is only nominal.
type Polygon [8]float64

// Polygon returns the box corners rotated rigidly about the center.
func (b RotatedBox) Polygon() Polygon {
	dx, dy := b.W/2, b.H/2
	corners := [4][2]float64{
		{-dx, -dy},
		{dx, -dy},
		{dx, dy},
		{-dx, dy},
	}

	ca, sa := math.Cos(b.Angle), math.Sin(b.Angle)

	var poly Polygon
	for i, c := range corners {
		x, y := c[0], c[1]
		poly[2*i] = x*ca - y*sa + b.CX
		poly[2*i+1] = x*sa + y*ca + b.CY
	}
	return poly
}

// Bounds returns the axis-aligned bounding box (x, y, width, height) of the
// polygon.
func (p Polygon) Bounds() (x, y, w, h float64) {
	minX, minY := p[0], p[1]
	maxX, maxY := p[0], p[1]
	for i := 1; i < 4; i++ {
		px, py := p[2*i], p[2*i+1]
		minX = math.Min(minX, px)
		minY = math.Min(minY, py)
		maxX = math.Max(maxX, px)
		maxY = math.Max(maxY, py)
	}
	return minX, minY, maxX - minX, maxY - minY
}

// Area computes the polygon area with the shoelace formula.
func (p Polygon) Area() float64 {
	var s float64
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		s += p[2*i]*p[2*j+1] - p[2*j]*p[2*i+1]
	}
	return math.Abs(s) / 2
}

// Vertex returns the i-th vertex of the polygon, i in [0,3].
func (p Polygon) Vertex(i int) (x, y float64) {
	return p[2*i], p[2*i+1]
}
