// Package layout computes element placement for sticker pages.
//
// All placement is expressed in the unrotated page coordinate frame
// (origin top-left, millimeters). Rotation is carried as a degree value
// plus a pivot point and applied at draw time as a local transform:
// translate to the pivot, rotate, translate back. Keeping the geometry
// here pure makes the placement math testable without a PDF backend.
package layout

// Point is a position on the canvas in millimeters.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned box on the canvas in millimeters.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether inner lies fully inside r, with a small epsilon
// to absorb floating point noise.
func (r Rect) Contains(inner Rect) bool {
	const eps = 1e-9
	return inner.X >= r.X-eps &&
		inner.Y >= r.Y-eps &&
		inner.X+inner.W <= r.X+r.W+eps &&
		inner.Y+inner.H <= r.Y+r.H+eps
}

// DrawRect returns the rectangle an element must be drawn at, in the
// unrotated frame, so that after rotating by deg around the pivot it covers
// exactly the target bounding box. Only quarter-turn rotations occur on
// stickers, and the pivot is always the center of the bounding box, so the
// draw rect is the box with width and height swapped for odd quarter turns.
func DrawRect(box Rect, deg int) Rect {
	c := box.Center()
	if quarterTurns(deg)%2 == 0 {
		return box
	}
	return Rect{X: c.X - box.H/2, Y: c.Y - box.W/2, W: box.H, H: box.W}
}

// RotatedBounds returns the axis-aligned bounds of r after rotating it by
// deg around the pivot. Used by tests to verify the round-trip property of
// the translate-rotate-translate placement.
func RotatedBounds(r Rect, deg int, pivot Point) Rect {
	corners := [4]Point{
		{r.X, r.Y},
		{r.X + r.W, r.Y},
		{r.X, r.Y + r.H},
		{r.X + r.W, r.Y + r.H},
	}

	minX, minY := rotatePoint(corners[0], deg, pivot).X, rotatePoint(corners[0], deg, pivot).Y
	maxX, maxY := minX, minY
	for _, c := range corners[1:] {
		p := rotatePoint(c, deg, pivot)
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// rotatePoint rotates p around the pivot by a quarter-turn multiple:
// translate so the pivot is the origin, rotate, translate back.
func rotatePoint(p Point, deg int, pivot Point) Point {
	dx, dy := p.X-pivot.X, p.Y-pivot.Y
	switch quarterTurns(deg) {
	case 1:
		dx, dy = -dy, dx
	case 2:
		dx, dy = -dx, -dy
	case 3:
		dx, dy = dy, -dx
	}
	return Point{X: pivot.X + dx, Y: pivot.Y + dy}
}

// quarterTurns normalizes a degree value to 0..3 quarter turns.
func quarterTurns(deg int) int {
	q := (deg / 90) % 4
	if q < 0 {
		q += 4
	}
	return q
}
