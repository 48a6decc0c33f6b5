package geom

import "math"

// Distance returns the euclidean distance between a and b.
func Distance(a, b Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// WithinRadius reports whether b lies on or inside the circle of radius r around a.
func WithinRadius(a, b Position, r float64) bool {
	return Distance(a, b) <= r
}

// Valid reports whether both dimensions are positive and finite.
func (s Size) Valid() bool {
	return s.W > 0 && s.H > 0 && !math.IsInf(s.W, 0) && !math.IsInf(s.H, 0)
}

// Normalize maps a pixel position to fractions of the canvas size.
func (s Size) Normalize(p Position) Position {
	return Position{X: p.X / s.W, Y: p.Y / s.H}
}

// ScaleUp maps a normalized position back to pixels.
func (s Size) ScaleUp(p Position) Position {
	return Position{X: p.X * s.W, Y: p.Y * s.H}
}

// Bounds returns the bounding box of all line endpoints; ok is false for no lines.
func Bounds(lines []Line) (bb BBox, ok bool) {
	add := func(p Position) {
		if !ok {
			bb = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
			ok = true
			return
		}
		if p.X < bb.MinX {
			bb.MinX = p.X
		}
		if p.Y < bb.MinY {
			bb.MinY = p.Y
		}
		if p.X > bb.MaxX {
			bb.MaxX = p.X
		}
		if p.Y > bb.MaxY {
			bb.MaxY = p.Y
		}
	}
	for _, l := range lines {
		add(l.A)
		add(l.B)
	}
	return bb, ok
}
