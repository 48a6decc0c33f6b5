package geom

// Position is a point in canvas pixel space, or in normalized [0,1] space
// once it went through Size.Normalize.
type Position struct {
	X float64
	Y float64
}

// Line is a committed segment between two positions.
type Line struct {
	A Position
	B Position
}

// Size is the canvas extent in pixels.
type Size struct {
	W float64
	H float64
}

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Document is the unit of persistence: the ordered lines plus the format version.
type Document struct {
	Version int
	Lines   []Line
}
