package designer

import "polymap/internal/geom"

// Color is a hex RGB string such as "#FF00FF".
type Color string

type Palette struct {
	Background Color
	Line       Color
	Cursor     Color
	Anchor     Color
}

func DefaultPalette() Palette {
	return Palette{
		Background: "#FFFFFF",
		Line:       "#000000",
		Cursor:     "#FF00FF",
		Anchor:     "#00FF00",
	}
}

// Renderer is the drawing side of the windowing collaborator. All
// coordinates are canvas pixels.
type Renderer interface {
	Clear(bg Color)
	DrawLine(a, b geom.Position, c Color)
	DrawCircle(center geom.Position, radius float64, c Color, filled bool)
	Present()
}

// draw repaints the whole scene. Called after every mutation.
func (d *Designer) draw() {
	if d.r == nil {
		return
	}
	p := d.opts.Palette
	d.r.Clear(p.Background)
	for _, l := range d.doc.Lines {
		d.r.DrawLine(l.A, l.B, p.Line)
	}
	if d.chain.active {
		d.r.DrawCircle(d.chain.last, d.opts.CursorRadius, p.Cursor, true)
		d.r.DrawCircle(d.chain.start, d.opts.AutoEndDist, p.Anchor, false)
	}
	d.r.Present()
}
