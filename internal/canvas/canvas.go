// Package canvas rasterizes the editor scene into terminal braille cells.
package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"polymap/internal/designer"
	"polymap/internal/geom"
)

var _ designer.Renderer = (*Canvas)(nil)

// Canvas maps a fixed pixel space onto w x h terminal cells. Drawing goes to
// a back buffer; Present makes it the visible frame.
type Canvas struct {
	size   geom.Size
	w, h   int
	back   *brailleBuf
	front  *brailleBuf
	bg     designer.Color
	frames int
}

// New returns a canvas for the given pixel size, w x h cells large.
func New(size geom.Size, w, h int) *Canvas {
	c := &Canvas{size: size}
	c.Resize(w, h)
	return c
}

// Resize changes the cell grid. Both buffers start empty.
func (c *Canvas) Resize(w, h int) {
	c.w, c.h = max(1, w), max(1, h)
	c.back = newBrailleBuf(c.w, c.h)
	c.front = newBrailleBuf(c.w, c.h)
}

func (c *Canvas) Size() geom.Size   { return c.size }
func (c *Canvas) Cells() (w, h int) { return c.w, c.h }
func (c *Canvas) Frames() int       { return c.frames }

func (c *Canvas) Clear(bg designer.Color) {
	c.back.reset()
	c.bg = bg
}

func (c *Canvas) DrawLine(a, b geom.Position, col designer.Color) {
	x0, y0 := c.micro(a)
	x1, y1 := c.micro(b)
	c.back.drawLineMicro(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Floor(x1)), int(math.Floor(y1)), col)
}

// DrawCircle draws a circle in pixel space. Cells are not square, so it lands
// on the micro grid as an ellipse.
func (c *Canvas) DrawCircle(center geom.Position, radius float64, col designer.Color, filled bool) {
	cx, cy := c.micro(center)
	rx := radius / c.size.W * float64(2*c.w)
	ry := radius / c.size.H * float64(4*c.h)
	c.back.setPixel(int(math.Floor(cx)), int(math.Floor(cy)), col)
	if rx < 0.5 && ry < 0.5 {
		return
	}
	if filled {
		for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
			for x := int(math.Floor(cx - rx)); x <= int(math.Ceil(cx+rx)); x++ {
				dx := (float64(x) + 0.5 - cx) / rx
				dy := (float64(y) + 0.5 - cy) / ry
				if dx*dx+dy*dy <= 1 {
					c.back.setPixel(x, y, col)
				}
			}
		}
		return
	}
	steps := max(16, int(4*math.Pi*math.Max(rx, ry)))
	for i := 0; i < steps; i++ {
		t := 2 * math.Pi * float64(i) / float64(steps)
		c.back.setPixel(int(math.Floor(cx+rx*math.Cos(t))), int(math.Floor(cy+ry*math.Sin(t))), col)
	}
}

func (c *Canvas) Present() {
	c.front, c.back = c.back, c.front
	c.frames++
}

// micro maps pixels to fractional micro grid coordinates.
func (c *Canvas) micro(p geom.Position) (float64, float64) {
	return p.X / c.size.W * float64(2*c.w), p.Y / c.size.H * float64(4*c.h)
}

// CellToPosition returns the pixel position at the center of a cell.
func (c *Canvas) CellToPosition(cx, cy int) geom.Position {
	return geom.Position{
		X: (float64(cx) + 0.5) * c.size.W / float64(c.w),
		Y: (float64(cy) + 0.5) * c.size.H / float64(c.h),
	}
}

// Plain renders the visible frame without colors.
func (c *Canvas) Plain() string {
	rows := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		row := make([]rune, c.w)
		for x := 0; x < c.w; x++ {
			row[x] = c.front.glyph(x, y)
		}
		rows[y] = string(row)
	}
	return strings.Join(rows, "\n")
}

// View renders the visible frame with per-cell foreground colors on the
// background color of the last Clear.
func (c *Canvas) View() string {
	base := lipgloss.NewStyle()
	if c.bg != "" {
		base = base.Background(lipgloss.Color(c.bg))
	}
	rows := make([]string, c.h)
	var sb, run strings.Builder
	for y := 0; y < c.h; y++ {
		sb.Reset()
		run.Reset()
		var cur designer.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			st := base
			if cur != "" {
				st = st.Foreground(lipgloss.Color(cur))
			}
			sb.WriteString(st.Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.w; x++ {
			col := c.front.c[y][x]
			if col != cur {
				flush()
				cur = col
			}
			run.WriteRune(c.front.glyph(x, y))
		}
		flush()
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}
