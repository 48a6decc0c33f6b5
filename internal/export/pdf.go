package export

import (
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"

	"polymap/internal/geom"
)

const pdfMargin = 10.0 // mm

// PDF draws lines on a single landscape A4 page, scaled to fit the canvas
// size inside the margins while keeping its aspect ratio.
func PDF(path string, lines []geom.Line, size geom.Size) error {
	if !size.Valid() {
		return fmt.Errorf("export: invalid canvas size %vx%v", size.W, size.H)
	}
	p := gofpdf.New("L", "mm", "A4", "")
	p.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	p.AddPage()
	pw, ph := p.GetPageSize()
	scale := math.Min((pw-2*pdfMargin)/size.W, (ph-2*pdfMargin)/size.H)

	// canvas border
	p.SetDrawColor(200, 200, 200)
	p.SetLineWidth(0.2)
	p.Rect(pdfMargin, pdfMargin, size.W*scale, size.H*scale, "D")

	p.SetDrawColor(0, 0, 0)
	p.SetLineWidth(0.5)
	for _, l := range lines {
		p.Line(
			pdfMargin+l.A.X*scale, pdfMargin+l.A.Y*scale,
			pdfMargin+l.B.X*scale, pdfMargin+l.B.Y*scale,
		)
	}
	return p.OutputFileAndClose(path)
}
