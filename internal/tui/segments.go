package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"polymap/internal/geom"
)

var segmentColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "x1", Width: 8},
	{Title: "y1", Width: 8},
	{Title: "x2", Width: 8},
	{Title: "y2", Width: 8},
	{Title: "len", Width: 8},
}

// refreshSegments rebuilds the table rows from the committed lines.
func (m *Model) refreshSegments() {
	lines := m.d.Lines()
	rows := make([]table.Row, 0, len(lines))
	for i, l := range lines {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.1f", l.A.X),
			fmt.Sprintf("%.1f", l.A.Y),
			fmt.Sprintf("%.1f", l.B.X),
			fmt.Sprintf("%.1f", l.B.Y),
			fmt.Sprintf("%.1f", geom.Distance(l.A, l.B)),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(segmentColumns)
	m.tbl.SetRows(rows)
}
