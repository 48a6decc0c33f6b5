package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Header
	header := titleStyle.Render(" polymap ─ polyline map designer ")
	header = lipgloss.NewStyle().Width(lo.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Height(lo.contentH).Render(m.l.View())
	}

	// Map viewport
	var mapView string
	switch {
	case m.showSegments:
		w := min(lo.mapW, 60)
		m.tbl.SetWidth(w - 4)
		m.tbl.SetHeight(max(1, min(lo.mapH-2, 20)))
		box := boxStyle.Width(w).Render(m.tbl.View())
		mapView = lipgloss.Place(lo.mapW, lo.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.pathMode:
		m.ti.Width = max(10, lo.mapW-lipgloss.Width(m.ti.Prompt)-2)
		mapView = lipgloss.Place(lo.mapW, lo.mapH, lipgloss.Left, lipgloss.Center, boxStyle.Render(m.ti.View()))
	default:
		mapView = lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).Render(m.cv.View())
	}

	// Body row
	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer: status, counts and hover coords, then help
	status := dimStyle.Render(" " + m.d.Status() + " ")
	info := fmt.Sprintf("  lines=%d", len(m.d.Lines()))
	if _, _, active := m.d.Chain(); active {
		info += "  chain"
	}
	if m.hovering {
		info += fmt.Sprintf("  x=%.0f y=%.0f", m.hoverPos.X, m.hoverPos.Y)
	}
	info += "  map=" + m.d.MapPath()
	line1 := lipgloss.NewStyle().Width(lo.contentW).MaxHeight(1).Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, status, dimStyle.Render(info)))
	line2 := ""
	if m.helpVisible {
		line2 = m.help.View(m.keys)
	}
	line2 = lipgloss.NewStyle().Width(lo.contentW).MaxHeight(1).Render(line2)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, line1, line2)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}
