package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"polymap/internal/designer"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.syncCanvas()
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// If list is visible and filtering, send keys to list and ignore global commands
	if m.showSidebar && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.pathMode {
		switch msg.String() {
		case "esc":
			m.pathMode = false
			m.ti.Blur()
			return m, nil
		case "enter":
			m.d.SetMapPath(strings.TrimSpace(m.ti.Value()))
			m.pathMode = false
			m.ti.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.d.Dispatch(designer.Quit())
		return m, tea.Quit
	case key.Matches(msg, m.keys.designerKeys()...):
		if k, mods, err := designer.ParseKey(msg.String()); err == nil {
			m.d.Dispatch(designer.KeyDown(k, mods))
		}
	case key.Matches(msg, m.keys.Cancel):
		m.d.ResetSelection()
	case key.Matches(msg, m.keys.Sidebar):
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
		m.syncCanvas()
		return m, nil
	case key.Matches(msg, m.keys.Open):
		if m.showSidebar {
			m.openSelected()
		}
	case key.Matches(msg, m.keys.Segments):
		m.showSegments = !m.showSegments
	case key.Matches(msg, m.keys.Path):
		m.pathMode = true
		m.ti.SetValue(m.d.MapPath())
		m.ti.CursorEnd()
		return m, m.ti.Focus()
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
	default:
		if m.showSegments {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		if m.showSidebar {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
	}
	if m.showSegments {
		m.refreshSegments()
	}
	return m, nil
}

// updateMouse maps presses inside the map area to designer events and
// tracks the hovered canvas position for the footer.
func (m *Model) updateMouse(msg tea.MouseMsg) {
	lo := m.layout()
	cx, cy := msg.X-lo.mapX, msg.Y-lo.mapY
	if cx < 0 || cx >= lo.mapW || cy < 0 || cy >= lo.mapH {
		m.hovering = false
		return
	}
	pos := m.cv.CellToPosition(cx, cy)
	m.hovering = true
	m.hoverPos = pos
	if msg.Action != tea.MouseActionPress || m.showSegments {
		return
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.d.Dispatch(designer.Press(pos, designer.ButtonPrimary))
	case tea.MouseButtonRight:
		m.d.Dispatch(designer.Press(pos, designer.ButtonSecondary))
	case tea.MouseButtonMiddle:
		m.d.Dispatch(designer.Press(pos, designer.ButtonMiddle))
	}
}
