// Package tui is the terminal front end of the designer: it turns bubbletea
// mouse and key messages into designer events and shows the braille canvas.
package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"polymap/internal/canvas"
	"polymap/internal/designer"
	"polymap/internal/geom"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

type Model struct {
	width  int
	height int

	d  *designer.Designer
	cv *canvas.Canvas

	keys        keyMap
	help        help.Model
	helpVisible bool

	// File explorer
	showSidebar bool
	cwd         string
	l           list.Model

	// map path prompt
	pathMode bool
	ti       textinput.Model

	// segment table
	showSegments bool
	tbl          table.Model

	// hover state
	hovering bool
	hoverPos geom.Position
}

// New wraps a designer that already draws onto cv.
func New(d *designer.Designer, cv *canvas.Canvas) Model {
	m := Model{
		d:           d,
		cv:          cv,
		keys:        defaultKeyMap(),
		help:        help.New(),
		helpVisible: true,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	dl := list.NewDefaultDelegate()
	dl.ShowDescription = false
	m.l = list.New(nil, dl, 0, 0)
	m.l.Title = "Maps"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// path prompt setup
	m.ti = textinput.New()
	m.ti.Prompt = "map path: "
	m.ti.Placeholder = "map.json"
	m.ti.CharLimit = 0
	// segment table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath makes path the map path and loads it if it exists.
func NewWithPath(d *designer.Designer, cv *canvas.Canvas, path string) Model {
	m := New(d, cv)
	d.SetMapPath(path)
	if _, err := os.Stat(path); err == nil {
		_ = d.Load(path)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

type layout struct {
	contentW, contentH int
	mapX, mapY         int
	mapW, mapH         int
}

// layout must agree with View.
func (m Model) layout() layout {
	var lo layout
	lo.contentH = max(4, m.height-headerHeight-footerHeight)
	lo.contentW = max(10, m.width)
	lo.mapW = lo.contentW
	if m.showSidebar {
		lo.mapX = sidebarWidth + 1
		lo.mapW -= sidebarWidth + 1
	}
	lo.mapW = max(10, lo.mapW)
	lo.mapY = headerHeight
	lo.mapH = lo.contentH
	return lo
}

// syncCanvas resizes the canvas to the map area and repaints when it changed.
func (m *Model) syncCanvas() {
	lo := m.layout()
	if w, h := m.cv.Cells(); w == lo.mapW && h == lo.mapH {
		return
	}
	m.cv.Resize(lo.mapW, lo.mapH)
	m.d.Redraw()
}
