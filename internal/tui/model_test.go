package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"polymap/internal/canvas"
	"polymap/internal/designer"
	"polymap/internal/geom"
	"polymap/internal/mapfile"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	opts := designer.DefaultOptions()
	opts.MapPath = filepath.Join(t.TempDir(), mapfile.DefaultPath)
	cv := canvas.New(opts.Size, 10, 10)
	m := New(designer.New(cv, opts), cv)
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	nm, _ := m.Update(msg)
	return nm.(Model)
}

func press(x, y int, b tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: b}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestResizeFollowsWindow(t *testing.T) {
	m := newTestModel(t)
	if w, h := m.cv.Cells(); w != 100 || h != 30-headerHeight-footerHeight {
		t.Errorf("canvas cells = %dx%d", w, h)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if w, _ := m.cv.Cells(); w != 100-sidebarWidth-1 {
		t.Errorf("canvas width with sidebar = %d", w)
	}
}

func TestClicksBuildAndCloseChain(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, press(10, 6, tea.MouseButtonLeft))
	m = update(t, m, press(60, 6, tea.MouseButtonLeft))
	m = update(t, m, press(60, 20, tea.MouseButtonLeft))
	if n := len(m.d.Lines()); n != 2 {
		t.Fatalf("got %d lines, want 2", n)
	}
	// same cell as the anchor maps to the same pixel
	m = update(t, m, press(10, 6, tea.MouseButtonLeft))
	lines := m.d.Lines()
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	anchor := m.cv.CellToPosition(10, 6-headerHeight)
	if lines[2].B != anchor {
		t.Errorf("closing line ends at %v, want %v", lines[2].B, anchor)
	}
	if _, _, active := m.d.Chain(); active {
		t.Error("chain still active")
	}
}

func TestRightClickCancels(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, press(10, 6, tea.MouseButtonLeft))
	m = update(t, m, press(30, 6, tea.MouseButtonLeft))
	m = update(t, m, press(50, 9, tea.MouseButtonRight))
	if _, _, active := m.d.Chain(); active {
		t.Error("right click left the chain active")
	}
	if n := len(m.d.Lines()); n != 1 {
		t.Errorf("got %d lines, want 1", n)
	}
	// outside the map area: header row
	m = update(t, m, press(10, 0, tea.MouseButtonLeft))
	if _, _, active := m.d.Chain(); active {
		t.Error("click on the header started a chain")
	}
}

func TestHover(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.MouseMsg{X: 50, Y: 10, Action: tea.MouseActionMotion})
	if !m.hovering || m.hoverPos != m.cv.CellToPosition(50, 10-headerHeight) {
		t.Errorf("hover = %v %v", m.hovering, m.hoverPos)
	}
	if !strings.Contains(m.View(), "x=") {
		t.Error("footer lacks hover coordinates")
	}
	if len(m.d.Lines()) != 0 {
		t.Error("motion committed a line")
	}
}

func TestKeysReachDesigner(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, press(10, 6, tea.MouseButtonLeft))
	m = update(t, m, press(60, 6, tea.MouseButtonLeft))
	m = update(t, m, press(60, 20, tea.MouseButtonLeft))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if _, err := os.Stat(m.d.MapPath()); err != nil {
		t.Fatalf("ctrl+s did not save: %v", err)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if n := len(m.d.Lines()); n != 0 {
		t.Fatalf("space left %d lines", n)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if n := len(m.d.Lines()); n != 2 {
		t.Errorf("ctrl+l loaded %d lines, want 2", n)
	}
	if _, _, active := m.d.Chain(); active {
		t.Error("chain survived load")
	}
	if !strings.HasPrefix(m.d.Status(), "loaded") {
		t.Errorf("status = %q", m.d.Status())
	}
}

func TestEscCancels(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, press(10, 6, tea.MouseButtonLeft))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if _, _, active := m.d.Chain(); active {
		t.Error("esc left the chain active")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestPathPrompt(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, runes("p"))
	if !m.pathMode {
		t.Fatal("p did not open the prompt")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
	m = update(t, m, runes("level2.json"))
	// keys go to the prompt, not the designer
	if m.showSegments || !m.pathMode {
		t.Fatal("prompt lost focus")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.pathMode {
		t.Error("enter did not close the prompt")
	}
	if got := m.d.MapPath(); got != "level2.json" {
		t.Errorf("map path = %q", got)
	}
}

func TestSegmentsTable(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, press(10, 6, tea.MouseButtonLeft))
	m = update(t, m, press(60, 6, tea.MouseButtonLeft))
	m = update(t, m, press(60, 20, tea.MouseButtonLeft))
	m = update(t, m, runes("a"))
	if !m.showSegments {
		t.Fatal("a did not show segments")
	}
	if n := len(m.tbl.Rows()); n != 2 {
		t.Errorf("table rows = %d, want 2", n)
	}
	m = update(t, m, press(30, 15, tea.MouseButtonLeft))
	if _, _, active := m.d.Chain(); !active {
		t.Fatal("chain ended while the table was shown")
	}
	if n := len(m.d.Lines()); n != 2 {
		t.Errorf("click through the table committed a line")
	}
}

func TestSidebarOpensMap(t *testing.T) {
	dir := t.TempDir()
	lines := []geom.Line{{A: geom.Position{X: 10, Y: 10}, B: geom.Position{X: 500, Y: 500}}}
	if err := mapfile.Save(filepath.Join(dir, "a.json"), lines, geom.Size{W: 1920, H: 1080}); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.d.Lines(); len(got) != 1 {
		t.Fatalf("loaded %d lines, want 1", len(got))
	}
	if filepath.Base(m.d.MapPath()) != "a.json" {
		t.Errorf("map path = %q", m.d.MapPath())
	}
}

func TestViewSmoke(t *testing.T) {
	m := newTestModel(t)
	v := m.View()
	if !strings.Contains(v, "polymap") {
		t.Error("header missing")
	}
	m = update(t, m, runes("h"))
	if m.helpVisible {
		t.Error("h did not hide help")
	}
	if (Model{}).View() != "" {
		t.Error("zero-size view is not empty")
	}
}
