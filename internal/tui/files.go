package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

// refreshDir lists the map candidates (*.json) in the working directory.
func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.ToLower(filepath.Ext(name)) != ".json" {
			continue
		}
		items = append(items, fileItem{title: name, desc: ".json", path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
}

// openSelected makes the highlighted file the map path and loads it.
func (m *Model) openSelected() {
	it, ok := m.l.SelectedItem().(fileItem)
	if !ok {
		return
	}
	m.d.SetMapPath(it.path)
	_ = m.d.Load(it.path)
}
