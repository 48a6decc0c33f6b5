package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Save      key.Binding
	Load      key.Binding
	Clear     key.Binding
	ExportPDF key.Binding
	ExportGeo key.Binding
	Cancel    key.Binding
	Sidebar   key.Binding
	Open      key.Binding
	Segments  key.Binding
	Path      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^s", "save")),
		Load:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("^l", "load")),
		Clear:     key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "clear")),
		ExportPDF: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("^e", "pdf")),
		ExportGeo: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("^g", "geojson")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc/right click", "cancel chain")),
		Sidebar:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "files")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Segments:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "segments")),
		Path:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "map path")),
		Help:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// designerKeys are forwarded to the designer as key events.
func (k keyMap) designerKeys() []key.Binding {
	return []key.Binding{k.Save, k.Load, k.Clear, k.ExportPDF, k.ExportGeo}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Load, k.Clear, k.Cancel, k.Sidebar, k.Segments, k.Path, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Save, k.Load, k.Clear, k.Cancel},
		{k.ExportPDF, k.ExportGeo, k.Path},
		{k.Sidebar, k.Open, k.Segments, k.Help, k.Quit},
	}
}
