// Package designer holds the polyline editing state machine.
//
// A Designer is either idle or building a chain. The first click anchors a
// chain, later clicks commit a segment from the previous vertex, and a click
// within AutoEndDist of the anchor commits a closing segment and goes idle.
package designer

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"polymap/internal/export"
	"polymap/internal/geom"
	"polymap/internal/mapfile"
)

var ErrAlreadyRunning = errors.New("designer: already running")

type Options struct {
	Size        geom.Size
	AutoEndDist float64
	// CloseMinVertices is how many vertices a chain needs before a click
	// near its anchor closes it. Shorter chains are dropped instead.
	// Values <= 1 close any chain, even one made of the anchor alone.
	CloseMinVertices int
	CursorRadius     float64
	MapPath          string
	Palette          Palette
}

func DefaultOptions() Options {
	return Options{
		Size:             geom.Size{W: 1920, H: 1080},
		AutoEndDist:      10,
		CloseMinVertices: 1,
		CursorRadius:     3,
		MapPath:          mapfile.DefaultPath,
		Palette:          DefaultPalette(),
	}
}

type chain struct {
	active   bool
	last     geom.Position
	start    geom.Position
	vertices int
}

type Designer struct {
	opts    Options
	r       Renderer
	doc     geom.Document
	chain   chain
	running bool
	status  string
}

// New returns an idle designer with an empty document and paints it once.
// r may be nil for a designer that never draws.
func New(r Renderer, opts Options) *Designer {
	if opts.MapPath == "" {
		opts.MapPath = mapfile.DefaultPath
	}
	d := &Designer{
		opts:   opts,
		r:      r,
		doc:    geom.Document{Version: mapfile.Version},
		status: "ready",
	}
	d.draw()
	return d
}

// HandleClick applies a pointer press at pos.
func (d *Designer) HandleClick(pos geom.Position, b Button) {
	switch b {
	case ButtonPrimary:
	case ButtonSecondary:
		d.ResetSelection()
		return
	default:
		return
	}

	switch {
	case !d.chain.active:
		d.chain = chain{active: true, last: pos, start: pos, vertices: 1}
	case geom.WithinRadius(pos, d.chain.start, d.opts.AutoEndDist):
		if d.chain.vertices >= d.opts.CloseMinVertices {
			d.doc.Lines = append(d.doc.Lines, geom.Line{A: d.chain.last, B: d.chain.start})
		}
		d.chain = chain{}
	default:
		d.doc.Lines = append(d.doc.Lines, geom.Line{A: d.chain.last, B: pos})
		d.chain.last = pos
		d.chain.vertices++
	}
	d.draw()
}

// ResetSelection drops the chain in progress. Committed lines stay.
func (d *Designer) ResetSelection() {
	d.chain = chain{}
	d.draw()
}

// ClearAll removes every committed line. The chain in progress is kept.
func (d *Designer) ClearAll() {
	d.doc.Lines = nil
	d.draw()
}

// Start runs the event loop until Stop is called or src is exhausted.
func (d *Designer) Start(src EventSource) error {
	if d.running {
		return ErrAlreadyRunning
	}
	d.running = true
	defer func() { d.running = false }()

	for d.running {
		events, err := src.Poll()
		for _, e := range events {
			d.Dispatch(e)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Stop makes Start return after the current batch.
func (d *Designer) Stop() {
	d.running = false
}

func (d *Designer) Running() bool { return d.running }

// Dispatch routes one event to the matching operation.
func (d *Designer) Dispatch(e Event) {
	switch e.Kind {
	case EventQuit:
		d.Stop()
	case EventPress:
		switch e.Button {
		case ButtonPrimary:
			d.HandleClick(e.Pos, e.Button)
		case ButtonSecondary:
			d.ResetSelection()
		}
	case EventKey:
		ctrl := e.Mods&ModCtrl != 0
		switch {
		case ctrl && e.Key == 's':
			_ = d.Save(d.opts.MapPath)
		case ctrl && e.Key == 'l':
			_ = d.Load(d.opts.MapPath)
		case ctrl && e.Key == 'e':
			_ = d.Export(swapExt(d.opts.MapPath, ".pdf"))
		case ctrl && e.Key == 'g':
			_ = d.Export(swapExt(d.opts.MapPath, ".geojson"))
		case e.Key == KeySpace && e.Mods == 0:
			d.ClearAll()
		}
	}
}

// Save writes the committed lines to path. Failures are reported and returned;
// the document is unchanged either way.
func (d *Designer) Save(path string) error {
	err := mapfile.Save(path, d.doc.Lines, d.opts.Size)
	switch {
	case err == nil:
		d.report("saved: %s", path)
	case errors.Is(err, mapfile.ErrAccessDenied):
		d.report("no access, not saved: %s", path)
	default:
		d.report("save error: %v", err)
	}
	return err
}

// Load replaces the document with the map at path and drops any chain in
// progress. On failure the current document is kept.
func (d *Designer) Load(path string) error {
	doc, err := mapfile.Load(path, d.opts.Size)
	if err != nil {
		switch {
		case errors.Is(err, mapfile.ErrNotFound):
			d.report("path not exists or path is not a file: %s", path)
		case errors.Is(err, mapfile.ErrVersionMismatch):
			d.report("incorrect map version: %s", path)
		case errors.Is(err, mapfile.ErrAccessDenied):
			d.report("no access, not loaded: %s", path)
		default:
			d.report("load error: %v", err)
		}
		return err
	}
	d.doc = doc
	d.report("loaded: %s  lines=%d", filepath.Base(path), len(doc.Lines))
	d.ResetSelection()
	return nil
}

// Export writes the committed lines as PDF or GeoJSON, picked by extension.
func (d *Designer) Export(path string) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		err = export.PDF(path, d.doc.Lines, d.opts.Size)
	case ".geojson":
		err = export.GeoJSONFile(path, d.doc.Lines, d.opts.Size)
	default:
		err = fmt.Errorf("designer: no exporter for %q", path)
	}
	if err != nil {
		d.report("export error: %v", err)
		return err
	}
	d.report("exported: %s", path)
	return nil
}

// Redraw repaints without changing state, e.g. after the surface was resized.
func (d *Designer) Redraw() { d.draw() }

// Lines returns a copy of the committed lines in insertion order.
func (d *Designer) Lines() []geom.Line {
	return append([]geom.Line(nil), d.doc.Lines...)
}

// Chain returns the last placed vertex and the anchor of the chain in progress.
func (d *Designer) Chain() (last, start geom.Position, active bool) {
	return d.chain.last, d.chain.start, d.chain.active
}

func (d *Designer) Status() string   { return d.status }
func (d *Designer) Options() Options { return d.opts }
func (d *Designer) MapPath() string  { return d.opts.MapPath }

func (d *Designer) SetMapPath(p string) {
	if p == "" {
		p = mapfile.DefaultPath
	}
	d.opts.MapPath = p
	d.report("map path: %s", p)
}

func (d *Designer) report(format string, args ...any) {
	d.status = fmt.Sprintf(format, args...)
	log.Print(d.status)
}

func swapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
