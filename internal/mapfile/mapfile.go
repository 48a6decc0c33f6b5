// Package mapfile reads and writes polyline maps as resolution independent JSON.
//
// The on-disk shape is
//
//	{"v": 1, "lines": [[[x1, y1], [x2, y2]], ...]}
//
// where every coordinate is a fraction of the canvas width or height.
package mapfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"polymap/internal/geom"
)

// Version is the format version written by Save and required by Load.
const Version = 1

// DefaultPath is used when the caller does not pick a file.
const DefaultPath = "map.json"

var (
	ErrAccessDenied    = errors.New("mapfile: access denied")
	ErrNotFound        = errors.New("mapfile: path not exists or path is not a file")
	ErrVersionMismatch = errors.New("mapfile: incorrect map version")
	ErrMalformed       = errors.New("mapfile: malformed map")
)

type fileDoc struct {
	V     int           `json:"v"`
	Lines [][][]float64 `json:"lines"`
}

// Encode serializes lines relative to the canvas size.
func Encode(lines []geom.Line, size geom.Size) ([]byte, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("mapfile: invalid canvas size %vx%v", size.W, size.H)
	}
	doc := fileDoc{V: Version, Lines: make([][][]float64, 0, len(lines))}
	for _, l := range lines {
		a, b := size.Normalize(l.A), size.Normalize(l.B)
		doc.Lines = append(doc.Lines, [][]float64{{a.X, a.Y}, {b.X, b.Y}})
	}
	return json.Marshal(doc)
}

// Decode parses an encoded map and scales it back to the canvas size.
func Decode(data []byte, size geom.Size) (geom.Document, error) {
	if !size.Valid() {
		return geom.Document{}, fmt.Errorf("mapfile: invalid canvas size %vx%v", size.W, size.H)
	}
	var doc fileDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return geom.Document{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.V != Version {
		return geom.Document{}, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, doc.V, Version)
	}
	out := geom.Document{Version: doc.V, Lines: make([]geom.Line, 0, len(doc.Lines))}
	for i, rec := range doc.Lines {
		if len(rec) != 2 || len(rec[0]) != 2 || len(rec[1]) != 2 {
			return geom.Document{}, fmt.Errorf("%w: line %d is not a pair of [x, y] pairs", ErrMalformed, i)
		}
		out.Lines = append(out.Lines, geom.Line{
			A: size.ScaleUp(geom.Position{X: rec[0][0], Y: rec[0][1]}),
			B: size.ScaleUp(geom.Position{X: rec[1][0], Y: rec[1][1]}),
		})
	}
	return out, nil
}

// Save writes lines to path. A permission failure yields ErrAccessDenied.
func Save(path string, lines []geom.Line, size geom.Size) error {
	data, err := Encode(lines, size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %s", ErrAccessDenied, path)
		}
		return fmt.Errorf("mapfile: save %s: %w", path, err)
	}
	return nil
}

// Load reads the map at path. The path must name an existing regular file.
func Load(path string, size geom.Size) (geom.Document, error) {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		if err != nil && errors.Is(err, fs.ErrPermission) {
			return geom.Document{}, fmt.Errorf("%w: %s", ErrAccessDenied, path)
		}
		return geom.Document{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return geom.Document{}, fmt.Errorf("%w: %s", ErrAccessDenied, path)
		}
		return geom.Document{}, fmt.Errorf("mapfile: load %s: %w", path, err)
	}
	doc, err := Decode(data, size)
	if err != nil {
		return geom.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
