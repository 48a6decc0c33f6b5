// Package export writes committed map lines to formats other tools read.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"polymap/internal/geom"
)

type featureCollection struct {
	Type     string    `json:"type"`
	BBox     []float64 `json:"bbox,omitempty"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string         `json:"type"`
	Geometry   lineString     `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type lineString struct {
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

// GeoJSON writes one LineString feature per line, in normalized coordinates.
func GeoJSON(w io.Writer, lines []geom.Line, size geom.Size) error {
	if !size.Valid() {
		return fmt.Errorf("export: invalid canvas size %vx%v", size.W, size.H)
	}
	fc := featureCollection{Type: "FeatureCollection", Features: make([]feature, 0, len(lines))}
	norm := make([]geom.Line, 0, len(lines))
	for i, l := range lines {
		a, b := size.Normalize(l.A), size.Normalize(l.B)
		norm = append(norm, geom.Line{A: a, B: b})
		fc.Features = append(fc.Features, feature{
			Type: "Feature",
			Geometry: lineString{
				Type:        "LineString",
				Coordinates: [][2]float64{{a.X, a.Y}, {b.X, b.Y}},
			},
			Properties: map[string]any{"index": i},
		})
	}
	if bb, ok := geom.Bounds(norm); ok {
		fc.BBox = []float64{bb.MinX, bb.MinY, bb.MaxX, bb.MaxY}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fc)
}

// GeoJSONFile is GeoJSON into a freshly created file at path.
func GeoJSONFile(path string, lines []geom.Line, size geom.Size) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := GeoJSON(f, lines, size); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
