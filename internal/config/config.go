// Package config loads polymap settings from a TOML file.
//
//	map_path = "map.json"
//	auto_end_dist = 10
//	close_min_vertices = 1
//	cursor_radius = 3
//
//	[canvas]
//	width = 1920
//	height = 1080
//
//	[palette]
//	background = "#FFFFFF"
//	line = "#000000"
//	cursor = "#FF00FF"
//	anchor = "#00FF00"
//
// Keys missing from the file keep their defaults.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"polymap/internal/designer"
	"polymap/internal/geom"
	"polymap/internal/mapfile"
)

type Canvas struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type Palette struct {
	Background string `toml:"background"`
	Line       string `toml:"line"`
	Cursor     string `toml:"cursor"`
	Anchor     string `toml:"anchor"`
}

type Config struct {
	MapPath          string  `toml:"map_path"`
	AutoEndDist      float64 `toml:"auto_end_dist"`
	CloseMinVertices int     `toml:"close_min_vertices"`
	CursorRadius     float64 `toml:"cursor_radius"`
	Canvas           Canvas  `toml:"canvas"`
	Palette          Palette `toml:"palette"`
}

var ErrInvalid = errors.New("config: invalid")

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func Default() Config {
	o := designer.DefaultOptions()
	return Config{
		MapPath:          mapfile.DefaultPath,
		AutoEndDist:      o.AutoEndDist,
		CloseMinVertices: o.CloseMinVertices,
		CursorRadius:     o.CursorRadius,
		Canvas:           Canvas{Width: o.Size.W, Height: o.Size.H},
		Palette: Palette{
			Background: string(o.Palette.Background),
			Line:       string(o.Palette.Line),
			Cursor:     string(o.Palette.Cursor),
			Anchor:     string(o.Palette.Anchor),
		},
	}
}

// Load decodes path over the defaults. An empty path returns the defaults.
// Unknown keys are an error so typos do not go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !(geom.Size{W: c.Canvas.Width, H: c.Canvas.Height}).Valid() {
		return fmt.Errorf("%w: canvas %vx%v", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	}
	if c.AutoEndDist < 0 {
		return fmt.Errorf("%w: auto_end_dist %v < 0", ErrInvalid, c.AutoEndDist)
	}
	if c.CursorRadius < 0 {
		return fmt.Errorf("%w: cursor_radius %v < 0", ErrInvalid, c.CursorRadius)
	}
	if c.MapPath == "" {
		return fmt.Errorf("%w: empty map_path", ErrInvalid)
	}
	for name, v := range map[string]string{
		"background": c.Palette.Background,
		"line":       c.Palette.Line,
		"cursor":     c.Palette.Cursor,
		"anchor":     c.Palette.Anchor,
	} {
		if !hexColor.MatchString(v) {
			return fmt.Errorf("%w: palette.%s %q is not #RRGGBB", ErrInvalid, name, v)
		}
	}
	return nil
}

// Options converts the config into designer options.
func (c Config) Options() designer.Options {
	return designer.Options{
		Size:             geom.Size{W: c.Canvas.Width, H: c.Canvas.Height},
		AutoEndDist:      c.AutoEndDist,
		CloseMinVertices: c.CloseMinVertices,
		CursorRadius:     c.CursorRadius,
		MapPath:          c.MapPath,
		Palette: designer.Palette{
			Background: designer.Color(c.Palette.Background),
			Line:       designer.Color(c.Palette.Line),
			Cursor:     designer.Color(c.Palette.Cursor),
			Anchor:     designer.Color(c.Palette.Anchor),
		},
	}
}
