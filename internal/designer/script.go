package designer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"polymap/internal/geom"
)

// ScriptSource replays input from a text script, one event per line:
//
//	click X Y [left|right|middle]
//	key NAME        (ctrl+s, ctrl+l, space, ...)
//	quit
//
// A blank line ends a batch. Text after '#' is ignored.
type ScriptSource struct {
	sc   *bufio.Scanner
	line int
}

func NewScriptSource(r io.Reader) *ScriptSource {
	return &ScriptSource{sc: bufio.NewScanner(r)}
}

func (s *ScriptSource) Poll() ([]Event, error) {
	var batch []Event
	for s.sc.Scan() {
		s.line++
		text := s.sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			if len(batch) > 0 {
				return batch, nil
			}
			continue
		}
		e, err := parseEvent(text)
		if err != nil {
			return batch, fmt.Errorf("script line %d: %w", s.line, err)
		}
		batch = append(batch, e)
	}
	if err := s.sc.Err(); err != nil {
		return batch, err
	}
	return batch, io.EOF
}

func parseEvent(text string) (Event, error) {
	f := strings.Fields(text)
	switch strings.ToLower(f[0]) {
	case "quit":
		return Quit(), nil
	case "key":
		if len(f) != 2 {
			return Event{}, fmt.Errorf("key wants one name, got %q", text)
		}
		k, mods, err := ParseKey(f[1])
		if err != nil {
			return Event{}, err
		}
		return KeyDown(k, mods), nil
	case "click":
		if len(f) != 3 && len(f) != 4 {
			return Event{}, fmt.Errorf("click wants X Y [button], got %q", text)
		}
		x, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			return Event{}, fmt.Errorf("click x: %w", err)
		}
		y, err := strconv.ParseFloat(f[2], 64)
		if err != nil {
			return Event{}, fmt.Errorf("click y: %w", err)
		}
		b := ButtonPrimary
		if len(f) == 4 {
			switch strings.ToLower(f[3]) {
			case "left", "primary":
			case "right", "secondary":
				b = ButtonSecondary
			case "middle":
				b = ButtonMiddle
			default:
				return Event{}, fmt.Errorf("unknown button %q", f[3])
			}
		}
		return Press(geom.Position{X: x, Y: y}, b), nil
	}
	return Event{}, fmt.Errorf("unknown event %q", f[0])
}
