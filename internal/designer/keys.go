package designer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const KeySpace = ' '

var ErrUnknownKey = errors.New("designer: unknown key")

// ParseKey turns a key description such as "ctrl+s", "space" or " " into a
// key rune and modifier mask. Upper case letters imply ModShift.
func ParseKey(name string) (rune, Mod, error) {
	if name == " " || name == "+" {
		return rune(name[0]), 0, nil
	}
	parts := strings.Split(name, "+")
	var mods Mod
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(p) {
		case "ctrl":
			mods |= ModCtrl
		case "alt":
			mods |= ModAlt
		case "shift":
			mods |= ModShift
		default:
			return 0, 0, fmt.Errorf("%w: modifier %q in %q", ErrUnknownKey, p, name)
		}
	}
	last := parts[len(parts)-1]
	if strings.EqualFold(last, "space") {
		return KeySpace, mods, nil
	}
	if utf8.RuneCountInString(last) != 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	r, _ := utf8.DecodeRuneInString(last)
	if unicode.IsUpper(r) {
		mods |= ModShift
		r = unicode.ToLower(r)
	}
	return r, mods, nil
}
