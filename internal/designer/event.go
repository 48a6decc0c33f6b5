package designer

import "polymap/internal/geom"

type EventKind int

const (
	EventQuit EventKind = iota + 1
	EventPress
	EventKey
)

type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// Mod is a bitmask of active key modifiers.
type Mod uint8

const (
	ModCtrl Mod = 1 << iota
	ModAlt
	ModShift
)

// Event is one input notification from the windowing side.
type Event struct {
	Kind   EventKind
	Pos    geom.Position // EventPress, canvas pixels
	Button Button        // EventPress
	Key    rune          // EventKey, lower case
	Mods   Mod           // EventKey
}

// EventSource yields pending input in batches. Poll returns io.EOF once the
// source is exhausted; events returned alongside an error are still dispatched.
type EventSource interface {
	Poll() ([]Event, error)
}

func Quit() Event { return Event{Kind: EventQuit} }

func Press(pos geom.Position, b Button) Event {
	return Event{Kind: EventPress, Pos: pos, Button: b}
}

func KeyDown(k rune, mods Mod) Event {
	return Event{Kind: EventKey, Key: k, Mods: mods}
}
