// Package input translates SDL2 events into viewer events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseDrag
	EventMouseWheel
)

// Event is a processed input event.
type Event struct {
	Type   EventType
	Name   string // SDL key name, e.g. "W", "F12", "Escape"
	Mod    sdl.Keymod
	Repeat bool    // key auto-repeat while held
	DX, DY float32 // drag delta in pixels
	Wheel  float32 // positive scrolls away from the user
}

// Input collects the events of one frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{events: make([]Event, 0, 16)}
}

// Update polls SDL events. It returns true when the window was closed.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := translate(event); ok {
			i.events = append(i.events, e)
			if e.Type == EventQuit {
				quit = true
			}
		}
	}
	return quit
}

func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			// The window reports its drawable size; the event only marks the change.
			return Event{Type: EventWindowResize}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return Event{}, false
		}
		return Event{
			Type:   EventKeyDown,
			Name:   sdl.GetKeyName(e.Keysym.Sym),
			Mod:    sdl.Keymod(e.Keysym.Mod),
			Repeat: e.Repeat != 0,
		}, true

	case *sdl.MouseMotionEvent:
		if e.State&sdl.ButtonLMask() != 0 {
			return Event{Type: EventMouseDrag, DX: float32(e.XRel), DY: float32(e.YRel)}, true
		}

	case *sdl.MouseWheelEvent:
		return Event{Type: EventMouseWheel, Wheel: float32(e.Y)}, true
	}
	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Shift reports whether either shift key was held.
func (e Event) Shift() bool {
	return e.Mod&sdl.KMOD_SHIFT != 0
}
