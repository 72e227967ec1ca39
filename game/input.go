package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventKind identifies a discrete input event
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventQuit
)

// Key is a key the game reacts to. Everything else is KeyOther.
type Key int

const (
	KeyOther Key = iota
	KeyEnter
	KeyBackspace
	KeyR
	KeyQ
	KeyF1
)

// Event is one discrete input event. Text input arrives as KeyOther events carrying Char.
type Event struct {
	Kind EventKind
	Key  Key
	Char rune
}

// InputSource is the input boundary the state machine reads once per tick
type InputSource interface {
	// Events returns the discrete events queued since the last call
	Events() []Event

	// Pointer returns the pointer position in screen coordinates
	Pointer() Vec2

	// ButtonPressed reports whether the fire button is held
	ButtonPressed() bool
}

// EbitenInput provides input from the ebiten keyboard, mouse and window
type EbitenInput struct {
	keys   []ebiten.Key
	chars  []rune
	events []Event
}

// NewEbitenInput creates a new ebiten input source
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{
		keys:   make([]ebiten.Key, 0, 10),
		chars:  make([]rune, 0, 10),
		events: make([]Event, 0, 10),
	}
}

// Events polls the keys pressed and characters typed this tick
func (p *EbitenInput) Events() []Event {
	p.events = p.events[:0]
	if ebiten.IsWindowBeingClosed() {
		p.events = append(p.events, Event{Kind: EventQuit})
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		p.events = append(p.events, Event{Kind: EventKeyDown, Key: mapKey(k)})
	}

	p.chars = ebiten.AppendInputChars(p.chars[:0])
	for _, r := range p.chars {
		p.events = append(p.events, Event{Kind: EventKeyDown, Key: KeyOther, Char: r})
	}
	return p.events
}

// Pointer returns the cursor position
func (p *EbitenInput) Pointer() Vec2 {
	x, y := ebiten.CursorPosition()
	return Vec2{float64(x), float64(y)}
}

// ButtonPressed reports whether the left mouse button is held
func (p *EbitenInput) ButtonPressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func mapKey(k ebiten.Key) Key {
	switch k {
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return KeyEnter
	case ebiten.KeyBackspace:
		return KeyBackspace
	case ebiten.KeyR:
		return KeyR
	case ebiten.KeyQ:
		return KeyQ
	case ebiten.KeyF1:
		return KeyF1
	default:
		return KeyOther
	}
}
