package main

import (
	"math"

	"bubblepop/game"
)

// autopilot is a scripted input source: it starts the game, circles the pointer around the
// screen center with the fire button held, and types a name when the game ends.
type autopilot struct {
	machine *game.Machine
	center  game.Vec2
	radius  float64
	name    string

	tick    int
	queue   []game.Event
	started bool
}

func newAutopilot(cfg game.Config, name string) *autopilot {
	return &autopilot{
		center: game.Vec2{X: cfg.Width() / 2, Y: cfg.Height() / 2},
		radius: math.Min(cfg.Width(), cfg.Height()) / 3,
		name:   name,
	}
}

// Events returns the key presses for the current screen
func (a *autopilot) Events() []game.Event {
	a.tick++
	switch a.machine.State() {
	case game.StateStart:
		return []game.Event{{Kind: game.EventKeyDown, Key: game.KeyOther, Char: ' '}}
	case game.StateNameEntry:
		if !a.started {
			a.started = true
			for _, r := range a.name {
				a.queue = append(a.queue, game.Event{Kind: game.EventKeyDown, Key: game.KeyOther, Char: r})
			}
			a.queue = append(a.queue, game.Event{Kind: game.EventKeyDown, Key: game.KeyEnter})
		}
		if len(a.queue) == 0 {
			return nil
		}
		ev := a.queue[0]
		a.queue = a.queue[1:]
		return []game.Event{ev}
	default:
		return nil
	}
}

// Pointer sweeps a circle once every four seconds of ticks
func (a *autopilot) Pointer() game.Vec2 {
	angle := float64(a.tick) * 2 * math.Pi / 240
	return a.center.Add(game.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(a.radius))
}

// ButtonPressed holds fire for the whole run
func (a *autopilot) ButtonPressed() bool {
	return true
}
