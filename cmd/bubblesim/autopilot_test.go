package main

import (
	"math/rand"
	"testing"
	"time"

	"bubblepop/game"
)

func TestAutopilotPlaysThrough(t *testing.T) {
	cfg := game.DefaultConfig()
	store := &game.MemoryStore{}
	m := game.NewMachine(cfg, rand.New(rand.NewSource(1)), store)
	pilot := newAutopilot(cfg, "bot")
	pilot.machine = m
	clock := game.NewTickClock(cfg.TPS)

	step := func() {
		clock.Advance()
		m.Update(clock.Now(), pilot)
	}

	step()
	if m.State() != game.StatePlaying {
		t.Fatalf("got state %v, want playing", m.State())
	}

	s := m.Session
	s.Spawner.Delay = time.Hour
	s.Player.Lives = 1
	s.Bubbles = []*game.Bubble{{Body: game.Body{Pos: s.Player.Pos, Radius: 100}}}
	step()
	if m.State() != game.StateNameEntry {
		t.Fatalf("got state %v, want name entry", m.State())
	}

	for i := 0; i < 10 && m.State() == game.StateNameEntry; i++ {
		step()
	}
	if m.State() != game.StateHighScores {
		t.Fatalf("got state %v, want high scores", m.State())
	}
	if len(store.Table) != 1 || store.Table[0].Name != "bot" {
		t.Fatalf("got stored table %v", store.Table)
	}
}

func TestAutopilotHoldsFire(t *testing.T) {
	pilot := newAutopilot(game.DefaultConfig(), "bot")
	if !pilot.ButtonPressed() {
		t.Fatalf("fire not held")
	}
	center := game.Vec2{X: 512, Y: 512}
	for i := 0; i < 5; i++ {
		pilot.tick = i * 60
		if d := game.Distance(pilot.Pointer(), center); d < 340 || d > 342 {
			t.Fatalf("pointer %v is %v from the center", pilot.Pointer(), d)
		}
	}
}
