package game

import (
	"log"
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// State is a screen of the game
type State int

const (
	StateStart State = iota
	StatePlaying
	StateNameEntry
	StateHighScores
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateNameEntry:
		return "name entry"
	case StateHighScores:
		return "high scores"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Machine drives the screens of the game. Every screen, including the modal ones, is
// advanced by the same per-tick Update call; only the playing screen advances the simulation.
type Machine struct {
	cfg   Config
	rng   *rand.Rand
	fx    *rand.Rand // cosmetic randomness, kept apart so drawing never changes the simulation
	store Store

	state State

	// Session is the current play-through, nil until the first start
	Session *Session

	// HighScores is the ranked table, loaded once and saved after every change
	HighScores []HighScore

	// Name is the text typed so far on the name entry screen
	Name []rune

	// FinalScore is the score of the session that just ended
	FinalScore int

	Debug DebugState

	// TPS is the measured tick rate shown by the debug overlay, set by the host loop
	TPS float64

	now     time.Duration
	pointer Vec2
}

// NewMachine creates a machine on the start screen and loads the high score table.
// A table that cannot be read is replaced by an empty one.
func NewMachine(cfg Config, rng *rand.Rand, store Store) *Machine {
	m := &Machine{
		cfg:   cfg,
		rng:   rng,
		fx:    rand.New(rand.NewSource(rng.Int63())),
		store: store,
		state: StateStart,
	}
	table, err := store.Load()
	if err != nil {
		log.Printf("Warning: could not load high scores: %v", err)
		table = nil
	}
	m.HighScores = table
	return m
}

// State returns the current screen
func (m *Machine) State() State {
	return m.state
}

// Now returns the clock sample of the last update
func (m *Machine) Now() time.Duration {
	return m.now
}

// Update advances the current screen by one tick. now is the tick's clock sample.
func (m *Machine) Update(now time.Duration, in InputSource) {
	m.now = now
	if m.state == StateQuit {
		return
	}

	m.pointer = in.Pointer()
	events := in.Events()
	for _, ev := range events {
		if ev.Kind == EventQuit {
			m.setState(StateQuit)
			return
		}
		if ev.Kind == EventKeyDown && ev.Key == KeyF1 {
			m.Debug.Toggle()
		}
	}

	switch m.state {
	case StateStart:
		if anyKeyDown(events) {
			m.startSession(now)
		}
	case StatePlaying:
		m.Session.Tick(now, Controls{Pointer: m.pointer, Fire: in.ButtonPressed()})
		if m.Session.Over {
			m.FinalScore = m.Session.Score
			m.Name = m.Name[:0]
			m.setState(StateNameEntry)
		}
	case StateNameEntry:
		m.updateNameEntry(events)
	case StateHighScores:
		for _, ev := range events {
			if ev.Kind != EventKeyDown {
				continue
			}
			switch ev.Key {
			case KeyR:
				m.startSession(now)
				return
			case KeyQ:
				m.setState(StateQuit)
				return
			}
		}
	}
}

// startSession throws the old session away and starts playing a new one.
// Games after the first start with the shorter restart spawn delay.
func (m *Machine) startSession(now time.Duration) {
	restart := m.Session != nil
	m.Session = NewSession(m.cfg, m.rng, now)
	if restart {
		m.Session.Spawner.Delay = m.cfg.RestartSpawnDelay
	}
	m.setState(StatePlaying)
}

// updateNameEntry edits the typed name and submits it on Enter.
// Enter is ignored while the name is blank; events after a submit are dropped.
func (m *Machine) updateNameEntry(events []Event) {
	for _, ev := range events {
		if ev.Kind != EventKeyDown {
			continue
		}
		switch {
		case ev.Key == KeyEnter:
			if strings.TrimSpace(string(m.Name)) != "" {
				m.SubmitScore(string(m.Name), m.FinalScore)
				return
			}
		case ev.Key == KeyBackspace:
			if len(m.Name) > 0 {
				m.Name = m.Name[:len(m.Name)-1]
			}
		case ev.Char != 0:
			if acceptNameRune(ev.Char) && len(m.Name) < m.cfg.MaxNameLength {
				m.Name = append(m.Name, ev.Char)
			}
		}
	}
}

// acceptNameRune filters what can be typed into a name.
// Commas are rejected because the high score file separates fields with them.
func acceptNameRune(r rune) bool {
	return unicode.IsPrint(r) && r != ','
}

// SubmitScore records an entry in the table, saves it and shows the high score screen.
// A failed save is logged and the game carries on with the updated table in memory.
func (m *Machine) SubmitScore(name string, score int) {
	m.HighScores = InsertHighScore(m.HighScores, HighScore{Name: name, Score: score}, m.cfg.MaxHighScores)
	if err := m.store.Save(m.HighScores); err != nil {
		log.Printf("Warning: could not save high scores: %v", err)
	}
	m.setState(StateHighScores)
}

func (m *Machine) setState(s State) {
	if m.state != s {
		log.Printf("state: %s -> %s", m.state, s)
	}
	m.state = s
}

// anyKeyDown reports a key press other than the debug toggle
func anyKeyDown(events []Event) bool {
	for _, ev := range events {
		if ev.Kind == EventKeyDown && ev.Key != KeyF1 {
			return true
		}
	}
	return false
}
