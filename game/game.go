package game

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts the state machine to the ebiten game loop
type Game struct {
	config  Config
	machine *Machine
	clock   Clock
	input   InputSource
	canvas  *Canvas
}

// Options holds the collaborators a game is built from. Nil fields get defaults.
type Options struct {
	Store      Store
	Clock      Clock
	Input      InputSource
	Rand       *rand.Rand
	Background *Background
}

// NewGame creates a new game instance on the start screen
func NewGame(config Config, opts Options) *Game {
	if opts.Store == nil {
		opts.Store = NewFileStore(config.HighScorePath, config.MaxHighScores)
	}
	if opts.Clock == nil {
		opts.Clock = NewMonotonicClock()
	}
	if opts.Input == nil {
		opts.Input = NewEbitenInput()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(rand.Int63()))
	}

	canvas := NewCanvas(config.ScreenWidth, config.ScreenHeight)
	if opts.Background != nil {
		canvas.AddBackground(BackgroundAsset, opts.Background)
	}

	return &Game{
		config:  config,
		machine: NewMachine(config, opts.Rand, opts.Store),
		clock:   opts.Clock,
		input:   opts.Input,
		canvas:  canvas,
	}
}

// Machine returns the state machine driven by the game
func (g *Game) Machine() *Machine {
	return g.machine
}

// Update advances one tick and ends the loop once the player quits
func (g *Game) Update() error {
	g.machine.TPS = ebiten.ActualTPS()
	g.machine.Update(g.clock.Now(), g.input)
	if g.machine.State() == StateQuit {
		log.Println("quit requested")
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Draw(screen, g.machine.Frame())
}

// Layout returns the fixed logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
