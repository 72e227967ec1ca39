package main

import (
	"flag"
	"log"

	"bubblepop/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	config := game.DefaultConfig()
	flag.StringVar(&config.HighScorePath, "scores", config.HighScorePath, "high score file")
	flag.StringVar(&config.BackgroundPath, "background", config.BackgroundPath, "start screen background image (png, jpeg or webp)")
	flag.Parse()

	var opts game.Options
	bg, err := game.LoadBackground(config.BackgroundPath, config.ScreenWidth, config.ScreenHeight)
	if err != nil {
		log.Printf("Warning: could not load background: %v", err)
	} else {
		opts.Background = bg
	}

	g := game.NewGame(config, opts)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Bubble Pop")
	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
