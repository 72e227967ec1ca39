package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"bubblepop/game"
)

func main() {
	ticks := flag.Int("ticks", 60*60*5, "maximum number of ticks to simulate")
	seed := flag.Int64("seed", 1, "random seed")
	scores := flag.String("scores", "", "high score file (empty keeps scores in memory)")
	name := flag.String("name", "autopilot", "name entered when the game ends")
	frames := flag.Bool("frames", false, "build a draw frame every tick")
	profileDir := flag.String("profile", "", "write a CPU profile and trace to this directory")
	flag.Parse()

	config := game.DefaultConfig()

	var store game.Store = &game.MemoryStore{}
	if *scores != "" {
		store = game.NewFileStore(*scores, config.MaxHighScores)
	}

	if *profileDir != "" {
		p, err := startProfiler(*profileDir)
		if err != nil {
			log.Fatalf("Failed to start profiler: %v", err)
		}
		defer func() {
			for _, f := range p.stop() {
				log.Printf("profile saved to: %s", f)
			}
		}()
	}

	rng := rand.New(rand.NewSource(*seed))
	machine := game.NewMachine(config, rng, store)
	pilot := newAutopilot(config, *name)
	pilot.machine = machine
	clock := game.NewTickClock(config.TPS)

	start := time.Now()
	var commands, ran int
	for ran = 0; ran < *ticks; ran++ {
		machine.Update(clock.Now(), pilot)
		if *frames {
			commands += len(machine.Frame().Commands)
		}
		clock.Advance()
		if s := machine.State(); s == game.StateHighScores || s == game.StateQuit {
			break
		}
	}
	wall := time.Since(start)

	fmt.Printf("ticks:      %d (%v simulated, %v wall)\n", ran, clock.Now(), wall.Round(time.Millisecond))
	fmt.Printf("state:      %s\n", machine.State())
	if s := machine.Session; s != nil {
		c := s.Counters
		fmt.Printf("session:    %s\n", s.ID)
		fmt.Printf("score:      %d (level %d)\n", s.Score, s.Level())
		fmt.Printf("bubbles:    %d spawned, %d rejected, %d on screen\n", c.Spawned, c.Rejected, len(s.Bubbles))
		fmt.Printf("collisions: %d, hits: %d, hits taken: %d\n", c.Collisions, c.Hits, c.HitsTaken)
	}
	if *frames {
		fmt.Printf("commands:   %d\n", commands)
	}
	for i, hs := range machine.HighScores {
		fmt.Printf("%d. %s: %d\n", i+1, hs.Name, hs.Score)
	}
}
