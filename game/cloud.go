package game

import "math/rand"

const (
	cloudPuffCount = 5
	cloudWrapPad   = 100.0
)

// Puff is one circle of a cloud, relative to the cloud position
type Puff struct {
	DX, DY, Radius float64
}

// Cloud is a decorative background element. It never interacts with the game.
type Cloud struct {
	Pos   Vec2
	Speed float64
	Size  float64
	Puffs [cloudPuffCount]Puff
}

// NewCloud creates a cloud at a random position in the upper half of the screen
func NewCloud(rng *rand.Rand, width, height float64) *Cloud {
	c := &Cloud{
		Pos: Vec2{
			X: randInt(rng, int(-cloudWrapPad), int(width)),
			Y: randInt(rng, 0, int(height/2)),
		},
		Speed: 0.2 + rng.Float64()*0.3,
		Size:  randInt(rng, 40, 100),
	}
	for i := range c.Puffs {
		c.Puffs[i] = Puff{
			DX:     randInt(rng, -20, 20),
			DY:     randInt(rng, -20, 20),
			Radius: randInt(rng, 20, 40),
		}
	}
	return c
}

// Update drifts the cloud right, wrapping it back to the left edge at a new height
func (c *Cloud) Update(rng *rand.Rand, width, height float64) {
	c.Pos.X += c.Speed
	if c.Pos.X > width+cloudWrapPad {
		c.Pos.X = -cloudWrapPad
		c.Pos.Y = randInt(rng, 0, int(height/2))
	}
}

// randInt returns a uniform integer in [lo, hi] as a float
func randInt(rng *rand.Rand, lo, hi int) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return float64(lo + rng.Intn(hi-lo+1))
}
