package game

import "math/rand"

// degenerateNudge is how far a bubble is moved when two centers coincide
const degenerateNudge = 1.0

// CollisionSystem resolves bubble-bubble bounces, bullet hits and player contact
type CollisionSystem struct {
	cfg  Config
	rng  *rand.Rand
	grid *Grid
}

// NewCollisionSystem creates a new collision system.
// The bullet broad-phase cell size covers two of the largest spawnable bubbles.
func NewCollisionSystem(cfg Config, rng *rand.Rand) *CollisionSystem {
	return &CollisionSystem{
		cfg:  cfg,
		rng:  rng,
		grid: NewGrid(cfg.Width(), cfg.Height(), MaxSpawnRadius()*2),
	}
}

// ResolveBubbles separates and bounces every overlapping pair of bubbles.
// Pairs are visited in ascending index order and tested against current positions,
// so a pair pushed into contact earlier in the pass is resolved in the same pass.
// It returns the number of collisions resolved.
func (c *CollisionSystem) ResolveBubbles(bubbles []*Bubble) int {
	collisions := 0
	for i, b1 := range bubbles {
		for _, b2 := range bubbles[i+1:] {
			if !b1.IsColliding(&b2.Body) {
				continue
			}
			PushApart(&b1.Body, &b2.Body)
			Bounce(&b1.Body, &b2.Body)
			c.EnforceMinimumSpeed(b1)
			c.EnforceMinimumSpeed(b2)
			collisions++
		}
	}
	return collisions
}

// PushApart pushes two overlapping bodies apart along the line between their centers,
// each by half the overlap. Coincident centers get a fixed nudge instead.
func PushApart(b1, b2 *Body) {
	d := b2.Pos.Sub(b1.Pos)
	distance := d.Len()

	if distance == 0 {
		b2.Pos.X += degenerateNudge
		return
	}

	overlap := (b1.Radius + b2.Radius) - distance
	if overlap <= 0 {
		return
	}

	// Push apart by half the overlap each
	dir := d.Scale(1 / distance)
	separation := overlap * 0.5
	b1.Pos = b1.Pos.Sub(dir.Scale(separation))
	b2.Pos = b2.Pos.Add(dir.Scale(separation))
}

// Bounce exchanges momentum between two bodies with mass proportional to area (radius²).
// The one-dimensional elastic formula is applied to each axis, so total momentum is conserved.
func Bounce(b1, b2 *Body) {
	m1 := b1.Radius * b1.Radius
	m2 := b2.Radius * b2.Radius
	total := m1 + m2

	v1, v2 := b1.Vel, b2.Vel
	b1.Vel = v1.Scale((m1 - m2) / total).Add(v2.Scale(2 * m2 / total))
	b2.Vel = v1.Scale(2 * m1 / total).Add(v2.Scale((m2 - m1) / total))
}

// MinSpeed returns the slowest a bubble of the given radius may move after a collision
func (c *CollisionSystem) MinSpeed(radius float64) float64 {
	return c.cfg.MinSpeedBase * (10 / radius) * c.cfg.MinSpeedFactor
}

// EnforceMinimumSpeed scales a slow bubble's velocity up to the minimum, keeping its direction.
// A bubble at rest has no direction and is left alone.
func (c *CollisionSystem) EnforceMinimumSpeed(b *Bubble) {
	minSpeed := c.MinSpeed(b.Radius)
	speed := b.Vel.Len()
	if speed == 0 || speed >= minSpeed {
		return
	}
	b.Vel = b.Vel.Scale(minSpeed / speed)
}

// Split returns the children of a shot bubble: two half-size bubbles flying apart along the
// parent's velocity, faster by SplitSpeedFactor. Children must be larger than MinPopRadius,
// so a bubble of up to twice that radius pops without children.
func (c *CollisionSystem) Split(b *Bubble) []*Bubble {
	radius := b.Radius / 2
	if radius <= c.cfg.MinPopRadius {
		return nil
	}
	vel := b.Vel.Scale(c.cfg.SplitSpeedFactor)
	return []*Bubble{
		{
			Body:  Body{Pos: b.Pos, Vel: vel, Radius: radius},
			Color: b.Color,
			Shine: randomShine(c.rng, radius),
		},
		{
			Body:  Body{Pos: b.Pos, Vel: vel.Scale(-1), Radius: radius},
			Color: b.Color,
			Shine: randomShine(c.rng, radius),
		},
	}
}

// ResolveBullets checks every bullet against the bubbles. A bullet pops the first bubble
// whose center is closer than its radius; both are removed and the bubble's children are
// added once all bullets are processed. It returns the updated slices and the hit count.
// Bubbles do not move during this phase, so candidates come from a grid built once.
func (c *CollisionSystem) ResolveBullets(bullets []*Bullet, bubbles []*Bubble) ([]*Bullet, []*Bubble, int) {
	var children []*Bubble
	hits := 0
	c.grid.Rebuild(bubbles)
	var candidates []int
	for _, bullet := range bullets {
		if bullet.dead {
			continue
		}
		candidates = c.grid.Near(candidates[:0], bullet.Pos)
		for _, i := range candidates {
			bubble := bubbles[i]
			if bubble.dead {
				continue
			}
			if Distance(bullet.Pos, bubble.Pos) < bubble.Radius {
				bubble.dead = true
				bullet.dead = true
				children = append(children, c.Split(bubble)...)
				hits++
				break
			}
		}
	}
	bubbles = append(compactBubbles(bubbles), children...)
	return compactBullets(bullets), bubbles, hits
}

// HitsPlayer returns the first bubble touching any of the player's body segments
func (c *CollisionSystem) HitsPlayer(p *Player, bubbles []*Bubble) (*Bubble, bool) {
	segments := p.Hitbox(c.cfg.SegmentCount, c.cfg.SegmentSpacing)
	for _, b := range bubbles {
		for _, s := range segments {
			if Distance(s, b.Pos) < c.cfg.SegmentRadius+b.Radius {
				return b, true
			}
		}
	}
	return nil, false
}
