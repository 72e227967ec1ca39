package game

import "math"

// Player is the bee steered by the pointer
type Player struct {
	Pos Vec2

	// Angle is the facing direction in degrees, counter-clockwise from +x with y up
	Angle float64

	Lives int
}

// NewPlayer creates a player in the middle of the screen
func NewPlayer(cfg Config) *Player {
	return &Player{
		Pos:   Vec2{math.Floor(cfg.Width() / 2), math.Floor(cfg.Height() / 2)},
		Lives: cfg.Lives,
	}
}

// Follow eases the player towards a point minDist short of the pointer and turns it to face the pointer.
// The angle holds its last value when the pointer sits exactly on the player.
func (p *Player) Follow(pointer Vec2, minDist, rate float64) {
	from := p.Pos
	d := pointer.Sub(from)
	dist := d.Len()
	if dist > minDist {
		target := pointer.Sub(d.Scale(minDist / dist))
		p.Pos = p.Pos.Add(target.Sub(p.Pos).Scale(rate))
	}
	if dist > 0 {
		p.Angle = AngleDeg(from, pointer)
	}
}

// Hitbox returns the centers of the body segments, evenly spaced along the facing axis
func (p *Player) Hitbox(count int, spacing float64) []Vec2 {
	dir := FromAngleDeg(p.Angle)
	points := make([]Vec2, 0, count)
	first := -spacing * float64(count-1) / 2
	for i := 0; i < count; i++ {
		offset := first + float64(i)*spacing
		points = append(points, p.Pos.Add(dir.Scale(offset)))
	}
	return points
}

// Alive reports whether the player has lives left
func (p *Player) Alive() bool {
	return p.Lives > 0
}
