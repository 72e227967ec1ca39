package game

// Body is a moving circle
type Body struct {
	// Position in screen coordinates
	Pos Vec2

	// Velocity in pixels per tick
	Vel Vec2

	// Collision radius in pixels
	Radius float64
}

// DistanceTo calculates the distance to another body
func (b *Body) DistanceTo(other *Body) float64 {
	return Distance(b.Pos, other.Pos)
}

// IsColliding checks if this body overlaps another body
func (b *Body) IsColliding(other *Body) bool {
	return b.DistanceTo(other) < b.Radius+other.Radius
}

// Bubble is a drifting hazard that splits in two when shot
type Bubble struct {
	Body

	// Angle is a cosmetic rotation in degrees
	Angle float64

	// Color indexes BubbleColors
	Color int

	// Shine is the offset of the highlight from the center, on both axes
	Shine float64

	// dead marks the bubble for removal at the end of the current phase
	dead bool
}

// Update moves the bubble one tick
func (b *Bubble) Update() {
	b.Pos = b.Pos.Add(b.Vel)
	b.Angle++
}

// OffScreen reports whether the bubble left the viewport by more than its diameter
func (b *Bubble) OffScreen(width, height float64) bool {
	margin := b.Radius * 2
	return b.Pos.X < -margin || b.Pos.X > width+margin ||
		b.Pos.Y < -margin || b.Pos.Y > height+margin
}

// Bullet is a stinger fired by the player
type Bullet struct {
	Pos Vec2
	Vel Vec2

	// Rotation is the firing angle in degrees, used for drawing
	Rotation float64

	dead bool
}

// Update moves the bullet one tick
func (b *Bullet) Update() {
	b.Pos = b.Pos.Add(b.Vel)
}

// OffScreen reports whether the bullet left the viewport
func (b *Bullet) OffScreen(width, height float64) bool {
	return b.Pos.X < 0 || b.Pos.X > width || b.Pos.Y < 0 || b.Pos.Y > height
}

// compactBubbles drops bubbles marked dead, reusing the backing array
func compactBubbles(bubbles []*Bubble) []*Bubble {
	kept := bubbles[:0]
	for _, b := range bubbles {
		if !b.dead {
			kept = append(kept, b)
		}
	}
	clear(bubbles[len(kept):])
	return kept
}

// compactBullets drops bullets marked dead, reusing the backing array
func compactBullets(bullets []*Bullet) []*Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		if !b.dead {
			kept = append(kept, b)
		}
	}
	clear(bullets[len(kept):])
	return kept
}
