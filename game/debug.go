package game

// DebugState holds debug flags that persist across session resets
type DebugState struct {
	ShowHitboxes bool // Show player segments, bubble bounds and counters
}

// Toggle flips the overlay
func (d *DebugState) Toggle() {
	d.ShowHitboxes = !d.ShowHitboxes
}
