package game

import (
	"math"
	"math/rand"
	"time"
)

// Edge identifies the side of the screen a bubble enters from
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
	edgeCount
)

// Spawner creates bubbles at the screen edges on a timer and decorative clouds on request
type Spawner struct {
	cfg Config
	rng *rand.Rand

	// Delay is the current time between two spawn attempts
	Delay time.Duration

	lastAttempt time.Duration
}

// NewSpawner creates a spawner whose timer starts at now
func NewSpawner(cfg Config, rng *rand.Rand, now time.Duration) *Spawner {
	return &Spawner{
		cfg:         cfg,
		rng:         rng,
		Delay:       cfg.InitialSpawnDelay,
		lastAttempt: now,
	}
}

// Due reports whether a spawn attempt should be made at now and restarts the timer if so.
// The timer restarts whether or not the attempt succeeds.
func (s *Spawner) Due(now time.Duration) bool {
	if now-s.lastAttempt <= s.Delay {
		return false
	}
	s.lastAttempt = now
	return true
}

// LevelUp shortens the spawn delay once per level gained, down to the configured floor
func (s *Spawner) LevelUp(levels int) {
	for i := 0; i < levels; i++ {
		s.Delay = time.Duration(float64(s.Delay) * s.cfg.SpawnDelayFactor)
	}
	if s.cfg.MinSpawnDelay > 0 && s.Delay < s.cfg.MinSpawnDelay {
		s.Delay = s.cfg.MinSpawnDelay
	}
}

// SpawnBubble makes one attempt at spawning a bubble just outside a random edge.
// The attempt is dropped if the candidate overlaps any active bubble.
func (s *Spawner) SpawnBubble(active []*Bubble) (*Bubble, bool) {
	candidate := s.candidate(Edge(s.rng.Intn(int(edgeCount))))
	if overlapsAny(candidate, active) {
		return nil, false
	}
	return candidate, true
}

// candidate builds a bubble entering from the given edge
func (s *Spawner) candidate(edge Edge) *Bubble {
	radius := GetSizeTierConfig(GetRandomSizeTier(s.rng)).RandomRadius(s.rng)
	speed := s.cfg.SpawnBaseSpeed * (10 / radius)
	lateral := (s.rng.Float64()*2 - 1) * speed
	w, h := s.cfg.ScreenWidth, s.cfg.ScreenHeight

	var pos, vel Vec2
	switch edge {
	case EdgeTop:
		pos = Vec2{randInt(s.rng, 0, w), -radius * 2}
		vel = Vec2{lateral, speed}
	case EdgeRight:
		pos = Vec2{float64(w) + radius*2, randInt(s.rng, 0, h)}
		vel = Vec2{-speed, lateral}
	case EdgeBottom:
		pos = Vec2{randInt(s.rng, 0, w), float64(h) + radius*2}
		vel = Vec2{lateral, -speed}
	default:
		pos = Vec2{-radius * 2, randInt(s.rng, 0, h)}
		vel = Vec2{speed, lateral}
	}

	return &Bubble{
		Body:  Body{Pos: pos, Vel: vel, Radius: radius},
		Color: s.rng.Intn(len(BubbleColors)),
		Shine: randomShine(s.rng, radius),
	}
}

// SpawnClouds creates n clouds
func (s *Spawner) SpawnClouds(n int) []*Cloud {
	clouds := make([]*Cloud, 0, n)
	for i := 0; i < n; i++ {
		clouds = append(clouds, NewCloud(s.rng, s.cfg.Width(), s.cfg.Height()))
	}
	return clouds
}

// overlapsAny reports whether b overlaps any bubble in others
func overlapsAny(b *Bubble, others []*Bubble) bool {
	for _, o := range others {
		if b.IsColliding(&o.Body) {
			return true
		}
	}
	return false
}

// randomShine places the highlight between a half and a quarter radius up and left of the center
func randomShine(rng *rand.Rand, radius float64) float64 {
	return randInt(rng, int(math.Floor(-radius/2)), int(math.Floor(-radius/4)))
}
