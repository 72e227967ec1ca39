package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Controls is the player input sampled for one tick
type Controls struct {
	Pointer Vec2
	Fire    bool
}

// Counters accumulate simulation events over a session, for the debug overlay and logs
type Counters struct {
	Spawned    int
	Rejected   int
	Collisions int
	Hits       int
	HitsTaken  int
}

// Session holds all mutable state of one play-through. Nothing in it outlives a reset.
type Session struct {
	ID uuid.UUID

	cfg Config
	rng *rand.Rand

	Score  int
	Player *Player
	Gun    Gun

	Bubbles []*Bubble
	Bullets []*Bullet
	Clouds  []*Cloud

	Spawner    *Spawner
	Collisions *CollisionSystem
	Effects    *Effects

	// Over is set on the tick the last life is lost
	Over bool

	Counters Counters

	spawnLevel      int
	lastScoreUpdate time.Duration
}

// NewSession creates a fresh session whose timers start at now
func NewSession(cfg Config, rng *rand.Rand, now time.Duration) *Session {
	s := &Session{
		ID:              uuid.New(),
		cfg:             cfg,
		rng:             rng,
		Player:          NewPlayer(cfg),
		Gun:             NewGun(cfg),
		Spawner:         NewSpawner(cfg, rng, now),
		Collisions:      NewCollisionSystem(cfg, rng),
		Effects:         NewEffects(cfg),
		spawnLevel:      1,
		lastScoreUpdate: now,
	}
	s.Clouds = s.Spawner.SpawnClouds(cfg.CloudCount)
	log.Printf("session %s: started", s.ID)
	return s
}

// Level returns the difficulty level derived from the score
func (s *Session) Level() int {
	return s.Score/s.cfg.PointsPerLevel + 1
}

// Tick advances the simulation by one frame. now is the single clock sample for this tick.
// Phases run in a fixed order and each sees the fully resolved result of the previous one:
// steer, level, spawn, move/cull, bubble-bubble, bullet-bubble, player, effect timers, survival score.
func (s *Session) Tick(now time.Duration, in Controls) {
	if s.Over {
		return
	}

	s.steer(now, in)
	s.updateLevel(now)
	s.spawn(now)
	s.move()
	s.Counters.Collisions += s.Collisions.ResolveBubbles(s.Bubbles)

	var hits int
	s.Bullets, s.Bubbles, hits = s.Collisions.ResolveBullets(s.Bullets, s.Bubbles)
	s.Score += hits
	s.Counters.Hits += hits

	s.checkPlayer(now)
	s.Effects.Update(now)
	s.accrueSurvival(now)
}

// steer moves the player towards the pointer and fires if requested
func (s *Session) steer(now time.Duration, in Controls) {
	s.Player.Follow(in.Pointer, s.cfg.FollowDistance, s.cfg.FollowRate)
	if !in.Fire {
		return
	}
	if bullet, ok := s.Gun.Fire(now, s.Player.Pos, s.Player.Angle); ok {
		s.Bullets = append(s.Bullets, bullet)
	}
}

// updateLevel shortens the spawn delay and raises the banner for every level gained
func (s *Session) updateLevel(now time.Duration) {
	level := s.Level()
	if level <= s.spawnLevel {
		return
	}
	s.Spawner.LevelUp(level - s.spawnLevel)
	s.spawnLevel = level
	s.Effects.Warn(now)
	log.Printf("session %s: level %d, spawn delay %v", s.ID, level, s.Spawner.Delay)
}

// spawn makes at most one bubble spawn attempt per tick
func (s *Session) spawn(now time.Duration) {
	if !s.Spawner.Due(now) {
		return
	}
	if b, ok := s.Spawner.SpawnBubble(s.Bubbles); ok {
		s.Bubbles = append(s.Bubbles, b)
		s.Counters.Spawned++
	} else {
		s.Counters.Rejected++
	}
}

// move advances every entity one tick and culls what left the screen
func (s *Session) move() {
	w, h := s.cfg.Width(), s.cfg.Height()
	for _, c := range s.Clouds {
		c.Update(s.rng, w, h)
	}
	for _, b := range s.Bubbles {
		b.Update()
		if b.OffScreen(w, h) {
			b.dead = true
		}
	}
	s.Bubbles = compactBubbles(s.Bubbles)
	for _, b := range s.Bullets {
		b.Update()
		if b.OffScreen(w, h) {
			b.dead = true
		}
	}
	s.Bullets = compactBullets(s.Bullets)
}

// checkPlayer costs a life when a bubble touches the player outside the grace window
func (s *Session) checkPlayer(now time.Duration) {
	if s.Effects.Invincible {
		return
	}
	if _, hit := s.Collisions.HitsPlayer(s.Player, s.Bubbles); !hit {
		return
	}
	s.Player.Lives--
	s.Counters.HitsTaken++
	if !s.Player.Alive() {
		s.Over = true
		log.Printf("session %s: game over, score %d", s.ID, s.Score)
		return
	}
	s.Effects.Hurt(now)
}

// accrueSurvival adds a point for every whole second of play, keeping the remainder
func (s *Session) accrueSurvival(now time.Duration) {
	elapsed := now - s.lastScoreUpdate
	if elapsed < time.Second {
		return
	}
	seconds := int(elapsed / time.Second)
	s.Score += seconds
	s.lastScoreUpdate += time.Duration(seconds) * time.Second
}
