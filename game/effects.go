package game

import (
	"math/rand"
	"time"
)

// Effects tracks the timed states layered over the simulation: the grace window after a hit,
// the hurt shake and flash, and the level up banner. Every query takes the tick's clock sample.
type Effects struct {
	cfg Config

	// Invincible is true during the grace window after losing a life
	Invincible      bool
	invincibleSince time.Duration

	// Shake is the current shake magnitude in pixels, decaying by one per tick
	Shake float64

	// Flash toggles every tick while the hurt effect runs
	Flash bool

	hurting   bool
	hurtSince time.Duration

	warning      bool
	warningSince time.Duration
}

// NewEffects creates an idle effects state
func NewEffects(cfg Config) *Effects {
	return &Effects{cfg: cfg}
}

// Hurt starts the invincibility window and the hurt effect at now
func (e *Effects) Hurt(now time.Duration) {
	e.Invincible = true
	e.invincibleSince = now
	e.hurting = true
	e.hurtSince = now
	e.Shake = e.cfg.ShakeAmount
	e.Flash = true
}

// Warn starts the level up banner at now
func (e *Effects) Warn(now time.Duration) {
	e.warning = true
	e.warningSince = now
}

// Update expires finished effects and advances the running ones by one tick
func (e *Effects) Update(now time.Duration) {
	if e.Invincible && now-e.invincibleSince > e.cfg.InvincibleDuration {
		e.Invincible = false
	}

	if e.hurting {
		if now-e.hurtSince < e.cfg.HurtDuration {
			e.Shake = max(0, e.Shake-1)
			e.Flash = !e.Flash
		} else {
			e.hurting = false
			e.Shake = 0
			e.Flash = false
		}
	}

	if e.warning && now-e.warningSince >= e.cfg.WarningDuration {
		e.warning = false
	}
}

// Hurting reports whether the shake and flash are running
func (e *Effects) Hurting() bool {
	return e.hurting
}

// Warning reports whether the level up banner is showing
func (e *Effects) Warning() bool {
	return e.warning
}

// RingVisible reports whether the invincibility ring is drawn at now.
// The ring blinks with a half period of FlickerPeriod.
func (e *Effects) RingVisible(now time.Duration) bool {
	if !e.Invincible || e.cfg.FlickerPeriod <= 0 {
		return false
	}
	return (now/e.cfg.FlickerPeriod)%2 == 1
}

// ShakeOffset returns a random whole-pixel frame offset within the current shake magnitude
func (e *Effects) ShakeOffset(rng *rand.Rand) Vec2 {
	if !e.hurting {
		return Vec2{}
	}
	amount := int(e.Shake)
	return Vec2{randInt(rng, -amount, amount), randInt(rng, -amount, amount)}
}
