package game

import "time"

// Gun fires stingers along the player's facing with a fixed cooldown
type Gun struct {
	Cooldown     time.Duration
	Speed        float64
	MuzzleOffset float64

	lastShot time.Duration
	fired    bool
}

// NewGun creates a gun from the configuration
func NewGun(cfg Config) Gun {
	return Gun{
		Cooldown:     cfg.ShotDelay,
		Speed:        cfg.BulletSpeed,
		MuzzleOffset: cfg.MuzzleOffset,
	}
}

// CanShoot checks if the gun is ready to fire at time now, strictly after the cooldown.
// A gun that has never fired is always ready.
func (g *Gun) CanShoot(now time.Duration) bool {
	if !g.fired {
		return true
	}
	return now-g.lastShot > g.Cooldown
}

// Fire spawns a bullet from pos along angle (degrees) if the cooldown allows it
func (g *Gun) Fire(now time.Duration, pos Vec2, angle float64) (*Bullet, bool) {
	if !g.CanShoot(now) {
		return nil, false
	}
	g.lastShot = now
	g.fired = true

	dir := FromAngleDeg(angle)
	return &Bullet{
		Pos:      pos.Add(dir.Scale(g.MuzzleOffset)),
		Vel:      dir.Scale(g.Speed),
		Rotation: angle,
	}, true
}
