package game

import "time"

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// TPS is the number of simulation ticks per second
	TPS int

	// InitialSpawnDelay is the bubble spawn delay at level 1 of the first game
	InitialSpawnDelay time.Duration

	// RestartSpawnDelay is the bubble spawn delay at level 1 of every later game
	RestartSpawnDelay time.Duration

	// MinSpawnDelay is the floor for the spawn delay (0 disables the floor)
	MinSpawnDelay time.Duration

	// SpawnDelayFactor multiplies the spawn delay on every level up
	SpawnDelayFactor float64

	// PointsPerLevel is the score needed to advance one level
	PointsPerLevel int

	// SpawnBaseSpeed is the speed of a radius-10 bubble at spawn, in pixels per tick
	SpawnBaseSpeed float64

	// MinSpeedBase is the reference speed of a radius-10 bubble for minimum speed enforcement
	MinSpeedBase float64

	// MinSpeedFactor is the fraction of the reference speed a bubble never drops below after a collision
	MinSpeedFactor float64

	// MinPopRadius is the radius at or below which a shot bubble pops without splitting
	MinPopRadius float64

	// SplitSpeedFactor scales the parent's velocity for both children
	SplitSpeedFactor float64

	// CloudCount is the number of decorative clouds
	CloudCount int

	// Lives is the number of lives at the start of a session
	Lives int

	// FollowDistance is the distance the player keeps from the pointer
	FollowDistance float64

	// FollowRate is the fraction of the remaining distance covered per tick
	FollowRate float64

	// ShotDelay is the minimum time between two shots
	ShotDelay time.Duration

	// BulletSpeed is the bullet speed in pixels per tick
	BulletSpeed float64

	// MuzzleOffset is how far ahead of the player a bullet appears
	MuzzleOffset float64

	// SegmentCount, SegmentSpacing and SegmentRadius describe the player hitbox
	SegmentCount   int
	SegmentSpacing float64
	SegmentRadius  float64

	// InvincibleDuration is the grace window after losing a life
	InvincibleDuration time.Duration

	// HurtDuration is how long the shake and red flash last
	HurtDuration time.Duration

	// ShakeAmount is the initial shake magnitude in pixels
	ShakeAmount float64

	// FlickerPeriod is the half period of the invincibility ring flicker
	FlickerPeriod time.Duration

	// WarningDuration is how long the level up banner stays on screen
	WarningDuration time.Duration

	// MaxNameLength is the longest name accepted on the name entry screen, in runes
	MaxNameLength int

	// MaxHighScores caps the high score table
	MaxHighScores int

	// HighScorePath is the file the high score table is stored in
	HighScorePath string

	// BackgroundPath is the image shown behind the start and high score screens
	BackgroundPath string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:        1024,
		ScreenHeight:       1024,
		TPS:                60,
		InitialSpawnDelay:  2 * time.Second,
		RestartSpawnDelay:  time.Second,
		MinSpawnDelay:      100 * time.Millisecond,
		SpawnDelayFactor:   0.8,
		PointsPerLevel:     10,
		SpawnBaseSpeed:     2.0,
		MinSpeedBase:       6.0,
		MinSpeedFactor:     0.2,
		MinPopRadius:       10,
		SplitSpeedFactor:   1.5,
		CloudCount:         5,
		Lives:              3,
		FollowDistance:     60,
		FollowRate:         0.05,
		ShotDelay:          250 * time.Millisecond,
		BulletSpeed:        10,
		MuzzleOffset:       20,
		SegmentCount:       3,
		SegmentSpacing:     8,
		SegmentRadius:      10,
		InvincibleDuration: 2 * time.Second,
		HurtDuration:       500 * time.Millisecond,
		ShakeAmount:        20,
		FlickerPeriod:      200 * time.Millisecond,
		WarningDuration:    2 * time.Second,
		MaxNameLength:      10,
		MaxHighScores:      5,
		HighScorePath:      "high_scores.txt",
		BackgroundPath:     "bubblebee.png",
	}
}

// Width returns the screen width as a float
func (c Config) Width() float64 {
	return float64(c.ScreenWidth)
}

// Height returns the screen height as a float
func (c Config) Height() float64 {
	return float64(c.ScreenHeight)
}
