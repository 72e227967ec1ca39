package game

import (
	"image/color"
	"math/rand"
)

// SizeTier identifies a bubble size category
type SizeTier int

const (
	SizeTierSmall SizeTier = iota
	SizeTierMedium
	SizeTierLarge
	SizeTierCount // Total number of tiers
)

// SizeTierConfig holds the radius range and spawn weight of a tier
type SizeTierConfig struct {
	Tier      SizeTier
	Name      string
	MinRadius int
	MaxRadius int
	Weight    float64
}

// GetSizeTierConfig returns configuration for a size tier
func GetSizeTierConfig(tier SizeTier) SizeTierConfig {
	switch tier {
	case SizeTierSmall:
		return SizeTierConfig{Tier: SizeTierSmall, Name: "small", MinRadius: 10, MaxRadius: 40, Weight: 0.8}
	case SizeTierMedium:
		return SizeTierConfig{Tier: SizeTierMedium, Name: "medium", MinRadius: 81, MaxRadius: 100, Weight: 0.15}
	case SizeTierLarge:
		return SizeTierConfig{Tier: SizeTierLarge, Name: "large", MinRadius: 200, MaxRadius: 250, Weight: 0.05}
	default:
		return GetSizeTierConfig(SizeTierSmall)
	}
}

// MaxSpawnRadius returns the largest radius any tier can produce
func MaxSpawnRadius() float64 {
	largest := 0
	for t := SizeTier(0); t < SizeTierCount; t++ {
		largest = max(largest, GetSizeTierConfig(t).MaxRadius)
	}
	return float64(largest)
}

// GetRandomSizeTier picks a tier by weight
func GetRandomSizeTier(rng *rand.Rand) SizeTier {
	total := 0.0
	for t := SizeTier(0); t < SizeTierCount; t++ {
		total += GetSizeTierConfig(t).Weight
	}
	roll := rng.Float64() * total
	for t := SizeTier(0); t < SizeTierCount; t++ {
		roll -= GetSizeTierConfig(t).Weight
		if roll < 0 {
			return t
		}
	}
	return SizeTierCount - 1
}

// RandomRadius returns a uniform integer radius within the tier's range
func (c SizeTierConfig) RandomRadius(rng *rand.Rand) float64 {
	return randInt(rng, c.MinRadius, c.MaxRadius)
}

// BubbleColors is the palette bubbles are drawn from
var BubbleColors = []color.RGBA{
	{173, 216, 230, 255}, // light blue
	{221, 160, 221, 255}, // plum
	{152, 251, 152, 255}, // pale green
	{255, 182, 193, 255}, // light pink
	{238, 232, 170, 255}, // pale goldenrod
}

// bubbleColor returns the palette entry for an index, wrapping out of range values
func bubbleColor(i int) color.RGBA {
	n := len(BubbleColors)
	return BubbleColors[((i%n)+n)%n]
}
