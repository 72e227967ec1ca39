package game

import "math"

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the length of v
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length, or the zero vector when v has no length
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance calculates the distance between two points
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// AngleDeg returns the direction from a to b in degrees.
// Screen y grows downwards, so the angle is measured counter-clockwise with y flipped.
func AngleDeg(a, b Vec2) float64 {
	return math.Atan2(-(b.Y - a.Y), b.X-a.X) * 180 / math.Pi
}

// FromAngleDeg returns the unit vector pointing along an angle produced by AngleDeg
func FromAngleDeg(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{math.Cos(rad), -math.Sin(rad)}
}
