// Package math provides float32 vector, quaternion and matrix types for
// character motion and camera work.
package math

import "github.com/chewxy/math32"

// Vec2 is a 2D vector. Input axes use X for strafe/yaw and Y for
// forward/pitch.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// ClampAxes clamps each component to [-1, 1].
func (v Vec2) ClampAxes() Vec2 {
	return Vec2{Clamp(v.X, -1, 1), Clamp(v.Y, -1, 1)}
}

// Normalize returns a unit vector, or the zero vector if v is zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}
