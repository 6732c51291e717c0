package math

import "github.com/go-gl/mathgl/mgl32"

// Mgl converts v to a mathgl vector.
func (v Vec3) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// FromMgl converts a mathgl vector.
func FromMgl(v mgl32.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}
