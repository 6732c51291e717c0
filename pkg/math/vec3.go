package math

import "github.com/chewxy/math32"

// Vec3 is a 3D vector. The world is Y-up; a body's forward axis is +Z and
// its right axis is +X.
type Vec3 struct {
	X, Y, Z float32
}

// Axis vectors.
var (
	Up      = Vec3{0, 1, 0}
	Down    = Vec3{0, -1, 0}
	Right   = Vec3{1, 0, 0}
	Forward = Vec3{0, 0, 1}
)

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSqr())
}

// LengthSqr returns the squared magnitude.
func (v Vec3) LengthSqr() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector, or the zero vector for a zero input.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Horizontal returns v with the vertical component removed.
func (v Vec3) Horizontal() Vec3 {
	return Vec3{v.X, 0, v.Z}
}

// XZ returns the XZ components as Vec2.
func (v Vec3) XZ() Vec2 {
	return Vec2{v.X, v.Z}
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec3) ApproxEqual(other Vec3, eps float32) bool {
	return math32.Abs(v.X-other.X) <= eps &&
		math32.Abs(v.Y-other.Y) <= eps &&
		math32.Abs(v.Z-other.Z) <= eps
}

// ProjectOnPlane removes the component of v along the plane normal n.
// n does not need to be normalized; a zero normal returns v unchanged.
func ProjectOnPlane(v, n Vec3) Vec3 {
	sqr := n.LengthSqr()
	if sqr < Epsilon {
		return v
	}
	return v.Sub(n.Scale(v.Dot(n) / sqr))
}

// Angle returns the unsigned angle between a and b in degrees.
// Either vector being zero yields 0.
func Angle(a, b Vec3) float32 {
	denom := math32.Sqrt(a.LengthSqr() * b.LengthSqr())
	if denom < Epsilon {
		return 0
	}
	return RadToDeg(math32.Acos(Clamp(a.Dot(b)/denom, -1, 1)))
}

// MoveTowards moves current toward target by at most maxDelta.
func MoveTowards(current, target Vec3, maxDelta float32) Vec3 {
	delta := target.Sub(current)
	dist := delta.Length()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(delta.Scale(maxDelta / dist))
}
