package math

import "github.com/chewxy/math32"

// Epsilon is the smallest magnitude treated as non-zero by vector helpers.
const Epsilon = 1e-6

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * 180 / math32.Pi
}

// NearZero reports whether |v| is below Epsilon.
func NearZero(v float32) bool {
	return math32.Abs(v) < Epsilon
}
