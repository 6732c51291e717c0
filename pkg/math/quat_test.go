package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatYawRotatesForwardTowardRight(t *testing.T) {
	q := QuatYaw(90)
	got := q.Forward()
	if !got.ApproxEqual(Right, 1e-5) {
		t.Errorf("yaw 90 forward = %v, want %v", got, Right)
	}
	if yaw := q.Yaw(); math.Abs(float64(yaw-90)) > 0.01 {
		t.Errorf("Yaw() = %v, want 90", yaw)
	}
}

func TestQuatPitchTiltsDown(t *testing.T) {
	got := QuatPitch(90).Forward()
	if !got.ApproxEqual(Down, 1e-5) {
		t.Errorf("pitch 90 forward = %v, want %v", got, Down)
	}
}

func TestQuatMulComposes(t *testing.T) {
	q := QuatYaw(30).Mul(QuatYaw(60))
	if !q.Forward().ApproxEqual(Right, 1e-5) {
		t.Errorf("30+60 yaw forward = %v, want %v", q.Forward(), Right)
	}
}

func TestQuatToMat4(t *testing.T) {
	q := QuatIdentity()
	m := q.ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-identity[i])) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestQuatToMat4MatchesRotate(t *testing.T) {
	q := QuatYaw(37).Mul(QuatPitch(-20))
	v := Vec3{0.2, 1, 3}
	if got, want := q.ToMat4().TransformVec3(v), q.Rotate(v); !got.ApproxEqual(want, 1e-4) {
		t.Errorf("matrix rotation %v != quaternion rotation %v", got, want)
	}
}
