package math

import (
	"testing"
)

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTransformVec3(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformVec3(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 1.6, 5}
	m := LookAt(eye, eye.Add(Forward), Up)

	got := m.TransformVec3(eye)
	if !got.ApproxEqual(Vec3{}, 1e-5) {
		t.Errorf("LookAt should map eye to origin, got %v", got)
	}

	// A point in front of the eye lands on the -Z view axis.
	ahead := m.TransformVec3(eye.Add(Forward.Scale(2)))
	if !ahead.ApproxEqual(Vec3{0, 0, -2}, 1e-5) {
		t.Errorf("point ahead = %v, want (0,0,-2)", ahead)
	}
}
