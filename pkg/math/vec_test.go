package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	got := Vec2{3, 4}.Normalize()
	if math32.Abs(got.X-0.6) > 1e-6 || math32.Abs(got.Y-0.8) > 1e-6 {
		t.Errorf("Vec2.Normalize() = %v, want {0.6 0.8}", got)
	}
	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Errorf("Vec2{}.Normalize() = %v, want zero", z)
	}
}

func TestVec2ClampAxes(t *testing.T) {
	got := Vec2{3, -4}.ClampAxes()
	want := Vec2{1, -1}
	if got != want {
		t.Errorf("Vec2.ClampAxes() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero", got)
	}
}

func TestProjectOnPlane(t *testing.T) {
	tests := []struct {
		name string
		v, n Vec3
		want Vec3
	}{
		{"flat ground keeps horizontal", Vec3{3, 0, 4}, Up, Vec3{3, 0, 4}},
		{"flat ground removes vertical", Vec3{1, 5, 0}, Up, Vec3{1, 0, 0}},
		{"unnormalized normal", Vec3{1, 5, 0}, Vec3{0, 2, 0}, Vec3{1, 0, 0}},
		{"zero normal", Vec3{1, 2, 3}, Vec3{}, Vec3{1, 2, 3}},
		{"zero vector", Vec3{}, Vec3{0.3, 0.9, 0}, Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectOnPlane(tt.v, tt.n)
			if !got.ApproxEqual(tt.want, 1e-5) {
				t.Errorf("ProjectOnPlane(%v, %v) = %v, want %v", tt.v, tt.n, got, tt.want)
			}
		})
	}
}

func TestProjectOnSlopeIsTangent(t *testing.T) {
	n := Vec3{0, 1, -1}.Normalize()
	got := ProjectOnPlane(Vec3{0, 0, 10}, n)
	if d := got.Dot(n); d > 1e-4 || d < -1e-4 {
		t.Errorf("projected vector not tangent, dot = %v", d)
	}
	if got.Y <= 0 {
		t.Errorf("expected uphill component, got %v", got)
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		a, b Vec3
		want float32
	}{
		{Up, Up, 0},
		{Up, Right, 90},
		{Up, Down, 180},
		{Up, Vec3{0, 1, 1}, 45},
		{Up, Vec3{}, 0},
	}
	for _, tt := range tests {
		got := Angle(tt.a, tt.b)
		if got < tt.want-0.01 || got > tt.want+0.01 {
			t.Errorf("Angle(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMoveTowards(t *testing.T) {
	got := MoveTowards(Vec3{}, Vec3{10, 0, 0}, 1)
	if got != (Vec3{1, 0, 0}) {
		t.Errorf("MoveTowards step = %v, want (1,0,0)", got)
	}

	got = MoveTowards(Vec3{9.5, 0, 0}, Vec3{10, 0, 0}, 1)
	if got != (Vec3{10, 0, 0}) {
		t.Errorf("MoveTowards should land exactly on target, got %v", got)
	}

	got = MoveTowards(Vec3{0, 0, 0}, Vec3{3, 0, 4}, 2.5)
	want := Vec3{1.5, 0, 2}
	if !got.ApproxEqual(want, 1e-5) {
		t.Errorf("MoveTowards diagonal = %v, want %v", got, want)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, -1, 1) != 1 || Clamp(-5, -1, 1) != -1 || Clamp(0.5, -1, 1) != 0.5 {
		t.Error("Clamp returned a value outside its range")
	}
}
