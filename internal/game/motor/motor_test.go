package motor

import (
	"errors"
	"testing"

	"github.com/Faultbox/midgard-motor/internal/config"
	"github.com/Faultbox/midgard-motor/internal/engine/physics"
	"github.com/Faultbox/midgard-motor/pkg/math"
)

func TestNewRequiresCollaborators(t *testing.T) {
	valid := config.DefaultMotor()
	body := physics.NewRigidBody(math.Vec3{}, 0)
	cam := &fakeCamera{}
	query := &fakeQuery{}

	tests := []struct {
		name string
		cfg  *config.Motor
		c    Collaborators
		want error
	}{
		{"no config", nil, Collaborators{Body: body, Camera: cam, Query: query}, ErrNoConfig},
		{"no body", &valid, Collaborators{Camera: cam, Query: query}, ErrNoBody},
		{"no camera", &valid, Collaborators{Body: body, Query: query}, ErrNoCamera},
		{"no query", &valid, Collaborators{Body: body, Camera: cam}, ErrNoQuery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.cfg, tt.c)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if m != nil {
				t.Error("expected no motor on spawn failure")
			}
		})
	}
}

func TestNewRejectsInvalidTuning(t *testing.T) {
	cfg := config.DefaultMotor()
	cfg.Character.Height = 0.4
	_, err := New(&cfg, Collaborators{
		Body:   physics.NewRigidBody(math.Vec3{}, 0),
		Camera: &fakeCamera{},
		Query:  &fakeQuery{},
	})
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("expected config.ErrInvalid, got %v", err)
	}
}

func TestInitialState(t *testing.T) {
	h := newHarness(config.DefaultMotor(), &fakeQuery{})
	s := h.motor.State()
	if s.IsGrounded || s.IsRunning || s.IsJumping || s.JumpCount != 0 || s.JumpTimeRemaining != 0 || s.CameraPitch != 0 {
		t.Errorf("expected zero state at spawn, got %+v", s)
	}
	if h.cam.local != math.QuatPitch(0) {
		t.Errorf("expected camera level at spawn, got %+v", h.cam.local)
	}
}

func TestSpawnAppliesDefaultSurface(t *testing.T) {
	surface := &recordingSurface{}
	cfg := config.DefaultMotor()
	_, err := New(&cfg, Collaborators{
		Body:    physics.NewRigidBody(math.Vec3{}, 0),
		Camera:  &fakeCamera{},
		Query:   &fakeQuery{},
		Surface: surface,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if len(surface.profiles) != 1 || surface.profiles[0] != SurfaceDefault {
		t.Errorf("expected [default] at spawn, got %v", surface.profiles)
	}
}

func TestNilInputIsIdle(t *testing.T) {
	h := newHarness(config.DefaultMotor(), &fakeQuery{sphere: groundWithNormal(math.Up)})
	h.motor.AdvancePhysics(tickDT, nil)
	h.motor.AdvancePresentation(tickDT, nil)
	if !h.motor.State().IsGrounded {
		t.Error("expected idle tick to still probe ground")
	}
	if v := h.motor.State().TargetVelocity; v != (math.Vec3{}) {
		t.Errorf("expected zero target without input, got %+v", v)
	}
}

func TestPresentationRotatesBodyAndCamera(t *testing.T) {
	h := newHarness(config.DefaultMotor(), &fakeQuery{})
	in := Input{Look: math.Vec2{X: 9, Y: -3}}

	h.motor.AdvancePresentation(1, &in)

	if !h.body.Rotation().Forward().ApproxEqual(math.Right, 1e-4) {
		t.Errorf("expected body to yaw 90 degrees to +X, got %+v", h.body.Rotation().Forward())
	}
	if got := h.motor.State().CameraPitch; got != 30 {
		t.Errorf("expected pitch 30, got %f", got)
	}
	if h.cam.local != math.QuatPitch(30) {
		t.Errorf("expected camera local rotation from pitch 30, got %+v", h.cam.local)
	}
}

func TestPresentationClampsPitch(t *testing.T) {
	h := newHarness(config.DefaultMotor(), &fakeQuery{})
	for i := 0; i < 100; i++ {
		in := Input{Look: math.Vec2{Y: 5}}
		h.motor.AdvancePresentation(tickDT, &in)
	}
	if got := h.motor.State().CameraPitch; got != h.cfg.Camera.MinPitch {
		t.Errorf("expected pitch clamped to %f, got %f", h.cfg.Camera.MinPitch, got)
	}
}
