package motor

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-motor/internal/config"
	"github.com/Faultbox/midgard-motor/internal/engine/physics"
	"github.com/Faultbox/midgard-motor/pkg/math"
)

func TestJumpAscendsForJumpTime(t *testing.T) {
	cfg := config.DefaultMotor()
	cfg.Jumping.JumpTime = 0.1
	cfg.Jumping.JumpVelocity = 15
	h := newHarness(cfg, &fakeQuery{sphere: groundWithNormal(math.Up)})
	h.tick(Input{})

	events := h.tick(Input{Jump: true})
	s := h.motor.State()
	if !s.IsJumping || s.IsGrounded || s.JumpCount != 1 {
		t.Fatalf("expected ascending with one jump, got %+v", s)
	}
	if s.TargetVelocity.Y != 15 {
		t.Errorf("expected vertical target 15 on the takeoff tick, got %f", s.TargetVelocity.Y)
	}
	if s.JumpTimeRemaining != 0.1 {
		t.Errorf("expected timer untouched on the takeoff tick, got %f", s.JumpTimeRemaining)
	}
	if countKind(events, EventJumped) != 1 {
		t.Errorf("expected a jumped event, got %v", events)
	}

	// 0.1s at 0.02s per tick: four more powered ticks, then the timer runs out.
	for i := 0; i < 4; i++ {
		h.tick(Input{})
		if s := h.motor.State(); !s.IsJumping || s.TargetVelocity.Y != 15 {
			t.Fatalf("tick %d: expected powered ascent, got %+v", i, s)
		}
	}
	h.tick(Input{})
	s = h.motor.State()
	if s.IsJumping {
		t.Error("expected the jump to end after 0.1s")
	}
	if s.JumpTimeRemaining != 0 {
		t.Errorf("expected timer cleared, got %f", s.JumpTimeRemaining)
	}
	if s.TargetVelocity.Y != -cfg.Falling.FallVelocity {
		t.Errorf("expected unpowered fall at %f, got %f", -cfg.Falling.FallVelocity, s.TargetVelocity.Y)
	}
}

func TestJumpEdgeIsConsumed(t *testing.T) {
	h := newHarness(config.DefaultMotor(), &fakeQuery{sphere: groundWithNormal(math.Up)})
	in := Input{Jump: true}
	h.motor.AdvancePhysics(tickDT, &in)
	if in.Jump {
		t.Error("expected jump edge cleared after the physics tick")
	}
}

func TestJumpCountNeverExceedsMax(t *testing.T) {
	tests := []struct {
		name       string
		doubleJump bool
		max        int
	}{
		{"single", false, 1},
		{"double", true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultMotor()
			cfg.Jumping.CanDoubleJump = tt.doubleJump
			h := newHarness(cfg, &fakeQuery{sphere: groundWithNormal(math.Up)})

			seen := 0
			prev := 0
			for i := 0; i < 200; i++ {
				events := h.tick(Input{Jump: true})
				count := h.motor.State().JumpCount
				if count > tt.max {
					t.Fatalf("tick %d: jump count %d exceeds %d", i, count, tt.max)
				}
				if count < prev && countKind(events, EventGrounded) == 0 {
					t.Fatalf("tick %d: jump count reset without landing", i)
				}
				if count > seen {
					seen = count
				}
				prev = count
			}
			if seen != tt.max {
				t.Errorf("expected to reach %d jumps, got %d", tt.max, seen)
			}
		})
	}
}

func TestDoubleJumpResetsTimer(t *testing.T) {
	h := newHarness(config.DefaultMotor(), &fakeQuery{sphere: groundWithNormal(math.Up)})
	h.tick(Input{})
	h.tick(Input{Jump: true})
	h.tick(Input{})
	h.tick(Input{})

	events := h.tick(Input{Jump: true})
	s := h.motor.State()
	if s.JumpCount != 2 {
		t.Fatalf("expected double jump, got count %d", s.JumpCount)
	}
	if s.JumpTimeRemaining != h.cfg.Jumping.JumpTime {
		t.Errorf("expected timer reset to %f, got %f", h.cfg.Jumping.JumpTime, s.JumpTimeRemaining)
	}
	if countKind(events, EventJumped) != 1 {
		t.Errorf("expected a jumped event for the double jump, got %v", events)
	}
}

func TestDoubleJumpAfterAscentEnds(t *testing.T) {
	q := &fakeQuery{sphere: groundWithNormal(math.Up)}
	h := newHarness(config.DefaultMotor(), q)
	h.tick(Input{})
	h.tick(Input{Jump: true})
	q.sphere = nil // ground falls away
	for h.motor.State().IsJumping {
		h.tick(Input{})
	}

	h.tick(Input{Jump: true})
	if s := h.motor.State(); s.JumpCount != 2 || !s.IsJumping {
		t.Errorf("expected a double jump while falling, got %+v", s)
	}
}

func TestNoJumpWhenAirborneWithoutTakeoff(t *testing.T) {
	h := newHarness(config.DefaultMotor(), &fakeQuery{})
	for i := 0; i < 3; i++ {
		h.tick(Input{Jump: true})
	}
	if s := h.motor.State(); s.IsJumping || s.JumpCount != 0 {
		t.Errorf("expected jump ignored after walking off a ledge, got %+v", s)
	}
}

func TestCanJumpDisabled(t *testing.T) {
	cfg := config.DefaultMotor()
	cfg.Jumping.CanJump = false
	h := newHarness(cfg, &fakeQuery{sphere: groundWithNormal(math.Up)})
	h.tick(Input{})
	h.tick(Input{Jump: true})
	if s := h.motor.State(); s.IsJumping || !s.IsGrounded {
		t.Errorf("expected jump ignored with CanJump off, got %+v", s)
	}
}

func TestCeilingEndsJump(t *testing.T) {
	q := &fakeQuery{sphere: groundWithNormal(math.Up)}
	h := newHarness(config.DefaultMotor(), q)
	h.tick(Input{})
	h.tick(Input{Jump: true})

	q.sphere = func(c cast) (physics.Hit, bool) {
		if c.dir == math.Up {
			return physics.Hit{Normal: math.Down, Collider: "ceiling"}, true
		}
		return physics.Hit{}, false
	}
	h.body.SetVelocity(math.Vec3{Y: 5})

	events := h.tick(Input{})
	s := h.motor.State()
	if s.IsJumping || s.JumpTimeRemaining != 0 {
		t.Errorf("expected ceiling to end the jump, got %+v", s)
	}
	if countKind(events, EventCeilingHit) != 1 {
		t.Errorf("expected a ceiling event, got %v", events)
	}
	if v := h.body.Velocity(); v.Y > 0 {
		t.Errorf("expected no upward velocity after the ceiling hit, got %f", v.Y)
	}

	up := q.spheres[len(q.spheres)-1]
	if up.dir != math.Up {
		t.Fatalf("expected last cast to be the ceiling probe, got %+v", up)
	}
	if math32.Abs(up.radius-0.35) > 1e-6 || math32.Abs(up.distance-0.7) > 1e-6 {
		t.Errorf("expected ceiling probe radius 0.35 and distance 0.7, got %f and %f", up.radius, up.distance)
	}
}

func TestJumpSwitchesSurface(t *testing.T) {
	surface := &recordingSurface{}
	q := &fakeQuery{sphere: groundWithNormal(math.Up)}
	cfg := config.DefaultMotor()
	m, err := New(&cfg, Collaborators{
		Body:    physics.NewRigidBody(math.Vec3{}, 0),
		Camera:  &fakeCamera{},
		Query:   q,
		Surface: surface,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	m.AdvancePhysics(tickDT, &Input{})
	m.AdvancePhysics(tickDT, &Input{Jump: true})
	for m.State().JumpTimeRemaining > 0 {
		m.AdvancePhysics(tickDT, &Input{})
	}
	m.AdvancePhysics(tickDT, &Input{})

	want := []SurfaceProfile{SurfaceDefault, SurfaceJumping, SurfaceDefault}
	if len(surface.profiles) != len(want) {
		t.Fatalf("expected profiles %v, got %v", want, surface.profiles)
	}
	for i := range want {
		if surface.profiles[i] != want[i] {
			t.Errorf("profile %d: expected %v, got %v", i, want[i], surface.profiles[i])
		}
	}
}
