package motor

import "github.com/Faultbox/midgard-motor/pkg/math"

// updateRunning applies the run input. Running needs ground and CanRun. In
// toggle mode a press latches running on; in hold mode running follows the
// key.
func (m *Motor) updateRunning(in *Input) {
	s := &m.state
	mv := m.cfg.Movement

	pressed := in.Run
	if mv.IsRunToggle {
		in.Run = false
	}

	if !s.IsGrounded || !mv.CanRun {
		s.IsRunning = false
		return
	}

	if mv.IsRunToggle {
		if pressed {
			s.IsRunning = true
		}
	} else {
		s.IsRunning = pressed
	}
}

// CurrentMaxSpeed returns the horizontal speed the motor steers toward at
// full input in its current state.
func (m *Motor) CurrentMaxSpeed() float32 {
	if !m.state.IsGrounded {
		if !m.cfg.AirControl.CanAirControl {
			return 0
		}
		return m.cfg.AirControl.MaxSpeed
	}
	if m.state.IsRunning {
		return m.cfg.Movement.RunSpeed
	}
	return m.cfg.Movement.WalkSpeed
}

// targetVelocity builds the velocity the body should move toward this tick,
// before any jump override.
func (m *Motor) targetVelocity(in *Input, contact GroundContact) math.Vec3 {
	s := &m.state
	move := in.Move.ClampAxes()
	if move.Length() < math.Epsilon {
		s.IsRunning = false
	}

	rot := m.body.Rotation()
	target := rot.Forward().Scale(move.Y).
		Add(rot.Right().Scale(move.X)).
		Scale(m.CurrentMaxSpeed())

	if s.IsGrounded {
		target = math.ProjectOnPlane(target, contact.Normal)
		// Uphill on a surface steeper than the limit.
		if target.Y > 0 && math.Angle(math.Up, contact.Normal) > m.cfg.Movement.SlopeLimit {
			target = math.Vec3{}
		}
	} else {
		target.Y -= m.cfg.Falling.FallVelocity
	}
	return target
}
