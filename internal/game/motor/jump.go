package motor

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-motor/internal/engine/physics"
	"github.com/Faultbox/midgard-motor/pkg/math"
)

// jumpEpsilon absorbs float32 error from summing fixed ticks, so a jump
// ends on the tick where elapsed time reaches JumpTime.
const jumpEpsilon = 1e-6

// updateJump consumes the jump edge and advances the jump timer. While
// ascending it returns the vertical velocity to hold and true.
func (m *Motor) updateJump(dt float32, in *Input) (float32, bool) {
	s := &m.state
	jc := m.cfg.Jumping

	pressed := in.Jump
	in.Jump = false

	justStarted := false
	if pressed && jc.CanJump {
		switch {
		case s.IsGrounded && s.JumpCount < 1:
			s.JumpCount = 1
			s.IsGrounded = false
			m.startJump()
			justStarted = true
		case jc.CanDoubleJump && s.JumpCount == 1 && (s.IsJumping || !s.IsGrounded):
			s.JumpCount = 2
			m.startJump()
			justStarted = true
		}
	}

	if !s.IsJumping {
		return 0, false
	}

	if !justStarted {
		s.JumpTimeRemaining -= dt
		if s.JumpTimeRemaining <= jumpEpsilon {
			m.endJump()
			return 0, false
		}
	}

	if m.ceilingHit() {
		m.endJump()
		if v := m.body.Velocity(); v.Y > 0 {
			v.Y = 0
			m.body.SetVelocity(v)
		}
		m.log.Debug("jump cut by ceiling", zap.Uint64("tick", s.Tick))
		m.emit(EventCeilingHit)
		return 0, false
	}

	return jc.JumpVelocity, true
}

func (m *Motor) startJump() {
	s := &m.state
	s.IsJumping = true
	s.JumpTimeRemaining = m.cfg.Jumping.JumpTime
	m.setSurface(SurfaceJumping)
	m.log.Debug("jump", zap.Int("count", s.JumpCount), zap.Uint64("tick", s.Tick))
	m.emit(EventJumped)
}

func (m *Motor) endJump() {
	m.state.IsJumping = false
	m.state.JumpTimeRemaining = 0
}

// ceilingHit casts upward from mid-height for (H/2-R)+GroundCheckBuffer.
func (m *Motor) ceilingHit() bool {
	c := m.cfg.Character
	half := c.Height * 0.5
	origin := m.body.Position().Add(math.Up.Scale(half))
	radius := c.Radius + m.cfg.Ceiling.CheckRadiusBuffer
	distance := (half - c.Radius) + m.cfg.Ground.CheckBuffer
	_, ok := m.query.SphereCast(origin, radius, math.Up, distance,
		physics.LayerMask(m.cfg.Ceiling.LayerMask), physics.IgnoreTriggers)
	return ok
}
