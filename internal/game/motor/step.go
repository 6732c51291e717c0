package motor

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-motor/internal/engine/physics"
	"github.com/Faultbox/midgard-motor/pkg/math"
)

// stepUp looks ahead along the horizontal part of target for a ledge no
// taller than MaxStepHeight and snaps the body onto it. Three rays: a low
// one at half step height must hit, a high one at full step height must
// miss, and a downward one from past the obstacle must land on walkable
// ground.
func (m *Motor) stepUp(target math.Vec3) {
	s := &m.state
	if !s.IsGrounded || s.IsJumping {
		return
	}
	dir := target.Horizontal().Normalize()
	if dir.LengthSqr() == 0 {
		return
	}

	st := m.cfg.Step
	mask := physics.LayerMask(m.cfg.Ground.LayerMask)
	reach := m.cfg.Character.Radius + st.LookAheadRange
	pos := m.body.Position()

	low := pos.Add(math.Up.Scale(st.MaxStepHeight * 0.5))
	if _, ok := m.query.RayCast(low, dir, reach, mask, physics.IgnoreTriggers); !ok {
		return
	}

	high := pos.Add(math.Up.Scale(st.MaxStepHeight))
	if _, ok := m.query.RayCast(high, dir, reach, mask, physics.IgnoreTriggers); ok {
		return
	}

	tread, ok := m.query.RayCast(high.Add(dir.Scale(reach)), math.Down, 2*st.MaxStepHeight, mask, physics.IgnoreTriggers)
	if !ok || math.Angle(math.Up, tread.Normal) > m.cfg.Movement.SlopeLimit {
		return
	}

	m.body.SetPosition(tread.Point)
	m.log.Debug("stepped up",
		zap.Float32("rise", tread.Point.Y-pos.Y),
		zap.Uint64("tick", s.Tick),
	)
	m.emit(EventSteppedUp)
}
