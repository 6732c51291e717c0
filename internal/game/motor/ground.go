package motor

import (
	"github.com/Faultbox/midgard-motor/internal/engine/physics"
	"github.com/Faultbox/midgard-motor/pkg/math"
)

// GroundContact is the result of one ground probe. It is only valid for the
// tick that produced it.
type GroundContact struct {
	Hit      bool
	Point    math.Vec3
	Normal   math.Vec3
	Distance float32
}

// groundProbe returns the sphere cast used to find ground under a capsule
// standing at base: origin at mid-height, radius R+radiusBuffer, distance
// (H/2-R)+buffer.
func (m *Motor) groundProbe(base math.Vec3) (origin math.Vec3, radius, distance float32) {
	c := m.cfg.Character
	half := c.Height * 0.5
	origin = base.Add(math.Up.Scale(half))
	radius = c.Radius + m.cfg.Ground.CheckRadiusBuffer
	distance = (half - c.Radius) + m.cfg.Ground.CheckBuffer
	return origin, radius, distance
}

// updateGrounded probes for ground and updates IsGrounded. Landing resets the
// jump count, restores the default surface and emits EventGrounded.
func (m *Motor) updateGrounded() GroundContact {
	s := &m.state
	if s.JumpTimeRemaining > 0 {
		s.IsGrounded = false
		return GroundContact{}
	}

	origin, radius, distance := m.groundProbe(m.body.Position())
	hit, ok := m.query.SphereCast(origin, radius, math.Down, distance,
		physics.LayerMask(m.cfg.Ground.LayerMask), physics.IgnoreTriggers)
	if !ok {
		s.IsGrounded = false
		return GroundContact{}
	}

	if !s.IsGrounded {
		s.IsGrounded = true
		s.JumpCount = 0
		m.setSurface(SurfaceDefault)
		m.log.Debug("grounded")
		m.emit(EventGrounded)
	}
	return GroundContact{
		Hit:      true,
		Point:    hit.Point,
		Normal:   hit.Normal,
		Distance: hit.Distance,
	}
}
