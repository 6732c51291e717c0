package physics

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-motor/pkg/math"
)

// Axis indices into mgl32.Vec3.
const (
	axisX = 0
	axisY = 1
	axisZ = 2
)

const clipEpsilon = 1e-5

// BodyBox returns the axis-aligned box enclosing a capsule standing at base.
func BodyBox(base math.Vec3, height, radius float32) cube.BBox {
	return cube.Box(
		base.X-radius, base.Y, base.Z-radius,
		base.X+radius, base.Y+height, base.Z+radius,
	)
}

// Step advances b by its velocity over dt, clipping movement against solid
// boxes one axis at a time (Y, then X, then Z). Velocity on a clipped axis is
// zeroed. A body whose footprint overlaps a ramp is held on the ramp's
// highest point under it, both where it is headed and where it ends up.
func (s *Scene) Step(b Body, height, radius, dt float32) {
	vel := b.Velocity()
	delta := vel.Scale(dt).Mgl()
	pos := b.Position()

	var lift float32
	if support, ok := s.rampSupport(pos.Add(math.FromMgl(delta).Horizontal()), radius); ok && support > pos.Y {
		lift = support - pos.Y
		if vel.Y < 0 {
			vel.Y = 0
			delta[axisY] = 0
		}
	}
	moving := BodyBox(pos.Add(math.Up.Scale(lift)), height, radius)

	// Broadphase over everything the swept box could touch.
	swept := sweep(moving, delta)
	var nearby []cube.BBox
	for i := range s.colliders {
		c := &s.colliders[i]
		if c.Trigger || !swept.IntersectsWith(c.Box) {
			continue
		}
		nearby = append(nearby, c.Box)
	}

	moved := mgl32.Vec3{0, lift, 0}
	for _, axis := range [3]int{axisY, axisX, axisZ} {
		d := delta[axis]
		for _, bb := range nearby {
			d = clipAxis(bb, moving, axis, d)
		}
		var offset mgl32.Vec3
		offset[axis] = d
		moving = moving.Translate(offset)
		moved[axis] += d

		if math32.Abs(d-delta[axis]) > clipEpsilon {
			switch axis {
			case axisX:
				vel.X = 0
			case axisY:
				vel.Y = 0
			case axisZ:
				vel.Z = 0
			}
		}
	}

	pos = pos.Add(math.FromMgl(moved))
	if support, ok := s.rampSupport(pos, radius); ok && pos.Y < support {
		pos.Y = support
		if vel.Y < 0 {
			vel.Y = 0
		}
	}

	b.SetPosition(pos)
	b.SetVelocity(vel)
}

// rampSupport returns the highest ramp surface under a body footprint of
// the given radius centred on base. Ramps whose bottom is above base are
// ignored.
func (s *Scene) rampSupport(base math.Vec3, radius float32) (float32, bool) {
	var best float32
	found := false
	for i := range s.ramps {
		r := &s.ramps[i]
		if base.Y < r.Min.Y-clipEpsilon {
			continue
		}
		h, ok := r.maxHeightOver(base.X-radius, base.Z-radius, base.X+radius, base.Z+radius)
		if !ok {
			continue
		}
		if !found || h > best {
			best = h
			found = true
		}
	}
	return best, found
}

// clipAxis limits the movement d of moving along axis so it stops at the
// face of stationary.
func clipAxis(stationary, moving cube.BBox, axis int, d float32) float32 {
	for other := 0; other < 3; other++ {
		if other == axis {
			continue
		}
		if moving.Max()[other] <= stationary.Min()[other]+clipEpsilon ||
			moving.Min()[other] >= stationary.Max()[other]-clipEpsilon {
			return d
		}
	}

	if d > 0 && moving.Max()[axis] <= stationary.Min()[axis]+clipEpsilon {
		if gap := stationary.Min()[axis] - moving.Max()[axis]; gap < d {
			d = math32.Max(gap, 0)
		}
	} else if d < 0 && moving.Min()[axis] >= stationary.Max()[axis]-clipEpsilon {
		if gap := stationary.Max()[axis] - moving.Min()[axis]; gap > d {
			d = math32.Min(gap, 0)
		}
	}
	return d
}

func sweep(bb cube.BBox, delta mgl32.Vec3) cube.BBox {
	lo, hi := bb.Min(), bb.Max()
	end := bb.Translate(delta)
	elo, ehi := end.Min(), end.Max()
	return cube.Box(
		math32.Min(lo[0], elo[0]), math32.Min(lo[1], elo[1]), math32.Min(lo[2], elo[2]),
		math32.Max(hi[0], ehi[0]), math32.Max(hi[1], ehi[1]), math32.Max(hi[2], ehi[2]),
	).Grow(clipEpsilon)
}
