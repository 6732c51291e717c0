package motor

import (
	"github.com/Faultbox/midgard-motor/internal/config"
	"github.com/Faultbox/midgard-motor/internal/engine/physics"
	"github.com/Faultbox/midgard-motor/pkg/math"
)

type cast struct {
	origin   math.Vec3
	radius   float32
	dir      math.Vec3
	distance float32
	mask     physics.LayerMask
	triggers physics.TriggerInteraction
}

// fakeQuery answers casts from callbacks and records every call.
type fakeQuery struct {
	sphere func(cast) (physics.Hit, bool)
	ray    func(cast) (physics.Hit, bool)

	spheres []cast
	rays    []cast
}

func (q *fakeQuery) SphereCast(origin math.Vec3, radius float32, dir math.Vec3, maxDistance float32, mask physics.LayerMask, triggers physics.TriggerInteraction) (physics.Hit, bool) {
	c := cast{origin, radius, dir, maxDistance, mask, triggers}
	q.spheres = append(q.spheres, c)
	if q.sphere == nil {
		return physics.Hit{}, false
	}
	return q.sphere(c)
}

func (q *fakeQuery) RayCast(origin, dir math.Vec3, maxDistance float32, mask physics.LayerMask, triggers physics.TriggerInteraction) (physics.Hit, bool) {
	c := cast{origin, 0, dir, maxDistance, mask, triggers}
	q.rays = append(q.rays, c)
	if q.ray == nil {
		return physics.Hit{}, false
	}
	return q.ray(c)
}

func (q *fakeQuery) downSpheres() int {
	n := 0
	for _, c := range q.spheres {
		if c.dir == math.Down {
			n++
		}
	}
	return n
}

// groundWithNormal makes every downward sphere cast hit a surface with normal n.
func groundWithNormal(n math.Vec3) func(cast) (physics.Hit, bool) {
	return func(c cast) (physics.Hit, bool) {
		if c.dir != math.Down {
			return physics.Hit{}, false
		}
		return physics.Hit{Normal: n.Normalize(), Distance: c.distance / 2, Collider: "ground"}, true
	}
}

type fakeCamera struct {
	local    math.Quat
	position math.Vec3
	forward  math.Vec3
}

func (c *fakeCamera) SetLocalRotation(q math.Quat) { c.local = q }
func (c *fakeCamera) WorldPosition() math.Vec3 { return c.position }
func (c *fakeCamera) Forward() math.Vec3 { return c.forward }

type recordingSurface struct {
	profiles []SurfaceProfile
}

func (s *recordingSurface) SetSurfaceProfile(p SurfaceProfile) {
	s.profiles = append(s.profiles, p)
}

type recordingInteractor struct {
	got []Interaction
}

func (r *recordingInteractor) Interact(i Interaction) {
	r.got = append(r.got, i)
}

type harness struct {
	cfg   *config.Motor
	body  *physics.RigidBody
	cam   *fakeCamera
	query *fakeQuery
	motor *Motor
}

const tickDT = 0.02

func newHarness(cfg config.Motor, q *fakeQuery) *harness {
	h := &harness{
		cfg:   &cfg,
		body:  physics.NewRigidBody(math.Vec3{}, 0),
		cam:   &fakeCamera{forward: math.Forward},
		query: q,
	}
	m, err := New(h.cfg, Collaborators{Body: h.body, Camera: h.cam, Query: h.query})
	if err != nil {
		panic(err)
	}
	h.motor = m
	return h
}

func (h *harness) tick(in Input) []Event {
	return h.motor.AdvancePhysics(tickDT, &in)
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
