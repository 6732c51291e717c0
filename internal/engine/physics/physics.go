// Package physics defines the collision query and rigid body collaborators a
// character motor drives, plus a small static scene that implements them.
package physics

import "github.com/Faultbox/midgard-motor/pkg/math"

// LayerMask selects collision layers by bit.
type LayerMask uint32

// AllLayers matches every layer.
const AllLayers LayerMask = ^LayerMask(0)

// Layer returns the mask containing only layer n.
func Layer(n int) LayerMask {
	return 1 << uint(n)
}

// Has reports whether layer n is in the mask.
func (m LayerMask) Has(n int) bool {
	return m&Layer(n) != 0
}

// TriggerInteraction controls whether casts report trigger volumes.
type TriggerInteraction uint8

const (
	IgnoreTriggers TriggerInteraction = iota
	CollideTriggers
)

// Hit describes the first contact of a cast.
type Hit struct {
	Point    math.Vec3 // contact point on the surface
	Normal   math.Vec3 // surface normal at the contact, unit length
	Distance float32   // distance travelled by the cast origin
	Collider string
	Layer    int
	Trigger  bool
}

// Query is a synchronous, side-effect free view of the collision world.
// Directions need not be normalized. Colliders overlapping the origin when
// the cast starts are ignored.
type Query interface {
	SphereCast(origin math.Vec3, radius float32, dir math.Vec3, maxDistance float32, mask LayerMask, triggers TriggerInteraction) (Hit, bool)
	RayCast(origin, dir math.Vec3, maxDistance float32, mask LayerMask, triggers TriggerInteraction) (Hit, bool)
}

// Body is the rigid body a motor writes to. Position is the capsule base.
type Body interface {
	Position() math.Vec3
	SetPosition(math.Vec3)
	Velocity() math.Vec3
	SetVelocity(math.Vec3)
	Rotation() math.Quat
	SetRotation(math.Quat)
}
