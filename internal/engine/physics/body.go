package physics

import "github.com/Faultbox/midgard-motor/pkg/math"

// RigidBody is a plain in-memory Body.
type RigidBody struct {
	position math.Vec3
	velocity math.Vec3
	rotation math.Quat
}

// NewRigidBody creates a body at pos facing yaw degrees from +Z.
func NewRigidBody(pos math.Vec3, yaw float32) *RigidBody {
	return &RigidBody{
		position: pos,
		rotation: math.QuatYaw(yaw),
	}
}

func (b *RigidBody) Position() math.Vec3 { return b.position }
func (b *RigidBody) SetPosition(p math.Vec3) { b.position = p }
func (b *RigidBody) Velocity() math.Vec3 { return b.velocity }
func (b *RigidBody) SetVelocity(v math.Vec3) { b.velocity = v }
func (b *RigidBody) Rotation() math.Quat { return b.rotation }

// SetRotation stores q normalized.
func (b *RigidBody) SetRotation(q math.Quat) { b.rotation = q.Normalize() }
