package camera

import "github.com/Faultbox/midgard-motor/pkg/math"

// Mount is anything a camera can ride on.
type Mount interface {
	Position() math.Vec3
	Rotation() math.Quat
}

// Rig is a camera transform parented to a mount at eye height.
type Rig struct {
	mount     Mount
	local     math.Quat
	EyeHeight float32
}

// NewRig creates a rig on mount.
func NewRig(mount Mount, eyeHeight float32) *Rig {
	return &Rig{
		mount:     mount,
		local:     math.QuatIdentity(),
		EyeHeight: eyeHeight,
	}
}

// SetLocalRotation sets the rotation relative to the mount.
func (r *Rig) SetLocalRotation(q math.Quat) {
	r.local = q
}

// LocalRotation returns the rotation relative to the mount.
func (r *Rig) LocalRotation() math.Quat {
	return r.local
}

// WorldRotation returns the mount rotation combined with the local rotation.
func (r *Rig) WorldRotation() math.Quat {
	return r.mount.Rotation().Mul(r.local)
}

// WorldPosition returns the eye position in world space.
func (r *Rig) WorldPosition() math.Vec3 {
	return r.mount.Position().Add(math.Up.Scale(r.EyeHeight))
}

// Forward returns the world-space look direction.
func (r *Rig) Forward() math.Vec3 {
	return r.WorldRotation().Forward()
}

// ViewMatrix returns the view matrix for the rig.
func (r *Rig) ViewMatrix() math.Mat4 {
	eye := r.WorldPosition()
	up := r.WorldRotation().Rotate(math.Up)
	return math.LookAt(eye, eye.Add(r.Forward()), up)
}
