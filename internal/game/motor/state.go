package motor

import "github.com/Faultbox/midgard-motor/pkg/math"

// State is the per-character transient state, owned by the Motor.
type State struct {
	IsGrounded        bool
	IsRunning         bool
	IsJumping         bool
	JumpCount         int
	JumpTimeRemaining float32 // seconds
	CameraPitch       float32 // degrees, positive looks down

	// Velocity mirrors the body velocity written on the last tick.
	Velocity math.Vec3
	// TargetVelocity is the velocity the body was steered toward.
	TargetVelocity math.Vec3

	Tick uint64
}
