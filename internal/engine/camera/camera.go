// Package camera provides first-person look control and a camera rig
// mounted on a character body.
package camera

import (
	"github.com/Faultbox/midgard-motor/internal/config"
	"github.com/Faultbox/midgard-motor/pkg/math"
)

// FirstPerson turns look input into body yaw and a clamped camera pitch.
// Angles are in degrees; positive pitch looks down.
type FirstPerson struct {
	Pitch float32

	// Sensitivity in degrees per unit of look input per second
	HorizontalSensitivity float32
	VerticalSensitivity   float32

	// Constraints
	MinPitch float32
	MaxPitch float32

	InvertY bool
}

// NewFirstPerson creates a look controller from camera settings.
func NewFirstPerson(cfg config.CameraConfig) *FirstPerson {
	return &FirstPerson{
		HorizontalSensitivity: cfg.HorizontalSensitivity,
		VerticalSensitivity:   cfg.VerticalSensitivity,
		MinPitch:              cfg.MinPitch,
		MaxPitch:              cfg.MaxPitch,
		InvertY:               cfg.InvertY,
	}
}

// Yaw rotates body about its local up axis by lookX.
func (c *FirstPerson) Yaw(body math.Quat, lookX, dt float32) math.Quat {
	delta := lookX * c.HorizontalSensitivity * dt
	if delta == 0 {
		return body
	}
	return body.Mul(math.QuatYaw(delta)).Normalize()
}

// AddPitch advances the accumulated pitch by lookY and returns the camera's
// local rotation, built from the clamped absolute pitch.
func (c *FirstPerson) AddPitch(lookY, dt float32) math.Quat {
	sign := float32(-1)
	if c.InvertY {
		sign = 1
	}
	c.Pitch = math.Clamp(c.Pitch+lookY*c.VerticalSensitivity*dt*sign, c.MinPitch, c.MaxPitch)
	return c.LocalRotation()
}

// LocalRotation returns the camera rotation relative to the body.
func (c *FirstPerson) LocalRotation() math.Quat {
	return math.QuatPitch(c.Pitch)
}
