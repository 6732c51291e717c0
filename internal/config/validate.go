package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalid(field, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, field, reason)
}

// Validate checks the tuning record for values the motor cannot run with.
func (m *Motor) Validate() error {
	var errs []error
	check := func(ok bool, field, reason string) {
		if !ok {
			errs = append(errs, invalid(field, reason))
		}
	}

	c := m.Character
	check(c.Radius > 0, "motor.character.radius", "must be positive")
	check(c.Height > 2*c.Radius, "motor.character.height", "must exceed 2*radius")

	check(m.Ground.CheckBuffer >= 0, "motor.ground.check_buffer", "must not be negative")
	check(m.Ground.CheckRadiusBuffer >= 0, "motor.ground.check_radius_buffer", "must not be negative")
	check(m.Ceiling.CheckRadiusBuffer >= 0, "motor.ceiling.check_radius_buffer", "must not be negative")

	check(m.Step.LookAheadRange >= 0, "motor.step.look_ahead_range", "must not be negative")
	check(m.Step.MaxStepHeight >= 0, "motor.step.max_step_height", "must not be negative")
	check(m.Step.MaxStepHeight < c.Height, "motor.step.max_step_height", "must be below character height")

	cam := m.Camera
	check(cam.MinPitch <= cam.MaxPitch, "motor.camera.min_pitch", "must not exceed max_pitch")
	check(cam.MinPitch >= -90 && cam.MaxPitch <= 90, "motor.camera.max_pitch", "pitch range must lie within [-90, 90]")

	mv := m.Movement
	check(mv.WalkSpeed >= 0, "motor.movement.walk_speed", "must not be negative")
	check(mv.RunSpeed >= 0, "motor.movement.run_speed", "must not be negative")
	check(mv.SlopeLimit >= 0 && mv.SlopeLimit <= 90, "motor.movement.slope_limit", "must lie within [0, 90]")
	check(mv.Acceleration > 0, "motor.movement.acceleration", "must be positive")

	check(m.Falling.FallVelocity >= 0, "motor.falling.fall_velocity", "must not be negative")
	check(m.AirControl.MaxSpeed >= 0, "motor.air_control.max_speed", "must not be negative")
	check(m.Jumping.JumpTime >= 0, "motor.jumping.jump_time", "must not be negative")
	check(m.Interaction.MaxDistance >= 0, "motor.interaction.max_distance", "must not be negative")

	return errors.Join(errs...)
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Motor.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Sim.TickRate <= 0 {
		errs = append(errs, invalid("sim.tick_rate", "must be positive"))
	}
	if c.Sim.MaxStepsPerFrame <= 0 {
		errs = append(errs, invalid("sim.max_steps_per_frame", "must be positive"))
	}
	return errors.Join(errs...)
}
