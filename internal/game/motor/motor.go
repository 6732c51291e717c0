// Package motor implements a first-person character motor. Each fixed tick
// the host calls AdvancePhysics, which classifies ground contact, updates
// running, runs the jump state machine, steers the body velocity and
// resolves steps. After all physics for the frame, the host calls
// AdvancePresentation, which integrates look input into body yaw and camera
// pitch and forwards action presses.
package motor

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-motor/internal/config"
	"github.com/Faultbox/midgard-motor/internal/engine/camera"
	"github.com/Faultbox/midgard-motor/internal/engine/physics"
	"github.com/Faultbox/midgard-motor/pkg/math"
)

// Camera is the view transform the motor drives. Its local rotation is
// relative to the body.
type Camera interface {
	SetLocalRotation(math.Quat)
	WorldPosition() math.Vec3
	Forward() math.Vec3
}

// Collaborators are the systems a Motor drives. Body, Camera and Query are
// required.
type Collaborators struct {
	Body       physics.Body
	Camera     Camera
	Query      physics.Query
	Surface    SurfaceProfiler
	Interactor Interactor
	Logger     *zap.Logger
}

// Motor is the locomotion controller for one character. It is not safe for
// concurrent use; the config it was created with may be shared.
type Motor struct {
	cfg        *config.Motor
	body       physics.Body
	cam        Camera
	query      physics.Query
	surface    SurfaceProfiler
	interactor Interactor
	log        *zap.Logger

	look    *camera.FirstPerson
	state   State
	profile SurfaceProfile

	pending     []Event
	subscribers *orderedmap.OrderedMap[SubscriptionID, func(Event)]
	nextSub     SubscriptionID
}

// New spawns a motor. Missing required collaborators or invalid tuning are
// fatal.
func New(cfg *config.Motor, c Collaborators) (*Motor, error) {
	if cfg == nil {
		return nil, ErrNoConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("motor: %w", err)
	}
	switch {
	case c.Body == nil:
		return nil, ErrNoBody
	case c.Camera == nil:
		return nil, ErrNoCamera
	case c.Query == nil:
		return nil, ErrNoQuery
	}

	log := c.Logger
	if log == nil {
		log = zap.NewNop()
	}

	m := &Motor{
		cfg:         cfg,
		body:        c.Body,
		cam:         c.Camera,
		query:       c.Query,
		surface:     c.Surface,
		interactor:  c.Interactor,
		log:         log,
		look:        camera.NewFirstPerson(cfg.Camera),
		profile:     SurfaceDefault,
		subscribers: newRegistry(),
	}
	m.cam.SetLocalRotation(m.look.LocalRotation())
	if m.surface != nil {
		m.surface.SetSurfaceProfile(SurfaceDefault)
	}

	log.Debug("motor spawned",
		zap.Float32("height", cfg.Character.Height),
		zap.Float32("radius", cfg.Character.Radius),
		zap.Int("max_jumps", cfg.MaxJumpCount()),
	)
	return m, nil
}

// AdvancePhysics runs one fixed physics tick and returns the transitions it
// produced. Subscribers have been notified by the time it returns.
func (m *Motor) AdvancePhysics(dt float32, in *Input) []Event {
	if in == nil {
		in = &Input{}
	}
	s := &m.state
	s.Tick++
	m.pending = nil
	wasRunning := s.IsRunning

	contact := m.updateGrounded()
	m.updateRunning(in)
	vertical, ascending := m.updateJump(dt, in)

	target := m.targetVelocity(in, contact)
	if ascending {
		target.Y = vertical
	}
	vel := math.MoveTowards(m.body.Velocity(), target, m.cfg.Movement.Acceleration)
	m.body.SetVelocity(vel)
	s.Velocity = vel
	s.TargetVelocity = target

	m.stepUp(target)

	if s.IsRunning != wasRunning {
		m.log.Debug("running changed", zap.Bool("running", s.IsRunning), zap.Uint64("tick", s.Tick))
		m.emit(EventRunningChanged)
	}

	m.dispatch()
	return m.pending
}

// AdvancePresentation integrates look input and forwards action presses.
// Call it once per frame after every AdvancePhysics for that frame.
func (m *Motor) AdvancePresentation(dt float32, in *Input) {
	if in == nil {
		return
	}
	m.body.SetRotation(m.look.Yaw(m.body.Rotation(), in.Look.X, dt))
	m.cam.SetLocalRotation(m.look.AddPitch(in.Look.Y, dt))
	m.state.CameraPitch = m.look.Pitch

	m.forwardInteraction(in)
}

// State returns a copy of the motor state.
func (m *Motor) State() State {
	return m.state
}

// Config returns the tuning the motor was spawned with.
func (m *Motor) Config() *config.Motor {
	return m.cfg
}

// Body returns the driven body.
func (m *Motor) Body() physics.Body {
	return m.body
}
