package scenario

import (
	"context"

	"github.com/elliotchance/orderedmap/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-motor/internal/engine/camera"
	"github.com/Faultbox/midgard-motor/internal/engine/physics"
	"github.com/Faultbox/midgard-motor/internal/game/motor"
	"github.com/Faultbox/midgard-motor/pkg/math"
)

// Frame is the observable state after one tick.
type Frame struct {
	Tick         uint64
	Position     math.Vec3
	Velocity     math.Vec3
	Grounded     bool
	Running      bool
	Jumping      bool
	JumpCount    int
	Pitch        float32
	Surface      motor.SurfaceProfile
	Events       []motor.Event
	Interactions []motor.Interaction
}

// Fields returns the frame as ordered key/value pairs for trace output.
func (f Frame) Fields() *orderedmap.OrderedMap[string, any] {
	m := orderedmap.NewOrderedMap[string, any]()
	m.Set("tick", f.Tick)
	m.Set("x", f.Position.X)
	m.Set("y", f.Position.Y)
	m.Set("z", f.Position.Z)
	m.Set("vx", f.Velocity.X)
	m.Set("vy", f.Velocity.Y)
	m.Set("vz", f.Velocity.Z)
	m.Set("grounded", f.Grounded)
	m.Set("running", f.Running)
	m.Set("jumping", f.Jumping)
	m.Set("jumps", f.JumpCount)
	m.Set("pitch", f.Pitch)
	m.Set("surface", f.Surface.String())
	for _, ev := range f.Events {
		key := "event." + ev.Kind.String()
		n, _ := m.Get(key)
		count, _ := n.(int)
		m.Set(key, count+1)
	}
	for _, in := range f.Interactions {
		m.Set("interact."+in.Action.String(), in.Hit.Collider)
	}
	return m
}

// ZapFields converts Fields for structured logging.
func (f Frame) ZapFields() []zap.Field {
	m := f.Fields()
	fields := make([]zap.Field, 0, m.Len())
	for el := m.Front(); el != nil; el = el.Next() {
		fields = append(fields, zap.Any(el.Key, el.Value))
	}
	return fields
}

// Runner plays a scenario one tick at a time: physics, then the body
// integrator, then presentation.
type Runner struct {
	sc    *Scenario
	scene *physics.Scene
	body  *physics.RigidBody
	rig   *camera.Rig
	motor *motor.Motor
	dt    float32
	tick  int

	surface      motor.SurfaceProfile
	interactions []motor.Interaction
}

// NewRunner builds the scene and spawns a motor for sc.
func NewRunner(sc *Scenario, log *zap.Logger) (*Runner, error) {
	scene, err := sc.BuildScene()
	if err != nil {
		return nil, err
	}
	body := physics.NewRigidBody(sc.Spawn.Position.Vec(), sc.Spawn.Yaw)
	rig := camera.NewRig(body, sc.Motor.Camera.EyeHeight)

	r := &Runner{
		sc:    sc,
		scene: scene,
		body:  body,
		rig:   rig,
		dt:    sc.TickDuration(),
	}
	r.motor, err = motor.New(&sc.Motor, motor.Collaborators{
		Body:       body,
		Camera:     rig,
		Query:      scene,
		Surface:    r,
		Interactor: r,
		Logger:     log,
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// SetSurfaceProfile records the applied profile.
func (r *Runner) SetSurfaceProfile(p motor.SurfaceProfile) {
	r.surface = p
}

// Interact collects interactions for the current frame.
func (r *Runner) Interact(in motor.Interaction) {
	r.interactions = append(r.interactions, in)
}

// Done reports whether every scripted tick has run.
func (r *Runner) Done() bool {
	return r.tick >= r.sc.Ticks
}

// Next runs one tick.
func (r *Runner) Next() Frame {
	in := r.sc.InputAt(r.tick)
	r.tick++
	r.interactions = nil

	events := r.motor.AdvancePhysics(r.dt, &in)
	cfg := r.motor.Config()
	r.scene.Step(r.body, cfg.Character.Height, cfg.Character.Radius, r.dt)
	r.motor.AdvancePresentation(r.dt, &in)

	st := r.motor.State()
	return Frame{
		Tick:         st.Tick,
		Position:     r.body.Position(),
		Velocity:     r.body.Velocity(),
		Grounded:     st.IsGrounded,
		Running:      st.IsRunning,
		Jumping:      st.IsJumping,
		JumpCount:    st.JumpCount,
		Pitch:        st.CameraPitch,
		Surface:      r.surface,
		Events:       events,
		Interactions: r.interactions,
	}
}

// Run plays the remaining ticks. It stops early if ctx is cancelled.
func (r *Runner) Run(ctx context.Context) ([]Frame, error) {
	frames := make([]Frame, 0, r.sc.Ticks-r.tick)
	for !r.Done() {
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		frames = append(frames, r.Next())
	}
	return frames, nil
}

// Motor returns the driven motor.
func (r *Runner) Motor() *motor.Motor {
	return r.motor
}

// Scene returns the physics scene.
func (r *Runner) Scene() *physics.Scene {
	return r.scene
}

// Body returns the character body.
func (r *Runner) Body() *physics.RigidBody {
	return r.body
}
