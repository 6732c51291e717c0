// Package game implements the interactive host loop: SDL input feeds a
// motor at a fixed tick rate and the scene is drawn top-down.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-motor/internal/config"
	"github.com/Faultbox/midgard-motor/internal/engine/camera"
	"github.com/Faultbox/midgard-motor/internal/engine/input"
	"github.com/Faultbox/midgard-motor/internal/engine/physics"
	"github.com/Faultbox/midgard-motor/internal/engine/window"
	"github.com/Faultbox/midgard-motor/internal/game/motor"
	"github.com/Faultbox/midgard-motor/internal/game/scenario"
	"github.com/Faultbox/midgard-motor/pkg/math"
)

const (
	pixelsPerUnit = 40
	titleInterval = 250 * time.Millisecond
)

var (
	colorBackground = window.Color{R: 24, G: 24, B: 28, A: 255}
	colorTrigger    = window.Color{R: 200, G: 160, B: 40, A: 255}
	colorDefault    = window.Color{R: 60, G: 140, B: 230, A: 255}
	colorJumping    = window.Color{R: 240, G: 120, B: 60, A: 255}
	colorFacing     = window.Color{R: 255, G: 255, B: 255, A: 255}
)

// Game is the interactive host.
type Game struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window  *window.Window
	input   *input.Input
	stepper *Stepper

	scene *physics.Scene
	body  *physics.RigidBody
	motor *motor.Motor
	cmd   motor.Input

	profile motor.SurfaceProfile
}

// New opens a window and spawns a character into the scenario's scene.
func New(cfg *config.Config, sc *scenario.Scenario, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("initializing game",
		zap.String("scenario", sc.Name),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("tick_rate", cfg.Sim.TickRate),
	)

	g := &Game{
		cfg:     cfg,
		log:     log,
		stepper: NewStepper(cfg.Sim.TickRate, cfg.Sim.MaxStepsPerFrame),
	}

	var err error
	g.scene, err = sc.BuildScene()
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}
	g.body = physics.NewRigidBody(sc.Spawn.Position.Vec(), sc.Spawn.Yaw)
	rig := camera.NewRig(g.body, cfg.Motor.Camera.EyeHeight)

	g.motor, err = motor.New(&cfg.Motor, motor.Collaborators{
		Body:       g.body,
		Camera:     rig,
		Query:      g.scene,
		Surface:    g,
		Interactor: g,
		Logger:     log.Named("motor"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to spawn motor: %w", err)
	}
	g.motor.Subscribe(func(ev motor.Event) {
		log.Debug("motor event",
			zap.Stringer("kind", ev.Kind),
			zap.Uint64("tick", ev.Tick),
			zap.Bool("running", ev.Running),
			zap.Int("jumps", ev.JumpCount),
		)
	})

	g.window, err = window.New(window.Config{
		Title:      "midgard-motor",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      true,
	}, log.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.input = input.New(input.DefaultBindings(), cfg.Motor.Movement.IsRunToggle)
	g.input.SetCursorLock(true)

	log.Info("game initialized successfully")
	return g, nil
}

// SetSurfaceProfile tints the character by its surface profile.
func (g *Game) SetSurfaceProfile(p motor.SurfaceProfile) {
	g.profile = p
}

// Interact logs interactions.
func (g *Game) Interact(in motor.Interaction) {
	g.log.Info("interaction",
		zap.Stringer("action", in.Action),
		zap.String("collider", in.Hit.Collider),
		zap.Float32("distance", in.Hit.Distance),
	)
}

// Run starts the main loop. It returns when the window is closed.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	titleTimer := time.Now()
	cfg := g.motor.Config()

	g.log.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}
		g.input.Latch(&g.cmd)

		// 2. Fixed physics ticks, then presentation once per frame
		g.stepper.Advance(dt, func(step float32) {
			g.motor.AdvancePhysics(step, &g.cmd)
			g.scene.Step(g.body, cfg.Character.Height, cfg.Character.Radius, step)
		})
		g.motor.AdvancePresentation(dt, &g.cmd)

		// 3. Render
		g.render()

		if time.Since(titleTimer) >= titleInterval {
			g.window.SetTitle(g.status())
			titleTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) status() string {
	st := g.motor.State()
	p := g.body.Position()
	return fmt.Sprintf("midgard-motor | pos %.2f %.2f %.2f | grounded %t | running %t | jumps %d",
		p.X, p.Y, p.Z, st.IsGrounded, st.IsRunning, st.JumpCount)
}

func (g *Game) render() {
	w, h := g.window.GetSize()
	view := Topdown{Width: w, Height: h, Scale: pixelsPerUnit, Focus: g.body.Position()}

	g.window.Clear(colorBackground)

	for _, c := range g.scene.Colliders() {
		lo, hi := c.Box.Min(), c.Box.Max()
		x, y, rw, rh := view.Rect(math.FromMgl(lo), math.FromMgl(hi))
		color := window.Color{R: shade(50, hi[1]), G: shade(50, hi[1]), B: shade(60, hi[1]), A: 255}
		if c.Trigger {
			color = colorTrigger
		}
		g.window.FillRect(x, y, rw, rh, color)
	}
	for _, r := range g.scene.Ramps() {
		x, y, rw, rh := view.Rect(r.Min, r.Max)
		g.window.FillRect(x, y, rw, rh, window.Color{R: shade(40, r.Max.Y), G: shade(70, r.Max.Y), B: shade(40, r.Max.Y), A: 255})
	}

	radius := g.motor.Config().Character.Radius
	pos := g.body.Position()
	x, y, rw, rh := view.Rect(pos.Sub(math.Vec3{X: radius, Z: radius}), pos.Add(math.Vec3{X: radius, Z: radius}))
	color := colorDefault
	if g.profile == motor.SurfaceJumping {
		color = colorJumping
	}
	g.window.FillRect(x, y, rw, rh, color)

	cx, cy := view.ToScreen(pos)
	fx, fy := view.ToScreen(pos.Add(g.body.Rotation().Forward().Horizontal().Scale(radius * 3)))
	g.window.DrawLine(cx, cy, fx, fy, colorFacing)

	g.window.Present()
}
