// Package input maps SDL2 events to motor input samples.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/midgard-motor/internal/game/motor"
	"github.com/Faultbox/midgard-motor/pkg/math"
)

// Bindings maps keys and mouse buttons to motor controls.
type Bindings struct {
	Forward    sdl.Scancode
	Back       sdl.Scancode
	Left       sdl.Scancode
	Right      sdl.Scancode
	Jump       sdl.Scancode
	Run        sdl.Scancode
	CursorLock sdl.Scancode
	Primary    uint8 // mouse button
	Secondary  uint8 // mouse button

	// LookScale converts mouse motion in pixels to look units.
	LookScale float32
}

// DefaultBindings returns WASD, space to jump, left shift to run and
// escape to toggle the cursor lock.
func DefaultBindings() Bindings {
	return Bindings{
		Forward:    sdl.SCANCODE_W,
		Back:       sdl.SCANCODE_S,
		Left:       sdl.SCANCODE_A,
		Right:      sdl.SCANCODE_D,
		Jump:       sdl.SCANCODE_SPACE,
		Run:        sdl.SCANCODE_LSHIFT,
		CursorLock: sdl.SCANCODE_ESCAPE,
		Primary:    sdl.BUTTON_LEFT,
		Secondary:  sdl.BUTTON_RIGHT,
		LookScale:  0.1,
	}
}

// Input accumulates SDL events between frames. Presses are latched until
// the next Latch so a press shorter than a frame is never lost.
type Input struct {
	bind      Bindings
	runToggle bool
	setCursor func(bool)

	held map[sdl.Scancode]bool
	look math.Vec2

	jump, run, primary, secondary bool

	cursorLocked bool
	quit         bool
	width        int
	height       int
	resized      bool
}

// New creates an input handler. runToggle selects toggle semantics for the
// run key: a press is an edge rather than a held level.
func New(b Bindings, runToggle bool) *Input {
	return &Input{
		bind:      b,
		runToggle: runToggle,
		setCursor: func(on bool) { sdl.SetRelativeMouseMode(on) },
		held:      make(map[sdl.Scancode]bool),
	}
}

// Update polls pending SDL events. Returns true if the host should quit.
func (i *Input) Update() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		i.HandleEvent(event)
	}
	return i.quit
}

// HandleEvent folds one SDL event into the current sample.
func (i *Input) HandleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.quit = true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			i.width, i.height = int(e.Data1), int(e.Data2)
			i.resized = true
		}

	case *sdl.KeyboardEvent:
		code := e.Keysym.Scancode
		switch e.Type {
		case sdl.KEYDOWN:
			if e.Repeat != 0 {
				return
			}
			i.held[code] = true
			switch code {
			case i.bind.Jump:
				i.jump = true
			case i.bind.Run:
				i.run = true
			case i.bind.CursorLock:
				i.SetCursorLock(!i.cursorLocked)
			}
		case sdl.KEYUP:
			delete(i.held, code)
		}

	case *sdl.MouseMotionEvent:
		if !i.cursorLocked {
			return
		}
		// SDL reports y growing downward; look input is positive upward.
		i.look.X += float32(e.XRel) * i.bind.LookScale
		i.look.Y -= float32(e.YRel) * i.bind.LookScale

	case *sdl.MouseButtonEvent:
		if e.Type != sdl.MOUSEBUTTONDOWN {
			return
		}
		switch e.Button {
		case i.bind.Primary:
			i.primary = true
		case i.bind.Secondary:
			i.secondary = true
		}
	}
}

// Latch writes the current sample into dst and resets the accumulators.
// Presses are OR-ed into dst so a press the motor has not consumed yet
// survives a frame that ran no physics tick. Move and Look are replaced.
func (i *Input) Latch(dst *motor.Input) {
	dst.Move = i.move()
	dst.Look = i.look
	dst.Jump = dst.Jump || i.jump
	dst.PrimaryAction = dst.PrimaryAction || i.primary
	dst.SecondaryAction = dst.SecondaryAction || i.secondary
	if i.runToggle {
		dst.Run = dst.Run || i.run
	} else {
		dst.Run = i.held[i.bind.Run]
	}

	i.look = math.Vec2{}
	i.jump, i.run, i.primary, i.secondary = false, false, false, false
}

func (i *Input) move() math.Vec2 {
	var v math.Vec2
	if i.held[i.bind.Forward] {
		v.Y++
	}
	if i.held[i.bind.Back] {
		v.Y--
	}
	if i.held[i.bind.Right] {
		v.X++
	}
	if i.held[i.bind.Left] {
		v.X--
	}
	if v.X != 0 && v.Y != 0 {
		v = v.Normalize()
	}
	return v
}

// SetCursorLock captures or releases the mouse. Look input is only read
// while the cursor is locked.
func (i *Input) SetCursorLock(locked bool) {
	i.cursorLocked = locked
	i.setCursor(locked)
}

// CursorLocked reports whether the mouse is captured.
func (i *Input) CursorLocked() bool {
	return i.cursorLocked
}

// Resized returns the new window size if the window was resized since the
// last call.
func (i *Input) Resized() (int, int, bool) {
	if !i.resized {
		return 0, 0, false
	}
	i.resized = false
	return i.width, i.height, true
}
