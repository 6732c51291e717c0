package scenario

import (
	"errors"
	"fmt"
	"sort"

	"github.com/chewxy/math32"
)

// ErrExpectation is wrapped by every failed check.
var ErrExpectation = errors.New("expectation failed")

const defaultTolerance = 0.01

// Expect describes what a run must end up doing. Nil fields are not checked.
type Expect struct {
	Position     *Vec3          `yaml:"position"`  // final position
	Height       *float32       `yaml:"height"`    // final base height
	Tolerance    float32        `yaml:"tolerance"` // for position and height
	Grounded     *bool          `yaml:"grounded"`  // final grounded state
	MaxHeight    *float32       `yaml:"max_height"`
	MinTravel    *float32       `yaml:"min_travel"` // horizontal distance from spawn
	MaxJumpCount *int           `yaml:"max_jump_count"` // peak chained jumps, exact
	Events       map[string]int `yaml:"events"` // minimum count per event kind
	Interactions *int           `yaml:"interactions"`
}

// Check compares recorded frames against the expectations.
func (sc *Scenario) Check(frames []Frame) error {
	if len(frames) == 0 {
		return fmt.Errorf("%w: no frames recorded", ErrExpectation)
	}
	e := sc.Expect
	last := frames[len(frames)-1]

	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrExpectation}, args...)...))
	}

	tol := e.Tolerance
	if tol == 0 {
		tol = defaultTolerance
	}
	if e.Position != nil {
		if want := e.Position.Vec(); !last.Position.ApproxEqual(want, tol) {
			fail("position: expected %v, got %v", want, last.Position)
		}
	}
	if e.Height != nil && math32.Abs(last.Position.Y-*e.Height) > tol {
		fail("height: expected %.3f, got %.3f", *e.Height, last.Position.Y)
	}
	if e.Grounded != nil && last.Grounded != *e.Grounded {
		fail("grounded: expected %t, got %t", *e.Grounded, last.Grounded)
	}
	if e.MinTravel != nil {
		d := last.Position.Sub(sc.Spawn.Position.Vec()).Horizontal().Length()
		if d < *e.MinTravel {
			fail("travel: expected at least %.3f, got %.3f", *e.MinTravel, d)
		}
	}

	maxY := math32.Inf(-1)
	maxJumps := 0
	counts := map[string]int{}
	interactions := 0
	for _, f := range frames {
		if f.Position.Y > maxY {
			maxY = f.Position.Y
		}
		if f.JumpCount > maxJumps {
			maxJumps = f.JumpCount
		}
		for _, ev := range f.Events {
			counts[ev.Kind.String()]++
		}
		interactions += len(f.Interactions)
	}

	if e.MaxHeight != nil && maxY > *e.MaxHeight {
		fail("peak height: expected at most %.3f, got %.3f", *e.MaxHeight, maxY)
	}
	if e.MaxJumpCount != nil && maxJumps != *e.MaxJumpCount {
		fail("jump count: expected peak %d, got %d", *e.MaxJumpCount, maxJumps)
	}
	if e.Interactions != nil && interactions != *e.Interactions {
		fail("interactions: expected %d, got %d", *e.Interactions, interactions)
	}

	kinds := make([]string, 0, len(e.Events))
	for k := range e.Events {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		if counts[k] < e.Events[k] {
			fail("event %s: expected at least %d, got %d", k, e.Events[k], counts[k])
		}
	}

	return errors.Join(errs...)
}
