// Package scenario loads scripted motor runs from YAML and plays them back
// against the reference physics scene.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethaniccc/float32-cube/cube"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-motor/internal/config"
	"github.com/Faultbox/midgard-motor/internal/engine/physics"
	"github.com/Faultbox/midgard-motor/internal/game/motor"
	"github.com/Faultbox/midgard-motor/pkg/math"
)

// ErrInvalid is returned for scenarios that cannot be played.
var ErrInvalid = errors.New("invalid scenario")

const defaultTickRate = 50

// Vec2 is a YAML [x, y] pair.
type Vec2 [2]float32

// Vec converts to a math.Vec2.
func (v Vec2) Vec() math.Vec2 { return math.Vec2{X: v[0], Y: v[1]} }

// Vec3 is a YAML [x, y, z] triple.
type Vec3 [3]float32

// Vec converts to a math.Vec3.
func (v Vec3) Vec() math.Vec3 { return math.Vec3{X: v[0], Y: v[1], Z: v[2]} }

// Scenario is one scripted run.
type Scenario struct {
	Name     string       `yaml:"name"`
	Ticks    int          `yaml:"ticks"`
	TickRate int          `yaml:"tick_rate"`
	Motor    config.Motor `yaml:"motor"`
	Spawn    Spawn        `yaml:"spawn"`
	Scene    SceneDef     `yaml:"scene"`
	Script   []Segment    `yaml:"script"`
	Expect   Expect       `yaml:"expect"`
}

// Spawn places the character. Yaw is in degrees.
type Spawn struct {
	Position Vec3    `yaml:"position"`
	Yaw      float32 `yaml:"yaw"`
}

// SceneDef lists the static geometry.
type SceneDef struct {
	Boxes []BoxDef  `yaml:"boxes"`
	Ramps []RampDef `yaml:"ramps"`
}

// BoxDef is a solid or trigger box.
type BoxDef struct {
	Name    string `yaml:"name"`
	Min     Vec3   `yaml:"min"`
	Max     Vec3   `yaml:"max"`
	Layer   int    `yaml:"layer"`
	Trigger bool   `yaml:"trigger"`
}

// RampDef is a wedge rising toward one of north, south, east or west.
type RampDef struct {
	Name  string `yaml:"name"`
	Min   Vec3   `yaml:"min"`
	Max   Vec3   `yaml:"max"`
	Rise  string `yaml:"rise"`
	Layer int    `yaml:"layer"`
}

// Segment holds input over the ticks [From, To). Move, Look and Run are held
// for the whole range; Jump and the actions press on From only.
type Segment struct {
	From      int  `yaml:"from"`
	To        int  `yaml:"to"`
	Move      Vec2 `yaml:"move"`
	Look      Vec2 `yaml:"look"`
	Jump      bool `yaml:"jump"`
	Run       bool `yaml:"run"`
	Primary   bool `yaml:"primary"`
	Secondary bool `yaml:"secondary"`
}

// Load reads a scenario file. Tuning keys under motor override base.
func Load(path string, base config.Motor) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading scenario from %s: %w", path, err)
	}
	sc, err := Parse(data, base)
	if err != nil {
		return nil, fmt.Errorf("loading scenario from %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates a scenario.
func Parse(data []byte, base config.Motor) (*Scenario, error) {
	sc := &Scenario{Motor: base}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}
	if sc.TickRate == 0 {
		sc.TickRate = defaultTickRate
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// Validate checks the run length, script ranges and geometry.
func (sc *Scenario) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if sc.Ticks <= 0 {
		fail("ticks: must be positive")
	}
	if sc.TickRate <= 0 {
		fail("tick_rate: must be positive")
	}
	for i, seg := range sc.Script {
		if seg.From < 0 || seg.To <= seg.From {
			fail("script[%d]: range [%d, %d) is empty", i, seg.From, seg.To)
		}
	}
	for _, r := range sc.Scene.Ramps {
		if _, ok := riseFace(r.Rise); !ok {
			fail("ramp %q: unknown rise %q", r.Name, r.Rise)
		}
	}
	if err := sc.Motor.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// TickDuration returns the fixed tick in seconds.
func (sc *Scenario) TickDuration() float32 {
	return 1 / float32(sc.TickRate)
}

// BuildScene creates the physics scene described by the scenario.
func (sc *Scenario) BuildScene() (*physics.Scene, error) {
	s := physics.NewScene()
	for _, b := range sc.Scene.Boxes {
		s.AddBox(b.Name, b.Min.Vec(), b.Max.Vec(), b.Layer, b.Trigger)
	}
	for _, r := range sc.Scene.Ramps {
		face, ok := riseFace(r.Rise)
		if !ok {
			return nil, fmt.Errorf("%w: ramp %q: unknown rise %q", ErrInvalid, r.Name, r.Rise)
		}
		if err := s.AddRamp(r.Name, r.Min.Vec(), r.Max.Vec(), face, r.Layer); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// InputAt returns the scripted input for the zero-based tick. Later segments
// win where ranges overlap.
func (sc *Scenario) InputAt(tick int) motor.Input {
	var in motor.Input
	for _, seg := range sc.Script {
		if tick < seg.From || tick >= seg.To {
			continue
		}
		in.Move = seg.Move.Vec()
		in.Look = seg.Look.Vec()
		in.Run = seg.Run
		if tick == seg.From {
			in.Jump = in.Jump || seg.Jump
			in.PrimaryAction = in.PrimaryAction || seg.Primary
			in.SecondaryAction = in.SecondaryAction || seg.Secondary
		}
	}
	return in
}

func riseFace(name string) (cube.Face, bool) {
	switch strings.ToLower(name) {
	case "north":
		return cube.FaceNorth, true
	case "south":
		return cube.FaceSouth, true
	case "east":
		return cube.FaceEast, true
	case "west":
		return cube.FaceWest, true
	}
	return 0, false
}
