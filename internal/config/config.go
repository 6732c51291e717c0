// Package config handles motor tuning and host settings.
package config

// Config holds all settings for a motor host.
type Config struct {
	Motor    Motor          `yaml:"motor"`
	Sim      SimConfig      `yaml:"sim"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Motor is the per-character tuning record. It is loaded once at spawn and
// shared read-only between every character that uses it.
type Motor struct {
	Character   CharacterConfig   `yaml:"character"`
	Ground      GroundConfig      `yaml:"ground"`
	Ceiling     CeilingConfig     `yaml:"ceiling"`
	Step        StepConfig        `yaml:"step"`
	Camera      CameraConfig      `yaml:"camera"`
	Movement    MovementConfig    `yaml:"movement"`
	Falling     FallingConfig     `yaml:"falling"`
	AirControl  AirControlConfig  `yaml:"air_control"`
	Jumping     JumpingConfig     `yaml:"jumping"`
	Interaction InteractionConfig `yaml:"interaction"`
}

// CharacterConfig describes the capsule. The body position is the capsule base.
type CharacterConfig struct {
	Height float32 `yaml:"height"`
	Radius float32 `yaml:"radius"`
}

// GroundConfig tunes the downward ground probe.
type GroundConfig struct {
	LayerMask         uint32  `yaml:"layer_mask"`
	CheckBuffer       float32 `yaml:"check_buffer"`
	CheckRadiusBuffer float32 `yaml:"check_radius_buffer"`
}

// CeilingConfig tunes the upward probe run while ascending. Its range reuses
// GroundConfig.CheckBuffer.
type CeilingConfig struct {
	LayerMask         uint32  `yaml:"layer_mask"`
	CheckRadiusBuffer float32 `yaml:"check_radius_buffer"`
}

// StepConfig tunes the step-up look-ahead probes.
type StepConfig struct {
	LookAheadRange float32 `yaml:"look_ahead_range"`
	MaxStepHeight  float32 `yaml:"max_step_height"`
}

// CameraConfig holds look settings. Pitch limits are in degrees,
// sensitivities in degrees per unit of look input per second.
type CameraConfig struct {
	InvertY               bool    `yaml:"invert_y"`
	HorizontalSensitivity float32 `yaml:"horizontal_sensitivity"`
	VerticalSensitivity   float32 `yaml:"vertical_sensitivity"`
	MinPitch              float32 `yaml:"min_pitch"`
	MaxPitch              float32 `yaml:"max_pitch"`
	EyeHeight             float32 `yaml:"eye_height"`
}

// MovementConfig holds grounded movement settings.
type MovementConfig struct {
	WalkSpeed    float32 `yaml:"walk_speed"`
	RunSpeed     float32 `yaml:"run_speed"`
	CanRun       bool    `yaml:"can_run"`
	IsRunToggle  bool    `yaml:"is_run_toggle"`
	SlopeLimit   float32 `yaml:"slope_limit"`  // degrees from vertical
	Acceleration float32 `yaml:"acceleration"` // max velocity change per tick
}

// FallingConfig holds the constant descent rate used while airborne.
type FallingConfig struct {
	FallVelocity float32 `yaml:"fall_velocity"`
}

// AirControlConfig holds airborne steering settings.
type AirControlConfig struct {
	CanAirControl bool    `yaml:"can_air_control"`
	MaxSpeed      float32 `yaml:"max_speed"`
}

// JumpingConfig holds jump settings. JumpTime is in seconds.
type JumpingConfig struct {
	CanJump       bool    `yaml:"can_jump"`
	CanDoubleJump bool    `yaml:"can_double_jump"`
	JumpVelocity  float32 `yaml:"jump_velocity"`
	JumpTime      float32 `yaml:"jump_time"`
}

// InteractionConfig controls forwarding of action presses to UI hit tests.
type InteractionConfig struct {
	SendUIInteraction bool    `yaml:"send_ui_interaction"`
	MaxDistance       float32 `yaml:"max_distance"`
	LayerMask         uint32  `yaml:"layer_mask"`
}

// SimConfig holds fixed-step loop settings.
type SimConfig struct {
	TickRate         int `yaml:"tick_rate"`           // physics ticks per second
	MaxStepsPerFrame int `yaml:"max_steps_per_frame"` // catch-up cap for slow frames
}

// GraphicsConfig holds window settings for the interactive host.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level    string          `yaml:"level"`
	LogFile  string          `yaml:"log_file"`
	Channels map[string]bool `yaml:"channels"`
}

// Channel reports whether the named log channel is enabled. Channels not
// listed are enabled.
func (l LoggingConfig) Channel(name string) bool {
	on, ok := l.Channels[name]
	return !ok || on
}

// MaxJumpCount returns how many jumps may be chained before landing.
func (m *Motor) MaxJumpCount() int {
	switch {
	case !m.Jumping.CanJump:
		return 0
	case m.Jumping.CanDoubleJump:
		return 2
	default:
		return 1
	}
}

// TickDuration returns the fixed physics step in seconds.
func (s SimConfig) TickDuration() float32 {
	if s.TickRate <= 0 {
		return 0
	}
	return 1 / float32(s.TickRate)
}

// AllLayers matches every collision layer.
const AllLayers = ^uint32(0)

// DefaultMotor returns the stock character tuning.
func DefaultMotor() Motor {
	return Motor{
		Character: CharacterConfig{
			Height: 1.8,
			Radius: 0.3,
		},
		Ground: GroundConfig{
			LayerMask:         AllLayers,
			CheckBuffer:       0.1,
			CheckRadiusBuffer: 0.05,
		},
		Ceiling: CeilingConfig{
			LayerMask:         AllLayers,
			CheckRadiusBuffer: 0.05,
		},
		Step: StepConfig{
			LookAheadRange: 0.1,
			MaxStepHeight:  0.6,
		},
		Camera: CameraConfig{
			InvertY:               false,
			HorizontalSensitivity: 10,
			VerticalSensitivity:   10,
			MinPitch:              -75,
			MaxPitch:              75,
			EyeHeight:             1.6,
		},
		Movement: MovementConfig{
			WalkSpeed:    10,
			RunSpeed:     15,
			CanRun:       true,
			IsRunToggle:  true,
			SlopeLimit:   60,
			Acceleration: 1,
		},
		Falling: FallingConfig{
			FallVelocity: 1,
		},
		AirControl: AirControlConfig{
			CanAirControl: true,
			MaxSpeed:      2.5,
		},
		Jumping: JumpingConfig{
			CanJump:       true,
			CanDoubleJump: true,
			JumpVelocity:  15,
			JumpTime:      0.1,
		},
		Interaction: InteractionConfig{
			SendUIInteraction: true,
			MaxDistance:       2,
			LayerMask:         AllLayers,
		},
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Motor: DefaultMotor(),
		Sim: SimConfig{
			TickRate:         50,
			MaxStepsPerFrame: 5,
		},
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
