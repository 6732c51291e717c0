package motor

import "github.com/Faultbox/midgard-motor/pkg/math"

// Input is one sample from the input layer. Edge fields are cleared by the
// phase that consumes them: Jump by AdvancePhysics, Run by AdvancePhysics in
// toggle mode, PrimaryAction and SecondaryAction by AdvancePresentation.
type Input struct {
	Move math.Vec2 // strafe (X) and forward (Y), each in [-1, 1]
	Look math.Vec2 // yaw (X) and pitch (Y) delta for this tick

	Jump            bool
	Run             bool
	PrimaryAction   bool
	SecondaryAction bool
}
