package game

// Stepper is a fixed-step accumulator. Frame time is banked and spent in
// whole ticks; at most MaxSteps ticks run per frame and any backlog beyond
// that is dropped.
type Stepper struct {
	Step     float32
	MaxSteps int

	acc float32
}

// NewStepper creates a stepper for rate ticks per second.
func NewStepper(rate, maxSteps int) *Stepper {
	return &Stepper{Step: 1 / float32(rate), MaxSteps: maxSteps}
}

// Advance banks frameDt and calls tick once per whole step. It returns the
// number of ticks run.
func (s *Stepper) Advance(frameDt float32, tick func(dt float32)) int {
	s.acc += frameDt
	n := 0
	for s.acc >= s.Step && n < s.MaxSteps {
		tick(s.Step)
		s.acc -= s.Step
		n++
	}
	if n == s.MaxSteps && s.acc >= s.Step {
		s.acc = 0
	}
	return n
}

// Alpha returns how far the bank is into the next step, in [0, 1).
func (s *Stepper) Alpha() float32 {
	return s.acc / s.Step
}
