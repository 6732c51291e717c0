package motor

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-motor/internal/engine/physics"
)

// Action is an interaction button.
type Action int

const (
	ActionPrimary Action = iota
	ActionSecondary
)

func (a Action) String() string {
	if a == ActionSecondary {
		return "secondary"
	}
	return "primary"
}

// Interaction is an action press that landed on something in front of the
// camera.
type Interaction struct {
	Action Action
	Hit    physics.Hit
	Tick   uint64
}

// Interactor receives interactions, e.g. a UI layer routing clicks.
type Interactor interface {
	Interact(Interaction)
}

// forwardInteraction consumes the action edges and, when enabled, casts a
// ray from the camera along its look direction and forwards the hit.
func (m *Motor) forwardInteraction(in *Input) {
	primary, secondary := in.PrimaryAction, in.SecondaryAction
	in.PrimaryAction, in.SecondaryAction = false, false

	ic := m.cfg.Interaction
	if !ic.SendUIInteraction || m.interactor == nil || !(primary || secondary) {
		return
	}

	hit, ok := m.query.RayCast(m.cam.WorldPosition(), m.cam.Forward(), ic.MaxDistance,
		physics.LayerMask(ic.LayerMask), physics.CollideTriggers)
	if !ok {
		return
	}

	for _, a := range []struct {
		pressed bool
		action  Action
	}{{primary, ActionPrimary}, {secondary, ActionSecondary}} {
		if !a.pressed {
			continue
		}
		m.log.Debug("interaction",
			zap.Stringer("action", a.action),
			zap.String("collider", hit.Collider),
			zap.Float32("distance", hit.Distance),
		)
		m.interactor.Interact(Interaction{Action: a.action, Hit: hit, Tick: m.state.Tick})
	}
}
