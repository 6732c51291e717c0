package motor

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/Faultbox/midgard-motor/pkg/math"
)

// EventKind identifies a state transition.
type EventKind int

const (
	EventGrounded       EventKind = iota // airborne -> grounded
	EventRunningChanged                  // IsRunning flipped; see Event.Running
	EventJumped                          // jump or double jump started; see Event.JumpCount
	EventCeilingHit                      // ascent cut short by a ceiling
	EventSteppedUp                       // body snapped onto a step
)

func (k EventKind) String() string {
	switch k {
	case EventGrounded:
		return "grounded"
	case EventRunningChanged:
		return "running_changed"
	case EventJumped:
		return "jumped"
	case EventCeilingHit:
		return "ceiling_hit"
	case EventSteppedUp:
		return "stepped_up"
	default:
		return "unknown"
	}
}

// Event is a transition notification produced by AdvancePhysics.
type Event struct {
	Kind      EventKind
	Tick      uint64
	Position  math.Vec3
	Running   bool
	JumpCount int
}

// SubscriptionID identifies a subscriber.
type SubscriptionID uint64

// Subscribe registers fn to receive every event, in subscription order,
// before AdvancePhysics returns.
func (m *Motor) Subscribe(fn func(Event)) SubscriptionID {
	m.nextSub++
	id := m.nextSub
	m.subscribers.Set(id, fn)
	return id
}

// Unsubscribe removes a subscriber. It reports whether id was registered.
func (m *Motor) Unsubscribe(id SubscriptionID) bool {
	return m.subscribers.Delete(id)
}

func newRegistry() *orderedmap.OrderedMap[SubscriptionID, func(Event)] {
	return orderedmap.NewOrderedMap[SubscriptionID, func(Event)]()
}

func (m *Motor) emit(kind EventKind) {
	e := Event{
		Kind:      kind,
		Tick:      m.state.Tick,
		Position:  m.body.Position(),
		Running:   m.state.IsRunning,
		JumpCount: m.state.JumpCount,
	}
	m.pending = append(m.pending, e)
}

func (m *Motor) dispatch() {
	if m.subscribers.Len() == 0 {
		return
	}
	for _, e := range m.pending {
		for el := m.subscribers.Front(); el != nil; {
			next := el.Next() // fn may unsubscribe itself
			el.Value(e)
			el = next
		}
	}
}
