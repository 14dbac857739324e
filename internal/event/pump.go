package event

import (
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/materialfx/internal/logger"
)

// Handlers receives dispatched events. Nil handlers drop their events.
type Handlers struct {
	Collision        func(Collision)
	AnimationTrigger func(AnimationTrigger)
	SpawnEffect      func(SpawnEffect)
}

// Pump queues events for the current tick and dispatches them in stage
// order. It is single-threaded: Push may be called from handlers during a
// Drain, and those events are delivered by the same Drain.
type Pump struct {
	queue      []Event
	draining   bool
	dispatched uint64
	log        *zap.Logger
}

// NewPump creates an empty pump.
func NewPump(log *zap.Logger) *Pump {
	return &Pump{log: logger.OrNop(log)}
}

// Push queues an event.
func (p *Pump) Push(e Event) {
	p.queue = append(p.queue, e)
}

// PublishSpawn queues a spawn request. It lets the pump stand in for the
// locomotion controller's effect emitter.
func (p *Pump) PublishSpawn(s SpawnEffect) {
	p.Push(NewSpawnEffect(s))
}

// Pending returns the number of queued events.
func (p *Pump) Pending() int {
	return len(p.queue)
}

// Drain dispatches every queued event, collisions first, then animation
// triggers, then spawn requests. Order is stable within a kind.
func (p *Pump) Drain(h Handlers) int {
	if p.draining {
		p.log.Warn("nested drain ignored")
		return 0
	}
	p.draining = true
	defer func() { p.draining = false }()

	count := 0
	for len(p.queue) > 0 {
		sort.SliceStable(p.queue, func(i, j int) bool {
			return p.queue[i].Kind < p.queue[j].Kind
		})

		e := p.queue[0]
		p.queue[0] = Event{}
		p.queue = p.queue[1:]

		p.dispatch(e, h)
		count++
	}
	p.queue = nil
	p.dispatched += uint64(count)
	return count
}

func (p *Pump) dispatch(e Event, h Handlers) {
	switch e.Kind {
	case KindCollision:
		if h.Collision != nil && e.Collision != nil {
			h.Collision(*e.Collision)
		}
	case KindAnimationTrigger:
		if h.AnimationTrigger != nil && e.Trigger != nil {
			h.AnimationTrigger(*e.Trigger)
		}
	case KindSpawnEffect:
		if h.SpawnEffect != nil && e.Spawn != nil {
			h.SpawnEffect(*e.Spawn)
		}
	default:
		p.log.Warn("dropping event of unknown kind", zap.Stringer("kind", e.Kind))
	}
}

// Dispatched returns the total number of events delivered.
func (p *Pump) Dispatched() uint64 {
	return p.dispatched
}
