package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventDamaged       = "damaged"
	EventDied          = "died"
	EventBossState     = "boss_state"
	EventFireballEnded = "fireball_ended"
	EventGameOver      = "game_over"
	EventMessage       = "message"
)

// DamageEvent is pushed whenever health actually drops.
type DamageEvent struct {
	Entity    Entity
	Amount    float64
	Remaining float64
}

// BossStateEvent is pushed on every boss state change.
type BossStateEvent struct {
	Entity Entity
	From   string
	To     string
}

// FireballEvent is pushed when a projectile terminates.
type FireballEvent struct {
	Entity  Entity
	Outcome string
	Damage  float64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Peek returns queued events without consuming them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
