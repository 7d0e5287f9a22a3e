package raypick

import (
	"github.com/google/uuid"
)

// Event names published by the Selector.
const (
	EventSelect   = "select"
	EventDeselect = "deselect"
	EventAction   = "action"
)

// EventFn receives the object a notification is about.
type EventFn func(Interactable)

// eventBus is a synchronous named-topic dispatcher. Publish invokes handlers
// inline on the caller's stack; there is no queueing.
type eventBus struct {
	subs map[string]map[uuid.UUID]EventFn
}

func newEventBus() *eventBus {
	return &eventBus{subs: make(map[string]map[uuid.UUID]EventFn)}
}

func (b *eventBus) subscribe(event string, fn EventFn) uuid.UUID {
	id := uuid.New()
	m, ok := b.subs[event]
	if !ok {
		m = make(map[uuid.UUID]EventFn)
		b.subs[event] = m
	}
	m[id] = fn
	return id
}

func (b *eventBus) unsubscribe(event string, id uuid.UUID) {
	delete(b.subs[event], id)
}

func (b *eventBus) publish(event string, obj Interactable) {
	for _, fn := range b.subs[event] {
		fn(obj)
	}
}
