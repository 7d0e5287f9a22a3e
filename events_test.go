package raypick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBusSubscribeAndPublish(t *testing.T) {
	bus := newEventBus()
	obj := newStubObject()

	var a, b int
	idA := bus.subscribe(EventSelect, func(Interactable) { a++ })
	bus.subscribe(EventSelect, func(Interactable) { b++ })

	bus.publish(EventSelect, obj)
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)

	// Other topics are untouched.
	bus.publish(EventDeselect, obj)
	assert.Equal(t, 1, a)

	bus.unsubscribe(EventSelect, idA)
	bus.publish(EventSelect, obj)
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestEventBusUnknownTopic(t *testing.T) {
	bus := newEventBus()
	assert.NotPanics(t, func() {
		bus.publish("no-such-event", newStubObject())
		bus.unsubscribe("no-such-event", [16]byte{})
	})
}

func TestSelectorUnsubscribeStopsDelivery(t *testing.T) {
	ix := newScriptedIntersector()
	sel := NewSelector(ix)

	a := newStubObject()
	sel.Add(a, HandlerSet{})

	var got int
	sub := sel.Subscribe(EventSelect, func(Interactable) { got++ })

	ix.distances[a.id] = 1.0
	_ = sel.Update()
	assert.Equal(t, 1, got)

	sel.Unsubscribe(EventSelect, sub)
	delete(ix.distances, a.id)
	_ = sel.Update()
	ix.distances[a.id] = 1.0
	_ = sel.Update()
	assert.Equal(t, 1, got)
}
