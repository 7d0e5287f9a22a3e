package raypick

import (
	"github.com/google/uuid"
)

// HandlerSet carries optional per-object callbacks. Nil members are valid and
// simply not invoked.
type HandlerSet struct {
	OnSelect   func(Interactable)
	OnDeselect func(Interactable)
	OnAction   func(Interactable)
}

// registry keeps the object and handler maps in lockstep: both entries are
// created and destroyed together under the same id.
type registry struct {
	objects  map[uuid.UUID]Interactable
	handlers map[uuid.UUID]HandlerSet
}

func newRegistry() *registry {
	return &registry{
		objects:  make(map[uuid.UUID]Interactable),
		handlers: make(map[uuid.UUID]HandlerSet),
	}
}

// add registers obj, overwriting any previous handler set under the same id.
func (r *registry) add(obj Interactable, handlers HandlerSet) {
	id := obj.ID()
	r.objects[id] = obj
	r.handlers[id] = handlers
}

// remove clears id from both maps, present or not.
func (r *registry) remove(id uuid.UUID) {
	delete(r.objects, id)
	delete(r.handlers, id)
}

func (r *registry) contains(id uuid.UUID) bool {
	_, ok := r.objects[id]
	return ok
}

func (r *registry) len() int {
	return len(r.objects)
}
