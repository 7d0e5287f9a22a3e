// Package raypick implements pointer-based object selection for a 3D scene.
// A ray cast from a configurable source (explicit pose or a 2D pointer
// unprojected through a camera) is tested against registered objects each
// frame; a reticle cursor and beam visual track the nearest hit, and
// selection transitions fire per-object callbacks and broadcast events
// exactly once per transition.
package raypick

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Selector composes the registry, selection state machine, ray state and
// visual placement behind one host-facing surface.
//
// It is single-threaded by contract: the host calls Update once per frame,
// and all mutation of the registry, selection set, ray state and visuals
// happens synchronously inside that call or inside the setters. When Update
// returns, every transition of that cycle has been delivered.
type Selector struct {
	intersector Intersector
	log         Logger

	registry *registry
	selected map[uuid.UUID]struct{}
	bus      *eventBus

	ray      rayState
	distance float32
	visuals  *placement

	defaultDistance float32
	active          bool
}

// Option configures a Selector at construction time.
type Option func(*Selector)

// WithLogger routes diagnostics to log instead of discarding them.
func WithLogger(log Logger) Option {
	return func(s *Selector) { s.log = log }
}

// WithDefaultDistance overrides the unfocused reticle distance.
func WithDefaultDistance(d float32) Option {
	return func(s *Selector) { s.defaultDistance = d }
}

// NewSelector builds a Selector using intersector for hit-testing. The ray
// starts at the world origin pointing along Forward, with the reticle at the
// default distance.
func NewSelector(intersector Intersector, opts ...Option) *Selector {
	s := &Selector{
		intersector:     intersector,
		log:             NewNopLogger(),
		registry:        newRegistry(),
		selected:        make(map[uuid.UUID]struct{}),
		bus:             newEventBus(),
		ray:             rayState{ray: Ray{Dir: Forward}},
		defaultDistance: DefaultReticleDistance,
		visuals:         newPlacement(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.distance = s.defaultDistance
	s.refresh()
	return s
}

// Add registers obj for selection. Re-adding an already-registered object
// replaces its handler set and keeps its current selection state.
func (s *Selector) Add(obj Interactable, handlers HandlerSet) {
	s.registry.add(obj, handlers)
}

// Remove unregisters obj. A selected object is deselected first, firing
// OnDeselect and the deselect event and releasing the reticle focus.
// Removing an object that was never registered is a no-op.
func (s *Selector) Remove(obj Interactable) {
	id := obj.ID()
	if _, isSelected := s.selected[id]; isSelected {
		s.deselect(id, obj)
	}
	s.registry.remove(id)
}

// Update runs one selection cycle over all registered objects: newly hit
// objects are selected, newly missed objects are deselected, and the reticle
// refocuses on the nearest hit distance of whichever hit object was processed
// last. Iteration order over objects is unspecified.
//
// An intersection query error leaves that object's selection state unchanged;
// the cycle still completes for the remaining objects and the joined errors
// are returned.
func (s *Selector) Update() error {
	var errs []error
	for id, obj := range s.registry.objects {
		hits, err := s.intersector.Intersect(s.ray.ray, obj, true)
		if err != nil {
			errs = append(errs, fmt.Errorf("intersect %s: %w", id, err))
			continue
		}
		_, wasSelected := s.selected[id]
		if len(hits) > 0 {
			if !wasSelected {
				s.selected[id] = struct{}{}
				if h := s.registry.handlers[id]; h.OnSelect != nil {
					h.OnSelect(obj)
				}
				s.bus.publish(EventSelect, obj)
			}
			s.focus(hits[0].Distance)
		} else if wasSelected {
			s.deselect(id, obj)
		}
	}
	return errors.Join(errs...)
}

// deselect runs the unselect transition: per-object callback first, focus
// reset, then the broadcast event.
func (s *Selector) deselect(id uuid.UUID, obj Interactable) {
	delete(s.selected, id)
	if h := s.registry.handlers[id]; h.OnDeselect != nil {
		h.OnDeselect(obj)
	}
	s.focus(s.defaultDistance)
	s.bus.publish(EventDeselect, obj)
}

// Activate invokes OnAction for every currently selected object and publishes
// the action event. Detecting the activation gesture (click, trigger pull) is
// the host input code's job; the Selector never calls this itself.
func (s *Selector) Activate() {
	for id := range s.selected {
		obj, ok := s.registry.objects[id]
		if !ok {
			continue
		}
		if h := s.registry.handlers[id]; h.OnAction != nil {
			h.OnAction(obj)
		}
		s.bus.publish(EventAction, obj)
	}
}

// SetPosition sets the ray origin directly, keeping the current direction.
func (s *Selector) SetPosition(p mgl32.Vec3) {
	s.ray.setPosition(p)
	s.refresh()
}

// SetOrientation points the ray along Forward rotated by q, keeping the
// current origin.
func (s *Selector) SetOrientation(q mgl32.Quat) {
	s.ray.setOrientation(q)
	s.refresh()
}

// SetPointer derives origin and direction by unprojecting the pixel
// coordinate through cam. It supersedes SetPosition/SetOrientation until one
// of them is called again.
func (s *Selector) SetPointer(x, y float32, cam Camera) {
	s.ray.setPointer(x, y, cam)
	s.refresh()
}

// Origin returns the current ray origin.
func (s *Selector) Origin() mgl32.Vec3 { return s.ray.ray.Origin }

// Direction returns the current unit ray direction.
func (s *Selector) Direction() mgl32.Vec3 { return s.ray.ray.Dir }

// ReticleDistance returns the current focus distance along the ray.
func (s *Selector) ReticleDistance() float32 { return s.distance }

// ReticleRayRoot returns the owned visual root holding the reticle and beam
// nodes, for attachment to the host scene graph. Callers must not write its
// transforms.
func (s *Selector) ReticleRayRoot() *Node { return s.visuals.root }

// Reticle returns the owned reticle node.
func (s *Selector) Reticle() *Node { return s.visuals.reticle }

// Beam returns the owned beam node.
func (s *Selector) Beam() *Node { return s.visuals.beam }

// SelectedObject returns one representative selected object, or nil when
// nothing is selected. When several objects are selected at once the answer
// is ambiguous: a warning is logged and an arbitrary member of the selection
// set is returned. Hosts that need the full set should use SelectedObjects.
func (s *Selector) SelectedObject() Interactable {
	if n := len(s.selected); n > 1 {
		s.log.Warnf("ambiguous selection query: %d objects selected, returning one representative", n)
	}
	for id := range s.selected {
		return s.registry.objects[id]
	}
	return nil
}

// SelectedObjects returns every currently selected object.
func (s *Selector) SelectedObjects() []Interactable {
	objs := make([]Interactable, 0, len(s.selected))
	for id := range s.selected {
		objs = append(objs, s.registry.objects[id])
	}
	return objs
}

// IsSelected reports whether obj is currently selected.
func (s *Selector) IsSelected(obj Interactable) bool {
	_, ok := s.selected[obj.ID()]
	return ok
}

// Subscribe registers fn for the named event (EventSelect, EventDeselect,
// EventAction) and returns a handle for Unsubscribe. Broadcast handlers run
// after the matching per-object callback.
func (s *Selector) Subscribe(event string, fn EventFn) uuid.UUID {
	return s.bus.subscribe(event, fn)
}

// Unsubscribe removes a handler previously returned by Subscribe.
func (s *Selector) Unsubscribe(event string, id uuid.UUID) {
	s.bus.unsubscribe(event, id)
}

// SetReticleVisible toggles the reticle node independent of selection state.
func (s *Selector) SetReticleVisible(visible bool) {
	s.visuals.reticle.Visible = visible
}

// SetRayVisible toggles the beam node independent of selection state.
func (s *Selector) SetRayVisible(visible bool) {
	s.visuals.beam.Visible = visible
}

// SetActive is a reserved hook for pressed/active visual feedback. It records
// the flag but currently has no visible effect; callers must not depend on
// one.
func (s *Selector) SetActive(active bool) {
	s.active = active
}

func (s *Selector) focus(d float32) {
	s.distance = d
	s.refresh()
}

func (s *Selector) refresh() {
	s.visuals.refresh(s.ray.ray, s.distance)
}
