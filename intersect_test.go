package raypick

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boundedObject struct {
	id       uuid.UUID
	min, max mgl32.Vec3
}

func newBox(min, max mgl32.Vec3) *boundedObject {
	return &boundedObject{id: uuid.New(), min: min, max: max}
}

func (o *boundedObject) ID() uuid.UUID { return o.id }

func (o *boundedObject) WorldAABB() (mgl32.Vec3, mgl32.Vec3) { return o.min, o.max }

type groupObject struct {
	id       uuid.UUID
	children []Interactable
}

func (g *groupObject) ID() uuid.UUID { return g.id }

func (g *groupObject) Children() []Interactable { return g.children }

func TestAABBEntryAndExit(t *testing.T) {
	box := newBox(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})
	ray := NewRay(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1})

	hits, err := AABBIntersector{}.Intersect(ray, box, false)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.InDelta(t, 4.0, hits[0].Distance, 1e-5)
	assert.InDelta(t, 6.0, hits[1].Distance, 1e-5)
	assertVec3(t, mgl32.Vec3{0, 0, 1}, hits[0].Point, 1e-5)
	assert.Same(t, box, hits[0].Object.(*boundedObject))
}

func TestAABBMiss(t *testing.T) {
	box := newBox(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})

	// Pointing away.
	away := NewRay(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 1})
	hits, err := AABBIntersector{}.Intersect(away, box, false)
	require.NoError(t, err)
	assert.Empty(t, hits)

	// Parallel to a slab, outside it.
	parallel := NewRay(mgl32.Vec3{5, 0, 5}, mgl32.Vec3{0, 0, -1})
	hits, err = AABBIntersector{}.Intersect(parallel, box, false)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestAABBRayStartsInside(t *testing.T) {
	box := newBox(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})
	ray := NewRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1})

	hits, err := AABBIntersector{}.Intersect(ray, box, false)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.InDelta(t, 0.0, hits[0].Distance, 1e-6)
}

func TestRecursiveCompositeOrdersByDistance(t *testing.T) {
	near := newBox(mgl32.Vec3{-1, -1, -3}, mgl32.Vec3{1, 1, -2})
	far := newBox(mgl32.Vec3{-1, -1, -8}, mgl32.Vec3{1, 1, -6})
	group := &groupObject{id: uuid.New(), children: []Interactable{far, near}}

	ray := NewRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1})

	hits, err := AABBIntersector{}.Intersect(ray, group, true)
	require.NoError(t, err)
	require.Len(t, hits, 4)
	assert.Same(t, near, hits[0].Object.(*boundedObject))
	assert.InDelta(t, 2.0, hits[0].Distance, 1e-5)
	assert.Same(t, far, hits[3].Object.(*boundedObject))

	// Non-recursive: the group itself has no bounds.
	hits, err = AABBIntersector{}.Intersect(ray, group, false)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestUnboundedObjectIsTransparent(t *testing.T) {
	ray := NewRay(mgl32.Vec3{}, Forward)
	hits, err := AABBIntersector{}.Intersect(ray, newStubObject(), true)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
