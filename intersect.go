package raypick

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Interactable is a host-owned scene entity registered for selection. The
// component never mutates it; geometry is only read through the Intersector.
type Interactable interface {
	ID() uuid.UUID
}

// Hit is one ray-geometry intersection.
type Hit struct {
	Object   Interactable
	Distance float32
	Point    mgl32.Vec3
}

// Intersector computes ray-geometry hits. Implementations return hits ordered
// by ascending distance. A non-nil error means the query could not be
// evaluated; callers must not treat it as a miss.
type Intersector interface {
	Intersect(ray Ray, obj Interactable, recursive bool) ([]Hit, error)
}

// Bounded exposes a world-space axis-aligned bounding box.
type Bounded interface {
	WorldAABB() (min, max mgl32.Vec3)
}

// Composite exposes child objects for recursive intersection.
type Composite interface {
	Children() []Interactable
}

// AABBIntersector hits any Interactable that implements Bounded, using the
// slab method. Objects without bounds are transparent to the ray. With
// recursive set, hits on Composite children are attributed to the children
// and merged into one distance-ordered list.
type AABBIntersector struct{}

func (ix AABBIntersector) Intersect(ray Ray, obj Interactable, recursive bool) ([]Hit, error) {
	var hits []Hit
	if b, ok := obj.(Bounded); ok {
		bmin, bmax := b.WorldAABB()
		if tmin, tmax, ok := intersectAABB(ray, bmin, bmax); ok {
			hits = append(hits, Hit{Object: obj, Distance: tmin, Point: ray.At(tmin)})
			if tmax > tmin {
				hits = append(hits, Hit{Object: obj, Distance: tmax, Point: ray.At(tmax)})
			}
		}
	}
	if recursive {
		if c, ok := obj.(Composite); ok {
			for _, child := range c.Children() {
				sub, err := ix.Intersect(ray, child, true)
				if err != nil {
					return nil, err
				}
				hits = append(hits, sub...)
			}
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits, nil
}

// intersectAABB runs the slab test, returning entry and exit distances along
// the ray. A ray starting inside the box reports entry at 0.
func intersectAABB(ray Ray, bmin, bmax mgl32.Vec3) (float32, float32, bool) {
	tmin := float32(0)
	tmax := float32(math.MaxFloat32)
	for axis := 0; axis < 3; axis++ {
		o, d := ray.Origin[axis], ray.Dir[axis]
		if mgl32.Abs(d) < 1e-9 {
			// Parallel to the slab: inside or never.
			if o < bmin[axis] || o > bmax[axis] {
				return 0, 0, false
			}
			continue
		}
		t1 := (bmin[axis] - o) / d
		t2 := (bmax[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, 0, false
		}
	}
	return tmin, tmax, true
}
