package raypick

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultReticleDistance places the reticle when no object is focused.
const DefaultReticleDistance float32 = 3.0

// placement owns the reticle and beam nodes and keeps them consistent with
// the current ray and focus distance. Both transforms are pure functions of
// (origin, dir, distance) and are recomputed wholesale on every refresh, so
// they can never go stale.
type placement struct {
	root    *Node
	reticle *Node
	beam    *Node
}

func newPlacement() *placement {
	p := &placement{
		root:    NewNode("raypick"),
		reticle: NewNode("reticle"),
		beam:    NewNode("beam"),
	}
	p.root.AddChild(p.reticle)
	p.root.AddChild(p.beam)
	return p
}

// refresh recomputes both node transforms. The beam's unit mesh is assumed to
// span one unit along local -Z centered on its origin, so scaling Z by the
// focus distance stretches it from the ray origin to the reticle, with its
// midpoint halfway down the ray.
func (p *placement) refresh(ray Ray, distance float32) {
	rot := mgl32.QuatBetweenVectors(Forward, ray.Dir).Normalize()

	p.reticle.Position = ray.At(distance)
	p.reticle.Rotation = rot

	p.beam.Position = ray.At(distance * 0.5)
	p.beam.Rotation = rot
	p.beam.Scale = mgl32.Vec3{1, 1, distance}
}
