package raypick

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Forward is the canonical "into the screen" direction. Ray directions derived
// from an orientation rotate this vector.
var Forward = mgl32.Vec3{0, 0, -1}

// Ray is a directed line cast into the scene for hit-testing.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3 // unit length
}

// NewRay builds a ray, normalizing dir.
func NewRay(origin, dir mgl32.Vec3) Ray {
	return Ray{Origin: origin, Dir: safeNormalize(dir)}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

type raySource int

const (
	raySourcePose raySource = iota
	raySourcePointer
)

// rayState tags the current ray with the input mode that last wrote it.
// The three setters are mutually overriding: each fully recomputes the parts
// of the ray it owns, so there is never half-updated state.
type rayState struct {
	ray    Ray
	source raySource
}

func (s *rayState) setPosition(p mgl32.Vec3) {
	s.ray.Origin = p
	s.source = raySourcePose
}

func (s *rayState) setOrientation(q mgl32.Quat) {
	s.ray.Dir = safeNormalize(q.Rotate(Forward))
	s.source = raySourcePose
}

func (s *rayState) setPointer(x, y float32, cam Camera) {
	s.ray = ScreenRay(cam, x, y)
	s.source = raySourcePointer
}

func safeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	if v.LenSqr() < 1e-12 {
		return Forward
	}
	return v.Normalize()
}
