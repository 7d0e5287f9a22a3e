package raypick

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera supplies the matrices needed to unproject a 2D pointer into a world
// ray. Hosts with their own camera type implement this directly.
type Camera interface {
	ViewMatrix() mgl32.Mat4
	ProjectionMatrix() mgl32.Mat4
	Viewport() (width, height float32)
}

// ScreenRay unprojects pixel coordinates through cam into a world-space ray.
// x grows right, y grows down (window convention). The ray originates on the
// near plane and points through the far-plane projection of the pointer.
func ScreenRay(cam Camera, x, y float32) Ray {
	w, h := cam.Viewport()
	if w <= 0 || h <= 0 {
		return Ray{Dir: Forward}
	}
	ndcX := 2*x/w - 1
	ndcY := 1 - 2*y/h // flip Y

	inv := cam.ProjectionMatrix().Mul4(cam.ViewMatrix()).Inv()

	near := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})
	if near.W() != 0 {
		near = near.Mul(1 / near.W())
	}
	if far.W() != 0 {
		far = far.Mul(1 / far.W())
	}

	origin := near.Vec3()
	return Ray{Origin: origin, Dir: safeNormalize(far.Vec3().Sub(origin))}
}

// PerspectiveCamera is a minimal Camera implementation for hosts that do not
// bring their own. The camera looks down local -Z, rotated by Rotation.
type PerspectiveCamera struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat

	FovY      float32 // vertical field of view, degrees
	Near, Far float32

	Width, Height float32 // viewport, pixels
}

func NewPerspectiveCamera(width, height float32) *PerspectiveCamera {
	return &PerspectiveCamera{
		Rotation: mgl32.QuatIdent(),
		FovY:     45,
		Near:     0.1,
		Far:      1000,
		Width:    width,
		Height:   height,
	}
}

func (c *PerspectiveCamera) ViewMatrix() mgl32.Mat4 {
	// Inverse of the camera's world transform: rotate back, then untranslate.
	rot := c.Rotation.Inverse().Mat4()
	return rot.Mul4(mgl32.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z()))
}

func (c *PerspectiveCamera) ProjectionMatrix() mgl32.Mat4 {
	aspect := float32(1)
	if c.Height > 0 {
		aspect = c.Width / c.Height
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

func (c *PerspectiveCamera) Viewport() (float32, float32) {
	return c.Width, c.Height
}
