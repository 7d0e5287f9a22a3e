// raypick-demo opens a window and drives a Selector from the mouse cursor:
// hover the cube ahead of the camera to select it, click to trigger its
// action handler. Rendering is left to the host in real integrations; here
// selection changes are just logged.
package main

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gekko3d/raypick"
)

const (
	windowWidth  = 960
	windowHeight = 540
)

// box is a selectable axis-aligned cube.
type box struct {
	id       uuid.UUID
	min, max mgl32.Vec3
}

func (b *box) ID() uuid.UUID { return b.id }

func (b *box) WorldAABB() (mgl32.Vec3, mgl32.Vec3) { return b.min, b.max }

func init() {
	// glfw event handling must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	zl, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer zl.Sync()
	log := zl.Sugar()

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	win, err := glfw.CreateWindow(windowWidth, windowHeight, "raypick demo", nil, nil)
	if err != nil {
		panic(err)
	}

	sel := raypick.NewSelector(raypick.AABBIntersector{}, raypick.WithLogger(raypick.WrapZap(zl)))
	sel.Subscribe(raypick.EventSelect, func(o raypick.Interactable) {
		log.Infof("select %s at distance %.2f", o.ID(), sel.ReticleDistance())
	})
	sel.Subscribe(raypick.EventDeselect, func(o raypick.Interactable) {
		log.Infof("deselect %s", o.ID())
	})

	cam := raypick.NewPerspectiveCamera(windowWidth, windowHeight)
	cam.Position = mgl32.Vec3{0, 0, 5}

	target := &box{
		id:  uuid.New(),
		min: mgl32.Vec3{-1, -1, -1},
		max: mgl32.Vec3{1, 1, 1},
	}
	sel.Add(target, raypick.HandlerSet{
		OnAction: func(o raypick.Interactable) { log.Infof("action %s", o.ID()) },
	})

	win.SetMouseButtonCallback(func(w *glfw.Window, b glfw.MouseButton, a glfw.Action, m glfw.ModifierKey) {
		if b == glfw.MouseButtonLeft && a == glfw.Press {
			sel.Activate()
		}
	})

	for !win.ShouldClose() {
		glfw.PollEvents()

		mx, my := win.GetCursorPos()
		sel.SetPointer(float32(mx), float32(my), cam)

		if err := sel.Update(); err != nil {
			log.Warnf("update: %v", err)
		}
	}
}
