package raypick

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Node is a transform primitive the host attaches to its scene graph and
// renders however it likes. The reticle and beam nodes are owned by the
// Selector: their transforms are recomputed wholesale from ray state on every
// refresh and must not be written by callers.
type Node struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Visible  bool

	parent   *Node
	children []*Node
}

func NewNode(name string) *Node {
	return &Node{
		Name:     name,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
		Visible:  true,
	}
}

// AddChild attaches child to n, detaching it from any previous parent first.
func (n *Node) AddChild(child *Node) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from n. Unknown children are ignored.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

func (n *Node) Children() []*Node { return n.children }

func (n *Node) Parent() *Node { return n.parent }
