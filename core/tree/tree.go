// core/tree/tree.go
package tree

import "fmt"

// NodeIdx addresses a node in a Tree: an internal node or a leaf.
type NodeIdx struct {
	Internal bool
	Idx      int
}

// Leaf returns the NodeIdx of leaf i.
func Leaf(i int) NodeIdx { return NodeIdx{Idx: i} }

// Internal returns the NodeIdx of internal node i.
func Internal(i int) NodeIdx { return NodeIdx{Internal: true, Idx: i} }

func (n NodeIdx) String() string {
	if n.Internal {
		return fmt.Sprintf("internal node %d", n.Idx)
	}
	return fmt.Sprintf("leaf %d", n.Idx)
}

// Node is a single tree node. Children is meaningful for internals only.
type Node struct {
	ID        string
	Children  [2]NodeIdx
	BranchLen float64
}

// Tree is a strictly bifurcating rooted guide tree. Branch lengths are
// stored on the child node of each branch.
type Tree struct {
	Leaves    []Node
	Internals []Node
	Root      NodeIdx
	Postorder []NodeIdx
}

// New returns a tree with nLeaves unconnected leaves and the root preset to
// internal node rootIdx. Internals are grown by AddParent.
func New(nLeaves, rootIdx int) *Tree {
	return &Tree{
		Leaves: make([]Node, nLeaves),
		Root:   Internal(rootIdx),
	}
}

// Node returns the node addressed by idx.
func (t *Tree) Node(idx NodeIdx) *Node {
	if idx.Internal {
		return &t.Internals[idx.Idx]
	}
	return &t.Leaves[idx.Idx]
}

// AddParent creates (or fills) internal node idx joining children x and y
// with branch lengths bx and by.
func (t *Tree) AddParent(idx int, x, y NodeIdx, bx, by float64) {
	for len(t.Internals) <= idx {
		t.Internals = append(t.Internals, Node{})
	}
	t.Internals[idx].Children = [2]NodeIdx{x, y}
	t.Node(x).BranchLen = bx
	t.Node(y).BranchLen = by
}

// CreatePostorder (re)computes the postorder traversal: children always
// precede their parent.
func (t *Tree) CreatePostorder() {
	order := make([]NodeIdx, 0, len(t.Leaves)+len(t.Internals))
	var walk func(NodeIdx)
	walk = func(n NodeIdx) {
		if n.Internal {
			for _, c := range t.Internals[n.Idx].Children {
				walk(c)
			}
		}
		order = append(order, n)
	}
	walk(t.Root)
	t.Postorder = order
}

// PreorderSubroot returns the preorder traversal of the subtree under sub.
func (t *Tree) PreorderSubroot(sub NodeIdx) []NodeIdx {
	var order []NodeIdx
	var walk func(NodeIdx)
	walk = func(n NodeIdx) {
		order = append(order, n)
		if n.Internal {
			for _, c := range t.Internals[n.Idx].Children {
				walk(c)
			}
		}
	}
	walk(sub)
	return order
}

// BranchLengths returns the branch length of every node except the root.
func (t *Tree) BranchLengths() []float64 {
	out := make([]float64, 0, len(t.Leaves)+len(t.Internals)-1)
	for i := range t.Leaves {
		out = append(out, t.Leaves[i].BranchLen)
	}
	for i := range t.Internals {
		if t.Root.Internal && t.Root.Idx == i {
			continue
		}
		out = append(out, t.Internals[i].BranchLen)
	}
	return out
}

// NodeID returns a printable id suffix for log messages, empty when the
// node is unnamed.
func (t *Tree) NodeID(idx NodeIdx) string {
	id := t.Node(idx).ID
	if id == "" {
		return ""
	}
	return " " + id
}
