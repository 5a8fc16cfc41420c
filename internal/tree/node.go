package tree

import "github.com/atomicstack/treehouse/internal/component"

// Node is a vertex of the document tree.
type Node struct {
	id         string
	name       string
	parent     *Node
	children   []*Node
	components *component.Store
	tree       *Tree
	destroyed  bool
}

// ID returns the node's immutable identifier.
func (n *Node) ID() string {
	return n.id
}

func (n *Node) Name() string {
	return n.name
}

// SetName replaces the label. It does not signal a change.
func (n *Node) SetName(name string) {
	n.name = name
}

// Parent returns the parent node, or nil for roots and detached nodes.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the ordered child sequence.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the child at index i, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// SiblingIndex returns the node's position in its parent's child sequence,
// or -1 when the node has no parent.
func (n *Node) SiblingIndex() int {
	if n.parent == nil {
		return -1
	}
	return indexOf(n.parent.children, n)
}

// PrevSibling returns the preceding sibling, or nil at the start.
func (n *Node) PrevSibling() *Node {
	idx := n.SiblingIndex()
	if idx <= 0 {
		return nil
	}
	return n.parent.children[idx-1]
}

// NextSibling returns the following sibling, or nil at the end.
func (n *Node) NextSibling() *Node {
	idx := n.SiblingIndex()
	if idx < 0 || idx+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[idx+1]
}

// Alive reports whether the node is still registered with its tree.
func (n *Node) Alive() bool {
	return n != nil && !n.destroyed
}

// IsRoot reports whether n is the tree's root sentinel.
func (n *Node) IsRoot() bool {
	return n.id == RootID
}

// IsAncestorOf reports whether n is a strict ancestor of other.
func (n *Node) IsAncestorOf(other *Node) bool {
	if other == nil {
		return false
	}
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Changed signals the tree's notifier that n needs to be re-rendered.
// Destroyed nodes never notify.
func (n *Node) Changed() {
	if n.destroyed || n.tree == nil || n.tree.notifier == nil {
		return
	}
	n.tree.notifier.NodeChanged(n)
}

// AddComponent attaches c, replacing an existing component of the same kind,
// and signals a change.
func (n *Node) AddComponent(c component.Component) {
	if c == nil {
		return
	}
	n.components.Add(c)
	n.Changed()
}

// RemoveComponent detaches the component of kind k. A change is signalled
// only when something was removed.
func (n *Node) RemoveComponent(k component.Kind) bool {
	if !n.components.Remove(k) {
		return false
	}
	n.Changed()
	return true
}

func (n *Node) HasComponent(k component.Kind) bool {
	return n.components.Has(k)
}

// GetComponent returns the live component of kind k.
func (n *Node) GetComponent(k component.Kind) (component.Component, bool) {
	return n.components.Get(k)
}

// Components exposes the node's component store.
func (n *Node) Components() *component.Store {
	return n.components
}

func indexOf(nodes []*Node, target *Node) int {
	for i, n := range nodes {
		if n == target {
			return i
		}
	}
	return -1
}

func removeAt(nodes []*Node, idx int) []*Node {
	copy(nodes[idx:], nodes[idx+1:])
	nodes[len(nodes)-1] = nil
	return nodes[:len(nodes)-1]
}

func insertAt(nodes []*Node, idx int, n *Node) []*Node {
	nodes = append(nodes, nil)
	copy(nodes[idx+1:], nodes[idx:])
	nodes[idx] = n
	return nodes
}
