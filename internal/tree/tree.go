// Package tree owns the outline's nodes and their structural links.
//
// Every Tree has a root sentinel with the reserved id RootID. Nodes created
// through NewNode start detached; SetParent and SetSiblingIndex move them
// around, Destroy removes a node and all of its descendants.
//
// Structural operations validate first and mutate second, so a rejected call
// leaves the tree exactly as it was.
package tree

import (
	"errors"
	"fmt"

	"github.com/atomicstack/treehouse/internal/component"
	"github.com/atomicstack/treehouse/internal/logging/events"
	"github.com/google/uuid"
)

// RootID is the identifier of the root sentinel.
const RootID = "@root"

var (
	ErrNotFound      = errors.New("node not found")
	ErrDestroyed     = errors.New("node destroyed")
	ErrCycle         = errors.New("parent is a descendant of node")
	ErrRootImmutable = errors.New("root node cannot be moved or destroyed")
)

// Notifier receives change signals raised by Node.Changed.
type Notifier interface {
	NodeChanged(*Node)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(*Node)

func (f NotifierFunc) NodeChanged(n *Node) { f(n) }

// Option configures a Tree.
type Option func(*Tree)

// WithIDGenerator replaces the uuid generator, mainly for deterministic tests.
func WithIDGenerator(gen func() string) Option {
	return func(t *Tree) {
		if gen != nil {
			t.newID = gen
		}
	}
}

// WithNotifier sets the change notifier.
func WithNotifier(n Notifier) Option {
	return func(t *Tree) { t.notifier = n }
}

// Tree indexes nodes by id.
type Tree struct {
	nodes    map[string]*Node
	root     *Node
	notifier Notifier
	newID    func() string
}

// New returns a tree holding only the root sentinel.
func New(opts ...Option) *Tree {
	t := &Tree{
		nodes: make(map[string]*Node),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.root = t.register(RootID, "")
	return t
}

// SetNotifier replaces the change notifier.
func (t *Tree) SetNotifier(n Notifier) {
	t.notifier = n
}

// Root returns the root sentinel.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the number of live nodes, including the root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NewNode creates a detached node with a fresh identifier.
func (t *Tree) NewNode(name string) *Node {
	id := t.newID()
	for id == "" || t.nodes[id] != nil {
		id = uuid.NewString()
	}
	return t.register(id, name)
}

// NewNodeWithID creates a detached node with a caller-chosen identifier.
func (t *Tree) NewNodeWithID(id, name string) (*Node, error) {
	if id == "" || id == RootID {
		return nil, fmt.Errorf("invalid node id %q", id)
	}
	if _, taken := t.nodes[id]; taken {
		return nil, fmt.Errorf("node id %q already in use", id)
	}
	return t.register(id, name), nil
}

func (t *Tree) register(id, name string) *Node {
	n := &Node{
		id:         id,
		name:       name,
		components: component.NewStore(),
		tree:       t,
	}
	t.nodes[id] = n
	return n
}

// Find resolves id to a live node.
func (t *Tree) Find(id string) (*Node, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return n, nil
}

// SetParent moves n to the end of parent's child sequence. A nil parent
// detaches n. Cycles, destroyed nodes and moving the root are rejected
// without touching the tree.
func (t *Tree) SetParent(n, parent *Node) error {
	if err := t.checkMovable(n); err != nil {
		t.reject("set-parent", n, err)
		return err
	}
	if parent != nil {
		if err := t.checkOwned(parent); err != nil {
			t.reject("set-parent", n, err)
			return err
		}
		if parent == n || n.IsAncestorOf(parent) {
			err := fmt.Errorf("%w: %s under %s", ErrCycle, n.id, parent.id)
			t.reject("set-parent", n, err)
			return err
		}
	}

	from := ""
	if n.parent != nil {
		from = n.parent.id
	}
	t.detach(n)
	to := ""
	if parent != nil {
		parent.children = append(parent.children, n)
		n.parent = parent
		to = parent.id
	}
	events.Tree.Reparent(n.id, from, to)
	return nil
}

// SetSiblingIndex moves n within its parent's child sequence. Out of range
// indexes are clamped. Detached nodes are left alone.
func (t *Tree) SetSiblingIndex(n *Node, index int) {
	if n == nil || n.destroyed || n.parent == nil {
		return
	}
	p := n.parent
	cur := indexOf(p.children, n)
	if cur < 0 {
		return
	}
	p.children = removeAt(p.children, cur)
	if index < 0 {
		index = 0
	}
	if index > len(p.children) {
		index = len(p.children)
	}
	p.children = insertAt(p.children, index, n)
	events.Tree.Reorder(n.id, index)
}

// Destroy detaches n and destroys its whole subtree, children first. Every
// destroyed id stops resolving through Find.
func (t *Tree) Destroy(n *Node) error {
	if err := t.checkMovable(n); err != nil {
		t.reject("destroy", n, err)
		return err
	}
	t.detach(n)
	count := 0
	var destroy func(*Node)
	destroy = func(x *Node) {
		for _, child := range x.children {
			destroy(child)
		}
		x.children = nil
		x.parent = nil
		x.components.Clear()
		x.destroyed = true
		delete(t.nodes, x.id)
		count++
	}
	destroy(n)
	events.Tree.Destroy(n.id, count)
	return nil
}

// Walk visits n and its descendants in document order. Returning false from
// fn skips the visited node's children.
func (t *Tree) Walk(n *Node, fn func(*Node) bool) {
	if n == nil || n.destroyed {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		t.Walk(child, fn)
	}
}

func (t *Tree) detach(n *Node) {
	if n.parent == nil {
		return
	}
	p := n.parent
	if idx := indexOf(p.children, n); idx >= 0 {
		p.children = removeAt(p.children, idx)
	}
	n.parent = nil
}

func (t *Tree) checkOwned(n *Node) error {
	if n == nil {
		return ErrNotFound
	}
	if n.destroyed {
		return fmt.Errorf("%w: %s", ErrDestroyed, n.id)
	}
	if n.tree != t {
		return fmt.Errorf("%w: %s", ErrNotFound, n.id)
	}
	return nil
}

func (t *Tree) checkMovable(n *Node) error {
	if err := t.checkOwned(n); err != nil {
		return err
	}
	if n == t.root {
		return ErrRootImmutable
	}
	return nil
}

func (t *Tree) reject(op string, n *Node, err error) {
	id := ""
	if n != nil {
		id = n.id
	}
	events.Tree.Rejected(op, id, err)
}
