package rbtree

import "errors"

type Color uint8

const (
	Red   Color = 0
	Black Color = 1
)

// Direction selects one of a node's two child slots.
type Direction uint8

const (
	Left  Direction = 0
	Right Direction = 1
)

// Other returns the opposite direction.
func (d Direction) Other() Direction { return d ^ 1 }

var (
	ErrNilTree   = errors.New("rbtree: nil tree")
	ErrNilNode   = errors.New("rbtree: nil node")
	ErrNotLinked = errors.New("rbtree: node is not linked in a tree")
	ErrLinked    = errors.New("rbtree: node is already linked in a tree")
)

// Node is the intrusive unit embedded in a caller's record. Item is an
// opaque back reference to the owning record; the tree never reads it.
//
// A detached node uses a self-referential parent as sentinel. Call
// Init before linking a node for the first time and before reusing a
// node after Remove.
type Node[T any] struct {
	Item   T
	parent *Node[T]
	child  [2]*Node[T]
	color  Color
}

// Init marks the node detached and clears its links.
func (n *Node[T]) Init() {
	n.parent = n
	n.child[Left] = nil
	n.child[Right] = nil
	n.color = Red
}

// Detached reports whether the node is outside any tree.
func (n *Node[T]) Detached() bool { return n.parent == n }

// Parent returns the structural parent, or nil for the root.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// Child returns the child in the given direction, or nil for an empty
// (implicitly black) leaf slot.
func (n *Node[T]) Child(dir Direction) *Node[T] { return n.child[dir] }

// Left returns the left child.
func (n *Node[T]) Left() *Node[T] { return n.child[Left] }

// Right returns the right child.
func (n *Node[T]) Right() *Node[T] { return n.child[Right] }

// Color returns the node's current color.
func (n *Node[T]) Color() Color { return n.color }

// Tree holds the root of an intrusive red-black tree. The zero value
// is an empty tree.
type Tree[T any] struct {
	root *Node[T]
}

// Root returns the top node, or nil if the tree is empty.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Empty reports whether the tree holds no nodes.
func (t *Tree[T]) Empty() bool { return t.root == nil }

// Clear detaches the tree from all nodes. Node links are left stale,
// as after Remove.
func (t *Tree[T]) Clear() { t.root = nil }

// Link attaches node as a red leaf in the child slot dir of parent,
// or as the tree root when parent is nil. The caller has already
// located parent by descending with its own key comparison; Balance
// must be called next to restore the tree invariants.
func (t *Tree[T]) Link(node, parent *Node[T], dir Direction) {
	node.color = Red
	node.child[Left] = nil
	node.child[Right] = nil
	node.parent = parent
	if parent == nil {
		t.root = node
		return
	}
	parent.child[dir] = node
}
