package rbtree

// First returns the minimum node in sort order, or nil if the tree is
// empty.
func (t *Tree[T]) First() *Node[T] {
	if t == nil || t.root == nil {
		return nil
	}
	n := t.root
	for n.child[Left] != nil {
		n = n.child[Left]
	}
	return n
}

// Last returns the maximum node in sort order, or nil if the tree is
// empty.
func (t *Tree[T]) Last() *Node[T] {
	if t == nil || t.root == nil {
		return nil
	}
	n := t.root
	for n.child[Right] != nil {
		n = n.child[Right]
	}
	return n
}

// Next returns the in-order successor, or nil at the end of the
// sequence. A detached node has no successor.
func (n *Node[T]) Next() *Node[T] {
	if n == nil || n.parent == n {
		return nil
	}

	// With a right child, the successor is the leftmost node of
	// that subtree.
	if n.child[Right] != nil {
		n = n.child[Right]
		for n.child[Left] != nil {
			n = n.child[Left]
		}
		return n
	}

	// Otherwise climb while n is a right child; the first ancestor
	// reached from its left side is the successor.
	parent := n.parent
	for parent != nil && n == parent.child[Right] {
		n = parent
		parent = n.parent
	}
	return parent
}

// Prev returns the in-order predecessor, or nil at the start of the
// sequence. A detached node has no predecessor.
func (n *Node[T]) Prev() *Node[T] {
	if n == nil || n.parent == n {
		return nil
	}

	if n.child[Left] != nil {
		n = n.child[Left]
		for n.child[Right] != nil {
			n = n.child[Right]
		}
		return n
	}

	parent := n.parent
	for parent != nil && n == parent.child[Left] {
		n = parent
		parent = n.parent
	}
	return parent
}
