package rbtree

// changeChild repoints the child slot of parent that holds old to n,
// or the tree root when parent is nil. This is the only place that
// touches the parent-side linkage during a rotation; callers move the
// inner subtree across before invoking it.
func (t *Tree[T]) changeChild(old, n, parent *Node[T]) {
	if parent == nil {
		t.root = n
		return
	}
	if parent.child[Left] == old {
		parent.child[Left] = n
	} else {
		parent.child[Right] = n
	}
}

// rotateSwapParents finishes a rotation: top takes over pivot's
// structural position and color, pivot is demoted beneath top with the
// supplied color, and the grandparent (or tree root) is repointed at
// top.
func (t *Tree[T]) rotateSwapParents(pivot, top *Node[T], color Color) {
	parent := pivot.parent
	top.parent = pivot.parent
	top.color = pivot.color
	pivot.parent = top
	pivot.color = color
	t.changeChild(pivot, top, parent)
}
