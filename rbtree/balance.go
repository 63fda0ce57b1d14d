package rbtree

// Balance restores the red-black invariants after node has been
// linked as a red leaf (see Link). It walks upward from node; each
// iteration either terminates with a rotation, or recolors and climbs
// one grandparent closer to the root.
func (t *Tree[T]) Balance(node *Node[T]) error {
	if t == nil {
		return ErrNilTree
	}
	if node == nil {
		return ErrNilNode
	}

	parent := node.parent
	for {
		// Loop invariant: node is red.
		if parent == nil {
			// node is the root: either the first node in the
			// tree, or Case 1 climbed all the way up.
			node.color = Black
			break
		}
		if parent.color == Black {
			break
		}

		// parent is red, so a grandparent exists: the root is
		// always black.
		gparent := parent.parent

		tmp := gparent.child[Right]
		if parent != tmp { // parent == gparent.child[Left]
			if tmp != nil && tmp.color == Red {
				// Case 1: the uncle is red. Flip colors
				// and climb; gparent's own parent may be
				// red as well.
				tmp.color = Black
				parent.color = Black
				node = gparent
				parent = node.parent
				node.color = Red
				continue
			}

			tmp = parent.child[Right]
			if node == tmp {
				// Case 2: black uncle, node is the inner
				// grandchild. Rotate left at parent to
				// reduce to Case 3.
				tmp = node.child[Left]
				parent.child[Right] = tmp
				node.child[Left] = parent
				if tmp != nil {
					tmp.parent = parent
					tmp.color = Black
				}
				parent.parent = node
				parent.color = Red
				parent = node
				tmp = node.child[Right]
			}

			// Case 3: black uncle, node is the outer
			// grandchild. Rotate right at gparent; terminal.
			gparent.child[Left] = tmp
			parent.child[Right] = gparent
			if tmp != nil {
				tmp.parent = gparent
				tmp.color = Black
			}
			t.rotateSwapParents(gparent, parent, Red)
			break
		}

		tmp = gparent.child[Left]
		if tmp != nil && tmp.color == Red {
			// Case 1: red uncle, mirrored.
			tmp.color = Black
			parent.color = Black
			node = gparent
			parent = node.parent
			node.color = Red
			continue
		}

		tmp = parent.child[Left]
		if node == tmp {
			// Case 2 mirrored: rotate right at parent.
			tmp = node.child[Right]
			parent.child[Left] = tmp
			node.child[Right] = parent
			if tmp != nil {
				tmp.parent = parent
				tmp.color = Black
			}
			parent.parent = node
			parent.color = Red
			parent = node
			tmp = node.child[Left]
		}

		// Case 3 mirrored: rotate left at gparent.
		gparent.child[Right] = tmp
		parent.child[Left] = gparent
		if tmp != nil {
			tmp.parent = gparent
			tmp.color = Black
		}
		t.rotateSwapParents(gparent, parent, Red)
		break
	}

	return nil
}
