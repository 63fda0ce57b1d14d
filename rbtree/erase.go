package rbtree

// Remove unlinks node from the tree and rebalances if the unlink took
// a black node out of a path. The removed node's links are poisoned
// (detached sentinel); Init it before linking it again.
func (t *Tree[T]) Remove(node *Node[T]) error {
	if t == nil {
		return ErrNilTree
	}
	if node == nil {
		return ErrNilNode
	}
	if node.Detached() {
		return ErrNotLinked
	}

	if rebalance := t.erase(node); rebalance != nil {
		t.eraseColor(rebalance)
	}
	node.parent = node
	return nil
}

// erase performs the structural unlink and returns the rebalance
// anchor: the parent of the position where a black node was
// effectively removed, or nil when no color fix-up is needed.
func (t *Tree[T]) erase(node *Node[T]) *Node[T] {
	child := node.child[Right]
	tmp := node.child[Left]
	var parent, rebalance *Node[T]

	if tmp == nil {
		// At most one child, held in the right slot. A lone
		// child is red under a black node, so inheriting the
		// erased node's color keeps the black count intact.
		parent = node.parent
		color := node.color
		t.changeChild(node, child, parent)
		if child != nil {
			child.parent = parent
			child.color = color
		} else if color == Black {
			rebalance = parent
		}
	} else if child == nil {
		// Only a left child: same splice, mirrored.
		parent = node.parent
		tmp.parent = parent
		tmp.color = node.color
		t.changeChild(node, tmp, parent)
	} else {
		successor := child
		var child2 *Node[T]

		tmp = child.child[Left]
		if tmp == nil {
			// The successor is node's right child: promote it
			// in place.
			parent = successor
			child2 = successor.child[Right]
		} else {
			// The successor is the leftmost node under the
			// right subtree: detach it from its own slot
			// first, splicing its right child in.
			for {
				parent = successor
				successor = tmp
				tmp = tmp.child[Left]
				if tmp == nil {
					break
				}
			}
			child2 = successor.child[Right]
			parent.child[Left] = child2
			successor.child[Right] = child
			child.parent = successor
		}

		tmp = node.child[Left]
		successor.child[Left] = tmp
		tmp.parent = successor

		t.changeChild(node, successor, node.parent)

		if child2 != nil {
			// The successor's right child was red; recoloring
			// it black pays for the black successor that moved
			// away.
			child2.parent = parent
			child2.color = Black
		} else if successor.color == Black {
			rebalance = parent
		}
		successor.parent = node.parent
		successor.color = node.color
	}

	return rebalance
}

// eraseColor restores the equal-black-count invariant below parent
// after erase removed one black unit from the child subtree on one
// side. Driven by the sibling's color and shape; only Case 2 with a
// black parent climbs, all other cases terminate.
func (t *Tree[T]) eraseColor(parent *Node[T]) {
	var node, sibling, tmp1, tmp2 *Node[T]

	for {
		// Loop invariants: node is black (or nil on the first
		// iteration), node is not the root, and all paths
		// through parent and node are one black node short.
		sibling = parent.child[Right]
		if node != sibling { // node == parent.child[Left]
			if sibling.color == Red {
				// Case 1: red sibling. Rotate left at
				// parent, demoting it to red; the new
				// sibling is black.
				tmp1 = sibling.child[Left]
				parent.child[Right] = tmp1
				sibling.child[Left] = parent
				tmp1.parent = parent
				tmp1.color = Black
				t.rotateSwapParents(parent, sibling, Red)
				sibling = tmp1
			}
			tmp1 = sibling.child[Right]
			if tmp1 == nil || tmp1.color == Black {
				tmp2 = sibling.child[Left]
				if tmp2 == nil || tmp2.color == Black {
					// Case 2: both of the sibling's
					// children are black. Recolor the
					// sibling red; a red parent
					// absorbs the deficit, a black
					// parent propagates it upward.
					sibling.color = Red
					if parent.color == Red {
						parent.color = Black
					} else {
						node = parent
						parent = node.parent
						if parent != nil {
							continue
						}
					}
					break
				}
				// Case 3: near child red, far child black.
				// Rotate right at the sibling to expose a
				// red far child, reducing to Case 4.
				tmp1 = tmp2.child[Right]
				sibling.child[Left] = tmp1
				tmp2.child[Right] = sibling
				parent.child[Right] = tmp2
				if tmp1 != nil {
					tmp1.parent = sibling
					tmp1.color = Black
				}
				tmp1 = sibling
				sibling = tmp2
			}
			// Case 4: far child red. Rotate left at parent;
			// the sibling takes parent's color, parent and the
			// far child turn black. Terminal.
			tmp2 = sibling.child[Left]
			parent.child[Right] = tmp2
			sibling.child[Left] = parent
			tmp1.parent = sibling
			tmp1.color = Black
			if tmp2 != nil {
				tmp2.parent = parent
			}
			t.rotateSwapParents(parent, sibling, Black)
			break
		}

		sibling = parent.child[Left]
		if sibling.color == Red {
			// Case 1 mirrored: rotate right at parent.
			tmp1 = sibling.child[Right]
			parent.child[Left] = tmp1
			sibling.child[Right] = parent
			tmp1.parent = parent
			tmp1.color = Black
			t.rotateSwapParents(parent, sibling, Red)
			sibling = tmp1
		}
		tmp1 = sibling.child[Left]
		if tmp1 == nil || tmp1.color == Black {
			tmp2 = sibling.child[Right]
			if tmp2 == nil || tmp2.color == Black {
				// Case 2 mirrored.
				sibling.color = Red
				if parent.color == Red {
					parent.color = Black
				} else {
					node = parent
					parent = node.parent
					if parent != nil {
						continue
					}
				}
				break
			}
			// Case 3 mirrored: rotate left at the sibling.
			tmp1 = tmp2.child[Left]
			sibling.child[Right] = tmp1
			tmp2.child[Left] = sibling
			parent.child[Left] = tmp2
			if tmp1 != nil {
				tmp1.parent = sibling
				tmp1.color = Black
			}
			tmp1 = sibling
			sibling = tmp2
		}
		// Case 4 mirrored: rotate right at parent. Terminal.
		tmp2 = sibling.child[Right]
		parent.child[Left] = tmp2
		sibling.child[Right] = parent
		tmp1.parent = sibling
		tmp1.color = Black
		if tmp2 != nil {
			tmp2.parent = parent
		}
		t.rotateSwapParents(parent, sibling, Black)
		break
	}
}
