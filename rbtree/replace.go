package rbtree

// Replace substitutes repl for old at the identical structural
// position, preserving color and all links. The tree shape is
// untouched, so no rebalancing happens; only the record identity at
// that position changes. repl must be detached. The displaced node's
// links are poisoned as after Remove.
func (t *Tree[T]) Replace(old, repl *Node[T]) error {
	if t == nil {
		return ErrNilTree
	}
	if old == nil || repl == nil {
		return ErrNilNode
	}
	if old.Detached() {
		return ErrNotLinked
	}
	if repl == t.root || (repl.parent != nil && repl.parent != repl) {
		return ErrLinked
	}

	t.changeChild(old, repl, old.parent)
	if old.child[Left] != nil {
		old.child[Left].parent = repl
	}
	if old.child[Right] != nil {
		old.child[Right].parent = repl
	}

	repl.parent = old.parent
	repl.child = old.child
	repl.color = old.color

	old.parent = old
	return nil
}
