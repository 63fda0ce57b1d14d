package viz

import (
	"fmt"
	"io"
	"strings"

	"crimson/rbtree"
)

// WriteDOT serializes the tree as a Graphviz digraph. Nodes carry
// their label and color; empty child slots are drawn as small
// unlabeled stubs so the left/right shape stays visible.
func WriteDOT[T any](w io.Writer, tree *rbtree.Tree[T], label func(T) string) error {
	d := &dotWriter[T]{w: w, label: label}
	d.printf("digraph RBTree {\n")
	if root := tree.Root(); root != nil {
		d.node(root)
	}
	d.printf("}\n")
	return d.err
}

// DOT is WriteDOT into a string.
func DOT[T any](tree *rbtree.Tree[T], label func(T) string) string {
	var sb strings.Builder
	// Writes to a strings.Builder cannot fail.
	_ = WriteDOT(&sb, tree, label)
	return sb.String()
}

type dotWriter[T any] struct {
	w     io.Writer
	label func(T) string
	next  int
	err   error
}

func (d *dotWriter[T]) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *dotWriter[T]) id() int {
	d.next++
	return d.next
}

func (d *dotWriter[T]) node(n *rbtree.Node[T]) int {
	id := d.id()

	if left := n.Left(); left != nil {
		d.printf("    n%d -> n%d;\n", id, d.node(left))
	} else {
		d.stub(id)
	}

	color := "red"
	if n.Color() == rbtree.Black {
		color = "black"
	}
	d.printf("    n%d [label=%q, penwidth=5, color=%s]\n", id, d.label(n.Item), color)

	if right := n.Right(); right != nil {
		d.printf("    n%d -> n%d;\n", id, d.node(right))
	} else {
		d.stub(id)
	}
	return id
}

func (d *dotWriter[T]) stub(parent int) {
	id := d.id()
	d.printf("    n%d -> n%d;\n", parent, id)
	d.printf("    n%d [label=\"\", width=0.1, height=0.1]\n", id)
}
