package viz_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crimson/rbtree"
	"crimson/viz"
)

type item struct {
	val  int64
	node rbtree.Node[*item]
}

func buildTree(t *testing.T, vals ...int64) *rbtree.Tree[*item] {
	t.Helper()

	tree := &rbtree.Tree[*item]{}
	for _, v := range vals {
		it := &item{val: v}
		it.node.Init()
		it.node.Item = it

		var parent *rbtree.Node[*item]
		dir := rbtree.Left
		n := tree.Root()
		for n != nil {
			parent = n
			dir = rbtree.Right
			if n.Item.val > it.val {
				dir = rbtree.Left
			}
			n = n.Child(dir)
		}
		tree.Link(&it.node, parent, dir)
		require.NoError(t, tree.Balance(&it.node))
	}
	return tree
}

func label(it *item) string { return strconv.FormatInt(it.val, 10) }

func TestDOT(t *testing.T) {
	t.Run("empty tree", func(t *testing.T) {
		tree := &rbtree.Tree[*item]{}
		out := viz.DOT(tree, label)
		assert.Equal(t, "digraph RBTree {\n}\n", out)
	})

	t.Run("labels and colors", func(t *testing.T) {
		tree := buildTree(t, 5, 3, 8)
		out := viz.DOT(tree, label)

		assert.True(t, strings.HasPrefix(out, "digraph RBTree {\n"))
		assert.True(t, strings.HasSuffix(out, "}\n"))
		for _, v := range []string{"5", "3", "8"} {
			assert.Contains(t, out, `[label="`+v+`"`)
		}
		// Root is black, both children of a three-node tree are red.
		assert.Contains(t, out, "color=black")
		assert.Contains(t, out, "color=red")
	})

	t.Run("stubs for empty slots", func(t *testing.T) {
		tree := buildTree(t, 1)
		out := viz.DOT(tree, label)
		assert.Equal(t, 2, strings.Count(out, `width=0.1`))
		assert.Equal(t, 2, strings.Count(out, "->"))
	})
}

func TestRenderChart(t *testing.T) {
	t.Run("writes html page", func(t *testing.T) {
		tree := buildTree(t, 5, 3, 8, 1, 4, 7, 9)

		var buf bytes.Buffer
		require.NoError(t, viz.RenderChart(&buf, tree, "snapshot", label))

		out := buf.String()
		assert.Contains(t, out, "echarts")
		for _, v := range []string{"1", "3", "4", "5", "7", "8", "9"} {
			assert.Contains(t, out, v)
		}
	})

	t.Run("empty tree renders", func(t *testing.T) {
		tree := &rbtree.Tree[*item]{}
		var buf bytes.Buffer
		require.NoError(t, viz.RenderChart(&buf, tree, "empty", label))
		assert.NotZero(t, buf.Len())
	})
}
