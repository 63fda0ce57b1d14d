package viz

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"crimson/rbtree"
)

const (
	chartWidth  = "1200px"
	chartHeight = "800px"

	colorRed   = "#d62728"
	colorBlack = "#2f2f2f"
)

// RenderChart writes a self-contained HTML page with the tree drawn
// as an echarts tree chart, nodes colored red or black to match the
// tree.
func RenderChart[T any](w io.Writer, tree *rbtree.Tree[T], title string, label func(T) string) error {
	chart := charts.NewTree()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	data := []opts.TreeData{}
	if root := tree.Root(); root != nil {
		data = append(data, *chartNode(root, label))
	}

	chart.AddSeries("tree", data,
		charts.WithTreeOpts(opts.TreeChart{
			Orient:           "TB",
			InitialTreeDepth: -1,
			Label: &opts.Label{
				Show:     opts.Bool(true),
				Position: "top",
			},
		}),
	)
	return chart.Render(w)
}

func chartNode[T any](n *rbtree.Node[T], label func(T) string) *opts.TreeData {
	color := colorRed
	if n.Color() == rbtree.Black {
		color = colorBlack
	}
	data := &opts.TreeData{
		Name:      label(n.Item),
		ItemStyle: &opts.ItemStyle{Color: color},
	}
	if left := n.Left(); left != nil {
		data.Children = append(data.Children, chartNode(left, label))
	}
	if right := n.Right(); right != nil {
		data.Children = append(data.Children, chartNode(right, label))
	}
	return data
}
