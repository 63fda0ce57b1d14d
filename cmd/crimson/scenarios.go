package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"crimson/archive"
	"crimson/rbtree"
	"crimson/shuffle"
	"crimson/viz"
)

type scenarioOptions struct {
	length     int
	seed       uint32
	outDir     string
	format     string
	archiveDir string
	log        *zap.Logger
}

// record is the caller-owned unit each scenario links into the tree.
type record struct {
	val  int64
	node rbtree.Node[*record]
}

func newRecord(v int64) *record {
	r := &record{val: v}
	r.node.Init()
	r.node.Item = r
	return r
}

func label(r *record) string { return strconv.FormatInt(r.val, 10) }

// insert performs the caller side of the intrusive contract.
func insert(tree *rbtree.Tree[*record], r *record) error {
	var parent *rbtree.Node[*record]
	dir := rbtree.Left
	n := tree.Root()
	for n != nil {
		parent = n
		dir = rbtree.Right
		if n.Item.val > r.val {
			dir = rbtree.Left
		}
		n = n.Child(dir)
	}
	tree.Link(&r.node, parent, dir)
	return tree.Balance(&r.node)
}

type runner struct {
	opts     *scenarioOptions
	scenario string
	store    *archive.Store
	step     uint32
}

func newRunner(scenario string, opts *scenarioOptions) (*runner, error) {
	r := &runner{opts: opts, scenario: scenario}
	if opts.outDir != "" {
		if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
			return nil, fmt.Errorf("create out dir: %w", err)
		}
	}
	if opts.archiveDir != "" {
		store, err := archive.Open(opts.archiveDir)
		if err != nil {
			return nil, fmt.Errorf("open archive: %w", err)
		}
		r.store = store
	}
	return r, nil
}

func (r *runner) close() error {
	if r.store != nil {
		return r.store.Close()
	}
	return nil
}

// snap records one snapshot of the tree under a phase name.
func (r *runner) snap(tree *rbtree.Tree[*record], phase string) error {
	step := r.step
	r.step++

	var buf bytes.Buffer
	var ext string
	switch r.opts.format {
	case "html":
		title := fmt.Sprintf("%s %s %03d", r.scenario, phase, step)
		if err := viz.RenderChart(&buf, tree, title, label); err != nil {
			return err
		}
		ext = "html"
	default:
		if err := viz.WriteDOT(&buf, tree, label); err != nil {
			return err
		}
		ext = "dot"
	}

	if r.opts.outDir != "" {
		name := fmt.Sprintf("%s_%s_%03d.%s", r.scenario, phase, step, ext)
		path := filepath.Join(r.opts.outDir, name)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}
	if r.store != nil {
		if err := r.store.Put(r.scenario, step, buf.Bytes()); err != nil {
			return fmt.Errorf("archive snapshot: %w", err)
		}
	}
	return nil
}

func runScenario(name string, opts *scenarioOptions) error {
	r, err := newRunner(name, opts)
	if err != nil {
		return err
	}
	defer func() { _ = r.close() }()

	opts.log.Info("running scenario",
		zap.String("scenario", name),
		zap.Int("len", opts.length),
		zap.Uint32("seed", opts.seed))

	switch name {
	case "rand":
		return r.insertRemove(shuffle.NewSource(opts.seed).Permutation(opts.length))
	case "sorted":
		vals := make([]int64, opts.length)
		for i := range vals {
			vals[i] = int64(i)
		}
		return r.insertRemove(vals)
	case "first":
		return r.drain("first", func(tree *rbtree.Tree[*record]) *rbtree.Node[*record] {
			return tree.First()
		})
	case "last":
		return r.drain("last", func(tree *rbtree.Tree[*record]) *rbtree.Node[*record] {
			return tree.Last()
		})
	case "root":
		return r.drain("root", func(tree *rbtree.Tree[*record]) *rbtree.Node[*record] {
			return tree.Root()
		})
	case "replace":
		return r.replaceAll()
	case "iterate":
		return r.iterate()
	default:
		return fmt.Errorf("unknown scenario %q", name)
	}
}

// insertRemove inserts vals in order, then removes the records in the
// same order, snapshotting every step.
func (r *runner) insertRemove(vals []int64) error {
	tree := &rbtree.Tree[*record]{}
	records := make([]*record, len(vals))
	for i, v := range vals {
		records[i] = newRecord(v)
		if err := insert(tree, records[i]); err != nil {
			return err
		}
		if err := r.snap(tree, "insert"); err != nil {
			return err
		}
	}

	for _, rec := range records {
		if err := tree.Remove(&rec.node); err != nil {
			return err
		}
		if err := r.snap(tree, "remove"); err != nil {
			return err
		}
	}

	if !tree.Empty() {
		return fmt.Errorf("tree not empty after removing %d records", len(vals))
	}
	r.opts.log.Info("scenario done", zap.Int("steps", int(r.step)))
	return nil
}

// drain builds a tree from bounded random values, then repeatedly
// removes whichever node pick selects until the tree is empty.
func (r *runner) drain(what string, pick func(*rbtree.Tree[*record]) *rbtree.Node[*record]) error {
	src := shuffle.NewSource(r.opts.seed)
	tree := &rbtree.Tree[*record]{}
	for i := 0; i < r.opts.length; i++ {
		v := int64(src.Next()&0x0fffffff) % int64(r.opts.length*10)
		if err := insert(tree, newRecord(v)); err != nil {
			return err
		}
		if err := r.snap(tree, "insert"); err != nil {
			return err
		}
	}

	for n := pick(tree); n != nil; n = pick(tree) {
		r.opts.log.Info("removing",
			zap.String("pick", what),
			zap.Int64("val", n.Item.val))
		if err := tree.Remove(n); err != nil {
			return err
		}
		if err := r.snap(tree, "remove"); err != nil {
			return err
		}
	}
	r.opts.log.Info("scenario done", zap.Int("steps", int(r.step)))
	return nil
}

// replaceAll swaps every linked record for a fresh one at the same
// position, then removes the replacements.
func (r *runner) replaceAll() error {
	src := shuffle.NewSource(r.opts.seed)
	tree := &rbtree.Tree[*record]{}

	records := make([]*record, r.opts.length)
	for i := range records {
		v := int64(src.Next()&0x0fffffff) % int64(r.opts.length*10)
		records[i] = newRecord(v)
		if err := insert(tree, records[i]); err != nil {
			return err
		}
	}
	if err := r.snap(tree, "built"); err != nil {
		return err
	}

	replacements := make([]*record, len(records))
	for i, old := range records {
		replacements[i] = newRecord(old.val)
		if err := tree.Replace(&old.node, &replacements[i].node); err != nil {
			return err
		}
		if err := r.snap(tree, "replace"); err != nil {
			return err
		}
	}

	for _, rec := range replacements {
		if err := tree.Remove(&rec.node); err != nil {
			return err
		}
		if err := r.snap(tree, "remove"); err != nil {
			return err
		}
	}
	r.opts.log.Info("scenario done", zap.Int("steps", int(r.step)))
	return nil
}

// iterate walks the whole sequence forward, then backward.
func (r *runner) iterate() error {
	src := shuffle.NewSource(r.opts.seed)
	tree := &rbtree.Tree[*record]{}
	for i := 0; i < r.opts.length; i++ {
		v := int64(src.Next()&0x0fffffff) % int64(r.opts.length*10)
		if err := insert(tree, newRecord(v)); err != nil {
			return err
		}
	}
	if err := r.snap(tree, "built"); err != nil {
		return err
	}

	for n := tree.First(); n != nil; n = n.Next() {
		r.opts.log.Info("next", zap.Int64("val", n.Item.val))
	}
	for n := tree.Last(); n != nil; n = n.Prev() {
		r.opts.log.Info("prev", zap.Int64("val", n.Item.val))
	}
	return nil
}
