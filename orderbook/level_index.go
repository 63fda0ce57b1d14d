package orderbook

import (
	"crimson/infra/memory"
	"crimson/rbtree"
)

// LevelIndex keys the price levels of one book side. It owns the
// descent and linking; the tree only rebalances and traverses.
type LevelIndex struct {
	tree rbtree.Tree[*PriceLevel]
	pool *memory.Pool[PriceLevel]
	size int
}

func NewLevelIndex(pool *memory.Pool[PriceLevel]) *LevelIndex {
	return &LevelIndex{pool: pool}
}

// Size returns the number of price levels currently present.
func (ix *LevelIndex) Size() int { return ix.size }

// Find returns the level for price, or nil.
func (ix *LevelIndex) Find(price int64) *PriceLevel {
	n := ix.tree.Root()
	for n != nil {
		switch {
		case price < n.Item.Price:
			n = n.Left()
		case price > n.Item.Price:
			n = n.Right()
		default:
			return n.Item
		}
	}
	return nil
}

// Upsert returns the level for price, creating it from the pool when
// missing: descend to the insertion point, link the recycled record as
// a red leaf, then rebalance.
func (ix *LevelIndex) Upsert(price int64) *PriceLevel {
	var parent *rbtree.Node[*PriceLevel]
	dir := rbtree.Left
	n := ix.tree.Root()
	for n != nil {
		if price == n.Item.Price {
			return n.Item
		}
		parent = n
		dir = rbtree.Right
		if price < n.Item.Price {
			dir = rbtree.Left
		}
		n = n.Child(dir)
	}

	level := ix.pool.Get()
	level.init(price)
	ix.tree.Link(&level.node, parent, dir)
	if err := ix.tree.Balance(&level.node); err != nil {
		panic("orderbook: balance after link: " + err.Error())
	}
	ix.size++
	return level
}

// Delete unlinks the level and recycles its record.
func (ix *LevelIndex) Delete(level *PriceLevel) {
	if err := ix.tree.Remove(&level.node); err != nil {
		panic("orderbook: remove level: " + err.Error())
	}
	ix.size--
	level.node.Init()
	ix.pool.Put(level)
}

// Swap migrates the level's payload into a fresh pooled record and
// substitutes it at the same tree position, releasing the old record.
// Tree shape and colors are untouched.
func (ix *LevelIndex) Swap(level *PriceLevel) *PriceLevel {
	fresh := ix.pool.Get()
	fresh.Price = level.Price
	fresh.TotalQty = level.TotalQty
	fresh.OrderCount = level.OrderCount
	fresh.head = level.head
	fresh.tail = level.tail
	fresh.node.Init()
	fresh.node.Item = fresh

	if err := ix.tree.Replace(&level.node, &fresh.node); err != nil {
		panic("orderbook: swap level: " + err.Error())
	}

	level.node.Init()
	ix.pool.Put(level)
	return fresh
}

// Min returns the lowest-priced level, or nil.
func (ix *LevelIndex) Min() *PriceLevel {
	n := ix.tree.First()
	if n == nil {
		return nil
	}
	return n.Item
}

// Max returns the highest-priced level, or nil.
func (ix *LevelIndex) Max() *PriceLevel {
	n := ix.tree.Last()
	if n == nil {
		return nil
	}
	return n.Item
}

func (ix *LevelIndex) ForEachAscending(fn func(*PriceLevel) bool) {
	for n := ix.tree.First(); n != nil; n = n.Next() {
		if !fn(n.Item) {
			return
		}
	}
}

func (ix *LevelIndex) ForEachDescending(fn func(*PriceLevel) bool) {
	for n := ix.tree.Last(); n != nil; n = n.Prev() {
		if !fn(n.Item) {
			return
		}
	}
}

// Tree exposes the underlying tree for read-only consumers such as
// snapshot rendering.
func (ix *LevelIndex) Tree() *rbtree.Tree[*PriceLevel] { return &ix.tree }

// Clear resets the index without recycling records.
func (ix *LevelIndex) Clear() {
	ix.tree.Clear()
	ix.size = 0
}
