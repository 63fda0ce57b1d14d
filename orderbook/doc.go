// Package orderbook implements a limit order book on top of the
// intrusive red-black tree: each side of the book keeps its price
// levels in a tree whose nodes are embedded in the level records. The
// book performs its own price comparison while descending, links new
// levels itself, and hands them to the tree only for rebalancing,
// removal, traversal and identity swaps.
//
// The book is a single-writer structure. Level and order records are
// pooled and recycled through a retire ring so steady-state matching
// does not allocate.
package orderbook
