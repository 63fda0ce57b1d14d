// Package memory provides the allocation-averse primitives shared by
// the tree consumers: a typed object pool for records that embed tree
// nodes, and a small FIFO ring for records retired from a structure
// but not yet safe to reuse.
//
// The package knows nothing about the tree itself; records come back
// from the pool with stale links and must be reinitialized by the
// caller before they are linked anywhere.
package memory
