// Package rbtree implements an intrusive red-black tree. Nodes are
// embedded in caller-owned records; the tree never allocates, frees,
// or copies node storage. The caller locates the insertion point with
// its own key comparison, links the new node as a red leaf, and hands
// it to Balance. Removal is two-phase: a structural unlink followed by
// a color fix-up when a black node was taken out of a path.
//
// The tree is single-writer. Callers that share a tree across
// goroutines must serialize every structural operation externally.
package rbtree
