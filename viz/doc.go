// Package viz renders read-only snapshots of a red-black tree: a
// Graphviz DOT document or a self-contained HTML page with an
// interactive tree chart. Both walk the structural links only and
// never mutate the tree.
package viz
