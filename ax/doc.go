// Package ax implements a compact, sharable in-memory representation
// for accessibility tree nodes.
//
// This package contains:
//   - Tagged Variant property values
//   - Dense per-node property tables with class-level offset indices
//   - Shared, reference-counted node classes deduplicated by an interner
//   - A staging NodeBuilder that finalizes immutable Nodes
//   - Tree ownership with node replacement and release semantics
package ax
