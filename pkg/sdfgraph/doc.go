// Package sdfgraph defines the SDF operation graph: a closed, immutable,
// shared-ownership tree of primitive, boolean-combinator, modifier,
// transform, deformation, and domain-repetition nodes.
//
// Node is a closed interface — every implementation lives in this package,
// sealed by an unexported method — so every consumer (pkg/eval,
// pkg/shader) can exhaustively type-switch over the variant set without
// fear of an unhandled case appearing from outside the package. There is
// no mutation: every "operation" on a node is a free function or method
// that builds and returns a new node pointing at its (possibly shared)
// children, in the spirit of pkg/graph's Validate-then-link construction
// in the teacher repo, but with structural sharing instead of a string-ID
// map, since SDF children are never removed or rewired after construction.
package sdfgraph
