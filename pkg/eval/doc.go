// Package eval is the CPU distance evaluator and bounds analyzer for
// pkg/sdfgraph — component C4, the reference semantics everything else
// (the mesher, the WGSL generator) is checked against (spec §4.2).
//
// Distance and Bounds are both total, pure functions: Distance never
// errors and is Lipschitz-1 for any well-formed graph (construction in
// pkg/sdfgraph already rejected the only inputs — non-positive scale,
// non-positive blend radius — that would break that guarantee). Bounds is
// conservative by construction: every case either computes an exact
// analytic box or deliberately over-approximates, never under-approximates
// (spec §4.2: "Conservatism is required: missing surface = holes in the
// mesh").
package eval
