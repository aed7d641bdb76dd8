// Package shader compiles an sdfgraph.Node into WGSL shader source —
// component C6. Generation is total and deterministic: identical graphs
// produce byte-identical output, and the shared formulas in pkg/formula
// are injected verbatim so the CPU evaluator and the generated shader
// cannot drift (spec §4.5).
package shader
