// Package formula is the single source of truth for the handful of SDF
// formulas subtle enough that a CPU port and a GPU port could silently
// drift apart: the polynomial smooth-min blend, the polar/infinite/limited
// space-repetition folds, and the twist/bend domain deformations.
//
// Every formula is expressed twice: once as a pure Go function consumed by
// pkg/eval, and once as a WGSL function body consumed by pkg/shader. The
// two halves of a Formula are kept next to each other in the same file so
// a change to one is a reviewer's eye-line away from the other, and
// pkg/shader never transcribes the WGSL text — it only concatenates the
// constants declared here.
package formula
