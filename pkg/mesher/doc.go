// Package mesher turns an sdfgraph.Node into a triangle Mesh by marching
// cubes over a uniform grid — component C5. The sample and cell phases run
// in parallel across a fixed worker pool; the merge phase is single
// threaded and deterministic (spec §4.3, §4.4).
package mesher
