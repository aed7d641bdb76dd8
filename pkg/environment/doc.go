// Package environment holds the lighting, material, background, and
// effect parameters consumed by the raymarcher and the WGSL code
// generator (spec §3 Environment, component C3).
//
// A Cell is the process-wide mutable environment a single script
// evaluation writes into (spec §4.6: "reset to defaults" at the start of
// evaluation, "captured into the Scene" at the end). The named presets in
// presets.go are adapted from the teacher's pkg/themes table: a small
// fixed registry of value sets looked up by name, defined in code
// instead of loaded from disk, since an Environment preset
// has no encounter/loot tables to externalize.
package environment
