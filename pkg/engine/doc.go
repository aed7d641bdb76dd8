// Package engine holds the current scene (graph, environment, source
// path) and routes run/reload/validate/export requests between the
// script facade, the mesher, and the export dispatcher (spec §4.8, C9).
// No UI state lives here; the engine is a single-threaded, synchronous
// orchestrator intended to be driven from one goroutine at a time.
package engine
