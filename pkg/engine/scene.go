package engine

import (
	"github.com/sdfkit/sdfkit/pkg/environment"
	"github.com/sdfkit/sdfkit/pkg/sdfgraph"
)

// Scene is the engine's loaded state: the SDF graph and environment a
// script produced, plus the path it was loaded from, if any (spec §4.8).
type Scene struct {
	Graph      sdfgraph.Node
	Env        environment.Environment
	SourcePath string

	// Stale is true from the moment this scene is created until
	// GenerateMesh next produces a mesh for it; Engine consults it to
	// skip regenerating (and thus re-exporting) a mesh that already
	// matches the current graph (soyuz-engine's dirty flag, SPEC_FULL.md
	// Supplemented Features).
	Stale bool
}
