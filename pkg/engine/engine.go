package engine

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/sdfkit/sdfkit/pkg/export"
	"github.com/sdfkit/sdfkit/pkg/mesher"
	"github.com/sdfkit/sdfkit/pkg/script"
)

// ErrNoScene is returned by any method that requires a loaded scene when
// none is present.
var ErrNoScene = errors.New("engine: no scene loaded")

// Engine holds at most one Scene and routes run/reload/validate/export
// requests against it (spec §4.8, C9). It is not safe for concurrent
// use from multiple goroutines, matching the script facade it wraps.
type Engine struct {
	scene   *Scene
	lastErr error

	lastMesh    *mesher.Mesh
	lastMeshCfg mesher.MeshConfig
}

// New returns an engine with no scene loaded.
func New() *Engine {
	return &Engine{}
}

// Scene returns the current scene, or nil if none is loaded.
func (e *Engine) Scene() *Scene {
	return e.scene
}

// LastError returns the error recorded by the most recent RunSource,
// RunFile, Reload, RunConfig or Export call, or nil if that call
// succeeded or Clear was called since. Validate and GenerateMesh do not
// record errors here.
func (e *Engine) LastError() error {
	return e.lastErr
}

// RunSource evaluates source as a new scene, replacing any current one.
func (e *Engine) RunSource(source string) error {
	res, err := script.Run(source)
	if err != nil {
		e.lastErr = err
		return err
	}
	e.scene = &Scene{Graph: res.Graph, Env: res.Env, Stale: true}
	e.invalidateCache()
	e.lastErr = nil
	return nil
}

// RunFile reads path and evaluates it as a new scene, recording path as
// the scene's SourcePath so Reload can re-run it later.
func (e *Engine) RunFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		e.lastErr = fmt.Errorf("engine: reading source %q: %w", path, err)
		return e.lastErr
	}
	if err := e.RunSource(string(data)); err != nil {
		return err
	}
	e.scene.SourcePath = path
	return nil
}

// Validate runs source without committing it as the current scene: a
// compile-only check (spec §4.8). The current scene, if any, is
// untouched on both success and failure.
func (e *Engine) Validate(source string) error {
	_, err := script.Run(source)
	return err
}

// Clear discards the current scene and any cached mesh.
func (e *Engine) Clear() {
	e.scene = nil
	e.lastErr = nil
	e.invalidateCache()
}

// Reload re-reads the current scene's SourcePath and re-evaluates it.
// Callers that observe filesystem change events (a file watcher is
// outside this package's scope, per spec §1) should invoke Reload when
// one fires for the current SourcePath.
func (e *Engine) Reload() error {
	if e.scene == nil || e.scene.SourcePath == "" {
		e.lastErr = ErrNoScene
		return e.lastErr
	}
	return e.RunFile(e.scene.SourcePath)
}

// GenerateMesh runs the mesher against the current scene's graph and
// records the result as LastMesh. If the scene is not Stale and the
// last mesh was generated with an identical cfg, the previous mesh is
// returned without recomputing (spec's supplemented dirty-flag
// behavior: "skip re-export when nothing changed").
func (e *Engine) GenerateMesh(cfg mesher.MeshConfig) (*mesher.Mesh, error) {
	if e.scene == nil {
		return nil, ErrNoScene
	}
	if !e.scene.Stale && e.lastMesh != nil && reflect.DeepEqual(cfg, e.lastMeshCfg) {
		return e.lastMesh, nil
	}
	mesh := mesher.Generate(e.scene.Graph, cfg)
	e.lastMesh = mesh
	e.lastMeshCfg = cfg
	e.scene.Stale = false
	return mesh, nil
}

// LastMesh returns the most recent mesh produced by GenerateMesh or
// Export, or nil if none has been generated since the scene was last
// loaded or cleared.
func (e *Engine) LastMesh() *mesher.Mesh {
	return e.lastMesh
}

// Export generates a mesh for the current scene and writes it to path
// via the export dispatcher.
func (e *Engine) Export(path string, meshCfg mesher.MeshConfig, opts export.Options) error {
	mesh, err := e.GenerateMesh(meshCfg)
	if err != nil {
		e.lastErr = err
		return err
	}
	if err := export.Write(mesh, path, opts); err != nil {
		e.lastErr = err
		return err
	}
	e.lastErr = nil
	return nil
}

// RunConfig loads and executes a RunConfig in one call: it applies the
// environment preset (if any) and runs the scene source; when
// Export.Path is set it then generates a mesh and exports it. Without an
// export path no mesh is generated.
func (e *Engine) RunConfig(cfg *RunConfig) error {
	data, err := os.ReadFile(cfg.Source)
	if err != nil {
		e.lastErr = fmt.Errorf("engine: reading source %q: %w", cfg.Source, err)
		return e.lastErr
	}
	source := string(data)
	if cfg.EnvironmentPreset != "" {
		// Apply the preset first so the script's own env_*/set_* calls,
		// if any, still take precedence (spec §4.6 mutators run in
		// program order against the same cell).
		source = fmt.Sprintf("env_%s()\n%s", cfg.EnvironmentPreset, source)
	}
	if err := e.RunSource(source); err != nil {
		return err
	}
	e.scene.SourcePath = cfg.Source

	if cfg.Export.Path == "" {
		return nil
	}
	return e.Export(cfg.Export.Path, cfg.Mesh.ToMeshConfig(), cfg.Export.ToOptions())
}

func (e *Engine) invalidateCache() {
	e.lastMesh = nil
	e.lastMeshCfg = mesher.MeshConfig{}
}
