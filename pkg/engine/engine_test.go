package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sdfkit/sdfkit/pkg/environment"
	"github.com/sdfkit/sdfkit/pkg/export"
	"github.com/sdfkit/sdfkit/pkg/mesher"
)

func TestRunSourceAndGenerateMesh(t *testing.T) {
	e := New()
	if err := e.RunSource(`return sphere(0.5)`); err != nil {
		t.Fatalf("RunSource: %v", err)
	}
	if e.Scene() == nil {
		t.Fatal("expected a loaded scene")
	}
	cfg := mesher.DefaultMeshConfig()
	cfg.Resolution = 16
	mesh, err := e.GenerateMesh(cfg)
	if err != nil {
		t.Fatalf("GenerateMesh: %v", err)
	}
	if len(mesh.Vertices) == 0 {
		t.Error("expected a non-empty mesh")
	}
	if e.LastMesh() != mesh {
		t.Error("LastMesh should return the mesh just generated")
	}
}

// TestGenerateMeshSkipsRegenerationWhenNotStale checks the dirty-flag
// behavior: a second GenerateMesh call with an identical cfg against an
// unchanged scene returns the same mesh instance instead of recomputing,
// but a new RunSource (a new scene) forces regeneration again.
func TestGenerateMeshSkipsRegenerationWhenNotStale(t *testing.T) {
	e := New()
	if err := e.RunSource(`return sphere(0.5)`); err != nil {
		t.Fatalf("RunSource: %v", err)
	}
	if !e.Scene().Stale {
		t.Fatal("expected a freshly run scene to be Stale")
	}
	cfg := mesher.DefaultMeshConfig()
	cfg.Resolution = 8

	first, err := e.GenerateMesh(cfg)
	if err != nil {
		t.Fatalf("GenerateMesh: %v", err)
	}
	if e.Scene().Stale {
		t.Error("expected Stale to clear after generating a mesh")
	}

	second, err := e.GenerateMesh(cfg)
	if err != nil {
		t.Fatalf("GenerateMesh: %v", err)
	}
	if second != first {
		t.Error("expected an identical cfg against an unchanged scene to skip regeneration")
	}

	if err := e.RunSource(`return sphere(0.6)`); err != nil {
		t.Fatalf("RunSource: %v", err)
	}
	if !e.Scene().Stale {
		t.Fatal("expected a new scene to be Stale again")
	}
	third, err := e.GenerateMesh(cfg)
	if err != nil {
		t.Fatalf("GenerateMesh: %v", err)
	}
	if third == first {
		t.Error("expected a new scene to force regeneration")
	}
}

func TestGenerateMeshWithoutSceneFails(t *testing.T) {
	e := New()
	if _, err := e.GenerateMesh(mesher.DefaultMeshConfig()); !errors.Is(err, ErrNoScene) {
		t.Fatalf("want ErrNoScene, got %v", err)
	}
}

func TestRunSourceFailurePreservesLastError(t *testing.T) {
	e := New()
	err := e.RunSource(`return sphere(-1.0)`)
	if err == nil {
		t.Fatal("expected an error for a negative radius")
	}
	if e.LastError() == nil {
		t.Error("expected LastError to be preserved")
	}
}

func TestClearDropsSceneAndMesh(t *testing.T) {
	e := New()
	if err := e.RunSource(`return sphere(0.5)`); err != nil {
		t.Fatalf("RunSource: %v", err)
	}
	e.Clear()
	if e.Scene() != nil {
		t.Error("expected scene to be cleared")
	}
	if e.LastMesh() != nil {
		t.Error("expected cached mesh to be cleared")
	}
}

func TestRunFileAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.lua")
	if err := os.WriteFile(path, []byte("return sphere(0.5)"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	e := New()
	if err := e.RunFile(path); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if e.Scene().SourcePath != path {
		t.Errorf("want SourcePath %q, got %q", path, e.Scene().SourcePath)
	}
	if err := e.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
}

func TestReloadWithoutSourcePathFails(t *testing.T) {
	e := New()
	if err := e.RunSource(`return sphere(0.5)`); err != nil {
		t.Fatalf("RunSource: %v", err)
	}
	if err := e.Reload(); !errors.Is(err, ErrNoScene) {
		t.Fatalf("want ErrNoScene, got %v", err)
	}
}

func TestExportWritesFile(t *testing.T) {
	e := New()
	if err := e.RunSource(`return sphere(0.5)`); err != nil {
		t.Fatalf("RunSource: %v", err)
	}
	cfg := mesher.DefaultMeshConfig()
	cfg.Resolution = 16
	path := filepath.Join(t.TempDir(), "scene.stl")
	if err := e.Export(path, cfg, export.DefaultOptions()); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected exported file to exist: %v", err)
	}
}

// TestRunConfigAppliesPresetBeforeScript checks that a RunConfig's
// EnvironmentPreset takes effect even when the script itself performs no
// environment calls.
func TestRunConfigAppliesPresetBeforeScript(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.lua")
	if err := os.WriteFile(scenePath, []byte("return sphere(0.5)"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg := &RunConfig{
		Source:            scenePath,
		EnvironmentPreset: "sunset",
		Mesh:              MeshCfg{Resolution: 8, ComputeNormals: true},
	}
	e := New()
	if err := e.RunConfig(cfg); err != nil {
		t.Fatalf("RunConfig: %v", err)
	}
	want, err := environment.Preset("sunset")
	if err != nil {
		t.Fatalf("environment.Preset: %v", err)
	}
	if e.Scene().Env.FogDensity != want.FogDensity {
		t.Errorf("want fog density %v from sunset preset, got %v", want.FogDensity, e.Scene().Env.FogDensity)
	}
}
