package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sdfkit/sdfkit/pkg/export"
	"github.com/sdfkit/sdfkit/pkg/mesher"
)

// RunConfig is a YAML sidecar describing one engine run: the scene
// source, the mesh parameters, the export target, and an optional
// environment preset (SPEC_FULL domain stack; mirrors the teacher's
// dungeon.Config shape).
type RunConfig struct {
	// Source is a path to a Lua scene script.
	Source string `yaml:"source"`

	// EnvironmentPreset applies a named preset (pkg/environment) before
	// running Source, so the script may override individual fields.
	EnvironmentPreset string `yaml:"environmentPreset,omitempty"`

	Mesh   MeshCfg   `yaml:"mesh"`
	Export ExportCfg `yaml:"export,omitempty"`
}

// MeshCfg mirrors the fields of mesher.MeshConfig that make sense in a
// sidecar file; bounds and the weld/decimate/smooth sub-options use the
// mesher's own defaults unless overridden here.
type MeshCfg struct {
	Resolution     int     `yaml:"resolution"`
	IsoLevel       float32 `yaml:"isoLevel"`
	ComputeNormals bool    `yaml:"computeNormals"`
	Optimize       bool    `yaml:"optimize"`
}

// ExportCfg mirrors export.Options plus the output path.
type ExportCfg struct {
	Path          string     `yaml:"path,omitempty"`
	EmbedTextures bool       `yaml:"embedTextures,omitempty"`
	TextureSize   uint32     `yaml:"textureSize,omitempty"`
	GenerateLOD   bool       `yaml:"generateLod,omitempty"`
	BaseColor     [4]float32 `yaml:"baseColor,omitempty"`
}

// LoadRunConfig reads and validates a YAML run configuration file.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("engine: reading config file: %w", err)
	}
	return LoadRunConfigFromBytes(data)
}

// LoadRunConfigFromBytes parses a YAML run configuration from bytes.
func LoadRunConfigFromBytes(data []byte) (*RunConfig, error) {
	cfg := RunConfig{Mesh: MeshCfg{Resolution: 32, ComputeNormals: true}}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("engine: parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration's own constraints (not the scene's:
// the scene is only known once the script has run).
func (c *RunConfig) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source must not be empty")
	}
	if c.Mesh.Resolution < 1 {
		return fmt.Errorf("mesh.resolution must be >= 1, got %d", c.Mesh.Resolution)
	}
	if c.Export.Path != "" {
		if _, err := export.FormatFromPath(c.Export.Path); err != nil {
			return fmt.Errorf("export.path: %w", err)
		}
	}
	return nil
}

// ToYAML serializes the config back to YAML bytes.
func (c *RunConfig) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *MeshCfg) ToMeshConfig() mesher.MeshConfig {
	cfg := mesher.DefaultMeshConfig()
	if c.Resolution > 0 {
		cfg.Resolution = c.Resolution
	}
	cfg.IsoLevel = c.IsoLevel
	cfg.ComputeNormals = c.ComputeNormals
	cfg.Optimize = c.Optimize
	return cfg
}

func (c *ExportCfg) ToOptions() export.Options {
	opts := export.DefaultOptions()
	opts.EmbedTextures = c.EmbedTextures
	if c.TextureSize > 0 {
		opts.TextureSize = c.TextureSize
	}
	opts.GenerateLOD = c.GenerateLOD
	if c.BaseColor != [4]float32{} {
		opts.BaseColor = c.BaseColor
	}
	return opts
}
