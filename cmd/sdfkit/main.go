// Command sdfkit runs a scene script through the engine and exports the
// resulting mesh.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sdfkit/sdfkit/pkg/engine"
	"github.com/sdfkit/sdfkit/pkg/export"
	"github.com/sdfkit/sdfkit/pkg/mesher"
	"github.com/sdfkit/sdfkit/pkg/validate"
)

const version = "0.1.0"

// CLI flags
var (
	configPath = flag.String("config", "", "Path to a YAML run configuration file")
	scriptPath = flag.String("script", "", "Path to a Lua scene script (ignored if -config is set)")
	output     = flag.String("output", "", "Mesh export path; overrides config.export.path")
	resolution = flag.Int("resolution", 32, "Marching-cubes grid resolution")
	preset     = flag.String("preset", "", "Environment preset to apply before the script runs")
	debugSVG   = flag.String("debug-svg", "", "Also render a debug cross-section SVG to this path")
	checkOnly  = flag.Bool("validate", false, "Compile the script and exit without meshing or exporting")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("sdfkit version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *configPath == "" && *scriptPath == "" {
		fmt.Fprintln(os.Stderr, "Error: one of -config or -script is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := resolveConfig()
	if err != nil {
		return fmt.Errorf("resolving configuration: %w", err)
	}

	if *checkOnly {
		data, err := os.ReadFile(cfg.Source)
		if err != nil {
			return fmt.Errorf("reading script %q: %w", cfg.Source, err)
		}
		e := engine.New()
		if err := e.Validate(string(data)); err != nil {
			return fmt.Errorf("script is invalid: %w", err)
		}
		fmt.Println("script is valid")
		return nil
	}

	if *verbose {
		fmt.Printf("Loading script %s\n", cfg.Source)
		fmt.Printf("Resolution: %d\n", cfg.Mesh.Resolution)
	}

	e := engine.New()
	start := time.Now()
	if err := e.RunConfig(cfg); err != nil {
		return fmt.Errorf("running scene: %w", err)
	}
	elapsed := time.Since(start)

	mesh := e.LastMesh()
	if mesh == nil {
		var genErr error
		mesh, genErr = e.GenerateMesh(cfg.Mesh.ToMeshConfig())
		if genErr != nil {
			return fmt.Errorf("generating mesh: %w", genErr)
		}
	}

	if *verbose {
		printStats(mesh, elapsed)
	}

	if *debugSVG != "" {
		if err := export.SaveSVG(e.Scene().Graph, *debugSVG, export.DefaultSVGOptions()); err != nil {
			return fmt.Errorf("writing debug SVG: %w", err)
		}
		if *verbose {
			fmt.Printf("Wrote debug cross-section to %s\n", *debugSVG)
		}
	}

	if cfg.Export.Path == "" {
		fmt.Printf("Generated %d vertices, %d triangles (no export path given)\n",
			len(mesh.Vertices), mesh.TriangleCount())
		return nil
	}

	fmt.Printf("Exported %d triangles to %s in %v\n", mesh.TriangleCount(), cfg.Export.Path, elapsed)
	return nil
}

// resolveConfig builds a RunConfig either from -config or from the flat
// CLI flags, so both entry points converge on one code path.
func resolveConfig() (*engine.RunConfig, error) {
	if *configPath != "" {
		cfg, err := engine.LoadRunConfig(*configPath)
		if err != nil {
			return nil, err
		}
		if *output != "" {
			cfg.Export.Path = *output
		}
		if *preset != "" {
			cfg.EnvironmentPreset = *preset
		}
		return cfg, nil
	}

	cfg := &engine.RunConfig{
		Source:            *scriptPath,
		EnvironmentPreset: *preset,
		Mesh: engine.MeshCfg{
			Resolution:     *resolution,
			ComputeNormals: true,
		},
		Export: engine.ExportCfg{Path: *output},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printStats(mesh *mesher.Mesh, elapsed time.Duration) {
	fmt.Printf("Generation completed in %v\n", elapsed)
	fmt.Println("\nMesh Statistics:")
	fmt.Printf("  Vertices: %d\n", len(mesh.Vertices))
	fmt.Printf("  Triangles: %d\n", mesh.TriangleCount())

	report := validate.Mesh(mesh, nil)
	fmt.Printf("\nValidation: %s\n", validationStatus(report.Passed))
	for _, c := range report.Checks {
		status := "PASS"
		if !c.Passed {
			status = "FAIL"
		}
		fmt.Printf("  [%s] %s: %s\n", status, c.Name, c.Details)
	}
}

func validationStatus(passed bool) string {
	if passed {
		return "PASSED"
	}
	return "FAILED"
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: sdfkit -script <scene.lua> -output <mesh.glb> [options]")
	fmt.Fprintln(os.Stderr, "   or: sdfkit -config <run.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'sdfkit -help' for detailed help")
}

func printHelp() {
	fmt.Printf("sdfkit version %s\n\n", version)
	fmt.Println("Evaluates a procedural SDF scene script and exports the resulting mesh.")
	fmt.Println("\nUsage:")
	fmt.Println("  sdfkit -script <scene.lua> -output <mesh.glb> [options]")
	fmt.Println("  sdfkit -config <run.yaml> [options]")
	fmt.Println("\nFlags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to a YAML run configuration file")
	fmt.Println("  -script string")
	fmt.Println("        Path to a Lua scene script (ignored if -config is set)")
	fmt.Println("  -output string")
	fmt.Println("        Mesh export path (.glb, .gltf, .obj, .stl); overrides config.export.path")
	fmt.Println("  -resolution int")
	fmt.Println("        Marching-cubes grid resolution (default: 32)")
	fmt.Println("  -preset string")
	fmt.Println("        Environment preset to apply before the script runs")
	fmt.Println("  -debug-svg string")
	fmt.Println("        Also render a debug cross-section SVG to this path")
	fmt.Println("  -validate")
	fmt.Println("        Compile the script and exit without meshing or exporting")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  sdfkit -script scene.lua -output scene.stl")
	fmt.Println("  sdfkit -script scene.lua -output scene.glb -resolution 64 -preset sunset")
	fmt.Println("  sdfkit -script scene.lua -validate")
	fmt.Println("  sdfkit -config run.yaml -verbose")
}
