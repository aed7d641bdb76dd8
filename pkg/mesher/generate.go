package mesher

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sdfkit/sdfkit/pkg/eval"
	"github.com/sdfkit/sdfkit/pkg/sdfgraph"
)

// Generate runs the full mesher pipeline (spec §4.3): sample, cell,
// normal, merge, UV, and (if requested) optimize phases. Resolution must
// be at least 1.
func Generate(node sdfgraph.Node, cfg MeshConfig) *Mesh {
	if cfg.Resolution < 1 {
		cfg.Resolution = 1
	}

	bounds := cfg.Bounds
	if bounds == nil {
		b := eval.Bounds(node)
		bounds = &AABB{Min: b.Min, Max: b.Max}
	}
	// Guard against a degenerate zero-volume box (e.g. a single point's
	// analytic bounds) so the grid always has a non-zero cell size.
	padded := padDegenerate(*bounds)

	samples := sampleGrid(node, padded, cfg.Resolution)
	cells := marchCells(samples, padded, cfg.Resolution, cfg.IsoLevel)
	mesh := mergeCells(cells)

	if cfg.ComputeNormals {
		computeNormals(node, mesh.Vertices)
	}
	applyUVs(mesh, padded, cfg)

	if cfg.Optimize {
		mesh = Weld(mesh, cfg.WeldOpts)
		mesh = Decimate(mesh, cfg.Decimate)
		if cfg.SmoothOpt.AngleThresholdRadians > 0 {
			SmoothNormals(mesh, cfg.SmoothOpt)
		}
	}

	return mesh
}

func padDegenerate(b AABB) AABB {
	const minExtent = 1e-4
	size := b.Max.Sub(b.Min)
	pad := mgl32.Vec3{}
	for i := 0; i < 3; i++ {
		if size[i] < minExtent {
			pad[i] = minExtent
		}
	}
	return AABB{Min: b.Min.Sub(pad), Max: b.Max.Add(pad)}
}
