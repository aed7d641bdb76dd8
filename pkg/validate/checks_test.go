package validate

import (
	"testing"

	"github.com/sdfkit/sdfkit/pkg/mesher"
	"github.com/sdfkit/sdfkit/pkg/sdfgraph"
)

func sphereMesh(t *testing.T, resolution int) *mesher.Mesh {
	t.Helper()
	node, err := sdfgraph.NewSphere(1.0)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	cfg := mesher.DefaultMeshConfig()
	cfg.Resolution = resolution
	return mesher.Generate(node, cfg)
}

// TestCheckWindingOnSphere checks spec invariant 8 on a canonical sphere.
func TestCheckWindingOnSphere(t *testing.T) {
	mesh := sphereMesh(t, 64)
	result := CheckWinding(mesh)
	if !result.Passed {
		t.Errorf("winding check failed: %s", result.Details)
	}
}

func TestCheckWeldTopologyCatchesDuplicateIndex(t *testing.T) {
	before := sphereMesh(t, 16)
	after := &mesher.Mesh{
		Vertices: before.Vertices,
		Indices:  []uint32{0, 0, 1},
	}
	result := CheckWeldTopology(before, after)
	if result.Passed {
		t.Error("expected weld-topology check to fail on a degenerate triangle")
	}
}

func TestCheckWeldTopologyRejectsCountIncrease(t *testing.T) {
	before := &mesher.Mesh{Vertices: make([]mesher.Vertex, 3), Indices: []uint32{0, 1, 2}}
	after := &mesher.Mesh{Vertices: make([]mesher.Vertex, 6), Indices: []uint32{0, 1, 2, 3, 4, 5}}
	result := CheckWeldTopology(before, after)
	if result.Passed {
		t.Error("expected weld-topology check to fail when vertex count increases")
	}
}

func TestCheckLODMonotonic(t *testing.T) {
	if !CheckLODMonotonic([]int{1000, 500, 250, 100}).Passed {
		t.Error("expected a non-increasing sequence to pass")
	}
	if CheckLODMonotonic([]int{100, 500, 250}).Passed {
		t.Error("expected an increasing sequence to fail")
	}
}

func TestMeshAggregatesChecks(t *testing.T) {
	mesh := sphereMesh(t, 32)
	report := Mesh(mesh, nil)
	if !report.Passed {
		t.Errorf("expected passing report, got: %s", report.Summary())
	}
}
