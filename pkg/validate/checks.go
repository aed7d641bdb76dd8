package validate

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/sdfkit/sdfkit/pkg/mesher"
)

// CheckWinding verifies spec invariant 8: every triangle's outward normal
// (cross product of its edges) points away from the mesh's centroid. It
// generalizes the sphere-specific property in the spec to any closed
// mesh by using the mesh centroid in place of the sphere's center.
func CheckWinding(mesh *mesher.Mesh) CheckResult {
	centroid := meshCentroid(mesh)
	bad := 0
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		v0 := mesh.Vertices[mesh.Indices[i]].Position
		v1 := mesh.Vertices[mesh.Indices[i+1]].Position
		v2 := mesh.Vertices[mesh.Indices[i+2]].Position

		n := v1.Sub(v0).Cross(v2.Sub(v0))
		if n.Len() < 1e-12 {
			continue
		}
		out := v0.Add(v1).Add(v2).Mul(1.0 / 3.0).Sub(centroid)
		if n.Dot(out) < 0 {
			bad++
		}
	}
	if bad > 0 {
		return CheckResult{Name: "winding", Passed: false,
			Details: fmt.Sprintf("%d triangle(s) wind inward", bad)}
	}
	return CheckResult{Name: "winding", Passed: true, Details: "all triangles face outward"}
}

func meshCentroid(mesh *mesher.Mesh) mgl32.Vec3 {
	var sum mgl32.Vec3
	for _, v := range mesh.Vertices {
		sum = sum.Add(v.Position)
	}
	if len(mesh.Vertices) == 0 {
		return sum
	}
	return sum.Mul(1.0 / float32(len(mesh.Vertices)))
}

// CheckWeldTopology verifies spec invariant 9: after welding, no triangle
// has two equal indices, and vertex/triangle counts did not increase.
func CheckWeldTopology(before, after *mesher.Mesh) CheckResult {
	for i := 0; i+2 < len(after.Indices); i += 3 {
		a, b, c := after.Indices[i], after.Indices[i+1], after.Indices[i+2]
		if a == b || b == c || a == c {
			return CheckResult{Name: "weld-topology", Passed: false,
				Details: fmt.Sprintf("triangle %d has a degenerate (repeated) index", i/3)}
		}
	}
	if len(after.Vertices) > len(before.Vertices) {
		return CheckResult{Name: "weld-topology", Passed: false,
			Details: "vertex count increased after weld"}
	}
	if after.TriangleCount() > before.TriangleCount() {
		return CheckResult{Name: "weld-topology", Passed: false,
			Details: "triangle count increased after weld"}
	}
	return CheckResult{Name: "weld-topology", Passed: true, Details: "no degenerate triangles, counts non-increasing"}
}

// CheckLODMonotonic verifies spec invariant 10: in a LOD set ordered from
// nearest to farthest, triangle counts must be non-increasing.
func CheckLODMonotonic(triangleCounts []int) CheckResult {
	for i := 1; i < len(triangleCounts); i++ {
		if triangleCounts[i] > triangleCounts[i-1] {
			return CheckResult{Name: "lod-monotonic", Passed: false,
				Details: fmt.Sprintf("level %d (%d tris) exceeds level %d (%d tris)",
					i, triangleCounts[i], i-1, triangleCounts[i-1])}
		}
	}
	return CheckResult{Name: "lod-monotonic", Passed: true, Details: "triangle counts non-increasing"}
}

// Mesh runs every applicable check against mesh and returns a report.
// weldedFrom, when non-nil, is the pre-weld mesh used for the weld
// topology check; pass nil to skip it.
func Mesh(mesh *mesher.Mesh, weldedFrom *mesher.Mesh) *Report {
	r := NewReport()
	r.Add(CheckWinding(mesh))
	if weldedFrom != nil {
		r.Add(CheckWeldTopology(weldedFrom, mesh))
	}
	return r
}
