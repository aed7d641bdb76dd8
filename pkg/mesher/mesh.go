package mesher

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one output mesh vertex (spec §3).
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Mesh is the mesher's output: a vertex array and a packed triangle index
// list, triangle i using indices [3i, 3i+1, 3i+2] (spec §3).
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles in the index list.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// UVProjection selects the UV generation strategy for the UV phase
// (spec §4.3.1).
type UVProjection int

const (
	UVTriplanar UVProjection = iota
	UVBox
	UVCylindrical
	UVSpherical
	UVPlanar
	UVAuto
)

// MeshConfig parameterizes a mesher run (spec §4.3).
type MeshConfig struct {
	Resolution     int
	Bounds         *AABB // nil selects the node's analyzer bounds
	IsoLevel       float32
	ComputeNormals bool
	Projection     UVProjection
	PlanarAxis     mgl32.Vec3 // used only when Projection == UVPlanar
	UVScale        float32

	Optimize  bool
	WeldOpts  WeldOptions
	Decimate  DecimateOptions
	SmoothOpt SmoothOptions
}

// AABB is the mesher's own bounds type, with the same Min/Max fields as
// pkg/eval.AABB; callers typically obtain the value by calling
// eval.Bounds and converting the two Vec3 fields.
type AABB struct {
	Min, Max mgl32.Vec3
}

// DefaultMeshConfig returns sane defaults: resolution 32, iso-level 0,
// normals on, triplanar UVs at scale 1, no optimization.
func DefaultMeshConfig() MeshConfig {
	return MeshConfig{
		Resolution:     32,
		IsoLevel:       0,
		ComputeNormals: true,
		Projection:     UVTriplanar,
		UVScale:        1,
	}
}
