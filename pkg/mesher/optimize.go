package mesher

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// WeldOptions parameterizes the weld pass (spec §4.3.2).
type WeldOptions struct {
	Threshold float32
}

// cellKey buckets a position into a spatial grid of side 2*threshold.
type cellKey struct{ x, y, z int32 }

func cellKeyOf(p mgl32.Vec3, cellSize float32) cellKey {
	return cellKey{
		x: int32(floorf(p.X() / cellSize)),
		y: int32(floorf(p.Y() / cellSize)),
		z: int32(floorf(p.Z() / cellSize)),
	}
}

func floorf(x float32) float32 {
	i := float32(int32(x))
	if x < 0 && i != x {
		return i - 1
	}
	return i
}

// Weld bucket-hashes vertices into cells of side 2*threshold and collapses,
// within each cell's 3x3x3 neighborhood, any vertex within threshold^2
// squared distance of an already-emitted representative. Degenerate
// triangles (any two equal indices after remap) are dropped (spec §4.3.2).
func Weld(mesh *Mesh, opts WeldOptions) *Mesh {
	threshold := opts.Threshold
	if threshold <= 0 {
		return mesh
	}
	cellSize := 2 * threshold
	thresholdSq := threshold * threshold

	buckets := make(map[cellKey][]int) // cell -> indices into emitted vertices
	remap := make([]uint32, len(mesh.Vertices))
	var emitted []Vertex

	for i, v := range mesh.Vertices {
		key := cellKeyOf(v.Position, cellSize)
		found := -1
		for dz := int32(-1); dz <= 1 && found < 0; dz++ {
			for dy := int32(-1); dy <= 1 && found < 0; dy++ {
				for dx := int32(-1); dx <= 1 && found < 0; dx++ {
					neighbor := cellKey{key.x + dx, key.y + dy, key.z + dz}
					for _, ei := range buckets[neighbor] {
						d := emitted[ei].Position.Sub(v.Position)
						if d.Dot(d) <= thresholdSq {
							found = ei
							break
						}
					}
				}
			}
		}
		if found >= 0 {
			remap[i] = uint32(found)
			continue
		}
		newIdx := len(emitted)
		emitted = append(emitted, v)
		buckets[key] = append(buckets[key], newIdx)
		remap[i] = uint32(newIdx)
	}

	out := &Mesh{Vertices: emitted, Indices: make([]uint32, 0, len(mesh.Indices))}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := remap[mesh.Indices[i]], remap[mesh.Indices[i+1]], remap[mesh.Indices[i+2]]
		if a == b || b == c || a == c {
			continue
		}
		out.Indices = append(out.Indices, a, b, c)
	}
	return out
}

// DecimateOptions parameterizes the decimate pass (spec §4.3.2).
type DecimateOptions struct {
	TargetTriangles  int
	MaxError         float32
	PreserveBoundary bool
}

type halfEdge struct {
	a, b uint32
	cost float32
}

// Decimate collapses edges cheapest-first until the triangle target is
// reached or no edge is cheap enough. Cost combines edge length, a
// curvature penalty from adjacent-vertex normal disagreement, and a
// boundary-preservation multiplier (spec §4.3.2).
func Decimate(mesh *Mesh, opts DecimateOptions) *Mesh {
	if opts.TargetTriangles <= 0 || mesh.TriangleCount() <= opts.TargetTriangles {
		return mesh
	}

	verts := append([]Vertex(nil), mesh.Vertices...)
	idx := append([]uint32(nil), mesh.Indices...)
	alive := make([]bool, len(verts))
	for i := range alive {
		alive[i] = true
	}

	edgeTriCount := func(indices []uint32) map[[2]uint32]int {
		count := make(map[[2]uint32]int)
		for i := 0; i+2 < len(indices); i += 3 {
			tri := [3]uint32{indices[i], indices[i+1], indices[i+2]}
			for k := 0; k < 3; k++ {
				a, b := tri[k], tri[(k+1)%3]
				if a > b {
					a, b = b, a
				}
				count[[2]uint32{a, b}]++
			}
		}
		return count
	}

	cost := func(a, b uint32, boundaryCount map[[2]uint32]int) float32 {
		va, vb := verts[a], verts[b]
		length := va.Position.Sub(vb.Position).Len()
		disagreement := 1 - clampf(va.Normal.Dot(vb.Normal), -1, 1)
		c := length * (1 + disagreement)
		key := [2]uint32{a, b}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if opts.PreserveBoundary && boundaryCount[key] == 1 {
			c *= 10
		}
		return c
	}

	for {
		triCount := 0
		for i := 0; i+2 < len(idx); i += 3 {
			if idx[i] != idx[i+1] && idx[i+1] != idx[i+2] && idx[i] != idx[i+2] {
				triCount++
			}
		}
		if triCount <= opts.TargetTriangles {
			break
		}

		boundaryCount := edgeTriCount(idx)
		edges := make([]halfEdge, 0, len(boundaryCount))
		for k := range boundaryCount {
			if !alive[k[0]] || !alive[k[1]] {
				continue
			}
			edges = append(edges, halfEdge{a: k[0], b: k[1], cost: cost(k[0], k[1], boundaryCount)})
		}
		if len(edges) == 0 {
			break
		}
		sort.Slice(edges, func(i, j int) bool { return edges[i].cost < edges[j].cost })

		best := edges[0]
		if opts.MaxError > 0 && best.cost > opts.MaxError {
			break
		}

		mid := verts[best.a].Position.Add(verts[best.b].Position).Mul(0.5)
		verts[best.a].Position = mid
		verts[best.a].Normal = verts[best.a].Normal.Add(verts[best.b].Normal).Normalize()
		alive[best.b] = false

		for i := range idx {
			if idx[i] == best.b {
				idx[i] = best.a
			}
		}
		filtered := idx[:0]
		for i := 0; i+2 < len(idx); i += 3 {
			if idx[i] == idx[i+1] || idx[i+1] == idx[i+2] || idx[i] == idx[i+2] {
				continue
			}
			filtered = append(filtered, idx[i], idx[i+1], idx[i+2])
		}
		idx = filtered
	}

	return compact(verts, alive, idx)
}

// compact drops dead vertices and remaps the index list accordingly.
func compact(verts []Vertex, alive []bool, idx []uint32) *Mesh {
	remap := make([]uint32, len(verts))
	var out []Vertex
	for i, v := range verts {
		if !alive[i] {
			continue
		}
		remap[i] = uint32(len(out))
		out = append(out, v)
	}
	outIdx := make([]uint32, len(idx))
	for i, v := range idx {
		outIdx[i] = remap[v]
	}
	return &Mesh{Vertices: out, Indices: outIdx}
}

// SmoothOptions parameterizes the smooth-normals pass (spec §4.3.2).
type SmoothOptions struct {
	AngleThresholdRadians float32
}

// SmoothNormals averages, for each vertex, the face normals of adjacent
// triangles whose dihedral angle with a reference face is within the
// configured threshold (spec §4.3.2).
func SmoothNormals(mesh *Mesh, opts SmoothOptions) {
	faceNormals := make([]mgl32.Vec3, mesh.TriangleCount())
	adjacency := make([][]int, len(mesh.Vertices))

	for t := 0; t < mesh.TriangleCount(); t++ {
		a, b, c := mesh.Indices[3*t], mesh.Indices[3*t+1], mesh.Indices[3*t+2]
		pa, pb, pc := mesh.Vertices[a].Position, mesh.Vertices[b].Position, mesh.Vertices[c].Position
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		if l := n.Len(); l > 1e-12 {
			n = n.Mul(1 / l)
		}
		faceNormals[t] = n
		adjacency[a] = append(adjacency[a], t)
		adjacency[b] = append(adjacency[b], t)
		adjacency[c] = append(adjacency[c], t)
	}

	cosThreshold := cosf(opts.AngleThresholdRadians)

	for v, faces := range adjacency {
		if len(faces) == 0 {
			continue
		}
		ref := faceNormals[faces[0]]
		sum := mgl32.Vec3{}
		count := 0
		for _, f := range faces {
			n := faceNormals[f]
			if n.Dot(ref) >= cosThreshold {
				sum = sum.Add(n)
				count++
			}
		}
		if count == 0 {
			continue
		}
		avg := sum.Mul(1 / float32(count))
		if l := avg.Len(); l > 1e-12 {
			avg = avg.Mul(1 / l)
		}
		mesh.Vertices[v].Normal = avg
	}
}

func cosf(radians float32) float32 {
	return float32(math.Cos(float64(radians)))
}
