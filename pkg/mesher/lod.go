package mesher

import "sort"

// LODSpec is one (distance, detail) configuration entry (spec §4.3.3).
type LODSpec struct {
	Distance float32
	Detail   float32
}

// LODLevel is one entry of a built LOD set: Mesh is shown from Distance
// onward (until the next level's Distance) and is the base mesh decimated
// to about Detail of its triangle count (spec §4.3.3).
type LODLevel struct {
	Distance float32
	Detail   float32
	Mesh     *Mesh
}

// BuildLOD produces a family of progressively decimated copies of base,
// one per spec, sorted by distance ascending. Detail 1.0 keeps the
// original mesh unless a nearer level already has fewer triangles; lower
// detail decimates to ceil(base_tris * detail), capped at the previous
// level's triangle count.
// Levels never increase in triangle count as distance increases
// (spec §4.3.3).
func BuildLOD(base *Mesh, specs []LODSpec) []LODLevel {
	sorted := append([]LODSpec(nil), specs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Distance < sorted[j].Distance })

	baseTris := base.TriangleCount()
	levels := make([]LODLevel, len(sorted))
	prevTarget := baseTris
	for i, s := range sorted {
		target := ceilInt(float64(baseTris) * float64(s.Detail))
		if target > prevTarget {
			target = prevTarget
		}
		var m *Mesh
		if target >= baseTris {
			m = base
		} else {
			m = Decimate(base, DecimateOptions{TargetTriangles: target})
		}
		levels[i] = LODLevel{Distance: s.Distance, Detail: s.Detail, Mesh: m}
		prevTarget = m.TriangleCount()
	}
	return levels
}

func ceilInt(x float64) int {
	i := int(x)
	if float64(i) < x {
		i++
	}
	return i
}

// Lookup returns the deepest level whose distance <= query.
func Lookup(levels []LODLevel, distance float32) *LODLevel {
	if len(levels) == 0 {
		return nil
	}
	best := &levels[0]
	for i := range levels {
		if levels[i].Distance <= distance {
			best = &levels[i]
		}
	}
	return best
}
