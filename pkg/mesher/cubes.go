package mesher

import (
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// cellResult holds one cell's contribution to the mesh before the merge
// phase rebases its indices (spec §4.3 step 2, 4).
type cellResult struct {
	vertices []Vertex
	indices  []int // local indices into this cell's own vertices slice
}

// marchCells runs the cell phase over all R^3 cells in parallel, one
// goroutine batch per range of cell indices, each writing to its own
// disjoint cellResult slot — mirroring sampleGrid's batching approach so
// the two phases share the same concurrency idiom (spec §4.4).
func marchCells(samples []float32, b AABB, r int, iso float32) []cellResult {
	n := r + 1
	total := r * r * r
	results := make([]cellResult, total)

	size := mgl32.Vec3{
		(b.Max.X() - b.Min.X()) / float32(r),
		(b.Max.Y() - b.Min.Y()) / float32(r),
		(b.Max.Z() - b.Min.Z()) / float32(r),
	}

	type cellJob struct{ start, end int }
	jobs := make(chan cellJob, 64)
	var wg sync.WaitGroup

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	for w := 0; w < workers; w++ {
		go func() {
			for job := range jobs {
				for idx := job.start; idx < job.end; idx++ {
					cx := idx % r
					cy := (idx / r) % r
					cz := idx / (r * r)
					results[idx] = marchOneCell(samples, b, size, n, cx, cy, cz, iso)
				}
				wg.Done()
			}
		}()
	}

	for start := 0; start < total; start += sampleBatchSize {
		end := start + sampleBatchSize
		if end > total {
			end = total
		}
		wg.Add(1)
		jobs <- cellJob{start: start, end: end}
	}
	close(jobs)
	wg.Wait()

	return results
}

// marchOneCell computes the single-cell marching-cubes contribution at
// cell (cx, cy, cz) (spec §4.3 step 2).
func marchOneCell(samples []float32, b AABB, size mgl32.Vec3, n, cx, cy, cz int, iso float32) cellResult {
	var corner [8]mgl32.Vec3
	var value [8]float32

	for c := 0; c < 8; c++ {
		ox, oy, oz := cubeCorners[c][0], cubeCorners[c][1], cubeCorners[c][2]
		x, y, z := cx+ox, cy+oy, cz+oz
		corner[c] = mgl32.Vec3{
			b.Min.X() + float32(x)*size.X(),
			b.Min.Y() + float32(y)*size.Y(),
			b.Min.Z() + float32(z)*size.Z(),
		}
		value[c] = samples[gridIndex(x, y, z, n)]
	}

	cubeIndex := 0
	for c := 0; c < 8; c++ {
		if value[c] < iso {
			cubeIndex |= 1 << uint(c)
		}
	}

	if cubeIndex == 0 || cubeIndex == 255 {
		return cellResult{}
	}

	mask := edgeTable[cubeIndex]
	if mask == 0 {
		return cellResult{}
	}

	var edgeVertex [12]mgl32.Vec3
	var edgeUsed [12]bool
	for e := 0; e < 12; e++ {
		if mask&(1<<uint(e)) == 0 {
			continue
		}
		c0, c1 := edgeCorners[e][0], edgeCorners[e][1]
		v0, v1 := value[c0], value[c1]
		denom := v1 - v0
		var t float32 = 0.5
		if absf(denom) >= 1e-5 {
			t = (iso - v0) / denom
		}
		edgeVertex[e] = corner[c0].Add(corner[c1].Sub(corner[c0]).Mul(t))
		edgeUsed[e] = true
	}

	row := triTable[cubeIndex]
	var vertices []Vertex
	var indices []int
	edgeToLocal := make(map[int]int, 12)
	for i := 0; i < 16 && row[i] != -1; i += 3 {
		// With cubeCorners' layout and inside meaning value < iso, the
		// table's vertex order winds each triangle inward; emitting the
		// last two vertices swapped makes it counter-clockwise outward.
		for _, k := range [3]int{0, 2, 1} {
			e := int(row[i+k])
			local, ok := edgeToLocal[e]
			if !ok {
				local = len(vertices)
				vertices = append(vertices, Vertex{Position: edgeVertex[e]})
				edgeToLocal[e] = local
			}
			indices = append(indices, local)
		}
	}

	return cellResult{vertices: vertices, indices: indices}
}
