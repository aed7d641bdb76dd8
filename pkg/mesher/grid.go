package mesher

import (
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/sdfkit/sdfkit/pkg/eval"
	"github.com/sdfkit/sdfkit/pkg/sdfgraph"
)

// sampleBatchSize is the number of grid points each worker claims per
// channel receive; grounded on the channel-batching pattern used by
// deadsy/sdfx's marching-cubes renderer, where small per-point dispatch
// was found to dominate runtime and batching amortizes it.
const sampleBatchSize = 256

type sampleJob struct {
	start, end int // half-open range into the flat sample array
}

// sampleGrid fills a flat (R+1)^3 array of distances, dispatching work to
// a fixed pool of goroutines over a channel, each worker claiming a batch
// and writing to its disjoint slice of out — no synchronization needed
// beyond the WaitGroup (spec §4.3 step 1, §4.4).
func sampleGrid(node sdfgraph.Node, b AABB, r int) []float32 {
	n := r + 1
	total := n * n * n
	out := make([]float32, total)

	size := mgl32.Vec3{
		(b.Max.X() - b.Min.X()) / float32(r),
		(b.Max.Y() - b.Min.Y()) / float32(r),
		(b.Max.Z() - b.Min.Z()) / float32(r),
	}

	jobs := make(chan sampleJob, 64)
	var wg sync.WaitGroup

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	for w := 0; w < workers; w++ {
		go func() {
			for job := range jobs {
				for i := job.start; i < job.end; i++ {
					x := i % n
					y := (i / n) % n
					z := i / (n * n)
					p := mgl32.Vec3{
						b.Min.X() + float32(x)*size.X(),
						b.Min.Y() + float32(y)*size.Y(),
						b.Min.Z() + float32(z)*size.Z(),
					}
					out[i] = eval.Distance(node, p)
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
		jobs <- sampleJob{start: start, end: end}
	}
	close(jobs)
	wg.Wait()

	return out
}

func gridIndex(x, y, z, n int) int {
	return z*n*n + y*n + x
}
