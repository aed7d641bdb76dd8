package mesher

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sdfkit/sdfkit/pkg/eval"
	"github.com/sdfkit/sdfkit/pkg/sdfgraph"
)

// normalEps is the central-difference step for gradient estimation
// (spec §4.3 step 3).
const normalEps = 1e-3

// gradientNormal estimates the SDF's surface normal at p by central
// differences and normalizes the result.
func gradientNormal(node sdfgraph.Node, p mgl32.Vec3) mgl32.Vec3 {
	dx := eval.Distance(node, p.Add(mgl32.Vec3{normalEps, 0, 0})) -
		eval.Distance(node, p.Sub(mgl32.Vec3{normalEps, 0, 0}))
	dy := eval.Distance(node, p.Add(mgl32.Vec3{0, normalEps, 0})) -
		eval.Distance(node, p.Sub(mgl32.Vec3{0, normalEps, 0}))
	dz := eval.Distance(node, p.Add(mgl32.Vec3{0, 0, normalEps})) -
		eval.Distance(node, p.Sub(mgl32.Vec3{0, 0, normalEps}))

	g := mgl32.Vec3{dx, dy, dz}
	l := g.Len()
	if l < 1e-8 {
		return mgl32.Vec3{0, 1, 0}
	}
	return g.Mul(1 / l)
}

// computeNormals fills every vertex's Normal field in place.
func computeNormals(node sdfgraph.Node, vertices []Vertex) {
	for i := range vertices {
		vertices[i].Normal = gradientNormal(node, vertices[i].Position)
	}
}
