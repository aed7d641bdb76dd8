package eval

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/sdfkit/sdfkit/pkg/formula"
	"github.com/sdfkit/sdfkit/pkg/sdfgraph"
)

// Distance returns a Lipschitz-1 approximation of the signed distance
// from p to the surface described by node: negative inside, positive
// outside (spec §4.2). Distance is total — it never errors and is always
// finite for finite input, because pkg/sdfgraph already rejected the only
// parameter values (non-positive scale, non-positive smooth-blend radius)
// that could make it otherwise.
func Distance(node sdfgraph.Node, p mgl32.Vec3) float32 {
	switch n := node.(type) {
	case *sdfgraph.Sphere:
		return sdSphere(p, n.Radius)
	case *sdfgraph.Box:
		return sdBox(p, mgl32.Vec3(n.H))
	case *sdfgraph.RoundedBox:
		return sdRoundedBox(p, mgl32.Vec3(n.H), n.R)
	case *sdfgraph.Cylinder:
		return sdCylinder(p, n.R, n.HHalf)
	case *sdfgraph.Capsule:
		return sdCapsule(p, n.R, n.HHalf)
	case *sdfgraph.Torus:
		return sdTorus(p, n.Major, n.R)
	case *sdfgraph.Cone:
		return sdCone(p, n.R, n.H)
	case *sdfgraph.Plane:
		return sdPlane(p, mgl32.Vec3(n.N), n.D)
	case *sdfgraph.Ellipsoid:
		return sdEllipsoid(p, mgl32.Vec3(n.R))
	case *sdfgraph.Octahedron:
		return sdOctahedron(p, n.S)
	case *sdfgraph.HexPrism:
		return sdHexPrism(p, n.HHalf, n.R)
	case *sdfgraph.TriPrism:
		return sdTriPrism(p, n.W, n.H)

	case *sdfgraph.Union:
		return formula.Union(Distance(n.A, p), Distance(n.B, p))
	case *sdfgraph.Subtract:
		return formula.Subtract(Distance(n.A, p), Distance(n.B, p))
	case *sdfgraph.Intersect:
		return formula.Intersect(Distance(n.A, p), Distance(n.B, p))
	case *sdfgraph.SmoothUnion:
		return formula.SmoothUnion(Distance(n.A, p), Distance(n.B, p), n.K)
	case *sdfgraph.SmoothSubtract:
		return formula.SmoothSubtract(Distance(n.A, p), Distance(n.B, p), n.K)
	case *sdfgraph.SmoothIntersect:
		return formula.SmoothIntersect(Distance(n.A, p), Distance(n.B, p), n.K)

	case *sdfgraph.Shell:
		return absf(Distance(n.Child, p)) - n.T/2

	case *sdfgraph.Round:
		return Distance(n.Child, p) - n.R

	case *sdfgraph.Onion:
		return absf(Distance(n.Child, p)) - n.T/2

	case *sdfgraph.Elongate:
		h := mgl32.Vec3(n.H)
		q := mgl32.Vec3{
			p.X() - clampf(p.X(), -h.X(), h.X()),
			p.Y() - clampf(p.Y(), -h.Y(), h.Y()),
			p.Z() - clampf(p.Z(), -h.Z(), h.Z()),
		}
		return Distance(n.Child, q)

	case *sdfgraph.Translate:
		return Distance(n.Child, p.Sub(mgl32.Vec3(n.V)))
	case *sdfgraph.RotateX:
		return Distance(n.Child, rotateX(p, n.Theta))
	case *sdfgraph.RotateY:
		return Distance(n.Child, rotateY(p, n.Theta))
	case *sdfgraph.RotateZ:
		return Distance(n.Child, rotateZ(p, n.Theta))
	case *sdfgraph.Scale:
		return Distance(n.Child, p.Mul(1/n.Factor)) * n.Factor
	case *sdfgraph.MirrorX:
		return Distance(n.Child, mgl32.Vec3{absf(p.X()), p.Y(), p.Z()})
	case *sdfgraph.MirrorY:
		return Distance(n.Child, mgl32.Vec3{p.X(), absf(p.Y()), p.Z()})
	case *sdfgraph.MirrorZ:
		return Distance(n.Child, mgl32.Vec3{p.X(), p.Y(), absf(p.Z())})
	case *sdfgraph.SymmetryX:
		return Distance(n.Child, mgl32.Vec3{absf(p.X()), p.Y(), p.Z()})
	case *sdfgraph.SymmetryY:
		return Distance(n.Child, mgl32.Vec3{p.X(), absf(p.Y()), p.Z()})
	case *sdfgraph.SymmetryZ:
		return Distance(n.Child, mgl32.Vec3{p.X(), p.Y(), absf(p.Z())})

	case *sdfgraph.Twist:
		return Distance(n.Child, formula.TwistFold(p, n.K))
	case *sdfgraph.Bend:
		return Distance(n.Child, formula.BendFold(p, n.K))

	case *sdfgraph.RepeatInfinite:
		return Distance(n.Child, formula.RepeatInfiniteFold(p, mgl32.Vec3(n.Spacing)))
	case *sdfgraph.RepeatLimited:
		return Distance(n.Child, formula.RepeatLimitedFold(p, mgl32.Vec3(n.Spacing), n.Count))
	case *sdfgraph.RepeatPolar:
		return Distance(n.Child, formula.RepeatPolarFold(p, int(n.N)))
	}
	panic("eval: unhandled sdfgraph.Node variant")
}

func rotateX(p mgl32.Vec3, theta float32) mgl32.Vec3 {
	c, s := float32(math.Cos(float64(theta))), float32(math.Sin(float64(theta)))
	// Inverting a rotation means applying its transpose (negative angle);
	// precomputing via -theta keeps the same cos but flips sin's sign.
	return mgl32.Vec3{p.X(), c*p.Y() + s*p.Z(), -s*p.Y() + c*p.Z()}
}

func rotateY(p mgl32.Vec3, theta float32) mgl32.Vec3 {
	c, s := float32(math.Cos(float64(theta))), float32(math.Sin(float64(theta)))
	return mgl32.Vec3{c*p.X() - s*p.Z(), p.Y(), s*p.X() + c*p.Z()}
}

func rotateZ(p mgl32.Vec3, theta float32) mgl32.Vec3 {
	c, s := float32(math.Cos(float64(theta))), float32(math.Sin(float64(theta)))
	return mgl32.Vec3{c*p.X() + s*p.Y(), -s*p.X() + c*p.Y(), p.Z()}
}
