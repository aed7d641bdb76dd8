package eval

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sdfkit/sdfkit/pkg/sdfgraph"
)

// deformationMargin is the constant safety margin added to a child's AABB
// by Twist/Bend, acceptable per spec §4.2.
const deformationMargin = 0.5

// repeatInfiniteHalfSide is the fixed half-side of the cube returned for
// RepeatInfinite; callers requiring finite bounds must clip (spec §4.2).
const repeatInfiniteHalfSide = 10.0

// Bounds returns a conservative axis-aligned bounding box containing
// every point on node's surface (spec §4.2). Bounds never under-
// approximates: every branch either computes an exact box or explicitly
// over-approximates.
func Bounds(node sdfgraph.Node) AABB {
	switch n := node.(type) {
	case *sdfgraph.Sphere:
		return cubeAroundOrigin(n.Radius)
	case *sdfgraph.Box:
		h := mgl32.Vec3(n.H)
		return AABB{Min: h.Mul(-1), Max: h}
	case *sdfgraph.RoundedBox:
		h := mgl32.Vec3(n.H)
		return AABB{Min: h.Mul(-1), Max: h}
	case *sdfgraph.Cylinder:
		return AABB{Min: mgl32.Vec3{-n.R, -n.HHalf, -n.R}, Max: mgl32.Vec3{n.R, n.HHalf, n.R}}
	case *sdfgraph.Capsule:
		return AABB{Min: mgl32.Vec3{-n.R, -n.HHalf - n.R, -n.R}, Max: mgl32.Vec3{n.R, n.HHalf + n.R, n.R}}
	case *sdfgraph.Torus:
		ext := n.Major + n.R
		return AABB{Min: mgl32.Vec3{-ext, -n.R, -ext}, Max: mgl32.Vec3{ext, n.R, ext}}
	case *sdfgraph.Cone:
		return AABB{Min: mgl32.Vec3{-n.R, 0, -n.R}, Max: mgl32.Vec3{n.R, n.H, n.R}}
	case *sdfgraph.Plane:
		// An infinite half-space has no finite bounding box; return the
		// same fixed large cube used for RepeatInfinite so downstream
		// callers requiring finite bounds clip it the same way.
		return cubeAroundOrigin(repeatInfiniteHalfSide)
	case *sdfgraph.Ellipsoid:
		r := mgl32.Vec3(n.R)
		return AABB{Min: r.Mul(-1), Max: r}
	case *sdfgraph.Octahedron:
		return cubeAroundOrigin(n.S)
	case *sdfgraph.HexPrism:
		// Flat sides sit at y = ±R; the corners reach x = ±2R/√3.
		cx := n.R * 1.1547005
		return AABB{Min: mgl32.Vec3{-cx, -n.R, -n.HHalf}, Max: mgl32.Vec3{cx, n.R, n.HHalf}}
	case *sdfgraph.TriPrism:
		return AABB{Min: mgl32.Vec3{-n.W, -n.W, -n.H}, Max: mgl32.Vec3{n.W, n.W, n.H}}

	case *sdfgraph.Union:
		return unionAABB(Bounds(n.A), Bounds(n.B))
	case *sdfgraph.Subtract:
		return Bounds(n.A)
	case *sdfgraph.Intersect:
		return Bounds(n.A)
	case *sdfgraph.SmoothUnion:
		return unionAABB(Bounds(n.A), Bounds(n.B)).expand(n.K)
	case *sdfgraph.SmoothSubtract:
		return Bounds(n.A).expand(n.K)
	case *sdfgraph.SmoothIntersect:
		return unionAABB(Bounds(n.A), Bounds(n.B)).expand(n.K)

	case *sdfgraph.Shell:
		return Bounds(n.Child).expand(n.T / 2)
	case *sdfgraph.Round:
		return Bounds(n.Child).expand(n.R)
	case *sdfgraph.Onion:
		return Bounds(n.Child).expand(n.T / 2)
	case *sdfgraph.Elongate:
		return Bounds(n.Child).expandByVec(mgl32.Vec3(n.H))

	case *sdfgraph.Translate:
		return Bounds(n.Child).translate(mgl32.Vec3(n.V))
	case *sdfgraph.RotateX, *sdfgraph.RotateY, *sdfgraph.RotateZ:
		return conservativeRotatedBounds(node)
	case *sdfgraph.Scale:
		return Bounds(n.Child).scale(n.Factor)
	case *sdfgraph.MirrorX, *sdfgraph.MirrorY, *sdfgraph.MirrorZ,
		*sdfgraph.SymmetryX, *sdfgraph.SymmetryY, *sdfgraph.SymmetryZ:
		return mirroredChildBounds(node).symmetricAboutOrigin()

	case *sdfgraph.Twist:
		return Bounds(n.Child).expand(deformationMargin)
	case *sdfgraph.Bend:
		return Bounds(n.Child).expand(deformationMargin)

	case *sdfgraph.RepeatInfinite:
		return cubeAroundOrigin(repeatInfiniteHalfSide)
	case *sdfgraph.RepeatLimited:
		child := Bounds(n.Child)
		margin := mgl32.Vec3{
			n.Spacing[0] * float32(n.Count[0]),
			n.Spacing[1] * float32(n.Count[1]),
			n.Spacing[2] * float32(n.Count[2]),
		}
		return child.expandByVec(margin)
	case *sdfgraph.RepeatPolar:
		// A polar repeat sweeps the child's radial extent through a full
		// revolution; bound it by a cylinder of radius = child's max
		// distance from the Y axis (its box's farthest XZ corner),
		// conservatively approximated as a square of that half-side in X
		// and Z, keeping the child's Y range.
		child := Bounds(n.Child)
		rx := maxf(absf(child.Min.X()), absf(child.Max.X()))
		rz := maxf(absf(child.Min.Z()), absf(child.Max.Z()))
		radial := mgl32.Vec2{rx, rz}.Len()
		return AABB{
			Min: mgl32.Vec3{-radial, child.Min.Y(), -radial},
			Max: mgl32.Vec3{radial, child.Max.Y(), radial},
		}
	}
	panic("eval: unhandled sdfgraph.Node variant")
}

// expandByVec grows the box by a different margin per axis.
func (b AABB) expandByVec(margin mgl32.Vec3) AABB {
	return AABB{Min: b.Min.Sub(margin), Max: b.Max.Add(margin)}
}

// conservativeRotatedBounds replaces the child's AABB with a cube centered
// at the origin, the pivot of every rotation, whose half-side is the
// distance from the origin to the child box's center plus the child's
// AABB diagonal / 2 — safe for any rotation angle (spec §4.2). For a child
// box centered at the origin the half-side is the diagonal / 2.
func conservativeRotatedBounds(node sdfgraph.Node) AABB {
	var child AABB
	switch n := node.(type) {
	case *sdfgraph.RotateX:
		child = Bounds(n.Child)
	case *sdfgraph.RotateY:
		child = Bounds(n.Child)
	case *sdfgraph.RotateZ:
		child = Bounds(n.Child)
	}
	center := child.Min.Add(child.Max).Mul(0.5)
	return cubeAroundOrigin(center.Len() + child.diagonal()/2)
}

func mirroredChildBounds(node sdfgraph.Node) AABB {
	switch n := node.(type) {
	case *sdfgraph.MirrorX:
		return Bounds(n.Child)
	case *sdfgraph.MirrorY:
		return Bounds(n.Child)
	case *sdfgraph.MirrorZ:
		return Bounds(n.Child)
	case *sdfgraph.SymmetryX:
		return Bounds(n.Child)
	case *sdfgraph.SymmetryY:
		return Bounds(n.Child)
	case *sdfgraph.SymmetryZ:
		return Bounds(n.Child)
	}
	panic("eval: unreachable")
}
