package sdfgraph

// Equal reports whether a and b describe the same graph: same variant,
// same parameters, and (recursively) equal children. Two nodes built from
// separate constructor calls with the same arguments are Equal even
// though they are different Go values (spec §4.1: "Structural equality
// is deep").
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Sphere:
		return x.Radius == b.(*Sphere).Radius
	case *Box:
		return x.H == b.(*Box).H
	case *RoundedBox:
		y := b.(*RoundedBox)
		return x.H == y.H && x.R == y.R
	case *Cylinder:
		y := b.(*Cylinder)
		return x.R == y.R && x.HHalf == y.HHalf
	case *Capsule:
		y := b.(*Capsule)
		return x.R == y.R && x.HHalf == y.HHalf
	case *Torus:
		y := b.(*Torus)
		return x.Major == y.Major && x.R == y.R
	case *Cone:
		y := b.(*Cone)
		return x.R == y.R && x.H == y.H
	case *Plane:
		y := b.(*Plane)
		return x.N == y.N && x.D == y.D
	case *Ellipsoid:
		return x.R == b.(*Ellipsoid).R
	case *Octahedron:
		return x.S == b.(*Octahedron).S
	case *HexPrism:
		y := b.(*HexPrism)
		return x.HHalf == y.HHalf && x.R == y.R
	case *TriPrism:
		y := b.(*TriPrism)
		return x.W == y.W && x.H == y.H

	case *Union:
		y := b.(*Union)
		return Equal(x.A, y.A) && Equal(x.B, y.B)
	case *Subtract:
		y := b.(*Subtract)
		return Equal(x.A, y.A) && Equal(x.B, y.B)
	case *Intersect:
		y := b.(*Intersect)
		return Equal(x.A, y.A) && Equal(x.B, y.B)
	case *SmoothUnion:
		y := b.(*SmoothUnion)
		return x.K == y.K && Equal(x.A, y.A) && Equal(x.B, y.B)
	case *SmoothSubtract:
		y := b.(*SmoothSubtract)
		return x.K == y.K && Equal(x.A, y.A) && Equal(x.B, y.B)
	case *SmoothIntersect:
		y := b.(*SmoothIntersect)
		return x.K == y.K && Equal(x.A, y.A) && Equal(x.B, y.B)

	case *Shell:
		y := b.(*Shell)
		return x.T == y.T && Equal(x.Child, y.Child)
	case *Round:
		y := b.(*Round)
		return x.R == y.R && Equal(x.Child, y.Child)
	case *Onion:
		y := b.(*Onion)
		return x.T == y.T && Equal(x.Child, y.Child)
	case *Elongate:
		y := b.(*Elongate)
		return x.H == y.H && Equal(x.Child, y.Child)

	case *Translate:
		y := b.(*Translate)
		return x.V == y.V && Equal(x.Child, y.Child)
	case *RotateX:
		y := b.(*RotateX)
		return x.Theta == y.Theta && Equal(x.Child, y.Child)
	case *RotateY:
		y := b.(*RotateY)
		return x.Theta == y.Theta && Equal(x.Child, y.Child)
	case *RotateZ:
		y := b.(*RotateZ)
		return x.Theta == y.Theta && Equal(x.Child, y.Child)
	case *Scale:
		y := b.(*Scale)
		return x.Factor == y.Factor && Equal(x.Child, y.Child)
	case *MirrorX:
		return Equal(x.Child, b.(*MirrorX).Child)
	case *MirrorY:
		return Equal(x.Child, b.(*MirrorY).Child)
	case *MirrorZ:
		return Equal(x.Child, b.(*MirrorZ).Child)
	case *SymmetryX:
		return Equal(x.Child, b.(*SymmetryX).Child)
	case *SymmetryY:
		return Equal(x.Child, b.(*SymmetryY).Child)
	case *SymmetryZ:
		return Equal(x.Child, b.(*SymmetryZ).Child)

	case *Twist:
		y := b.(*Twist)
		return x.K == y.K && Equal(x.Child, y.Child)
	case *Bend:
		y := b.(*Bend)
		return x.K == y.K && Equal(x.Child, y.Child)

	case *RepeatInfinite:
		y := b.(*RepeatInfinite)
		return x.Spacing == y.Spacing && Equal(x.Child, y.Child)
	case *RepeatLimited:
		y := b.(*RepeatLimited)
		return x.Spacing == y.Spacing && x.Count == y.Count && Equal(x.Child, y.Child)
	case *RepeatPolar:
		y := b.(*RepeatPolar)
		return x.N == y.N && Equal(x.Child, y.Child)
	}
	return false
}
