package sdfgraph

import "errors"

// Kind identifies a Node's variant without requiring a type assertion;
// consumers that only need to branch on category (not extract fields)
// can switch on Kind() instead of doing a full type switch.
type Kind int

const (
	KindSphere Kind = iota
	KindBox
	KindRoundedBox
	KindCylinder
	KindCapsule
	KindTorus
	KindCone
	KindPlane
	KindEllipsoid
	KindOctahedron
	KindHexPrism
	KindTriPrism

	KindUnion
	KindSubtract
	KindIntersect
	KindSmoothUnion
	KindSmoothSubtract
	KindSmoothIntersect

	KindShell
	KindRound
	KindOnion
	KindElongate

	KindTranslate
	KindRotateX
	KindRotateY
	KindRotateZ
	KindScale
	KindMirrorX
	KindMirrorY
	KindMirrorZ
	KindSymmetryX
	KindSymmetryY
	KindSymmetryZ

	KindTwist
	KindBend

	KindRepeatInfinite
	KindRepeatLimited
	KindRepeatPolar
)

//go:generate stringer -type=Kind

// Node is any value from the closed SDF operation algebra. The interface
// is sealed: only types declared in this package may implement it, so a
// type switch in pkg/eval or pkg/shader that lists every Kind is provably
// exhaustive (spec §4.1: "traverse by pattern-matching on variant").
type Node interface {
	Kind() Kind
	sealed()
}

// ErrInvalidParameter is wrapped by every construction-time rejection
// (spec §7 InvalidParameter: "negative radius, zero scale, etc. Rejected
// at node construction").
var ErrInvalidParameter = errors.New("sdfgraph: invalid parameter")

// ErrNilChild is returned when a combinator or modifier constructor is
// given a nil child (spec §3: "Every binary combinator's children are
// non-empty").
var ErrNilChild = errors.New("sdfgraph: nil child")
