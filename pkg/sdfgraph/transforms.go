package sdfgraph

import "fmt"

// Translate offsets its child by V before evaluation: distance(p) =
// distance(Child, p - V).
type Translate struct {
	Child Node
	V     [3]float32
}

func (*Translate) Kind() Kind { return KindTranslate }
func (*Translate) sealed()    {}

// NewTranslate validates and constructs a Translate.
func NewTranslate(child Node, v [3]float32) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	return &Translate{Child: child, V: v}, nil
}

// RotateX rotates its child by angle Theta (radians) about the X axis.
type RotateX struct {
	Child Node
	Theta float32
}

func (*RotateX) Kind() Kind { return KindRotateX }
func (*RotateX) sealed()    {}

// NewRotateX validates and constructs a RotateX.
func NewRotateX(child Node, theta float32) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	return &RotateX{Child: child, Theta: theta}, nil
}

// RotateY rotates its child by angle Theta (radians) about the Y axis.
type RotateY struct {
	Child Node
	Theta float32
}

func (*RotateY) Kind() Kind { return KindRotateY }
func (*RotateY) sealed()    {}

// NewRotateY validates and constructs a RotateY.
func NewRotateY(child Node, theta float32) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	return &RotateY{Child: child, Theta: theta}, nil
}

// RotateZ rotates its child by angle Theta (radians) about the Z axis.
type RotateZ struct {
	Child Node
	Theta float32
}

func (*RotateZ) Kind() Kind { return KindRotateZ }
func (*RotateZ) sealed()    {}

// NewRotateZ validates and constructs a RotateZ.
func NewRotateZ(child Node, theta float32) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	return &RotateZ{Child: child, Theta: theta}, nil
}

// Scale uniformly scales its child by Factor: distance(p) =
// distance(Child, p/Factor) * Factor.
type Scale struct {
	Child  Node
	Factor float32
}

func (*Scale) Kind() Kind { return KindScale }
func (*Scale) sealed()    {}

// NewScale validates and constructs a Scale. Factor must be strictly
// positive (spec §3: "Scale.factor > 0").
func NewScale(child Node, factor float32) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	if factor <= 0 {
		return nil, fmt.Errorf("%w: scale factor must be > 0, got %v", ErrInvalidParameter, factor)
	}
	return &Scale{Child: child, Factor: factor}, nil
}

// MirrorX folds the X axis with abs before evaluating the child.
type MirrorX struct{ Child Node }

func (*MirrorX) Kind() Kind { return KindMirrorX }
func (*MirrorX) sealed()    {}

// NewMirrorX validates and constructs a MirrorX.
func NewMirrorX(child Node) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	return &MirrorX{Child: child}, nil
}

// MirrorY folds the Y axis with abs before evaluating the child.
type MirrorY struct{ Child Node }

func (*MirrorY) Kind() Kind { return KindMirrorY }
func (*MirrorY) sealed()    {}

// NewMirrorY validates and constructs a MirrorY.
func NewMirrorY(child Node) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	return &MirrorY{Child: child}, nil
}

// MirrorZ folds the Z axis with abs before evaluating the child.
type MirrorZ struct{ Child Node }

func (*MirrorZ) Kind() Kind { return KindMirrorZ }
func (*MirrorZ) sealed()    {}

// NewMirrorZ validates and constructs a MirrorZ.
func NewMirrorZ(child Node) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	return &MirrorZ{Child: child}, nil
}

// SymmetryX is kept as a distinct variant from MirrorX per spec §9's open
// question: the source treats mirror/symmetry as aliases, but this graph
// keeps them separate to preserve room for future divergence (e.g. a
// symmetry that averages both half-space evaluations instead of folding).
// Today SymmetryX folds identically to MirrorX.
type SymmetryX struct{ Child Node }

func (*SymmetryX) Kind() Kind { return KindSymmetryX }
func (*SymmetryX) sealed()    {}

// NewSymmetryX validates and constructs a SymmetryX.
func NewSymmetryX(child Node) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	return &SymmetryX{Child: child}, nil
}

// SymmetryY is the Y-axis counterpart of SymmetryX.
type SymmetryY struct{ Child Node }

func (*SymmetryY) Kind() Kind { return KindSymmetryY }
func (*SymmetryY) sealed()    {}

// NewSymmetryY validates and constructs a SymmetryY.
func NewSymmetryY(child Node) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	return &SymmetryY{Child: child}, nil
}

// SymmetryZ is the Z-axis counterpart of SymmetryX.
type SymmetryZ struct{ Child Node }

func (*SymmetryZ) Kind() Kind { return KindSymmetryZ }
func (*SymmetryZ) sealed()    {}

// NewSymmetryZ validates and constructs a SymmetryZ.
func NewSymmetryZ(child Node) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	return &SymmetryZ{Child: child}, nil
}
