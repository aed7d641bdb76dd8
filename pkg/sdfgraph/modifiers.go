package sdfgraph

import "fmt"

// Shell hollows its child into a shell whose wall, centered on the
// child's surface, is T thick.
type Shell struct {
	Child Node
	T     float32
}

func (*Shell) Kind() Kind { return KindShell }
func (*Shell) sealed()    {}

// NewShell validates and constructs a Shell. T must be positive.
func NewShell(child Node, t float32) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	if t <= 0 {
		return nil, fmt.Errorf("%w: shell thickness must be > 0, got %v", ErrInvalidParameter, t)
	}
	return &Shell{Child: child, T: t}, nil
}

// Round fillets its child's surface outward by radius R.
type Round struct {
	Child Node
	R     float32
}

func (*Round) Kind() Kind { return KindRound }
func (*Round) sealed()    {}

// NewRound validates and constructs a Round. R must be positive.
func NewRound(child Node, r float32) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	if r <= 0 {
		return nil, fmt.Errorf("%w: round radius must be > 0, got %v", ErrInvalidParameter, r)
	}
	return &Round{Child: child, R: r}, nil
}

// Onion wraps its child's surface in one shell of thickness T, computed
// like Shell from the absolute child distance; nesting Onion nodes
// produces concentric shells.
type Onion struct {
	Child Node
	T     float32
}

func (*Onion) Kind() Kind { return KindOnion }
func (*Onion) sealed()    {}

// NewOnion validates and constructs an Onion. T must be positive.
func NewOnion(child Node, t float32) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	if t <= 0 {
		return nil, fmt.Errorf("%w: onion thickness must be > 0, got %v", ErrInvalidParameter, t)
	}
	return &Onion{Child: child, T: t}, nil
}

// Elongate stretches its child by splitting space along H and evaluating
// the child at the clamped remainder.
type Elongate struct {
	Child Node
	H     [3]float32
}

func (*Elongate) Kind() Kind { return KindElongate }
func (*Elongate) sealed()    {}

// NewElongate validates and constructs an Elongate. Every component of H
// must be non-negative.
func NewElongate(child Node, h [3]float32) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	for i, v := range h {
		if v < 0 {
			return nil, fmt.Errorf("%w: elongate h[%d] must be >= 0, got %v", ErrInvalidParameter, i, v)
		}
	}
	return &Elongate{Child: child, H: h}, nil
}
