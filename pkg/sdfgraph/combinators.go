package sdfgraph

import "fmt"

// Union is the sharp boolean union (min of distances) of A and B.
type Union struct{ A, B Node }

func (*Union) Kind() Kind { return KindUnion }
func (*Union) sealed()    {}

// NewUnion validates and constructs a Union.
func NewUnion(a, b Node) (Node, error) {
	if a == nil || b == nil {
		return nil, ErrNilChild
	}
	return &Union{A: a, B: b}, nil
}

// Subtract is the sharp boolean subtraction of B from A.
type Subtract struct{ A, B Node }

func (*Subtract) Kind() Kind { return KindSubtract }
func (*Subtract) sealed()    {}

// NewSubtract validates and constructs a Subtract.
func NewSubtract(a, b Node) (Node, error) {
	if a == nil || b == nil {
		return nil, ErrNilChild
	}
	return &Subtract{A: a, B: b}, nil
}

// Intersect is the sharp boolean intersection (max of distances) of A and B.
type Intersect struct{ A, B Node }

func (*Intersect) Kind() Kind { return KindIntersect }
func (*Intersect) sealed()    {}

// NewIntersect validates and constructs an Intersect.
func NewIntersect(a, b Node) (Node, error) {
	if a == nil || b == nil {
		return nil, ErrNilChild
	}
	return &Intersect{A: a, B: b}, nil
}

// SmoothUnion is Union blended over radius K using the McGuire smooth-min
// in pkg/formula.
type SmoothUnion struct {
	A, B Node
	K    float32
}

func (*SmoothUnion) Kind() Kind { return KindSmoothUnion }
func (*SmoothUnion) sealed()    {}

// NewSmoothUnion validates and constructs a SmoothUnion. K must be
// strictly positive; zero is not valid input (spec §3) — use NewUnion.
func NewSmoothUnion(a, b Node, k float32) (Node, error) {
	if a == nil || b == nil {
		return nil, ErrNilChild
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: smooth union blend radius k must be > 0, got %v", ErrInvalidParameter, k)
	}
	return &SmoothUnion{A: a, B: b, K: k}, nil
}

// SmoothSubtract is Subtract blended over radius K.
type SmoothSubtract struct {
	A, B Node
	K    float32
}

func (*SmoothSubtract) Kind() Kind { return KindSmoothSubtract }
func (*SmoothSubtract) sealed()    {}

// NewSmoothSubtract validates and constructs a SmoothSubtract.
func NewSmoothSubtract(a, b Node, k float32) (Node, error) {
	if a == nil || b == nil {
		return nil, ErrNilChild
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: smooth subtract blend radius k must be > 0, got %v", ErrInvalidParameter, k)
	}
	return &SmoothSubtract{A: a, B: b, K: k}, nil
}

// SmoothIntersect is Intersect blended over radius K.
type SmoothIntersect struct {
	A, B Node
	K    float32
}

func (*SmoothIntersect) Kind() Kind { return KindSmoothIntersect }
func (*SmoothIntersect) sealed()    {}

// NewSmoothIntersect validates and constructs a SmoothIntersect.
func NewSmoothIntersect(a, b Node, k float32) (Node, error) {
	if a == nil || b == nil {
		return nil, ErrNilChild
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: smooth intersect blend radius k must be > 0, got %v", ErrInvalidParameter, k)
	}
	return &SmoothIntersect{A: a, B: b, K: k}, nil
}
