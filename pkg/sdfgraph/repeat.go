package sdfgraph

import "fmt"

// RepeatInfinite tiles its child across an infinite lattice with the
// given per-axis Spacing; a zero component disables repetition on that
// axis (spec §3).
type RepeatInfinite struct {
	Child   Node
	Spacing [3]float32
}

func (*RepeatInfinite) Kind() Kind { return KindRepeatInfinite }
func (*RepeatInfinite) sealed()    {}

// NewRepeatInfinite validates and constructs a RepeatInfinite. Spacing
// components must be non-negative.
func NewRepeatInfinite(child Node, spacing [3]float32) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	for i, s := range spacing {
		if s < 0 {
			return nil, fmt.Errorf("%w: repeat spacing[%d] must be >= 0, got %v", ErrInvalidParameter, i, s)
		}
	}
	return &RepeatInfinite{Child: child, Spacing: spacing}, nil
}

// RepeatLimited is RepeatInfinite with the lattice index clamped to
// [-Count_i, +Count_i] per axis.
type RepeatLimited struct {
	Child   Node
	Spacing [3]float32
	Count   [3]int32
}

func (*RepeatLimited) Kind() Kind { return KindRepeatLimited }
func (*RepeatLimited) sealed()    {}

// NewRepeatLimited validates and constructs a RepeatLimited. Spacing
// components must be non-negative; count components must be non-negative.
func NewRepeatLimited(child Node, spacing [3]float32, count [3]int32) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	for i, s := range spacing {
		if s < 0 {
			return nil, fmt.Errorf("%w: repeat spacing[%d] must be >= 0, got %v", ErrInvalidParameter, i, s)
		}
	}
	for i, c := range count {
		if c < 0 {
			return nil, fmt.Errorf("%w: repeat count[%d] must be >= 0, got %v", ErrInvalidParameter, i, c)
		}
	}
	return &RepeatLimited{Child: child, Spacing: spacing, Count: count}, nil
}

// RepeatPolar folds its child into N angular sectors around the Y axis.
type RepeatPolar struct {
	Child Node
	N     int32
}

func (*RepeatPolar) Kind() Kind { return KindRepeatPolar }
func (*RepeatPolar) sealed()    {}

// NewRepeatPolar validates and constructs a RepeatPolar. N must be >= 1
// (spec §3).
func NewRepeatPolar(child Node, n int32) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: repeat polar n must be >= 1, got %v", ErrInvalidParameter, n)
	}
	return &RepeatPolar{Child: child, N: n}, nil
}
