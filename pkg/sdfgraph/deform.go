package sdfgraph

// Twist rotates the (x, z) plane of the sample point by k*y before
// evaluating the child (pkg/formula.TwistFold).
type Twist struct {
	Child Node
	K     float32
}

func (*Twist) Kind() Kind { return KindTwist }
func (*Twist) sealed()    {}

// NewTwist validates and constructs a Twist.
func NewTwist(child Node, k float32) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	return &Twist{Child: child, K: k}, nil
}

// Bend rotates the (x, y) plane of the sample point by k*x before
// evaluating the child (pkg/formula.BendFold).
type Bend struct {
	Child Node
	K     float32
}

func (*Bend) Kind() Kind { return KindBend }
func (*Bend) sealed()    {}

// NewBend validates and constructs a Bend.
func NewBend(child Node, k float32) (Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	return &Bend{Child: child, K: k}, nil
}
