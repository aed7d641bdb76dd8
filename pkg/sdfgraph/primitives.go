package sdfgraph

import (
	"fmt"
	"math"
)

// Sphere is centered at the origin with radius Radius.
type Sphere struct{ Radius float32 }

func (*Sphere) Kind() Kind { return KindSphere }
func (*Sphere) sealed()    {}

// NewSphere validates and constructs a Sphere. Radius must be positive.
func NewSphere(radius float32) (Node, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: sphere radius must be > 0, got %v", ErrInvalidParameter, radius)
	}
	return &Sphere{Radius: radius}, nil
}

// Box is an axis-aligned box centered at the origin with half-extents H.
type Box struct{ H [3]float32 }

func (*Box) Kind() Kind { return KindBox }
func (*Box) sealed()    {}

// NewBox validates and constructs a Box. Every half-extent must be positive.
func NewBox(h [3]float32) (Node, error) {
	for i, v := range h {
		if v <= 0 {
			return nil, fmt.Errorf("%w: box half-extent[%d] must be > 0, got %v", ErrInvalidParameter, i, v)
		}
	}
	return &Box{H: h}, nil
}

// RoundedBox is a Box with its edges filleted by radius R.
type RoundedBox struct {
	H [3]float32
	R float32
}

func (*RoundedBox) Kind() Kind { return KindRoundedBox }
func (*RoundedBox) sealed()    {}

// NewRoundedBox validates and constructs a RoundedBox.
func NewRoundedBox(h [3]float32, r float32) (Node, error) {
	for i, v := range h {
		if v <= 0 {
			return nil, fmt.Errorf("%w: rounded box half-extent[%d] must be > 0, got %v", ErrInvalidParameter, i, v)
		}
	}
	if r <= 0 {
		return nil, fmt.Errorf("%w: rounded box radius must be > 0, got %v", ErrInvalidParameter, r)
	}
	return &RoundedBox{H: h, R: r}, nil
}

// Cylinder is centered at the origin, capped, radius R, half-height HHalf
// along Y.
type Cylinder struct {
	R     float32
	HHalf float32
}

func (*Cylinder) Kind() Kind { return KindCylinder }
func (*Cylinder) sealed()    {}

// NewCylinder validates and constructs a Cylinder. Radius must be
// positive; half-height must be non-negative (spec §3).
func NewCylinder(r, hHalf float32) (Node, error) {
	if r <= 0 {
		return nil, fmt.Errorf("%w: cylinder radius must be > 0, got %v", ErrInvalidParameter, r)
	}
	if hHalf < 0 {
		return nil, fmt.Errorf("%w: cylinder half-height must be >= 0, got %v", ErrInvalidParameter, hHalf)
	}
	return &Cylinder{R: r, HHalf: hHalf}, nil
}

// Capsule is a Cylinder with hemispherical caps.
type Capsule struct {
	R     float32
	HHalf float32
}

func (*Capsule) Kind() Kind { return KindCapsule }
func (*Capsule) sealed()    {}

// NewCapsule validates and constructs a Capsule.
func NewCapsule(r, hHalf float32) (Node, error) {
	if r <= 0 {
		return nil, fmt.Errorf("%w: capsule radius must be > 0, got %v", ErrInvalidParameter, r)
	}
	if hHalf < 0 {
		return nil, fmt.Errorf("%w: capsule half-height must be >= 0, got %v", ErrInvalidParameter, hHalf)
	}
	return &Capsule{R: r, HHalf: hHalf}, nil
}

// Torus revolves a circle of minor radius R around the Y axis at major
// radius Major.
type Torus struct {
	Major float32
	R     float32
}

func (*Torus) Kind() Kind { return KindTorus }
func (*Torus) sealed()    {}

// NewTorus validates and constructs a Torus.
func NewTorus(major, r float32) (Node, error) {
	if major <= 0 {
		return nil, fmt.Errorf("%w: torus major radius must be > 0, got %v", ErrInvalidParameter, major)
	}
	if r <= 0 {
		return nil, fmt.Errorf("%w: torus minor radius must be > 0, got %v", ErrInvalidParameter, r)
	}
	return &Torus{Major: major, R: r}, nil
}

// Cone has base radius R and height H, apex on +Y.
type Cone struct {
	R float32
	H float32
}

func (*Cone) Kind() Kind { return KindCone }
func (*Cone) sealed()    {}

// NewCone validates and constructs a Cone.
func NewCone(r, h float32) (Node, error) {
	if r <= 0 {
		return nil, fmt.Errorf("%w: cone radius must be > 0, got %v", ErrInvalidParameter, r)
	}
	if h <= 0 {
		return nil, fmt.Errorf("%w: cone height must be > 0, got %v", ErrInvalidParameter, h)
	}
	return &Cone{R: r, H: h}, nil
}

// Plane is the half-space {p : dot(p, N) + D <= 0}, N a unit normal.
type Plane struct {
	N [3]float32
	D float32
}

func (*Plane) Kind() Kind { return KindPlane }
func (*Plane) sealed()    {}

// NewPlane validates and constructs a Plane. N must be non-zero; it is
// not required to already be unit length, but is normalized at
// construction so the evaluator's dot product is a true distance.
func NewPlane(n [3]float32, d float32) (Node, error) {
	lenSq := n[0]*n[0] + n[1]*n[1] + n[2]*n[2]
	if lenSq == 0 {
		return nil, fmt.Errorf("%w: plane normal must be non-zero", ErrInvalidParameter)
	}
	inv := float32(1) / sqrtf32(lenSq)
	return &Plane{N: [3]float32{n[0] * inv, n[1] * inv, n[2] * inv}, D: d}, nil
}

// Ellipsoid is centered at the origin with per-axis radii R.
type Ellipsoid struct{ R [3]float32 }

func (*Ellipsoid) Kind() Kind { return KindEllipsoid }
func (*Ellipsoid) sealed()    {}

// NewEllipsoid validates and constructs an Ellipsoid.
func NewEllipsoid(r [3]float32) (Node, error) {
	for i, v := range r {
		if v <= 0 {
			return nil, fmt.Errorf("%w: ellipsoid radius[%d] must be > 0, got %v", ErrInvalidParameter, i, v)
		}
	}
	return &Ellipsoid{R: r}, nil
}

// Octahedron is centered at the origin with "radius" S (vertex distance).
type Octahedron struct{ S float32 }

func (*Octahedron) Kind() Kind { return KindOctahedron }
func (*Octahedron) sealed()    {}

// NewOctahedron validates and constructs an Octahedron.
func NewOctahedron(s float32) (Node, error) {
	if s <= 0 {
		return nil, fmt.Errorf("%w: octahedron size must be > 0, got %v", ErrInvalidParameter, s)
	}
	return &Octahedron{S: s}, nil
}

// HexPrism is a regular hexagonal prism with half-height HHalf along Z.
// R is the distance from the Z axis to each flat side: the flat sides lie
// at y = ±R and the corners reach x = ±2R/√3.
type HexPrism struct {
	HHalf float32
	R     float32
}

func (*HexPrism) Kind() Kind { return KindHexPrism }
func (*HexPrism) sealed()    {}

// NewHexPrism validates and constructs a HexPrism.
func NewHexPrism(hHalf, r float32) (Node, error) {
	if hHalf <= 0 {
		return nil, fmt.Errorf("%w: hex prism half-height must be > 0, got %v", ErrInvalidParameter, hHalf)
	}
	if r <= 0 {
		return nil, fmt.Errorf("%w: hex prism radius must be > 0, got %v", ErrInvalidParameter, r)
	}
	return &HexPrism{HHalf: hHalf, R: r}, nil
}

// TriPrism is a prism with equilateral-triangle cross-section whose
// corners lie at distance W from the Z axis (apex at y = W, base at
// y = -W/2), extruded to half-height H along Z.
type TriPrism struct {
	W float32
	H float32
}

func (*TriPrism) Kind() Kind { return KindTriPrism }
func (*TriPrism) sealed()    {}

// NewTriPrism validates and constructs a TriPrism.
func NewTriPrism(w, h float32) (Node, error) {
	if w <= 0 {
		return nil, fmt.Errorf("%w: tri prism width must be > 0, got %v", ErrInvalidParameter, w)
	}
	if h <= 0 {
		return nil, fmt.Errorf("%w: tri prism height must be > 0, got %v", ErrInvalidParameter, h)
	}
	return &TriPrism{W: w, H: h}, nil
}

func sqrtf32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
