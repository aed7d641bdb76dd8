package eval

import (
	"testing"

	"github.com/dhconnelly/rtreego"
	"github.com/go-gl/mathgl/mgl32"
	"pgregory.net/rapid"

	"github.com/sdfkit/sdfkit/pkg/sdfgraph"
)

func mustNode(t *testing.T, n sdfgraph.Node, err error) sdfgraph.Node {
	t.Helper()
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	return n
}

// TestSignInvariant checks spec §8 invariant 1: a point strictly inside a
// sphere is negative, strictly outside is positive, and the surface itself
// evaluates within a small tolerance of zero.
func TestSignInvariant(t *testing.T) {
	sphere := mustNode(t, sdfgraph.NewSphere(2.0))

	inside := mgl32.Vec3{0, 0, 0}
	if d := Distance(sphere, inside); d >= 0 {
		t.Errorf("center of sphere: want negative, got %v", d)
	}

	outside := mgl32.Vec3{10, 0, 0}
	if d := Distance(sphere, outside); d <= 0 {
		t.Errorf("far outside sphere: want positive, got %v", d)
	}

	surface := mgl32.Vec3{2, 0, 0}
	if d := Distance(sphere, surface); absf(d) > 1e-4 {
		t.Errorf("surface of sphere: want ~0, got %v", d)
	}
}

// TestUnionMonotonicity checks spec §8 invariant 2: Union(a, b) <=
// min(Distance(a, p), Distance(b, p)) is actually exact equality for the
// sharp union, at every sampled point.
func TestUnionMonotonicity(t *testing.T) {
	a := mustNode(t, sdfgraph.NewSphere(1.0))
	b := mustNode(t, sdfgraph.NewTranslate(mustNode(t, sdfgraph.NewSphere(1.0)), [3]float32{3, 0, 0}))
	u := mustNode(t, sdfgraph.NewUnion(a, b))

	rapid.Check(t, func(t *rapid.T) {
		p := mgl32.Vec3{
			rapid.Float32Range(-5, 5).Draw(t, "x"),
			rapid.Float32Range(-5, 5).Draw(t, "y"),
			rapid.Float32Range(-5, 5).Draw(t, "z"),
		}
		da, db := Distance(a, p), Distance(b, p)
		want := da
		if db < want {
			want = db
		}
		got := Distance(u, p)
		if absf(got-want) > 1e-5 {
			t.Fatalf("Union(a,b)(%v) = %v, want min(%v,%v) = %v", p, got, da, db, want)
		}
	})
}

// TestSubtractAndIntersectAgreeWithFormula checks the graph evaluator
// delegates combinator semantics to pkg/formula rather than re-deriving
// them, by comparing against a direct min/max computation.
func TestSubtractAndIntersectAgreeWithFormula(t *testing.T) {
	a := mustNode(t, sdfgraph.NewBox([3]float32{1, 1, 1}))
	b := mustNode(t, sdfgraph.NewSphere(1.0))
	sub := mustNode(t, sdfgraph.NewSubtract(a, b))
	inter := mustNode(t, sdfgraph.NewIntersect(a, b))

	rapid.Check(t, func(t *rapid.T) {
		p := mgl32.Vec3{
			rapid.Float32Range(-3, 3).Draw(t, "x"),
			rapid.Float32Range(-3, 3).Draw(t, "y"),
			rapid.Float32Range(-3, 3).Draw(t, "z"),
		}
		da, db := Distance(a, p), Distance(b, p)

		if got, want := Distance(sub, p), maxf(da, -db); absf(got-want) > 1e-5 {
			t.Fatalf("Subtract(%v) = %v, want %v", p, got, want)
		}
		if got, want := Distance(inter, p), maxf(da, db); absf(got-want) > 1e-5 {
			t.Fatalf("Intersect(%v) = %v, want %v", p, got, want)
		}
	})
}

// boundedPoint adapts a single sample into an rtreego.Spatial so the
// round-trip check below can cross-validate containment through a
// different code path (R-tree intersection) than AABB.Contains.
type boundedPoint struct{ p mgl32.Vec3 }

func (b boundedPoint) Bounds() rtreego.Rect {
	rect, err := rtreego.NewRect(rtreego.Point{
		float64(b.p.X()), float64(b.p.Y()), float64(b.p.Z()),
	}, []float64{1e-6, 1e-6, 1e-6})
	if err != nil {
		panic(err)
	}
	return rect
}

// TestRoundTripBounds checks spec §8 invariant 4: every surface-adjacent
// sample point produced by Distance lies within Bounds(node), verified two
// ways — AABB.Contains directly, and independently via rtreego's
// intersection query, so a bug in AABB.Contains itself can't mask a bug in
// Bounds.
func TestRoundTripBounds(t *testing.T) {
	node := mustNode(t, sdfgraph.NewSmoothUnion(
		mustNode(t, sdfgraph.NewSphere(1.5)),
		mustNode(t, sdfgraph.NewTranslate(mustNode(t, sdfgraph.NewBox([3]float32{1, 1, 1})), [3]float32{2, 0, 0})),
		0.3,
	))
	box := Bounds(node)

	tree := rtreego.NewTree(3, 2, 5)
	boxRect, err := rtreego.NewRect(
		rtreego.Point{float64(box.Min.X()), float64(box.Min.Y()), float64(box.Min.Z())},
		[]float64{
			float64(box.Max.X() - box.Min.X()),
			float64(box.Max.Y() - box.Min.Y()),
			float64(box.Max.Z() - box.Min.Z()),
		},
	)
	if err != nil {
		t.Fatalf("NewRect: %v", err)
	}

	rapid.Check(t, func(t *rapid.T) {
		p := mgl32.Vec3{
			rapid.Float32Range(-6, 6).Draw(t, "x"),
			rapid.Float32Range(-6, 6).Draw(t, "y"),
			rapid.Float32Range(-6, 6).Draw(t, "z"),
		}
		if absf(Distance(node, p)) > 0.05 {
			return // only surface-adjacent samples are checked
		}
		if !box.Contains(p) {
			t.Fatalf("surface point %v not contained by Bounds() = %+v", p, box)
		}
		pt := boundedPoint{p}
		tree.Insert(pt)
		hits := tree.SearchIntersect(boxRect)
		found := false
		for _, h := range hits {
			if h.(boundedPoint).p == p {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("rtreego cross-check: surface point %v not intersecting bounds rect", p)
		}
	})
}

func TestRotateInvertsPoint(t *testing.T) {
	s := mustNode(t, sdfgraph.NewSphere(1.0))
	off := mustNode(t, sdfgraph.NewTranslate(s, [3]float32{2, 0, 0}))
	rotated := mustNode(t, sdfgraph.NewRotateY(off, 1.5707963))

	// A sphere offset along +X, then the whole thing rotated 90deg about Y
	// (right-handed), should now be centered near -Z.
	if d := Distance(rotated, mgl32.Vec3{0, 0, -2}); absf(d+1.0) > 1e-3 {
		t.Errorf("expected rotated sphere center near (0,0,-2) to read ~ -1 (inside), got %v", d)
	}
}
