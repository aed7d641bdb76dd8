package sdfgraph

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func mustSphere(t interface{ Fatalf(string, ...any) }, r float32) Node {
	n, err := NewSphere(r)
	if err != nil {
		t.Fatalf("NewSphere(%v): %v", r, err)
	}
	return n
}

func TestInvalidParametersRejectedAtConstruction(t *testing.T) {
	cases := []struct {
		name string
		fn   func() error
	}{
		{"sphere radius 0", func() error { _, err := NewSphere(0); return err }},
		{"sphere radius negative", func() error { _, err := NewSphere(-1); return err }},
		{"scale factor 0", func() error { s := mustSphere(t, 1); _, err := NewScale(s, 0); return err }},
		{"scale factor negative", func() error { s := mustSphere(t, 1); _, err := NewScale(s, -1); return err }},
		{"smooth union k 0", func() error {
			s := mustSphere(t, 1)
			_, err := NewSmoothUnion(s, s, 0)
			return err
		}},
		{"cylinder negative half-height", func() error { _, err := NewCylinder(1, -1); return err }},
		{"union nil child", func() error { _, err := NewUnion(nil, mustSphere(t, 1)); return err }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.fn()
			if err == nil {
				t.Fatalf("expected an error, got nil")
			}
			if !errors.Is(err, ErrInvalidParameter) && !errors.Is(err, ErrNilChild) {
				t.Fatalf("expected a wrapped sentinel error, got %v", err)
			}
		})
	}
}

func TestIdempotentTransforms(t *testing.T) {
	s, _ := NewSphere(1.0)

	translated, _ := NewTranslate(s, [3]float32{0, 0, 0})
	if !Equal(translated, s) {
		t.Error("Translate by zero vector should be observationally equal to child")
	}

	scaled, _ := NewScale(s, 1.0)
	if !Equal(scaled, s) {
		t.Error("Scale by 1 should be observationally equal to child")
	}

	rx, _ := NewRotateX(s, 0)
	if !Equal(rx, s) {
		t.Error("RotateX by 0 should be observationally equal to child")
	}
	ry, _ := NewRotateY(s, 0)
	if !Equal(ry, s) {
		t.Error("RotateY by 0 should be observationally equal to child")
	}
	rz, _ := NewRotateZ(s, 0)
	if !Equal(rz, s) {
		t.Error("RotateZ by 0 should be observationally equal to child")
	}
}

func TestEqualIsDeepAndStructural(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r1 := rapid.Float32Range(0.01, 100).Draw(t, "r1")
		r2 := rapid.Float32Range(0.01, 100).Draw(t, "r2")

		a, _ := NewSphere(r1)
		b, _ := NewSphere(r1)
		c, _ := NewSphere(r2)

		if !Equal(a, b) {
			t.Fatalf("two spheres with identical radius %v must be Equal", r1)
		}
		if r1 != r2 && Equal(a, c) {
			t.Fatalf("spheres with different radii (%v, %v) must not be Equal", r1, r2)
		}
	})
}

func TestSharedChildIsNotDuplicated(t *testing.T) {
	child, _ := NewSphere(0.5)
	u, err := NewUnion(child, child)
	if err != nil {
		t.Fatal(err)
	}
	union := u.(*Union)
	if union.A != union.B {
		t.Fatal("both branches should reference the identical shared node")
	}
}
