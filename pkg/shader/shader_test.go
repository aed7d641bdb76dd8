package shader

import (
	"strings"
	"testing"

	"github.com/sdfkit/sdfkit/pkg/sdfgraph"
)

func mustNode(t *testing.T, n sdfgraph.Node, err error) sdfgraph.Node {
	t.Helper()
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	return n
}

// TestCompileDeterministic checks spec §8 invariant 5: compiling the same
// graph twice produces byte-identical WGSL source.
func TestCompileDeterministic(t *testing.T) {
	sphere := mustNode(t, sdfgraph.NewSphere(1.0))
	translated := mustNode(t, sdfgraph.NewTranslate(sphere, [3]float32{0.5, 0, 0}))

	a := Compile(translated)
	b := Compile(translated)
	if a != b {
		t.Fatalf("Compile is not deterministic:\n--- a ---\n%s\n--- b ---\n%s", a, b)
	}
}

// TestCompileSphereTranslate checks scenario S5: compiling
// sphere(1.0).translate_x(0.5) must reference sd_sphere and must encode
// the translated point using an identity-coefficient affine form on p0.x.
func TestCompileSphereTranslate(t *testing.T) {
	sphere := mustNode(t, sdfgraph.NewSphere(1.0))
	translated := mustNode(t, sdfgraph.NewTranslate(sphere, [3]float32{0.5, 0, 0}))

	out := Compile(translated)
	if !strings.Contains(out, "sd_sphere") {
		t.Errorf("output missing sd_sphere call:\n%s", out)
	}
	if !strings.Contains(out, "1.00000000 * p0.x") {
		t.Errorf("output missing translated-point affine term on p0.x:\n%s", out)
	}
}

// TestCompileContainsFormulaBlock checks that the shared formula block is
// always present, even for a graph that never uses a combinator.
func TestCompileContainsFormulaBlock(t *testing.T) {
	sphere := mustNode(t, sdfgraph.NewSphere(1.0))
	out := Compile(sphere)
	for _, want := range []string{"fn op_union", "fn op_twist", "fn op_repeat_polar"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing shared formula %q", want)
		}
	}
}

// TestCompileUnionUsesBothBranches ensures both operands of a boolean
// combinator are lowered before the combining call, each under its own
// let-binding.
func TestCompileUnionUsesBothBranches(t *testing.T) {
	a := mustNode(t, sdfgraph.NewSphere(1.0))
	b := mustNode(t, sdfgraph.NewBox([3]float32{1, 1, 1}))
	u := mustNode(t, sdfgraph.NewUnion(a, b))

	out := Compile(u)
	if !strings.Contains(out, "sd_sphere") || !strings.Contains(out, "sd_box") {
		t.Errorf("union did not lower both branches:\n%s", out)
	}
	if !strings.Contains(out, "op_union(d") {
		t.Errorf("union did not emit op_union call over bound distances:\n%s", out)
	}
}

// TestCompileRotateFoldsConstant checks spec §4.5: rotation by a constant
// angle is folded into numeric sin/cos literals rather than emitted as a
// runtime trig call.
func TestCompileRotateFoldsConstant(t *testing.T) {
	sphere := mustNode(t, sdfgraph.NewSphere(1.0))
	rotated := mustNode(t, sdfgraph.NewRotateZ(sphere, 0))

	out := Compile(rotated)
	if strings.Contains(out, "cos(") || strings.Contains(out, "sin(") {
		t.Errorf("rotation was not constant-folded, found a runtime trig call:\n%s", out)
	}
	if !strings.Contains(out, "1.00000000") {
		t.Errorf("expected folded cos(0)=1 literal:\n%s", out)
	}
}

// TestCompileScaleAppliesFactorAfterChild checks that Scale multiplies
// the child distance by Factor after recursing with the scaled point.
func TestCompileScaleAppliesFactorAfterChild(t *testing.T) {
	sphere := mustNode(t, sdfgraph.NewSphere(1.0))
	scaled := mustNode(t, sdfgraph.NewScale(sphere, 2.0))

	out := Compile(scaled)
	if !strings.Contains(out, "op_scale(") {
		t.Errorf("scale did not transform the point:\n%s", out)
	}
	if !strings.Contains(out, "* 2.00000000") {
		t.Errorf("scale did not reapply the factor to the child distance:\n%s", out)
	}
}
