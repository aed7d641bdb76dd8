package script

import (
	"errors"
	"testing"

	"github.com/sdfkit/sdfkit/pkg/sdfgraph"
)

func TestRunConstructorAndMethodChain(t *testing.T) {
	res, err := Run(`return sphere(0.5):translate_x(0.3)`)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	tr, ok := res.Graph.(*sdfgraph.Translate)
	if !ok {
		t.Fatalf("expected *sdfgraph.Translate, got %T", res.Graph)
	}
	if _, ok := tr.Child.(*sdfgraph.Sphere); !ok {
		t.Fatalf("expected sphere child, got %T", tr.Child)
	}
}

// TestRunFreeFunctionEquivalence checks spec §4.6: every operation is
// both a free function and a method; both spellings must build the same
// graph shape.
func TestRunFreeFunctionEquivalence(t *testing.T) {
	viaMethod, err := Run(`return sphere(0.5):translate_x(0.3)`)
	if err != nil {
		t.Fatalf("Run (method): %v", err)
	}
	viaFunc, err := Run(`return translate_x(sphere(0.5), 0.3)`)
	if err != nil {
		t.Fatalf("Run (free function): %v", err)
	}
	if viaMethod.Graph.Kind() != viaFunc.Graph.Kind() {
		t.Fatalf("kind mismatch: %v vs %v", viaMethod.Graph.Kind(), viaFunc.Graph.Kind())
	}
}

// TestRunSmoothUnionScenario checks the shape of scenario S2's script.
func TestRunSmoothUnionScenario(t *testing.T) {
	res, err := Run(`return sphere(0.4):smooth_union(cube(0.5):translate_x(0.3), 0.1)`)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, ok := res.Graph.(*sdfgraph.SmoothUnion); !ok {
		t.Fatalf("expected *sdfgraph.SmoothUnion, got %T", res.Graph)
	}
}

// TestRunHollowScenario checks scenario S3's script.Graph shape.
func TestRunHollowScenario(t *testing.T) {
	res, err := Run(`return sphere(1.0):hollow(0.05)`)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	shell, ok := res.Graph.(*sdfgraph.Shell)
	if !ok {
		t.Fatalf("expected *sdfgraph.Shell, got %T", res.Graph)
	}
	if shell.T != 0.05 {
		t.Errorf("want thickness 0.05, got %v", shell.T)
	}
}

func TestRunNoSceneOnMissingReturn(t *testing.T) {
	_, err := Run(`sphere(0.5);`)
	if !errors.Is(err, ErrNoScene) {
		t.Fatalf("want ErrNoScene, got %v", err)
	}
}

func TestRunInvalidParameterSurfaces(t *testing.T) {
	_, err := Run(`return sphere(-1.0)`)
	if !errors.Is(err, ErrScriptRuntime) {
		t.Fatalf("want ErrScriptRuntime wrapping InvalidParameter, got %v", err)
	}
}

func TestRunParseErrorSurfaces(t *testing.T) {
	_, err := Run(`return sphere(`)
	if !errors.Is(err, ErrScriptParse) {
		t.Fatalf("want ErrScriptParse, got %v", err)
	}
}

func TestRunEnvironmentPresetAndMutator(t *testing.T) {
	res, err := Run(`
env_sunset()
set_fog_density(0.5)
return sphere(1.0)
`)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Env.FogDensity != 0.5 {
		t.Errorf("want fog density 0.5, got %v", res.Env.FogDensity)
	}
}

func TestRunMathHelpers(t *testing.T) {
	res, err := Run(`return sphere(1.0):rotate_z(rad(180))`)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	rot, ok := res.Graph.(*sdfgraph.RotateZ)
	if !ok {
		t.Fatalf("expected *sdfgraph.RotateZ, got %T", res.Graph)
	}
	if rot.Theta < 3.0 || rot.Theta > 3.3 {
		t.Errorf("want theta near pi, got %v", rot.Theta)
	}
}
