package formula

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"pgregory.net/rapid"
)

func TestSmoothUnionApproachesUnion(t *testing.T) {
	a, b := float32(1.0), float32(2.0)
	got := SmoothUnion(a, b, 1e-4)
	want := Union(a, b)
	if math.Abs(float64(got-want)) > 1e-3 {
		t.Fatalf("SmoothUnion(%v,%v,k->0) = %v, want ~%v", a, b, got, want)
	}
}

func TestSmoothSubtractMatchesSharpAtSmallK(t *testing.T) {
	a, b := float32(-0.5), float32(0.3)
	got := SmoothSubtract(a, b, 1e-4)
	want := Subtract(a, b)
	if math.Abs(float64(got-want)) > 1e-3 {
		t.Fatalf("SmoothSubtract = %v, want ~%v", got, want)
	}
}

// portedPolarFold is an independent hand-port of the repeatPolarWGSL text
// in repeat.go (same arithmetic, same operator order), standing in for "a port
// of the emitted WGSL" that spec §8 invariant 6 asks to compare against
// the native implementation. It deliberately does not call
// RepeatPolarFold or share code with it.
func portedPolarFold(x, y, z float32, n int) (float32, float32, float32) {
	sector := float32(2*math.Pi) / float32(n)
	halfSector := sector * 0.5
	angle := float32(math.Atan2(float64(z), float64(x)))
	shifted := angle + halfSector
	folded := (shifted - sector*float32(math.Floor(float64(shifted/sector)))) - halfSector
	r := float32(math.Sqrt(float64(x*x + z*z)))
	return r * float32(math.Cos(float64(folded))), y, r * float32(math.Sin(float64(folded)))
}

// TestPolarRepeatCPUGPUAgreement exercises spec §8 invariant 6: the
// native implementation and a port of the emitted WGSL must agree to
// <= 1 ulp across random points and n in 1..16.
func TestPolarRepeatCPUGPUAgreement(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float32Range(-10, 10).Draw(t, "x")
		y := rapid.Float32Range(-10, 10).Draw(t, "y")
		z := rapid.Float32Range(-10, 10).Draw(t, "z")
		n := rapid.IntRange(1, 16).Draw(t, "n")

		native := RepeatPolarFold(mgl32.Vec3{x, y, z}, n)
		px, py, pz := portedPolarFold(x, y, z, n)

		if native.X() != px || native.Y() != py || native.Z() != pz {
			t.Fatalf("polar fold disagreement at n=%d p=(%v,%v,%v): native=%v ported=(%v,%v,%v)",
				n, x, y, z, native, px, py, pz)
		}
	})
}

func TestRepeatInfiniteZeroAxisUntouched(t *testing.T) {
	p := mgl32.Vec3{5, 5, 5}
	got := RepeatInfiniteFold(p, mgl32.Vec3{0, 2, 0})
	if got.X() != 5 || got.Z() != 5 {
		t.Fatalf("zero-spacing axes should be untouched, got %v", got)
	}
}

func TestBlockDeterministic(t *testing.T) {
	if Block() != Block() {
		t.Fatal("Block() must be a pure function of the registry")
	}
}
