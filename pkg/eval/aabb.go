package eval

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis-aligned bounding box (spec GLOSSARY).
type AABB struct {
	Min, Max mgl32.Vec3
}

// Contains reports whether p lies within the box (inclusive).
func (b AABB) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// unionAABB returns the smallest box containing both a and b.
func unionAABB(a, b AABB) AABB {
	out := a
	for i := 0; i < 3; i++ {
		if b.Min[i] < out.Min[i] {
			out.Min[i] = b.Min[i]
		}
		if b.Max[i] > out.Max[i] {
			out.Max[i] = b.Max[i]
		}
	}
	return out
}

// expand grows the box by margin on every side.
func (b AABB) expand(margin float32) AABB {
	m := mgl32.Vec3{margin, margin, margin}
	return AABB{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}

// translate shifts the box by v.
func (b AABB) translate(v mgl32.Vec3) AABB {
	return AABB{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// scale scales the box about the origin by s (s > 0, enforced at Scale
// node construction).
func (b AABB) scale(s float32) AABB {
	return AABB{Min: b.Min.Mul(s), Max: b.Max.Mul(s)}
}

// diagonal returns the Euclidean length of the box's diagonal.
func (b AABB) diagonal() float32 {
	return b.Max.Sub(b.Min).Len()
}

// cubeAroundOrigin returns a cube centered at the origin with half-side h.
func cubeAroundOrigin(h float32) AABB {
	return AABB{Min: mgl32.Vec3{-h, -h, -h}, Max: mgl32.Vec3{h, h, h}}
}

// symmetricAboutOrigin returns the smallest box, symmetric per axis about
// the origin, that contains b — per spec §4.2: "Mirror/Symmetry produce a
// box symmetric about the origin with side max(|min|, |max|) per axis."
func (b AABB) symmetricAboutOrigin() AABB {
	var out AABB
	for i := 0; i < 3; i++ {
		m := absf(b.Min[i])
		if absf(b.Max[i]) > m {
			m = absf(b.Max[i])
		}
		out.Min[i] = -m
		out.Max[i] = m
	}
	return out
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
