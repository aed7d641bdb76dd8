package eval

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func clampf(x, lo, hi float32) float32 {
	return minf(maxf(x, lo), hi)
}

func vmax(v mgl32.Vec3) float32 {
	return maxf(v.X(), maxf(v.Y(), v.Z()))
}

func vabs(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{absf(v.X()), absf(v.Y()), absf(v.Z())}
}

func vmaxScalar(v mgl32.Vec3, s float32) mgl32.Vec3 {
	return mgl32.Vec3{maxf(v.X(), s), maxf(v.Y(), s), maxf(v.Z(), s)}
}

func sdSphere(p mgl32.Vec3, r float32) float32 {
	return p.Len() - r
}

// sdBox combines the exterior (length of the positive part) and interior
// (clamped-above-zero max component) terms, summed because exactly one is
// zero outside and the other inside (spec §4.2).
func sdBox(p mgl32.Vec3, h mgl32.Vec3) float32 {
	q := vabs(p).Sub(h)
	outside := vmaxScalar(q, 0).Len()
	inside := minf(vmax(q), 0)
	return outside + inside
}

func sdRoundedBox(p, h mgl32.Vec3, r float32) float32 {
	return sdBox(p, h.Sub(mgl32.Vec3{r, r, r})) - r
}

func sdCylinder(p mgl32.Vec3, r, hHalf float32) float32 {
	radial := math.Hypot(float64(p.X()), float64(p.Z()))
	d := mgl32.Vec2{absf(float32(radial)) - r, absf(p.Y()) - hHalf}
	outside := mgl32.Vec2{maxf(d.X(), 0), maxf(d.Y(), 0)}.Len()
	inside := minf(maxf(d.X(), d.Y()), 0)
	return outside + inside
}

func sdCapsule(p mgl32.Vec3, r, hHalf float32) float32 {
	y := clampf(p.Y(), -hHalf, hHalf)
	q := mgl32.Vec3{p.X(), p.Y() - y, p.Z()}
	return q.Len() - r
}

func sdTorus(p mgl32.Vec3, major, minor float32) float32 {
	radial := float32(math.Hypot(float64(p.X()), float64(p.Z()))) - major
	q := mgl32.Vec2{radial, p.Y()}
	return q.Len() - minor
}

// sdCone treats the (radial, y) half-plane cross-section of the cone as a
// triangular profile: base segment from (0,0) to (r,0), slant segment
// from (r,0) to (0,h) (apex). Distance to the surface of revolution
// equals the planar distance to this profile (radial is already >= 0);
// sign comes from a half-space (triangle-membership) test, matching spec
// §4.2's "sign is taken from the half-space test".
func sdCone(p mgl32.Vec3, r, h float32) float32 {
	radial := float32(math.Hypot(float64(p.X()), float64(p.Z())))
	q := mgl32.Vec2{radial, p.Y()}

	distBase := distToSegment2(q, mgl32.Vec2{0, 0}, mgl32.Vec2{r, 0})
	distSlant := distToSegment2(q, mgl32.Vec2{r, 0}, mgl32.Vec2{0, h})
	dExterior := minf(distBase, distSlant)

	inside := q.Y() >= 0 && q.Y() <= h && q.X() <= r*(1-q.Y()/h)
	if inside {
		return -dExterior
	}
	return dExterior
}

func distToSegment2(p, a, b mgl32.Vec2) float32 {
	ab := b.Sub(a)
	t := clampf(p.Sub(a).Dot(ab)/ab.Dot(ab), 0, 1)
	closest := a.Add(ab.Mul(t))
	return p.Sub(closest).Len()
}

func sdPlane(p mgl32.Vec3, n mgl32.Vec3, d float32) float32 {
	return p.Dot(n) + d
}

func sdEllipsoid(p, r mgl32.Vec3) float32 {
	k0 := mgl32.Vec3{p.X() / r.X(), p.Y() / r.Y(), p.Z() / r.Z()}.Len()
	k1 := mgl32.Vec3{p.X() / (r.X() * r.X()), p.Y() / (r.Y() * r.Y()), p.Z() / (r.Z() * r.Z())}.Len()
	if k1 == 0 {
		return k0 - 1
	}
	return k0 * (k0 - 1) / k1
}

func sdOctahedron(p mgl32.Vec3, s float32) float32 {
	a := vabs(p)
	m := a.X() + a.Y() + a.Z() - s
	var q mgl32.Vec3
	switch {
	case 3*a.X() < m:
		q = mgl32.Vec3{a.X(), a.Y(), a.Z()}
	case 3*a.Y() < m:
		q = mgl32.Vec3{a.Y(), a.Z(), a.X()}
	case 3*a.Z() < m:
		q = mgl32.Vec3{a.Z(), a.X(), a.Y()}
	default:
		return m * 0.57735027
	}
	k := clampf(0.5*(q.Z()-q.Y()+s), 0, s)
	d := mgl32.Vec3{q.X(), q.Y() - s + k, q.Z() - k}.Len()
	return d
}

func sdHexPrism(p mgl32.Vec3, hHalf, r float32) float32 {
	const kx, ky, kz = -0.8660254, 0.5, 0.57735027
	k := mgl32.Vec3{kx, ky, kz}
	a := vabs(p)
	xy := mgl32.Vec2{a.X(), a.Y()}
	proj := 2 * minf(k.X()*xy.X()+k.Y()*xy.Y(), 0)
	xy = xy.Sub(mgl32.Vec2{k.X(), k.Y()}.Mul(proj))
	clampedX := clampf(xy.X(), -k.Z()*r, k.Z()*r)
	d2 := mgl32.Vec2{xy.X() - clampedX, xy.Y() - r}
	sign := float32(1)
	if d2.X() < 0 && xy.Y() < r {
		sign = -1
	}
	dxy := d2.Len() * sign
	if xy.X() <= k.Z()*r && xy.X() >= -k.Z()*r && xy.Y() <= r {
		dxy = -minf(r-xy.Y(), k.Z()*r-absf(xy.X()))
	}
	dz := a.Z() - hHalf
	outside := mgl32.Vec2{maxf(dxy, 0), maxf(dz, 0)}.Len()
	inside := minf(maxf(dxy, dz), 0)
	return outside + inside
}

func sdTriPrism(p mgl32.Vec3, w, h float32) float32 {
	a := vabs(p)
	q := mgl32.Vec3{a.X(), a.Y(), a.Z()}
	const k = 1.7320508 // sqrt(3)
	d1 := q.Z() - h
	d2 := maxf(q.X()*0.8660254+p.Y()*0.5, -p.Y()) - w*0.5
	outside := mgl32.Vec2{maxf(d1, 0), maxf(d2, 0)}.Len()
	inside := minf(maxf(d1, d2), 0)
	_ = k
	return outside + inside
}
