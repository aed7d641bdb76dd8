package mesher

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// applyUVs fills every vertex's UV field according to cfg's projector
// (spec §4.3.1).
func applyUVs(mesh *Mesh, bounds AABB, cfg MeshConfig) {
	scale := cfg.UVScale
	if scale == 0 {
		scale = 1
	}

	proj := cfg.Projection
	if proj == UVAuto {
		proj = autoProjection(bounds)
	}

	switch proj {
	case UVTriplanar:
		applyTriplanar(mesh, scale)
	case UVBox:
		applyBox(mesh, scale)
	case UVCylindrical:
		applyCylindrical(mesh, scale)
	case UVSpherical:
		applySpherical(mesh, scale)
	case UVPlanar:
		axis := cfg.PlanarAxis
		if axis.Len() < 1e-8 {
			axis = mgl32.Vec3{0, 1, 0}
		}
		applyPlanar(mesh, axis, scale)
	default:
		applyTriplanar(mesh, scale)
	}
}

// autoProjection picks a projector from the bounding box's aspect ratio:
// flat -> planar from above, tall -> cylindrical, roughly cubic ->
// triplanar (spec §4.3.1).
func autoProjection(b AABB) UVProjection {
	size := b.Max.Sub(b.Min)
	x, y, z := size.X(), size.Y(), size.Z()
	maxHoriz := maxf(x, z)
	if maxHoriz < 1e-8 {
		maxHoriz = 1e-8
	}
	ratio := y / maxHoriz
	switch {
	case ratio < 0.3:
		return UVPlanar
	case ratio > 3:
		return UVCylindrical
	default:
		return UVTriplanar
	}
}

func applyTriplanar(mesh *Mesh, scale float32) {
	for i := range mesh.Vertices {
		v := &mesh.Vertices[i]
		n := vabs(v.Normal)
		wx, wy, wz := n.X(), n.Y(), n.Z()
		sum := wx + wy + wz
		if sum < 1e-8 {
			sum = 1
		}
		p := v.Position
		ux := mgl32.Vec2{p.Y() * scale, p.Z() * scale}
		uy := mgl32.Vec2{p.X() * scale, p.Z() * scale}
		uz := mgl32.Vec2{p.X() * scale, p.Y() * scale}
		v.UV = mgl32.Vec2{
			(ux.X()*wx + uy.X()*wy + uz.X()*wz) / sum,
			(ux.Y()*wx + uy.Y()*wy + uz.Y()*wz) / sum,
		}
	}
}

// applyBox projects each vertex onto the axis plane most aligned with its
// normal, applied per vertex (a texture-space approximation of the
// per-triangle projection described in spec §4.3.1).
func applyBox(mesh *Mesh, scale float32) {
	for i := range mesh.Vertices {
		v := &mesh.Vertices[i]
		n := vabs(v.Normal)
		p := v.Position
		switch {
		case n.X() >= n.Y() && n.X() >= n.Z():
			v.UV = mgl32.Vec2{p.Y() * scale, p.Z() * scale}
		case n.Y() >= n.X() && n.Y() >= n.Z():
			v.UV = mgl32.Vec2{p.X() * scale, p.Z() * scale}
		default:
			v.UV = mgl32.Vec2{p.X() * scale, p.Y() * scale}
		}
	}
}

func applyCylindrical(mesh *Mesh, scale float32) {
	for i := range mesh.Vertices {
		v := &mesh.Vertices[i]
		p := v.Position
		u := float32(math.Atan2(float64(p.X()), float64(p.Z())))/(2*float32(math.Pi)) + 0.5
		v.UV = mgl32.Vec2{u * scale, p.Y() * scale}
	}
}

func applySpherical(mesh *Mesh, scale float32) {
	for i := range mesh.Vertices {
		v := &mesh.Vertices[i]
		p := v.Position
		l := p.Len()
		if l < 1e-8 {
			v.UV = mgl32.Vec2{0.5 * scale, 0.5 * scale}
			continue
		}
		np := p.Mul(1 / l)
		u := float32(math.Atan2(float64(np.X()), float64(np.Z())))/(2*float32(math.Pi)) + 0.5
		vv := float32(math.Asin(float64(clampf(np.Y(), -1, 1))))/float32(math.Pi) + 0.5
		v.UV = mgl32.Vec2{u * scale, vv * scale}
	}
}

// applyPlanar projects onto an orthonormal basis perpendicular to axis.
func applyPlanar(mesh *Mesh, axis mgl32.Vec3, scale float32) {
	axis = axis.Normalize()
	ref := mgl32.Vec3{0, 1, 0}
	if absf(axis.Dot(ref)) > 0.99 {
		ref = mgl32.Vec3{1, 0, 0}
	}
	u := axis.Cross(ref).Normalize()
	w := axis.Cross(u).Normalize()
	for i := range mesh.Vertices {
		p := mesh.Vertices[i].Position
		mesh.Vertices[i].UV = mgl32.Vec2{p.Dot(u) * scale, p.Dot(w) * scale}
	}
}
