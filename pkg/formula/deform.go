package formula

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// TwistFold rotates the (x, z) plane of p by the angle k*p.y before the
// child is evaluated at the result, per spec §4.2.
func TwistFold(p mgl32.Vec3, k float32) mgl32.Vec3 {
	c := float32(math.Cos(float64(k * p.Y())))
	s := float32(math.Sin(float64(k * p.Y())))
	return mgl32.Vec3{
		c*p.X() - s*p.Z(),
		p.Y(),
		s*p.X() + c*p.Z(),
	}
}

// BendFold rotates the (x, y) plane of p by the angle k*p.x before the
// child is evaluated at the result, per spec §4.2.
func BendFold(p mgl32.Vec3, k float32) mgl32.Vec3 {
	c := float32(math.Cos(float64(k * p.X())))
	s := float32(math.Sin(float64(k * p.X())))
	return mgl32.Vec3{
		c*p.X() - s*p.Y(),
		s*p.X() + c*p.Y(),
		p.Z(),
	}
}

const twistWGSL = `fn op_twist(p: vec3<f32>, k: f32) -> vec3<f32> {
    let c = cos(k * p.y);
    let s = sin(k * p.y);
    return vec3<f32>(c * p.x - s * p.z, p.y, s * p.x + c * p.z);
}`

const bendWGSL = `fn op_bend(p: vec3<f32>, k: f32) -> vec3<f32> {
    let c = cos(k * p.x);
    let s = sin(k * p.x);
    return vec3<f32>(c * p.x - s * p.y, s * p.x + c * p.y, p.z);
}`
