package formula

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// fmod is the floored (always-non-negative-remainder for positive b)
// modulo used by every repeat fold, as opposed to Go's truncated %.
func fmod(a, b float32) float32 {
	return a - b*float32(math.Floor(float64(a/b)))
}

// RepeatInfiniteFold replaces each component of p with
// ((p_i + s_i/2) mod s_i) - s_i/2, the classic infinite-lattice fold.
// A zero spacing component leaves that axis untouched (spec §4.2).
func RepeatInfiniteFold(p, spacing mgl32.Vec3) mgl32.Vec3 {
	out := p
	for i := 0; i < 3; i++ {
		s := spacing[i]
		if s == 0 {
			continue
		}
		out[i] = fmod(p[i]+0.5*s, s) - 0.5*s
	}
	return out
}

// RepeatLimitedFold is RepeatInfiniteFold with the lattice index clamped
// to [-count_i, +count_i] per axis, producing a finite tile of copies.
func RepeatLimitedFold(p, spacing mgl32.Vec3, count [3]int32) mgl32.Vec3 {
	out := p
	for i := 0; i < 3; i++ {
		s := spacing[i]
		if s == 0 {
			continue
		}
		idx := float32(math.Round(float64(p[i] / s)))
		c := float32(count[i])
		if idx > c {
			idx = c
		}
		if idx < -c {
			idx = -c
		}
		out[i] = p[i] - s*idx
	}
	return out
}

// RepeatPolarFold transforms p into polar coordinates around the Y axis,
// folds the angle into the sector [-pi/n, +pi/n], and re-emits cartesian
// coordinates. This is the one formula spec §3/§8 calls out by name as
// needing bit-for-bit CPU/GPU agreement, because a naive implementation
// using Go's or WGSL's differing modulo semantics would drift at the
// sector boundary.
func RepeatPolarFold(p mgl32.Vec3, n int) mgl32.Vec3 {
	if n < 1 {
		n = 1
	}
	sector := float32(2*math.Pi) / float32(n)
	half := sector * 0.5

	angle := float32(math.Atan2(float64(p.Z()), float64(p.X())))
	folded := fmod(angle+half, sector) - half

	r := float32(math.Sqrt(float64(p.X()*p.X() + p.Z()*p.Z())))
	return mgl32.Vec3{
		r * float32(math.Cos(float64(folded))),
		p.Y(),
		r * float32(math.Sin(float64(folded))),
	}
}

const repeatInfiniteWGSL = `fn op_repeat(p: vec3<f32>, spacing: vec3<f32>) -> vec3<f32> {
    var q = p;
    if (spacing.x != 0.0) {
        q.x = (p.x + 0.5 * spacing.x) - spacing.x * floor((p.x + 0.5 * spacing.x) / spacing.x) - 0.5 * spacing.x;
    }
    if (spacing.y != 0.0) {
        q.y = (p.y + 0.5 * spacing.y) - spacing.y * floor((p.y + 0.5 * spacing.y) / spacing.y) - 0.5 * spacing.y;
    }
    if (spacing.z != 0.0) {
        q.z = (p.z + 0.5 * spacing.z) - spacing.z * floor((p.z + 0.5 * spacing.z) / spacing.z) - 0.5 * spacing.z;
    }
    return q;
}`

const repeatLimitedWGSL = `fn op_repeat_limited(p: vec3<f32>, spacing: vec3<f32>, count: vec3<f32>) -> vec3<f32> {
    var q = p;
    if (spacing.x != 0.0) {
        let idx = clamp(round(p.x / spacing.x), -count.x, count.x);
        q.x = p.x - spacing.x * idx;
    }
    if (spacing.y != 0.0) {
        let idx = clamp(round(p.y / spacing.y), -count.y, count.y);
        q.y = p.y - spacing.y * idx;
    }
    if (spacing.z != 0.0) {
        let idx = clamp(round(p.z / spacing.z), -count.z, count.z);
        q.z = p.z - spacing.z * idx;
    }
    return q;
}`

const repeatPolarWGSL = `fn op_repeat_polar(p: vec3<f32>, n: f32) -> vec3<f32> {
    let sector = 6.283185307179586 / n;
    let half_sector = sector * 0.5;
    let angle = atan2(p.z, p.x);
    let shifted = angle + half_sector;
    let folded = (shifted - sector * floor(shifted / sector)) - half_sector;
    let r = length(vec2<f32>(p.x, p.z));
    return vec3<f32>(r * cos(folded), p.y, r * sin(folded));
}`
