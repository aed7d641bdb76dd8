package shader

// formulaPlaceholder and sceneSDFPlaceholder are found by literal
// substring match, not by a templating engine — this decouples the
// generator from any shader-parser dependency (spec §4.5).
const (
	formulaPlaceholder  = "/*__SDFKIT_FORMULAS__*/"
	sceneSDFPlaceholder = "/*__SDFKIT_SCENE_SDF__*/"
)

// wgslTemplate is the fixed shader skeleton. Every distance/position
// builtin a generated scene_sdf body may reference is defined here;
// pkg/formula's shared block (combinators, deformations, repetitions)
// is spliced in at formulaPlaceholder.
const wgslTemplate = `fn sd_sphere(p: vec3<f32>, r: f32) -> f32 {
    return length(p) - r;
}

fn sd_box(p: vec3<f32>, h: vec3<f32>) -> f32 {
    let q = abs(p) - h;
    return length(max(q, vec3<f32>(0.0))) + min(max(q.x, max(q.y, q.z)), 0.0);
}

fn sd_rounded_box(p: vec3<f32>, h: vec3<f32>, r: f32) -> f32 {
    return sd_box(p, h - vec3<f32>(r)) - r;
}

fn sd_cylinder(p: vec3<f32>, r: f32, h_half: f32) -> f32 {
    let d = vec2<f32>(length(p.xz) - r, abs(p.y) - h_half);
    return length(max(d, vec2<f32>(0.0))) + min(max(d.x, d.y), 0.0);
}

fn sd_capsule(p: vec3<f32>, r: f32, h_half: f32) -> f32 {
    var q = p;
    q.y = q.y - clamp(q.y, -h_half, h_half);
    return length(q) - r;
}

fn sd_torus(p: vec3<f32>, major: f32, minor: f32) -> f32 {
    let q = vec2<f32>(length(p.xz) - major, p.y);
    return length(q) - minor;
}

fn sd_cone(p: vec3<f32>, r: f32, h: f32) -> f32 {
    let radial = length(p.xz);
    let q = vec2<f32>(radial, p.y);
    let base_a = vec2<f32>(0.0, 0.0);
    let base_b = vec2<f32>(r, 0.0);
    let slant_a = vec2<f32>(r, 0.0);
    let slant_b = vec2<f32>(0.0, h);
    let d_base = dist_to_segment2(q, base_a, base_b);
    let d_slant = dist_to_segment2(q, slant_a, slant_b);
    let d_ext = min(d_base, d_slant);
    let inside = q.y >= 0.0 && q.y <= h && q.x <= r * (1.0 - q.y / h);
    if (inside) {
        return -d_ext;
    }
    return d_ext;
}

fn dist_to_segment2(p: vec2<f32>, a: vec2<f32>, b: vec2<f32>) -> f32 {
    let ab = b - a;
    let t = clamp(dot(p - a, ab) / dot(ab, ab), 0.0, 1.0);
    return length(p - (a + ab * t));
}

fn sd_plane(p: vec3<f32>, n: vec3<f32>, d: f32) -> f32 {
    return dot(p, n) + d;
}

fn sd_ellipsoid(p: vec3<f32>, r: vec3<f32>) -> f32 {
    let k0 = length(p / r);
    let k1 = length(p / (r * r));
    if (k1 == 0.0) {
        return k0 - 1.0;
    }
    return k0 * (k0 - 1.0) / k1;
}

fn sd_octahedron(p: vec3<f32>, s: f32) -> f32 {
    let a = abs(p);
    let m = a.x + a.y + a.z - s;
    var q: vec3<f32>;
    if (3.0 * a.x < m) {
        q = a;
    } else if (3.0 * a.y < m) {
        q = a.yzx;
    } else if (3.0 * a.z < m) {
        q = a.zxy;
    } else {
        return m * 0.57735027;
    }
    let k = clamp(0.5 * (q.z - q.y + s), 0.0, s);
    return length(vec3<f32>(q.x, q.y - s + k, q.z - k));
}

fn sd_hex_prism(p: vec3<f32>, h_half: f32, r: f32) -> f32 {
    let k = vec3<f32>(-0.8660254, 0.5, 0.57735027);
    let a = abs(p);
    var xy = a.xy - 2.0 * min(dot(k.xy, a.xy), 0.0) * k.xy;
    let clamped_x = clamp(xy.x, -k.z * r, k.z * r);
    let d = vec2<f32>(length(xy - vec2<f32>(clamped_x, r)) * sign(xy.y - r), a.z - h_half);
    return min(max(d.x, d.y), 0.0) + length(max(d, vec2<f32>(0.0)));
}

fn sd_tri_prism(p: vec3<f32>, w: f32, h: f32) -> f32 {
    let q = abs(p);
    let d1 = q.z - h;
    let d2 = max(q.x * 0.8660254 + p.y * 0.5, -p.y) - w * 0.5;
    return length(max(vec2<f32>(d1, d2), vec2<f32>(0.0))) + min(max(d1, d2), 0.0);
}

fn op_shell(d: f32, t: f32) -> f32 {
    return abs(d) - t * 0.5;
}

fn op_round(d: f32, r: f32) -> f32 {
    return d - r;
}

fn op_onion(d: f32, t: f32) -> f32 {
    return abs(d) - t * 0.5;
}

fn op_elongate(p: vec3<f32>, h: vec3<f32>) -> vec3<f32> {
    return p - clamp(p, -h, h);
}

fn op_translate(p: vec3<f32>, v: vec3<f32>) -> vec3<f32> {
    return p - v;
}

fn op_scale(p: vec3<f32>, s: f32) -> vec3<f32> {
    return p / s;
}

fn op_symmetry_x(p: vec3<f32>) -> vec3<f32> {
    return vec3<f32>(abs(p.x), p.y, p.z);
}

fn op_symmetry_y(p: vec3<f32>) -> vec3<f32> {
    return vec3<f32>(p.x, abs(p.y), p.z);
}

fn op_symmetry_z(p: vec3<f32>) -> vec3<f32> {
    return vec3<f32>(p.x, p.y, abs(p.z));
}

/*__SDFKIT_FORMULAS__*/

/*__SDFKIT_SCENE_SDF__*/
`
