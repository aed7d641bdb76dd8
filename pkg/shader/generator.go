package shader

import (
	"fmt"
	"math"
	"strings"

	"github.com/sdfkit/sdfkit/pkg/formula"
	"github.com/sdfkit/sdfkit/pkg/sdfgraph"
)

// gen carries the monotonically increasing d{N}/p{N} counter and the
// accumulated body of scene_sdf while walking the graph depth-first
// (spec §4.5).
type gen struct {
	body    strings.Builder
	counter int
}

func (g *gen) nextP() string {
	g.counter++
	return fmt.Sprintf("p%d", g.counter)
}

func (g *gen) nextD() string {
	g.counter++
	return fmt.Sprintf("d%d", g.counter)
}

func (g *gen) line(format string, args ...any) {
	fmt.Fprintf(&g.body, "    let %s\n", fmt.Sprintf(format, args...))
}

// f8 formats a float literal with 8 decimal digits, matching the fixed
// precision the shared formulas and the CPU evaluator agree on.
func f8(x float32) string {
	return fmt.Sprintf("%.8f", x)
}

func vec3Lit(v [3]float32) string {
	return fmt.Sprintf("vec3<f32>(%s, %s, %s)", f8(v[0]), f8(v[1]), f8(v[2]))
}

// Compile lowers node into a complete WGSL shader (spec §4.5). Generation
// is total for a well-formed graph and deterministic: identical graphs
// produce byte-identical source.
func Compile(node sdfgraph.Node) string {
	g := &gen{}
	g.body.WriteString("fn scene_sdf(p: vec3<f32>) -> f32 {\n")
	g.body.WriteString("    let p0 = p;\n")
	d := g.emit(node, "p0")
	fmt.Fprintf(&g.body, "    return %s;\n", d)
	g.body.WriteString("}\n")

	out := wgslTemplate
	out = strings.Replace(out, formulaPlaceholder, formula.Block(), 1)
	if strings.Contains(out, sceneSDFPlaceholder) {
		out = strings.Replace(out, sceneSDFPlaceholder, g.body.String(), 1)
	} else {
		out += g.body.String()
	}
	return out
}

// emit lowers node, evaluated at the point named pVar, and returns the
// name of the let-binding holding its distance.
func (g *gen) emit(node sdfgraph.Node, pVar string) string {
	switch n := node.(type) {
	case *sdfgraph.Sphere:
		d := g.nextD()
		g.line("%s = sd_sphere(%s, %s);", d, pVar, f8(n.Radius))
		return d
	case *sdfgraph.Box:
		d := g.nextD()
		g.line("%s = sd_box(%s, %s);", d, pVar, vec3Lit(n.H))
		return d
	case *sdfgraph.RoundedBox:
		d := g.nextD()
		g.line("%s = sd_rounded_box(%s, %s, %s);", d, pVar, vec3Lit(n.H), f8(n.R))
		return d
	case *sdfgraph.Cylinder:
		d := g.nextD()
		g.line("%s = sd_cylinder(%s, %s, %s);", d, pVar, f8(n.R), f8(n.HHalf))
		return d
	case *sdfgraph.Capsule:
		d := g.nextD()
		g.line("%s = sd_capsule(%s, %s, %s);", d, pVar, f8(n.R), f8(n.HHalf))
		return d
	case *sdfgraph.Torus:
		d := g.nextD()
		g.line("%s = sd_torus(%s, %s, %s);", d, pVar, f8(n.Major), f8(n.R))
		return d
	case *sdfgraph.Cone:
		d := g.nextD()
		g.line("%s = sd_cone(%s, %s, %s);", d, pVar, f8(n.R), f8(n.H))
		return d
	case *sdfgraph.Plane:
		d := g.nextD()
		g.line("%s = sd_plane(%s, %s, %s);", d, pVar, vec3Lit(n.N), f8(n.D))
		return d
	case *sdfgraph.Ellipsoid:
		d := g.nextD()
		g.line("%s = sd_ellipsoid(%s, %s);", d, pVar, vec3Lit(n.R))
		return d
	case *sdfgraph.Octahedron:
		d := g.nextD()
		g.line("%s = sd_octahedron(%s, %s);", d, pVar, f8(n.S))
		return d
	case *sdfgraph.HexPrism:
		d := g.nextD()
		g.line("%s = sd_hex_prism(%s, %s, %s);", d, pVar, f8(n.HHalf), f8(n.R))
		return d
	case *sdfgraph.TriPrism:
		d := g.nextD()
		g.line("%s = sd_tri_prism(%s, %s, %s);", d, pVar, f8(n.W), f8(n.H))
		return d

	case *sdfgraph.Union:
		a, b := g.emit(n.A, pVar), g.emit(n.B, pVar)
		d := g.nextD()
		g.line("%s = op_union(%s, %s);", d, a, b)
		return d
	case *sdfgraph.Subtract:
		a, b := g.emit(n.A, pVar), g.emit(n.B, pVar)
		d := g.nextD()
		g.line("%s = op_subtract(%s, %s);", d, a, b)
		return d
	case *sdfgraph.Intersect:
		a, b := g.emit(n.A, pVar), g.emit(n.B, pVar)
		d := g.nextD()
		g.line("%s = op_intersect(%s, %s);", d, a, b)
		return d
	case *sdfgraph.SmoothUnion:
		a, b := g.emit(n.A, pVar), g.emit(n.B, pVar)
		d := g.nextD()
		g.line("%s = op_smooth_union(%s, %s, %s);", d, a, b, f8(n.K))
		return d
	case *sdfgraph.SmoothSubtract:
		a, b := g.emit(n.A, pVar), g.emit(n.B, pVar)
		d := g.nextD()
		g.line("%s = op_smooth_subtract(%s, %s, %s);", d, a, b, f8(n.K))
		return d
	case *sdfgraph.SmoothIntersect:
		a, b := g.emit(n.A, pVar), g.emit(n.B, pVar)
		d := g.nextD()
		g.line("%s = op_smooth_intersect(%s, %s, %s);", d, a, b, f8(n.K))
		return d

	case *sdfgraph.Shell:
		child := g.emit(n.Child, pVar)
		d := g.nextD()
		g.line("%s = op_shell(%s, %s);", d, child, f8(n.T))
		return d
	case *sdfgraph.Round:
		child := g.emit(n.Child, pVar)
		d := g.nextD()
		g.line("%s = op_round(%s, %s);", d, child, f8(n.R))
		return d
	case *sdfgraph.Onion:
		child := g.emit(n.Child, pVar)
		d := g.nextD()
		g.line("%s = op_onion(%s, %s);", d, child, f8(n.T))
		return d
	case *sdfgraph.Elongate:
		p := g.nextP()
		g.line("%s = op_elongate(%s, %s);", p, pVar, vec3Lit(n.H))
		return g.emit(n.Child, p)

	case *sdfgraph.Translate:
		p := g.nextP()
		g.line("%s = %s;", p, affineTranslate(pVar, n.V))
		return g.emit(n.Child, p)
	case *sdfgraph.RotateX:
		p := g.nextP()
		c, s := foldSinCos(n.Theta)
		g.line("%s = vec3<f32>(%s.x, %s * %s.y + %s * %s.z, -%s * %s.y + %s * %s.z);",
			p, pVar, f8(c), pVar, f8(s), pVar, f8(s), pVar, f8(c), pVar)
		return g.emit(n.Child, p)
	case *sdfgraph.RotateY:
		p := g.nextP()
		c, s := foldSinCos(n.Theta)
		g.line("%s = vec3<f32>(%s * %s.x - %s * %s.z, %s.y, %s * %s.x + %s * %s.z);",
			p, f8(c), pVar, f8(s), pVar, pVar, f8(s), pVar, f8(c), pVar)
		return g.emit(n.Child, p)
	case *sdfgraph.RotateZ:
		p := g.nextP()
		c, s := foldSinCos(n.Theta)
		g.line("%s = vec3<f32>(%s * %s.x + %s * %s.y, -%s * %s.x + %s * %s.y, %s.z);",
			p, f8(c), pVar, f8(s), pVar, f8(s), pVar, f8(c), pVar, pVar)
		return g.emit(n.Child, p)
	case *sdfgraph.Scale:
		p := g.nextP()
		g.line("%s = op_scale(%s, %s);", p, pVar, f8(n.Factor))
		child := g.emit(n.Child, p)
		d := g.nextD()
		g.line("%s = %s * %s;", d, child, f8(n.Factor))
		return d
	case *sdfgraph.MirrorX:
		p := g.nextP()
		g.line("%s = op_symmetry_x(%s);", p, pVar)
		return g.emit(n.Child, p)
	case *sdfgraph.MirrorY:
		p := g.nextP()
		g.line("%s = op_symmetry_y(%s);", p, pVar)
		return g.emit(n.Child, p)
	case *sdfgraph.MirrorZ:
		p := g.nextP()
		g.line("%s = op_symmetry_z(%s);", p, pVar)
		return g.emit(n.Child, p)
	case *sdfgraph.SymmetryX:
		p := g.nextP()
		g.line("%s = op_symmetry_x(%s);", p, pVar)
		return g.emit(n.Child, p)
	case *sdfgraph.SymmetryY:
		p := g.nextP()
		g.line("%s = op_symmetry_y(%s);", p, pVar)
		return g.emit(n.Child, p)
	case *sdfgraph.SymmetryZ:
		p := g.nextP()
		g.line("%s = op_symmetry_z(%s);", p, pVar)
		return g.emit(n.Child, p)

	case *sdfgraph.Twist:
		p := g.nextP()
		g.line("%s = op_twist(%s, %s);", p, pVar, f8(n.K))
		return g.emit(n.Child, p)
	case *sdfgraph.Bend:
		p := g.nextP()
		g.line("%s = op_bend(%s, %s);", p, pVar, f8(n.K))
		return g.emit(n.Child, p)

	case *sdfgraph.RepeatInfinite:
		p := g.nextP()
		g.line("%s = op_repeat(%s, %s);", p, pVar, vec3Lit(n.Spacing))
		return g.emit(n.Child, p)
	case *sdfgraph.RepeatLimited:
		p := g.nextP()
		count := [3]float32{float32(n.Count[0]), float32(n.Count[1]), float32(n.Count[2])}
		g.line("%s = op_repeat_limited(%s, %s, %s);", p, pVar, vec3Lit(n.Spacing), vec3Lit(count))
		return g.emit(n.Child, p)
	case *sdfgraph.RepeatPolar:
		p := g.nextP()
		g.line("%s = op_repeat_polar(%s, %s);", p, pVar, f8(float32(n.N)))
		return g.emit(n.Child, p)
	}
	panic("shader: unhandled sdfgraph.Node variant")
}

// affineTranslate writes the translated position as an explicit
// identity-scaled-minus-offset expression per component, so the
// generated source's literal shape stays identical regardless of
// whether a future pass folds translate into a general affine op.
func affineTranslate(pVar string, v [3]float32) string {
	return fmt.Sprintf("vec3<f32>(%s * %s.x - %s, %s * %s.y - %s, %s * %s.z - %s)",
		f8(1), pVar, f8(v[0]), f8(1), pVar, f8(v[1]), f8(1), pVar, f8(v[2]))
}

// foldSinCos precomputes sin/cos of a constant rotation angle at
// generation time, so the shader never recomputes a trig function for a
// literal that never changes (spec §4.5).
func foldSinCos(theta float32) (cos, sin float32) {
	return float32(math.Cos(float64(theta))), float32(math.Sin(float64(theta)))
}
