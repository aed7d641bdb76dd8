package formula

// Formula is one entry in the shared CPU/GPU formula registry: a name and
// the WGSL source of the function that implements it. The Go
// implementation living next to each formula's WGSL constant is the
// authority pkg/eval calls directly; the WGSL text is what pkg/shader
// injects verbatim into the generated shader's formula block.
type Formula struct {
	Name string
	WGSL string
}

// Registry lists every shared formula in injection order. pkg/shader
// concatenates their WGSL bodies to build the formula block of the
// generated shader; order only affects the readability of the generated
// source, never its semantics (WGSL has no forward-declaration
// requirement for free functions at module scope... but we still order
// combinators before deformations before repetitions, matching the
// dependency order a reader would expect).
var Registry = []Formula{
	{Name: "op_union", WGSL: unionWGSL},
	{Name: "op_subtract", WGSL: subtractWGSL},
	{Name: "op_intersect", WGSL: intersectWGSL},
	{Name: "op_smooth_union", WGSL: smoothUnionWGSL},
	{Name: "op_smooth_subtract", WGSL: smoothSubtractWGSL},
	{Name: "op_smooth_intersect", WGSL: smoothIntersectWGSL},
	{Name: "op_twist", WGSL: twistWGSL},
	{Name: "op_bend", WGSL: bendWGSL},
	{Name: "op_repeat", WGSL: repeatInfiniteWGSL},
	{Name: "op_repeat_limited", WGSL: repeatLimitedWGSL},
	{Name: "op_repeat_polar", WGSL: repeatPolarWGSL},
}

// Block concatenates every registered formula's WGSL source, separated by
// a newline, in registration order. The result is deterministic: the
// same Registry always produces the same Block.
func Block() string {
	out := ""
	for i, f := range Registry {
		if i > 0 {
			out += "\n"
		}
		out += f.WGSL
	}
	return out
}
