package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/sdfkit/sdfkit/pkg/sdfgraph"
)

// opFuncs is every combinator, modifier, transform, deformation, and
// repetition, keyed by the name a script sees. registerNodeType installs
// each entry both as a node method and as a free function (spec §4.6).
var opFuncs = map[string]lua.LGFunction{
	"translate":   translateOp,
	"translate_x": translateXOp,
	"translate_y": translateYOp,
	"translate_z": translateZOp,
	"rotate_x":    rotateXOp,
	"rotate_y":    rotateYOp,
	"rotate_z":    rotateZOp,
	"scale":       scaleOp,

	"mirror_x":   mirrorXOp,
	"mirror_y":   mirrorYOp,
	"mirror_z":   mirrorZOp,
	"symmetry_x": symmetryXOp,
	"symmetry_y": symmetryYOp,
	"symmetry_z": symmetryZOp,

	"union":            unionOp,
	"subtract":         subtractOp,
	"intersect":        intersectOp,
	"smooth_union":     smoothUnionOp,
	"smooth_subtract":  smoothSubtractOp,
	"smooth_intersect": smoothIntersectOp,

	"shell": shellOp,
	// hollow is the script-facing name for Shell (scenario S3:
	// sphere(1.0).hollow(0.05)).
	"hollow":   shellOp,
	"round":    roundOp,
	"onion":    onionOp,
	"elongate": elongateOp,

	"twist": twistOp,
	"bend":  bendOp,

	"repeat_infinite": repeatInfiniteOp,
	"repeat_limited":  repeatLimitedOp,
	"repeat_polar":    repeatPolarOp,
}

func translateOp(L *lua.LState) int {
	n := checkNode(L, 1)
	v := [3]float32{checkFloat32(L, 2), checkFloat32(L, 3), checkFloat32(L, 4)}
	return construct(L, sdfgraph.NewTranslate(n, v))
}

func translateXOp(L *lua.LState) int {
	n := checkNode(L, 1)
	return construct(L, sdfgraph.NewTranslate(n, [3]float32{checkFloat32(L, 2), 0, 0}))
}

func translateYOp(L *lua.LState) int {
	n := checkNode(L, 1)
	return construct(L, sdfgraph.NewTranslate(n, [3]float32{0, checkFloat32(L, 2), 0}))
}

func translateZOp(L *lua.LState) int {
	n := checkNode(L, 1)
	return construct(L, sdfgraph.NewTranslate(n, [3]float32{0, 0, checkFloat32(L, 2)}))
}

func rotateXOp(L *lua.LState) int {
	return construct(L, sdfgraph.NewRotateX(checkNode(L, 1), checkFloat32(L, 2)))
}

func rotateYOp(L *lua.LState) int {
	return construct(L, sdfgraph.NewRotateY(checkNode(L, 1), checkFloat32(L, 2)))
}

func rotateZOp(L *lua.LState) int {
	return construct(L, sdfgraph.NewRotateZ(checkNode(L, 1), checkFloat32(L, 2)))
}

func scaleOp(L *lua.LState) int {
	return construct(L, sdfgraph.NewScale(checkNode(L, 1), checkFloat32(L, 2)))
}

func mirrorXOp(L *lua.LState) int { return construct(L, sdfgraph.NewMirrorX(checkNode(L, 1))) }
func mirrorYOp(L *lua.LState) int { return construct(L, sdfgraph.NewMirrorY(checkNode(L, 1))) }
func mirrorZOp(L *lua.LState) int { return construct(L, sdfgraph.NewMirrorZ(checkNode(L, 1))) }

func symmetryXOp(L *lua.LState) int { return construct(L, sdfgraph.NewSymmetryX(checkNode(L, 1))) }
func symmetryYOp(L *lua.LState) int { return construct(L, sdfgraph.NewSymmetryY(checkNode(L, 1))) }
func symmetryZOp(L *lua.LState) int { return construct(L, sdfgraph.NewSymmetryZ(checkNode(L, 1))) }

func unionOp(L *lua.LState) int {
	return construct(L, sdfgraph.NewUnion(checkNode(L, 1), checkNode(L, 2)))
}

func subtractOp(L *lua.LState) int {
	return construct(L, sdfgraph.NewSubtract(checkNode(L, 1), checkNode(L, 2)))
}

func intersectOp(L *lua.LState) int {
	return construct(L, sdfgraph.NewIntersect(checkNode(L, 1), checkNode(L, 2)))
}

func smoothUnionOp(L *lua.LState) int {
	return construct(L, sdfgraph.NewSmoothUnion(checkNode(L, 1), checkNode(L, 2), checkFloat32(L, 3)))
}

func smoothSubtractOp(L *lua.LState) int {
	return construct(L, sdfgraph.NewSmoothSubtract(checkNode(L, 1), checkNode(L, 2), checkFloat32(L, 3)))
}

func smoothIntersectOp(L *lua.LState) int {
	return construct(L, sdfgraph.NewSmoothIntersect(checkNode(L, 1), checkNode(L, 2), checkFloat32(L, 3)))
}

func shellOp(L *lua.LState) int {
	return construct(L, sdfgraph.NewShell(checkNode(L, 1), checkFloat32(L, 2)))
}

func roundOp(L *lua.LState) int {
	return construct(L, sdfgraph.NewRound(checkNode(L, 1), checkFloat32(L, 2)))
}

func onionOp(L *lua.LState) int {
	return construct(L, sdfgraph.NewOnion(checkNode(L, 1), checkFloat32(L, 2)))
}

func elongateOp(L *lua.LState) int {
	n := checkNode(L, 1)
	h := [3]float32{checkFloat32(L, 2), checkFloat32(L, 3), checkFloat32(L, 4)}
	return construct(L, sdfgraph.NewElongate(n, h))
}

func twistOp(L *lua.LState) int {
	return construct(L, sdfgraph.NewTwist(checkNode(L, 1), checkFloat32(L, 2)))
}

func bendOp(L *lua.LState) int {
	return construct(L, sdfgraph.NewBend(checkNode(L, 1), checkFloat32(L, 2)))
}

func repeatInfiniteOp(L *lua.LState) int {
	n := checkNode(L, 1)
	s := [3]float32{checkFloat32(L, 2), checkFloat32(L, 3), checkFloat32(L, 4)}
	return construct(L, sdfgraph.NewRepeatInfinite(n, s))
}

func repeatLimitedOp(L *lua.LState) int {
	n := checkNode(L, 1)
	s := [3]float32{checkFloat32(L, 2), checkFloat32(L, 3), checkFloat32(L, 4)}
	c := [3]int32{
		int32(L.CheckNumber(5)),
		int32(L.CheckNumber(6)),
		int32(L.CheckNumber(7)),
	}
	return construct(L, sdfgraph.NewRepeatLimited(n, s, c))
}

func repeatPolarOp(L *lua.LState) int {
	n := checkNode(L, 1)
	return construct(L, sdfgraph.NewRepeatPolar(n, int32(L.CheckNumber(2))))
}
