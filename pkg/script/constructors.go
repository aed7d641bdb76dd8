package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/sdfkit/sdfkit/pkg/sdfgraph"
)

// registerConstructors installs one global function per primitive in
// sdfgraph (spec §4.6: "Constructor functions: one per primitive").
func registerConstructors(L *lua.LState) {
	L.SetGlobal("sphere", L.NewFunction(luaSphere))
	L.SetGlobal("cube", L.NewFunction(luaCube))
	L.SetGlobal("box", L.NewFunction(luaBox))
	L.SetGlobal("rounded_box", L.NewFunction(luaRoundedBox))
	L.SetGlobal("cylinder", L.NewFunction(luaCylinder))
	L.SetGlobal("capsule", L.NewFunction(luaCapsule))
	L.SetGlobal("torus", L.NewFunction(luaTorus))
	L.SetGlobal("cone", L.NewFunction(luaCone))
	L.SetGlobal("plane", L.NewFunction(luaPlane))
	L.SetGlobal("ellipsoid", L.NewFunction(luaEllipsoid))
	L.SetGlobal("octahedron", L.NewFunction(luaOctahedron))
	L.SetGlobal("hex_prism", L.NewFunction(luaHexPrism))
	L.SetGlobal("tri_prism", L.NewFunction(luaTriPrism))
}

func luaSphere(L *lua.LState) int {
	return construct(L, sdfgraph.NewSphere(checkFloat32(L, 1)))
}

// luaCube takes a single half-extent applied to all three axes, matching
// the script examples' cube(s) call shape.
func luaCube(L *lua.LState) int {
	s := checkFloat32(L, 1)
	return construct(L, sdfgraph.NewBox([3]float32{s, s, s}))
}

func luaBox(L *lua.LState) int {
	h := [3]float32{checkFloat32(L, 1), checkFloat32(L, 2), checkFloat32(L, 3)}
	return construct(L, sdfgraph.NewBox(h))
}

func luaRoundedBox(L *lua.LState) int {
	h := [3]float32{checkFloat32(L, 1), checkFloat32(L, 2), checkFloat32(L, 3)}
	r := checkFloat32(L, 4)
	return construct(L, sdfgraph.NewRoundedBox(h, r))
}

func luaCylinder(L *lua.LState) int {
	return construct(L, sdfgraph.NewCylinder(checkFloat32(L, 1), checkFloat32(L, 2)))
}

func luaCapsule(L *lua.LState) int {
	return construct(L, sdfgraph.NewCapsule(checkFloat32(L, 1), checkFloat32(L, 2)))
}

func luaTorus(L *lua.LState) int {
	return construct(L, sdfgraph.NewTorus(checkFloat32(L, 1), checkFloat32(L, 2)))
}

func luaCone(L *lua.LState) int {
	return construct(L, sdfgraph.NewCone(checkFloat32(L, 1), checkFloat32(L, 2)))
}

func luaPlane(L *lua.LState) int {
	n := [3]float32{checkFloat32(L, 1), checkFloat32(L, 2), checkFloat32(L, 3)}
	d := checkFloat32(L, 4)
	return construct(L, sdfgraph.NewPlane(n, d))
}

func luaEllipsoid(L *lua.LState) int {
	r := [3]float32{checkFloat32(L, 1), checkFloat32(L, 2), checkFloat32(L, 3)}
	return construct(L, sdfgraph.NewEllipsoid(r))
}

func luaOctahedron(L *lua.LState) int {
	return construct(L, sdfgraph.NewOctahedron(checkFloat32(L, 1)))
}

func luaHexPrism(L *lua.LState) int {
	return construct(L, sdfgraph.NewHexPrism(checkFloat32(L, 1), checkFloat32(L, 2)))
}

func luaTriPrism(L *lua.LState) int {
	return construct(L, sdfgraph.NewTriPrism(checkFloat32(L, 1), checkFloat32(L, 2)))
}
