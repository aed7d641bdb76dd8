package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/sdfkit/sdfkit/pkg/sdfgraph"
)

// nodeTypeName is the gopher-lua userdata type tag for every SDF node
// value that crosses into Lua. Every node, regardless of sdfgraph.Kind,
// shares this single tag: the Go-side type switch lives in pkg/eval and
// pkg/shader, not here.
const nodeTypeName = "sdfnode"

// registerNodeType installs the userdata metatable backing method-chain
// syntax (node:translate_x(1)) and, since a Lua colon call is sugar for
// passing the receiver as the first positional argument, registers the
// exact same functions as free top-level functions (spec §4.6: "every
// ... is both a free function and a method on nodes").
func registerNodeType(L *lua.LState) {
	mt := L.NewTypeMetatable(nodeTypeName)
	methods := L.NewTable()
	for name, fn := range opFuncs {
		L.SetField(methods, name, L.NewFunction(fn))
		L.SetGlobal(name, L.NewFunction(fn))
	}
	L.SetField(mt, "__index", methods)
}

// pushNode wraps n in userdata tagged with nodeTypeName and pushes it.
func pushNode(L *lua.LState, n sdfgraph.Node) {
	ud := L.NewUserData()
	ud.Value = n
	ud.Metatable = L.GetTypeMetatable(nodeTypeName)
	L.Push(ud)
}

// nodeFromLValue extracts a node from a Lua chunk's return value; ok is
// false for anything that is not node userdata (nil, a number left over
// from a forgotten return, etc.).
func nodeFromLValue(v lua.LValue) (sdfgraph.Node, bool) {
	ud, ok := v.(*lua.LUserData)
	if !ok {
		return nil, false
	}
	n, ok := ud.Value.(sdfgraph.Node)
	return n, ok
}

func checkNode(L *lua.LState, idx int) sdfgraph.Node {
	ud := L.CheckUserData(idx)
	n, ok := ud.Value.(sdfgraph.Node)
	if !ok {
		L.ArgError(idx, "expected an sdf node")
	}
	return n
}

func checkFloat32(L *lua.LState, idx int) float32 {
	return float32(L.CheckNumber(idx))
}

// construct pushes n if err is nil, otherwise raises a Lua runtime error
// carrying the underlying sdfgraph construction error — every
// InvalidParameter/ErrNilChild rejection surfaces to the script this way
// (spec §7).
func construct(L *lua.LState, n sdfgraph.Node, err error) int {
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	pushNode(L, n)
	return 1
}
