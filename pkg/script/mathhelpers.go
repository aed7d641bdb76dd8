package script

import (
	"math"

	lua "github.com/yuin/gopher-lua"
)

// registerMath installs the four math helpers listed in spec §4.6.
func registerMath(L *lua.LState) {
	L.SetGlobal("PI", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(math.Pi))
		return 1
	}))
	L.SetGlobal("TAU", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(2 * math.Pi))
		return 1
	}))
	L.SetGlobal("deg", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(float64(L.CheckNumber(1)) * 180 / math.Pi))
		return 1
	}))
	L.SetGlobal("rad", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(float64(L.CheckNumber(1)) * math.Pi / 180))
		return 1
	}))
}
