package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/sdfkit/sdfkit/pkg/environment"
)

// registerEnvironment installs the environment mutators and presets
// listed in spec §4.6, all writing into the single Cell owned by this
// evaluation.
func registerEnvironment(L *lua.LState, cell *environment.Cell) {
	L.SetGlobal("set_sun_direction", L.NewFunction(func(L *lua.LState) int {
		cell.SetSunDirection([3]float32{checkFloat32(L, 1), checkFloat32(L, 2), checkFloat32(L, 3)})
		return 0
	}))
	L.SetGlobal("set_sun_color", L.NewFunction(func(L *lua.LState) int {
		rgb := environment.Color{checkFloat32(L, 1), checkFloat32(L, 2), checkFloat32(L, 3)}
		cell.SetSunColor(rgb, checkFloat32(L, 4))
		return 0
	}))
	L.SetGlobal("set_ambient_color", L.NewFunction(func(L *lua.LState) int {
		rgb := environment.Color{checkFloat32(L, 1), checkFloat32(L, 2), checkFloat32(L, 3)}
		cell.SetAmbientColor(rgb, checkFloat32(L, 4))
		return 0
	}))
	L.SetGlobal("set_material_color", L.NewFunction(func(L *lua.LState) int {
		cell.SetMaterialColor(environment.Color{checkFloat32(L, 1), checkFloat32(L, 2), checkFloat32(L, 3)})
		return 0
	}))
	L.SetGlobal("set_background_color", L.NewFunction(func(L *lua.LState) int {
		cell.SetBackgroundColor(environment.Color{checkFloat32(L, 1), checkFloat32(L, 2), checkFloat32(L, 3)})
		return 0
	}))
	L.SetGlobal("set_fog_density", L.NewFunction(func(L *lua.LState) int {
		cell.SetFogDensity(checkFloat32(L, 1))
		return 0
	}))

	for _, preset := range environment.PresetNames() {
		name := "env_" + preset
		preset := preset
		L.SetGlobal(name, L.NewFunction(func(L *lua.LState) int {
			if err := cell.ApplyPreset(preset); err != nil {
				L.RaiseError("%v", err)
			}
			return 0
		}))
	}
}
