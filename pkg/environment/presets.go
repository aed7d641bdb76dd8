package environment

import "fmt"

// presetTable is the fixed registry of named environment presets exposed
// to the script facade as env_default/env_studio/env_sunset/env_night
// (spec §4.6). It is adapted from the teacher's pkg/themes ThemePack
// table: a small named set of value bundles, looked up by string key,
// defined in code instead of loaded from disk per run.
var presetTable = map[string]func() Environment{
	"default": Default,
	"studio":  studioPreset,
	"sunset":  sunsetPreset,
	"night":   nightPreset,
}

// PresetNames lists every valid preset name, in a fixed order, for
// diagnostics and documentation.
func PresetNames() []string {
	return []string{"default", "studio", "sunset", "night"}
}

// Preset looks up a named environment preset.
func Preset(name string) (Environment, error) {
	fn, ok := presetTable[name]
	if !ok {
		return Environment{}, fmt.Errorf("environment: unknown preset %q (valid: %v)", name, PresetNames())
	}
	return fn(), nil
}

func studioPreset() Environment {
	e := Default()
	e.SunDirection = normalize([3]float32{0.2, 1.0, 0.1})
	e.SunColor = Color{1.0, 1.0, 1.0}
	e.SunIntensity = 1.2
	e.AmbientColor = Color{0.9, 0.9, 0.9}
	e.AmbientIntensity = 0.6
	e.MaterialColor = Color{0.85, 0.85, 0.85}
	e.Shininess = 64.0
	e.SpecularIntensity = 0.8
	e.SkyHorizon = Color{0.95, 0.95, 0.95}
	e.SkyZenith = Color{0.9, 0.9, 0.9}
	e.FogDensity = 0.0
	e.ShadowSoftness = 4.0
	return e
}

func sunsetPreset() Environment {
	e := Default()
	e.SunDirection = normalize([3]float32{0.9, 0.15, 0.1})
	e.SunColor = Color{1.0, 0.55, 0.3}
	e.SunIntensity = 1.1
	e.AmbientColor = Color{0.5, 0.3, 0.35}
	e.AmbientIntensity = 0.35
	e.SkyHorizon = Color{1.0, 0.5, 0.3}
	e.SkyZenith = Color{0.25, 0.15, 0.35}
	e.FogColor = Color{0.9, 0.55, 0.4}
	e.FogDensity = 0.02
	e.ShadowSoftness = 12.0
	return e
}

func nightPreset() Environment {
	e := Default()
	e.SunDirection = normalize([3]float32{-0.3, 0.6, -0.2})
	e.SunColor = Color{0.55, 0.6, 0.8}
	e.SunIntensity = 0.25
	e.AmbientColor = Color{0.1, 0.12, 0.2}
	e.AmbientIntensity = 0.15
	e.SkyHorizon = Color{0.05, 0.06, 0.12}
	e.SkyZenith = Color{0.01, 0.01, 0.03}
	e.FogColor = Color{0.05, 0.06, 0.1}
	e.FogDensity = 0.01
	e.AOIntensity = 0.7
	e.ShadowSoftness = 16.0
	return e
}
