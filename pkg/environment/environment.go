package environment

import "math"

// Color is a linear RGB triple in [0, 1] per channel (not enforced; values
// outside the range are passed through to the shader/renderer unchanged).
type Color [3]float32

// Environment is the full set of lighting, material, background, and
// effect parameters for one scene (spec §3).
type Environment struct {
	SunDirection [3]float32
	SunColor     Color
	SunIntensity float32

	AmbientColor     Color
	AmbientIntensity float32

	MaterialColor     Color
	Shininess         float32
	SpecularIntensity float32

	SkyHorizon Color
	SkyZenith  Color

	FogColor   Color
	FogDensity float32

	AOEnabled   bool
	AOIntensity float32

	ShadowEnabled  bool
	ShadowSoftness float32
}

// Default returns the environment used to reset the process-wide Cell at
// the start of every script evaluation (spec §3, §4.6).
func Default() Environment {
	return Environment{
		SunDirection:      normalize([3]float32{0.5, 0.8, 0.3}),
		SunColor:          Color{1.0, 0.98, 0.92},
		SunIntensity:      1.0,
		AmbientColor:      Color{0.4, 0.45, 0.55},
		AmbientIntensity:  0.3,
		MaterialColor:     Color{0.8, 0.8, 0.8},
		Shininess:         32.0,
		SpecularIntensity: 0.5,
		SkyHorizon:        Color{0.7, 0.8, 0.9},
		SkyZenith:         Color{0.2, 0.4, 0.8},
		FogColor:          Color{0.7, 0.8, 0.9},
		FogDensity:        0.0,
		AOEnabled:         true,
		AOIntensity:       0.5,
		ShadowEnabled:     true,
		ShadowSoftness:    8.0,
	}
}

func normalize(v [3]float32) [3]float32 {
	lenSq := v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
	if lenSq == 0 {
		return v
	}
	inv := float32(1.0 / math.Sqrt(float64(lenSq)))
	return [3]float32{v[0] * inv, v[1] * inv, v[2] * inv}
}
