package environment

// Cell is the single process-wide environment a script evaluation
// mutates through its Set* methods (spec §4.6, §5: "owned by a single
// script evaluation; it must be reset at entry and captured at exit").
// Cell is not safe for concurrent use; concurrent script evaluations must
// serialize at the facade boundary (spec §5, §9).
type Cell struct {
	env Environment
}

// NewCell returns a Cell reset to Default().
func NewCell() *Cell {
	return &Cell{env: Default()}
}

// Reset restores the Cell to Default(). Called at the start of every
// script evaluation.
func (c *Cell) Reset() {
	c.env = Default()
}

// Snapshot captures the current environment value, to be stored on the
// Scene at the end of evaluation.
func (c *Cell) Snapshot() Environment {
	return c.env
}

// SetSunDirection normalizes and sets the sun direction.
func (c *Cell) SetSunDirection(v [3]float32) { c.env.SunDirection = normalize(v) }

// SetSunColor sets the sun color and intensity.
func (c *Cell) SetSunColor(rgb Color, intensity float32) {
	c.env.SunColor = rgb
	c.env.SunIntensity = intensity
}

// SetAmbientColor sets the ambient color and intensity.
func (c *Cell) SetAmbientColor(rgb Color, intensity float32) {
	c.env.AmbientColor = rgb
	c.env.AmbientIntensity = intensity
}

// SetMaterialColor sets the uniform base material color.
func (c *Cell) SetMaterialColor(rgb Color) { c.env.MaterialColor = rgb }

// SetBackgroundColor sets both sky horizon and zenith to the same flat
// color, the common case of a solid-color background.
func (c *Cell) SetBackgroundColor(rgb Color) {
	c.env.SkyHorizon = rgb
	c.env.SkyZenith = rgb
}

// SetSkyGradient sets distinct sky horizon and zenith colors.
func (c *Cell) SetSkyGradient(horizon, zenith Color) {
	c.env.SkyHorizon = horizon
	c.env.SkyZenith = zenith
}

// SetFogDensity sets the fog density, leaving fog color untouched.
func (c *Cell) SetFogDensity(density float32) { c.env.FogDensity = density }

// SetFogColor sets the fog color, leaving fog density untouched.
func (c *Cell) SetFogColor(rgb Color) { c.env.FogColor = rgb }

// ApplyPreset replaces the entire environment with a named preset.
func (c *Cell) ApplyPreset(name string) error {
	env, err := Preset(name)
	if err != nil {
		return err
	}
	c.env = env
	return nil
}
