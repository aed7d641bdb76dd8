package environment

import "testing"

func TestAllPresetNamesResolve(t *testing.T) {
	for _, name := range PresetNames() {
		if _, err := Preset(name); err != nil {
			t.Errorf("preset %q: %v", name, err)
		}
	}
}

func TestUnknownPresetIsAnError(t *testing.T) {
	if _, err := Preset("nonexistent"); err == nil {
		t.Fatal("expected an error for an unknown preset name")
	}
}

func TestCellResetRestoresDefault(t *testing.T) {
	c := NewCell()
	c.SetSunDirection([3]float32{1, 0, 0})
	if _, err := (func() (struct{}, error) { return struct{}{}, c.ApplyPreset("night") })(); err != nil {
		t.Fatal(err)
	}
	c.Reset()
	if c.Snapshot() != Default() {
		t.Fatal("Reset must restore the default environment exactly")
	}
}

func TestApplyPresetUnknownLeavesCellUnchanged(t *testing.T) {
	c := NewCell()
	before := c.Snapshot()
	if err := c.ApplyPreset("does-not-exist"); err == nil {
		t.Fatal("expected an error")
	}
	if c.Snapshot() != before {
		t.Fatal("a failed ApplyPreset must not mutate the cell")
	}
}
