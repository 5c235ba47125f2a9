package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
simulation:
  time_scale_minutes: 90
  sample_count: 50
controller:
  kp: 1.5
  ki: 0.2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 90.0, cfg.Simulation.TimeScaleMinutes)
	assert.Equal(t, 50, cfg.Simulation.SampleCount)
	assert.Equal(t, 1.5, cfg.Controller.Kp)
	assert.Equal(t, 0.2, cfg.Controller.Ki)
}

func TestLoad_DefaultsFillMissingFields(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
controller:
  kp: 1.0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 60.0, cfg.Simulation.TimeScaleMinutes)
	assert.Equal(t, 100, cfg.Simulation.SampleCount)
	assert.Equal(t, 1.0, cfg.Controller.Kp)
	assert.Equal(t, 0.3, cfg.Controller.Ki)
}

func TestLoad_CustomLoadValidated(t *testing.T) {
	dir := t.TempDir()

	good := writeFile(t, dir, "good.yaml", `
simulation:
  time_scale_minutes: 10
  custom_load: "10,20,30"
`)
	cfg, err := Load(good)
	require.NoError(t, err)
	assert.Equal(t, "10,20,30", cfg.Simulation.CustomLoad)

	bad := writeFile(t, dir, "bad.yaml", `
simulation:
  custom_load: "10,abc"
`)
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestLoad_LoadFileRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "load.csv", "5,10,15\n")
	path := writeFile(t, dir, "config.yaml", `
simulation:
  time_scale_minutes: 30
  load_file: load.csv
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "5,10,15", cfg.Simulation.CustomLoad)
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"negative gain": `
controller:
  kp: -0.5
`,
		"bad time scale": `
simulation:
  time_scale_minutes: -10
`,
		"bad sample count": `
simulation:
  sample_count: 1
`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, dir, "cfg.yaml", content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestMerge(t *testing.T) {
	base := *Default()
	override := Config{}
	override.Simulation.TimeScaleMinutes = 120
	override.Controller.Kp = 2.0

	merged := Merge(base, override)
	assert.Equal(t, 120.0, merged.Simulation.TimeScaleMinutes)
	assert.Equal(t, 2.0, merged.Controller.Kp)
	// Untouched fields keep the base values.
	assert.Equal(t, 0.3, merged.Controller.Ki)
	assert.Equal(t, 100, merged.Simulation.SampleCount)
}

func TestToParams(t *testing.T) {
	cfg := Default()
	cfg.Simulation.CustomLoad = "1,2,3"

	p := cfg.ToParams()
	assert.Equal(t, 60.0, p.TimeScaleMinutes)
	assert.Equal(t, 100, p.SampleCount)
	assert.Equal(t, 0.8, p.Kp)
	assert.Equal(t, 0.3, p.Ki)
	assert.Equal(t, "1,2,3", p.CustomLoad)
}
