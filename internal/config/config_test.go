package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peter-bloomfield/arduino-christmas-lights/internal/twinkle"
)

func TestDefaults(t *testing.T) {
	c := Default()
	assert.Equal(t, 50, c.Lights)
	assert.Equal(t, 30, c.FPS)
	assert.Equal(t, 1.0, c.Brightness)
	assert.Equal(t, 5.0, c.CycleSeconds)
	assert.Equal(t, "xmas", c.Scheme)
	assert.Equal(t, twinkle.Band{Low: 0.5, High: 1.0}, c.Band)
	assert.Equal(t, "spi", c.Driver)
	assert.Equal(t, 9600, c.Serial.Baud)
	assert.Equal(t, ":8080", c.Addr)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twinkle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lights: 120\nscheme: blue\n"), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 120, c.Lights)
	assert.Equal(t, "blue", c.Scheme)
	assert.Equal(t, 30, c.FPS)
	assert.Equal(t, 5.0, c.CycleSeconds)
	assert.Equal(t, twinkle.Band{Low: 0.5, High: 1.0}, c.Band)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twinkle.yaml")
	c := Default()
	c.Lights = 200
	c.Band = twinkle.Band{Low: 0.2, High: 0.9}
	c.Schedules = []Schedule{{Cron: "0 22 * * *", Commands: "n"}}
	require.NoError(t, Save(path, c))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c.Lights, got.Lights)
	assert.Equal(t, c.Band, got.Band)
	assert.Equal(t, c.Schedules, got.Schedules)
}
