package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "explora.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
texture_dir: tex
world:
  radius: 5
  generator: hills
mesh_workers: 8
log_level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tex", cfg.TextureDir)
	assert.Equal(t, 5, cfg.World.Radius)
	assert.Equal(t, "hills", cfg.World.Generator)
	assert.Equal(t, int64(1), cfg.World.Seed, "unset keys keep defaults")
	assert.Equal(t, 8, cfg.MeshWorkers)
	assert.Equal(t, "atlas.png", cfg.AtlasOutput)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvVar, writeConfig(t, "atlas_output: out.png\n"))
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "out.png", cfg.AtlasOutput)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "world: [1, 2"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "world:\n  radius: 0\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"generator": func(c *Config) { c.World.Generator = "caves" },
		"workers":   func(c *Config) { c.MeshWorkers = 0 },
		"fov":       func(c *Config) { c.Camera.FOVDegrees = 180 },
		"aspect":    func(c *Config) { c.Camera.Aspect = 0 },
		"log level": func(c *Config) { c.LogLevel = "chatty" },
		"textures":  func(c *Config) { c.TextureDir = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestRuntimeSettingsClamp(t *testing.T) {
	prevRadius, prevWorkers := GetWorldRadius(), GetMeshWorkers()
	t.Cleanup(func() {
		SetWorldRadius(prevRadius)
		SetMeshWorkers(prevWorkers)
	})

	SetWorldRadius(0)
	assert.Equal(t, MinWorldRadius, GetWorldRadius())
	SetWorldRadius(1000)
	assert.Equal(t, MaxWorldRadius, GetWorldRadius())

	SetMeshWorkers(-3)
	assert.Equal(t, MinMeshWorkers, GetMeshWorkers())
}

func TestApplyPublishesSettings(t *testing.T) {
	prevGen, prevSeed := GetGenerator(), GetSeed()
	prevRadius, prevWorkers := GetWorldRadius(), GetMeshWorkers()
	t.Cleanup(func() {
		SetGenerator(prevGen)
		SetSeed(prevSeed)
		SetWorldRadius(prevRadius)
		SetMeshWorkers(prevWorkers)
	})

	cfg := Default()
	cfg.World = WorldConfig{Radius: 6, Generator: "hills", Seed: 42}
	cfg.MeshWorkers = 2
	cfg.Apply()

	assert.Equal(t, 6, GetWorldRadius())
	assert.Equal(t, 2, GetMeshWorkers())
	assert.Equal(t, "hills", GetGenerator())
	assert.Equal(t, int64(42), GetSeed())
}
