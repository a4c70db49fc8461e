package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"explora/internal/logging"

	"gopkg.in/yaml.v3"
)

// EnvVar names the config file when no path is given
const EnvVar = "EXPLORA_CONFIG"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

type WorldConfig struct {
	Radius    int    `yaml:"radius"`
	Generator string `yaml:"generator"`
	Seed      int64  `yaml:"seed"`
}

type CameraConfig struct {
	FOVDegrees float32 `yaml:"fov_degrees"`
	Aspect     float32 `yaml:"aspect"`
}

// Config is the on-disk configuration of the bake tool
type Config struct {
	TextureDir    string       `yaml:"texture_dir"`
	AtlasOutput   string       `yaml:"atlas_output"`
	BlockTextures string       `yaml:"block_textures"`
	World         WorldConfig  `yaml:"world"`
	MeshWorkers   int          `yaml:"mesh_workers"`
	Camera        CameraConfig `yaml:"camera"`
	LogLevel      string       `yaml:"log_level"`
	MetricsAddr   string       `yaml:"metrics_addr"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		TextureDir:  "assets/textures",
		AtlasOutput: "atlas.png",
		World: WorldConfig{
			Radius:    3,
			Generator: "flat",
			Seed:      1,
		},
		MeshWorkers: 4,
		Camera: CameraConfig{
			FOVDegrees: 90,
			Aspect:     16.0 / 9.0,
		},
		LogLevel: "info",
	}
}

// Load reads path over the defaults. An empty path falls back to $EXPLORA_CONFIG,
// and to the defaults alone when that is unset too.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	logging.Debug("Loaded config from %s", path)
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	var problems []string
	if c.TextureDir == "" {
		problems = append(problems, "texture_dir is empty")
	}
	if c.World.Radius < MinWorldRadius || c.World.Radius > MaxWorldRadius {
		problems = append(problems, fmt.Sprintf("world.radius %d not in [%d, %d]", c.World.Radius, MinWorldRadius, MaxWorldRadius))
	}
	switch c.World.Generator {
	case "", "flat", "hills":
	default:
		problems = append(problems, fmt.Sprintf("unknown world.generator %q", c.World.Generator))
	}
	if c.MeshWorkers < MinMeshWorkers || c.MeshWorkers > MaxMeshWorkers {
		problems = append(problems, fmt.Sprintf("mesh_workers %d not in [%d, %d]", c.MeshWorkers, MinMeshWorkers, MaxMeshWorkers))
	}
	if c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180 {
		problems = append(problems, fmt.Sprintf("camera.fov_degrees %g not in (0, 180)", c.Camera.FOVDegrees))
	}
	if c.Camera.Aspect <= 0 {
		problems = append(problems, "camera.aspect must be positive")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Apply publishes the runtime settings
func (c Config) Apply() {
	SetWorldRadius(c.World.Radius)
	SetMeshWorkers(c.MeshWorkers)
	SetGenerator(c.World.Generator)
	SetSeed(c.World.Seed)
}
