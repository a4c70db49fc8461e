package registry

import (
	"fmt"
	"os"

	"explora/internal/logging"
	"explora/internal/world"

	"gopkg.in/yaml.v3"
)

// TextureConfig is the YAML shape of one block's face textures.
// Faces left empty fall back to Default; if that is empty too, the
// existing name is kept.
type TextureConfig struct {
	Default string `yaml:"default"`
	North   string `yaml:"north"`
	South   string `yaml:"south"`
	East    string `yaml:"east"`
	West    string `yaml:"west"`
	Top     string `yaml:"top"`
	Bottom  string `yaml:"bottom"`
}

type fileConfig struct {
	Blocks map[string]TextureConfig `yaml:"blocks"`
}

func (t TextureConfig) apply(base FaceTextures) FaceTextures {
	pick := func(face world.BlockFace, name string) {
		switch {
		case name != "":
			base[face] = name
		case t.Default != "":
			base[face] = t.Default
		}
	}
	pick(world.FaceNorth, t.North)
	pick(world.FaceSouth, t.South)
	pick(world.FaceEast, t.East)
	pick(world.FaceWest, t.West)
	pick(world.FaceTop, t.Top)
	pick(world.FaceBottom, t.Bottom)
	return base
}

// LoadFile merges the block texture overrides in the YAML file at path
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read block textures: %w", err)
	}
	if err := r.Apply(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logging.Info("Loaded block textures from %s", path)
	return nil
}

// Apply merges YAML overrides of the form
//
//	blocks:
//	  grass: {default: grass_block_side, top: grass_block_top, bottom: dirt}
func (r *Registry) Apply(data []byte) error {
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse block textures: %w", err)
	}
	for name, tc := range cfg.Blocks {
		id, err := world.ParseBlockType(name)
		if err != nil {
			return err
		}
		if id.IsAir() {
			return fmt.Errorf("block %q has no faces to texture", name)
		}
		var base FaceTextures
		if def, ok := r.blocks[id]; ok {
			base = def.Faces
		}
		r.RegisterBlock(&BlockDefinition{ID: id, Name: name, Faces: tc.apply(base)})
		logging.Debug("Block %s textures: %v", name, r.blocks[id].Faces)
	}
	return nil
}
