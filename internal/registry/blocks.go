package registry

import (
	"explora/internal/world"
)

// FaceTextures holds one texture name per face, indexed by world.BlockFace
type FaceTextures [world.FaceCount]string

// Uniform returns FaceTextures with the same name on every face
func Uniform(name string) FaceTextures {
	var f FaceTextures
	for i := range f {
		f[i] = name
	}
	return f
}

// SidesTopBottom returns FaceTextures with one name for the four sides
func SidesTopBottom(side, top, bottom string) FaceTextures {
	f := Uniform(side)
	f[world.FaceTop] = top
	f[world.FaceBottom] = bottom
	return f
}

// BlockDefinition defines the rendered look of a block type
type BlockDefinition struct {
	ID    world.BlockType
	Name  string
	Faces FaceTextures
}

// Registry maps block types to their definitions
type Registry struct {
	blocks map[world.BlockType]*BlockDefinition
}

// New returns an empty registry
func New() *Registry {
	return &Registry{
		blocks: make(map[world.BlockType]*BlockDefinition),
	}
}

// Default returns a registry holding the built-in block looks
func Default() *Registry {
	r := New()
	r.RegisterBlock(&BlockDefinition{
		ID:    world.BlockTypeDirt,
		Name:  "dirt",
		Faces: Uniform("dirt"),
	})
	r.RegisterBlock(&BlockDefinition{
		ID:    world.BlockTypeGrass,
		Name:  "grass",
		Faces: SidesTopBottom("grass_block_side", "grass_block_top", "dirt"),
	})
	r.RegisterBlock(&BlockDefinition{
		ID:    world.BlockTypeStone,
		Name:  "stone",
		Faces: Uniform("stone"),
	})
	return r
}

// RegisterBlock adds or replaces a definition. Air is never rendered and
// is ignored.
func (r *Registry) RegisterBlock(def *BlockDefinition) {
	if def.ID.IsAir() {
		return
	}
	if def.Name == "" {
		def.Name = def.ID.String()
	}
	r.blocks[def.ID] = def
}

// Block returns the definition for b
func (r *Registry) Block(b world.BlockType) (*BlockDefinition, bool) {
	def, ok := r.blocks[b]
	return def, ok
}

// TextureNames lists every texture the current definitions reference, in
// block type then face order, without duplicates.
func (r *Registry) TextureNames() []string {
	var out []string
	seen := make(map[string]bool)
	for b := world.BlockType(0); b < world.BlockTypeCount; b++ {
		def, ok := r.blocks[b]
		if !ok {
			continue
		}
		for _, name := range def.Faces {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
