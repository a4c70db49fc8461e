package registry

import (
	"os"
	"path/filepath"
	"testing"

	"explora/internal/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAtlas map[string]uint32

func (f fakeAtlas) Get(name string) uint32 {
	return f[name]
}

var testAtlas = fakeAtlas{
	"dirt":             1,
	"grass_block_side": 2,
	"grass_block_top":  3,
	"stone":            4,
}

func TestDefaultTable(t *testing.T) {
	table := Default().Resolve(testAtlas)

	for _, f := range world.AllFaces {
		assert.Equal(t, uint32(1), table.Texture(world.BlockTypeDirt, f), "dirt %s", f)
		assert.Equal(t, uint32(4), table.Texture(world.BlockTypeStone, f), "stone %s", f)
		assert.Equal(t, uint32(0), table.Texture(world.BlockTypeAir, f), "air %s", f)
	}

	for _, f := range []world.BlockFace{world.FaceNorth, world.FaceSouth, world.FaceEast, world.FaceWest} {
		assert.Equal(t, uint32(2), table.Texture(world.BlockTypeGrass, f))
	}
	assert.Equal(t, uint32(3), table.Texture(world.BlockTypeGrass, world.FaceTop))
	assert.Equal(t, uint32(1), table.Texture(world.BlockTypeGrass, world.FaceBottom))
}

func TestTextureOutOfRange(t *testing.T) {
	table := Default().Resolve(testAtlas)
	assert.Equal(t, uint32(0), table.Texture(world.BlockTypeCount, world.FaceTop))
	assert.Equal(t, uint32(0), table.Texture(world.BlockTypeDirt, world.BlockFace(9)))
}

func TestMissingTextureResolvesToPlaceholder(t *testing.T) {
	table := Default().Resolve(fakeAtlas{"dirt": 1})
	assert.Equal(t, uint32(0), table.Texture(world.BlockTypeStone, world.FaceTop))
	assert.Equal(t, uint32(1), table.Texture(world.BlockTypeGrass, world.FaceBottom))
}

func TestTextureNamesFirstUseOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"dirt", "grass_block_side", "grass_block_top", "stone"},
		Default().TextureNames())
}

func TestTextureNamesDropReplacedLooks(t *testing.T) {
	r := Default()
	require.NoError(t, r.Apply([]byte("blocks:\n  stone: {default: cobblestone}\n")))
	assert.Equal(t,
		[]string{"dirt", "grass_block_side", "grass_block_top", "cobblestone"},
		r.TextureNames())

	r.RegisterBlock(&BlockDefinition{ID: world.BlockTypeGrass, Faces: Uniform("moss")})
	assert.Equal(t, []string{"dirt", "moss", "cobblestone"}, r.TextureNames())
}

func TestApplyOverrides(t *testing.T) {
	r := Default()
	err := r.Apply([]byte(`
blocks:
  stone:
    default: stone
    top: smooth_stone
  grass:
    north: dirt
`))
	require.NoError(t, err)

	table := r.Resolve(fakeAtlas{"stone": 4, "smooth_stone": 5, "dirt": 1, "grass_block_side": 2, "grass_block_top": 3})
	assert.Equal(t, uint32(5), table.Texture(world.BlockTypeStone, world.FaceTop))
	assert.Equal(t, uint32(4), table.Texture(world.BlockTypeStone, world.FaceWest))
	// faces not named keep the built-in texture
	assert.Equal(t, uint32(1), table.Texture(world.BlockTypeGrass, world.FaceNorth))
	assert.Equal(t, uint32(2), table.Texture(world.BlockTypeGrass, world.FaceSouth))
	assert.Equal(t, uint32(3), table.Texture(world.BlockTypeGrass, world.FaceTop))
}

func TestApplyRejectsUnknownBlocks(t *testing.T) {
	assert.Error(t, Default().Apply([]byte("blocks:\n  obsidian: {default: x}\n")))
	assert.Error(t, Default().Apply([]byte("blocks:\n  air: {default: x}\n")))
	assert.Error(t, Default().Apply([]byte("blocks: [")))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("blocks:\n  dirt: {default: mud}\n"), 0o644))

	r := New()
	require.NoError(t, r.LoadFile(path))
	def, ok := r.Block(world.BlockTypeDirt)
	require.True(t, ok)
	assert.Equal(t, Uniform("mud"), def.Faces)

	assert.Error(t, r.LoadFile(filepath.Join(t.TempDir(), "nope.yaml")))
}
