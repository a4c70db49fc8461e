package registry

import (
	"explora/internal/atlas"
	"explora/internal/world"
)

// TextureSource resolves a texture name to a tile id; *atlas.Atlas satisfies it
type TextureSource interface {
	Get(name string) uint32
}

var _ TextureSource = (*atlas.Atlas)(nil)

// FaceTable is the resolved [block][face] -> tile id lookup used while meshing.
// The zero value maps everything to the placeholder tile.
type FaceTable [world.BlockTypeCount][world.FaceCount]uint32

// Resolve looks up every registered face texture once. Names the source
// does not know resolve to whatever it falls back to (the atlas placeholder).
func (r *Registry) Resolve(src TextureSource) FaceTable {
	var t FaceTable
	for id, def := range r.blocks {
		if id >= world.BlockTypeCount {
			continue
		}
		for f, name := range def.Faces {
			t[id][f] = src.Get(name)
		}
	}
	return t
}

// Texture returns the tile id for face f of block b
func (t *FaceTable) Texture(b world.BlockType, f world.BlockFace) uint32 {
	if b >= world.BlockTypeCount || f < 0 || f >= world.FaceCount {
		return atlas.PlaceholderID
	}
	return t[b][f]
}
