package world

const (
	// Chunk dimensions
	ChunkSizeX = 16
	ChunkSizeY = 256
	ChunkSizeZ = 16

	ChunkVolume = ChunkSizeX * ChunkSizeY * ChunkSizeZ
)

// Flat terrain layering, inclusive upper bounds
const (
	flatStoneTop = 32
	flatDirtTop  = 254
	flatGrassY   = 255
)

// Chunk represents a 16x256x16 column of blocks.
// Blocks are stored row-major with x varying fastest, then y, then z.
type Chunk struct {
	blocks [ChunkVolume]BlockType
}

// NewChunk creates a chunk filled with air
func NewChunk() *Chunk {
	return &Chunk{}
}

// NewFlatChunk creates the reference flat terrain: stone up to y=32,
// dirt up to y=254 and a single grass layer at y=255.
func NewFlatChunk() *Chunk {
	c := NewChunk()
	FlatGenerator{}.Populate(c, ChunkCoord{})
	return c
}

// flatLayer returns the block the flat generator places at height y
func flatLayer(y int) BlockType {
	switch {
	case y < 0:
		return BlockTypeAir
	case y <= flatStoneTop:
		return BlockTypeStone
	case y <= flatDirtTop:
		return BlockTypeDirt
	case y == flatGrassY:
		return BlockTypeGrass
	default:
		return BlockTypeAir
	}
}

// OutOfBounds reports whether p lies outside the chunk extent
func OutOfBounds(p Pos) bool {
	return p.IsAnyNegative() || p.X >= ChunkSizeX || p.Y >= ChunkSizeY || p.Z >= ChunkSizeZ
}

// IndexOf converts a local position to a flat array index.
// ok is false for any out-of-bounds position.
func IndexOf(p Pos) (idx int, ok bool) {
	if OutOfBounds(p) {
		return 0, false
	}
	return ChunkSizeX*ChunkSizeY*p.Z + ChunkSizeX*p.Y + p.X, true
}

// PosOf is the inverse of IndexOf for idx in [0, ChunkVolume)
func PosOf(idx int) Pos {
	x := idx % ChunkSizeX
	y := (idx / ChunkSizeX) % ChunkSizeY
	z := idx / (ChunkSizeX * ChunkSizeY)
	return Pos{x, y, z}
}

// Get returns the block at p. ok is false when p is out of bounds.
func (c *Chunk) Get(p Pos) (b BlockType, ok bool) {
	idx, ok := IndexOf(p)
	if !ok {
		return BlockTypeAir, false
	}
	return c.blocks[idx], true
}

// Set stores b at p and reports whether p was in bounds
func (c *Chunk) Set(p Pos, b BlockType) bool {
	idx, ok := IndexOf(p)
	if !ok {
		return false
	}
	c.blocks[idx] = b
	return true
}

// IsSolidAt reports whether p holds a solid block; out-of-bounds is not solid
func (c *Chunk) IsSolidAt(p Pos) bool {
	b, ok := c.Get(p)
	return ok && b.IsSolid()
}

// Count returns how many cells hold b
func (c *Chunk) Count(b BlockType) int {
	n := 0
	for _, v := range c.blocks {
		if v == b {
			n++
		}
	}
	return n
}
