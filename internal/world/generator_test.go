package world

import (
	"crypto/sha256"
	"testing"
)

func TestFlatGeneratorImplementsInterface(t *testing.T) {
	var _ Generator = FlatGenerator{}
}

func TestHillsGeneratorImplementsInterface(t *testing.T) {
	var _ Generator = NewHillsGenerator(123)
}

func TestNewGeneratorByName(t *testing.T) {
	for _, name := range []string{"", "flat", "hills"} {
		if _, err := NewGenerator(name, 1); err != nil {
			t.Errorf("NewGenerator(%q): unexpected error %v", name, err)
		}
	}
	if _, err := NewGenerator("caves", 1); err == nil {
		t.Error("Expected error for unknown generator name")
	}
}

func TestFlatChunkLayers(t *testing.T) {
	c := NewFlatChunk()

	cases := []struct {
		y    int
		want BlockType
	}{
		{0, BlockTypeStone},
		{32, BlockTypeStone},
		{33, BlockTypeDirt},
		{254, BlockTypeDirt},
		{255, BlockTypeGrass},
	}
	for _, tc := range cases {
		for _, p := range []Pos{{0, tc.y, 0}, {15, tc.y, 15}, {7, tc.y, 3}} {
			if b, _ := c.Get(p); b != tc.want {
				t.Errorf("Expected %v at %v, got %v", tc.want, p, b)
			}
		}
	}

	if n := c.Count(BlockTypeAir); n != 0 {
		t.Errorf("Expected no air in flat chunk, got %d cells", n)
	}
	if n := c.Count(BlockTypeGrass); n != ChunkSizeX*ChunkSizeZ {
		t.Errorf("Expected one grass layer, got %d cells", n)
	}
}

// hashChunkBlocks computes a SHA-256 hash of all blocks in a chunk
func hashChunkBlocks(c *Chunk) [32]byte {
	h := sha256.New()
	for i := 0; i < ChunkVolume; i++ {
		b, _ := c.Get(PosOf(i))
		h.Write([]byte{byte(b), byte(b >> 8)})
	}
	var result [32]byte
	copy(result[:], h.Sum(nil))
	return result
}

// TestHillsDeterminism verifies same seed produces identical terrain
func TestHillsDeterminism(t *testing.T) {
	seed := int64(12345)
	coords := []ChunkCoord{{0, 0}, {1, 0}, {0, 1}, {-1, -1}}

	for _, coord := range coords {
		c1 := NewChunk()
		NewHillsGenerator(seed).Populate(c1, coord)
		c2 := NewChunk()
		NewHillsGenerator(seed).Populate(c2, coord)

		if hashChunkBlocks(c1) != hashChunkBlocks(c2) {
			t.Errorf("Chunk at %v not deterministic", coord)
		}
	}
}

func TestHillsColumnShape(t *testing.T) {
	g := NewHillsGenerator(7)
	c := NewChunk()
	g.Populate(c, ChunkCoord{2, -3})

	origin := ChunkCoord{2, -3}.Origin()
	for x := 0; x < ChunkSizeX; x++ {
		for z := 0; z < ChunkSizeZ; z++ {
			top := g.HeightAt(origin.X+x, origin.Z+z)
			if top < 1 || top >= ChunkSizeY {
				t.Fatalf("Height %d out of range at (%d,%d)", top, x, z)
			}
			if b, _ := c.Get(Pos{x, top, z}); b != BlockTypeGrass {
				t.Errorf("Expected grass on top at (%d,%d,%d), got %v", x, top, z, b)
			}
			if b, _ := c.Get(Pos{x, 0, z}); b != BlockTypeStone {
				t.Errorf("Expected stone at bedrock level (%d,0,%d), got %v", x, z, b)
			}
			if top+1 < ChunkSizeY {
				if b, _ := c.Get(Pos{x, top + 1, z}); b != BlockTypeAir {
					t.Errorf("Expected air above surface at (%d,%d,%d), got %v", x, top+1, z, b)
				}
			}
		}
	}
}

func BenchmarkFlatPopulate(b *testing.B) {
	c := NewChunk()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FlatGenerator{}.Populate(c, ChunkCoord{})
	}
}

func BenchmarkHillsHeightAt(b *testing.B) {
	g := NewHillsGenerator(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HeightAt(i%1024, (i*31)%1024)
	}
}
