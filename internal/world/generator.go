package world

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
)

// Generator fills a freshly allocated chunk for the given grid coordinate.
// Implementations must be deterministic for a given configuration.
type Generator interface {
	Populate(c *Chunk, coord ChunkCoord)
}

// NewGenerator selects a terrain generator by name ("flat" or "hills")
func NewGenerator(name string, seed int64) (Generator, error) {
	switch name {
	case "", "flat":
		return FlatGenerator{}, nil
	case "hills":
		return NewHillsGenerator(seed), nil
	default:
		return nil, fmt.Errorf("unknown generator %q", name)
	}
}

// FlatGenerator produces the same layered column for every chunk
type FlatGenerator struct{}

func (FlatGenerator) Populate(c *Chunk, _ ChunkCoord) {
	for z := 0; z < ChunkSizeZ; z++ {
		for y := 0; y < ChunkSizeY; y++ {
			b := flatLayer(y)
			for x := 0; x < ChunkSizeX; x++ {
				c.Set(Pos{x, y, z}, b)
			}
		}
	}
}

// HillsGenerator builds rolling terrain from a perlin heightmap
type HillsGenerator struct {
	noise      *perlin.Perlin
	scale      float64
	baseHeight int
	amp        float64
	dirtDepth  int
}

// NewHillsGenerator creates a generator with default settings for the given seed
func NewHillsGenerator(seed int64) *HillsGenerator {
	return &HillsGenerator{
		noise:      perlin.NewPerlin(2.0, 2.0, 3, seed),
		scale:      1.0 / 48.0,
		baseHeight: 64,
		amp:        24,
		dirtDepth:  3,
	}
}

// HeightAt computes the surface height (block Y) at world X,Z
func (g *HillsGenerator) HeightAt(worldX, worldZ int) int {
	n := g.noise.Noise2D(float64(worldX)*g.scale, float64(worldZ)*g.scale)
	h := int(math.Floor(float64(g.baseHeight) + n*g.amp))
	return max(1, min(h, ChunkSizeY-1))
}

func (g *HillsGenerator) Populate(c *Chunk, coord ChunkCoord) {
	origin := coord.Origin()
	for lx := 0; lx < ChunkSizeX; lx++ {
		for lz := 0; lz < ChunkSizeZ; lz++ {
			top := g.HeightAt(origin.X+lx, origin.Z+lz)
			for y := 0; y <= top; y++ {
				b := BlockTypeStone
				switch {
				case y == top:
					b = BlockTypeGrass
				case y >= top-g.dirtDepth:
					b = BlockTypeDirt
				}
				c.Set(Pos{lx, y, lz}, b)
			}
		}
	}
}
