package meshing

import (
	"explora/internal/profiling"
	"explora/internal/registry"
	"explora/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one mesh corner in world space plus the atlas tile it samples
type Vertex struct {
	Position  mgl32.Vec3
	TextureID uint32
}

// Mesh is the face list of one chunk. Every four consecutive vertices form
// one quad, wound counter-clockwise as seen from outside the block.
type Mesh struct {
	Coord    world.ChunkCoord
	Vertices []Vertex
}

// FaceCount is the number of quads in the mesh
func (m *Mesh) FaceCount() int {
	return len(m.Vertices) / 4
}

// IndexCount is the number of indices needed to draw the mesh
func (m *Mesh) IndexCount() int {
	return m.FaceCount() * 6
}

// faceCorners are the unit-cube corners of each face
var faceCorners = [world.FaceCount][4]mgl32.Vec3{
	world.FaceNorth:  {{1, 1, 1}, {0, 1, 1}, {0, 0, 1}, {1, 0, 1}},
	world.FaceSouth:  {{0, 1, 0}, {1, 1, 0}, {1, 0, 0}, {0, 0, 0}},
	world.FaceEast:   {{1, 1, 0}, {1, 1, 1}, {1, 0, 1}, {1, 0, 0}},
	world.FaceWest:   {{0, 1, 1}, {0, 1, 0}, {0, 0, 0}, {0, 0, 1}},
	world.FaceTop:    {{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}},
	world.FaceBottom: {{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
}

// FaceVisible reports whether face f of the block at p must be drawn: the
// block is solid and its neighbour across f is outside the chunk or not solid.
// Neighbouring chunks are not consulted.
func FaceVisible(c *world.Chunk, p world.Pos, f world.BlockFace) bool {
	if !c.IsSolidAt(p) {
		return false
	}
	n := p.Neighbor(f)
	if world.OutOfBounds(n) {
		return true
	}
	return !c.IsSolidAt(n)
}

// BuildChunkMesh emits one quad for every visible face in c, positioned at
// the chunk's world offset and textured through faces.
func BuildChunkMesh(c *world.Chunk, coord world.ChunkCoord, faces *registry.FaceTable) *Mesh {
	defer profiling.Track("meshing.BuildChunkMesh")()

	m := &Mesh{Coord: coord}
	origin := coord.Origin()

	for z := 0; z < world.ChunkSizeZ; z++ {
		for y := 0; y < world.ChunkSizeY; y++ {
			for x := 0; x < world.ChunkSizeX; x++ {
				p := world.Pos{X: x, Y: y, Z: z}
				b, _ := c.Get(p)
				if !b.IsSolid() {
					continue
				}
				base := mgl32.Vec3{float32(origin.X + x), float32(y), float32(origin.Z + z)}
				for _, f := range world.AllFaces {
					if !FaceVisible(c, p, f) {
						continue
					}
					tex := faces.Texture(b, f)
					for _, corner := range faceCorners[f] {
						m.Vertices = append(m.Vertices, Vertex{Position: base.Add(corner), TextureID: tex})
					}
				}
			}
		}
	}
	return m
}

// QuadIndices returns the triangle list for vertexCount vertices grouped
// in quads: i, i+1, i+2, i+2, i+3, i for each quad starting at i.
func QuadIndices(vertexCount int) []uint32 {
	quads := vertexCount / 4
	out := make([]uint32, 0, quads*6)
	for q := 0; q < quads; q++ {
		i := uint32(q * 4)
		out = append(out, i, i+1, i+2, i+2, i+3, i)
	}
	return out
}
