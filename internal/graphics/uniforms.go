package graphics

import (
	"encoding/binary"
	"math"

	"explora/internal/meshing"
)

// VertexStride is the encoded size of one meshing.Vertex:
// position as three float32 followed by the tile id as uint32.
const VertexStride = 16

// FrameUniforms is the per-frame state a renderer uploads
type FrameUniforms struct {
	Proj      [16]float32
	View      [16]float32
	AtlasSize uint32
	TileSize  uint32
}

// NewFrameUniforms packs camera matrices with the atlas metrics the shader
// needs to turn a tile id into UVs.
func NewFrameUniforms(m Matrices, atlasSize, tileSize int) FrameUniforms {
	return FrameUniforms{
		Proj:      m.Proj,
		View:      m.View,
		AtlasSize: uint32(atlasSize),
		TileSize:  uint32(tileSize),
	}
}

// TilesPerRow derives the atlas grid width from the uniforms
func (u FrameUniforms) TilesPerRow() uint32 {
	if u.TileSize == 0 {
		return 0
	}
	return u.AtlasSize / u.TileSize
}

// EncodeVertices lays vertices out little-endian with VertexStride bytes each
func EncodeVertices(vs []meshing.Vertex) []byte {
	out := make([]byte, len(vs)*VertexStride)
	for i, v := range vs {
		b := out[i*VertexStride:]
		binary.LittleEndian.PutUint32(b[0:], math.Float32bits(v.Position[0]))
		binary.LittleEndian.PutUint32(b[4:], math.Float32bits(v.Position[1]))
		binary.LittleEndian.PutUint32(b[8:], math.Float32bits(v.Position[2]))
		binary.LittleEndian.PutUint32(b[12:], v.TextureID)
	}
	return out
}

// EncodeIndices lays indices out as little-endian uint32
func EncodeIndices(idx []uint32) []byte {
	out := make([]byte, len(idx)*4)
	for i, v := range idx {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// Bytes encodes the uniforms in declaration order, matrices column-major
func (u FrameUniforms) Bytes() []byte {
	out := make([]byte, 0, 2*16*4+8)
	for _, f := range u.Proj {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(f))
	}
	for _, f := range u.View {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(f))
	}
	out = binary.LittleEndian.AppendUint32(out, u.AtlasSize)
	out = binary.LittleEndian.AppendUint32(out, u.TileSize)
	return out
}
