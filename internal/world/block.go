package world

import "fmt"

type BlockType uint16

const (
	BlockTypeAir BlockType = iota
	BlockTypeDirt
	BlockTypeGrass
	BlockTypeStone

	// BlockTypeCount is the number of block kinds; tables indexed by BlockType use it as length.
	BlockTypeCount
)

var blockNames = [BlockTypeCount]string{
	BlockTypeAir:   "air",
	BlockTypeDirt:  "dirt",
	BlockTypeGrass: "grass",
	BlockTypeStone: "stone",
}

// IsAir reports whether the block is empty space
func (b BlockType) IsAir() bool {
	return b == BlockTypeAir
}

// IsSolid reports whether the block occludes its neighbours' faces.
// Everything except air is solid.
func (b BlockType) IsSolid() bool {
	return !b.IsAir()
}

func (b BlockType) String() string {
	if b < BlockTypeCount {
		return blockNames[b]
	}
	return fmt.Sprintf("block(%d)", uint16(b))
}

// ParseBlockType maps a lower-case block name back to its BlockType
func ParseBlockType(name string) (BlockType, error) {
	for i, n := range blockNames {
		if n == name {
			return BlockType(i), nil
		}
	}
	return BlockTypeAir, fmt.Errorf("unknown block type %q", name)
}

// BlockFace identifies a face of a block
type BlockFace int

const (
	FaceNorth BlockFace = iota // +Z
	FaceSouth                  // -Z
	FaceEast                   // +X
	FaceWest                   // -X
	FaceTop                    // +Y
	FaceBottom                 // -Y

	FaceCount = 6
)

// AllFaces lists the faces in table order
var AllFaces = [FaceCount]BlockFace{FaceNorth, FaceSouth, FaceEast, FaceWest, FaceTop, FaceBottom}

var faceNormals = [FaceCount]Pos{
	FaceNorth:  {0, 0, 1},
	FaceSouth:  {0, 0, -1},
	FaceEast:   {1, 0, 0},
	FaceWest:   {-1, 0, 0},
	FaceTop:    {0, 1, 0},
	FaceBottom: {0, -1, 0},
}

var faceNames = [FaceCount]string{"north", "south", "east", "west", "top", "bottom"}

// Normal returns the unit offset pointing out of the face
func (f BlockFace) Normal() Pos {
	return faceNormals[f]
}

func (f BlockFace) String() string {
	if f >= 0 && f < FaceCount {
		return faceNames[f]
	}
	return fmt.Sprintf("face(%d)", int(f))
}
