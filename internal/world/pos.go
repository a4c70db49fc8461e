package world

// Pos is an integer block position, chunk-local unless stated otherwise
type Pos struct {
	X, Y, Z int
}

func (p Pos) Add(o Pos) Pos {
	return Pos{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

func (p Pos) Sub(o Pos) Pos {
	return Pos{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

// Neighbor returns the adjacent position across the given face
func (p Pos) Neighbor(f BlockFace) Pos {
	return p.Add(f.Normal())
}

// IsAnyNegative reports whether any coordinate is below zero
func (p Pos) IsAnyNegative() bool {
	return p.X < 0 || p.Y < 0 || p.Z < 0
}

// ChunkCoord addresses a chunk on the horizontal X/Z chunk grid
type ChunkCoord struct {
	X, Z int
}

// Origin returns the world-space block position of the chunk's (0,0,0) cell
func (c ChunkCoord) Origin() Pos {
	return Pos{X: c.X * ChunkSizeX, Y: 0, Z: c.Z * ChunkSizeZ}
}

// ToWorld converts a chunk-local position into world space
func (c ChunkCoord) ToWorld(local Pos) Pos {
	return c.Origin().Add(local)
}

// Less orders coordinates by X, then Z
func (c ChunkCoord) Less(o ChunkCoord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Z < o.Z
}
