package world

import (
	"sort"
	"sync"
)

// ChunkWithCoord pairs a chunk with its grid position
type ChunkWithCoord struct {
	Chunk *Chunk
	Coord ChunkCoord
}

// ChunkStore manages the storage and retrieval of chunks.
type ChunkStore struct {
	chunks map[ChunkCoord]*Chunk
	mu     sync.RWMutex
}

// NewChunkStore creates a new chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// GetChunk returns the chunk at coord, or nil if none is stored.
func (cs *ChunkStore) GetChunk(coord ChunkCoord) *Chunk {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.chunks[coord]
}

// AddChunk adds a pre-generated chunk. An existing chunk at coord is kept.
func (cs *ChunkStore) AddChunk(coord ChunkCoord, chunk *Chunk) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if _, ok := cs.chunks[coord]; ok {
		return false
	}
	cs.chunks[coord] = chunk
	return true
}

// HasChunk checks if a chunk exists without creating it.
func (cs *ChunkStore) HasChunk(coord ChunkCoord) bool {
	cs.mu.RLock()
	_, exists := cs.chunks[coord]
	cs.mu.RUnlock()
	return exists
}

// Len is the number of stored chunks
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}

// GetAllChunks returns every chunk ordered by X, then Z.
func (cs *ChunkStore) GetAllChunks() []ChunkWithCoord {
	cs.mu.RLock()
	chunks := make([]ChunkWithCoord, 0, len(cs.chunks))
	for coord, chunk := range cs.chunks {
		chunks = append(chunks, ChunkWithCoord{Chunk: chunk, Coord: coord})
	}
	cs.mu.RUnlock()

	sort.Slice(chunks, func(i, j int) bool {
		return chunks[i].Coord.Less(chunks[j].Coord)
	})
	return chunks
}

// Get returns the block at world position p; unloaded chunks read as air.
func (cs *ChunkStore) Get(p Pos) BlockType {
	if p.Y < 0 || p.Y >= ChunkSizeY {
		return BlockTypeAir
	}
	coord := ChunkCoord{X: floorDiv(p.X, ChunkSizeX), Z: floorDiv(p.Z, ChunkSizeZ)}
	chunk := cs.GetChunk(coord)
	if chunk == nil {
		return BlockTypeAir
	}
	b, _ := chunk.Get(Pos{X: mod(p.X, ChunkSizeX), Y: p.Y, Z: mod(p.Z, ChunkSizeZ)})
	return b
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
