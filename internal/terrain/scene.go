// Package terrain assembles the renderable world: a square grid of chunks
// meshed in parallel, plus the index buffer shared by every chunk draw.
package terrain

import (
	"context"
	"fmt"
	"sort"

	"explora/internal/logging"
	"explora/internal/meshing"
	"explora/internal/profiling"
	"explora/internal/registry"
	"explora/internal/world"
)

// DefaultRadius is the side length, in chunks, of the default grid
const DefaultRadius = 3

// Scene is a Radius x Radius grid of chunks with coords 0..Radius-1 on X and Z
type Scene struct {
	Radius int
	store  *world.ChunkStore
}

// Result is the output of a scene build
type Result struct {
	// Meshes holds one entry per chunk, ordered by coord
	Meshes []*meshing.Mesh
	// Indices is sized for the largest mesh; each chunk draws IndexCount() of it
	Indices []uint32
}

// Stats summarizes a build
type Stats struct {
	Chunks      int
	Faces       int
	Vertices    int
	MaxVertices int
	Indices     int
}

// NewScene generates every chunk of the grid with gen, using workers
// goroutines (NumCPU when below 1).
func NewScene(radius int, gen world.Generator, workers int) (*Scene, error) {
	if radius < 1 {
		return nil, fmt.Errorf("terrain: radius must be positive, got %d", radius)
	}
	if gen == nil {
		gen = world.FlatGenerator{}
	}
	defer profiling.Track("terrain.Generate")()

	s := &Scene{Radius: radius, store: world.NewChunkStore()}
	streamer := world.NewChunkStreamer(s.store, gen, workers)
	streamer.GenerateSync(world.GridCoords(radius))
	streamer.Close()

	logging.Debug("Generated %d chunks", s.store.Len())
	return s, nil
}

// Store exposes the scene's chunks
func (s *Scene) Store() *world.ChunkStore {
	return s.store
}

// Build meshes every chunk across workers goroutines. Cancelling ctx aborts
// the build and returns ctx.Err().
func (s *Scene) Build(ctx context.Context, faces *registry.FaceTable, workers int) (*Result, error) {
	defer profiling.Track("terrain.Build")()

	chunks := s.store.GetAllChunks()
	pool := meshing.NewWorkerPool(ctx, workers, len(chunks))
	defer pool.Shutdown()

	results := make(chan meshing.MeshResult, len(chunks))
	for _, c := range chunks {
		job := meshing.MeshJob{Chunk: c.Chunk, Coord: c.Coord, Faces: faces, ResultChan: results}
		if err := pool.SubmitBlocking(job); err != nil {
			return nil, ctxErrOr(ctx, err)
		}
	}

	meshes := make([]*meshing.Mesh, 0, len(chunks))
	for range chunks {
		select {
		case r := <-results:
			if r.Error != nil {
				return nil, fmt.Errorf("mesh chunk %v: %w", r.Coord, r.Error)
			}
			meshes = append(meshes, r.Mesh)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	sort.Slice(meshes, func(i, j int) bool {
		return meshes[i].Coord.Less(meshes[j].Coord)
	})

	maxVerts := 0
	for _, m := range meshes {
		maxVerts = max(maxVerts, len(m.Vertices))
	}
	return &Result{Meshes: meshes, Indices: meshing.QuadIndices(maxVerts)}, nil
}

func ctxErrOr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// Stats counts what the build produced
func (r *Result) Stats() Stats {
	st := Stats{Chunks: len(r.Meshes), Indices: len(r.Indices)}
	for _, m := range r.Meshes {
		st.Faces += m.FaceCount()
		st.Vertices += len(m.Vertices)
		st.MaxVertices = max(st.MaxVertices, len(m.Vertices))
	}
	return st
}

func (st Stats) String() string {
	return fmt.Sprintf("chunks=%d faces=%d vertices=%d max_vertices=%d indices=%d",
		st.Chunks, st.Faces, st.Vertices, st.MaxVertices, st.Indices)
}
