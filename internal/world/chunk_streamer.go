package world

import (
	"runtime"
	"sync"

	"explora/internal/profiling"
)

type streamJob struct {
	coord ChunkCoord
	// done is closed once the chunk is in the store
	done chan struct{}
}

// ChunkStreamer populates chunks on background workers and installs them
// in a ChunkStore.
type ChunkStreamer struct {
	jobs      chan streamJob
	pending   map[ChunkCoord]chan struct{}
	pendingMu sync.Mutex
	workers   sync.WaitGroup
	closeOnce sync.Once

	// Dependencies
	store *ChunkStore
	gen   Generator
}

// NewChunkStreamer starts workers goroutines; values below 1 use NumCPU.
func NewChunkStreamer(store *ChunkStore, gen Generator, workers int) *ChunkStreamer {
	if workers < 1 {
		workers = max(runtime.NumCPU(), 1)
	}
	cs := &ChunkStreamer{
		jobs:    make(chan streamJob, 256),
		pending: make(map[ChunkCoord]chan struct{}),
		store:   store,
		gen:     gen,
	}
	for i := 0; i < workers; i++ {
		cs.workers.Add(1)
		go cs.worker()
	}
	return cs
}

// Close stops the background generation workers. Jobs already queued are finished first.
func (cs *ChunkStreamer) Close() {
	cs.closeOnce.Do(func() { close(cs.jobs) })
	cs.workers.Wait()
}

func (cs *ChunkStreamer) worker() {
	defer cs.workers.Done()
	for job := range cs.jobs {
		cs.generateChunkSync(job.coord)
		cs.pendingMu.Lock()
		delete(cs.pending, job.coord)
		cs.pendingMu.Unlock()
		close(job.done)
	}
}

// generateChunkSync builds and installs a chunk if missing.
func (cs *ChunkStreamer) generateChunkSync(coord ChunkCoord) {
	if cs.store.HasChunk(coord) {
		return
	}
	chunk := NewChunk()
	cs.gen.Populate(chunk, coord)
	cs.store.AddChunk(coord, chunk)
}

// GenerateSync populates every missing coord in parallel and returns once
// all of them are in the store, including coords another caller already
// queued. Must not be called after Close.
func (cs *ChunkStreamer) GenerateSync(coords []ChunkCoord) {
	defer profiling.Track("world.GenerateSync")()

	var waits []chan struct{}
	for _, coord := range coords {
		if cs.store.HasChunk(coord) {
			continue
		}
		cs.pendingMu.Lock()
		if done, ok := cs.pending[coord]; ok {
			cs.pendingMu.Unlock()
			waits = append(waits, done)
			continue
		}
		done := make(chan struct{})
		cs.pending[coord] = done
		cs.pendingMu.Unlock()

		waits = append(waits, done)
		cs.jobs <- streamJob{coord: coord, done: done}
	}
	for _, done := range waits {
		<-done
	}
}

// GridCoords lists the coords of a side x side grid starting at the origin,
// ordered by X then Z.
func GridCoords(side int) []ChunkCoord {
	if side < 1 {
		return nil
	}
	out := make([]ChunkCoord, 0, side*side)
	for x := 0; x < side; x++ {
		for z := 0; z < side; z++ {
			out = append(out, ChunkCoord{X: x, Z: z})
		}
	}
	return out
}
