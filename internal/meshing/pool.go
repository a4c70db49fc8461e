package meshing

import (
	"context"
	"errors"
	"sync"

	"explora/internal/registry"
	"explora/internal/world"
)

// ErrPoolClosed is returned for jobs submitted after Shutdown
var ErrPoolClosed = errors.New("meshing: worker pool shut down")

// MeshJob represents a meshing job request
type MeshJob struct {
	Chunk *world.Chunk
	Coord world.ChunkCoord
	// Faces is shared between jobs and only read
	Faces *registry.FaceTable
	// Result channel - will be sent the result when done
	ResultChan chan MeshResult
}

// MeshResult contains the result of a meshing operation
type MeshResult struct {
	Coord world.ChunkCoord
	Mesh  *Mesh
	Error error
}

// WorkerPool manages goroutines for mesh generation
type WorkerPool struct {
	jobQueue chan MeshJob
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	once     sync.Once
}

// NewWorkerPool creates a new mesh worker pool bound to parent
func NewWorkerPool(parent context.Context, workers int, queueSize int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(parent)

	pool := &WorkerPool{
		jobQueue: make(chan MeshJob, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker(i)
	}

	return pool
}

// Submit queues a job without blocking.
// Returns false if the queue is full or the pool is shut down.
func (p *WorkerPool) Submit(job MeshJob) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitBlocking waits until the job is queued or the pool stops
func (p *WorkerPool) SubmitBlocking(job MeshJob) error {
	if p.ctx.Err() != nil {
		return ErrPoolClosed
	}
	select {
	case p.jobQueue <- job:
		return nil
	case <-p.ctx.Done():
		return ErrPoolClosed
	}
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			result := MeshResult{Coord: job.Coord}
			if job.Chunk == nil || job.Faces == nil {
				result.Error = errors.New("meshing: job without chunk or face table")
			} else {
				result.Mesh = BuildChunkMesh(job.Chunk, job.Coord, job.Faces)
			}

			select {
			case job.ResultChan <- result:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for them to exit. Queued jobs that
// were not picked up are dropped. Safe to call more than once.
func (p *WorkerPool) Shutdown() {
	p.once.Do(p.cancel)
	p.wg.Wait()
}
