package config

import "sync"

const (
	MinWorldRadius = 1
	MaxWorldRadius = 32

	MinMeshWorkers = 1
	MaxMeshWorkers = 64
)

// RenderSettings holds runtime scene settings
type RenderSettings struct {
	mu          sync.RWMutex
	worldRadius int // in chunks
	meshWorkers int
}

var globalRenderSettings = &RenderSettings{
	worldRadius: 3,
	meshWorkers: 4,
}

// GetWorldRadius returns the side length of the chunk grid
func GetWorldRadius() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.worldRadius
}

// SetWorldRadius sets the side length of the chunk grid
func SetWorldRadius(radius int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	radius = max(radius, MinWorldRadius)
	radius = min(radius, MaxWorldRadius)

	globalRenderSettings.worldRadius = radius
}

// GetMeshWorkers returns how many goroutines mesh chunks
func GetMeshWorkers() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.meshWorkers
}

// SetMeshWorkers sets the meshing parallelism
func SetMeshWorkers(n int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	n = max(n, MinMeshWorkers)
	n = min(n, MaxMeshWorkers)

	globalRenderSettings.meshWorkers = n
}
