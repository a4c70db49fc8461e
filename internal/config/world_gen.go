package config

import "sync"

// WorldGenSettings holds world generation configuration
type WorldGenSettings struct {
	mu        sync.RWMutex
	generator string
	seed      int64
}

var globalWorldGenSettings = &WorldGenSettings{
	generator: "flat",
	seed:      1,
}

// GetGenerator returns the terrain generator name
func GetGenerator() string {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.generator
}

// SetGenerator sets the terrain generator name
func SetGenerator(name string) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.generator = name
}

// GetSeed returns the world seed
func GetSeed() int64 {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.seed
}

// SetSeed sets the world seed
func SetSeed(seed int64) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.seed = seed
}
