package main

import (
	"context"
	"fmt"

	"explora/internal/atlas"
	"explora/internal/config"
	"explora/internal/graphics"
	"explora/internal/logging"
	"explora/internal/registry"
	"explora/internal/terrain"
	"explora/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

type bakeReport struct {
	AtlasTiles int
	AtlasSize  int
	TileSize   int
	Stats      terrain.Stats
	Uniforms   graphics.FrameUniforms
	// MissingTextures are referenced by a block but absent from the atlas;
	// those faces sample the placeholder
	MissingTextures []string
	// VertexBytes is the encoded size of every chunk's vertex buffer
	VertexBytes int
	IndexBytes  int
}

// bake packs the atlas, generates the scene and meshes it, producing what a
// renderer would upload for the first frame.
func bake(ctx context.Context, cfg config.Config) (*bakeReport, error) {
	a, err := atlas.Pack(cfg.TextureDir)
	if err != nil {
		return nil, err
	}
	if cfg.AtlasOutput != "" {
		if err := a.Save(cfg.AtlasOutput); err != nil {
			// the packed atlas is still usable in memory
			logging.Error("Failed to write atlas: %v", err)
		} else {
			logging.Info("Atlas written to %s", cfg.AtlasOutput)
		}
	}

	reg := registry.Default()
	if cfg.BlockTextures != "" {
		if err := reg.LoadFile(cfg.BlockTextures); err != nil {
			return nil, err
		}
	}
	var missing []string
	for _, name := range reg.TextureNames() {
		if _, ok := a.Lookup(name); !ok {
			missing = append(missing, name)
		}
	}
	faces := reg.Resolve(a)

	gen, err := world.NewGenerator(config.GetGenerator(), config.GetSeed())
	if err != nil {
		return nil, err
	}
	scene, err := terrain.NewScene(config.GetWorldRadius(), gen, config.GetMeshWorkers())
	if err != nil {
		return nil, err
	}
	res, err := scene.Build(ctx, &faces, config.GetMeshWorkers())
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	cam := graphics.NewCameraWithFOV(cfg.Camera.Aspect, mgl32.DegToRad(cfg.Camera.FOVDegrees))
	report := &bakeReport{
		AtlasTiles: a.Len(),
		AtlasSize:  a.Size(),
		TileSize:   a.TileSize(),
		Stats:      res.Stats(),
		Uniforms:   graphics.NewFrameUniforms(cam.ComputeMatrices(), a.Size(), a.TileSize()),
		IndexBytes: len(graphics.EncodeIndices(res.Indices)),

		MissingTextures: missing,
	}
	for _, m := range res.Meshes {
		report.VertexBytes += len(graphics.EncodeVertices(m.Vertices))
	}
	return report, nil
}
