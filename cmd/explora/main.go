package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"explora/internal/config"
	"explora/internal/logging"
	"explora/internal/profiling"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (default $"+config.EnvVar+")")
	textureDir := flag.String("textures", "", "texture directory (overrides config)")
	atlasOut := flag.String("atlas-out", "", "where to write the packed atlas image (overrides config)")
	radius := flag.Int("radius", 0, "chunk grid side length (overrides config)")
	generator := flag.String("generator", "", "terrain generator: flat or hills (overrides config)")
	workers := flag.Int("workers", 0, "meshing goroutines (overrides config)")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address (overrides config)")
	hold := flag.Bool("hold", false, "keep serving metrics after the bake until interrupted")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("Config: %v", err)
		os.Exit(1)
	}
	overrideString(&cfg.TextureDir, *textureDir)
	overrideString(&cfg.AtlasOutput, *atlasOut)
	overrideString(&cfg.World.Generator, *generator)
	overrideString(&cfg.MetricsAddr, *metricsAddr)
	if *radius > 0 {
		cfg.World.Radius = *radius
	}
	if *workers > 0 {
		cfg.MeshWorkers = *workers
	}
	if err := cfg.Validate(); err != nil {
		logging.Error("Config: %v", err)
		os.Exit(1)
	}

	if err := logging.Init(cfg.LogLevel); err != nil {
		logging.Error("Logging: %v", err)
		os.Exit(1)
	}
	cfg.Apply()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var srv *http.Server
	if cfg.MetricsAddr != "" {
		srv = serveMetrics(cfg.MetricsAddr)
	}

	report, err := bake(ctx, cfg)
	if err != nil {
		logging.Error("Bake failed: %v", err)
		shutdown(srv)
		os.Exit(1)
	}
	logging.Info("Atlas: %d tiles, %dpx, tile %dpx", report.AtlasTiles, report.AtlasSize, report.TileSize)
	logging.Info("Scene: %s", report.Stats)
	if len(report.MissingTextures) > 0 {
		logging.Warn("Textures missing from atlas: %v", report.MissingTextures)
	}
	logging.Info("Top stages: %s", profiling.TopN(5))

	if *hold && srv != nil {
		logging.Info("Serving metrics on %s until interrupted", cfg.MetricsAddr)
		<-ctx.Done()
	}
	shutdown(srv)
}

func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func serveMetrics(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", profiling.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Metrics server: %v", err)
		}
	}()
	logging.Info("Metrics on http://%s/metrics", addr)
	return srv
}

func shutdown(srv *http.Server) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Metrics shutdown: %v", err)
	}
}
