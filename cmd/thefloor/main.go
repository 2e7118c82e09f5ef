// Package main is the entry point for The Floor.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/samdwyer/thefloor/internal/board"
	"github.com/samdwyer/thefloor/internal/config"
	"github.com/samdwyer/thefloor/internal/game"
	"github.com/samdwyer/thefloor/internal/gamedata"
	"github.com/samdwyer/thefloor/internal/telemetry"
)

func main() {
	// Load .env file for local development, then the environment.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The terminal belongs to tcell, so logs go to a file.
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		Enabled: cfg.Telemetry,
		APIKey:  cfg.HoneycombAPIKey,
		Dataset: cfg.HoneycombDataset,
	})
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	records, err := loadTiles(cfg)
	if err != nil {
		log.Fatalf("Failed to load tiles: %v", err)
	}
	b, err := board.New(cfg.GridSize, records)
	if err != nil {
		log.Fatalf("Failed to build floor: %v", err)
	}

	if cfg.CreateImageFolders {
		if err := gamedata.CreateImageFolders(cfg.ImagesDir, records); err != nil {
			log.Fatalf("Failed to create image folders: %v", err)
		}
		log.Printf("Created image folders under %s", cfg.ImagesDir)
	}

	registry := gamedata.NewSequenceRegistry(os.DirFS(cfg.ImagesDir))
	if categories, err := registry.Categories(); err != nil {
		log.Printf("Warning: image folder %s not readable: %v", cfg.ImagesDir, err)
	} else {
		log.Printf("Found %d image categories in %s", len(categories), cfg.ImagesDir)
	}

	session := game.NewSession(ctx, cfg, b, registry, game.NewRand(cfg.Seed))

	g, err := game.New(session, gamedata.MustLoadTheme())
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// loadTiles reads the roster CSV, or the embedded roster when none is configured.
func loadTiles(cfg config.Config) ([]board.Record, error) {
	if cfg.TilesCSV == "" {
		return gamedata.DefaultTiles()
	}
	return gamedata.LoadTilesCSV(cfg.TilesCSV)
}
