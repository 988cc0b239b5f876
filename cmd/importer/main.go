// Command importer loads a YAML movie catalog into the database and uploads
// the referenced poster files.
package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtroode/myflix-server/internal/config"
	"github.com/dtroode/myflix-server/internal/importer"
	"github.com/dtroode/myflix-server/internal/logger"
	"github.com/dtroode/myflix-server/internal/model"
	"github.com/dtroode/myflix-server/internal/repository/postgres"
	storage "github.com/dtroode/myflix-server/internal/storage/minio"
)

func main() {
	file := flag.String("file", "catalog.yaml", "path to the YAML catalog")
	postersDir := flag.String("posters", "", "directory holding poster files named by image_path")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewImporterConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	catalog, err := os.Open(*file)
	if err != nil {
		logger.Fatal("failed to open catalog", "file", *file, "error", err)
	}
	defer catalog.Close()

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	var posters fs.FS
	var store model.Storage
	if *postersDir != "" {
		posters = os.DirFS(*postersDir)
		store, err = storage.New(ctx, cfg.Storage)
		if err != nil {
			logger.Fatal("failed to initialize poster storage", "error", err)
		}
	}

	im := importer.New(postgres.NewMovieRepository(db), store, posters, logger)
	if _, err := im.Import(ctx, catalog); err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}
}
