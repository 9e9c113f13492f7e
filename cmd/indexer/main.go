package main

import (
	"context"
	"log"
	"time"

	"github.com/fatih/color"

	"github.com/sajjad006/ardine-backend/internal/bootstrap"
	"github.com/sajjad006/ardine-backend/internal/config"
	"github.com/sajjad006/ardine-backend/pkg/database"
)

// Offline full-index rebuild. Drops the dish embedding collection and
// reindexes every active dish; queries racing the rebuild may see a
// partial collection until it finishes.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	color.Yellow("Starting full menu index rebuild...")
	started := time.Now()

	count, err := container.IndexerService.Rebuild(context.Background())
	if err != nil {
		color.Red("Index rebuild failed: %v", err)
		log.Fatal(err)
	}

	color.Green("Menu indexing complete: %d dishes in %s", count, time.Since(started).Round(time.Millisecond))
}
