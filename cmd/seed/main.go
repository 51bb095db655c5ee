package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/domain/ingredient"
	"foodgram/internal/logger"
	"foodgram/internal/server"
)

// Loads the ingredient catalog from a JSON fixture:
// [{"name": "...", "measurement_unit": "..."}, ...].
func main() {
	file := flag.String("file", "data/ingredients.json", "path to the ingredients fixture")
	force := flag.Bool("force", false, "import even when the catalog already has rows")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logg, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logg.Fatal("db connect failed", zap.Error(err))
	}
	logg.Info("running AutoMigrate")
	if err := server.Migrate(db); err != nil {
		logg.Fatal("AutoMigrate failed", zap.Error(err))
	}

	ctx := context.Background()
	catalog := ingredient.NewService(ingredient.NewRepository(db), nil)

	empty, err := catalog.Empty(ctx)
	if err != nil {
		logg.Fatal("count ingredients failed", zap.Error(err))
	}
	if !empty && !*force {
		logg.Info("ingredient catalog already populated, skipping (use -force to import anyway)")
		return
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		logg.Fatal("read fixture failed", zap.String("file", *file), zap.Error(err))
	}
	var items []ingredient.ImportItem
	if err := json.Unmarshal(raw, &items); err != nil {
		logg.Fatal("parse fixture failed", zap.String("file", *file), zap.Error(err))
	}

	n, err := catalog.Import(ctx, items)
	if err != nil {
		logg.Fatal("import failed", zap.Error(err))
	}
	logg.Info("ingredients imported", zap.Int("count", n), zap.String("file", *file))
}
