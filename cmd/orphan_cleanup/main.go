package main

import (
	"log"

	"go.uber.org/zap"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/logger"
)

// Removes membership and ingredient-line rows whose recipe or user is gone.
// Only needed where foreign-key cascades were not enforced (e.g. SQLite
// files written without the foreign_keys pragma).
var cleanups = []struct {
	table string
	query string
}{
	{"recipe_ingredients", `DELETE FROM recipe_ingredients WHERE recipe_id NOT IN (SELECT id FROM recipes)`},
	{"cart_entries", `DELETE FROM cart_entries WHERE recipe_id NOT IN (SELECT id FROM recipes) OR user_id NOT IN (SELECT id FROM users)`},
	{"favorite_entries", `DELETE FROM favorite_entries WHERE recipe_id NOT IN (SELECT id FROM recipes) OR user_id NOT IN (SELECT id FROM users)`},
	{"subscriptions", `DELETE FROM subscriptions WHERE follower_id NOT IN (SELECT id FROM users) OR followee_id NOT IN (SELECT id FROM users)`},
}

func main() {
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

	fields := make([]zap.Field, 0, len(cleanups))
	for _, c := range cleanups {
		res := db.Exec(c.query)
		if res.Error != nil {
			logg.Fatal("cleanup failed", zap.String("table", c.table), zap.Error(res.Error))
		}
		fields = append(fields, zap.Int64(c.table, res.RowsAffected))
	}
	logg.Info("orphan cleanup completed", fields...)
}
