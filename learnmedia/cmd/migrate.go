// Standalone schema migration: connects and auto-migrates, then exits.
package main

import (
	"context"
	"os"
	"time"

	"learnmedia/learnmedia/config"
	"learnmedia/learnmedia/sources/psql"
	"learnmedia/learnmedia/utils/logging"

	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("migration failed", zap.Error(err))
		os.Exit(1)
	}
	db.Close()
	logging.AppLogger.Info("migration complete", zap.String("database", cfg.DBName))
}
