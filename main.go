package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"quehaypahacer/internal/config"
	"quehaypahacer/internal/console"
	"quehaypahacer/internal/models"
	"quehaypahacer/internal/repositories"
	"quehaypahacer/internal/services"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	// --- Open the store ---
	// Failing to open the database is the only fatal error in the
	// application; everything after this point is recoverable.
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Fatal("failed to create database directory", zap.Error(err))
		}
	}
	db, err := openDatabase(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	logger.Info("database ready", zap.String("path", cfg.DBPath))

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	eventRepo := repositories.NewGORMEventRepository(db)
	favoriteRepo := repositories.NewGORMFavoriteRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, favoriteRepo, logger)
	eventService := services.NewEventService(eventRepo, userRepo, logger)
	favoriteService := services.NewFavoriteService(favoriteRepo, eventRepo, logger)
	preferenceService := services.NewPreferenceService(userRepo, eventRepo, logger)

	// --- Run the console ---
	ui := console.New(authService, eventService, favoriteService, preferenceService, os.Stdin, os.Stdout)
	ui.Run()
}

// openDatabase opens the sqlite store and idempotently migrates the four
// relations. TranslateError turns driver constraint violations into
// gorm's portable sentinel errors; the gorm logger stays silent so SQL
// traces never mix into the menu output.
func openDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Favorite{},
		&models.Attendance{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return db, nil
}
