package cmd

import (
	"fmt"

	"config-manager/core/config"
	"config-manager/core/database"
	"config-manager/core/logger"
	"config-manager/core/store"
	"config-manager/feature/snapshot"

	"go.uber.org/zap"
)

// loadConfig loads the application configuration and applies the --log-level
// override.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

// newLogger builds the logger from configuration.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// openService connects to the target database and wires the snapshot service.
// The database flag overrides the configured database name.
func openService(databaseName string) (*snapshot.Service, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	l, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	if databaseName != "" {
		cfg.Database.Name = databaseName
	}
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return snapshot.NewService(store.NewGormStore(db), l), l, nil
}
