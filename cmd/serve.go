package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"config-manager/core/database"
	"config-manager/core/loader"
	"config-manager/core/middleware/auth"
	"config-manager/core/middleware/rayid"
	"config-manager/core/store"
	"config-manager/feature/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd starts the embedded HTTP server exposing the snapshot operations.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the configuration manager server",
	Long:  `Starts the HTTP server and exposes export, import, and validate endpoints.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := newLogger(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		// 3. Connect to Database
		// Unlike a serving cache, the snapshot endpoints are useless without
		// the target instance, so a failed connection is fatal here.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		logg.Info("Connected to target database", zap.String("database", cfg.Database.Name))

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})
		app.Use(rayid.New())
		app.Use(auth.New(cfg.Server.ApiKey))

		// 5. Register Features
		service := snapshot.NewService(store.NewGormStore(db), logg)
		mgr := loader.NewManager()
		mgr.Register(snapshot.NewFeature(service, true))
		if err := mgr.LoadAll(app, logg); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server with graceful shutdown
		go func() {
			logg.Info("Server listening", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server stopped unexpectedly", zap.Error(err))
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logg.Info("Shutting down server")
		if err := app.Shutdown(); err != nil {
			logg.Error("Shutdown failed", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
