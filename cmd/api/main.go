package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/gatehouse/backend/internal/database"
	"github.com/gatehouse/backend/internal/di"
)

func main() {
	_ = godotenv.Load()

	app, cleanup, err := di.InitializeApplication()
	if err != nil {
		panic(err)
	}
	defer cleanup()

	app.Logger.Info("Starting Gatehouse API", "version", di.Version)

	if err := database.RunMigrations(app.DB, migrationsPath(), app.Logger); err != nil {
		app.Logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// The gate sits between the server's base middleware and every route
	// registered below; public paths pass through it untouched.
	app.Server.App().Use(app.Gate)

	app.HealthHandler.Register(app.Server.App())
	app.AuthHandler.Register(app.Server.App())
	app.PageHandler.Register(app.Server.App())

	go func() {
		if err := app.Server.Start(); err != nil {
			app.Logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := app.Server.Shutdown(); err != nil {
		app.Logger.Error("Server forced to shutdown", "error", err)
	}

	app.Logger.Info("Server stopped")
}

func migrationsPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return "migrations"
	}

	execDir := filepath.Dir(execPath)

	possiblePaths := []string{
		filepath.Join(execDir, "migrations"),
		filepath.Join(execDir, "..", "..", "migrations"),
		"migrations",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return "migrations"
}
