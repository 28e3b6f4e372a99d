package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/budgetfly/budgetfly-api/config"
	"github.com/budgetfly/budgetfly-api/pkg/logging"
	"github.com/budgetfly/budgetfly-api/routes"
	"github.com/budgetfly/budgetfly-api/storage"
)

func main() {
	logging.Setup()

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	client, db, err := config.InitDB()
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	store := storage.NewMongo(client, db, config.StoreTimeout())
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			slog.Warn("Store teardown failed", "error", err)
		}
	}()

	slog.Info("Database connected", "db", db.Name())

	router := routes.NewRouter(store)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("Server starting", "port", port)
	if err := router.Run(":" + port); err != nil {
		slog.Error("Server stopped", "error", err)
	}
}
