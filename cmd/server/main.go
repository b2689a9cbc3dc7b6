package main

import (
	"Go-Pantry-Tracker/cmd/config"
	migration "Go-Pantry-Tracker/cmd/database/migrate"
	"Go-Pantry-Tracker/internal/utils"
	"Go-Pantry-Tracker/pkg/storage"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func main() {
	utils.LoadConfig()
	ctx := context.Background()

	var db *gorm.DB
	if utils.GetConfig("STORAGE_DRIVER") == storage.DriverPostgres || utils.GetConfig("DB_HOST") != "" {
		conn, err := config.ConnectDB()
		if err != nil {
			log.Fatalf("Failed to connect database: %v", err)
		}
		if err := migration.Migrate(conn); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		db = conn
	}

	app, pantry, err := config.NewApp(ctx, db)
	if err != nil {
		log.Fatalf("Failed to build app: %v", err)
	}

	go func() {
		if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
			log.Errorf("Server stopped: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Errorf("Server shutdown: %v", err)
	}
	pantry.Close()
}
