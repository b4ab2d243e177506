package main

import (
	"log"

	"github.com/apan-dev/apan-server/db"
	"github.com/apan-dev/apan-server/internal/auth"
	"github.com/apan-dev/apan-server/internal/config"
	"github.com/apan-dev/apan-server/internal/handlers"
	"github.com/apan-dev/apan-server/internal/mailer"
	"github.com/apan-dev/apan-server/internal/router"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	auth.Init(cfg.JWTSecret)

	if err := db.ConnectDatabase(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	userHandler := handlers.NewUserHandler(mailer.New(cfg))

	r := router.NewRouter(userHandler)

	log.Printf("Listening on :%s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
