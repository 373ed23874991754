package main

import (
	"fmt"
	"log"

	"github.com/SeokGyeon/1-HowDoILook-1team/internal/config"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/database"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/routes"
	"github.com/SeokGyeon/1-HowDoILook-1team/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log)

	gin.SetMode(cfg.Server.Mode)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	router := routes.Setup(db, cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
