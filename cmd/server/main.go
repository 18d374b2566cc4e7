package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kainat67-star/construction-management-sub000/internal/api"
	"github.com/kainat67-star/construction-management-sub000/internal/config"
	"github.com/kainat67-star/construction-management-sub000/internal/repository"
	"github.com/kainat67-star/construction-management-sub000/internal/service"
	"github.com/kainat67-star/construction-management-sub000/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("auth.jwt_secret (or PLS_AUTH_JWT_SECRET) must be set")
	}

	// Pick the storage backend
	var repo repository.Repository
	switch cfg.Database.Driver {
	case "memory":
		repo = repository.NewMemoryRepository()
	default:
		db, err := config.SetupDatabase(cfg)
		if err != nil {
			log.Fatalf("Failed to set up database: %v", err)
		}
		defer db.Close()
		repo = repository.NewPostgresRepository(db)
	}

	// Create service
	logger := utils.NewLogger()
	svc := service.NewDefaultService(repo, logger)

	// Create API handler
	handler := api.NewHandler(svc)

	// Set up Gin router
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	handler.SetupRoutes(router, []byte(cfg.Auth.JWTSecret))

	// Start server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("Starting server on %s", serverAddr)
	if err := http.ListenAndServe(serverAddr, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
