package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"tienda-hogar/config"
	_ "tienda-hogar/docs"
	"tienda-hogar/middleware"
	"tienda-hogar/repositories"
	"tienda-hogar/routes"
	"tienda-hogar/session"
	"tienda-hogar/utils"
)

// @title Tienda Hogar API
// @version 1.0
// @description Storefront and admin API for a single-store home-goods shop
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	cfg := config.LoadConfig()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if cfg.AdminHash == "" {
		hash, err := utils.HashPassword(cfg.AdminPassword)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		cfg.AdminHash = hash
		log.Println("Warning: ADMIN_PASSWORD_HASH not set, hashed ADMIN_PASSWORD at startup")
	}

	var store repositories.ProductStore
	if cfg.StoreDriver == "postgres" {
		pool, err := config.ConnectDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect database: %v", err)
		}
		defer pool.Close()
		store = repositories.NewPostgresProductStore(pool)
	} else {
		store = repositories.NewJSONProductStore(cfg.DataFile)
	}

	cache := config.NewRedisClient(cfg)
	if cache != nil {
		defer cache.Close()
	}

	if err := os.MkdirAll(cfg.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	sessions := session.NewManager([]byte(cfg.SessionSecret), cfg.SessionName, cfg.SessionMaxAge)

	router := gin.Default()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, cfg, store, cache, sessions)

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", cfg.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
