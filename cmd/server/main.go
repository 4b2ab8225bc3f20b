package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "orders-etl-service/docs" // swagger spec registration

	"orders-etl-service/internal/config"
	"orders-etl-service/internal/database"
	"orders-etl-service/internal/handlers"
)

// @title Brazilian Orders ETL API
// @version 1.0
// @description Dimensional ETL and analytics service for e-commerce marketplace extracts.
// @BasePath /api
func main() {
	config.Load()

	if err := os.MkdirAll(config.UploadDir(), 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	database.ConnectDatabase()

	router := gin.Default()
	handlers.RegisterRoutes(router)
	router.GET("/api/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("Starting server on port %s", config.Port())
	if err := router.Run(":" + config.Port()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
