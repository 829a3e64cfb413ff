package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"rocketry-shop/admin"
	"rocketry-shop/catalog"
	"rocketry-shop/config"
	_ "rocketry-shop/docs"
	"rocketry-shop/middleware"
	"rocketry-shop/models"
	"rocketry-shop/routes"
	"rocketry-shop/services"
	"rocketry-shop/session"
)

// @title Rocketry Shop API
// @version 1.0
// @description Storefront API for an educational model-rocketry retailer.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectStorage()
	defer config.CloseStorage()

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	mailer, err := models.NewEmailService()
	if err != nil {
		log.Println("Mailer disabled:", err)
		mailer = nil
	}

	deps := routes.Deps{
		Registry: services.NewRegistry(config.Store, session.DemoTables()),
		Catalog:  catalog.New(),
		Admin:    admin.NewStore(config.Store),
		Mailer:   mailer,
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, deps)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
