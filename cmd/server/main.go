package main

import (
	"log"

	"crm-builder-backend/internal/api/routes"
	"crm-builder-backend/internal/config"
	"crm-builder-backend/internal/database"
	"crm-builder-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "crm-builder-backend/docs" // This is needed for swag
)

//	@title			CRM Builder Backend API
//	@version		1.0
//	@description	Backend API for the CRM builder: tenants, provisioned CRM apps, dynamic modules, fields, views and records.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DSN(), &database.Options{
		Driver:       cfg.DatabaseDriver,
		MaxOpenConns: cfg.DatabaseMaxOpenConns,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.WithFields(logrus.Fields{
		"port":        port,
		"driver":      cfg.DatabaseDriver,
		"environment": cfg.Environment,
		"validation":  cfg.RecordValidation,
	}).Info("Starting server")
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
