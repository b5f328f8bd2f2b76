package main

import (
	"flag"
	"log"

	"crm-builder-backend/internal/config"
	"crm-builder-backend/internal/database"
	"crm-builder-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	rollback := flag.Bool("rollback", false, "undo the most recent migration instead of migrating up")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DSN(), &database.Options{
		Driver:         cfg.DatabaseDriver,
		SkipMigrations: true,
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	if *rollback {
		if err := database.RollbackLast(db); err != nil {
			logrus.Fatal(err)
		}
		logrus.Info("Rolled back last migration")
		return
	}

	if err := database.Migrate(db); err != nil {
		logrus.Fatal(err)
	}
	logrus.WithField("migrations", len(database.Migrations())).Info("Schema is up to date")
}
