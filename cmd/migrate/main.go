package main

import (
	"cashflow_system/internal/config" // Custom import path (Config)
	"cashflow_system/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus"
)

// Main entry point for migration and seeding
func main() {
	cfg := config.LoadConfig() // Load configuration
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	gdb, err := db.Setup(cfg)
	if err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
	logrus.Info("Database ready.")
}
