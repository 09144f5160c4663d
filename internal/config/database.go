package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"alfredoptarigan/resume-analyzer/internal/logger"
	"alfredoptarigan/resume-analyzer/internal/models"
)

// InitDatabase opens the analysis history database and migrates its schema.
func InitDatabase(cfg *Config) (*gorm.DB, error) {
	logLevel := gormlogger.Silent
	if cfg.Server.Env == "development" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.DBName).Msg("Database connected")

	if err := db.AutoMigrate(&models.Analysis{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info().Msg("Database migration completed")

	return db, nil
}
