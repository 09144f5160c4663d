package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"alfredoptarigan/resume-analyzer/internal/logger"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      logger.Config
	Upload   UploadConfig
	Scoring  ScoringConfig

	// EnvFileLoaded reports whether a .env file was read. Load runs before the
	// logger is configured, so the caller logs it.
	EnvFileLoaded bool
}

type ServerConfig struct {
	Port             string
	Env              string
	CORSAllowOrigins string
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type UploadConfig struct {
	MaxFileSize int64
}

type ScoringConfig struct {
	VocabularyPath string
	MatchMode      string
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	envErr := godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:             getEnv("PORT", "5000"),
			Env:              getEnv("ENV", "development"),
			CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Enabled:  getEnvAsBool("DB_ENABLED", false),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "resume_analyzer"),
		},
		Log: logger.Config{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "pretty"),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Scoring: ScoringConfig{
			VocabularyPath: getEnv("VOCABULARY_PATH", ""),
			MatchMode:      strings.ToLower(getEnv("MATCH_MODE", "substring")),
		},
	}

	cfg.EnvFileLoaded = envErr == nil

	return cfg
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
