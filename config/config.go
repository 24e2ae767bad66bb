package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"restaurant-menu-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultJournalDSN keeps the journal in process memory, so nothing survives a restart
const DefaultJournalDSN = "file::memory:?cache=shared"

type Config struct {
	Port       string
	GinMode    string
	AppEnv     string
	LogLevel   string
	JWTSecret  []byte
	TokenTTL   time.Duration
	JournalDSN string
}

// Load reads settings from the environment, after merging a .env file if one exists
func Load() (*Config, error) {
	_ = godotenv.Load()

	ttlHours, err := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL_HOURS must be a positive integer, got %q", os.Getenv("TOKEN_TTL_HOURS"))
	}

	return &Config{
		Port:       getEnv("PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		AppEnv:     getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		JWTSecret:  []byte(getEnv("JWT_SECRET", "restaurant_menu_dev_secret")),
		TokenTTL:   time.Duration(ttlHours) * time.Hour,
		JournalDSN: getEnv("JOURNAL_DSN", DefaultJournalDSN),
	}, nil
}

// IsProduction reports whether the app runs with production defaults
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenJournal connects the change journal database and migrates its schema
func OpenJournal(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if err := db.AutoMigrate(&models.MenuChange{}); err != nil {
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return db, nil
}
