// Package config reads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dukerupert/larder/internal/backup"
	"github.com/dukerupert/larder/internal/push"
)

type Config struct {
	Port      string
	DBPath    string
	LogLevel  string
	LogFormat string

	JWTSecret string

	// External enrichment providers.
	ProductAPIBase  string
	CategoryAPIBase string
	CategoryAPIKey  string
	RecipeAPIBase   string
	RecipeAPIKey    string

	Push   push.Config
	Backup backup.Config
}

// Load builds the configuration from environment variables. Only the JWT
// secret is mandatory; push and backup stay disabled until configured.
func Load() (Config, error) {
	cfg := Config{
		Port:      envOr("PORT", "8080"),
		DBPath:    envOr("DB_PATH", "larder.db"),
		LogLevel:  envOr("LOG_LEVEL", "info"),
		LogFormat: envOr("LOG_FORMAT", "text"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		ProductAPIBase:  envOr("PRODUCT_API_BASE", "https://api.upcitemdb.com/prod/trial"),
		CategoryAPIBase: os.Getenv("CATEGORY_API_BASE"),
		CategoryAPIKey:  os.Getenv("CATEGORY_API_KEY"),
		RecipeAPIBase:   envOr("RECIPE_API_BASE", "https://api.spoonacular.com"),
		RecipeAPIKey:    os.Getenv("RECIPE_API_KEY"),

		Push: push.Config{
			VAPIDPublicKey:  os.Getenv("VAPID_PUBLIC_KEY"),
			VAPIDPrivateKey: os.Getenv("VAPID_PRIVATE_KEY"),
		},
		Backup: backup.Config{
			S3: backup.S3Config{
				Endpoint:  os.Getenv("BACKUP_S3_ENDPOINT"),
				Bucket:    os.Getenv("BACKUP_S3_BUCKET"),
				Region:    envOr("BACKUP_S3_REGION", "auto"),
				AccessKey: os.Getenv("BACKUP_S3_ACCESS_KEY"),
				SecretKey: os.Getenv("BACKUP_S3_SECRET_KEY"),
			},
			Passphrase: os.Getenv("BACKUP_PASSPHRASE"),
		},
	}
	cfg.Backup.DBPath = cfg.DBPath

	if v := os.Getenv("BACKUP_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse BACKUP_INTERVAL: %w", err)
		}
		cfg.Backup.Interval = d
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
