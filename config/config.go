// Package config loads seeder settings from the environment (and .env when present).
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"pokedeck-seed/utils"

	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"
)

const DefaultArtworkBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork"

// DefaultDataset is the bundled card dataset.
var DefaultDataset = utils.GetDataPath("pokemon.json")

type Config struct {
	DatabaseURL    string
	DBLogLevel     string
	Dataset        string
	ArtworkBaseURL string
	// ReseedInterval of zero means seed once and exit.
	ReseedInterval time.Duration
	R2             R2Config
}

// R2Config is only needed when Dataset is an r2:// key.
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
}

// Load reads configuration from the environment with defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	interval, err := getDurationEnv("RESEED_INTERVAL", 0)
	if err != nil {
		return nil, err
	}

	return &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBLogLevel:     strings.ToLower(getEnv("DB_LOG_LEVEL", "warn")),
		Dataset:        getEnv("SEED_DATASET", DefaultDataset),
		ArtworkBaseURL: strings.TrimRight(getEnv("ARTWORK_BASE_URL", DefaultArtworkBaseURL), "/"),
		ReseedInterval: interval,
		R2: R2Config{
			AccountID:       os.Getenv("CLOUDFLARE_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			AccessKeySecret: os.Getenv("R2_ACCESS_KEY_SECRET"),
			Bucket:          os.Getenv("R2_BUCKET_NAME"),
		},
	}, nil
}

// UsesR2 reports whether the dataset has to be fetched from the bucket.
func (c *Config) UsesR2() bool {
	return strings.HasPrefix(c.Dataset, "r2://")
}

// Validate returns every problem at once, or nil.
func (c *Config) Validate() error {
	var errs []error

	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if _, ok := gormLogLevels[c.DBLogLevel]; !ok {
		errs = append(errs, fmt.Errorf("DB_LOG_LEVEL must be one of silent, error, warn, info, got '%s'", c.DBLogLevel))
	}
	if c.Dataset == "" {
		errs = append(errs, errors.New("SEED_DATASET is required"))
	}
	if c.ArtworkBaseURL == "" {
		errs = append(errs, errors.New("ARTWORK_BASE_URL must not be empty"))
	}
	if c.ReseedInterval < 0 {
		errs = append(errs, errors.New("RESEED_INTERVAL must not be negative"))
	}

	if c.UsesR2() {
		if c.R2.AccountID == "" {
			errs = append(errs, errors.New("CLOUDFLARE_ACCOUNT_ID is required for r2:// datasets"))
		}
		if c.R2.AccessKeyID == "" || c.R2.AccessKeySecret == "" {
			errs = append(errs, errors.New("R2_ACCESS_KEY_ID and R2_ACCESS_KEY_SECRET are required for r2:// datasets"))
		}
		if c.R2.Bucket == "" {
			errs = append(errs, errors.New("R2_BUCKET_NAME is required for r2:// datasets"))
		}
	}

	return errors.Join(errs...)
}

var gormLogLevels = map[string]logger.LogLevel{
	"silent": logger.Silent,
	"error":  logger.Error,
	"warn":   logger.Warn,
	"info":   logger.Info,
}

// GormLogger builds the SQL logger for the configured level.
func (c *Config) GormLogger() logger.Interface {
	level, ok := gormLogLevels[c.DBLogLevel]
	if !ok {
		level = logger.Warn
	}
	return logger.Default.LogMode(level)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, v, err)
	}
	return d, nil
}
