package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"production"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	DBHost           string        `envconfig:"DB_HOST" required:"true"`
	DBPort           int           `envconfig:"DB_PORT" default:"5432"`
	DBUser           string        `envconfig:"DB_USER" required:"true"`
	DBPassword       string        `envconfig:"DB_PASSWORD"`
	DBPasswordSecret string        `envconfig:"DB_PASSWORD_SECRET"`
	DBName           string        `envconfig:"DB_NAME" required:"true"`
	DBSSLMode        string        `envconfig:"DB_SSLMODE" default:"require"`
	DBMaxOpenConns   int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	DBMaxIdleConns   int           `envconfig:"DB_MAX_IDLE_CONNS" default:"25"`
	DBConnMaxIdle    time.Duration `envconfig:"DB_CONN_MAX_IDLE_TIME" default:"5m"`

	// Google Cloud settings
	GCPProjectID          string `envconfig:"GCP_PROJECT_ID"`
	GoogleCredentialsFile string `envconfig:"GOOGLE_CREDENTIALS_FILE"`
	PubSubPurchaseTopic   string `envconfig:"PUBSUB_PURCHASE_TOPIC"`
	PubSubEmulatorHost    string `envconfig:"PUBSUB_EMULATOR_HOST"`

	// Course image storage (S3 compatible)
	S3URL        string        `envconfig:"S3_URL"`
	S3Bucket     string        `envconfig:"S3_BUCKET"`
	S3Region     string        `envconfig:"S3_REGION" default:"us-east-1"`
	S3AccessKey  string        `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey  string        `envconfig:"S3_SECRET_KEY"`
	S3PresignTTL time.Duration `envconfig:"S3_PRESIGN_TTL" default:"15m"`
}

var (
	ErrDBPasswordMissing = errors.New("one of DB_PASSWORD or DB_PASSWORD_SECRET must be set")
	ErrInvalidSSLMode    = errors.New("DB_SSLMODE must be one of disable, require, verify-ca, verify-full")
)

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings envconfig cannot express with struct tags.
func (c *Config) Validate() error {
	if c.DBPassword == "" && c.DBPasswordSecret == "" {
		return ErrDBPasswordMissing
	}
	switch c.DBSSLMode {
	case "disable", "require", "verify-ca", "verify-full":
	default:
		return ErrInvalidSSLMode
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// PubSubEnabled reports whether purchase events should be published.
func (c *Config) PubSubEnabled() bool {
	return c.GCPProjectID != "" && c.PubSubPurchaseTopic != ""
}

// ImageSigningEnabled reports whether course images live in an object store bucket.
func (c *Config) ImageSigningEnabled() bool {
	return c.S3Bucket != ""
}
