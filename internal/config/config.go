// Package config loads the portal settings from the environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime settings for the portal backend.
type Config struct {
	AppPort             string
	Database            DatabaseConfig
	JWTSecret           string
	JWTTTL              time.Duration
	CookieName          string
	CookieSecure        bool
	CORSOrigins         string
	LatestProductsLimit int
	ActivityLogLimit    int
	BcryptCost          int
	S3                  S3Config
	RabbitMQ            RabbitMQConfig
}

// DatabaseConfig selects and tunes the GORM dialector.
type DatabaseConfig struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// S3Config points at an S3-compatible bucket. An empty Bucket disables S3.
type S3Config struct {
	Endpoint     string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	PublicRead   bool
	UsePathStyle bool
}

// RabbitMQConfig configures the activity event publisher. An empty URL disables it.
type RabbitMQConfig struct {
	URL   string
	Queue string
}

// Load reads defaults, then config.yaml (or .env) from the working directory
// when present, then environment variables.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":3000")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=portal port=5432 sslmode=disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("COOKIE_NAME", "user_token")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("LATEST_PRODUCTS_LIMIT", 10)
	v.SetDefault("ACTIVITY_LOG_LIMIT", 50)
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_ACCESS_KEY", "")
	v.SetDefault("S3_SECRET_KEY", "")
	v.SetDefault("S3_PUBLIC_READ", true)
	v.SetDefault("S3_USE_PATH_STYLE", false)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "activity_log")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppPort: v.GetString("APP_PORT"),
		Database: DatabaseConfig{
			Driver:       strings.ToLower(v.GetString("DATABASE_DRIVER")),
			DSN:          v.GetString("DATABASE_DSN"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		},
		JWTSecret:           v.GetString("JWT_SECRET"),
		JWTTTL:              v.GetDuration("JWT_TTL"),
		CookieName:          v.GetString("COOKIE_NAME"),
		CookieSecure:        v.GetBool("COOKIE_SECURE"),
		CORSOrigins:         v.GetString("CORS_ORIGINS"),
		LatestProductsLimit: v.GetInt("LATEST_PRODUCTS_LIMIT"),
		ActivityLogLimit:    v.GetInt("ACTIVITY_LOG_LIMIT"),
		BcryptCost:          v.GetInt("BCRYPT_COST"),
		S3: S3Config{
			Endpoint:     v.GetString("S3_ENDPOINT"),
			Region:       v.GetString("S3_REGION"),
			Bucket:       v.GetString("S3_BUCKET"),
			AccessKey:    v.GetString("S3_ACCESS_KEY"),
			SecretKey:    v.GetString("S3_SECRET_KEY"),
			PublicRead:   v.GetBool("S3_PUBLIC_READ"),
			UsePathStyle: v.GetBool("S3_USE_PATH_STYLE"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:   v.GetString("RABBITMQ_URL"),
			Queue: v.GetString("RABBITMQ_QUEUE"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.JWTTTL)
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}
	if c.LatestProductsLimit <= 0 {
		return fmt.Errorf("LATEST_PRODUCTS_LIMIT must be positive, got %d", c.LatestProductsLimit)
	}
	if c.S3.Bucket != "" && (c.S3.AccessKey == "" || c.S3.SecretKey == "") {
		return errors.New("S3_ACCESS_KEY and S3_SECRET_KEY are required when S3_BUCKET is set")
	}
	return nil
}
