package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const devSecret = "dev-secret-change-me"

// Config holds every externally supplied setting. All fields have
// defaults so the server boots on a developer machine with no .env.
type Config struct {
	DatabaseURL  string `envconfig:"DATABASE_URL" default:"postgres://localhost:5432/omise_ai?sslmode=disable"`
	FrontendURL  string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`
	Port         string `envconfig:"PORT" default:"8000"`
	JWTSecret    string `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
	JWTAlgorithm string `envconfig:"JWT_ALGORITHM" default:"HS256"`
	JWTExpiresIn int    `envconfig:"JWT_EXPIRES_IN" default:"86400"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load(logger *logrus.Logger) (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			if !os.IsNotExist(err) {
				logger.Warnf("Error loading .env file (but continuing): %v", err)
			}
		} else {
			logger.Info("Loaded configuration from .env file")
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == devSecret {
		logger.Warn("JWT_SECRET is not set, using the development default")
	}

	return &cfg, nil
}
