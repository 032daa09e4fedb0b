package main

import (
	"context"
	"os"
	"time"

	"github.com/Ito-Kosuke-10/omise-ai/internal/auth"
	"github.com/Ito-Kosuke-10/omise-ai/internal/config"
	"github.com/Ito-Kosuke-10/omise-ai/internal/db"
	"github.com/Ito-Kosuke-10/omise-ai/internal/menu"
	"github.com/Ito-Kosuke-10/omise-ai/internal/plan"
	"github.com/Ito-Kosuke-10/omise-ai/internal/router"
	"github.com/Ito-Kosuke-10/omise-ai/internal/subsidy"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, level.String())
	}
	logger.SetLevel(level)

	// ───────────────────────── DB ─────────────────────────
	ctx := context.Background()
	pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatalf("Postgres connection failed: %v", err)
	}
	defer pool.Close()

	// ───────────────────────── AUTH ─────────────────────────
	tokens, err := auth.NewTokenManager(
		cfg.JWTSecret,
		cfg.JWTAlgorithm,
		time.Duration(cfg.JWTExpiresIn)*time.Second,
	)
	if err != nil {
		logger.Fatalf("Token manager init failed: %v", err)
	}

	userRepo := auth.NewPostgresUserRepository(pool)
	authService := auth.NewService(userRepo, logger)
	authHandler := auth.NewHandler(authService, tokens, logger)

	// ───────────────────────── PLANS ─────────────────────────
	planRepo := plan.NewPostgresRepository(pool)
	planService := plan.NewService(planRepo, logger)
	planHandler := plan.NewHandler(planService, logger)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Deps{
		FrontendURL: cfg.FrontendURL,
		Tokens:      tokens,
		Auth:        authHandler,
		Plans:       planHandler,
		Menus:       menu.NewHandler(),
		Subsidies:   subsidy.NewHandler(),
	})

	// ───────────────────────── START ─────────────────────────
	logger.Infof("API running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
