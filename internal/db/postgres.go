package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func ConnectPostgres(ctx context.Context, dsn string, log *logrus.Logger) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info("Connected to PostgreSQL")

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// initSchema creates the tables on first boot.
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	usersSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, usersSQL); err != nil {
		return err
	}

	plansSQL := `
		CREATE TABLE IF NOT EXISTS business_plans (
			id SERIAL PRIMARY KEY,
			type VARCHAR(50) NOT NULL,
			seats INTEGER NOT NULL,
			atv INTEGER NOT NULL,
			hours VARCHAR(50) NOT NULL,
			area VARCHAR(50) NOT NULL,
			turnover DOUBLE PRECISION NOT NULL,
			daily_guests INTEGER NOT NULL,
			monthly_sales INTEGER NOT NULL,
			cogs_rate DOUBLE PRECISION NOT NULL,
			cogs INTEGER NOT NULL,
			gross_profit INTEGER NOT NULL,
			labor_cost INTEGER NOT NULL,
			fixed_cost INTEGER NOT NULL,
			op_income INTEGER NOT NULL,
			payback_months INTEGER NOT NULL,
			concept TEXT,
			action TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, plansSQL); err != nil {
		return err
	}

	return nil
}
