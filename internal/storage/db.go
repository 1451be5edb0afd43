package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func InitDB(databaseUrl string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pgxCfg, err := pgxpool.ParseConfig(databaseUrl)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	pgxCfg.MaxConns = 5
	pgxCfg.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// An unreachable backend at startup is not fatal: the pool reconnects
	// lazily and reads answer 503 until it comes back.
	if err := pool.Ping(ctx); err != nil {
		slog.Warn("database unreachable at startup, continuing degraded", "err", err)
		return pool, nil
	}

	slog.Info("connected to PostgreSQL")
	return pool, nil
}
