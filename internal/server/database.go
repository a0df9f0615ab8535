package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elitizon/invoicepipe/gen/ent"
	"github.com/elitizon/invoicepipe/internal/common"
	repo "github.com/elitizon/invoicepipe/internal/repository"
)

// ConnectDB opens the Postgres pool and its ent client from daemon config.
func ConnectDB(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	logger.Info("db.connecting", "dsn", cfg.DSN)
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.DSN,
		MaxConns:         cfg.MaxConns,
		MinConns:         cfg.MinConns,
		MaxConnLifetime:  cfg.MaxConnLifetime,
		MaxConnIdleTime:  cfg.MaxConnIdleTime,
		DialTimeout:      cfg.DialTimeout,
		StatementTimeout: cfg.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("db.connect_failed", "error", err)
		return nil, nil, err
	}
	logger.Info("db.connected")
	return entc, pool, nil
}

// PingDB verifies the pool is responsive.
func PingDB(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger, timeout time.Duration) error {
	if err := repo.HealthCheck(ctx, pool, timeout, logger); err != nil {
		logger.Error("db.ping_failed", "error", err)
		return err
	}
	logger.Debug("db.ping_ok")
	return nil
}

// CloseDB closes the pool and the ent client.
func CloseDB(entc *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) {
	repo.Close(entc, pool, logger)
}
