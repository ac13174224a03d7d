package db

import (
	"context"
	"time"

	"studydesk/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens the audit database pool. Any failure is fatal: the server is
// only pointed at a database when the audit trail is wanted.
func Connect(dsn string) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	if err := db.Ping(ctx); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("database connected")
	return db
}
