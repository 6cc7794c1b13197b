package database

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/evanshaw/cadence_backend/config"
)

// InitializeDatabase creates the application database when it does not
// exist yet, connecting through the stock 'postgres' database.
func InitializeDatabase(cfg *config.Config) error {
	name := cfg.Database.DBName
	if name == "" {
		return fmt.Errorf("no database name configured")
	}

	admin, err := open(cfg.Database, "postgres")
	if err != nil {
		return fmt.Errorf("connect as admin: %w", err)
	}
	defer admin.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var exists bool
	err = admin.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`, name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database %q: %w", name, err)
	}
	if exists {
		return nil
	}

	if _, err := admin.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(name)); err != nil {
		return fmt.Errorf("create database %q: %w", name, err)
	}
	return nil
}

// DropDatabase removes the application database entirely. Used by the
// `system reset` command; there is no undo.
func DropDatabase(cfg *config.Config) error {
	name := cfg.Database.DBName
	if name == "" {
		return fmt.Errorf("no database name configured")
	}

	admin, err := open(cfg.Database, "postgres")
	if err != nil {
		return fmt.Errorf("connect as admin: %w", err)
	}
	defer admin.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Kick out any lingering connections first, or the DROP will hang.
	_, err = admin.ExecContext(ctx,
		`SELECT pg_terminate_backend(pid) FROM pg_stat_activity WHERE datname = $1 AND pid <> pg_backend_pid()`, name)
	if err != nil {
		return fmt.Errorf("terminate connections to %q: %w", name, err)
	}

	if _, err := admin.ExecContext(ctx, "DROP DATABASE IF EXISTS "+pq.QuoteIdentifier(name)); err != nil {
		return fmt.Errorf("drop database %q: %w", name, err)
	}
	return nil
}
