// Package database opens Postgres connections for the ent client and the
// bootstrap commands.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/evanshaw/cadence_backend/config"
)

func dsn(cfg config.DatabaseConfig, dbName string) string {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 {
		port = 5432
	}
	ssl := cfg.SSLMode
	if ssl == "" {
		ssl = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host, port, cfg.User, cfg.Password, dbName, ssl)
}

// open connects to the named database and applies pool settings, pinging
// once so misconfiguration surfaces at startup.
func open(cfg config.DatabaseConfig, dbName string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn(cfg, dbName))
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	pool := cfg.Pool
	db.SetMaxOpenConns(defaultInt(pool.MaxOpenConns, 25))
	db.SetMaxIdleConns(defaultInt(pool.MaxIdleConns, 5))
	db.SetConnMaxLifetime(time.Duration(defaultInt(pool.ConnMaxLifetimeMin, 5)) * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func defaultInt(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
