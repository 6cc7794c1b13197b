package database

import (
	"context"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/evanshaw/cadence_backend/config"
	"github.com/evanshaw/cadence_backend/internal/repo"
)

// NewEntClient opens the application database and wraps it in the
// generated ent client.
func NewEntClient(cfg config.DatabaseConfig) (*repo.Client, error) {
	db, err := open(cfg, cfg.DBName)
	if err != nil {
		return nil, err
	}
	return repo.NewClient(repo.Driver(entsql.OpenDB(dialect.Postgres, db))), nil
}

// MigrateEnt applies the ent schema to the database.
func MigrateEnt(ctx context.Context, client *repo.Client) error {
	return client.Schema.Create(ctx)
}
