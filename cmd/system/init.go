package system

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanshaw/cadence_backend/pkg/database"
)

// NewInitCommand creates the application database on a fresh Postgres
// instance. Safe to re-run; it is a no-op when the database exists.
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the application database if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			fmt.Println("Initializing database...")
			if err := database.InitializeDatabase(cfg); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			fmt.Println("Database initialized successfully.")
			return nil
		},
	}
}
