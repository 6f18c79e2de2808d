// AngelaMos | 2026
// migrate.go

package core

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Migrate applies the embedded schema migrations for the database driver.
func Migrate(ctx context.Context, db *Database) error {
	dialect, dir, err := migrationSource(db.Driver)
	if err != nil {
		return err
	}

	sub, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db.DB.DB, sub)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, res := range results {
		slog.Info("migration applied",
			"version", res.Source.Version,
			"duration", res.Duration.String(),
		)
	}

	return nil
}

func migrationSource(driver string) (database.Dialect, string, error) {
	switch driver {
	case DriverPostgres:
		return database.DialectPostgres, "migrations/postgres", nil
	case DriverSQLite:
		return database.DialectSQLite3, "migrations/sqlite", nil
	default:
		return "", "", fmt.Errorf("migrations: unsupported driver %q", driver)
	}
}
