// AngelaMos | 2026
// testutil.go

// Package testutil sets up throwaway databases for package tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/casetrail/internal/config"
	"github.com/carterperez-dev/templates/casetrail/internal/core"
)

var dbSeq atomic.Int64

// NewDatabase returns a migrated in-memory SQLite database that is closed
// when the test finishes.
func NewDatabase(t *testing.T) *core.Database {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	url := fmt.Sprintf(
		"file:%s_%d?mode=memory&cache=shared",
		name,
		dbSeq.Add(1),
	)

	db, err := core.NewDatabase(context.Background(), config.DatabaseConfig{
		Driver: core.DriverSQLite,
		URL:    url,
	})
	require.NoError(t, err, "open sqlite database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, core.Migrate(context.Background(), db), "migrate")

	return db
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, db *core.Database, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.DB.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}
