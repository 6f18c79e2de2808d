// AngelaMos | 2026
// repository_test.go

package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/casetrail/internal/core"
	"github.com/carterperez-dev/templates/casetrail/internal/testutil"
)

func newUser(email string) *User {
	return &User{
		Email:            email,
		PasswordHash:     "hash",
		FirstName:        "Ada",
		LastName:         "Lovelace",
		SubscriptionTier: TierBasic,
		CreatedAt:        time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewRepository(db.DB)
	ctx := context.Background()

	u := newUser("a@x.com")
	require.NoError(t, repo.Create(ctx, u))
	assert.Positive(t, u.ID)

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "Ada Lovelace", got.FullName())
	assert.Equal(t, TierBasic, got.SubscriptionTier)
	assert.True(t, u.CreatedAt.Equal(got.CreatedAt))

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	exists, err := repo.ExistsByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_NotFound(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewRepository(db.DB)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, core.ErrNotFound)

	err = repo.UpdatePassword(ctx, 42, "hash")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRepository_DuplicateEmail(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewRepository(db.DB)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("a@x.com")))

	err := repo.Create(ctx, newUser("a@x.com"))
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
	assert.Equal(t, 1, testutil.CountRows(t, db, "users"))
}

func TestRepository_UpdatePassword(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewRepository(db.DB)
	ctx := context.Background()

	u := newUser("a@x.com")
	require.NoError(t, repo.Create(ctx, u))
	require.NoError(t, repo.UpdatePassword(ctx, u.ID, "new-hash"))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", got.PasswordHash)
}

func TestRepository_PostgresUniqueViolation(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close() //nolint:errcheck

	repo := NewRepository(sqlx.NewDb(mockDB, core.DriverPostgres))

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("a@x.com", "hash", "Ada", "Lovelace", TierBasic, sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err = repo.Create(context.Background(), newUser("a@x.com"))
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_PostgresPlaceholders(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close() //nolint:errcheck

	repo := NewRepository(sqlx.NewDb(mockDB, core.DriverPostgres))

	mock.ExpectQuery(`FROM users WHERE email = \$1`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "password_hash", "first_name", "last_name",
			"subscription_tier", "created_at",
		}).AddRow(7, "a@x.com", "hash", "Ada", "Lovelace", TierBasic, time.Now()))

	got, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
