// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/casetrail/internal/auth"
	"github.com/carterperez-dev/templates/casetrail/internal/core"
	"github.com/carterperez-dev/templates/casetrail/internal/testutil"
)

func TestService_CreateNormalizesEmail(t *testing.T) {
	db := testutil.NewDatabase(t)
	svc := NewService(NewRepository(db.DB))
	ctx := context.Background()

	info, err := svc.Create(ctx, auth.NewUser{
		Email:        "  A@X.com ",
		PasswordHash: "hash",
		FirstName:    " Ada ",
	})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", info.Email)
	assert.Equal(t, "Ada", info.FirstName)
	assert.Equal(t, TierBasic, info.Tier)

	found, err := svc.GetByEmail(ctx, "A@x.COM")
	require.NoError(t, err)
	assert.Equal(t, info.ID, found.ID)

	exists, err := svc.EmailExists(ctx, " a@X.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestService_GetMe(t *testing.T) {
	db := testutil.NewDatabase(t)
	svc := NewService(NewRepository(db.DB))
	ctx := context.Background()

	_, err := svc.GetMe(ctx, core.Anonymous())
	assert.ErrorIs(t, err, core.ErrUnauthorized)

	info, err := svc.Create(ctx, auth.NewUser{Email: "a@x.com", PasswordHash: "hash"})
	require.NoError(t, err)

	me, err := svc.GetMe(ctx, core.Principal{UserID: info.ID})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", me.Email)

	_, err = svc.GetMe(ctx, core.Principal{UserID: info.ID + 100})
	assert.ErrorIs(t, err, core.ErrNotFound)
}
