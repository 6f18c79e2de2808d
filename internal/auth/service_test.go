// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/casetrail/internal/core"
)

type fakeUsers struct {
	mu      sync.Mutex
	byEmail map[string]*UserInfo
	nextID  int64
	rehash  map[int64]string
	failGet error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		byEmail: make(map[string]*UserInfo),
		rehash:  make(map[int64]string),
	}
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failGet != nil {
		return nil, f.failGet
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, core.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeUsers) Create(_ context.Context, in NewUser) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.byEmail[in.Email]; ok {
		return nil, core.ErrDuplicateKey
	}
	f.nextID++
	u := &UserInfo{
		ID:           f.nextID,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: in.PasswordHash,
	}
	f.byEmail[in.Email] = u
	return u, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id int64, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.rehash[id] = hash
	return nil
}

func newTestService() (*Service, *fakeUsers, *MemorySessionStore) {
	users := newFakeUsers()
	store := NewMemorySessionStore(time.Hour)
	return NewService(users, store), users, store
}

func TestService_Register(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()

	res, err := svc.Register(ctx, RegisterRequest{
		Email:    "  A@X.com ",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.UserID)
	assert.NotEmpty(t, res.Token)

	stored := users.byEmail["a@x.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash)

	p, err := svc.ResolveSession(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.UserID, p.UserID)
}

func TestService_RegisterValidation(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name string
		req  RegisterRequest
		msg  string
	}{
		{"empty email", RegisterRequest{Email: "   ", Password: "secret1"}, "email and password are required"},
		{"empty password", RegisterRequest{Email: "a@x.com"}, "email and password are required"},
		{"short password", RegisterRequest{Email: "a@x.com", Password: "12345"}, "password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			require.ErrorIs(t, err, core.ErrInvalidInput)
			assert.Equal(t, tt.msg, core.InputMessage(err))
		})
	}

	assert.Empty(t, users.byEmail)
}

func TestService_RegisterDuplicate(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Email: "A@x.com", Password: "other-secret"})
	assert.ErrorIs(t, err, ErrUserExists)
	assert.Len(t, users.byEmail, 1)
}

func TestService_LoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, LoginRequest{Email: "a@x.com", Password: "nope"}, "")
	_, unknownUser := svc.Login(ctx, LoginRequest{Email: "b@x.com", Password: "secret1"}, "")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestService_LoginRotatesSession(t *testing.T) {
	svc, _, store := newTestService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, LoginRequest{Email: " A@X.COM", Password: "secret1"}, reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, res.UserID)
	assert.NotEqual(t, reg.Token, res.Token)

	p, err := svc.ResolveSession(ctx, reg.Token)
	require.NoError(t, err)
	assert.False(t, p.IsAuthenticated(), "previous token is revoked")
	assert.Equal(t, 1, store.Len())
}

func TestService_LoginLookupFailure(t *testing.T) {
	svc, users, _ := newTestService()
	users.failGet = errors.New("connection reset")

	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@x.com", Password: "secret1"}, "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Logout(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	res, err := svc.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	svc.Logout(ctx, res.Token)
	svc.Logout(ctx, res.Token)
	svc.Logout(ctx, "")

	p, err := svc.ResolveSession(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, core.Anonymous(), p)
}

func TestService_ResolveUnknownToken(t *testing.T) {
	svc, _, _ := newTestService()

	p, err := svc.ResolveSession(context.Background(), "made-up")
	require.NoError(t, err)
	assert.False(t, p.IsAuthenticated())
}
