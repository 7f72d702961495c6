package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hiddengems/internal/models/db_models"
	"hiddengems/internal/models/request_models"
	"hiddengems/pkg/memcache"
	"hiddengems/pkg/utils"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*db_models.User

	banned     *bool
	banReason  string
	banExpires *time.Time
}

func newFakeUserRepo(users ...*db_models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uuid.UUID]*db_models.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user *db_models.User) error {
	user.ID = uuid.New()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	f.users[id].PasswordHash = passwordHash
	return nil
}

func (f *fakeUserRepo) SetBan(ctx context.Context, id uuid.UUID, banned bool, reason string, expires *time.Time) error {
	f.banned = &banned
	f.banReason = reason
	f.banExpires = expires
	if u, ok := f.users[id]; ok {
		u.Banned = banned
		u.BanReason = reason
		u.BanExpires = expires
	}
	return nil
}

func testUser(t *testing.T, email, username, password string) *db_models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &db_models.User{
		BaseModel:    db_models.BaseModel{ID: uuid.New()},
		Name:         "Test User",
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Role:         "user",
	}
}

func newAccountService(repo *fakeUserRepo) AccountServiceInterface {
	return NewAccountService(repo, memcache.NewResetTokens(), zap.NewNop())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	existing := testUser(t, "taken@example.com", "existing", "secret123")
	svc := newAccountService(newFakeUserRepo(existing))

	_, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name:     "New User",
		Username: "newbie",
		Email:    "Taken@Example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	existing := testUser(t, "a@example.com", "taken", "secret123")
	svc := newAccountService(newFakeUserRepo(existing))

	_, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name:     "New User",
		Username: "taken",
		Email:    "b@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, utils.ErrUsernameTaken)
}

func TestRegister_IssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAccountService(repo)

	resp, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Name:     "New User",
		Username: "newbie",
		Email:    "New@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user", resp.User.Role)
	// Email is normalized before storage.
	assert.Equal(t, "new@example.com", resp.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	user := testUser(t, "a@example.com", "alpha", "secret123")
	svc := newAccountService(newFakeUserRepo(user))

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "a@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newAccountService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogin_BannedAccount(t *testing.T) {
	user := testUser(t, "banned@example.com", "banned", "secret123")
	user.Banned = true
	user.BanReason = "spam"
	svc := newAccountService(newFakeUserRepo(user))

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "banned@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, utils.ErrAccountBanned)
}

func TestLogin_ExpiredBanIsLifted(t *testing.T) {
	user := testUser(t, "reformed@example.com", "reformed", "secret123")
	user.Banned = true
	expired := time.Now().Add(-time.Hour)
	user.BanExpires = &expired
	svc := newAccountService(newFakeUserRepo(user))

	resp, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "reformed@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestForgotResetPassword_Roundtrip(t *testing.T) {
	user := testUser(t, "a@example.com", "alpha", "old-password")
	repo := newFakeUserRepo(user)
	svc := newAccountService(repo)

	token, err := svc.ForgotPassword(context.Background(), "a@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, svc.ResetPassword(context.Background(), token, "new-password"))
	assert.NoError(t, utils.ComparePasswords(user.PasswordHash, "new-password"))

	// Tokens are single use.
	err = svc.ResetPassword(context.Background(), token, "another-password")
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	svc := newAccountService(newFakeUserRepo())

	_, err := svc.ForgotPassword(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestBanUser_RequiresReason(t *testing.T) {
	svc := newAccountService(newFakeUserRepo())

	err := svc.BanUser(context.Background(), uuid.NewString(), "  ", nil)
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestBanAndUnbanUser(t *testing.T) {
	user := testUser(t, "a@example.com", "alpha", "secret123")
	repo := newFakeUserRepo(user)
	svc := newAccountService(repo)

	expires := time.Now().Add(24 * time.Hour)
	require.NoError(t, svc.BanUser(context.Background(), user.ID.String(), "spam", &expires))
	assert.True(t, user.Banned)
	assert.Equal(t, "spam", user.BanReason)
	require.NotNil(t, user.BanExpires)

	require.NoError(t, svc.UnbanUser(context.Background(), user.ID.String()))
	assert.False(t, user.Banned)
	assert.Empty(t, user.BanReason)
	assert.Nil(t, user.BanExpires)
}
