package service

import (
	"context"
	"os"
	"testing"

	v1 "CredLane/api/v1"
	"CredLane/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedTokens returns canned results for use case wiring.
type fixedTokens struct{}

func (fixedTokens) CreateToken(user *biz.User) (string, error) {
	return "token-for-" + user.ID, nil
}

func (fixedTokens) ValidateToken(token string) (*biz.TokenClaims, error) {
	if token != "token-for-user-1" {
		return nil, v1.ErrorInvalidToken("invalid token")
	}
	return &biz.TokenClaims{UserID: "user-1", Email: "test@example.com"}, nil
}

type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "h:" + plain, nil }
func (plainHasher) Verify(plain, hash string) bool    { return hash == "h:"+plain }

type mapRepo struct {
	users map[string]*biz.User
}

func (r *mapRepo) FindByID(_ context.Context, id string) (*biz.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, v1.ErrorUserNotFound("user not found")
}

func (r *mapRepo) FindByEmail(_ context.Context, email string) (*biz.User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, v1.ErrorUserNotFound("user not found")
}

func (r *mapRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func (r *mapRepo) Create(_ context.Context, user *biz.User) error {
	if _, ok := r.users[user.Email]; ok {
		return v1.ErrorUserAlreadyExists("user with this email already exists")
	}
	r.users[user.Email] = user
	return nil
}

func (r *mapRepo) Update(_ context.Context, user *biz.User) error {
	r.users[user.Email] = user
	return nil
}

func newTestService() (*AuthService, *mapRepo) {
	repo := &mapRepo{users: map[string]*biz.User{}}
	logger := log.NewStdLogger(os.Stdout)
	uc := biz.NewAuthUsecase(repo, plainHasher{}, fixedTokens{}, logger)
	return NewAuthService(uc, logger), repo
}

func seedUser(repo *mapRepo) {
	u := biz.NewUser("test@example.com", "h:correct-password", nil)
	u.ID = "user-1"
	repo.users[u.Email] = u
}

func TestServiceRegister(t *testing.T) {
	svc, _ := newTestService()

	reply, err := svc.Register(context.Background(), &v1.RegisterRequest{
		Email:    "new@example.com",
		Password: "passw0rd-12",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", reply.Email)
	assert.NotEmpty(t, reply.UserID)

	_, err = svc.Register(context.Background(), &v1.RegisterRequest{
		Email:    "new@example.com",
		Password: "passw0rd-12",
	})
	assert.True(t, v1.IsUserAlreadyExists(err))
}

func TestServiceLogin(t *testing.T) {
	svc, repo := newTestService()
	seedUser(repo)

	reply, err := svc.Login(context.Background(), &v1.LoginRequest{
		Email:    "test@example.com",
		Password: "correct-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-for-user-1", reply.Token)
	assert.Equal(t, "user-1", reply.UserID)

	_, err = svc.Login(context.Background(), &v1.LoginRequest{
		Email:    "test@example.com",
		Password: "wrong-password",
	})
	assert.True(t, v1.IsInvalidCredentials(err))
}

func TestServiceMe(t *testing.T) {
	svc, repo := newTestService()
	seedUser(repo)

	reply, err := svc.Me(context.Background(), &v1.MeRequest{Token: "token-for-user-1"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", reply.UserID)
	assert.True(t, reply.IsActive)

	_, err = svc.Me(context.Background(), &v1.MeRequest{Token: "garbage"})
	assert.True(t, v1.IsInvalidToken(err))
}

func TestServiceValidateToken(t *testing.T) {
	svc, _ := newTestService()

	reply, err := svc.ValidateToken(context.Background(), &v1.ValidateTokenRequest{Token: "token-for-user-1"})
	require.NoError(t, err)
	assert.True(t, reply.Valid)
	assert.Equal(t, "user-1", reply.UserID)

	// invalid tokens are a negative reply, never an error
	reply, err = svc.ValidateToken(context.Background(), &v1.ValidateTokenRequest{Token: "garbage"})
	require.NoError(t, err)
	assert.False(t, reply.Valid)
	assert.Empty(t, reply.UserID)
}
