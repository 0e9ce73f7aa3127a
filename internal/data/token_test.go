package data

import (
	"os"
	"testing"
	"time"

	v1 "CredLane/api/v1"
	"CredLane/internal/biz"
	"CredLane/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/durationpb"
)

func newTestTokenService(t *testing.T, secret string, expires time.Duration) *JWTTokenService {
	t.Helper()
	svc, err := NewTokenService(&conf.Auth{
		Jwt: &conf.Auth_JWT{
			Secret:  secret,
			Expires: durationpb.New(expires),
		},
	}, log.NewStdLogger(os.Stdout))
	require.NoError(t, err)
	return svc
}

func testTokenUser() *biz.User {
	return &biz.User{
		ID:    "user-1",
		Email: "test@example.com",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "test-secret-key", time.Hour)

	token, err := svc.CreateToken(testTokenUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestTokenExpired(t *testing.T) {
	svc := newTestTokenService(t, "test-secret-key", time.Hour)

	token, err := svc.CreateToken(testTokenUser())
	require.NoError(t, err)

	// move the verification clock past expiry
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = svc.ValidateToken(token)
	assert.True(t, v1.IsTokenExpired(err))
	assert.False(t, v1.IsInvalidToken(err), "expiry must be reported distinctly from forgery")
}

func TestTokenWrongSecret(t *testing.T) {
	mint := newTestTokenService(t, "secret-one", time.Hour)
	verify := newTestTokenService(t, "secret-two", time.Hour)

	token, err := mint.CreateToken(testTokenUser())
	require.NoError(t, err)

	_, err = verify.ValidateToken(token)
	assert.True(t, v1.IsInvalidToken(err))
}

func TestTokenGarbage(t *testing.T) {
	svc := newTestTokenService(t, "test-secret-key", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.ValidateToken(tok)
		assert.True(t, v1.IsInvalidToken(err), "token %q", tok)
	}
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := NewTokenService(&conf.Auth{Jwt: &conf.Auth_JWT{}}, log.NewStdLogger(os.Stdout))
	assert.Error(t, err)
}
