package biz

import (
	"context"
	"os"
	"testing"

	"CredLane/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_Disabled(t *testing.T) {
	repo := newMemoryRepo()
	s := NewSeeder(repo, fakeHasher{}, log.NewStdLogger(os.Stdout))

	err := s.Seed(context.Background(), &conf.Auth_Seed{Enabled: false})
	require.NoError(t, err)
	assert.Empty(t, repo.byEmail)
}

func TestSeed_CreatesAdminOnce(t *testing.T) {
	repo := newMemoryRepo()
	s := NewSeeder(repo, fakeHasher{}, log.NewStdLogger(os.Stdout))

	cfg := &conf.Auth_Seed{
		Enabled:     true,
		Email:       "Admin@Example.com",
		Password:    "admin-password",
		DisplayName: "Administrator",
	}

	require.NoError(t, s.Seed(context.Background(), cfg))
	u, err := repo.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hashed:admin-password", u.PasswordHash)
	assert.True(t, u.IsActive)

	// second run is a no-op
	require.NoError(t, s.Seed(context.Background(), cfg))
	assert.Len(t, repo.byEmail, 1)
}
