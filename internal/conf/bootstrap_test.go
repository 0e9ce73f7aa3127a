package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewBootstrap_Defaults(t *testing.T) {
	path := writeConfig(t, `
data:
  database:
    source: user:pass@tcp(localhost:3306)/credlane
auth:
  jwt:
    secret: test-secret
`)

	bc, err := NewBootstrap(path)
	require.NoError(t, err)

	assert.Equal(t, ":8000", bc.Server.Http.Addr)
	assert.Equal(t, "mysql", bc.Data.Database.Driver)
	assert.Equal(t, time.Hour, bc.Auth.Jwt.Expires.AsDuration())
	assert.Equal(t, 30*time.Second, bc.Auth.TokenCache.Ttl.AsDuration())
	assert.Equal(t, uint32(10000), bc.Auth.TokenCache.MaxCapacity)
	assert.False(t, bc.Auth.Seed.Enabled)
	assert.Equal(t, "info", bc.Log.Level)
}

func TestNewBootstrap_MissingRequired(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
`)

	_, err := NewBootstrap(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data.database.source")
	assert.Contains(t, err.Error(), "auth.jwt.secret")
}

func TestNewBootstrap_EnvOverride(t *testing.T) {
	t.Setenv("MYSQL_DSN", "env:dsn@tcp(db:3306)/credlane")
	t.Setenv("JWT_SECRET", "env-secret")

	path := writeConfig(t, `
server:
  http:
    addr: ":8080"
`)

	bc, err := NewBootstrap(path)
	require.NoError(t, err)
	assert.Equal(t, "env:dsn@tcp(db:3306)/credlane", bc.Data.Database.Source)
	assert.Equal(t, "env-secret", bc.Auth.Jwt.Secret)
	assert.Equal(t, ":8080", bc.Server.Http.Addr)
}

func TestNewBootstrap_SeedRequiresPassword(t *testing.T) {
	path := writeConfig(t, `
data:
  database:
    source: user:pass@tcp(localhost:3306)/credlane
auth:
  jwt:
    secret: test-secret
  seed:
    enabled: true
`)

	_, err := NewBootstrap(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.seed.password")
}

func TestNewBootstrap_MissingFile(t *testing.T) {
	_, err := NewBootstrap("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestNewGatewayBootstrap_Defaults(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
`)

	bc, err := NewGatewayBootstrap(path)
	require.NoError(t, err)

	assert.Equal(t, ":3000", bc.Server.Http.Addr)
	assert.Equal(t, "http://127.0.0.1:8000", bc.Upstream.Endpoint)
	assert.Equal(t, 5*time.Second, bc.Upstream.Timeout.AsDuration())
	assert.Equal(t, uint32(5), bc.Breaker.Threshold)
	assert.Equal(t, 30*time.Second, bc.Breaker.RecoveryWindow.AsDuration())
	assert.Equal(t, "debug", bc.Log.Level)
}
