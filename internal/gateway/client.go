// Package gateway implements the GraphQL front door of the auth service.
// It talks to the auth service over its HTTP JSON transport and shields it
// with a circuit breaker.
package gateway

import (
	"context"
	"fmt"
	nethttp "net/http"
	"strings"

	v1 "CredLane/api/v1"
	"CredLane/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// AuthClient is the gateway's view of the auth service.
type AuthClient interface {
	Register(ctx context.Context, req *v1.RegisterRequest) (*v1.RegisterReply, error)
	Login(ctx context.Context, req *v1.LoginRequest) (*v1.LoginReply, error)
	Me(ctx context.Context, token string) (*v1.MeReply, error)
}

// authHTTPClient calls the auth service through the kratos HTTP client,
// which decodes error replies back into kratos errors so the gateway sees
// the same codes and reasons the service emitted.
type authHTTPClient struct {
	conn   *khttp.Client
	logger *log.Helper
}

// NewAuthClient dials the auth service configured in conf.Upstream.
func NewAuthClient(c *conf.Upstream, logger log.Logger) (AuthClient, func(), error) {
	helper := log.NewHelper(logger)

	if c == nil || c.Endpoint == "" {
		return nil, nil, fmt.Errorf("upstream endpoint is required")
	}

	endpoint := c.Endpoint
	if !strings.Contains(endpoint, "://") {
		endpoint = "http://" + endpoint
	}

	opts := []khttp.ClientOption{
		khttp.WithEndpoint(strings.TrimPrefix(endpoint, "http://")),
	}
	if c.Timeout != nil {
		opts = append(opts, khttp.WithTimeout(c.Timeout.AsDuration()))
	}

	conn, err := khttp.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create auth client: %w", err)
	}

	helper.Infof("auth client connected to %s", endpoint)

	cleanup := func() {
		helper.Info("closing auth client")
		if err := conn.Close(); err != nil {
			helper.Errorf("failed to close auth client: %v", err)
		}
	}

	return &authHTTPClient{conn: conn, logger: helper}, cleanup, nil
}

func (c *authHTTPClient) Register(ctx context.Context, req *v1.RegisterRequest) (*v1.RegisterReply, error) {
	var out v1.RegisterReply
	if err := c.conn.Invoke(ctx, nethttp.MethodPost, "/v1/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *authHTTPClient) Login(ctx context.Context, req *v1.LoginRequest) (*v1.LoginReply, error) {
	var out v1.LoginReply
	if err := c.conn.Invoke(ctx, nethttp.MethodPost, "/v1/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *authHTTPClient) Me(ctx context.Context, token string) (*v1.MeReply, error) {
	header := make(nethttp.Header)
	header.Set("Authorization", "Bearer "+token)

	var out v1.MeReply
	if err := c.conn.Invoke(ctx, nethttp.MethodGet, "/v1/auth/me", nil, &out, khttp.Header(&header)); err != nil {
		return nil, err
	}
	return &out, nil
}
