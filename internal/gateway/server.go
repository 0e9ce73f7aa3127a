package gateway

import (
	"context"
	nethttp "net/http"
	"strings"
	"time"

	"CredLane/internal/conf"
	"CredLane/pkg/resilience"

	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

type tokenContextKey struct{}

// TokenFromContext returns the bearer token attached to the request, or ""
// when the request carried none.
func TokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(tokenContextKey{}).(string); ok {
		return token
	}
	return ""
}

// withBearerToken copies the Authorization bearer token into the request
// context so resolvers can reach it without seeing the raw request.
func withBearerToken(next nethttp.Handler) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, req *nethttp.Request) {
		auth := req.Header.Get("Authorization")
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			ctx := context.WithValue(req.Context(), tokenContextKey{}, strings.TrimSpace(parts[1]))
			req = req.WithContext(ctx)
		}
		next.ServeHTTP(w, req)
	})
}

// NewHTTPServer new the gateway HTTP server hosting the GraphQL endpoint.
func NewHTTPServer(c *conf.GatewayBootstrap, schema graphql.Schema, logger log.Logger) *khttp.Server {
	var opts []khttp.ServerOption
	if c.Server.Http.Network != "" {
		opts = append(opts, khttp.Network(c.Server.Http.Network))
	}
	if c.Server.Http.Addr != "" {
		opts = append(opts, khttp.Address(c.Server.Http.Addr))
	}
	if c.Server.Http.Timeout != nil {
		opts = append(opts, khttp.Timeout(c.Server.Http.Timeout.AsDuration()))
	}
	srv := khttp.NewServer(opts...)

	gql := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	})

	srv.HandlePrefix("/graphql", withBearerToken(gql))
	srv.Handle("/healthz", nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))

	log.NewHelper(logger).Infof("gateway listening on %s", c.Server.Http.Addr)

	return srv
}

// NewCircuitBreaker builds the gateway's shared circuit breaker from config.
// All resolvers route their upstream calls through this one instance, so a
// trip caused by any operation shields them all.
func NewCircuitBreaker(c *conf.Breaker) *resilience.CircuitBreaker {
	threshold := uint32(5)
	window := 30 * time.Second
	if c != nil {
		threshold = c.Threshold
		if c.RecoveryWindow != nil {
			window = c.RecoveryWindow.AsDuration()
		}
	}
	return resilience.NewCircuitBreaker(threshold, window)
}
