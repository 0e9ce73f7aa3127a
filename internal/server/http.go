package server

import (
	"context"
	"net/http"
	"strings"

	v1 "CredLane/api/v1"
	"CredLane/internal/conf"
	"CredLane/internal/server/middleware"
	"CredLane/internal/service"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// NewHTTPServer new an HTTP server.
func NewHTTPServer(c *conf.Server, authService *service.AuthService, logger log.Logger) *khttp.Server {
	var opts = []khttp.ServerOption{
		khttp.Middleware(
			recovery.Recovery(),
			middleware.Logging(logger),
		),
	}
	if c.Http.Network != "" {
		opts = append(opts, khttp.Network(c.Http.Network))
	}
	if c.Http.Addr != "" {
		opts = append(opts, khttp.Address(c.Http.Addr))
	}
	if c.Http.Timeout != nil {
		opts = append(opts, khttp.Timeout(c.Http.Timeout.AsDuration()))
	}
	srv := khttp.NewServer(opts...)

	registerAuthRoutes(srv, authService)

	return srv
}

// registerAuthRoutes wires the JSON endpoints onto the kratos router.
func registerAuthRoutes(srv *khttp.Server, svc *service.AuthService) {
	r := srv.Route("/")

	r.POST("/v1/auth/register", func(ctx khttp.Context) error {
		var in v1.RegisterRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		h := ctx.Middleware(func(c context.Context, req interface{}) (interface{}, error) {
			return svc.Register(c, req.(*v1.RegisterRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusCreated, out)
	})

	r.POST("/v1/auth/login", func(ctx khttp.Context) error {
		var in v1.LoginRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		h := ctx.Middleware(func(c context.Context, req interface{}) (interface{}, error) {
			return svc.Login(c, req.(*v1.LoginRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	})

	r.GET("/v1/auth/me", func(ctx khttp.Context) error {
		in := v1.MeRequest{Token: bearerToken(ctx.Request())}
		h := ctx.Middleware(func(c context.Context, req interface{}) (interface{}, error) {
			return svc.Me(c, req.(*v1.MeRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	})

	r.POST("/v1/auth/validate", func(ctx khttp.Context) error {
		var in v1.ValidateTokenRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		if in.Token == "" {
			in.Token = bearerToken(ctx.Request())
		}
		h := ctx.Middleware(func(c context.Context, req interface{}) (interface{}, error) {
			return svc.ValidateToken(c, req.(*v1.ValidateTokenRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	})

	r.GET("/healthz", func(ctx khttp.Context) error {
		return ctx.Result(http.StatusOK, map[string]string{"status": "ok"})
	})
}

// bearerToken extracts the token from an Authorization: Bearer header.
func bearerToken(req *http.Request) string {
	auth := req.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
