package gateway

import (
	"context"

	v1 "CredLane/api/v1"
	"CredLane/pkg/resilience"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/graphql-go/graphql"
)

// Resolver holds the dependencies of the GraphQL resolvers. Every upstream
// call goes through the shared circuit breaker.
type Resolver struct {
	client  AuthClient
	breaker *resilience.CircuitBreaker
	logger  *log.Helper
}

// NewResolver creates the resolver backing the gateway schema.
func NewResolver(client AuthClient, breaker *resilience.CircuitBreaker, logger log.Logger) *Resolver {
	return &Resolver{
		client:  client,
		breaker: breaker,
		logger:  log.NewHelper(logger),
	}
}

// NewSchema builds the gateway GraphQL schema around the resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"email":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"displayName": &graphql.Field{Type: graphql.String},
			"isActive":    &graphql.Field{Type: graphql.Boolean},
		},
	})

	authPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"user":  &graphql.Field{Type: graphql.NewNonNull(userType)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type:    userType,
				Resolve: r.resolveMe,
			},
			"health": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.String),
				Resolve: r.resolveHealth,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"email":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"displayName": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveRegister,
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveLogin,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func (r *Resolver) resolveHealth(graphql.ResolveParams) (interface{}, error) {
	return "ok", nil
}

func (r *Resolver) resolveRegister(p graphql.ResolveParams) (interface{}, error) {
	req := &v1.RegisterRequest{
		Email:    p.Args["email"].(string),
		Password: p.Args["password"].(string),
	}
	if name, ok := p.Args["displayName"].(string); ok {
		req.DisplayName = &name
	}

	reply, err := resilience.Call(p.Context, r.breaker, func(ctx context.Context) (*v1.RegisterReply, error) {
		return r.client.Register(ctx, req)
	})
	if err != nil {
		r.logger.Warnw("msg", "register failed", "email", req.Email, "error", err)
		return nil, toAPIError(err)
	}

	return map[string]interface{}{
		"id":          reply.UserID,
		"email":       reply.Email,
		"displayName": strPtrValue(reply.DisplayName),
		"isActive":    true,
	}, nil
}

func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	req := &v1.LoginRequest{
		Email:    p.Args["email"].(string),
		Password: p.Args["password"].(string),
	}

	reply, err := resilience.Call(p.Context, r.breaker, func(ctx context.Context) (*v1.LoginReply, error) {
		return r.client.Login(ctx, req)
	})
	if err != nil {
		r.logger.Warnw("msg", "login failed", "email", req.Email, "error", err)
		return nil, toAPIError(err)
	}

	return map[string]interface{}{
		"token": reply.Token,
		"user": map[string]interface{}{
			"id":          reply.UserID,
			"email":       reply.Email,
			"displayName": strPtrValue(reply.DisplayName),
			"isActive":    true,
		},
	}, nil
}

func (r *Resolver) resolveMe(p graphql.ResolveParams) (interface{}, error) {
	token := TokenFromContext(p.Context)
	if token == "" {
		return nil, &apiError{message: "authentication required", code: codeUnauthenticated}
	}

	reply, err := resilience.Call(p.Context, r.breaker, func(ctx context.Context) (*v1.MeReply, error) {
		return r.client.Me(ctx, token)
	})
	if err != nil {
		return nil, toAPIError(err)
	}

	return map[string]interface{}{
		"id":          reply.UserID,
		"email":       reply.Email,
		"displayName": strPtrValue(reply.DisplayName),
		"isActive":    reply.IsActive,
	}, nil
}

func strPtrValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
