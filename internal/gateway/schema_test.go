package gateway

import (
	"context"
	"os"
	"testing"
	"time"

	v1 "CredLane/api/v1"
	"CredLane/pkg/resilience"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthClient scripts upstream behavior per test.
type fakeAuthClient struct {
	registerErr error
	loginErr    error
	meErr       error
	calls       int
}

func (f *fakeAuthClient) Register(_ context.Context, req *v1.RegisterRequest) (*v1.RegisterReply, error) {
	f.calls++
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &v1.RegisterReply{UserID: "user-1", Email: req.Email}, nil
}

func (f *fakeAuthClient) Login(_ context.Context, req *v1.LoginRequest) (*v1.LoginReply, error) {
	f.calls++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &v1.LoginReply{Token: "jwt-token", UserID: "user-1", Email: req.Email}, nil
}

func (f *fakeAuthClient) Me(_ context.Context, _ string) (*v1.MeReply, error) {
	f.calls++
	if f.meErr != nil {
		return nil, f.meErr
	}
	return &v1.MeReply{UserID: "user-1", Email: "test@example.com", IsActive: true}, nil
}

func newTestSchema(t *testing.T, client AuthClient, breaker *resilience.CircuitBreaker) graphql.Schema {
	t.Helper()
	schema, err := NewSchema(NewResolver(client, breaker, log.NewStdLogger(os.Stdout)))
	require.NoError(t, err)
	return schema
}

func execute(schema graphql.Schema, ctx context.Context, query string) *graphql.Result {
	if ctx == nil {
		ctx = context.Background()
	}
	return graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       ctx,
	})
}

func errorCode(t *testing.T, result *graphql.Result) string {
	t.Helper()
	require.NotEmpty(t, result.Errors)
	ext := result.Errors[0].Extensions
	require.NotNil(t, ext, "error must carry extensions")
	code, _ := ext["code"].(string)
	return code
}

func TestGraphQLLogin_Success(t *testing.T) {
	client := &fakeAuthClient{}
	breaker := resilience.NewCircuitBreaker(5, 30*time.Second)
	schema := newTestSchema(t, client, breaker)

	result := execute(schema, nil, `mutation { login(email: "test@example.com", password: "pw") { token user { id email } } }`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	login := data["login"].(map[string]interface{})
	assert.Equal(t, "jwt-token", login["token"])

	user := login["user"].(map[string]interface{})
	assert.Equal(t, "user-1", user["id"])
}

func TestGraphQLLogin_BadPasswordIsUnauthenticated(t *testing.T) {
	client := &fakeAuthClient{loginErr: v1.ErrorInvalidCredentials("invalid email or password")}
	breaker := resilience.NewCircuitBreaker(1, 30*time.Second)
	schema := newTestSchema(t, client, breaker)

	for i := 0; i < 5; i++ {
		result := execute(schema, nil, `mutation { login(email: "test@example.com", password: "bad") { token user { id } } }`)
		assert.Equal(t, codeUnauthenticated, errorCode(t, result))
		ext := result.Errors[0].Extensions
		assert.Equal(t, "INVALID_CREDENTIALS", ext["reason"])
	}

	// rejections are not failures: even at threshold 1 the breaker stays closed
	assert.True(t, breaker.IsAvailable())
	assert.Equal(t, 5, client.calls)
}

func TestGraphQLRegister_DuplicateIsAlreadyExists(t *testing.T) {
	client := &fakeAuthClient{registerErr: v1.ErrorUserAlreadyExists("user with this email already exists")}
	breaker := resilience.NewCircuitBreaker(5, 30*time.Second)
	schema := newTestSchema(t, client, breaker)

	result := execute(schema, nil, `mutation { register(email: "dup@example.com", password: "passw0rd-12") { id } }`)
	assert.Equal(t, codeAlreadyExists, errorCode(t, result))
}

func TestGraphQLTransientFailuresTripBreaker(t *testing.T) {
	client := &fakeAuthClient{loginErr: v1.ErrorInternal("upstream exploded")}
	breaker := resilience.NewCircuitBreaker(3, 30*time.Second)
	schema := newTestSchema(t, client, breaker)

	query := `mutation { login(email: "test@example.com", password: "pw") { token user { id } } }`
	for i := 0; i < 3; i++ {
		result := execute(schema, nil, query)
		assert.Equal(t, codeInternal, errorCode(t, result))
	}

	// breaker is open now, the upstream must not see the fourth call
	result := execute(schema, nil, query)
	assert.Equal(t, codeServiceUnavailable, errorCode(t, result))
	assert.Equal(t, "CIRCUIT_OPEN", result.Errors[0].Extensions["reason"])
	assert.Equal(t, 3, client.calls)
}

func TestGraphQLMe_RequiresToken(t *testing.T) {
	client := &fakeAuthClient{}
	breaker := resilience.NewCircuitBreaker(5, 30*time.Second)
	schema := newTestSchema(t, client, breaker)

	result := execute(schema, nil, `{ me { id email } }`)
	assert.Equal(t, codeUnauthenticated, errorCode(t, result))
	assert.Equal(t, 0, client.calls, "the upstream must not be called without a token")

	ctx := context.WithValue(context.Background(), tokenContextKey{}, "some-token")
	result = execute(schema, ctx, `{ me { id email isActive } }`)
	require.Empty(t, result.Errors)

	me := result.Data.(map[string]interface{})["me"].(map[string]interface{})
	assert.Equal(t, "user-1", me["id"])
	assert.Equal(t, true, me["isActive"])
}

func TestGraphQLHealth(t *testing.T) {
	schema := newTestSchema(t, &fakeAuthClient{}, resilience.NewCircuitBreaker(5, 30*time.Second))

	result := execute(schema, nil, `{ health }`)
	require.Empty(t, result.Errors)
	assert.Equal(t, "ok", result.Data.(map[string]interface{})["health"])
}
