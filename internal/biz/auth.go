package biz

import (
	"context"
	"strings"

	v1 "CredLane/api/v1"

	"github.com/go-kratos/kratos/v2/log"
)

// minPasswordLength is the registration password floor.
const minPasswordLength = 8

// AuthUsecase implements registration, login and session lookup over the
// repository, hasher and token abstractions.
type AuthUsecase struct {
	repo   UserRepo
	hasher PasswordHasher
	tokens TokenService
	logger *log.Helper
}

// NewAuthUsecase creates a new auth usecase.
func NewAuthUsecase(repo UserRepo, hasher PasswordHasher, tokens TokenService, logger log.Logger) *AuthUsecase {
	return &AuthUsecase{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: log.NewHelper(logger),
	}
}

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateEmail checks the normalized address has the shape local@domain
// with a dotted domain.
func validateEmail(email string) error {
	if email == "" || strings.Count(email, "@") != 1 {
		return v1.ErrorInvalidEmail("invalid email format")
	}
	parts := strings.SplitN(email, "@", 2)
	if parts[0] == "" || parts[1] == "" || !strings.Contains(parts[1], ".") {
		return v1.ErrorInvalidEmail("invalid email format")
	}
	return nil
}

// Register creates a new active user. The checks run in a fixed order, each
// short-circuiting with its own error: email format, email not already
// registered, password strength. Only then is the password hashed and the
// user persisted.
func (uc *AuthUsecase) Register(ctx context.Context, email, password string, displayName *string) (*User, error) {
	email = NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	exists, err := uc.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, v1.ErrorUserAlreadyExists("user with this email already exists")
	}

	if len(password) < minPasswordLength {
		return nil, v1.ErrorWeakPassword("password must be at least %d characters", minPasswordLength)
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		uc.logger.Errorw("msg", "failed to hash password", "error", err)
		return nil, v1.ErrorInternal("failed to hash password")
	}

	user := NewUser(email, hash, displayName)
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Infow("msg", "user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login verifies credentials and mints a token. An unknown email converges
// to the same INVALID_CREDENTIALS error as a wrong password so the endpoint
// never reveals which addresses are registered. The active check runs before
// password verification.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (string, *User, error) {
	user, err := uc.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if v1.IsUserNotFound(err) {
			return "", nil, v1.ErrorInvalidCredentials("invalid email or password")
		}
		return "", nil, err
	}

	if !user.IsActive {
		return "", nil, v1.ErrorAccountInactive("user account is inactive")
	}

	if !uc.hasher.Verify(password, user.PasswordHash) {
		return "", nil, v1.ErrorInvalidCredentials("invalid email or password")
	}

	token, err := uc.tokens.CreateToken(user)
	if err != nil {
		uc.logger.Errorw("msg", "failed to create token", "user_id", user.ID, "error", err)
		return "", nil, v1.ErrorInternal("failed to create token")
	}

	uc.logger.Infow("msg", "user logged in", "user_id", user.ID)
	return token, user, nil
}

// GetSession resolves a bearer token to its user. Token validation goes
// through the configured TokenService, which in production is the cached
// decorator.
func (uc *AuthUsecase) GetSession(ctx context.Context, token string) (*User, error) {
	claims, err := uc.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	return uc.repo.FindByID(ctx, claims.UserID)
}

// ValidateToken checks a token and returns its claims. Callers that need a
// non-erroring answer (the validate endpoint) translate the error themselves.
func (uc *AuthUsecase) ValidateToken(token string) (*TokenClaims, error) {
	return uc.tokens.ValidateToken(token)
}
