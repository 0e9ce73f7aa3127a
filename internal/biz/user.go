package biz

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is the credential-bearing account entity. The use cases read and
// write it only through UserRepo; persistence details live in the data layer.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser builds an active user with a fresh id. email must already be
// normalized and hash already produced by a PasswordHasher.
func NewUser(email, passwordHash string, displayName *string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// UserRepo is the persistence abstraction for users. Implementations return
// the api/v1 error taxonomy: USER_NOT_FOUND, USER_ALREADY_EXISTS or INTERNAL.
type UserRepo interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
}

// PasswordHasher hashes and verifies passwords. Hashes are self-describing
// strings; the algorithm is an implementation detail of the data layer.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenClaims is the structured data recovered from a validated token.
type TokenClaims struct {
	UserID    string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService mints and validates bearer tokens. ValidateToken returns
// INVALID_TOKEN for malformed or badly signed tokens and TOKEN_EXPIRED for
// tokens past their expiry.
type TokenService interface {
	CreateToken(user *User) (string, error)
	ValidateToken(token string) (*TokenClaims, error)
}
