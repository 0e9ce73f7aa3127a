package data

import (
	"CredLane/internal/biz"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher implements biz.PasswordHasher using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher creates a bcrypt-backed password hasher.
func NewPasswordHasher() biz.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h *bcryptHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
