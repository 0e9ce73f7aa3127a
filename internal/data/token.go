package data

import (
	"errors"
	"fmt"
	"time"

	v1 "CredLane/api/v1"
	"CredLane/internal/biz"
	"CredLane/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/golang-jwt/jwt/v5"
)

// JWTTokenService implements biz.TokenService using HMAC-signed JWTs.
type JWTTokenService struct {
	secret  []byte
	expires time.Duration
	now     func() time.Time
	logger  *log.Helper
}

// NewTokenService creates a JWT token service from conf.Auth.
func NewTokenService(c *conf.Auth, logger log.Logger) (*JWTTokenService, error) {
	if c == nil || c.Jwt == nil || c.Jwt.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	expires := time.Hour
	if c.Jwt.Expires != nil {
		expires = c.Jwt.Expires.AsDuration()
	}

	return &JWTTokenService{
		secret:  []byte(c.Jwt.Secret),
		expires: expires,
		now:     time.Now,
		logger:  log.NewHelper(logger),
	}, nil
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// CreateToken mints a signed token carrying the user ID and email.
func (s *JWTTokenService) CreateToken(user *biz.User) (string, error) {
	now := s.now()
	claims := sessionClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expires)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		s.logger.Errorf("failed to sign token: %v", err)
		return "", v1.ErrorInternal("failed to sign token")
	}
	return signed, nil
}

// ValidateToken verifies the signature and expiry and returns the claims.
// Expired tokens are reported distinctly from malformed or forged ones.
func (s *JWTTokenService) ValidateToken(tokenStr string) (*biz.TokenClaims, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, v1.ErrorTokenExpired("token has expired")
		}
		return nil, v1.ErrorInvalidToken("invalid token")
	}
	if !token.Valid {
		return nil, v1.ErrorInvalidToken("invalid token")
	}

	out := &biz.TokenClaims{
		UserID: claims.Subject,
		Email:  claims.Email,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
