package service

import (
	"context"

	v1 "CredLane/api/v1"
	"CredLane/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

// AuthService exposes the credential issuance use cases to the transports.
type AuthService struct {
	uc     *biz.AuthUsecase
	logger *log.Helper
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(uc *biz.AuthUsecase, logger log.Logger) *AuthService {
	return &AuthService{
		uc:     uc,
		logger: log.NewHelper(logger),
	}
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, req *v1.RegisterRequest) (*v1.RegisterReply, error) {
	s.logger.Infow("msg", "Register called", "email", req.Email)

	user, err := s.uc.Register(ctx, req.Email, req.Password, req.DisplayName)
	if err != nil {
		s.logger.Warnw("msg", "registration rejected", "email", req.Email, "error", err)
		return nil, err
	}

	return &v1.RegisterReply{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}, nil
}

// Login verifies credentials and mints a session token.
func (s *AuthService) Login(ctx context.Context, req *v1.LoginRequest) (*v1.LoginReply, error) {
	s.logger.Debugw("msg", "Login called", "email", req.Email)

	token, user, err := s.uc.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Warnw("msg", "login rejected", "email", req.Email, "error", err)
		return nil, err
	}

	return &v1.LoginReply{
		Token:       token,
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}, nil
}

// Me resolves the session behind a bearer token.
func (s *AuthService) Me(ctx context.Context, req *v1.MeRequest) (*v1.MeReply, error) {
	user, err := s.uc.GetSession(ctx, req.Token)
	if err != nil {
		return nil, err
	}

	return &v1.MeReply{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		IsActive:    user.IsActive,
	}, nil
}

// ValidateToken reports whether a token verifies. An invalid token is a
// negative answer, not a transport error.
func (s *AuthService) ValidateToken(ctx context.Context, req *v1.ValidateTokenRequest) (*v1.ValidateTokenReply, error) {
	claims, err := s.uc.ValidateToken(req.Token)
	if err != nil {
		return &v1.ValidateTokenReply{Valid: false}, nil
	}

	return &v1.ValidateTokenReply{
		Valid:  true,
		UserID: claims.UserID,
		Email:  claims.Email,
	}, nil
}
