package biz

import (
	"context"

	"CredLane/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
)

// Seeder creates the configured admin user at startup when it is absent.
type Seeder struct {
	repo   UserRepo
	hasher PasswordHasher
	logger *log.Helper
}

// NewSeeder creates a new seeder.
func NewSeeder(repo UserRepo, hasher PasswordHasher, logger log.Logger) *Seeder {
	return &Seeder{
		repo:   repo,
		hasher: hasher,
		logger: log.NewHelper(logger),
	}
}

// Seed creates the admin user from cfg unless seeding is disabled or the
// user already exists. Idempotent across restarts.
func (s *Seeder) Seed(ctx context.Context, cfg *conf.Auth_Seed) error {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	email := NormalizeEmail(cfg.Email)
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		s.logger.Infow("msg", "admin user already exists, skipping seed", "email", email)
		return nil
	}

	hash, err := s.hasher.Hash(cfg.Password)
	if err != nil {
		return err
	}

	displayName := cfg.DisplayName
	user := NewUser(email, hash, &displayName)
	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Infow("msg", "admin user seeded", "user_id", user.ID, "email", email)
	return nil
}
