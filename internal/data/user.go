package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	v1 "CredLane/api/v1"
	"CredLane/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// User is the GORM model for the users table.
type User struct {
	ID           string    `gorm:"primaryKey;column:id;type:char(36)"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex:uk_users_email"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null"`
	DisplayName  *string   `gorm:"column:display_name;size:100"`
	IsActive     bool      `gorm:"column:is_active;default:true;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

func (u *User) toBiz() *biz.User {
	return &biz.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		DisplayName:  u.DisplayName,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func fromBiz(u *biz.User) *User {
	return &User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		DisplayName:  u.DisplayName,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// userRepo implements biz.UserRepo backed by MySQL with a Redis
// read-through cache for lookups by ID.
type userRepo struct {
	data   *Data
	db     *gorm.DB
	cache  CacheClient
	logger *log.Helper
}

// NewUserRepo creates a new user repository.
func NewUserRepo(data *Data, db *gorm.DB, logger log.Logger) biz.UserRepo {
	return &userRepo{
		data:   data,
		db:     db,
		cache:  data.GetCache(),
		logger: log.NewHelper(logger),
	}
}

// FindByID retrieves a user by ID with caching.
// Cache key: "user:{id}", TTL 5 minutes.
func (r *userRepo) FindByID(ctx context.Context, id string) (*biz.User, error) {
	cacheKey := fmt.Sprintf("%s:%s", CacheKeyUser, id)

	var cached User
	if err := r.cache.Get(ctx, cacheKey, &cached); err == nil {
		r.logger.Debugw("msg", "user cache hit", "user_id", id)
		return cached.toBiz(), nil
	}

	var user User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, v1.ErrorUserNotFound("user not found: id=%s", id)
		}
		r.logger.Errorf("failed to find user by id: %v", err)
		return nil, v1.ErrorInternal("failed to find user: %v", err)
	}

	if err := r.cache.Set(ctx, cacheKey, &user, TTLUser); err != nil && !errors.Is(err, ErrCacheUnavailable) {
		r.logger.Warnw("msg", "failed to cache user", "user_id", id, "error", err)
	}

	return user.toBiz(), nil
}

// FindByEmail retrieves a user by normalized email. Email lookups hit the
// database directly so that login always sees the current password hash.
func (r *userRepo) FindByEmail(ctx context.Context, email string) (*biz.User, error) {
	var user User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, v1.ErrorUserNotFound("user not found")
		}
		r.logger.Errorf("failed to find user by email: %v", err)
		return nil, v1.ErrorInternal("failed to find user: %v", err)
	}
	return user.toBiz(), nil
}

// ExistsByEmail reports whether a user with the given email exists.
func (r *userRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		r.logger.Errorf("failed to check email existence: %v", err)
		return false, v1.ErrorInternal("failed to check email: %v", err)
	}
	return count > 0, nil
}

// Create inserts a new user. A unique constraint violation on the email
// column maps to USER_ALREADY_EXISTS so that a concurrent register racing
// past the existence check still gets the right error.
func (r *userRepo) Create(ctx context.Context, user *biz.User) error {
	if err := r.db.WithContext(ctx).Create(fromBiz(user)).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			r.logger.Warnw("msg", "duplicate email on create", "email", user.Email)
			return v1.ErrorUserAlreadyExists("user with this email already exists")
		}
		r.logger.Errorf("failed to create user: %v", err)
		return v1.ErrorInternal("failed to create user: %v", err)
	}

	r.logger.Infow("msg", "user created", "user_id", user.ID, "email", user.Email)
	return nil
}

// Update persists changes to a user and clears the cached copy.
func (r *userRepo) Update(ctx context.Context, user *biz.User) error {
	result := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"display_name":  user.DisplayName,
		"is_active":     user.IsActive,
	})
	if result.Error != nil {
		r.logger.Errorf("failed to update user: %v", result.Error)
		return v1.ErrorInternal("failed to update user: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		return v1.ErrorUserNotFound("user not found: id=%s", user.ID)
	}

	cacheKey := fmt.Sprintf("%s:%s", CacheKeyUser, user.ID)
	if err := r.cache.Delete(ctx, cacheKey); err != nil && !errors.Is(err, ErrCacheUnavailable) {
		r.logger.Warnw("msg", "failed to invalidate user cache", "user_id", user.ID, "error", err)
	}

	return nil
}
