package data

import (
	"testing"
	"time"

	"CredLane/internal/biz"

	"github.com/stretchr/testify/assert"
)

func TestUserModelConversion(t *testing.T) {
	name := "Test User"
	now := time.Now().UTC()
	in := &biz.User{
		ID:           "11111111-2222-3333-4444-555555555555",
		Email:        "test@example.com",
		PasswordHash: "$2a$10$abc",
		DisplayName:  &name,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	out := fromBiz(in).toBiz()
	assert.Equal(t, in, out)
}

func TestUserModelConversion_NilDisplayName(t *testing.T) {
	in := &biz.User{ID: "id-1", Email: "a@b.com", PasswordHash: "h"}
	out := fromBiz(in).toBiz()
	assert.Nil(t, out.DisplayName)
	assert.Equal(t, in, out)
}

func TestUserTableName(t *testing.T) {
	assert.Equal(t, "users", User{}.TableName())
}
