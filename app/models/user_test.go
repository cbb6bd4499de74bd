package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserBeforeCreate(t *testing.T) {
	user := &User{Username: "alice", PasswordHash: "x"}

	user.BeforeCreate()
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestUserValidation(t *testing.T) {
	user := &User{Username: "alice"}
	user.BeforeCreate()
	assert.Error(t, user.Validate(), "missing password hash")

	require.NoError(t, user.SetPassword("hunter22", bcrypt.MinCost))
	assert.NoError(t, user.Validate())

	user.Username = "a"
	assert.Error(t, user.Validate(), "username too short")
}

func TestUserPassword(t *testing.T) {
	user := &User{Username: "bob"}
	user.BeforeCreate()

	require.NoError(t, user.SetPassword("secret password", bcrypt.MinCost))
	assert.NotEqual(t, "secret password", user.PasswordHash)

	assert.True(t, user.CheckPassword("secret password"))
	assert.False(t, user.CheckPassword("wrong password"))
	assert.Error(t, user.SetPassword("", bcrypt.MinCost))
}

func TestUserIDStability(t *testing.T) {
	user := &User{Username: "carol", PasswordHash: "x"}
	user.BeforeCreate()
	id := user.ID

	// BeforeCreate must not reassign an existing identity
	user.BeforeCreate()
	assert.Equal(t, id, user.ID)
	_, err := uuid.Parse(user.ID)
	assert.NoError(t, err)
}
