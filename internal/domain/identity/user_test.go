package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user with hashed password", func(t *testing.T) {
		user, err := NewUser("John Doe", "john@example.com", "s3cretpass")
		require.NoError(t, err)

		assert.Equal(t, "john@example.com", user.Email)
		assert.Equal(t, "John Doe", user.Name)
		assert.Equal(t, RoleUser, user.Role)
		assert.NotEqual(t, "s3cretpass", user.PasswordHash)
		assert.NotEmpty(t, user.ID)
	})

	t.Run("normalizes email to lower case", func(t *testing.T) {
		user, err := NewUser("John", "John@Example.COM ", "s3cretpass")
		require.NoError(t, err)
		assert.Equal(t, "john@example.com", user.Email)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser("John", "not-an-email", "s3cretpass")
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewUser("  ", "john@example.com", "s3cretpass")
		assert.Error(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("John", "john@example.com", "short")
		assert.Error(t, err)
	})
}

func TestUser_VerifyPassword(t *testing.T) {
	user, err := NewUser("John", "john@example.com", "correct-horse")
	require.NoError(t, err)

	t.Run("accepts the original password", func(t *testing.T) {
		assert.True(t, user.VerifyPassword("correct-horse"))
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		assert.False(t, user.VerifyPassword("battery-staple"))
	})
}

func TestUser_IsAdmin(t *testing.T) {
	user, err := NewUser("John", "john@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.False(t, user.IsAdmin())

	user.Role = RoleAdmin
	assert.True(t, user.IsAdmin())
}
