package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid donor", func(t *testing.T) {
		user, err := NewUser("  Maria.Silva ", "Maria@Example.COM", "s3cret-pass", RoleDonor)
		require.NoError(t, err)
		assert.Equal(t, "maria.silva", user.Username)
		assert.Equal(t, "maria@example.com", user.Email)
		assert.Equal(t, RoleDonor, user.Role)
		assert.True(t, user.Active)
		assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	})

	t.Run("short username rejected", func(t *testing.T) {
		_, err := NewUser("ab", "a@b.com", "s3cret-pass", RoleDonor)
		assert.Error(t, err)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		_, err := NewUser("maria", "not-an-email", "s3cret-pass", RoleDonor)
		assert.Error(t, err)
	})

	t.Run("short password rejected", func(t *testing.T) {
		_, err := NewUser("maria", "a@b.com", "short", RoleDonor)
		assert.Error(t, err)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := NewUser("maria", "a@b.com", "s3cret-pass", Role("SUPERUSER"))
		assert.Error(t, err)
	})
}

func TestUser_CheckPassword(t *testing.T) {
	user, err := NewUser("maria", "a@b.com", "s3cret-pass", RoleDonor)
	require.NoError(t, err)

	assert.True(t, user.CheckPassword("s3cret-pass"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestUser_ChangePassword(t *testing.T) {
	user, err := NewUser("maria", "a@b.com", "s3cret-pass", RoleDonor)
	require.NoError(t, err)

	require.NoError(t, user.ChangePassword("new-password-1"))
	assert.True(t, user.CheckPassword("new-password-1"))
	assert.False(t, user.CheckPassword("s3cret-pass"))

	assert.Error(t, user.ChangePassword("short"))
}

func TestUser_DisplayName(t *testing.T) {
	user, err := NewUser("maria", "a@b.com", "s3cret-pass", RoleDonor)
	require.NoError(t, err)
	assert.Equal(t, "maria", user.DisplayName())

	user.SetProfile("Maria", "Silva", "", "")
	assert.Equal(t, "Maria Silva", user.DisplayName())
}

func TestUser_Deactivate(t *testing.T) {
	user, err := NewUser("maria", "a@b.com", "s3cret-pass", RoleDonor)
	require.NoError(t, err)

	user.Deactivate()
	version := user.GetVersion()
	assert.False(t, user.Active)

	user.Deactivate()
	assert.Equal(t, version, user.GetVersion())
}

func TestUser_RecordLogin(t *testing.T) {
	user, err := NewUser("maria", "a@b.com", "s3cret-pass", RoleDonor)
	require.NoError(t, err)
	require.Nil(t, user.LastLoginAt)

	at := time.Now()
	user.RecordLogin(at)
	require.NotNil(t, user.LastLoginAt)
	assert.WithinDuration(t, at, *user.LastLoginAt, time.Second)
}
