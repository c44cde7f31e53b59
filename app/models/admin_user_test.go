package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminUserPasswordRoundTrip(t *testing.T) {
	u := &AdminUser{Username: "admin"}

	require.NoError(t, u.SetPassword("s3cret-pass"))
	require.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "s3cret-pass", u.PasswordHash)

	assert.True(t, u.CheckPassword("s3cret-pass"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestAdminUserLockoutAfterFiveFailures(t *testing.T) {
	u := &AdminUser{Username: "admin"}
	now := time.Now()

	for i := 0; i < MaxFailedLogins-1; i++ {
		u.RegisterFailedLogin(now)
		assert.False(t, u.IsLocked(now), "attempt %d must not lock yet", i+1)
	}

	u.RegisterFailedLogin(now)
	require.True(t, u.IsLocked(now))
	require.NotNil(t, u.LockedUntil)
	assert.Equal(t, 0, u.FailedLogins, "counter resets when the lock starts")
	assert.WithinDuration(t, now.Add(LockoutDuration), *u.LockedUntil, time.Second)
}

func TestAdminUserLockExpires(t *testing.T) {
	u := &AdminUser{Username: "admin"}
	now := time.Now()

	for i := 0; i < MaxFailedLogins; i++ {
		u.RegisterFailedLogin(now)
	}
	require.True(t, u.IsLocked(now))

	after := now.Add(LockoutDuration + time.Minute)
	assert.False(t, u.IsLocked(after))
}

func TestAdminUserSuccessfulLoginClearsState(t *testing.T) {
	now := time.Now()
	until := now.Add(LockoutDuration)
	u := &AdminUser{Username: "admin", FailedLogins: 3, LockedUntil: &until}

	u.RegisterSuccessfulLogin(now)

	assert.Equal(t, 0, u.FailedLogins)
	assert.Nil(t, u.LockedUntil)
	require.NotNil(t, u.LastLoginAt)
	assert.WithinDuration(t, now, *u.LastLoginAt, time.Second)
}

func TestAdminUserHasRole(t *testing.T) {
	u := &AdminUser{Roles: []Role{{Name: RoleAdmin}}}

	assert.True(t, u.HasRole(RoleAdmin))
	assert.False(t, u.HasRole("Editor"))
	assert.False(t, (&AdminUser{}).HasRole(RoleAdmin))
}
