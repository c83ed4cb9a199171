package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"server", "moderator"} {
		role, err := ParseRole(valid)
		require.NoError(t, err)
		assert.Equal(t, Role(valid), role)
	}

	for _, invalid := range []string{"", "admin", "Moderator", "SERVER", " server", "moderator "} {
		_, err := ParseRole(invalid)
		require.Error(t, err, "role %q should be rejected", invalid)
		assert.True(t, errors.Is(err, ErrValidation))
	}
}

func TestRequireModerator(t *testing.T) {
	assert.ErrorIs(t, RequireModerator(nil), ErrUnauthorized)
	assert.ErrorIs(t, RequireModerator(&Principal{}), ErrUnauthorized)
	assert.ErrorIs(t, RequireModerator(&Principal{ID: "u1", Role: RoleServer}), ErrForbidden)
	assert.NoError(t, RequireModerator(&Principal{ID: "u1", Role: RoleModerator}))
}

func TestDurationMinutes(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 95, DurationMinutes(t0, t0.Add(95*time.Minute)))
	assert.Equal(t, 0, DurationMinutes(t0, t0.Add(29*time.Second)))
	assert.Equal(t, 1, DurationMinutes(t0, t0.Add(30*time.Second)))
	assert.Equal(t, 10, DurationMinutes(t0, t0.Add(9*time.Minute+45*time.Second)))
}

func TestMinutesToHours(t *testing.T) {
	assert.Equal(t, 3.5, MinutesToHours(210))
	assert.Equal(t, 0.0, MinutesToHours(0))
	assert.Equal(t, 1.7, MinutesToHours(100))
	assert.Equal(t, 0.1, MinutesToHours(5))
}

func TestDisplayName(t *testing.T) {
	email := "ana@example.com"
	u := &User{FirstName: "Ana", LastName: "Lopez", Email: &email}
	assert.Equal(t, "Ana Lopez", u.DisplayName())

	u = &User{Email: &email}
	assert.Equal(t, email, u.DisplayName())

	u = &User{FirstName: "Ana"}
	assert.Equal(t, "Ana", u.DisplayName())
}

func TestNewUserFromProfile(t *testing.T) {
	u, err := NewUserFromProfile(&Profile{ID: "g-1", Email: "a@b.c", FirstName: "A"})
	require.NoError(t, err)
	assert.Equal(t, RoleServer, u.Role)
	require.NotNil(t, u.Email)
	assert.Equal(t, "a@b.c", *u.Email)

	u, err = NewUserFromProfile(&Profile{ID: "g-2"})
	require.NoError(t, err)
	assert.Nil(t, u.Email)

	_, err = NewUserFromProfile(&Profile{})
	assert.ErrorIs(t, err, ErrValidation)
}
