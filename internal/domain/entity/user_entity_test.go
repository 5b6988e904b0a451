package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newActiveUser() *User {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	return &User{
		ID:        1,
		Email:     "alice@example.com",
		Username:  "alice",
		FullName:  "Alice Anderson",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestDeactivate(t *testing.T) {
	u := newActiveUser()
	before := u.UpdatedAt

	u.Deactivate()

	assert.False(t, u.IsActive)
	// Deactivation must not bump UpdatedAt; only profile updates do.
	assert.Equal(t, before, u.UpdatedAt)
}

func TestDeactivateIdempotent(t *testing.T) {
	u := newActiveUser()
	u.Deactivate()
	u.Deactivate()
	assert.False(t, u.IsActive)
}

func TestActivate(t *testing.T) {
	u := newActiveUser()
	u.Deactivate()
	u.Activate()
	assert.True(t, u.IsActive)

	// Idempotent on an already-active user.
	u.Activate()
	assert.True(t, u.IsActive)
}

func TestUpdateProfile(t *testing.T) {
	u := newActiveUser()
	before := u.UpdatedAt

	u.UpdateProfile("Alice A. Anderson")

	assert.Equal(t, "Alice A. Anderson", u.FullName)
	assert.True(t, u.UpdatedAt.After(before))
	assert.False(t, u.UpdatedAt.Before(u.CreatedAt))
}
