package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// ID is zero until the entity has been persisted; the store assigns it
// on creation and it never changes afterwards.
//
// Only business rules that need no external lookups live here. Anything
// that requires the repository (uniqueness, existence) belongs to the
// service layer.
type User struct {
	ID        int64
	Email     string
	Username  string
	FullName  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Deactivate marks the account inactive. Soft transition only; the
// record is never deleted as part of deactivation. Idempotent, and it
// does not touch UpdatedAt.
func (u *User) Deactivate() {
	u.IsActive = false
}

// Activate is the symmetric inverse of Deactivate. No route exposes it
// today, but the transition exists.
func (u *User) Activate() {
	u.IsActive = true
}

// UpdateProfile replaces the full name and refreshes UpdatedAt.
// Length constraints are enforced by the input schema before the entity
// is touched; the entity trusts its caller.
func (u *User) UpdateProfile(fullName string) {
	u.FullName = fullName
	u.UpdatedAt = time.Now().UTC()
}
