package application

import (
	"time"

	"github.com/tinybigcorp/backend/internal/domain/entity"
)

// CreateUserCommand is the validated input for user creation. Binding
// tags cover the structural constraints at the HTTP boundary; Valid()
// re-checks the length rules so the service never trusts an
// unvalidated caller.
type CreateUserCommand struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	FullName string `json:"full_name" binding:"required,min=1,max=100"`
}

func (c CreateUserCommand) Valid() bool {
	return len(c.Username) >= 3 && len(c.Username) <= 50 &&
		len(c.FullName) >= 1 && len(c.FullName) <= 100
}

// UpdateUserCommand carries the optional profile change. A nil FullName
// means "leave it alone".
type UpdateUserCommand struct {
	FullName *string `json:"full_name" binding:"omitempty,min=1,max=100"`
}

// UserDto is the wire representation of a user. Timestamps marshal as
// RFC 3339.
type UserDto struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toDto(u *entity.User) *UserDto {
	return &UserDto{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
