package repository

import (
	"context"

	"github.com/tinybigcorp/backend/internal/domain/entity"
)

// Default pagination applied by implementations when the caller passes
// zero values.
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// UserRepository defines the persistence contract the service depends
// on, independent of storage technology.
//
// Lookup methods return (nil, nil) when no record matches; absence is
// not an error at this layer. Create returns the entity with the
// store-assigned id and any server-computed defaults already re-read,
// so callers never see stale values. Update requires that the id exists
// (the service verifies existence first) and returns errs.NotFoundError
// when it does not. Delete reports whether a record was removed.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	ListAll(ctx context.Context, skip, limit int) ([]*entity.User, error)
	Create(ctx context.Context, u *entity.User) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) (*entity.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
