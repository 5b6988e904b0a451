// Package memory provides an in-memory UserRepository. The service
// depends only on the repository abstraction, so this adapter slots in
// for tests and local runs without a database.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/tinybigcorp/backend/internal/domain/entity"
	"github.com/tinybigcorp/backend/internal/domain/errs"
	"github.com/tinybigcorp/backend/internal/domain/repository"
)

type UserRepository struct {
	mu     sync.RWMutex
	users  map[int64]entity.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int64]entity.User), nextID: 1}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		copied := u
		return &copied, nil
	}
	return nil, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findFirst(func(u entity.User) bool { return u.Email == email })
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findFirst(func(u entity.User) bool { return u.Username == username })
}

func (r *UserRepository) findFirst(match func(entity.User) bool) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if match(u) {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

// ListAll pages in id order, mirroring the Postgres adapter so tests
// observe the same stable ordering the real store provides.
func (r *UserRepository) ListAll(ctx context.Context, skip, limit int) ([]*entity.User, error) {
	if skip < 0 {
		skip = repository.DefaultSkip
	}
	if limit <= 0 {
		limit = repository.DefaultLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]*entity.User, 0, limit)
	for i := skip; i < len(ids) && len(users) < limit; i++ {
		u := r.users[ids[i]]
		copied := u
		users = append(users, &copied)
	}
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *u
	created.ID = r.nextID
	r.nextID++
	r.users[created.ID] = created

	out := created
	return &out, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; !ok {
		return nil, errs.NewNotFound("User", u.ID)
	}
	r.users[u.ID] = *u

	out := *u
	return &out, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
