package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tinybigcorp/backend/internal/domain/entity"
	"github.com/tinybigcorp/backend/internal/domain/errs"
	repo "github.com/tinybigcorp/backend/internal/domain/repository"
)

// UserService orchestrates the user use cases. It enforces the
// invariants the entity alone cannot see (uniqueness, existence),
// raises typed domain errors, and propagates repository failures
// untouched for the boundary to classify.
type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Logger: logger}
}

// CreateUser checks email uniqueness first, then username, so a request
// violating both reports the email collision. Both timestamps are set
// to the same instant; the store re-reads its own defaults on insert.
func (s *UserService) CreateUser(ctx context.Context, cmd CreateUserCommand) (*UserDto, error) {
	if !cmd.Valid() {
		return nil, errs.NewValidation("invalid user creation command")
	}

	existing, err := s.Repo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewAlreadyExists("User", cmd.Email)
	}

	existing, err = s.Repo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewAlreadyExists("User", cmd.Username)
	}

	now := time.Now().UTC()
	user := &entity.User{
		Email:     cmd.Email,
		Username:  cmd.Username,
		FullName:  cmd.FullName,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.Repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": created.ID, "username": created.Username}).
			Info("user created")
	}
	return toDto(created), nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (*UserDto, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFound("User", id)
	}
	return toDto(user), nil
}

// ListUsers is a pass-through to the paginated listing; no business
// logic beyond the repository defaults.
func (s *UserService) ListUsers(ctx context.Context, skip, limit int) ([]*UserDto, error) {
	users, err := s.Repo.ListAll(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	dtos := make([]*UserDto, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toDto(u))
	}
	return dtos, nil
}

// UpdateUser applies the profile change through the entity so UpdatedAt
// is refreshed there, not here. A missing or empty full_name leaves the
// stored name and UpdatedAt untouched.
func (s *UserService) UpdateUser(ctx context.Context, id int64, cmd UpdateUserCommand) (*UserDto, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFound("User", id)
	}

	if cmd.FullName != nil && *cmd.FullName != "" {
		user.UpdateProfile(*cmd.FullName)
	}

	updated, err := s.Repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	return toDto(updated), nil
}

// DeactivateUser is idempotent: deactivating an already-inactive user
// succeeds and, since Deactivate does not touch UpdatedAt, the
// timestamp stays as it was.
func (s *UserService) DeactivateUser(ctx context.Context, id int64) (*UserDto, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFound("User", id)
	}

	user.Deactivate()

	updated, err := s.Repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", id).Info("user deactivated")
	}
	return toDto(updated), nil
}
