package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinybigcorp/backend/internal/domain/entity"
	"github.com/tinybigcorp/backend/internal/domain/errs"
)

func newUser(i int) *entity.User {
	now := time.Now().UTC()
	return &entity.User{
		Email:     fmt.Sprintf("user%d@example.com", i),
		Username:  fmt.Sprintf("user%d", i),
		FullName:  fmt.Sprintf("User %d", i),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, newUser(1))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newUser(2))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestLookupsReturnNilOnAbsence(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	u, err := repo.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = repo.GetByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestLookupsByUniqueFields(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser(1))
	require.NoError(t, err)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, created.Email, byID.Email)

	byEmail, err := repo.GetByEmail(ctx, created.Email)
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)

	byName, err := repo.GetByUsername(ctx, created.Username)
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, created.ID, byName.ID)
}

func TestListAllPaginatesInIDOrder(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := repo.Create(ctx, newUser(i))
		require.NoError(t, err)
	}

	all, err := repo.ListAll(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, u := range all {
		assert.Equal(t, int64(i+1), u.ID)
	}

	page, err := repo.ListAll(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(3), page[0].ID)
	assert.Equal(t, int64(4), page[1].ID)

	// Zero limit falls back to the default page size.
	defaulted, err := repo.ListAll(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, defaulted, 5)
}

func TestUpdateNonexistentFails(t *testing.T) {
	repo := NewUserRepository()
	u := newUser(1)
	u.ID = 42

	_, err := repo.Update(context.Background(), u)
	var notFound *errs.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestUpdatePersistsChanges(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser(1))
	require.NoError(t, err)

	created.FullName = "Renamed"
	created.IsActive = false
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.FullName)
	assert.False(t, updated.IsActive)

	reread, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", reread.FullName)
}

func TestDelete(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser(1))
	require.NoError(t, err)

	ok, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	gone, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	ok, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReturnedEntitiesAreCopies(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser(1))
	require.NoError(t, err)

	created.FullName = "mutated outside the repository"

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "User 1", stored.FullName)
}
