package postgres

import (
	"context"
	"testing"

	"restaurant/internal/domain/entity"
	domainerrors "restaurant/internal/domain/errors"
	"restaurant/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user, err := entity.NewUser("ana@email.com", "Ana")
	require.NoError(t, err)
	user.PasswordHash = "hash"

	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	byEmail, err := repo.FindByEmail(ctx, "ana@email.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", byID.Name)

	id, err := repo.FindIDByEmail(ctx, "ana@email.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "ghost@email.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindIDByEmail(ctx, "ghost@email.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	createWaiter(t, db, "dup@email.com")

	again, err := entity.NewUser("dup@email.com", "Other")
	require.NoError(t, err)

	err = NewUserRepository(db).Create(context.Background(), again)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}
