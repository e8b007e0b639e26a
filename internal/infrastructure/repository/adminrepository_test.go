package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veil/internal/domain/admin"
)

func createTestAdmin(t *testing.T, username string, isSudo bool) *admin.Admin {
	t.Helper()
	a, err := admin.NewAdmin(username, "$2a$12$hashedhashedhashedhashedhashed", isSudo)
	require.NoError(t, err)
	return a
}

func TestAdminRepository_CreateAndGetByUsername(t *testing.T) {
	repo := NewAdminRepository(setupTestDB(t), discardLogger())
	ctx := context.Background()

	a := createTestAdmin(t, "root", true)
	require.NoError(t, repo.Create(ctx, a))
	assert.NotZero(t, a.ID())

	found, err := repo.GetByUsername(ctx, "root")
	assert.NoError(t, err)
	assert.Equal(t, "root", found.Username())
	assert.True(t, found.IsSudo())
}

func TestAdminRepository_GetByUsername_NotFound(t *testing.T) {
	repo := NewAdminRepository(setupTestDB(t), discardLogger())

	found, err := repo.GetByUsername(context.Background(), "ghost")

	assert.Nil(t, found)
	assert.ErrorIs(t, err, admin.ErrAdminNotFound)
}

func TestAdminRepository_Create_DuplicateUsername(t *testing.T) {
	repo := NewAdminRepository(setupTestDB(t), discardLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestAdmin(t, "root", false)))

	err := repo.Create(ctx, createTestAdmin(t, "root", false))
	assert.ErrorIs(t, err, admin.ErrAdminAlreadyExists)
}

func TestAdminRepository_GetAll(t *testing.T) {
	repo := NewAdminRepository(setupTestDB(t), discardLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestAdmin(t, "root", true)))
	require.NoError(t, repo.Create(ctx, createTestAdmin(t, "operator", false)))

	all, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAdminRepository_Delete(t *testing.T) {
	repo := NewAdminRepository(setupTestDB(t), discardLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestAdmin(t, "root", true)))
	require.NoError(t, repo.Delete(ctx, "root"))

	_, err := repo.GetByUsername(ctx, "root")
	assert.ErrorIs(t, err, admin.ErrAdminNotFound)
}
