package postgres

import (
	"context"
	"testing"

	"restaurant/config"
	"restaurant/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedAdmin_IsIdempotent(t *testing.T) {
	db := newTestDB(t)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	cfg := &config.MigrationConfig{
		SeedAdmin:     true,
		AdminEmail:    "admin@email.com",
		AdminName:     "Admin",
		AdminPassword: "admin-password",
	}
	ctx := context.Background()

	require.NoError(t, SeedAdmin(ctx, db, cfg, hasher, newDiscardLogger()))
	require.NoError(t, SeedAdmin(ctx, db, cfg, hasher, newDiscardLogger()))

	admin, err := NewUserRepository(db).FindByEmail(ctx, "admin@email.com")
	require.NoError(t, err)
	assert.Equal(t, "Admin", admin.Name)
	assert.True(t, hasher.Check("admin-password", admin.PasswordHash))

	var count int64
	require.NoError(t, db.Table("users").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeedAdmin_InvalidEmail(t *testing.T) {
	db := newTestDB(t)
	cfg := &config.MigrationConfig{AdminEmail: "not-an-email", AdminName: "Admin"}

	err := SeedAdmin(context.Background(), db, cfg, auth.NewBcryptHasherWithCost(bcrypt.MinCost), newDiscardLogger())
	assert.Error(t, err)
}
