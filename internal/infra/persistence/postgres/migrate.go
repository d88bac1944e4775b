package postgres

import (
	"context"
	"log/slog"

	"restaurant/config"
	"restaurant/internal/domain/entity"
	"restaurant/internal/domain/repository"
	"restaurant/internal/domain/service"
	"restaurant/internal/errors"
	"restaurant/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Models lists every persistence model in dependency order.
func Models() []any {
	return []any{
		&model.UserModel{},
		&model.ProductModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
	}
}

// Migrate creates or alters the tables for all persistence models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}

	return nil
}

// SeedAdmin inserts the default waiter account unless a user with the same email exists.
func SeedAdmin(ctx context.Context, db *gorm.DB, cfg *config.MigrationConfig, hasher service.PasswordHasher, logger *slog.Logger) error {
	users := NewUserRepository(db)

	_, err := users.FindByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	admin, err := entity.NewUser(cfg.AdminEmail, cfg.AdminName)
	if err != nil {
		return errors.Wrap(err, "invalid admin account configuration")
	}

	if cfg.AdminPassword != "" {
		hash, err := hasher.Hash(cfg.AdminPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash admin password")
		}
		admin.PasswordHash = hash
	}

	if err := users.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to seed admin user")
	}

	logger.InfoContext(ctx, "Seeded admin waiter", slog.String("email", admin.Email), slog.Int64("userID", admin.ID))

	return nil
}
