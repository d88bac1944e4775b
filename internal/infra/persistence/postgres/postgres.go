package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"restaurant/config"
	"restaurant/internal/domain/lifecycle"
	"restaurant/internal/domain/service"
	"restaurant/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolStatsInterval     = 5 * time.Second
	poolWaitWarnThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Hasher service.PasswordHasher
}

// New opens the PostgreSQL connection (primary plus replicas) and registers
// lifecycle hooks for ping, migration and shutdown.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes use txManager.Execute; single statements run without an implicit transaction.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := prepareSchema(ctx, db, params); err != nil {
				return err
			}

			go watchPool(watchCtx, params.Logger, sqlDB, poolStatsInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func prepareSchema(ctx context.Context, db *gorm.DB, params Params) error {
	migration := params.Config.Migration
	if migration == nil {
		return nil
	}

	if migration.AutoMigrate {
		if err := Migrate(ctx, db); err != nil {
			return err
		}
		params.Logger.InfoContext(ctx, "Database schema migrated")
	}

	if migration.SeedAdmin {
		if err := SeedAdmin(ctx, db, migration, params.Hasher, params.Logger); err != nil {
			return err
		}
	}

	return nil
}

// watchPool reports connection pool contention: requests that had to wait for
// a free connection since the previous tick.
func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := sqlDB.Stats()
			waits := stats.WaitCount - last.WaitCount
			waited := stats.WaitDuration - last.WaitDuration
			last = stats

			if waits <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waited >= poolWaitWarnThreshold {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Postgres pool contention",
				slog.Int64("waits", waits),
				slog.Duration("waited", waited),
				slog.Duration("avgWait", waited/time.Duration(waits)),
				slog.Int("inUse", stats.InUse),
				slog.Int("idle", stats.Idle),
				slog.Int("maxOpen", stats.MaxOpenConnections),
			)
		}
	}
}
