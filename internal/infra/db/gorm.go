package db

import (
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenGorm shares the pgx pool with gorm so history writes use the same
// connections as the request store.
func OpenGorm(pool *pgxpool.Pool) (*gorm.DB, func(), error) {
	sqlDB := stdlib.OpenDBFromPool(pool)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			slog.Warn("failed to close gorm connection", "error", err)
		}
	}
	return gdb, cleanup, nil
}
