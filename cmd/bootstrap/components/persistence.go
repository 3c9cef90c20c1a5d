package components

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nightlife-feedback/internal/infra/db"
	"nightlife-feedback/internal/infra/history"
	"nightlife-feedback/internal/infra/store"
	"nightlife-feedback/internal/infra/uow"
	"nightlife-feedback/internal/pkg/config"
	"nightlife-feedback/internal/usecase/queries"
	"nightlife-feedback/internal/usecase/shared"

	"go.uber.org/fx"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
)

type Persistence struct {
	fx.Out

	Store   shared.FeedbackStore
	History shared.HistoryLog
	Reader  queries.HistoryReadStore
}

// NewPersistence picks the request store by STORE_DRIVER. Records always go to
// Postgres through gorm unless the whole deployment runs in memory.
func NewPersistence(cfg config.Config, conn *db.Connector, logger *slog.Logger) (Persistence, error) {
	var backend shared.FeedbackStore

	switch cfg.Store.Driver {
	case DriverMemory:
		log := history.NewMemoryLog()
		return Persistence{
			Store:   store.NewResilientStore(store.NewMemoryStore(), cfg.Store.SaveRetries, cfg.Store.RetryBackoff, logger),
			History: log,
			Reader:  log,
		}, nil
	case DriverPostgres:
		pool, err := conn.Postgres()
		if err != nil {
			return Persistence{}, err
		}
		backend = store.NewPostgresStore(uow.NewPostgresUoW(pool, logger), logger)
	case DriverMongo:
		mdb, err := conn.Mongo()
		if err != nil {
			return Persistence{}, err
		}
		ms := store.NewMongoStore(mdb, cfg.Mongo.Collection, logger)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := ms.EnsureIndexes(ctx); err != nil {
			return Persistence{}, err
		}
		backend = ms
	default:
		return Persistence{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}

	gdb, err := conn.Gorm()
	if err != nil {
		return Persistence{}, err
	}
	log := history.NewGormLog(gdb, logger)

	return Persistence{
		Store:   store.NewResilientStore(backend, cfg.Store.SaveRetries, cfg.Store.RetryBackoff, logger),
		History: log,
		Reader:  log,
	}, nil
}
