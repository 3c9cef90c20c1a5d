package bootstrap

import (
	"context"

	"nightlife-feedback/internal/infra/db"
	"nightlife-feedback/internal/pkg/config"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewConnector,
	),
)

func NewConnector(lc fx.Lifecycle, cfg config.Config) *db.Connector {
	conn := db.NewConnector(cfg.DB, cfg.Mongo)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			conn.Close()
			return nil
		},
	})

	return conn
}
