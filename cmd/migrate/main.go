package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"nightlife-feedback/internal/handler/middleware"
	"nightlife-feedback/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// migrate applies migrations/ with the atlas CLI. Only the DB_* variables are
// read, so it can run before the service is configured.
func main() {
	dir := flag.String("dir", "migrations", "directory holding the versioned migrations and atlas.sum")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	statusOnly := flag.Bool("status", false, "print the migration status without applying")
	flag.Parse()

	_ = godotenv.Load()
	var (
		dbCfg  config.DBConfig
		logCfg config.LogConfig
	)
	if err := envconfig.Process("", &dbCfg); err != nil {
		slog.Error("failed to read database config", "error", err)
		os.Exit(1)
	}
	if err := envconfig.Process("", &logCfg); err != nil {
		slog.Error("failed to read log config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(logCfg).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, logger, *dir, *bin, dbCfg.BuildDSN(), *statusOnly); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, dir, bin, dsn string, statusOnly bool) error {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return err
	}

	if statusOnly {
		status, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: dsn})
		if err != nil {
			return err
		}
		logger.Info("migration status",
			"current", status.Current,
			"next", status.Next,
			"pending", len(status.Pending))
		return nil
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: dsn})
	if err != nil {
		return err
	}
	for _, f := range res.Applied {
		logger.Info("migration applied", "version", f.Version, "file", f.Name)
	}
	logger.Info("database is up to date", "current", res.Current, "target", res.Target)
	return nil
}
