package root

import (
	"context"
	"database/sql"
	"io"

	"go.uber.org/zap"

	"arcadenexus/internal/config"
	"arcadenexus/internal/engine"
	"arcadenexus/internal/logging"
	"arcadenexus/internal/storage"
	"arcadenexus/internal/ui"
)

type app struct {
	cfg     config.Config
	log     *zap.Logger
	db      *sql.DB
	store   *storage.ProfileStore
	reports *storage.ReportRepo
	svc     *engine.Service
}

// openApp loads config, opens the database and starts a session that renders to out.
func openApp(ctx context.Context, out io.Writer) (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	path, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("database opened", zap.String("path", path))

	store := storage.NewProfileStore(db, cfg.ProfileKey, log)
	reports := storage.NewReportRepo(db)
	svc := engine.NewService(store, reports, ui.NewTerminal(out), log)
	svc.Load(ctx)

	cleanup := func() {
		_ = db.Close()
		_ = log.Sync()
	}
	return &app{cfg: cfg, log: log, db: db, store: store, reports: reports, svc: svc}, cleanup, nil
}
