package root

import (
	"context"
	"database/sql"

	"shadowquest/internal/config"
	"shadowquest/internal/engine"
	"shadowquest/internal/storage"
)

func openDB(ctx context.Context, cfg config.Config) (*sql.DB, func(), error) {
	path := cfg.DBPath
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

// openService opens the store, seeds the default catalog on first run and
// rolls the registry over to today.
func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, cleanup, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	svc := engine.NewService(db)

	today := engine.Today()
	if err := svc.SeedDefaults(ctx, today); err != nil {
		cleanup()
		return nil, nil, err
	}
	if _, err := svc.RolloverIfNewDay(ctx, today); err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
