package main

import (
	"fmt"

	"github.com/td0m/checklist/internal/config"
	"github.com/td0m/checklist/pkg/persist"
	"github.com/td0m/checklist/pkg/task"
)

// openStore picks the slot backend named in the configuration
func openStore(cfg *config.Config) (task.Persistor, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		s, err := persist.OpenSQLite(cfg.SQLitePath, cfg.Key)
		if err != nil {
			return nil, err
		}
		s.Timeout = cfg.StoreTimeout
		return s, nil
	case config.StoreRedis:
		r, err := persist.DialRedis(cfg.RedisURL, cfg.Key)
		if err != nil {
			return nil, err
		}
		r.Timeout = cfg.StoreTimeout
		return r, nil
	case config.StoreFile:
		return persist.InJSON(cfg.File), nil
	}
	return nil, fmt.Errorf("%w %q", config.ErrUnknownStore, cfg.Store)
}
