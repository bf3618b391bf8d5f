package cli

import (
	"fmt"
	"time"

	"github.com/dshills/autocommit/internal/cache"
	"github.com/dshills/autocommit/internal/config"
)

// openStore loads the persisted cache into a fresh Store. A corrupt cache
// file is not fatal: generation still works, so reinitialize empty.
func openStore(cfg config.Config) (*cache.Store, string, error) {
	path := cfg.Cache.Path
	if path == "" {
		p, err := cache.DefaultPath()
		if err != nil {
			return nil, "", err
		}
		path = p
	}

	store := cache.New(time.Duration(cfg.Cache.TTLDays)*24*time.Hour, cfg.Cache.MaxEntries)
	snap, err := cache.LoadFile(path)
	if err != nil {
		return store, path, nil
	}
	store.Restore(snap)
	return store, path, nil
}

// saveStore persists the store back to disk (save-at-end).
func saveStore(store *cache.Store, path string) error {
	if err := cache.SaveFile(path, store.Snapshot()); err != nil {
		return fmt.Errorf("saving cache: %w", err)
	}
	return nil
}
