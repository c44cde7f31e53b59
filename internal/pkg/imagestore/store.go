package imagestore

import (
	"context"
	"io"
	"sync"
)

// Store saves uploaded gallery images and returns the durable public URL
// (or local path) recorded in the database. Delete is best-effort: callers
// log failures and remove the database row regardless.
type Store interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, imagePath string) error
}

var (
	store     Store
	storeOnce sync.Once
)

// Setup initializes the process-wide image store from the environment
func Setup() (Store, error) {
	var err error
	storeOnce.Do(func() {
		var cfg *Config
		cfg, err = LoadConfig()
		if err != nil {
			return
		}
		if cfg.Backend == "s3" {
			store, err = NewS3Store(cfg)
			return
		}
		store, err = NewLocalStore(cfg)
	})
	return store, err
}

// GetStore returns the process-wide image store
func GetStore() Store {
	if store == nil {
		if _, err := Setup(); err != nil {
			panic(err)
		}
	}
	return store
}

// SetStore overrides the process-wide store (tests)
func SetStore(s Store) {
	store = s
}
