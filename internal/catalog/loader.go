package catalog

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"
)

// Loader fills the store from the fetcher on demand. Ensure collapses
// concurrent callers into one upstream fetch via singleflight, so a burst of
// product requests while the catalog is still empty costs one HTTP call.
type Loader struct {
	fetcher Fetcher
	store   *Store
	sfg     singleflight.Group
	logger  *slog.Logger
}

func NewLoader(fetcher Fetcher, store *Store, logger *slog.Logger) *Loader {
	return &Loader{
		fetcher: fetcher,
		store:   store,
		logger:  logger,
	}
}

// Ensure fetches the catalog if the store is still empty. An already-filled
// store returns immediately.
func (l *Loader) Ensure(ctx context.Context) error {
	if l.store.Len() > 0 {
		return nil
	}

	_, err, _ := l.sfg.Do("catalog", func() (interface{}, error) {
		if l.store.Len() > 0 {
			return nil, nil
		}
		products, err := l.fetcher.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		l.store.SetProducts(products)
		return nil, nil
	})
	return err
}

// LoadAsync kicks the initial one-shot load without blocking startup. A
// failed load is logged, not fatal: the catalog stays empty until a later
// Ensure succeeds.
func (l *Loader) LoadAsync(ctx context.Context) {
	go func() {
		if err := l.Ensure(ctx); err != nil {
			l.logger.Warn("initial catalog load failed", "error", err)
			return
		}
		l.logger.Info("catalog loaded", "products", l.store.Len())
	}()
}
