package memory

import (
	"context"
	"sort"
	"time"

	"legalwatch/internal/domain"
)

// PutProvider inserts or replaces a provider row.
func (db *DB) PutProvider(cfg domain.ProviderConfig) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.providers[cfg.Name] = cfg
}

func (db *DB) ListProviders(_ context.Context) ([]domain.ProviderConfig, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make([]domain.ProviderConfig, 0, len(db.providers))
	for _, cfg := range db.providers {
		out = append(out, cfg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (db *DB) MarkHealthy(_ context.Context, name string, at time.Time) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	cfg, ok := db.providers[name]
	if !ok {
		return nil
	}
	cfg.LastHealthCheck = ptrTime(at)
	db.providers[name] = cfg
	return nil
}
