package memory

import (
	"context"
	"fmt"

	"legalwatch/internal/domain"
)

func (db *DB) GetEntry(_ context.Context, d domain.Domain, lookupKey string) (*domain.CacheEntry, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	table, ok := db.cache[d]
	if !ok {
		return nil, fmt.Errorf("unknown cache domain %q", d)
	}
	e, ok := table[lookupKey]
	if !ok {
		return nil, nil
	}
	e.Payload = append([]byte(nil), e.Payload...)
	return &e, nil
}

func (db *DB) UpsertEntry(_ context.Context, entry *domain.CacheEntry) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	table, ok := db.cache[entry.Domain]
	if !ok {
		return fmt.Errorf("unknown cache domain %q", entry.Domain)
	}
	e := *entry
	e.Payload = append([]byte(nil), entry.Payload...)
	table[entry.LookupKey] = e
	return nil
}
