package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"legalwatch/internal/domain"
)

var cacheTables = map[domain.Domain]string{
	domain.DomainProcess:        "process_cache",
	domain.DomainRegistration:   "registration_cache",
	domain.DomainCriminalRecord: "criminal_record_cache",
	domain.DomainGazette:        "gazette_cache",
}

// CacheStore keeps one table per data domain.
type CacheStore struct {
	db *sqlx.DB
}

func NewCacheStore(db *sqlx.DB) *CacheStore {
	return &CacheStore{db: db}
}

func (s *CacheStore) GetEntry(ctx context.Context, d domain.Domain, lookupKey string) (*domain.CacheEntry, error) {
	table, ok := cacheTables[d]
	if !ok {
		return nil, fmt.Errorf("unknown cache domain %q", d)
	}

	var entry domain.CacheEntry
	query := `SELECT lookup_key, payload, provider, last_updated_at FROM ` + table + ` WHERE lookup_key = $1`

	err := s.db.GetContext(ctx, &entry, query, lookupKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	entry.Domain = d
	return &entry, nil
}

func (s *CacheStore) UpsertEntry(ctx context.Context, entry *domain.CacheEntry) error {
	table, ok := cacheTables[entry.Domain]
	if !ok {
		return fmt.Errorf("unknown cache domain %q", entry.Domain)
	}

	query := `
		INSERT INTO ` + table + ` (lookup_key, payload, provider, last_updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (lookup_key) DO UPDATE SET
			payload = EXCLUDED.payload,
			provider = EXCLUDED.provider,
			last_updated_at = EXCLUDED.last_updated_at`

	_, err := s.db.ExecContext(ctx, query,
		entry.LookupKey,
		string(entry.Payload),
		entry.Provider,
		entry.LastUpdatedAt,
	)
	return err
}
