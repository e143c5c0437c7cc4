package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"legalwatch/internal/domain"
)

type ProviderStore struct {
	db *sqlx.DB
}

func NewProviderStore(db *sqlx.DB) *ProviderStore {
	return &ProviderStore{db: db}
}

func (s *ProviderStore) ListProviders(ctx context.Context) ([]domain.ProviderConfig, error) {
	var configs []domain.ProviderConfig
	query := `
		SELECT name, endpoint_url, credential, is_active, priority, rate_limit,
		       timeout_ms, fallback_provider_name, last_health_check
		FROM provider_configs
		ORDER BY priority, name`

	if err := s.db.SelectContext(ctx, &configs, query); err != nil {
		return nil, err
	}
	return configs, nil
}

// UpsertProvider writes a registry row, keeping its last health check.
func (s *ProviderStore) UpsertProvider(ctx context.Context, cfg domain.ProviderConfig) error {
	query := `
		INSERT INTO provider_configs (
			name, endpoint_url, credential, is_active, priority, rate_limit,
			timeout_ms, fallback_provider_name
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (name) DO UPDATE SET
			endpoint_url = EXCLUDED.endpoint_url,
			credential = EXCLUDED.credential,
			is_active = EXCLUDED.is_active,
			priority = EXCLUDED.priority,
			rate_limit = EXCLUDED.rate_limit,
			timeout_ms = EXCLUDED.timeout_ms,
			fallback_provider_name = EXCLUDED.fallback_provider_name`

	_, err := s.db.ExecContext(ctx, query,
		cfg.Name,
		cfg.EndpointURL,
		cfg.Credential,
		cfg.IsActive,
		cfg.Priority,
		cfg.RateLimit,
		cfg.TimeoutMs,
		cfg.FallbackProvider,
	)
	return err
}

func (s *ProviderStore) MarkHealthy(ctx context.Context, name string, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE provider_configs SET last_health_check = $2 WHERE name = $1`,
		name, at,
	)
	return err
}
