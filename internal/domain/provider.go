package domain

import "time"

// Operation identifies a capability a provider may expose.
type Operation string

const (
	OpProcessSearch      Operation = "process_search"
	OpProcessDetail      Operation = "process_detail"
	OpProcessMovements   Operation = "process_movements"
	OpProcessAttachments Operation = "process_attachments"
	OpRegistration       Operation = "registration"
	OpCriminalRecord     Operation = "criminal_record"
	OpGazetteSearch      Operation = "gazette_search"
)

// ProviderConfig is one row of the provider registry.
type ProviderConfig struct {
	Name             string     `db:"name" yaml:"name"`
	EndpointURL      string     `db:"endpoint_url" yaml:"endpoint_url"`
	Credential       string     `db:"credential" yaml:"credential"`
	IsActive         bool       `db:"is_active" yaml:"active"`
	Priority         int        `db:"priority" yaml:"priority"`
	RateLimit        float64    `db:"rate_limit" yaml:"rate_limit"` // requests per second, 0 = unlimited
	TimeoutMs        int        `db:"timeout_ms" yaml:"timeout_ms"`
	FallbackProvider *string    `db:"fallback_provider_name" yaml:"fallback_provider"`
	LastHealthCheck  *time.Time `db:"last_health_check" yaml:"-"`
}

// Timeout returns the configured per-call timeout.
func (p ProviderConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutMs) * time.Millisecond
}
