package domain

import (
	"encoding/json"
	"time"
)

// Domain is one category of acquirable data, backed by its own cache table.
type Domain string

const (
	DomainProcess        Domain = "process"
	DomainRegistration   Domain = "registration"
	DomainCriminalRecord Domain = "criminal_record"
	DomainGazette        Domain = "gazette"
)

// Domains lists every cache domain.
var Domains = []Domain{DomainProcess, DomainRegistration, DomainCriminalRecord, DomainGazette}

// CacheEntry is a cached provider payload for one lookup key.
type CacheEntry struct {
	Domain        Domain          `db:"-"`
	LookupKey     string          `db:"lookup_key"`
	Payload       json.RawMessage `db:"payload"`
	Provider      string          `db:"provider"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}

// Fresh reports whether the entry may still be served at now.
func (e *CacheEntry) Fresh(now time.Time, ttl time.Duration) bool {
	if e == nil {
		return false
	}
	return now.Sub(e.LastUpdatedAt) < ttl
}
