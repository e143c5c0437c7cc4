package provider

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"legalwatch/internal/domain"
)

// ConfigSource lists provider registry rows.
type ConfigSource interface {
	ListProviders(ctx context.Context) ([]domain.ProviderConfig, error)
}

// StaticSource serves registry rows loaded from the config file.
type StaticSource []domain.ProviderConfig

func (s StaticSource) ListProviders(context.Context) ([]domain.ProviderConfig, error) {
	out := make([]domain.ProviderConfig, len(s))
	copy(out, s)
	return out, nil
}

// Entry is a provider ready to be called.
type Entry struct {
	Config  domain.ProviderConfig
	Client  Client
	limiter *rate.Limiter
}

// Allow reports whether the provider has rate budget for one more call.
func (e *Entry) Allow() bool {
	if e.limiter == nil {
		return true
	}
	return e.limiter.Allow()
}

// Snapshot is an immutable view of the registry taken at LoadedAt.
type Snapshot struct {
	LoadedAt time.Time
	entries  []*Entry
	byName   map[string]*Entry
}

// NewSnapshot builds a snapshot from ready entries.
func NewSnapshot(entries []*Entry, loadedAt time.Time) *Snapshot {
	s := &Snapshot{LoadedAt: loadedAt, entries: entries, byName: make(map[string]*Entry, len(entries))}
	for _, e := range entries {
		s.byName[e.Config.Name] = e
	}
	return s
}

// Entries returns every entry, active or not.
func (s *Snapshot) Entries() []*Entry {
	return s.entries
}

// Resolve returns the active providers able to serve op in call order:
// ascending priority with one provider per priority rank, each provider
// immediately followed by its named fallback. A fallback claims its own
// rank and is skipped when that rank is already taken. No provider appears
// twice.
func (s *Snapshot) Resolve(op domain.Operation) []*Entry {
	if s == nil {
		return nil
	}

	capable := func(e *Entry) bool {
		return e != nil && e.Config.IsActive && e.Client != nil && e.Client.Supports(op)
	}

	var candidates []*Entry
	for _, e := range s.entries {
		if capable(e) {
			candidates = append(candidates, e)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Config.Priority != candidates[j].Config.Priority {
			return candidates[i].Config.Priority < candidates[j].Config.Priority
		}
		return candidates[i].Config.Name < candidates[j].Config.Name
	})

	ordered := make([]*Entry, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	ranks := make(map[int]bool, len(candidates))

	for _, e := range candidates {
		if ranks[e.Config.Priority] || seen[e.Config.Name] {
			continue
		}
		ranks[e.Config.Priority] = true
		seen[e.Config.Name] = true
		ordered = append(ordered, e)

		if fb := e.Config.FallbackProvider; fb != nil {
			if f, ok := s.byName[*fb]; ok && capable(f) && !seen[f.Config.Name] && !ranks[f.Config.Priority] {
				ranks[f.Config.Priority] = true
				seen[f.Config.Name] = true
				ordered = append(ordered, f)
			}
		}
	}

	return ordered
}

// Registry loads provider rows from a source and publishes snapshots.
type Registry struct {
	source    ConfigSource
	factories map[string]Factory
	logger    *slog.Logger

	current atomic.Pointer[Snapshot]

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewRegistry(source ConfigSource, factories map[string]Factory, logger *slog.Logger) *Registry {
	r := &Registry{
		source:    source,
		factories: factories,
		logger:    logger.With("component", "provider_registry"),
		limiters:  make(map[string]*rate.Limiter),
	}
	r.current.Store(NewSnapshot(nil, time.Time{}))
	return r
}

// Snapshot returns the last loaded snapshot.
func (r *Registry) Snapshot() *Snapshot {
	return r.current.Load()
}

// Refresh reloads the registry rows and swaps the published snapshot.
func (r *Registry) Refresh(ctx context.Context) error {
	configs, err := r.source.ListProviders(ctx)
	if err != nil {
		return fmt.Errorf("list providers: %w", err)
	}

	entries := make([]*Entry, 0, len(configs))
	for _, cfg := range configs {
		factory, ok := r.factories[cfg.Name]
		if !ok {
			r.logger.Warn("no adapter registered for provider", "provider", cfg.Name)
			continue
		}
		client, err := factory(cfg)
		if err != nil {
			r.logger.Error("failed to build provider client", "provider", cfg.Name, "error", err)
			continue
		}
		entries = append(entries, &Entry{
			Config:  cfg,
			Client:  client,
			limiter: r.limiterFor(cfg),
		})
	}

	r.current.Store(NewSnapshot(entries, time.Now()))
	r.logger.Debug("provider registry refreshed", "providers", len(entries))
	return nil
}

// Watch refreshes the registry every interval until ctx is done.
func (r *Registry) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Refresh(ctx); err != nil {
				r.logger.Error("provider registry refresh failed", "error", err)
			}
		}
	}
}

// limiterFor keeps one limiter per provider across refreshes so a reload
// does not reset the bucket.
func (r *Registry) limiterFor(cfg domain.ProviderConfig) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg.RateLimit <= 0 {
		delete(r.limiters, cfg.Name)
		return nil
	}

	burst := int(cfg.RateLimit)
	if burst < 1 {
		burst = 1
	}

	l, ok := r.limiters[cfg.Name]
	if !ok {
		l = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
		r.limiters[cfg.Name] = l
		return l
	}
	if l.Limit() != rate.Limit(cfg.RateLimit) {
		l.SetLimit(rate.Limit(cfg.RateLimit))
		l.SetBurst(burst)
	}
	return l
}
