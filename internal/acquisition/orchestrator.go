// Package acquisition serves the user-facing lookups: cache first, providers
// on a miss, and metering through the credit ledger.
package acquisition

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"legalwatch/internal/config"
	"legalwatch/internal/domain"
	"legalwatch/internal/provider"
)

// Request describes one metered acquisition.
type Request struct {
	Operation domain.Operation
	LookupKey string
	// ResourceID keys the access grant of per-resource operations. It
	// defaults to LookupKey.
	ResourceID string
	AccountID  string
	CreditCost int64
	Provider   provider.Request
}

type Result struct {
	Payload        json.RawMessage
	FromCache      bool
	CreditsCharged int64
	Provider       string
}

type Orchestrator struct {
	cache     CacheStore
	providers ProviderCaller
	ledger    Ledger
	ttl       config.TTLConfig
	pricing   config.OperationPricing
	logger    *slog.Logger
	now       func() time.Time
}

func New(
	cache CacheStore,
	providers ProviderCaller,
	ledger Ledger,
	ttl config.TTLConfig,
	pricing config.OperationPricing,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		cache:     cache,
		providers: providers,
		ledger:    ledger,
		ttl:       ttl,
		pricing:   pricing,
		logger:    logger.With("component", "acquisition"),
		now:       time.Now,
	}
}

// Acquire serves req from a fresh cache entry for free, or fetches it through
// the providers, caches it and charges the caller according to the policy of
// the operation.
func (o *Orchestrator) Acquire(ctx context.Context, req Request) (*Result, error) {
	policy, ok := domain.PolicyFor(req.Operation)
	if !ok {
		return nil, fmt.Errorf("acquire %s: %w", req.Operation, domain.ErrUnknownOperation)
	}

	logger := o.logger.With("operation", req.Operation, "account_id", req.AccountID)

	entry, err := o.cache.GetEntry(ctx, policy.Domain, req.LookupKey)
	if err != nil {
		return nil, domain.Datastore("get cache entry", err)
	}
	if entry.Fresh(o.now(), o.ttl.For(policy.Domain)) {
		logger.Debug("cache hit", "lookup_key", req.LookupKey)
		return &Result{Payload: entry.Payload, FromCache: true, Provider: entry.Provider}, nil
	}

	res, err := o.providers.Call(ctx, req.Operation, req.Provider)
	if err != nil {
		return nil, fmt.Errorf("acquire %s: %w", req.Operation, err)
	}

	o.store(ctx, policy.Domain, req.LookupKey, res)

	// The caller stopped waiting while the provider answered: the cache keeps
	// the data, nobody is charged for it.
	if err := ctx.Err(); err != nil {
		logger.Warn("caller gone before charge, skipping charge", "provider", res.Provider, "error", err)
		return nil, err
	}

	charged, err := o.charge(ctx, policy, req)
	if err != nil {
		return nil, err
	}

	logger.Info("acquired from provider",
		"provider", res.Provider,
		"credits_charged", charged,
		"failed_providers", len(res.Failures),
	)

	return &Result{
		Payload:        res.Payload,
		FromCache:      false,
		CreditsCharged: charged,
		Provider:       res.Provider,
	}, nil
}

// Refresh fetches op from the providers and overwrites its cache entry
// without charging anybody.
func (o *Orchestrator) Refresh(ctx context.Context, op domain.Operation, lookupKey string, req provider.Request) (json.RawMessage, error) {
	policy, ok := domain.PolicyFor(op)
	if !ok {
		return nil, fmt.Errorf("refresh %s: %w", op, domain.ErrUnknownOperation)
	}

	res, err := o.providers.Call(ctx, op, req)
	if err != nil {
		return nil, fmt.Errorf("refresh %s: %w", op, err)
	}

	o.store(ctx, policy.Domain, lookupKey, res)
	return res.Payload, nil
}

// store upserts the provider answer. The write outlives the caller and a
// failure does not fail the acquisition.
func (o *Orchestrator) store(ctx context.Context, d domain.Domain, lookupKey string, res *provider.Result) {
	entry := &domain.CacheEntry{
		Domain:        d,
		LookupKey:     lookupKey,
		Payload:       res.Payload,
		Provider:      res.Provider,
		LastUpdatedAt: o.now(),
	}
	if err := o.cache.UpsertEntry(context.WithoutCancel(ctx), entry); err != nil {
		o.logger.Error("failed to write cache entry",
			"domain", d,
			"lookup_key", lookupKey,
			"error", err,
		)
	}
}

func (o *Orchestrator) charge(ctx context.Context, policy domain.Policy, req Request) (int64, error) {
	if policy.Charge == domain.ChargeFree || req.CreditCost <= 0 {
		return 0, nil
	}

	label := string(req.Operation)

	switch policy.Charge {
	case domain.ChargePerResource:
		resourceID := req.ResourceID
		if resourceID == "" {
			resourceID = req.LookupKey
		}
		c, err := o.ledger.ChargeResource(ctx, req.AccountID, resourceID, req.CreditCost, label)
		if err != nil {
			return 0, fmt.Errorf("charge %s: %w", label, err)
		}
		return c.Credits, nil
	default:
		if _, err := o.ledger.Charge(ctx, req.AccountID, req.CreditCost, label); err != nil {
			return 0, fmt.Errorf("charge %s: %w", label, err)
		}
		return req.CreditCost, nil
	}
}
