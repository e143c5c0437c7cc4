package acquisition

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"legalwatch/internal/domain"
	"legalwatch/internal/ledger"
	"legalwatch/internal/provider"
)

// CacheStore returns nil, nil on a miss.
type CacheStore interface {
	GetEntry(ctx context.Context, d domain.Domain, lookupKey string) (*domain.CacheEntry, error)
	UpsertEntry(ctx context.Context, entry *domain.CacheEntry) error
}

type ProviderCaller interface {
	Call(ctx context.Context, op domain.Operation, req provider.Request) (*provider.Result, error)
}

type Ledger interface {
	Charge(ctx context.Context, accountID string, amount int64, label string) (int64, error)
	ChargeResource(ctx context.Context, accountID, resourceID string, amount int64, label string) (*ledger.Charge, error)
}
