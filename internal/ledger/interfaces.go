package ledger

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"legalwatch/internal/domain"
)

// Store persists balances, ledger entries and access grants. ApplyDebit and
// ApplyCredit are each one atomic unit: the balance never changes without
// its ledger entry.
type Store interface {
	GetAccount(ctx context.Context, accountID string) (*domain.CreditAccount, error)
	// ApplyDebit returns ErrAlreadyGranted when d.ResourceID is already granted,
	// *InsufficientCreditsError when the balance does not cover d.Amount, and
	// ErrAccountNotFound for unknown accounts. Nothing is written in those cases.
	ApplyDebit(ctx context.Context, d domain.Debit) (int64, error)
	// ApplyCredit opens the account on a purchase and returns ErrAccountNotFound
	// for a refund to an unknown account.
	ApplyCredit(ctx context.Context, dep domain.Deposit) (int64, error)
	HasGrant(ctx context.Context, accountID, resourceID string) (bool, error)
	ListEntries(ctx context.Context, accountID string, limit int) ([]domain.LedgerEntry, error)
}
