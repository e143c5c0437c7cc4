// Package ledger meters credit consumption per account.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"legalwatch/internal/domain"
)

// Charge is the outcome of a metered operation.
type Charge struct {
	Credits int64 // credits actually deducted, 0 when already granted
	Balance int64
}

type Ledger struct {
	store         Store
	perCreditCost decimal.Decimal
	logger        *slog.Logger
	now           func() time.Time
}

// New returns a Ledger. perCreditCost prices accounts opened by a purchase.
func New(store Store, perCreditCost decimal.Decimal, logger *slog.Logger) *Ledger {
	return &Ledger{
		store:         store,
		perCreditCost: perCreditCost,
		logger:        logger.With("component", "ledger"),
		now:           time.Now,
	}
}

// Charge deducts amount from the account and appends one consumption entry.
func (l *Ledger) Charge(ctx context.Context, accountID string, amount int64, label string) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	balance, err := l.store.ApplyDebit(ctx, domain.Debit{
		AccountID: accountID,
		Amount:    amount,
		Label:     label,
		At:        l.now(),
	})
	if err != nil {
		return 0, l.debitError(accountID, amount, label, err)
	}

	l.logger.Info("credits charged",
		"account_id", accountID,
		"amount", amount,
		"label", label,
		"balance", balance,
	)
	return balance, nil
}

// ChargeResource charges amount once per (account, resource). A second call
// for the same pair deducts nothing and reports Credits == 0.
func (l *Ledger) ChargeResource(ctx context.Context, accountID, resourceID string, amount int64, label string) (*Charge, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	balance, err := l.store.ApplyDebit(ctx, domain.Debit{
		AccountID:  accountID,
		Amount:     amount,
		Label:      label,
		ResourceID: resourceID,
		At:         l.now(),
	})
	if errors.Is(err, domain.ErrAlreadyGranted) {
		acct, err := l.store.GetAccount(ctx, accountID)
		if err != nil {
			return nil, domain.Datastore("get account", err)
		}
		l.logger.Debug("resource already granted", "account_id", accountID, "resource_id", resourceID)
		return &Charge{Credits: 0, Balance: acct.Balance}, nil
	}
	if err != nil {
		return nil, l.debitError(accountID, amount, label, err)
	}

	l.logger.Info("resource access charged",
		"account_id", accountID,
		"resource_id", resourceID,
		"amount", amount,
		"balance", balance,
	)
	return &Charge{Credits: amount, Balance: balance}, nil
}

// Credit adds amount to the account (purchase or refund). There is no upper bound.
func (l *Ledger) Credit(ctx context.Context, accountID string, amount int64, entryType domain.EntryType, label string) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	if entryType != domain.EntryPurchase && entryType != domain.EntryRefund {
		return 0, fmt.Errorf("credit with entry type %q: %w", entryType, domain.ErrInvalidTransition)
	}

	balance, err := l.store.ApplyCredit(ctx, domain.Deposit{
		AccountID:     accountID,
		Amount:        amount,
		Type:          entryType,
		Label:         label,
		PerCreditCost: l.perCreditCost,
		At:            l.now(),
	})
	if err != nil {
		return 0, domain.Datastore("apply credit", err)
	}

	l.logger.Info("credits added",
		"account_id", accountID,
		"amount", amount,
		"type", entryType,
		"balance", balance,
	)
	return balance, nil
}

func (l *Ledger) HasGrant(ctx context.Context, accountID, resourceID string) (bool, error) {
	ok, err := l.store.HasGrant(ctx, accountID, resourceID)
	if err != nil {
		return false, domain.Datastore("has grant", err)
	}
	return ok, nil
}

func (l *Ledger) Account(ctx context.Context, accountID string) (*domain.CreditAccount, error) {
	acct, err := l.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, domain.Datastore("get account", err)
	}
	return acct, nil
}

func (l *Ledger) Entries(ctx context.Context, accountID string, limit int) ([]domain.LedgerEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	entries, err := l.store.ListEntries(ctx, accountID, limit)
	if err != nil {
		return nil, domain.Datastore("list entries", err)
	}
	return entries, nil
}

func (l *Ledger) debitError(accountID string, amount int64, label string, err error) error {
	var insufficient *domain.InsufficientCreditsError
	if errors.As(err, &insufficient) {
		l.logger.Info("charge rejected",
			"account_id", accountID,
			"label", label,
			"required", insufficient.Required,
			"available", insufficient.Available,
		)
		return err
	}
	return domain.Datastore("apply debit", err)
}
