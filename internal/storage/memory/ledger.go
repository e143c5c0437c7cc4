package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"legalwatch/internal/domain"
)

// PutAccount inserts or replaces an account.
func (db *DB) PutAccount(acct domain.CreditAccount) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.accounts[acct.AccountID] = &acct
}

func (db *DB) GetAccount(_ context.Context, accountID string) (*domain.CreditAccount, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	acct, ok := db.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	cp := *acct
	return &cp, nil
}

// ApplyDebit holds the account lock across grant check, balance check and
// mutation so concurrent debits on one account are serialised.
func (db *DB) ApplyDebit(_ context.Context, d domain.Debit) (int64, error) {
	lock := db.accountLock(d.AccountID)
	lock.Lock()
	defer lock.Unlock()

	db.mu.Lock()
	defer db.mu.Unlock()

	acct, ok := db.accounts[d.AccountID]
	if !ok {
		return 0, domain.ErrAccountNotFound
	}

	key := grantKey{accountID: d.AccountID, resourceID: d.ResourceID}
	if d.ResourceID != "" {
		if _, granted := db.grants[key]; granted {
			return 0, domain.ErrAlreadyGranted
		}
	}
	if acct.Balance < d.Amount {
		return 0, &domain.InsufficientCreditsError{Required: d.Amount, Available: acct.Balance}
	}

	acct.Balance -= d.Amount
	db.appendEntry(domain.LedgerEntry{
		AccountID:      d.AccountID,
		Type:           domain.EntryConsumption,
		OperationLabel: d.Label,
		CreditsDelta:   -d.Amount,
		CostInCurrency: acct.PerCreditCost.Mul(decimal.NewFromInt(d.Amount)),
		CreatedAt:      d.At,
	})
	if d.ResourceID != "" {
		db.grants[key] = domain.AccessGrant{
			AccountID:   d.AccountID,
			ResourceID:  d.ResourceID,
			CostCharged: d.Amount,
			GrantedAt:   d.At,
		}
	}
	return acct.Balance, nil
}

func (db *DB) ApplyCredit(_ context.Context, dep domain.Deposit) (int64, error) {
	lock := db.accountLock(dep.AccountID)
	lock.Lock()
	defer lock.Unlock()

	db.mu.Lock()
	defer db.mu.Unlock()

	acct, ok := db.accounts[dep.AccountID]
	if !ok {
		if dep.Type != domain.EntryPurchase {
			return 0, domain.ErrAccountNotFound
		}
		acct = &domain.CreditAccount{
			AccountID:          dep.AccountID,
			PerCreditCost:      dep.PerCreditCost,
			SubscriptionStatus: domain.SubscriptionNone,
		}
		db.accounts[dep.AccountID] = acct
	}

	acct.Balance += dep.Amount
	db.appendEntry(domain.LedgerEntry{
		AccountID:      dep.AccountID,
		Type:           dep.Type,
		OperationLabel: dep.Label,
		CreditsDelta:   dep.Amount,
		CostInCurrency: acct.PerCreditCost.Mul(decimal.NewFromInt(dep.Amount)),
		CreatedAt:      dep.At,
	})
	return acct.Balance, nil
}

func (db *DB) HasGrant(_ context.Context, accountID, resourceID string) (bool, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	_, ok := db.grants[grantKey{accountID: accountID, resourceID: resourceID}]
	return ok, nil
}

// ListEntries returns the newest entries first.
func (db *DB) ListEntries(_ context.Context, accountID string, limit int) ([]domain.LedgerEntry, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make([]domain.LedgerEntry, 0)
	for i := len(db.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if db.entries[i].AccountID == accountID {
			out = append(out, db.entries[i])
		}
	}
	return out, nil
}

// Grants lists the access grants of an account ordered by resource id.
func (db *DB) Grants(accountID string) []domain.AccessGrant {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var out []domain.AccessGrant
	for k, g := range db.grants {
		if k.accountID == accountID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ResourceID < out[j].ResourceID })
	return out
}

func (db *DB) appendEntry(e domain.LedgerEntry) {
	e.ID = int64(len(db.entries) + 1)
	db.entries = append(db.entries, e)
}

func (db *DB) accountLock(accountID string) *sync.Mutex {
	db.mu.Lock()
	defer db.mu.Unlock()

	l, ok := db.accountLocks[accountID]
	if !ok {
		l = &sync.Mutex{}
		db.accountLocks[accountID] = l
	}
	return l
}
