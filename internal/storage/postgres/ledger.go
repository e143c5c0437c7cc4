package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"legalwatch/internal/domain"
)

// LedgerStore keeps balances, ledger entries and access grants. Each debit
// and credit runs in its own transaction.
type LedgerStore struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewLedgerStore(db *sqlx.DB, tm *TransactionManager) *LedgerStore {
	return &LedgerStore{db: db, tm: tm}
}

func (s *LedgerStore) GetAccount(ctx context.Context, accountID string) (*domain.CreditAccount, error) {
	var acct domain.CreditAccount
	query := `
		SELECT account_id, balance, per_credit_cost, subscription_status, next_billing_date
		FROM credit_accounts
		WHERE account_id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &acct, query, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

// ApplyDebit claims the grant first so a concurrent debit for the same
// resource blocks on the primary key, then decrements the balance only if it
// covers the amount.
func (s *LedgerStore) ApplyDebit(ctx context.Context, d domain.Debit) (int64, error) {
	var balance int64

	err := s.tm.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, s.db)

		if d.ResourceID != "" {
			res, err := exec.ExecContext(ctx, `
				INSERT INTO access_grants (account_id, resource_id, cost_charged, granted_at)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (account_id, resource_id) DO NOTHING`,
				d.AccountID, d.ResourceID, d.Amount, d.At,
			)
			if isForeignKeyViolation(err) {
				return domain.ErrAccountNotFound
			}
			if err != nil {
				return fmt.Errorf("insert access grant: %w", err)
			}
			if n, err := res.RowsAffected(); err != nil {
				return err
			} else if n == 0 {
				return domain.ErrAlreadyGranted
			}
		}

		var perCreditCost decimal.Decimal
		err := exec.QueryRowxContext(ctx, `
			UPDATE credit_accounts
			SET balance = balance - $2
			WHERE account_id = $1 AND balance >= $2
			RETURNING balance, per_credit_cost`,
			d.AccountID, d.Amount,
		).Scan(&balance, &perCreditCost)
		if errors.Is(err, sql.ErrNoRows) {
			acct, getErr := s.GetAccount(ctx, d.AccountID)
			if getErr != nil {
				return getErr
			}
			return &domain.InsufficientCreditsError{Required: d.Amount, Available: acct.Balance}
		}
		if err != nil {
			return fmt.Errorf("decrement balance: %w", err)
		}

		return s.insertEntry(ctx, exec, domain.LedgerEntry{
			AccountID:      d.AccountID,
			Type:           domain.EntryConsumption,
			OperationLabel: d.Label,
			CreditsDelta:   -d.Amount,
			CostInCurrency: perCreditCost.Mul(decimal.NewFromInt(d.Amount)),
			CreatedAt:      d.At,
		})
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (s *LedgerStore) ApplyCredit(ctx context.Context, dep domain.Deposit) (int64, error) {
	var balance int64

	err := s.tm.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, s.db)

		var perCreditCost decimal.Decimal
		var err error
		if dep.Type == domain.EntryPurchase {
			err = exec.QueryRowxContext(ctx, `
				INSERT INTO credit_accounts (account_id, balance, per_credit_cost)
				VALUES ($1, $2, $3)
				ON CONFLICT (account_id) DO UPDATE SET
					balance = credit_accounts.balance + EXCLUDED.balance
				RETURNING balance, per_credit_cost`,
				dep.AccountID, dep.Amount, dep.PerCreditCost,
			).Scan(&balance, &perCreditCost)
		} else {
			err = exec.QueryRowxContext(ctx, `
				UPDATE credit_accounts
				SET balance = balance + $2
				WHERE account_id = $1
				RETURNING balance, per_credit_cost`,
				dep.AccountID, dep.Amount,
			).Scan(&balance, &perCreditCost)
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrAccountNotFound
			}
		}
		if err != nil {
			return fmt.Errorf("increment balance: %w", err)
		}

		return s.insertEntry(ctx, exec, domain.LedgerEntry{
			AccountID:      dep.AccountID,
			Type:           dep.Type,
			OperationLabel: dep.Label,
			CreditsDelta:   dep.Amount,
			CostInCurrency: perCreditCost.Mul(decimal.NewFromInt(dep.Amount)),
			CreatedAt:      dep.At,
		})
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (s *LedgerStore) insertEntry(ctx context.Context, exec sqlx.ExtContext, e domain.LedgerEntry) error {
	_, err := exec.ExecContext(ctx, `
		INSERT INTO ledger_entries (account_id, type, operation_label, credits_delta, cost_in_currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		e.AccountID, e.Type, e.OperationLabel, e.CreditsDelta, e.CostInCurrency, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

func (s *LedgerStore) HasGrant(ctx context.Context, accountID, resourceID string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM access_grants WHERE account_id = $1 AND resource_id = $2)`,
		accountID, resourceID,
	)
	return exists, err
}

// ListEntries returns the newest entries first.
func (s *LedgerStore) ListEntries(ctx context.Context, accountID string, limit int) ([]domain.LedgerEntry, error) {
	entries := []domain.LedgerEntry{}
	query := `
		SELECT id, account_id, type, operation_label, credits_delta, cost_in_currency, created_at
		FROM ledger_entries
		WHERE account_id = $1
		ORDER BY id DESC
		LIMIT $2`

	if err := s.db.SelectContext(ctx, &entries, query, accountID, limit); err != nil {
		return nil, err
	}
	return entries, nil
}
