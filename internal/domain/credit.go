package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryType string

const (
	EntryPurchase    EntryType = "purchase"
	EntryConsumption EntryType = "consumption"
	EntryRefund      EntryType = "refund"
)

type SubscriptionStatus string

const (
	SubscriptionNone     SubscriptionStatus = "none"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

type CreditAccount struct {
	AccountID          string             `db:"account_id" json:"account_id"`
	Balance            int64              `db:"balance" json:"balance"`
	PerCreditCost      decimal.Decimal    `db:"per_credit_cost" json:"per_credit_cost"`
	SubscriptionStatus SubscriptionStatus `db:"subscription_status" json:"subscription_status"`
	NextBillingDate    *time.Time         `db:"next_billing_date" json:"next_billing_date,omitempty"`
}

// LedgerEntry is append-only. CreditsDelta is negative for consumption.
type LedgerEntry struct {
	ID             int64           `db:"id" json:"id"`
	AccountID      string          `db:"account_id" json:"account_id"`
	Type           EntryType       `db:"type" json:"type"`
	OperationLabel string          `db:"operation_label" json:"operation_label"`
	CreditsDelta   int64           `db:"credits_delta" json:"credits_delta"`
	CostInCurrency decimal.Decimal `db:"cost_in_currency" json:"cost_in_currency"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

// AccessGrant records that an account already paid for a resource.
type AccessGrant struct {
	AccountID   string    `db:"account_id" json:"account_id"`
	ResourceID  string    `db:"resource_id" json:"resource_id"`
	CostCharged int64     `db:"cost_charged" json:"cost_charged"`
	GrantedAt   time.Time `db:"granted_at" json:"granted_at"`
}

// Debit describes one atomic consumption: a balance decrement, its ledger
// entry and, when ResourceID is set, the access grant for that resource.
type Debit struct {
	AccountID  string
	Amount     int64
	Label      string
	ResourceID string
	At         time.Time
}

// Deposit describes one purchase or refund. PerCreditCost prices the account
// when a purchase opens it.
type Deposit struct {
	AccountID     string
	Amount        int64
	Type          EntryType
	Label         string
	PerCreditCost decimal.Decimal
	At            time.Time
}
