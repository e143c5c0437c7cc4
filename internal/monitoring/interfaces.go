package monitoring

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"legalwatch/internal/domain"
)

type Store interface {
	CreateMonitoring(ctx context.Context, mon *domain.Monitoring) error
	// GetMonitoring returns ErrResourceNotFound for unknown ids.
	GetMonitoring(ctx context.Context, id string) (*domain.Monitoring, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*domain.Monitoring, error)
	// LockMonitoring reads the current row and holds it until the enclosing
	// transaction ends, so concurrent checks of one monitoring serialize.
	LockMonitoring(ctx context.Context, id string) (*domain.Monitoring, error)
	ListDue(ctx context.Context, now time.Time, limit int) ([]domain.Monitoring, error)
	RecordCheck(ctx context.Context, id string, checkedAt, nextCheckAt time.Time, newAlerts int) error
	MarkError(ctx context.Context, id string, message string) error
	SetStatus(ctx context.Context, id string, status domain.MonitoringStatus, nextCheckAt *time.Time) error
	LinkedCases(ctx context.Context, monitoringID string) (map[string]struct{}, error)
	LinkCases(ctx context.Context, monitoringID string, caseNumbers []string, at time.Time) error
}

type AlertStore interface {
	InsertAlerts(ctx context.Context, alerts []domain.MonitoringAlert) error
	ListAlerts(ctx context.Context, monitoringID string, unreadOnly bool) ([]domain.MonitoringAlert, error)
	// MarkAlertRead returns ErrResourceNotFound for unknown ids.
	MarkAlertRead(ctx context.Context, id string) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Fetcher re-acquires the current provider state of a monitored value.
type Fetcher interface {
	Movements(ctx context.Context, caseNumber string) ([]domain.Movement, error)
	Processes(ctx context.Context, kind domain.MonitoringKind, value string) ([]domain.ProcessSummary, error)
}

type Ledger interface {
	Charge(ctx context.Context, accountID string, amount int64, label string) (int64, error)
	Credit(ctx context.Context, accountID string, amount int64, entryType domain.EntryType, label string) (int64, error)
}

// Notifier never fails the caller; delivery errors are handled inside.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}
