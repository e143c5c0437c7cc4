package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"legalwatch/internal/acquisition"
	"legalwatch/internal/domain"
	"legalwatch/internal/monitoring"
)

type Acquirer interface {
	SearchProcesses(ctx context.Context, accountID string, kind domain.MonitoringKind, value string) (*acquisition.Result, error)
	ProcessDetail(ctx context.Context, accountID, caseNumber string, includeAttachments bool) (*acquisition.Result, error)
	Registration(ctx context.Context, accountID, taxID string) (*acquisition.Result, error)
	CriminalRecord(ctx context.Context, accountID, taxID string) (*acquisition.Result, error)
	GazetteSearch(ctx context.Context, accountID, query string) (*acquisition.Result, error)
}

type Accounts interface {
	Account(ctx context.Context, accountID string) (*domain.CreditAccount, error)
	Entries(ctx context.Context, accountID string, limit int) ([]domain.LedgerEntry, error)
	Credit(ctx context.Context, accountID string, amount int64, entryType domain.EntryType, label string) (int64, error)
	HasGrant(ctx context.Context, accountID, resourceID string) (bool, error)
}

type Monitorings interface {
	Create(ctx context.Context, req monitoring.CreateRequest) (*domain.Monitoring, error)
	Get(ctx context.Context, id string) (*domain.Monitoring, error)
	Pause(ctx context.Context, id string) (*domain.Monitoring, error)
	Resume(ctx context.Context, id string) (*domain.Monitoring, error)
	ListAlerts(ctx context.Context, monitoringID string, unreadOnly bool) ([]domain.MonitoringAlert, error)
	MarkAlertRead(ctx context.Context, alertID string) error
	Ingest(ctx context.Context, providerName, trackingID string, obs monitoring.Observation) (int, error)
}

type Captures interface {
	StartCapture(ctx context.Context, caseNumber, accountID string) (*domain.CaptureJob, error)
	Get(ctx context.Context, id string) (*domain.CaptureJob, error)
}

type Notifications interface {
	ListNotifications(ctx context.Context, accountID string, limit int) ([]domain.Notification, error)
}
