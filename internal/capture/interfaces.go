package capture

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"legalwatch/internal/domain"
	"legalwatch/internal/provider"
)

type JobStore interface {
	// CreateJob returns ErrDuplicateJob when a non-terminal job exists for
	// the same resource key.
	CreateJob(ctx context.Context, job *domain.CaptureJob) error
	// GetJob returns ErrResourceNotFound for unknown ids.
	GetJob(ctx context.Context, id string) (*domain.CaptureJob, error)
	// FindActiveJob returns nil, nil when no non-terminal job exists.
	FindActiveJob(ctx context.Context, resourceKey string) (*domain.CaptureJob, error)
	ListActiveJobs(ctx context.Context) ([]domain.CaptureJob, error)
	MarkProcessing(ctx context.Context, id string, at time.Time) error
	UpdateProgress(ctx context.Context, id string, captured, total int) error
	CompleteJob(ctx context.Context, id string, captured, total int, at time.Time) error
	FailJob(ctx context.Context, id string, message string, at time.Time) error
}

type AttachmentStore interface {
	AttachmentIDs(ctx context.Context, caseNumber string) (map[string]struct{}, error)
	// InsertAttachments skips rows already recorded and returns how many were new.
	InsertAttachments(ctx context.Context, items []domain.Attachment) (int, error)
}

type ProviderCaller interface {
	Call(ctx context.Context, op domain.Operation, req provider.Request) (*provider.Result, error)
}

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}
