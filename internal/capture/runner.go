// Package capture runs long attachment enumerations outside the request cycle.
package capture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"legalwatch/internal/config"
	"legalwatch/internal/domain"
	"legalwatch/internal/provider"
)

type Runner struct {
	jobs        JobStore
	attachments AttachmentStore
	providers   ProviderCaller
	notifier    Notifier
	cfg         config.CaptureConfig
	logger      *slog.Logger
	now         func() time.Time
	newID       func() string

	starts singleflight.Group

	base   context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRunner(
	jobs JobStore,
	attachments AttachmentStore,
	providers ProviderCaller,
	notifier Notifier,
	cfg config.CaptureConfig,
	logger *slog.Logger,
) *Runner {
	base, cancel := context.WithCancel(context.Background())
	return &Runner{
		jobs:        jobs,
		attachments: attachments,
		providers:   providers,
		notifier:    notifier,
		cfg:         cfg,
		logger:      logger.With("component", "capture"),
		now:         time.Now,
		newID:       uuid.NewString,
		base:        base,
		cancel:      cancel,
	}
}

// StartCapture returns the non-terminal job of the case if there is one, or
// creates a pending job and hands it to a background worker. It never waits
// for the capture itself.
func (r *Runner) StartCapture(ctx context.Context, caseNumber, accountID string) (*domain.CaptureJob, error) {
	if len(domain.Digits(caseNumber)) != 20 {
		return nil, fmt.Errorf("case number must have 20 digits: %w", domain.ErrInvalidArgument)
	}
	key := domain.FormatCaseNumber(caseNumber)

	v, err, _ := r.starts.Do(key, func() (any, error) {
		return r.start(ctx, key, accountID)
	})
	if err != nil {
		return nil, err
	}
	job := *v.(*domain.CaptureJob)
	return &job, nil
}

func (r *Runner) start(ctx context.Context, key, accountID string) (*domain.CaptureJob, error) {
	existing, err := r.jobs.FindActiveJob(ctx, key)
	if err != nil {
		return nil, domain.Datastore("find active job", err)
	}
	if existing != nil {
		return existing, nil
	}

	job := &domain.CaptureJob{
		ID:          r.newID(),
		ResourceKey: key,
		AccountID:   accountID,
		Status:      domain.JobPending,
		CreatedAt:   r.now().UTC(),
	}
	if err := r.jobs.CreateJob(ctx, job); err != nil {
		// Another process won the race on the unique index.
		if errors.Is(err, domain.ErrDuplicateJob) {
			existing, findErr := r.jobs.FindActiveJob(ctx, key)
			if findErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, domain.Datastore("create capture job", err)
	}

	r.logger.Info("capture job created", "job_id", job.ID, "resource_key", key, "account_id", accountID)
	r.launch(*job)
	return job, nil
}

func (r *Runner) Get(ctx context.Context, id string) (*domain.CaptureJob, error) {
	job, err := r.jobs.GetJob(ctx, id)
	if err != nil {
		return nil, domain.Datastore("get capture job", err)
	}
	return job, nil
}

// Resume relaunches every non-terminal job. Workers do not survive a restart.
func (r *Runner) Resume(ctx context.Context) (int, error) {
	jobs, err := r.jobs.ListActiveJobs(ctx)
	if err != nil {
		return 0, domain.Datastore("list active jobs", err)
	}
	for _, job := range jobs {
		r.launch(job)
	}
	if len(jobs) > 0 {
		r.logger.Info("capture jobs resumed", "jobs", len(jobs))
	}
	return len(jobs), nil
}

// Close stops the workers and waits for them until ctx is done. Interrupted
// jobs stay non-terminal and are picked up by Resume.
func (r *Runner) Close(ctx context.Context) error {
	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) launch(job domain.CaptureJob) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(r.base, job)
	}()
}

func (r *Runner) run(ctx context.Context, job domain.CaptureJob) {
	logger := r.logger.With("job_id", job.ID, "resource_key", job.ResourceKey)

	if err := r.jobs.MarkProcessing(ctx, job.ID, r.now().UTC()); err != nil {
		if ctx.Err() != nil {
			logger.Warn("capture interrupted before start", "error", err)
			return
		}
		r.fail(job, fmt.Errorf("mark job processing: %w", err), logger)
		return
	}

	captured, total, err := r.enumerate(ctx, job, logger)
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("capture interrupted", "captured", captured, "error", err)
			return
		}
		r.fail(job, err, logger)
		return
	}

	if err := r.jobs.CompleteJob(context.WithoutCancel(ctx), job.ID, captured, total, r.now().UTC()); err != nil {
		logger.Error("failed to complete job", "error", err)
		return
	}

	logger.Info("capture completed", "captured", captured, "total", total)
	r.notifier.Notify(ctx, domain.Notification{
		AccountID: job.AccountID,
		Kind:      "capture_completed",
		Title:     "Capture completed",
		Body:      fmt.Sprintf("%d attachments captured for case %s", captured, job.ResourceKey),
		Data:      jobData(job.ID, domain.JobCompleted),
	})
}

// enumerate pages through the attachments of the case, stores the unseen
// ones and reports progress every ProgressBatch items.
func (r *Runner) enumerate(ctx context.Context, job domain.CaptureJob, logger *slog.Logger) (int, int, error) {
	known, err := r.attachments.AttachmentIDs(ctx, job.ResourceKey)
	if err != nil {
		return 0, 0, fmt.Errorf("load known attachments: %w", err)
	}

	var (
		captured, total, reported int
		page                      = 1
	)
	for pages := 0; ; pages++ {
		if r.cfg.MaxPages > 0 && pages >= r.cfg.MaxPages {
			return captured, total, fmt.Errorf("attachment enumeration exceeded %d pages", r.cfg.MaxPages)
		}

		res, err := r.providers.Call(ctx, domain.OpProcessAttachments, provider.Request{
			Kind:     domain.KindCaseNumber,
			Value:    job.ResourceKey,
			Page:     page,
			PageSize: r.cfg.PageSize,
		})
		if err != nil {
			return captured, total, fmt.Errorf("fetch attachments page %d: %w", page, err)
		}

		var p domain.AttachmentPage
		if err := json.Unmarshal(res.Payload, &p); err != nil {
			return captured, total, fmt.Errorf("decode attachments page %d: %w", page, err)
		}

		fresh := make([]domain.Attachment, 0, len(p.Items))
		for _, a := range p.Items {
			if _, ok := known[a.ID]; ok {
				continue
			}
			a.CaseNumber = job.ResourceKey
			known[a.ID] = struct{}{}
			fresh = append(fresh, a)
		}
		if len(fresh) > 0 {
			if _, err := r.attachments.InsertAttachments(ctx, fresh); err != nil {
				return captured, total, fmt.Errorf("insert attachments: %w", err)
			}
		}

		captured += len(p.Items)
		total = max(p.Total, captured)

		if captured-reported >= r.cfg.ProgressBatch {
			if err := r.jobs.UpdateProgress(ctx, job.ID, captured, total); err != nil {
				logger.Warn("failed to record progress", "error", err)
			} else {
				reported = captured
			}
		}

		if p.NextPage == 0 || len(p.Items) == 0 {
			return captured, total, nil
		}
		page = p.NextPage
	}
}

func (r *Runner) fail(job domain.CaptureJob, cause error, logger *slog.Logger) {
	logger.Error("capture failed", "error", cause)

	ctx := context.WithoutCancel(r.base)
	if err := r.jobs.FailJob(ctx, job.ID, cause.Error(), r.now().UTC()); err != nil {
		logger.Error("failed to mark job failed", "error", err)
	}

	r.notifier.Notify(ctx, domain.Notification{
		AccountID: job.AccountID,
		Kind:      "capture_failed",
		Title:     "Capture failed",
		Body:      fmt.Sprintf("Capture of case %s failed: %s", job.ResourceKey, cause.Error()),
		Data:      jobData(job.ID, domain.JobFailed),
	})
}

func jobData(jobID string, status domain.JobStatus) json.RawMessage {
	data, _ := json.Marshal(map[string]string{"job_id": jobID, "status": string(status)})
	return data
}
