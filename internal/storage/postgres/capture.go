package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"legalwatch/internal/domain"
)

const jobColumns = `
	id, resource_key, account_id, status, total_items, captured_items,
	started_at, completed_at, error_message, created_at`

type JobStore struct {
	db *sqlx.DB
}

func NewJobStore(db *sqlx.DB) *JobStore {
	return &JobStore{db: db}
}

// CreateJob relies on uq_capture_jobs_active to reject a second
// non-terminal job for the same resource.
func (s *JobStore) CreateJob(ctx context.Context, job *domain.CaptureJob) error {
	query := `
		INSERT INTO capture_jobs (id, resource_key, account_id, status, total_items, captured_items, created_at)
		VALUES (:id, :resource_key, :account_id, :status, :total_items, :captured_items, :created_at)`

	_, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, job)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateJob
	}
	return err
}

func (s *JobStore) GetJob(ctx context.Context, id string) (*domain.CaptureJob, error) {
	if !validID(id) {
		return nil, domain.ErrResourceNotFound
	}
	var job domain.CaptureJob
	err := s.db.GetContext(ctx, &job, `SELECT `+jobColumns+` FROM capture_jobs WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrResourceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *JobStore) FindActiveJob(ctx context.Context, resourceKey string) (*domain.CaptureJob, error) {
	var job domain.CaptureJob
	query := `
		SELECT ` + jobColumns + `
		FROM capture_jobs
		WHERE resource_key = $1 AND status IN ('pending', 'processing')`

	err := s.db.GetContext(ctx, &job, query, resourceKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *JobStore) ListActiveJobs(ctx context.Context) ([]domain.CaptureJob, error) {
	jobs := []domain.CaptureJob{}
	query := `
		SELECT ` + jobColumns + `
		FROM capture_jobs
		WHERE status IN ('pending', 'processing')
		ORDER BY created_at`

	if err := s.db.SelectContext(ctx, &jobs, query); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobStore) MarkProcessing(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE capture_jobs
		SET status = 'processing', started_at = COALESCE(started_at, $2)
		WHERE id = $1 AND status IN ('pending', 'processing')`

	return s.transition(ctx, id, query, id, at)
}

func (s *JobStore) UpdateProgress(ctx context.Context, id string, captured, total int) error {
	query := `UPDATE capture_jobs SET captured_items = $2, total_items = $3 WHERE id = $1`
	return expectRow(s.db.ExecContext(ctx, query, id, captured, total))
}

func (s *JobStore) CompleteJob(ctx context.Context, id string, captured, total int, at time.Time) error {
	query := `
		UPDATE capture_jobs
		SET status = 'completed', captured_items = $2, total_items = $3, completed_at = $4
		WHERE id = $1 AND status = 'processing'`

	return s.transition(ctx, id, query, id, captured, total, at)
}

func (s *JobStore) FailJob(ctx context.Context, id string, message string, at time.Time) error {
	query := `
		UPDATE capture_jobs
		SET status = 'failed', error_message = $2, completed_at = $3
		WHERE id = $1 AND status IN ('pending', 'processing')`

	return s.transition(ctx, id, query, id, message, at)
}

// transition runs a guarded status update and tells a missing job apart
// from one whose status forbids the move.
func (s *JobStore) transition(ctx context.Context, id, query string, args ...any) error {
	err := expectRow(s.db.ExecContext(ctx, query, args...))
	if !errors.Is(err, domain.ErrResourceNotFound) {
		return err
	}

	var exists bool
	if err := s.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM capture_jobs WHERE id = $1)`, id); err != nil {
		return fmt.Errorf("check job: %w", err)
	}
	if exists {
		return domain.ErrInvalidTransition
	}
	return domain.ErrResourceNotFound
}

type AttachmentStore struct {
	db *sqlx.DB
}

func NewAttachmentStore(db *sqlx.DB) *AttachmentStore {
	return &AttachmentStore{db: db}
}

func (s *AttachmentStore) AttachmentIDs(ctx context.Context, caseNumber string) (map[string]struct{}, error) {
	var ids []string
	if err := s.db.SelectContext(ctx, &ids, `SELECT attachment_id FROM process_attachments WHERE case_number = $1`, caseNumber); err != nil {
		return nil, err
	}

	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

func (s *AttachmentStore) InsertAttachments(ctx context.Context, items []domain.Attachment) (int, error) {
	query := `
		INSERT INTO process_attachments (case_number, attachment_id, title, url, filed_at)
		VALUES (:case_number, :attachment_id, :title, :url, :filed_at)
		ON CONFLICT (case_number, attachment_id) DO NOTHING`

	exec := GetExecutor(ctx, s.db)
	inserted := 0
	for _, a := range items {
		res, err := sqlx.NamedExecContext(ctx, exec, query, a)
		if err != nil {
			return inserted, fmt.Errorf("insert attachment %s: %w", a.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return inserted, err
		}
		inserted += int(n)
	}
	return inserted, nil
}

// Attachments lists the recorded attachments of a case ordered by id.
func (s *AttachmentStore) Attachments(ctx context.Context, caseNumber string) ([]domain.Attachment, error) {
	items := []domain.Attachment{}
	query := `
		SELECT attachment_id, case_number, title, url, filed_at
		FROM process_attachments
		WHERE case_number = $1
		ORDER BY attachment_id`

	if err := s.db.SelectContext(ctx, &items, query, caseNumber); err != nil {
		return nil, err
	}
	return items, nil
}
