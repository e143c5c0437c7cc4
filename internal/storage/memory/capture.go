package memory

import (
	"context"
	"sort"
	"time"

	"legalwatch/internal/domain"
)

func (db *DB) CreateJob(_ context.Context, job *domain.CaptureJob) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, j := range db.jobs {
		if j.ResourceKey == job.ResourceKey && !j.Status.Terminal() {
			return domain.ErrDuplicateJob
		}
	}
	cp := *job
	db.jobs[job.ID] = &cp
	return nil
}

func (db *DB) GetJob(_ context.Context, id string) (*domain.CaptureJob, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	j, ok := db.jobs[id]
	if !ok {
		return nil, domain.ErrResourceNotFound
	}
	cp := *j
	return &cp, nil
}

func (db *DB) FindActiveJob(_ context.Context, resourceKey string) (*domain.CaptureJob, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, j := range db.jobs {
		if j.ResourceKey == resourceKey && !j.Status.Terminal() {
			cp := *j
			return &cp, nil
		}
	}
	return nil, nil
}

func (db *DB) ListActiveJobs(_ context.Context) ([]domain.CaptureJob, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var out []domain.CaptureJob
	for _, j := range db.jobs {
		if !j.Status.Terminal() {
			out = append(out, *j)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.Before(out[k].CreatedAt) })
	return out, nil
}

func (db *DB) MarkProcessing(_ context.Context, id string, at time.Time) error {
	return db.updateJob(id, func(j *domain.CaptureJob) error {
		if j.Status.Terminal() {
			return domain.ErrInvalidTransition
		}
		j.Status = domain.JobProcessing
		if j.StartedAt == nil {
			j.StartedAt = ptrTime(at)
		}
		return nil
	})
}

func (db *DB) UpdateProgress(_ context.Context, id string, captured, total int) error {
	return db.updateJob(id, func(j *domain.CaptureJob) error {
		j.CapturedItems = captured
		j.TotalItems = total
		return nil
	})
}

func (db *DB) CompleteJob(_ context.Context, id string, captured, total int, at time.Time) error {
	return db.updateJob(id, func(j *domain.CaptureJob) error {
		if j.Status != domain.JobProcessing {
			return domain.ErrInvalidTransition
		}
		j.Status = domain.JobCompleted
		j.CapturedItems = captured
		j.TotalItems = total
		j.CompletedAt = ptrTime(at)
		return nil
	})
}

func (db *DB) FailJob(_ context.Context, id string, message string, at time.Time) error {
	return db.updateJob(id, func(j *domain.CaptureJob) error {
		if j.Status.Terminal() {
			return domain.ErrInvalidTransition
		}
		j.Status = domain.JobFailed
		j.ErrorMessage = ptrString(message)
		j.CompletedAt = ptrTime(at)
		return nil
	})
}

func (db *DB) updateJob(id string, fn func(j *domain.CaptureJob) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	j, ok := db.jobs[id]
	if !ok {
		return domain.ErrResourceNotFound
	}
	return fn(j)
}

func (db *DB) AttachmentIDs(_ context.Context, caseNumber string) (map[string]struct{}, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make(map[string]struct{}, len(db.attachments[caseNumber]))
	for id := range db.attachments[caseNumber] {
		out[id] = struct{}{}
	}
	return out, nil
}

func (db *DB) InsertAttachments(_ context.Context, items []domain.Attachment) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	inserted := 0
	for _, a := range items {
		byCase, ok := db.attachments[a.CaseNumber]
		if !ok {
			byCase = make(map[string]domain.Attachment)
			db.attachments[a.CaseNumber] = byCase
		}
		if _, exists := byCase[a.ID]; exists {
			continue
		}
		byCase[a.ID] = a
		inserted++
	}
	return inserted, nil
}

// Attachments lists the recorded attachments of a case ordered by id.
func (db *DB) Attachments(_ context.Context, caseNumber string) ([]domain.Attachment, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make([]domain.Attachment, 0, len(db.attachments[caseNumber]))
	for _, a := range db.attachments[caseNumber] {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
