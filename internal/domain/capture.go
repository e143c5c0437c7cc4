package domain

import "time"

type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// Terminal reports whether no further transition is allowed.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

type CaptureJob struct {
	ID            string     `db:"id" json:"job_id"`
	ResourceKey   string     `db:"resource_key" json:"resource_key"`
	AccountID     string     `db:"account_id" json:"account_id"`
	Status        JobStatus  `db:"status" json:"status"`
	TotalItems    int        `db:"total_items" json:"total_items"`
	CapturedItems int        `db:"captured_items" json:"captured_items"`
	StartedAt     *time.Time `db:"started_at" json:"started_at,omitempty"`
	CompletedAt   *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	ErrorMessage  *string    `db:"error_message" json:"error_message,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}
