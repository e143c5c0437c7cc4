package domain

import (
	"encoding/json"
	"time"
)

type MonitoringKind string

const (
	KindCaseNumber MonitoringKind = "case_number"
	KindTaxID      MonitoringKind = "tax_id"
	KindBarNumber  MonitoringKind = "bar_number"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Interval returns the time between two checks.
func (f Frequency) Interval() time.Duration {
	if f == FrequencyWeekly {
		return 7 * 24 * time.Hour
	}
	return 24 * time.Hour
}

type MonitoringStatus string

const (
	MonitoringActive MonitoringStatus = "active"
	MonitoringPaused MonitoringStatus = "paused"
	MonitoringError  MonitoringStatus = "error"
)

type Monitoring struct {
	ID                 string           `db:"id" json:"id"`
	AccountID          string           `db:"account_id" json:"account_id"`
	Kind               MonitoringKind   `db:"kind" json:"kind"`
	Value              string           `db:"value" json:"value"`
	LinkedResourceID   *string          `db:"linked_resource_id" json:"linked_resource_id,omitempty"`
	Frequency          Frequency        `db:"frequency" json:"frequency"`
	Status             MonitoringStatus `db:"status" json:"status"`
	LastCheckAt        *time.Time       `db:"last_check_at" json:"last_check_at,omitempty"`
	NextCheckAt        *time.Time       `db:"next_check_at" json:"next_check_at,omitempty"`
	AlertsCount        int              `db:"alerts_count" json:"alerts_count"`
	ProviderTrackingID *string          `db:"provider_tracking_id" json:"provider_tracking_id,omitempty"`
	CallbackURL        *string          `db:"callback_url" json:"callback_url,omitempty"`
	LastError          *string          `db:"last_error" json:"last_error,omitempty"`
	CreatedAt          time.Time        `db:"created_at" json:"created_at"`
}

type AlertType string

const (
	AlertNewMovement AlertType = "new_movement"
	AlertNewProcess  AlertType = "new_process"
)

type MonitoringAlert struct {
	ID           string          `db:"id" json:"id"`
	MonitoringID string          `db:"monitoring_id" json:"monitoring_id"`
	AlertType    AlertType       `db:"alert_type" json:"alert_type"`
	Payload      json.RawMessage `db:"payload" json:"payload"`
	IsRead       bool            `db:"is_read" json:"is_read"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// Notification is a user-facing message; rendering and delivery happen elsewhere.
type Notification struct {
	ID        string          `db:"id" json:"id"`
	AccountID string          `db:"account_id" json:"account_id"`
	Kind      string          `db:"kind" json:"kind"`
	Title     string          `db:"title" json:"title"`
	Body      string          `db:"body" json:"body"`
	Data      json.RawMessage `db:"data" json:"data,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// SweepStats summarises one poller sweep.
type SweepStats struct {
	Due      int
	Checked  int
	Alerts   int
	Failed   int
	Duration time.Duration
}
