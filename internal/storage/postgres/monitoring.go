package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"legalwatch/internal/domain"
)

const monitoringColumns = `
	id, account_id, kind, value, linked_resource_id, frequency, status,
	last_check_at, next_check_at, alerts_count, provider_tracking_id,
	callback_url, last_error, created_at`

type MonitoringStore struct {
	db    *sqlx.DB
	lease time.Duration
}

// NewMonitoringStore returns a store whose ListDue leases the returned rows
// for lease so concurrent sweepers skip them.
func NewMonitoringStore(db *sqlx.DB, lease time.Duration) *MonitoringStore {
	return &MonitoringStore{db: db, lease: lease}
}

func (s *MonitoringStore) CreateMonitoring(ctx context.Context, m *domain.Monitoring) error {
	query := `
		INSERT INTO monitorings (
			id, account_id, kind, value, linked_resource_id, frequency, status,
			next_check_at, provider_tracking_id, callback_url, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		m.ID,
		m.AccountID,
		m.Kind,
		m.Value,
		m.LinkedResourceID,
		m.Frequency,
		m.Status,
		m.NextCheckAt,
		m.ProviderTrackingID,
		m.CallbackURL,
		m.CreatedAt,
	)
	return err
}

func (s *MonitoringStore) GetMonitoring(ctx context.Context, id string) (*domain.Monitoring, error) {
	if !validID(id) {
		return nil, domain.ErrResourceNotFound
	}
	return s.get(ctx, `id = $1`, id)
}

func (s *MonitoringStore) GetByTrackingID(ctx context.Context, trackingID string) (*domain.Monitoring, error) {
	return s.get(ctx, `provider_tracking_id = $1`, trackingID)
}

// LockMonitoring reads the row with FOR UPDATE. Outside a transaction the
// lock is released as soon as the statement ends.
func (s *MonitoringStore) LockMonitoring(ctx context.Context, id string) (*domain.Monitoring, error) {
	if !validID(id) {
		return nil, domain.ErrResourceNotFound
	}
	return s.get(ctx, `id = $1 FOR UPDATE`, id)
}

func (s *MonitoringStore) get(ctx context.Context, where, value string) (*domain.Monitoring, error) {
	var m domain.Monitoring
	query := `SELECT ` + monitoringColumns + ` FROM monitorings WHERE ` + where

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &m, query, value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrResourceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListDue claims up to limit active monitorings due at now. Claimed rows get
// next_check_at pushed by the lease until RecordCheck reschedules them.
func (s *MonitoringStore) ListDue(ctx context.Context, now time.Time, limit int) ([]domain.Monitoring, error) {
	query := `
		WITH due AS (
			SELECT id
			FROM monitorings
			WHERE status = 'active' AND next_check_at <= $1
			ORDER BY next_check_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		UPDATE monitorings m
		SET next_check_at = $1::timestamptz + $3 * INTERVAL '1 second'
		FROM due
		WHERE m.id = due.id
		RETURNING
			m.id, m.account_id, m.kind, m.value, m.linked_resource_id, m.frequency,
			m.status, m.last_check_at, m.next_check_at, m.alerts_count,
			m.provider_tracking_id, m.callback_url, m.last_error, m.created_at`

	monitorings := []domain.Monitoring{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &monitorings, query, now, limit, int64(s.lease.Seconds()))
	if err != nil {
		return nil, err
	}
	return monitorings, nil
}

func (s *MonitoringStore) RecordCheck(ctx context.Context, id string, checkedAt, nextCheckAt time.Time, newAlerts int) error {
	query := `
		UPDATE monitorings
		SET last_check_at = $2,
			next_check_at = $3,
			alerts_count = alerts_count + $4,
			last_error = NULL
		WHERE id = $1`

	return expectRow(GetExecutor(ctx, s.db).ExecContext(ctx, query, id, checkedAt, nextCheckAt, newAlerts))
}

func (s *MonitoringStore) MarkError(ctx context.Context, id string, message string) error {
	query := `UPDATE monitorings SET status = 'error', last_error = $2 WHERE id = $1`
	return expectRow(GetExecutor(ctx, s.db).ExecContext(ctx, query, id, message))
}

func (s *MonitoringStore) SetStatus(ctx context.Context, id string, status domain.MonitoringStatus, nextCheckAt *time.Time) error {
	query := `
		UPDATE monitorings
		SET status = $2,
			next_check_at = COALESCE($3, next_check_at),
			last_error = CASE WHEN $2 = 'active' THEN NULL ELSE last_error END
		WHERE id = $1`

	return expectRow(GetExecutor(ctx, s.db).ExecContext(ctx, query, id, status, nextCheckAt))
}

func (s *MonitoringStore) LinkedCases(ctx context.Context, monitoringID string) (map[string]struct{}, error) {
	var cases []string
	query := `SELECT case_number FROM monitoring_case_links WHERE monitoring_id = $1`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &cases, query, monitoringID); err != nil {
		return nil, err
	}

	out := make(map[string]struct{}, len(cases))
	for _, c := range cases {
		out[c] = struct{}{}
	}
	return out, nil
}

func (s *MonitoringStore) LinkCases(ctx context.Context, monitoringID string, caseNumbers []string, at time.Time) error {
	query := `
		INSERT INTO monitoring_case_links (monitoring_id, case_number, linked_at)
		SELECT $1::uuid, unnest($2::text[]), $3::timestamptz
		ON CONFLICT (monitoring_id, case_number) DO NOTHING`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, monitoringID, pq.Array(caseNumbers), at)
	return err
}

type AlertStore struct {
	db *sqlx.DB
}

func NewAlertStore(db *sqlx.DB) *AlertStore {
	return &AlertStore{db: db}
}

func (s *AlertStore) InsertAlerts(ctx context.Context, alerts []domain.MonitoringAlert) error {
	query := `
		INSERT INTO monitoring_alerts (id, monitoring_id, alert_type, payload, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	exec := GetExecutor(ctx, s.db)
	for _, a := range alerts {
		_, err := exec.ExecContext(ctx, query, a.ID, a.MonitoringID, a.AlertType, string(a.Payload), a.IsRead, a.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListAlerts returns alerts in creation order.
func (s *AlertStore) ListAlerts(ctx context.Context, monitoringID string, unreadOnly bool) ([]domain.MonitoringAlert, error) {
	alerts := []domain.MonitoringAlert{}
	query := `
		SELECT id, monitoring_id, alert_type, payload, is_read, created_at
		FROM monitoring_alerts
		WHERE monitoring_id = $1 AND (NOT $2 OR NOT is_read)
		ORDER BY created_at, id`

	if err := s.db.SelectContext(ctx, &alerts, query, monitoringID, unreadOnly); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (s *AlertStore) MarkAlertRead(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrResourceNotFound
	}
	return expectRow(s.db.ExecContext(ctx, `UPDATE monitoring_alerts SET is_read = TRUE WHERE id = $1`, id))
}

// expectRow maps an update that touched nothing to ErrResourceNotFound.
func expectRow(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}
