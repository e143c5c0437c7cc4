package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"legalwatch/internal/domain"
)

func (db *DB) CreateMonitoring(ctx context.Context, m *domain.Monitoring) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	cp := *m
	db.monitorings[m.ID] = &cp
	onRollback(ctx, func() { delete(db.monitorings, m.ID) })
	return nil
}

func (db *DB) GetMonitoring(_ context.Context, id string) (*domain.Monitoring, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	m, ok := db.monitorings[id]
	if !ok {
		return nil, domain.ErrResourceNotFound
	}
	cp := *m
	return &cp, nil
}

// LockMonitoring reads the monitoring. Transactions already run one at a
// time, so the read inside one is stable until it ends.
func (db *DB) LockMonitoring(ctx context.Context, id string) (*domain.Monitoring, error) {
	return db.GetMonitoring(ctx, id)
}

func (db *DB) GetByTrackingID(_ context.Context, trackingID string) (*domain.Monitoring, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, m := range db.monitorings {
		if m.ProviderTrackingID != nil && *m.ProviderTrackingID == trackingID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, domain.ErrResourceNotFound
}

// ListDue returns active monitorings with nextCheckAt <= now, oldest first.
func (db *DB) ListDue(_ context.Context, now time.Time, limit int) ([]domain.Monitoring, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var due []domain.Monitoring
	for _, m := range db.monitorings {
		if m.Status != domain.MonitoringActive || m.NextCheckAt == nil || m.NextCheckAt.After(now) {
			continue
		}
		due = append(due, *m)
	}
	sort.Slice(due, func(i, j int) bool {
		if !due[i].NextCheckAt.Equal(*due[j].NextCheckAt) {
			return due[i].NextCheckAt.Before(*due[j].NextCheckAt)
		}
		return due[i].ID < due[j].ID
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (db *DB) RecordCheck(ctx context.Context, id string, checkedAt, nextCheckAt time.Time, newAlerts int) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	m, ok := db.monitorings[id]
	if !ok {
		return domain.ErrResourceNotFound
	}
	prev := *m
	onRollback(ctx, func() {
		m.LastCheckAt = prev.LastCheckAt
		m.NextCheckAt = prev.NextCheckAt
		m.AlertsCount = prev.AlertsCount
		m.LastError = prev.LastError
	})
	m.LastCheckAt = ptrTime(checkedAt)
	m.NextCheckAt = ptrTime(nextCheckAt)
	m.AlertsCount += newAlerts
	m.LastError = nil
	return nil
}

func (db *DB) MarkError(_ context.Context, id string, message string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	m, ok := db.monitorings[id]
	if !ok {
		return domain.ErrResourceNotFound
	}
	m.Status = domain.MonitoringError
	m.LastError = ptrString(message)
	return nil
}

func (db *DB) SetStatus(_ context.Context, id string, status domain.MonitoringStatus, nextCheckAt *time.Time) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	m, ok := db.monitorings[id]
	if !ok {
		return domain.ErrResourceNotFound
	}
	m.Status = status
	if nextCheckAt != nil {
		m.NextCheckAt = ptrTime(*nextCheckAt)
	}
	if status == domain.MonitoringActive {
		m.LastError = nil
	}
	return nil
}

func (db *DB) LinkedCases(_ context.Context, monitoringID string) (map[string]struct{}, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make(map[string]struct{}, len(db.caseLinks[monitoringID]))
	for caseNumber := range db.caseLinks[monitoringID] {
		out[caseNumber] = struct{}{}
	}
	return out, nil
}

func (db *DB) LinkCases(ctx context.Context, monitoringID string, caseNumbers []string, at time.Time) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	links, ok := db.caseLinks[monitoringID]
	if !ok {
		links = make(map[string]time.Time)
		db.caseLinks[monitoringID] = links
	}
	var added []string
	for _, c := range caseNumbers {
		if _, exists := links[c]; !exists {
			links[c] = at
			added = append(added, c)
		}
	}
	onRollback(ctx, func() {
		for _, c := range added {
			delete(links, c)
		}
	})
	return nil
}

func (db *DB) InsertAlerts(ctx context.Context, alerts []domain.MonitoringAlert) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	inserted := make(map[string]struct{}, len(alerts))
	for _, a := range alerts {
		cp := a
		db.alerts[a.ID] = &cp
		db.alertOrder = append(db.alertOrder, a.ID)
		inserted[a.ID] = struct{}{}
	}
	onRollback(ctx, func() {
		db.alertOrder = slices.DeleteFunc(db.alertOrder, func(id string) bool {
			_, ok := inserted[id]
			return ok
		})
		for id := range inserted {
			delete(db.alerts, id)
		}
	})
	return nil
}

// ListAlerts returns alerts in creation order.
func (db *DB) ListAlerts(_ context.Context, monitoringID string, unreadOnly bool) ([]domain.MonitoringAlert, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make([]domain.MonitoringAlert, 0)
	for _, id := range db.alertOrder {
		a := db.alerts[id]
		if a.MonitoringID != monitoringID || (unreadOnly && a.IsRead) {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (db *DB) MarkAlertRead(_ context.Context, id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	a, ok := db.alerts[id]
	if !ok {
		return domain.ErrResourceNotFound
	}
	a.IsRead = true
	return nil
}
