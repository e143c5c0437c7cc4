package monitoring

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"legalwatch/internal/domain"
)

// Observation is the provider state of a monitored value at one point in time.
type Observation struct {
	Movements []domain.Movement
	Processes []domain.ProcessSummary
}

// Sweep checks every due monitoring. A failing monitoring is moved to the
// error status and does not stop the others.
func (s *Service) Sweep(ctx context.Context) (*domain.SweepStats, error) {
	start := s.now()

	due, err := s.store.ListDue(ctx, start.UTC(), s.cfg.BatchSize)
	if err != nil {
		return nil, domain.Datastore("list due monitorings", err)
	}

	stats := &domain.SweepStats{Due: len(due)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.cfg.Concurrency, 1))

	for _, m := range due {
		g.Go(func() error {
			alerts, err := s.check(gctx, &m)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				stats.Failed++
				return nil
			}
			stats.Checked++
			stats.Alerts += alerts
			return nil
		})
	}
	_ = g.Wait()

	stats.Duration = s.now().Sub(start)
	return stats, nil
}

// check polls one monitoring and records the outcome.
func (s *Service) check(ctx context.Context, m *domain.Monitoring) (int, error) {
	logger := s.logger.With("monitoring_id", m.ID, "kind", m.Kind)

	obs, err := s.observe(ctx, m)
	if err == nil {
		var alerts int
		alerts, err = s.apply(ctx, m, obs, s.now().UTC())
		if err == nil {
			return alerts, nil
		}
	}

	// A sweep cut short leaves the row due for the next sweep.
	if ctx.Err() != nil {
		logger.Warn("monitoring check interrupted", "error", err)
		return 0, err
	}

	logger.Error("monitoring check failed", "error", err)
	if markErr := s.store.MarkError(context.WithoutCancel(ctx), m.ID, err.Error()); markErr != nil {
		logger.Error("failed to mark monitoring as errored", "error", markErr)
	}
	return 0, err
}

func (s *Service) observe(ctx context.Context, m *domain.Monitoring) (*Observation, error) {
	switch m.Kind {
	case domain.KindCaseNumber:
		movements, err := s.fetcher.Movements(ctx, m.Value)
		if err != nil {
			return nil, fmt.Errorf("fetch movements: %w", err)
		}
		return &Observation{Movements: movements}, nil
	case domain.KindTaxID, domain.KindBarNumber:
		processes, err := s.fetcher.Processes(ctx, m.Kind, m.Value)
		if err != nil {
			return nil, fmt.Errorf("search processes: %w", err)
		}
		return &Observation{Processes: processes}, nil
	}
	return nil, fmt.Errorf("monitoring kind %q: %w", m.Kind, domain.ErrInvalidArgument)
}

// apply locks m, diffs obs against its current state, stores the alerts and
// case links, and reschedules it, all in one transaction. Notifications
// follow the commit. A monitoring that stopped being active is left alone.
// It returns the number of alerts raised.
func (s *Service) apply(ctx context.Context, m *domain.Monitoring, obs *Observation, now time.Time) (int, error) {
	var (
		cur    *domain.Monitoring
		alerts []domain.MonitoringAlert
	)
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		if cur, err = s.store.LockMonitoring(ctx, m.ID); err != nil {
			return fmt.Errorf("lock monitoring: %w", err)
		}
		if cur.Status != domain.MonitoringActive {
			return nil
		}

		var newCases []string
		if alerts, newCases, err = s.diff(ctx, cur, obs, now); err != nil {
			return err
		}

		if len(alerts) > 0 {
			if err := s.alerts.InsertAlerts(ctx, alerts); err != nil {
				return fmt.Errorf("insert alerts: %w", err)
			}
		}
		if len(newCases) > 0 {
			if err := s.store.LinkCases(ctx, cur.ID, newCases, now); err != nil {
				return fmt.Errorf("link cases: %w", err)
			}
		}
		if err := s.store.RecordCheck(ctx, cur.ID, now, now.Add(cur.Frequency.Interval()), len(alerts)); err != nil {
			return fmt.Errorf("record check: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, domain.Datastore("apply monitoring check", err)
	}

	if cur.Status != domain.MonitoringActive {
		s.logger.Info("check dropped for inactive monitoring", "monitoring_id", cur.ID, "status", cur.Status)
		return 0, nil
	}

	for _, a := range alerts {
		s.notifier.Notify(ctx, s.notification(cur, a))
	}

	if len(alerts) > 0 {
		s.logger.Info("monitoring alerts raised",
			"monitoring_id", cur.ID,
			"account_id", cur.AccountID,
			"alerts", len(alerts),
		)
	}
	return len(alerts), nil
}

// diff returns the alerts obs raises against m and the cases to link. A
// movement is new when dated after the last check, or after creation before
// the first one. A case is new when it is not linked yet.
func (s *Service) diff(ctx context.Context, m *domain.Monitoring, obs *Observation, now time.Time) ([]domain.MonitoringAlert, []string, error) {
	var (
		alerts   []domain.MonitoringAlert
		newCases []string
	)

	switch m.Kind {
	case domain.KindCaseNumber:
		since := m.CreatedAt
		if m.LastCheckAt != nil {
			since = *m.LastCheckAt
		}
		for _, mv := range obs.Movements {
			if !mv.Date.After(since) {
				continue
			}
			alert, err := s.newAlert(m, domain.AlertNewMovement, now, map[string]any{
				"case_number": m.Value,
				"movement":    mv,
			})
			if err != nil {
				return nil, nil, err
			}
			alerts = append(alerts, alert)
		}

	case domain.KindTaxID, domain.KindBarNumber:
		linked, err := s.store.LinkedCases(ctx, m.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("load linked cases: %w", err)
		}
		for _, p := range obs.Processes {
			key := domain.Digits(p.CaseNumber)
			if key == "" {
				continue
			}
			if _, ok := linked[key]; ok {
				continue
			}
			linked[key] = struct{}{}
			newCases = append(newCases, key)

			alert, err := s.newAlert(m, domain.AlertNewProcess, now, map[string]any{
				"kind":    m.Kind,
				"value":   m.Value,
				"process": p,
			})
			if err != nil {
				return nil, nil, err
			}
			alerts = append(alerts, alert)
		}
	}
	return alerts, newCases, nil
}

func (s *Service) newAlert(m *domain.Monitoring, t domain.AlertType, now time.Time, payload map[string]any) (domain.MonitoringAlert, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return domain.MonitoringAlert{}, fmt.Errorf("marshal alert payload: %w", err)
	}
	return domain.MonitoringAlert{
		ID:           s.newID(),
		MonitoringID: m.ID,
		AlertType:    t,
		Payload:      raw,
		CreatedAt:    now,
	}, nil
}

func (s *Service) notification(m *domain.Monitoring, a domain.MonitoringAlert) domain.Notification {
	title := "New movement"
	body := fmt.Sprintf("Case %s has a new movement", m.Value)
	if a.AlertType == domain.AlertNewProcess {
		title = "New case"
		body = fmt.Sprintf("A new case was found for %s %s", kindLabel(m.Kind), m.Value)
	}

	data, _ := json.Marshal(map[string]string{
		"monitoring_id": m.ID,
		"alert_id":      a.ID,
		"alert_type":    string(a.AlertType),
	})
	return domain.Notification{
		AccountID: m.AccountID,
		Kind:      "monitoring_alert",
		Title:     title,
		Body:      body,
		Data:      data,
		CreatedAt: a.CreatedAt,
	}
}

func kindLabel(k domain.MonitoringKind) string {
	if k == domain.KindBarNumber {
		return "bar number"
	}
	return "tax id"
}
