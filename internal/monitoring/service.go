// Package monitoring tracks subscriptions on case numbers, tax IDs and bar
// numbers and raises alerts when providers report new activity.
package monitoring

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"legalwatch/internal/config"
	"legalwatch/internal/domain"
)

type Service struct {
	store    Store
	alerts   AlertStore
	tx       TransactionManager
	fetcher  Fetcher
	ledger   Ledger
	notifier Notifier
	cfg      config.MonitoringConfig
	cost     int64
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

func NewService(
	store Store,
	alerts AlertStore,
	tx TransactionManager,
	fetcher Fetcher,
	ledger Ledger,
	notifier Notifier,
	cfg config.MonitoringConfig,
	cost int64,
	logger *slog.Logger,
) *Service {
	return &Service{
		store:    store,
		alerts:   alerts,
		tx:       tx,
		fetcher:  fetcher,
		ledger:   ledger,
		notifier: notifier,
		cfg:      cfg,
		cost:     cost,
		logger:   logger.With("component", "monitoring"),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

type CreateRequest struct {
	AccountID          string
	Kind               domain.MonitoringKind
	Value              string
	Frequency          domain.Frequency
	CallbackURL        *string
	ProviderTrackingID *string
}

// Create charges the subscription and stores an active monitoring whose first
// check is one frequency interval away. Tax ID and bar number monitorings
// link the cases found at creation, so only later cases raise alerts.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Monitoring, error) {
	value, err := normalizeValue(req.Kind, req.Value)
	if err != nil {
		return nil, err
	}
	if req.Frequency != domain.FrequencyDaily && req.Frequency != domain.FrequencyWeekly {
		return nil, fmt.Errorf("frequency %q: %w", req.Frequency, domain.ErrInvalidArgument)
	}

	baseline, err := s.baseline(ctx, req.Kind, value)
	if err != nil {
		return nil, err
	}

	if s.cost > 0 {
		if _, err := s.ledger.Charge(ctx, req.AccountID, s.cost, "monitoring"); err != nil {
			return nil, fmt.Errorf("charge monitoring: %w", err)
		}
	}

	now := s.now().UTC()
	next := now.Add(req.Frequency.Interval())
	m := &domain.Monitoring{
		ID:                 s.newID(),
		AccountID:          req.AccountID,
		Kind:               req.Kind,
		Value:              value,
		Frequency:          req.Frequency,
		Status:             domain.MonitoringActive,
		NextCheckAt:        &next,
		ProviderTrackingID: req.ProviderTrackingID,
		CallbackURL:        req.CallbackURL,
		CreatedAt:          now,
	}
	if req.Kind == domain.KindCaseNumber {
		resource := "process:" + domain.Digits(value)
		m.LinkedResourceID = &resource
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.store.CreateMonitoring(ctx, m); err != nil {
			return err
		}
		if len(baseline) > 0 {
			if err := s.store.LinkCases(ctx, m.ID, baseline, now); err != nil {
				return fmt.Errorf("link baseline cases: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.refund(ctx, req.AccountID)
		return nil, domain.Datastore("create monitoring", err)
	}

	s.logger.Info("monitoring created",
		"monitoring_id", m.ID,
		"account_id", m.AccountID,
		"kind", m.Kind,
		"frequency", m.Frequency,
		"baseline_cases", len(baseline),
	)
	return m, nil
}

// baseline returns the case numbers a tax ID or bar number already has.
func (s *Service) baseline(ctx context.Context, kind domain.MonitoringKind, value string) ([]string, error) {
	if kind != domain.KindTaxID && kind != domain.KindBarNumber {
		return nil, nil
	}

	processes, err := s.fetcher.Processes(ctx, kind, value)
	if err != nil {
		return nil, fmt.Errorf("search baseline processes: %w", err)
	}

	seen := make(map[string]struct{}, len(processes))
	cases := make([]string, 0, len(processes))
	for _, p := range processes {
		key := domain.Digits(p.CaseNumber)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		cases = append(cases, key)
	}
	return cases, nil
}

func (s *Service) refund(ctx context.Context, accountID string) {
	if s.cost <= 0 {
		return
	}
	if _, err := s.ledger.Credit(context.WithoutCancel(ctx), accountID, s.cost, domain.EntryRefund, "monitoring refund"); err != nil {
		s.logger.Error("failed to refund monitoring charge", "account_id", accountID, "error", err)
	}
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Monitoring, error) {
	m, err := s.store.GetMonitoring(ctx, id)
	if err != nil {
		return nil, domain.Datastore("get monitoring", err)
	}
	return m, nil
}

// Pause stops polling. Pausing a paused monitoring is a no-op.
func (s *Service) Pause(ctx context.Context, id string) (*domain.Monitoring, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status == domain.MonitoringPaused {
		return m, nil
	}

	if err := s.store.SetStatus(ctx, id, domain.MonitoringPaused, nil); err != nil {
		return nil, domain.Datastore("pause monitoring", err)
	}
	m.Status = domain.MonitoringPaused

	s.logger.Info("monitoring paused", "monitoring_id", id)
	return m, nil
}

// Resume reactivates a paused or errored monitoring and makes it due now.
func (s *Service) Resume(ctx context.Context, id string) (*domain.Monitoring, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status == domain.MonitoringActive {
		return m, nil
	}

	next := s.now().UTC()
	if err := s.store.SetStatus(ctx, id, domain.MonitoringActive, &next); err != nil {
		return nil, domain.Datastore("resume monitoring", err)
	}
	m.Status = domain.MonitoringActive
	m.NextCheckAt = &next
	m.LastError = nil

	s.logger.Info("monitoring resumed", "monitoring_id", id)
	return m, nil
}

func (s *Service) ListAlerts(ctx context.Context, monitoringID string, unreadOnly bool) ([]domain.MonitoringAlert, error) {
	if _, err := s.Get(ctx, monitoringID); err != nil {
		return nil, err
	}
	alerts, err := s.alerts.ListAlerts(ctx, monitoringID, unreadOnly)
	if err != nil {
		return nil, domain.Datastore("list alerts", err)
	}
	return alerts, nil
}

func (s *Service) MarkAlertRead(ctx context.Context, alertID string) error {
	if err := s.alerts.MarkAlertRead(ctx, alertID); err != nil {
		return domain.Datastore("mark alert read", err)
	}
	return nil
}

func normalizeValue(kind domain.MonitoringKind, value string) (string, error) {
	switch kind {
	case domain.KindCaseNumber:
		if d := domain.Digits(value); len(d) == 20 {
			return domain.FormatCaseNumber(d), nil
		}
		return "", fmt.Errorf("case number must have 20 digits: %w", domain.ErrInvalidArgument)
	case domain.KindTaxID:
		if d := domain.Digits(value); len(d) == 11 || len(d) == 14 {
			return d, nil
		}
		return "", fmt.Errorf("tax id must have 11 or 14 digits: %w", domain.ErrInvalidArgument)
	case domain.KindBarNumber:
		n, st := domain.ParseBarNumber(value)
		if n == "" || len(st) != 2 {
			return "", fmt.Errorf("bar number must be digits plus a state: %w", domain.ErrInvalidArgument)
		}
		return n + "/" + strings.ToUpper(st), nil
	}
	return "", fmt.Errorf("monitoring kind %q: %w", kind, domain.ErrInvalidArgument)
}
