package monitoring

import (
	"context"
	"fmt"

	"legalwatch/internal/domain"
)

// Ingest feeds a provider-pushed update through the same diff as the poller.
// Updates for monitorings that are not active are acknowledged and dropped.
func (s *Service) Ingest(ctx context.Context, providerName, trackingID string, obs Observation) (int, error) {
	if trackingID == "" {
		return 0, fmt.Errorf("tracking id is empty: %w", domain.ErrInvalidArgument)
	}

	m, err := s.store.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return 0, domain.Datastore("get monitoring by tracking id", err)
	}

	logger := s.logger.With("monitoring_id", m.ID, "provider", providerName)
	if m.Status != domain.MonitoringActive {
		logger.Info("webhook for inactive monitoring ignored", "status", m.Status)
		return 0, nil
	}

	alerts, err := s.apply(ctx, m, &obs, s.now().UTC())
	if err != nil {
		return 0, err
	}

	logger.Debug("webhook ingested", "alerts", alerts)
	return alerts, nil
}
