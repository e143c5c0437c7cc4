package monitoring

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"legalwatch/internal/config"
	"legalwatch/internal/domain"
	"legalwatch/internal/monitoring/mocks"
)

const cnj = "0001234-56.2023.8.26.0100"

type MonitoringTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	store    *mocks.MockStore
	alerts   *mocks.MockAlertStore
	tx       *mocks.MockTransactionManager
	fetcher  *mocks.MockFetcher
	ledger   *mocks.MockLedger
	notifier *mocks.MockNotifier

	service *Service
	now     time.Time
	ids     int
}

func (s *MonitoringTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStore(s.ctrl)
	s.alerts = mocks.NewMockAlertStore(s.ctrl)
	s.tx = mocks.NewMockTransactionManager(s.ctrl)
	s.fetcher = mocks.NewMockFetcher(s.ctrl)
	s.ledger = mocks.NewMockLedger(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)
	s.now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s.ids = 0

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	cfg := config.MonitoringConfig{Interval: 5 * time.Minute, BatchSize: 100, Concurrency: 2, SweepTimeout: time.Minute}

	s.service = NewService(s.store, s.alerts, s.tx, s.fetcher, s.ledger, s.notifier, cfg, 10, logger)
	s.service.now = func() time.Time { return s.now }
	s.service.newID = func() string {
		s.ids++
		return "id-" + string(rune('0'+s.ids))
	}

	s.tx.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
}

func (s *MonitoringTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMonitoringTestSuite(t *testing.T) {
	suite.Run(t, new(MonitoringTestSuite))
}

func (s *MonitoringTestSuite) caseMonitoring(lastCheck *time.Time) domain.Monitoring {
	return domain.Monitoring{
		ID:          "m-1",
		AccountID:   "acc",
		Kind:        domain.KindCaseNumber,
		Value:       cnj,
		Frequency:   domain.FrequencyDaily,
		Status:      domain.MonitoringActive,
		LastCheckAt: lastCheck,
		NextCheckAt: &s.now,
		CreatedAt:   s.now.Add(-30 * 24 * time.Hour),
	}
}

// lock expects the row of m to be locked inside the check transaction.
func (s *MonitoringTestSuite) lock(m domain.Monitoring) {
	s.store.EXPECT().LockMonitoring(gomock.Any(), m.ID).Return(&m, nil)
}

func (s *MonitoringTestSuite) TestSweep_OnlyMovementsAfterLastCheckRaiseAlerts() {
	ctx := context.Background()
	lastCheck := s.now.Add(-24 * time.Hour)
	m := s.caseMonitoring(&lastCheck)

	s.store.EXPECT().ListDue(ctx, s.now, 100).Return([]domain.Monitoring{m}, nil)
	s.fetcher.EXPECT().Movements(gomock.Any(), cnj).Return([]domain.Movement{
		{ID: "old", Date: lastCheck.Add(-24 * time.Hour), Description: "Distribuído"},
		{ID: "new", Date: lastCheck.Add(24 * time.Hour), Description: "Sentença publicada"},
	}, nil)
	s.lock(m)
	s.alerts.EXPECT().
		InsertAlerts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alerts []domain.MonitoringAlert) error {
			s.Require().Len(alerts, 1)
			s.Equal(domain.AlertNewMovement, alerts[0].AlertType)
			s.Equal("m-1", alerts[0].MonitoringID)

			var payload struct {
				Movement domain.Movement `json:"movement"`
			}
			s.Require().NoError(json.Unmarshal(alerts[0].Payload, &payload))
			s.Equal("new", payload.Movement.ID)
			return nil
		})
	s.store.EXPECT().RecordCheck(gomock.Any(), "m-1", s.now, s.now.Add(24*time.Hour), 1).Return(nil)
	s.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, n domain.Notification) {
			s.Equal("acc", n.AccountID)
			s.Equal("monitoring_alert", n.Kind)
		})

	stats, err := s.service.Sweep(ctx)

	s.Require().NoError(err)
	s.Equal(1, stats.Due)
	s.Equal(1, stats.Checked)
	s.Equal(1, stats.Alerts)
	s.Equal(0, stats.Failed)
}

func (s *MonitoringTestSuite) TestSweep_FirstCaseCheckDiffsAgainstCreation() {
	ctx := context.Background()
	m := s.caseMonitoring(nil)

	s.store.EXPECT().ListDue(ctx, s.now, 100).Return([]domain.Monitoring{m}, nil)
	s.fetcher.EXPECT().Movements(gomock.Any(), cnj).Return([]domain.Movement{
		{ID: "before", Date: m.CreatedAt.Add(-time.Hour)},
		{ID: "after", Date: m.CreatedAt.Add(time.Hour)},
	}, nil)
	s.lock(m)
	s.alerts.EXPECT().InsertAlerts(gomock.Any(), gomock.Len(1)).Return(nil)
	s.store.EXPECT().RecordCheck(gomock.Any(), "m-1", s.now, s.now.Add(24*time.Hour), 1).Return(nil)
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

	stats, err := s.service.Sweep(ctx)

	s.Require().NoError(err)
	s.Equal(1, stats.Alerts)
}

func (s *MonitoringTestSuite) TestSweep_ProviderFailureMarksError() {
	ctx := context.Background()
	m := s.caseMonitoring(nil)
	failed := &domain.AllProvidersFailedError{Operation: domain.OpProcessMovements}

	s.store.EXPECT().ListDue(ctx, s.now, 100).Return([]domain.Monitoring{m}, nil)
	s.fetcher.EXPECT().Movements(gomock.Any(), cnj).Return(nil, failed)
	s.store.EXPECT().MarkError(gomock.Any(), "m-1", gomock.Any()).Return(nil)

	stats, err := s.service.Sweep(ctx)

	s.Require().NoError(err)
	s.Equal(0, stats.Checked)
	s.Equal(1, stats.Failed)
}

func (s *MonitoringTestSuite) TestSweep_FailingRowDoesNotBlockOthers() {
	ctx := context.Background()
	broken := s.caseMonitoring(nil)
	broken.ID = "broken"
	broken.Value = "9999999-99.2023.8.26.0100"
	healthy := s.caseMonitoring(nil)

	s.store.EXPECT().ListDue(ctx, s.now, 100).Return([]domain.Monitoring{broken, healthy}, nil)
	s.fetcher.EXPECT().Movements(gomock.Any(), broken.Value).Return(nil, errors.New("boom"))
	s.fetcher.EXPECT().Movements(gomock.Any(), cnj).Return(nil, nil)
	s.store.EXPECT().MarkError(gomock.Any(), "broken", gomock.Any()).Return(nil)
	s.lock(healthy)
	s.store.EXPECT().RecordCheck(gomock.Any(), "m-1", s.now, s.now.Add(24*time.Hour), 0).Return(nil)

	stats, err := s.service.Sweep(ctx)

	s.Require().NoError(err)
	s.Equal(2, stats.Due)
	s.Equal(1, stats.Checked)
	s.Equal(1, stats.Failed)
}

func (s *MonitoringTestSuite) TestSweep_TransactionFailureMarksError() {
	ctx := context.Background()
	m := s.caseMonitoring(nil)

	s.store.EXPECT().ListDue(ctx, s.now, 100).Return([]domain.Monitoring{m}, nil)
	s.fetcher.EXPECT().Movements(gomock.Any(), cnj).Return(nil, nil)
	s.lock(m)
	s.store.EXPECT().RecordCheck(gomock.Any(), "m-1", gomock.Any(), gomock.Any(), 0).Return(errors.New("deadlock"))
	s.store.EXPECT().MarkError(gomock.Any(), "m-1", gomock.Any()).Return(nil)

	stats, err := s.service.Sweep(ctx)

	s.Require().NoError(err)
	s.Equal(1, stats.Failed)
}

func (s *MonitoringTestSuite) TestSweep_ListDueFailure() {
	ctx := context.Background()
	s.store.EXPECT().ListDue(ctx, s.now, 100).Return(nil, errors.New("connection refused"))

	_, err := s.service.Sweep(ctx)

	var dsErr *domain.DatastoreError
	s.ErrorAs(err, &dsErr)
}

func (s *MonitoringTestSuite) TestSweep_DiffsAgainstLockedRow() {
	ctx := context.Background()
	listed := s.caseMonitoring(nil)
	checkedMeanwhile := s.now.Add(-time.Minute)
	locked := s.caseMonitoring(&checkedMeanwhile)

	s.store.EXPECT().ListDue(ctx, s.now, 100).Return([]domain.Monitoring{listed}, nil)
	s.fetcher.EXPECT().Movements(gomock.Any(), cnj).Return([]domain.Movement{
		{ID: "seen", Date: checkedMeanwhile.Add(-time.Hour)},
	}, nil)
	s.lock(locked)
	s.store.EXPECT().RecordCheck(gomock.Any(), "m-1", s.now, s.now.Add(24*time.Hour), 0).Return(nil)

	stats, err := s.service.Sweep(ctx)

	s.Require().NoError(err)
	s.Equal(1, stats.Checked)
	s.Equal(0, stats.Alerts)
}

func (s *MonitoringTestSuite) TestSweep_RowPausedBeforeLockIsLeftAlone() {
	ctx := context.Background()
	listed := s.caseMonitoring(nil)
	locked := s.caseMonitoring(nil)
	locked.Status = domain.MonitoringPaused

	s.store.EXPECT().ListDue(ctx, s.now, 100).Return([]domain.Monitoring{listed}, nil)
	s.fetcher.EXPECT().Movements(gomock.Any(), cnj).Return([]domain.Movement{
		{ID: "new", Date: listed.CreatedAt.Add(time.Hour)},
	}, nil)
	s.lock(locked)

	stats, err := s.service.Sweep(ctx)

	s.Require().NoError(err)
	s.Equal(0, stats.Alerts)
	s.Equal(0, stats.Failed)
}

func (s *MonitoringTestSuite) TestSweep_FirstTaxIDCheckAlertsUnlinkedCases() {
	ctx := context.Background()
	m := domain.Monitoring{
		ID:        "m-2",
		AccountID: "acc",
		Kind:      domain.KindTaxID,
		Value:     "12345678901",
		Frequency: domain.FrequencyWeekly,
		Status:    domain.MonitoringActive,
	}

	s.store.EXPECT().ListDue(ctx, s.now, 100).Return([]domain.Monitoring{m}, nil)
	s.fetcher.EXPECT().Processes(gomock.Any(), domain.KindTaxID, "12345678901").Return([]domain.ProcessSummary{
		{CaseNumber: cnj},
		{CaseNumber: "0009999-11.2024.8.26.0001"},
	}, nil)
	s.lock(m)
	s.store.EXPECT().
		LinkedCases(gomock.Any(), "m-2").
		Return(map[string]struct{}{"00012345620238260100": {}}, nil)
	s.alerts.EXPECT().InsertAlerts(gomock.Any(), gomock.Len(1)).Return(nil)
	s.store.EXPECT().
		LinkCases(gomock.Any(), "m-2", []string{"00099991120248260001"}, s.now).
		Return(nil)
	s.store.EXPECT().RecordCheck(gomock.Any(), "m-2", s.now, s.now.Add(7*24*time.Hour), 1).Return(nil)
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

	stats, err := s.service.Sweep(ctx)

	s.Require().NoError(err)
	s.Equal(1, stats.Alerts)
}

func (s *MonitoringTestSuite) TestSweep_UnlinkedCaseRaisesNewProcessAlert() {
	ctx := context.Background()
	lastCheck := s.now.Add(-7 * 24 * time.Hour)
	m := domain.Monitoring{
		ID:          "m-3",
		AccountID:   "acc",
		Kind:        domain.KindBarNumber,
		Value:       "123456/SP",
		Frequency:   domain.FrequencyWeekly,
		Status:      domain.MonitoringActive,
		LastCheckAt: &lastCheck,
	}

	s.store.EXPECT().ListDue(ctx, s.now, 100).Return([]domain.Monitoring{m}, nil)
	s.fetcher.EXPECT().Processes(gomock.Any(), domain.KindBarNumber, "123456/SP").Return([]domain.ProcessSummary{
		{CaseNumber: cnj},
		{CaseNumber: "0009999-11.2024.8.26.0001"},
		{CaseNumber: "0009999-11.2024.8.26.0001"},
	}, nil)
	s.lock(m)
	s.store.EXPECT().
		LinkedCases(gomock.Any(), "m-3").
		Return(map[string]struct{}{"00012345620238260100": {}}, nil)
	s.alerts.EXPECT().
		InsertAlerts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alerts []domain.MonitoringAlert) error {
			s.Require().Len(alerts, 1)
			s.Equal(domain.AlertNewProcess, alerts[0].AlertType)
			return nil
		})
	s.store.EXPECT().LinkCases(gomock.Any(), "m-3", []string{"00099991120248260001"}, s.now).Return(nil)
	s.store.EXPECT().RecordCheck(gomock.Any(), "m-3", s.now, s.now.Add(7*24*time.Hour), 1).Return(nil)
	s.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, n domain.Notification) {
			s.Equal("New case", n.Title)
		})

	stats, err := s.service.Sweep(ctx)

	s.Require().NoError(err)
	s.Equal(1, stats.Alerts)
}

func (s *MonitoringTestSuite) TestCreate_ChargesAndSchedules() {
	ctx := context.Background()

	s.ledger.EXPECT().Charge(ctx, "acc", int64(10), "monitoring").Return(int64(90), nil)
	s.store.EXPECT().
		CreateMonitoring(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, m *domain.Monitoring) error {
			s.Equal(domain.MonitoringActive, m.Status)
			s.Equal(cnj, m.Value)
			s.Equal(s.now.Add(24*time.Hour), *m.NextCheckAt)
			s.Equal("process:00012345620238260100", *m.LinkedResourceID)
			return nil
		})

	m, err := s.service.Create(ctx, CreateRequest{
		AccountID: "acc",
		Kind:      domain.KindCaseNumber,
		Value:     "00012345620238260100",
		Frequency: domain.FrequencyDaily,
	})

	s.Require().NoError(err)
	s.Equal("id-1", m.ID)
}

func (s *MonitoringTestSuite) TestCreate_TaxIDLinksBaselineCases() {
	ctx := context.Background()

	s.fetcher.EXPECT().Processes(ctx, domain.KindTaxID, "12345678901").Return([]domain.ProcessSummary{
		{CaseNumber: cnj},
		{CaseNumber: cnj},
		{CaseNumber: "0009999-11.2024.8.26.0001"},
	}, nil)
	s.ledger.EXPECT().Charge(ctx, "acc", int64(10), "monitoring").Return(int64(90), nil)
	s.store.EXPECT().CreateMonitoring(ctx, gomock.Any()).Return(nil)
	s.store.EXPECT().
		LinkCases(ctx, "id-1", []string{"00012345620238260100", "00099991120248260001"}, s.now).
		Return(nil)

	m, err := s.service.Create(ctx, CreateRequest{
		AccountID: "acc",
		Kind:      domain.KindTaxID,
		Value:     "123.456.789-01",
		Frequency: domain.FrequencyWeekly,
	})

	s.Require().NoError(err)
	s.Nil(m.LastCheckAt)
	s.Nil(m.LinkedResourceID)
}

func (s *MonitoringTestSuite) TestCreate_BaselineFailureChargesNothing() {
	ctx := context.Background()
	failed := &domain.AllProvidersFailedError{Operation: domain.OpProcessSearch}

	s.fetcher.EXPECT().Processes(ctx, domain.KindBarNumber, "123456/SP").Return(nil, failed)

	_, err := s.service.Create(ctx, CreateRequest{
		AccountID: "acc",
		Kind:      domain.KindBarNumber,
		Value:     "SP123456",
		Frequency: domain.FrequencyDaily,
	})

	var providerErr *domain.AllProvidersFailedError
	s.ErrorAs(err, &providerErr)
}

func (s *MonitoringTestSuite) TestCreate_InsufficientCreditsCreatesNothing() {
	ctx := context.Background()

	s.fetcher.EXPECT().Processes(ctx, domain.KindTaxID, "12345678901").Return(nil, nil)
	s.ledger.EXPECT().
		Charge(ctx, "acc", int64(10), "monitoring").
		Return(int64(0), &domain.InsufficientCreditsError{Required: 10, Available: 4})

	_, err := s.service.Create(ctx, CreateRequest{
		AccountID: "acc",
		Kind:      domain.KindTaxID,
		Value:     "123.456.789-01",
		Frequency: domain.FrequencyWeekly,
	})

	var insufficient *domain.InsufficientCreditsError
	s.ErrorAs(err, &insufficient)
}

func (s *MonitoringTestSuite) TestCreate_StoreFailureRefunds() {
	ctx := context.Background()

	s.fetcher.EXPECT().Processes(ctx, domain.KindBarNumber, "123456/SP").Return(nil, nil)
	s.ledger.EXPECT().Charge(ctx, "acc", int64(10), "monitoring").Return(int64(90), nil)
	s.store.EXPECT().CreateMonitoring(ctx, gomock.Any()).Return(errors.New("unique violation"))
	s.ledger.EXPECT().
		Credit(gomock.Any(), "acc", int64(10), domain.EntryRefund, "monitoring refund").
		Return(int64(100), nil)

	_, err := s.service.Create(ctx, CreateRequest{
		AccountID: "acc",
		Kind:      domain.KindBarNumber,
		Value:     "SP123456",
		Frequency: domain.FrequencyDaily,
	})

	s.Error(err)
}

func (s *MonitoringTestSuite) TestCreate_RejectsInvalidInput() {
	ctx := context.Background()

	_, err := s.service.Create(ctx, CreateRequest{AccountID: "acc", Kind: domain.KindTaxID, Value: "1", Frequency: domain.FrequencyDaily})
	s.ErrorIs(err, domain.ErrInvalidArgument)

	_, err = s.service.Create(ctx, CreateRequest{AccountID: "acc", Kind: domain.KindTaxID, Value: "12345678901", Frequency: "hourly"})
	s.ErrorIs(err, domain.ErrInvalidArgument)
}

func (s *MonitoringTestSuite) TestResume_FromErrorMakesDueNow() {
	ctx := context.Background()
	m := s.caseMonitoring(nil)
	m.Status = domain.MonitoringError

	s.store.EXPECT().GetMonitoring(ctx, "m-1").Return(&m, nil)
	s.store.EXPECT().SetStatus(ctx, "m-1", domain.MonitoringActive, &s.now).Return(nil)

	resumed, err := s.service.Resume(ctx, "m-1")

	s.Require().NoError(err)
	s.Equal(domain.MonitoringActive, resumed.Status)
	s.Equal(s.now, *resumed.NextCheckAt)
}

func (s *MonitoringTestSuite) TestPause_IsIdempotent() {
	ctx := context.Background()
	m := s.caseMonitoring(nil)

	s.store.EXPECT().GetMonitoring(ctx, "m-1").Return(&m, nil)
	s.store.EXPECT().SetStatus(ctx, "m-1", domain.MonitoringPaused, nil).Return(nil)

	paused, err := s.service.Pause(ctx, "m-1")
	s.Require().NoError(err)
	s.Equal(domain.MonitoringPaused, paused.Status)

	s.store.EXPECT().GetMonitoring(ctx, "m-1").Return(paused, nil)

	_, err = s.service.Pause(ctx, "m-1")
	s.NoError(err)
}

func (s *MonitoringTestSuite) TestIngest_RoutesThroughDiff() {
	ctx := context.Background()
	lastCheck := s.now.Add(-time.Hour)
	m := s.caseMonitoring(&lastCheck)
	tracking := "trk-1"
	m.ProviderTrackingID = &tracking

	s.store.EXPECT().GetByTrackingID(ctx, "trk-1").Return(&m, nil)
	s.lock(m)
	s.alerts.EXPECT().InsertAlerts(gomock.Any(), gomock.Len(1)).Return(nil)
	s.store.EXPECT().RecordCheck(gomock.Any(), "m-1", s.now, s.now.Add(24*time.Hour), 1).Return(nil)
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

	alerts, err := s.service.Ingest(ctx, "judit", "trk-1", Observation{Movements: []domain.Movement{
		{ID: "stale", Date: lastCheck.Add(-time.Minute)},
		{ID: "fresh", Date: lastCheck.Add(time.Minute)},
	}})

	s.Require().NoError(err)
	s.Equal(1, alerts)
}

func (s *MonitoringTestSuite) TestIngest_InactiveMonitoringIsIgnored() {
	ctx := context.Background()
	m := s.caseMonitoring(nil)
	m.Status = domain.MonitoringPaused

	s.store.EXPECT().GetByTrackingID(ctx, "trk-1").Return(&m, nil)

	alerts, err := s.service.Ingest(ctx, "judit", "trk-1", Observation{})

	s.Require().NoError(err)
	s.Equal(0, alerts)
}

func (s *MonitoringTestSuite) TestIngest_UnknownTrackingID() {
	ctx := context.Background()
	s.store.EXPECT().GetByTrackingID(ctx, "nope").Return(nil, domain.ErrResourceNotFound)

	_, err := s.service.Ingest(ctx, "judit", "nope", Observation{})

	s.ErrorIs(err, domain.ErrResourceNotFound)
}
