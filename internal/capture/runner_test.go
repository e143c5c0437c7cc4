package capture

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"legalwatch/internal/capture/mocks"
	"legalwatch/internal/config"
	"legalwatch/internal/domain"
	"legalwatch/internal/provider"
	"legalwatch/internal/storage/memory"
)

const cnj = "0001234-56.2023.8.26.0100"

type pagedCaller struct {
	pages      map[int]domain.AttachmentPage
	err        error
	release    chan struct{}
	firstPages atomic.Int32
}

func (p *pagedCaller) Call(ctx context.Context, _ domain.Operation, req provider.Request) (*provider.Result, error) {
	if req.Page == 1 {
		p.firstPages.Add(1)
	}
	if p.release != nil {
		select {
		case <-p.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	payload, _ := json.Marshal(p.pages[req.Page])
	return &provider.Result{Provider: "escavador", Payload: payload}, nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

func (r *recordingNotifier) kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.sent))
	for _, n := range r.sent {
		out = append(out, n.Kind)
	}
	return out
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newRunner(t *testing.T, db *memory.DB, caller ProviderCaller) (*Runner, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	r := NewRunner(db, db, caller, notifier, config.CaptureConfig{PageSize: 2, ProgressBatch: 2, MaxPages: 10}, testLogger())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = r.Close(ctx)
	})
	return r, notifier
}

func waitForStatus(t *testing.T, db *memory.DB, id string, status domain.JobStatus) *domain.CaptureJob {
	t.Helper()
	var job *domain.CaptureJob
	require.Eventually(t, func() bool {
		j, err := db.GetJob(context.Background(), id)
		if err != nil {
			return false
		}
		job = j
		return j.Status == status
	}, 2*time.Second, 5*time.Millisecond)
	return job
}

func twoPages() map[int]domain.AttachmentPage {
	return map[int]domain.AttachmentPage{
		1: {Items: []domain.Attachment{{ID: "a1", Title: "Petição inicial"}, {ID: "a2", Title: "Procuração"}}, Total: 3, NextPage: 2},
		2: {Items: []domain.Attachment{{ID: "a3", Title: "Sentença"}}, Total: 3},
	}
}

func TestStartCapture_IsIdempotentWhileRunning(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	caller := &pagedCaller{pages: twoPages(), release: make(chan struct{})}
	r, _ := newRunner(t, db, caller)

	var (
		wg  sync.WaitGroup
		ids sync.Map
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			job, err := r.StartCapture(ctx, cnj, "acc")
			if assert.NoError(t, err) {
				ids.Store(job.ID, struct{}{})
			}
		}()
	}
	wg.Wait()

	again, err := r.StartCapture(ctx, "00012345620238260100", "acc")
	require.NoError(t, err)

	count := 0
	ids.Range(func(k, _ any) bool {
		count++
		assert.Equal(t, again.ID, k)
		return true
	})
	assert.Equal(t, 1, count)

	close(caller.release)
	waitForStatus(t, db, again.ID, domain.JobCompleted)
	assert.Equal(t, int32(1), caller.firstPages.Load())
}

func TestStartCapture_CompletesAndSkipsKnownAttachments(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	_, err := db.InsertAttachments(ctx, []domain.Attachment{{ID: "a2", CaseNumber: cnj, Title: "Procuração"}})
	require.NoError(t, err)

	r, notifier := newRunner(t, db, &pagedCaller{pages: twoPages()})

	job, err := r.StartCapture(ctx, cnj, "acc")
	require.NoError(t, err)
	assert.Equal(t, domain.JobPending, job.Status)

	done := waitForStatus(t, db, job.ID, domain.JobCompleted)
	assert.Equal(t, 3, done.CapturedItems)
	assert.Equal(t, 3, done.TotalItems)
	assert.NotNil(t, done.StartedAt)
	assert.NotNil(t, done.CompletedAt)

	stored, err := db.Attachments(ctx, cnj)
	require.NoError(t, err)
	assert.Len(t, stored, 3)

	require.Eventually(t, func() bool { return len(notifier.kinds()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"capture_completed"}, notifier.kinds())
}

func TestStartCapture_FailureMarksJobAndNotifies(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	failed := &domain.AllProvidersFailedError{
		Operation: domain.OpProcessAttachments,
		Failures:  []domain.ProviderFailure{{Provider: "escavador", Message: "provider http status 500"}},
	}
	r, notifier := newRunner(t, db, &pagedCaller{err: failed})

	job, err := r.StartCapture(ctx, cnj, "acc")
	require.NoError(t, err)

	done := waitForStatus(t, db, job.ID, domain.JobFailed)
	require.NotNil(t, done.ErrorMessage)
	assert.Contains(t, *done.ErrorMessage, "all providers failed")

	require.Eventually(t, func() bool { return len(notifier.kinds()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"capture_failed"}, notifier.kinds())

	next, err := r.StartCapture(ctx, cnj, "acc")
	require.NoError(t, err)
	assert.NotEqual(t, job.ID, next.ID)
}

func TestStartCapture_RejectsMalformedCaseNumber(t *testing.T) {
	r, _ := newRunner(t, memory.New(), &pagedCaller{})

	_, err := r.StartCapture(context.Background(), "123", "acc")

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestResume_RelaunchesInterruptedJobs(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	started := time.Now().Add(-time.Hour)
	require.NoError(t, db.CreateJob(ctx, &domain.CaptureJob{
		ID:          "job-1",
		ResourceKey: cnj,
		AccountID:   "acc",
		Status:      domain.JobProcessing,
		StartedAt:   &started,
	}))

	r, _ := newRunner(t, db, &pagedCaller{pages: twoPages()})

	n, err := r.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	done := waitForStatus(t, db, "job-1", domain.JobCompleted)
	assert.Equal(t, started, *done.StartedAt)
}

func TestClose_LeavesInterruptedJobResumable(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	caller := &pagedCaller{pages: twoPages(), release: make(chan struct{})}
	r, notifier := newRunner(t, db, caller)

	job, err := r.StartCapture(ctx, cnj, "acc")
	require.NoError(t, err)
	waitForStatus(t, db, job.ID, domain.JobProcessing)

	closeCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, r.Close(closeCtx))

	j, err := db.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobProcessing, j.Status)
	assert.Empty(t, notifier.kinds())
}

type RunnerMockSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	jobs        *mocks.MockJobStore
	attachments *mocks.MockAttachmentStore
	providers   *mocks.MockProviderCaller
	notifier    *mocks.MockNotifier
	runner      *Runner
}

func (s *RunnerMockSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.jobs = mocks.NewMockJobStore(s.ctrl)
	s.attachments = mocks.NewMockAttachmentStore(s.ctrl)
	s.providers = mocks.NewMockProviderCaller(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)
	s.runner = NewRunner(s.jobs, s.attachments, s.providers, s.notifier, config.CaptureConfig{PageSize: 50, ProgressBatch: 25, MaxPages: 5}, testLogger())
}

func (s *RunnerMockSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRunnerMockSuite(t *testing.T) {
	suite.Run(t, new(RunnerMockSuite))
}

func (s *RunnerMockSuite) TestStartCapture_LostRaceReturnsWinner() {
	ctx := context.Background()
	winner := &domain.CaptureJob{ID: "winner", ResourceKey: cnj, Status: domain.JobProcessing}

	gomock.InOrder(
		s.jobs.EXPECT().FindActiveJob(ctx, cnj).Return(nil, nil),
		s.jobs.EXPECT().CreateJob(ctx, gomock.Any()).Return(domain.ErrDuplicateJob),
		s.jobs.EXPECT().FindActiveJob(ctx, cnj).Return(winner, nil),
	)

	job, err := s.runner.StartCapture(ctx, cnj, "acc")

	s.Require().NoError(err)
	s.Equal("winner", job.ID)
	s.Require().NoError(s.runner.Close(ctx))
}

func (s *RunnerMockSuite) TestStartCapture_StoreFailure() {
	ctx := context.Background()

	s.jobs.EXPECT().FindActiveJob(ctx, cnj).Return(nil, assert.AnError)

	_, err := s.runner.StartCapture(ctx, cnj, "acc")

	var dsErr *domain.DatastoreError
	s.ErrorAs(err, &dsErr)
}

func (s *RunnerMockSuite) TestStartCapture_MarkProcessingFailureFailsJob() {
	ctx := context.Background()
	notified := make(chan domain.Notification, 1)

	var jobID string
	s.jobs.EXPECT().FindActiveJob(ctx, cnj).Return(nil, nil)
	s.jobs.EXPECT().CreateJob(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, job *domain.CaptureJob) error {
		jobID = job.ID
		return nil
	})
	s.jobs.EXPECT().MarkProcessing(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
	s.jobs.EXPECT().FailJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, message string, _ time.Time) error {
			s.Equal(jobID, id)
			s.Contains(message, "mark job processing")
			return nil
		})
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n domain.Notification) {
		notified <- n
	})

	job, err := s.runner.StartCapture(ctx, cnj, "acc")
	s.Require().NoError(err)

	select {
	case n := <-notified:
		s.Equal("capture_failed", n.Kind)
		s.Equal("acc", n.AccountID)
	case <-time.After(2 * time.Second):
		s.Fail("job left without a failure notification")
	}
	s.Equal(jobID, job.ID)
	s.Require().NoError(s.runner.Close(ctx))
}
