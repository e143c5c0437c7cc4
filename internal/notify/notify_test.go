package notify

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"legalwatch/internal/domain"
	"legalwatch/internal/notify/mocks"
)

type FanoutTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
	fanout    *Fanout
}

func (s *FanoutTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.fanout = New(s.store, s.publisher, logger)
}

func (s *FanoutTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFanoutTestSuite(t *testing.T) {
	suite.Run(t, new(FanoutTestSuite))
}

func (s *FanoutTestSuite) TestNotify_StoresAndPublishes() {
	var stored *domain.Notification

	s.store.EXPECT().
		InsertNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			stored = n
			return nil
		})
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	s.fanout.Notify(context.Background(), domain.Notification{AccountID: "acc", Kind: "capture_completed"})

	s.Require().NotNil(stored)
	s.NotEmpty(stored.ID)
	s.False(stored.CreatedAt.IsZero())
}

func (s *FanoutTestSuite) TestNotify_StoreFailureStillPublishes() {
	s.store.EXPECT().InsertNotification(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	s.fanout.Notify(context.Background(), domain.Notification{AccountID: "acc"})
}

func (s *FanoutTestSuite) TestNotify_PublishFailureIsSwallowed() {
	s.store.EXPECT().InsertNotification(gomock.Any(), gomock.Any()).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("channel closed"))

	s.NotPanics(func() {
		s.fanout.Notify(context.Background(), domain.Notification{AccountID: "acc"})
	})
}

func (s *FanoutTestSuite) TestNotify_CanceledContextStillDelivers() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.store.EXPECT().
		InsertNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *domain.Notification) error {
			s.NoError(ctx.Err())
			return nil
		})
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	s.fanout.Notify(ctx, domain.Notification{AccountID: "acc"})
}

func TestNotify_WithoutPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().InsertNotification(gomock.Any(), gomock.Any()).Return(nil)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	New(store, nil, logger).Notify(context.Background(), domain.Notification{AccountID: "acc"})
}
