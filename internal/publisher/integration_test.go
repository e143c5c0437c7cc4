//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"legalwatch/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) config(suffix string) Config {
	return Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-" + suffix,
		RoutingKey: "test-routing-key-" + suffix,
		QueueName:  "test-queue-" + suffix,
	}
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	pub, err := NewRabbitMQ(s.config("conn"), s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishAlert() {
	cfg := s.config("alert")

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	n := &domain.Notification{
		ID:        "n-1",
		AccountID: "acc-1",
		Kind:      "monitoring_alert",
		Title:     "New movement",
		Body:      "Case 0001234-56.2023.8.26.0100 has a new movement",
		Data:      json.RawMessage(`{"monitoring_id":"m-1"}`),
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}

	err = pub.Publish(s.ctx, n)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	s.Equal("application/json", msg.ContentType)
	s.Equal("n-1", msg.MessageId)
	s.Equal("monitoring_alert", msg.Type)
	s.Equal("acc-1", msg.Headers["account_id"])

	var received NotificationMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("monitoring_alert", received.Event)
	s.Equal("acc-1", received.Notification.AccountID)
	s.Equal("New movement", received.Notification.Title)
	s.JSONEq(`{"monitoring_id":"m-1"}`, string(received.Notification.Data))
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessagePersistence() {
	cfg := s.config("persist")

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	err = pub.Publish(s.ctx, &domain.Notification{ID: "n-2", AccountID: "acc", Kind: "capture_completed"})
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_ConcurrentPublishes() {
	cfg := s.config("concurrent")

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		go func(i int) {
			errs <- pub.Publish(s.ctx, &domain.Notification{ID: fmt.Sprintf("n-%d", i), AccountID: "acc", Kind: "monitoring_alert"})
		}(i)
	}
	for i := 0; i < 10; i++ {
		s.NoError(<-errs)
	}
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
