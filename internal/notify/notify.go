// Package notify delivers user notifications to the datastore and the broker.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"legalwatch/internal/domain"
)

// Fanout persists and publishes notifications. Delivery failures are logged
// and never reach the caller.
type Fanout struct {
	store     Store
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// New returns a Fanout. publisher may be nil when no broker is configured.
func New(store Store, publisher Publisher, logger *slog.Logger) *Fanout {
	return &Fanout{
		store:     store,
		publisher: publisher,
		logger:    logger.With("component", "notify"),
		now:       time.Now,
	}
}

func (f *Fanout) Notify(ctx context.Context, n domain.Notification) {
	ctx = context.WithoutCancel(ctx)

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = f.now().UTC()
	}

	logger := f.logger.With("notification_id", n.ID, "account_id", n.AccountID, "kind", n.Kind)

	if err := f.store.InsertNotification(ctx, &n); err != nil {
		logger.Error("failed to store notification", "error", err)
	}

	if f.publisher == nil {
		return
	}
	if err := f.publisher.Publish(ctx, &n); err != nil {
		logger.Error("failed to publish notification", "error", err)
	}
}
