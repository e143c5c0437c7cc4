package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"legalwatch/internal/domain"
)

type NotificationStore struct {
	db *sqlx.DB
}

func NewNotificationStore(db *sqlx.DB) *NotificationStore {
	return &NotificationStore{db: db}
}

func (s *NotificationStore) InsertNotification(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, account_id, kind, title, body, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	data := "{}"
	if len(n.Data) > 0 {
		data = string(n.Data)
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		n.ID, n.AccountID, n.Kind, n.Title, n.Body, data, n.CreatedAt)
	return err
}

// ListNotifications returns the newest notifications first.
func (s *NotificationStore) ListNotifications(ctx context.Context, accountID string, limit int) ([]domain.Notification, error) {
	out := []domain.Notification{}
	query := `
		SELECT id, account_id, kind, title, body, data, created_at
		FROM notifications
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	if err := s.db.SelectContext(ctx, &out, query, accountID, limit); err != nil {
		return nil, err
	}
	return out, nil
}
