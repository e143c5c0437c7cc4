package memory

import (
	"context"

	"legalwatch/internal/domain"
)

func (db *DB) InsertNotification(_ context.Context, n *domain.Notification) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.notifications = append(db.notifications, *n)
	return nil
}

// ListNotifications returns the newest notifications of an account first.
func (db *DB) ListNotifications(_ context.Context, accountID string, limit int) ([]domain.Notification, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make([]domain.Notification, 0)
	for i := len(db.notifications) - 1; i >= 0 && len(out) < limit; i-- {
		if db.notifications[i].AccountID == accountID {
			out = append(out, db.notifications[i])
		}
	}
	return out, nil
}
