package notify

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"legalwatch/internal/domain"
)

type Store interface {
	InsertNotification(ctx context.Context, n *domain.Notification) error
}

type Publisher interface {
	Publish(ctx context.Context, n *domain.Notification) error
}
