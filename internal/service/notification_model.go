package service

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/storage/notification"
)

// Notification represents a notification in the service layer.
type Notification struct {
	ID        int64
	UserID    int64
	Message   string
	Read      bool
	CreatedAt time.Time
}

// NotificationFilter narrows ListNotifications.
type NotificationFilter struct {
	UserID     *int64
	UnreadOnly bool
}

func notificationFromStorage(row *notification.Notification) Notification {
	return Notification{
		ID:        row.ID,
		UserID:    row.UserID,
		Message:   row.Message,
		Read:      row.Read,
		CreatedAt: row.CreatedAt.UTC(),
	}
}
