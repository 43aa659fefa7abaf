package notification

import (
	"context"
	"time"
)

const (
	tableName  = "notifications"
	entityName = "notification"

	// MaxMessageLength matches the message column width.
	MaxMessageLength = 200
)

// Notification represents a notifications row.
type Notification struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Message   string    `db:"message"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}

// NotificationCreate is the input for inserting a notification. New
// notifications are always unread.
type NotificationCreate struct {
	UserID  int64
	Message string
}

// NotificationFilter specifies filters for listing notifications.
type NotificationFilter struct {
	UserID     *int64
	UnreadOnly bool
	Limit      int
	Offset     int
}

// INotificationReader defines the read operations on notifications.
type INotificationReader interface {
	FindByID(ctx context.Context, id int64) (*Notification, error)
	List(ctx context.Context, filter *NotificationFilter) ([]*Notification, error)
}

// INotificationWriter defines the operations available inside a transaction.
type INotificationWriter interface {
	INotificationReader
	Insert(ctx context.Context, create *NotificationCreate) (*Notification, error)
	MarkRead(ctx context.Context, id int64) (*Notification, error)
	Delete(ctx context.Context, id int64) error
}
