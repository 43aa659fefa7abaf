package service

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/notification"
)

// NotificationService handles notification business logic.
type NotificationService struct {
	store Store
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(store Store) *NotificationService {
	return &NotificationService{store: store}
}

// CreateNotification stores an unread notification for an existing user.
func (s *NotificationService) CreateNotification(ctx context.Context, userID int64, message string) (*Notification, error) {
	message, err := requireText("message", message, notification.MaxMessageLength)
	if err != nil {
		return nil, err
	}

	var created *notification.Notification
	err = s.store.WithTx(ctx, func(w *storage.Writer) error {
		if _, err := w.Users.FindByID(ctx, userID); err != nil {
			return err
		}

		var err error
		created, err = w.Notifications.Insert(ctx, &notification.NotificationCreate{
			UserID:  userID,
			Message: message,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	converted := notificationFromStorage(created)
	return &converted, nil
}

// GetNotification retrieves a notification by ID.
func (s *NotificationService) GetNotification(ctx context.Context, id int64) (*Notification, error) {
	row, err := s.store.Read().Notifications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	converted := notificationFromStorage(row)
	return &converted, nil
}

// ListNotifications returns a page of notifications using cursor pagination.
func (s *NotificationService) ListNotifications(ctx context.Context, filter NotificationFilter, cursor *Cursor) ([]Notification, *Cursor, error) {
	limit, offset := pageBounds(cursor)

	rows, err := s.store.Read().Notifications.List(ctx, &notification.NotificationFilter{
		UserID:     filter.UserID,
		UnreadOnly: filter.UnreadOnly,
		Limit:      limit + 1,
		Offset:     offset,
	})
	if err != nil {
		return nil, nil, err
	}

	return paginate(rows, limit, offset, func(row *notification.Notification) (Notification, error) {
		return notificationFromStorage(row), nil
	})
}

// MarkRead flags a notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, id int64) (*Notification, error) {
	var updated *notification.Notification
	err := s.store.WithTx(ctx, func(w *storage.Writer) error {
		var err error
		updated, err = w.Notifications.MarkRead(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	converted := notificationFromStorage(updated)
	return &converted, nil
}

// DeleteNotification removes a notification.
func (s *NotificationService) DeleteNotification(ctx context.Context, id int64) error {
	return s.store.WithTx(ctx, func(w *storage.Writer) error {
		return w.Notifications.Delete(ctx, id)
	})
}
