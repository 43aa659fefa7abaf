package notification

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/listing"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/projection"
	"github.com/carson-networks/ledger-server/internal/service"
)

type ListNotificationsInput struct {
	listing.CursorQuery
	UserID int64 `query:"user_id" minimum:"0" doc:"Only notifications of this user"`
	Unread bool  `query:"unread" doc:"Only notifications not yet read"`
}

type ListNotificationsOutput struct {
	Body listing.Page[projection.Notification]
}

type notificationLister interface {
	ListNotifications(ctx context.Context, filter service.NotificationFilter, cursor *service.Cursor) ([]service.Notification, *service.Cursor, error)
}

// ListNotificationsHandler handles GET /v1/notifications.
type ListNotificationsHandler struct {
	NotificationService notificationLister
}

func NewListNotificationsHandler(svc notificationLister) *ListNotificationsHandler {
	return &ListNotificationsHandler{NotificationService: svc}
}

func (h *ListNotificationsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-notifications",
		Method:      http.MethodGet,
		Path:        "/v1/notifications",
		Summary:     "List notifications",
		Description: "Lists notifications, newest first.",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *ListNotificationsHandler) handle(ctx context.Context, input *ListNotificationsInput) (*ListNotificationsOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("listNotificationsMs")
	notifications, next, err := h.NotificationService.ListNotifications(ctx, service.NotificationFilter{
		UserID:     listing.OptionalID(input.UserID),
		UnreadOnly: input.Unread,
	}, input.Cursor())
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "list notifications", err)
	}

	logData.AddData("notificationCount", len(notifications))

	return &ListNotificationsOutput{Body: listing.NewPage(projection.FromNotifications(notifications), next)}, nil
}
