package notification

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/projection"
	"github.com/carson-networks/ledger-server/internal/service"
)

type GetNotificationOutput struct {
	Body projection.Notification
}

type notificationGetter interface {
	GetNotification(ctx context.Context, id int64) (*service.Notification, error)
}

// GetNotificationHandler handles GET /v1/notifications/{id}.
type GetNotificationHandler struct {
	NotificationService notificationGetter
}

func NewGetNotificationHandler(svc notificationGetter) *GetNotificationHandler {
	return &GetNotificationHandler{NotificationService: svc}
}

func (h *GetNotificationHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-notification",
		Method:      http.MethodGet,
		Path:        "/v1/notifications/{id}",
		Summary:     "Get a notification",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *GetNotificationHandler) handle(ctx context.Context, input *IDPath) (*GetNotificationOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("notificationID", input.ID)

	stopTimer := logData.AddTiming("getNotificationMs")
	n, err := h.NotificationService.GetNotification(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "get notification", err)
	}

	return &GetNotificationOutput{Body: projection.FromNotification(n)}, nil
}
