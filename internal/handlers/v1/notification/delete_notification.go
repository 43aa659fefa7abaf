package notification

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
)

type DeleteNotificationOutput struct{}

type notificationDeleter interface {
	DeleteNotification(ctx context.Context, id int64) error
}

// DeleteNotificationHandler handles DELETE /v1/notifications/{id}.
type DeleteNotificationHandler struct {
	NotificationService notificationDeleter
}

func NewDeleteNotificationHandler(svc notificationDeleter) *DeleteNotificationHandler {
	return &DeleteNotificationHandler{NotificationService: svc}
}

func (h *DeleteNotificationHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-notification",
		Method:        http.MethodDelete,
		Path:          "/v1/notifications/{id}",
		Summary:       "Delete a notification",
		Tags:          []string{tag},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteNotificationHandler) handle(ctx context.Context, input *IDPath) (*DeleteNotificationOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("notificationID", input.ID)

	stopTimer := logData.AddTiming("deleteNotificationMs")
	err := h.NotificationService.DeleteNotification(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "delete notification", err)
	}

	return &DeleteNotificationOutput{}, nil
}
