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

type MarkReadOutput struct {
	Body projection.Notification
}

type notificationMarker interface {
	MarkRead(ctx context.Context, id int64) (*service.Notification, error)
}

// MarkReadHandler handles POST /v1/notifications/{id}/read. Marking an
// already read notification is a no-op.
type MarkReadHandler struct {
	NotificationService notificationMarker
}

func NewMarkReadHandler(svc notificationMarker) *MarkReadHandler {
	return &MarkReadHandler{NotificationService: svc}
}

func (h *MarkReadHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "mark-notification-read",
		Method:      http.MethodPost,
		Path:        "/v1/notifications/{id}/read",
		Summary:     "Mark a notification read",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *MarkReadHandler) handle(ctx context.Context, input *IDPath) (*MarkReadOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("notificationID", input.ID)

	stopTimer := logData.AddTiming("markReadMs")
	n, err := h.NotificationService.MarkRead(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "mark notification read", err)
	}

	return &MarkReadOutput{Body: projection.FromNotification(n)}, nil
}
