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

type CreateNotificationInput struct {
	Body CreateNotificationBody
}

type CreateNotificationBody struct {
	UserID  int64  `json:"user_id" minimum:"1" doc:"Recipient"`
	Message string `json:"message" minLength:"1" maxLength:"200" doc:"Notification text"`
}

type CreateNotificationOutput struct {
	Status int
	Body   projection.Notification
}

type notificationCreator interface {
	CreateNotification(ctx context.Context, userID int64, message string) (*service.Notification, error)
}

// CreateNotificationHandler handles POST /v1/notifications.
type CreateNotificationHandler struct {
	NotificationService notificationCreator
}

func NewCreateNotificationHandler(svc notificationCreator) *CreateNotificationHandler {
	return &CreateNotificationHandler{NotificationService: svc}
}

func (h *CreateNotificationHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-notification",
		Method:      http.MethodPost,
		Path:        "/v1/notifications",
		Summary:     "Create a notification",
		Description: "Creates an unread notification for a user.",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *CreateNotificationHandler) handle(ctx context.Context, input *CreateNotificationInput) (*CreateNotificationOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("userID", input.Body.UserID)

	stopTimer := logData.AddTiming("createNotificationMs")
	created, err := h.NotificationService.CreateNotification(ctx, input.Body.UserID, input.Body.Message)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "create notification", err)
	}

	logData.AddData("notificationID", created.ID)

	return &CreateNotificationOutput{
		Status: http.StatusCreated,
		Body:   projection.FromNotification(created),
	}, nil
}
