package notification

import (
	"github.com/danielgtaylor/huma/v2"
)

const tag = "Notifications"

// IDPath addresses a single notification.
type IDPath struct {
	ID int64 `path:"id" minimum:"1" doc:"Notification id"`
}

type notificationService interface {
	notificationCreator
	notificationGetter
	notificationLister
	notificationMarker
	notificationDeleter
}

// Register registers every notification operation with the Huma API.
func Register(api huma.API, svc notificationService) {
	NewCreateNotificationHandler(svc).Register(api)
	NewGetNotificationHandler(svc).Register(api)
	NewListNotificationsHandler(svc).Register(api)
	NewMarkReadHandler(svc).Register(api)
	NewDeleteNotificationHandler(svc).Register(api)
}
