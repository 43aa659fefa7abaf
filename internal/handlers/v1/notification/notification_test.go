package notification

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/apperr"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/openapi"
	"github.com/carson-networks/ledger-server/internal/service"
)

type mockNotificationService struct {
	mock.Mock
}

func (m *mockNotificationService) CreateNotification(ctx context.Context, userID int64, message string) (*service.Notification, error) {
	args := m.Called(ctx, userID, message)
	n, _ := args.Get(0).(*service.Notification)
	return n, args.Error(1)
}

func (m *mockNotificationService) GetNotification(ctx context.Context, id int64) (*service.Notification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*service.Notification)
	return n, args.Error(1)
}

func (m *mockNotificationService) ListNotifications(ctx context.Context, filter service.NotificationFilter, cursor *service.Cursor) ([]service.Notification, *service.Cursor, error) {
	args := m.Called(ctx, filter, cursor)
	notifications, _ := args.Get(0).([]service.Notification)
	next, _ := args.Get(1).(*service.Cursor)
	return notifications, next, args.Error(2)
}

func (m *mockNotificationService) MarkRead(ctx context.Context, id int64) (*service.Notification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*service.Notification)
	return n, args.Error(1)
}

func (m *mockNotificationService) DeleteNotification(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newTestAPI(t *testing.T, svc notificationService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t, openapi.Config())
	Register(api, svc)
	return api
}

var createdAt = time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC)

func TestHTTP_CreateNotification_Success(t *testing.T) {
	mockSvc := new(mockNotificationService)
	mockSvc.On("CreateNotification", mock.Anything, int64(1), "budget exceeded").
		Return(&service.Notification{ID: 2, UserID: 1, Message: "budget exceeded", CreatedAt: createdAt}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/notifications", map[string]any{"user_id": 1, "message": "budget exceeded"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.JSONEq(t, `{"id":2,"user_id":1,"message":"budget exceeded","read":false,"created_at":"04/03/2025 08:00:00"}`, resp.Body.String())
}

func TestHTTP_CreateNotification_MessageTooLong(t *testing.T) {
	mockSvc := new(mockNotificationService)

	resp := newTestAPI(t, mockSvc).Post("/v1/notifications", map[string]any{"user_id": 1, "message": strings.Repeat("x", 201)})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_CreateNotification_UnknownUser(t *testing.T) {
	mockSvc := new(mockNotificationService)
	mockSvc.On("CreateNotification", mock.Anything, int64(9), "hi").Return(nil, apperr.NotFound("user", 9))

	resp := newTestAPI(t, mockSvc).Post("/v1/notifications", map[string]any{"user_id": 9, "message": "hi"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_ListNotifications_UnreadForUser(t *testing.T) {
	userID := int64(1)
	mockSvc := new(mockNotificationService)
	mockSvc.On("ListNotifications", mock.Anything, service.NotificationFilter{UserID: &userID, UnreadOnly: true}, (*service.Cursor)(nil)).
		Return([]service.Notification{{ID: 2, UserID: 1, Message: "hi", CreatedAt: createdAt}}, &service.Cursor{Position: 20, Limit: 20}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/notifications?user_id=1&unread=true")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{
		"items": [{"id":2,"user_id":1,"message":"hi","read":false,"created_at":"04/03/2025 08:00:00"}],
		"next_cursor": {"position":20,"limit":20}
	}`, resp.Body.String())
}

func TestHTTP_MarkRead(t *testing.T) {
	mockSvc := new(mockNotificationService)
	mockSvc.On("MarkRead", mock.Anything, int64(2)).
		Return(&service.Notification{ID: 2, UserID: 1, Message: "hi", Read: true, CreatedAt: createdAt}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/notifications/2/read")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"read":true`)
}

func TestHTTP_MarkRead_NotFound(t *testing.T) {
	mockSvc := new(mockNotificationService)
	mockSvc.On("MarkRead", mock.Anything, int64(2)).Return(nil, apperr.NotFound("notification", 2))

	resp := newTestAPI(t, mockSvc).Post("/v1/notifications/2/read")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_DeleteNotification(t *testing.T) {
	mockSvc := new(mockNotificationService)
	mockSvc.On("DeleteNotification", mock.Anything, int64(2)).Return(nil)

	resp := newTestAPI(t, mockSvc).Delete("/v1/notifications/2")

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}
