// Package shared é o gateway tipado do serviço compartilhado: arquivos e
// notificações.
package shared

import (
	"context"
	"io"

	"github.com/creatorlift/dashboard-client/infrastructure/gateway/httpclient"
	"github.com/creatorlift/dashboard-client/internal/domain"
)

type Client interface {
	UploadFile(ctx context.Context, filename string, content io.Reader, purpose string) (*domain.UploadedFile, error)
	DeleteFile(ctx context.Context, fileID string) error
	ListNotifications(ctx context.Context) ([]domain.Notification, error)
	SendNotification(ctx context.Context, req domain.SendNotificationRequest) error
	MarkNotificationRead(ctx context.Context, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context) error
}

type SharedClient struct {
	api *httpclient.Client
}

func NewClient(api *httpclient.Client) Client {
	return &SharedClient{api: api}
}
