package shared

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/creatorlift/dashboard-client/internal/domain"
	"github.com/creatorlift/dashboard-client/pkg/envelope"
)

// ListNotifications lista as notificações do usuário autenticado
func (c *SharedClient) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	resp := c.api.Get(ctx, "/api/v1/notifications", nil)
	if !resp.Success {
		return nil, errors.New(resp.ErrorMessage())
	}

	var notifications []domain.Notification
	if err := envelope.DecodeList(resp.Data, "notifications", &notifications); err != nil {
		logrus.WithError(err).Error("shared: erro ao decodificar notificações")
		return nil, errors.Wrap(err, "resposta inesperada ao listar notificações")
	}

	return notifications, nil
}

// SendNotification envia uma notificação para outro usuário
func (c *SharedClient) SendNotification(ctx context.Context, req domain.SendNotificationRequest) error {
	resp := c.api.Post(ctx, "/api/v1/notifications/send", req)
	if !resp.Success {
		return errors.New(resp.ErrorMessage())
	}

	return nil
}

// MarkNotificationRead marca uma notificação como lida
func (c *SharedClient) MarkNotificationRead(ctx context.Context, notificationID string) error {
	resp := c.api.Post(ctx, fmt.Sprintf("/api/v1/notifications/%s/read", notificationID), nil)
	if !resp.Success {
		return errors.New(resp.ErrorMessage())
	}

	return nil
}

// MarkAllNotificationsRead marca todas as notificações como lidas
func (c *SharedClient) MarkAllNotificationsRead(ctx context.Context) error {
	resp := c.api.Post(ctx, "/api/v1/notifications/read-all", nil)
	if !resp.Success {
		return errors.New(resp.ErrorMessage())
	}

	return nil
}
