package stores

import (
	"context"

	"github.com/creatorlift/dashboard-client/infrastructure/gateway/shared"
	"github.com/creatorlift/dashboard-client/internal/domain"
)

// NotificationsStore alimenta o sino de notificações do dashboard. Marcar como
// lida é otimista: a entrada local vira lida na hora e o erro remoto só é
// reportado no resultado da ação.
type NotificationsStore struct {
	state
	notifications []domain.Notification
	gateway       shared.Client
}

type NotificationsSnapshot struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
	Loading       bool                  `json:"loading"`
	Err           string                `json:"error,omitempty"`
}

func NewNotificationsStore(gateway shared.Client) *NotificationsStore {
	return &NotificationsStore{
		state:   newState(),
		gateway: gateway,
	}
}

func (s *NotificationsStore) Refetch(ctx context.Context) {
	fetchCtx, generation := s.beginFetch(ctx)

	notifications, err := s.gateway.ListNotifications(fetchCtx)
	if err != nil {
		s.finish(generation, err.Error(), func() {
			s.notifications = []domain.Notification{}
		})
		return
	}

	s.finish(generation, "", func() {
		s.notifications = notifications
	})
}

func (s *NotificationsStore) Send(ctx context.Context, req domain.SendNotificationRequest) ActionResult {
	if err := s.gateway.SendNotification(ctx, req); err != nil {
		return actionFailed(err)
	}

	return actionOK()
}

// MarkRead marca a notificação localmente antes de avisar o backend
func (s *NotificationsStore) MarkRead(ctx context.Context, notificationID string) ActionResult {
	s.setRead(notificationID)

	if err := s.gateway.MarkNotificationRead(ctx, notificationID); err != nil {
		return actionFailed(err)
	}

	return actionOK()
}

func (s *NotificationsStore) MarkAllRead(ctx context.Context) ActionResult {
	s.mu.Lock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
	s.mu.Unlock()

	if err := s.gateway.MarkAllNotificationsRead(ctx); err != nil {
		return actionFailed(err)
	}

	return actionOK()
}

func (s *NotificationsStore) setRead(notificationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == notificationID {
			s.notifications[i].Read = true
			return
		}
	}
}

func (s *NotificationsStore) Snapshot() NotificationsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	unread := 0
	for _, n := range s.notifications {
		if !n.Read {
			unread++
		}
	}

	return NotificationsSnapshot{
		Notifications: append([]domain.Notification(nil), s.notifications...),
		UnreadCount:   unread,
		Loading:       s.loading,
		Err:           s.err,
	}
}
