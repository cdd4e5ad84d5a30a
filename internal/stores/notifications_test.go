package stores

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	sharedmocks "github.com/creatorlift/dashboard-client/infrastructure/gateway/shared/mocks"
	"github.com/creatorlift/dashboard-client/internal/domain"
)

func notificationsFixture() []domain.Notification {
	createdAt := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	return []domain.Notification{
		{ID: "notif-1", Title: "Nova candidatura", Read: false, CreatedAt: createdAt},
		{ID: "notif-2", Title: "Pagamento liberado", Read: true, CreatedAt: createdAt},
		{ID: "notif-3", Title: "Campanha aprovada", Read: false, CreatedAt: createdAt},
	}
}

func TestNotificationsStore_Refetch(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(gateway *sharedmocks.MockClient)
		validate func(t *testing.T, snapshot NotificationsSnapshot)
	}{
		{
			name: "Busca saudável - contador de não lidas derivado da lista",
			setup: func(gateway *sharedmocks.MockClient) {
				gateway.EXPECT().ListNotifications(gomock.Any()).Return(notificationsFixture(), nil)
			},
			validate: func(t *testing.T, snapshot NotificationsSnapshot) {
				assert.False(t, snapshot.Loading)
				assert.Empty(t, snapshot.Err)
				assert.Len(t, snapshot.Notifications, 3)
				assert.Equal(t, 2, snapshot.UnreadCount)
			},
		},
		{
			name: "Falha do gateway - lista zerada e contador em zero",
			setup: func(gateway *sharedmocks.MockClient) {
				gateway.EXPECT().ListNotifications(gomock.Any()).
					Return(nil, errors.New("serviço compartilhado indisponível"))
			},
			validate: func(t *testing.T, snapshot NotificationsSnapshot) {
				assert.False(t, snapshot.Loading)
				assert.Equal(t, "serviço compartilhado indisponível", snapshot.Err)
				assert.Empty(t, snapshot.Notifications)
				assert.Zero(t, snapshot.UnreadCount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gateway := sharedmocks.NewMockClient(ctrl)
			tt.setup(gateway)

			store := NewNotificationsStore(gateway)
			store.Refetch(context.Background())

			tt.validate(t, store.Snapshot())
		})
	}
}

// Marcar como lida é otimista: a entrada local flipa mesmo quando o backend
// falha
func TestNotificationsStore_MarkReadOtimista(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := sharedmocks.NewMockClient(ctrl)
	gateway.EXPECT().ListNotifications(gomock.Any()).Return(notificationsFixture(), nil)
	gateway.EXPECT().MarkNotificationRead(gomock.Any(), "notif-1").
		Return(errors.New("serviço compartilhado indisponível"))

	store := NewNotificationsStore(gateway)
	store.Refetch(context.Background())

	result := store.MarkRead(context.Background(), "notif-1")
	assert.False(t, result.Success)
	assert.Equal(t, "serviço compartilhado indisponível", result.Error)

	snapshot := store.Snapshot()
	assert.True(t, snapshot.Notifications[0].Read, "flip local acontece antes da chamada remota")
	assert.Equal(t, 1, snapshot.UnreadCount)
}

func TestNotificationsStore_MarkAllRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := sharedmocks.NewMockClient(ctrl)
	gateway.EXPECT().ListNotifications(gomock.Any()).Return(notificationsFixture(), nil)
	gateway.EXPECT().MarkAllNotificationsRead(gomock.Any()).Return(nil)

	store := NewNotificationsStore(gateway)
	store.Refetch(context.Background())

	result := store.MarkAllRead(context.Background())
	assert.True(t, result.Success)

	snapshot := store.Snapshot()
	assert.Zero(t, snapshot.UnreadCount)
	for _, notification := range snapshot.Notifications {
		assert.True(t, notification.Read)
	}
}

func TestNotificationsStore_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := domain.SendNotificationRequest{
		RecipientID: "creator-7",
		Title:       "Briefing atualizado",
		Body:        "confira as novas diretrizes da campanha",
	}

	gateway := sharedmocks.NewMockClient(ctrl)
	gateway.EXPECT().SendNotification(gomock.Any(), req).Return(nil)

	store := NewNotificationsStore(gateway)

	result := store.Send(context.Background(), req)
	assert.True(t, result.Success)
}
