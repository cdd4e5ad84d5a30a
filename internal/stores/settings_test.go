package stores

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	usermocks "github.com/creatorlift/dashboard-client/infrastructure/gateway/user/mocks"
	"github.com/creatorlift/dashboard-client/internal/domain"
)

var testIdentity = domain.Claims{
	UserID:    "user-1",
	UserName:  "Agência Alfa",
	UserEmail: "contato@alfa.com",
}

func TestSettingsStore_Refetch(t *testing.T) {
	saved := domain.AgencySettings{
		Profile: domain.SettingsProfile{
			AgencyName:  "Alfa Mídia",
			ContactName: "Joana",
			Email:       "joana@alfa.com",
		},
		Regional: domain.SettingsRegional{
			Timezone: "America/Recife",
			Currency: "BRL",
		},
	}

	tests := []struct {
		name     string
		setup    func(gateway *usermocks.MockClient)
		validate func(t *testing.T, snapshot SettingsSnapshot)
	}{
		{
			name: "Configurações gravadas - usadas como estão",
			setup: func(gateway *usermocks.MockClient) {
				gateway.EXPECT().GetAgencySettings(gomock.Any()).Return(&saved, nil)
			},
			validate: func(t *testing.T, snapshot SettingsSnapshot) {
				assert.False(t, snapshot.Loading)
				assert.Empty(t, snapshot.Err)
				assert.Equal(t, saved, snapshot.Settings)
			},
		},
		{
			name: "Backend sem configurações - defaults semeados com a identidade, sem erro",
			setup: func(gateway *usermocks.MockClient) {
				gateway.EXPECT().GetAgencySettings(gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, snapshot SettingsSnapshot) {
				assert.False(t, snapshot.Loading)
				assert.Empty(t, snapshot.Err)
				assert.Equal(t, "Agência Alfa", snapshot.Settings.Profile.AgencyName)
				assert.Equal(t, "contato@alfa.com", snapshot.Settings.Profile.Email)
				assert.Equal(t, "America/Sao_Paulo", snapshot.Settings.Regional.Timezone)
			},
		},
		{
			name: "Falha na leitura - defaults na tela, erro registrado",
			setup: func(gateway *usermocks.MockClient) {
				gateway.EXPECT().GetAgencySettings(gomock.Any()).
					Return(nil, errors.New("serviço de usuários indisponível"))
			},
			validate: func(t *testing.T, snapshot SettingsSnapshot) {
				assert.False(t, snapshot.Loading)
				assert.Equal(t, "serviço de usuários indisponível", snapshot.Err)
				assert.Equal(t, domain.DefaultAgencySettings(testIdentity), snapshot.Settings)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gateway := usermocks.NewMockClient(ctrl)
			tt.setup(gateway)

			store := NewSettingsStore(gateway, testIdentity)
			store.Refetch(context.Background())

			tt.validate(t, store.Snapshot())
		})
	}
}

func TestSettingsStore_SaveSettings(t *testing.T) {
	update := domain.SettingsUpdate{
		Regional: &domain.SettingsRegional{
			Timezone: "America/Manaus",
			Currency: "BRL",
			Language: "pt-BR",
		},
	}

	tests := []struct {
		name     string
		setup    func(gateway *usermocks.MockClient)
		validate func(t *testing.T, result SaveResult, snapshot SettingsSnapshot)
	}{
		{
			name: "Gravação remota confirmada - Synced=true",
			setup: func(gateway *usermocks.MockClient) {
				gateway.EXPECT().GetAgencySettings(gomock.Any()).Return(nil, nil)
				gateway.EXPECT().SaveAgencySettings(gomock.Any(), update).Return(nil)
			},
			validate: func(t *testing.T, result SaveResult, snapshot SettingsSnapshot) {
				assert.True(t, result.Success)
				assert.True(t, result.Synced)
				assert.Empty(t, result.Error)
				assert.Equal(t, "America/Manaus", snapshot.Settings.Regional.Timezone)
			},
		},
		{
			name: "Backend fora do ar - salvar continua Success=true, patch aplicado localmente",
			setup: func(gateway *usermocks.MockClient) {
				gateway.EXPECT().GetAgencySettings(gomock.Any()).Return(nil, nil)
				gateway.EXPECT().SaveAgencySettings(gomock.Any(), update).
					Return(errors.New("serviço de usuários indisponível"))
			},
			validate: func(t *testing.T, result SaveResult, snapshot SettingsSnapshot) {
				assert.True(t, result.Success, "salvar nunca falha do ponto de vista da UI")
				assert.False(t, result.Synced)
				assert.Equal(t, "serviço de usuários indisponível", result.Error)

				// O estado local reflete o patch mesmo sem confirmação remota
				assert.Equal(t, "America/Manaus", snapshot.Settings.Regional.Timezone)
				assert.Equal(t, "pt-BR", snapshot.Settings.Regional.Language)
				// Seções não tocadas pelo patch permanecem com os defaults
				assert.True(t, snapshot.Settings.Notifications.EmailCampaigns)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gateway := usermocks.NewMockClient(ctrl)
			tt.setup(gateway)

			store := NewSettingsStore(gateway, testIdentity)
			store.Refetch(context.Background())

			result := store.SaveSettings(context.Background(), update)

			tt.validate(t, result, store.Snapshot())
		})
	}
}
