package stores

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	campaignmocks "github.com/creatorlift/dashboard-client/infrastructure/gateway/campaign/mocks"
	"github.com/creatorlift/dashboard-client/internal/domain"
)

func TestAcceptedCampaignsStore_Refetch(t *testing.T) {
	// Seis candidaturas aprovadas misturadas com outros status; só as quatro
	// primeiras aprovadas, na ordem do backend, viram busca de detalhe
	myApplications := []domain.Application{
		{ID: "app-1", CampaignID: "camp-1", Status: domain.ApplicationApproved},
		{ID: "app-2", CampaignID: "camp-2", Status: domain.ApplicationPending},
		{ID: "app-3", CampaignID: "camp-3", Status: domain.ApplicationApproved},
		{ID: "app-4", CampaignID: "camp-4", Status: domain.ApplicationRejected},
		{ID: "app-5", CampaignID: "camp-5", Status: domain.ApplicationApproved},
		{ID: "app-6", CampaignID: "camp-6", Status: domain.ApplicationApproved},
		{ID: "app-7", CampaignID: "camp-7", Status: domain.ApplicationApproved},
		{ID: "app-8", CampaignID: "camp-8", Status: domain.ApplicationApproved},
	}

	tests := []struct {
		name     string
		setup    func(gateway *campaignmocks.MockClient)
		validate func(t *testing.T, snapshot AcceptedCampaignsSnapshot)
	}{
		{
			name: "Seis aprovadas - detalhe buscado só para as quatro primeiras",
			setup: func(gateway *campaignmocks.MockClient) {
				gateway.EXPECT().MyApplications(gomock.Any()).Return(myApplications, nil)

				for _, id := range []string{"camp-1", "camp-3", "camp-5", "camp-6"} {
					gateway.EXPECT().GetCampaign(gomock.Any(), id).
						Return(&domain.Campaign{ID: id, Status: domain.CampaignActive}, nil)
				}
			},
			validate: func(t *testing.T, snapshot AcceptedCampaignsSnapshot) {
				assert.False(t, snapshot.Loading)
				assert.Empty(t, snapshot.Err)
				assert.Len(t, snapshot.Campaigns, maxAcceptedCampaigns)

				ids := make([]string, 0, len(snapshot.Campaigns))
				for _, c := range snapshot.Campaigns {
					ids = append(ids, c.ID)
				}
				assert.Equal(t, []string{"camp-1", "camp-3", "camp-5", "camp-6"}, ids)
			},
		},
		{
			name: "Uma busca de detalhe falha - campanha excluída, ordem das demais preservada",
			setup: func(gateway *campaignmocks.MockClient) {
				gateway.EXPECT().MyApplications(gomock.Any()).Return(myApplications, nil)

				gateway.EXPECT().GetCampaign(gomock.Any(), "camp-1").
					Return(&domain.Campaign{ID: "camp-1"}, nil)
				gateway.EXPECT().GetCampaign(gomock.Any(), "camp-3").
					Return(nil, errors.New("campanha não encontrada"))
				gateway.EXPECT().GetCampaign(gomock.Any(), "camp-5").
					Return(&domain.Campaign{ID: "camp-5"}, nil)
				gateway.EXPECT().GetCampaign(gomock.Any(), "camp-6").
					Return(&domain.Campaign{ID: "camp-6"}, nil)
			},
			validate: func(t *testing.T, snapshot AcceptedCampaignsSnapshot) {
				assert.False(t, snapshot.Loading)
				assert.Empty(t, snapshot.Err, "falha parcial não vira erro de store")

				ids := make([]string, 0, len(snapshot.Campaigns))
				for _, c := range snapshot.Campaigns {
					ids = append(ids, c.ID)
				}
				assert.Equal(t, []string{"camp-1", "camp-5", "camp-6"}, ids)
			},
		},
		{
			name: "Falha no primeiro estágio - erro registrado, lista zerada",
			setup: func(gateway *campaignmocks.MockClient) {
				gateway.EXPECT().MyApplications(gomock.Any()).
					Return(nil, errors.New("serviço de campanhas indisponível"))
			},
			validate: func(t *testing.T, snapshot AcceptedCampaignsSnapshot) {
				assert.False(t, snapshot.Loading)
				assert.Equal(t, "serviço de campanhas indisponível", snapshot.Err)
				assert.Empty(t, snapshot.Campaigns)
			},
		},
		{
			name: "Nenhuma candidatura aprovada - lista vazia sem erro",
			setup: func(gateway *campaignmocks.MockClient) {
				gateway.EXPECT().MyApplications(gomock.Any()).Return([]domain.Application{
					{ID: "app-2", CampaignID: "camp-2", Status: domain.ApplicationPending},
				}, nil)
			},
			validate: func(t *testing.T, snapshot AcceptedCampaignsSnapshot) {
				assert.False(t, snapshot.Loading)
				assert.Empty(t, snapshot.Err)
				assert.Empty(t, snapshot.Campaigns)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gateway := campaignmocks.NewMockClient(ctrl)
			tt.setup(gateway)

			store := NewAcceptedCampaignsStore(gateway)
			store.Refetch(context.Background())

			tt.validate(t, store.Snapshot())
		})
	}
}
