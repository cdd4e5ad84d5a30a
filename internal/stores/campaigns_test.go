package stores

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	campaignmocks "github.com/creatorlift/dashboard-client/infrastructure/gateway/campaign/mocks"
	"github.com/creatorlift/dashboard-client/internal/domain"
	"github.com/creatorlift/dashboard-client/pkg/querycache"
)

func TestCampaignsStore_Refetch(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "camp-1", Name: "Lançamento Verão", Status: domain.CampaignActive, Budget: 50000},
		{ID: "camp-2", Name: "Black Friday", Status: domain.CampaignDraft, Budget: 120000},
	}

	tests := []struct {
		name     string
		setup    func(gateway *campaignmocks.MockClient)
		validate func(t *testing.T, snapshot CampaignsSnapshot)
	}{
		{
			name: "Busca saudável - lista preenchida",
			setup: func(gateway *campaignmocks.MockClient) {
				gateway.EXPECT().ListCampaigns(gomock.Any()).Return(campaigns, nil)
			},
			validate: func(t *testing.T, snapshot CampaignsSnapshot) {
				assert.False(t, snapshot.Loading)
				assert.Empty(t, snapshot.Err)
				assert.Equal(t, campaigns, snapshot.Campaigns)
			},
		},
		{
			name: "Falha do gateway - erro registrado e lista zerada",
			setup: func(gateway *campaignmocks.MockClient) {
				gateway.EXPECT().ListCampaigns(gomock.Any()).
					Return(nil, errors.New("serviço de campanhas indisponível"))
			},
			validate: func(t *testing.T, snapshot CampaignsSnapshot) {
				assert.False(t, snapshot.Loading)
				assert.Equal(t, "serviço de campanhas indisponível", snapshot.Err)
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

			store := NewCampaignsStore(gateway, newTestCache())
			store.Refetch(context.Background())

			tt.validate(t, store.Snapshot())
		})
	}
}

// Dois refetch dentro da janela do cache devem bater na rede uma única vez
func TestCampaignsStore_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaigns := []domain.Campaign{
		{ID: "camp-1", Name: "Lançamento Verão", Status: domain.CampaignActive},
	}

	gateway := campaignmocks.NewMockClient(ctrl)
	gateway.EXPECT().ListCampaigns(gomock.Any()).Return(campaigns, nil).Times(1)

	store := NewCampaignsStore(gateway, newTestCache())

	store.Refetch(context.Background())
	first := store.Snapshot()

	store.Refetch(context.Background())
	second := store.Snapshot()

	assert.Equal(t, first, second)
}

// Cache desabilitado por configuração: todo refetch vai para a rede
func TestCampaignsStore_CacheDesabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := campaignmocks.NewMockClient(ctrl)
	gateway.EXPECT().ListCampaigns(gomock.Any()).
		Return([]domain.Campaign{{ID: "camp-1"}}, nil).Times(2)

	cache := querycache.New(querycache.Config{
		ListTTL: time.Minute,
		Enabled: false,
	})
	store := NewCampaignsStore(gateway, cache)

	store.Refetch(context.Background())
	store.Refetch(context.Background())
}

func TestBrandsStore_Refetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	brands := []domain.AgencyBrand{
		{ID: "brand-1", Name: "Marca Norte", Status: domain.BrandActive},
		{ID: "brand-2", Name: "Marca Sul", Status: domain.BrandPending},
	}

	gateway := campaignmocks.NewMockClient(ctrl)
	gateway.EXPECT().ListAgencyBrands(gomock.Any()).Return(brands, nil).Times(1)

	store := NewBrandsStore(gateway, newTestCache())

	store.Refetch(context.Background())
	snapshot := store.Snapshot()

	assert.False(t, snapshot.Loading)
	assert.Empty(t, snapshot.Err)
	assert.Equal(t, brands, snapshot.Brands)

	// Segundo refetch servido do cache
	store.Refetch(context.Background())
	assert.Equal(t, snapshot, store.Snapshot())
}
