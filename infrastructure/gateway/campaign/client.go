// Package campaign é o gateway tipado do serviço de campanhas: candidaturas,
// campanhas e marcas da agência.
package campaign

import (
	"context"

	"github.com/creatorlift/dashboard-client/infrastructure/gateway/httpclient"
	"github.com/creatorlift/dashboard-client/internal/domain"
)

type Client interface {
	ListApplications(ctx context.Context) ([]domain.Application, error)
	MyApplications(ctx context.Context) ([]domain.Application, error)
	CreateApplication(ctx context.Context, req domain.CreateApplicationRequest) (*domain.Application, error)
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)
	ListAgencyBrands(ctx context.Context) ([]domain.AgencyBrand, error)
}

type CampaignClient struct {
	api *httpclient.Client
}

func NewClient(api *httpclient.Client) Client {
	return &CampaignClient{api: api}
}
