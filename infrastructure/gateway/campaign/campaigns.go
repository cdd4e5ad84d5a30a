package campaign

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/creatorlift/dashboard-client/internal/domain"
	"github.com/creatorlift/dashboard-client/pkg/envelope"
)

// ListCampaigns lista as campanhas visíveis para o papel atual
func (c *CampaignClient) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	resp := c.api.Get(ctx, "/api/v1/campaigns", nil)
	if !resp.Success {
		return nil, errors.New(resp.ErrorMessage())
	}

	var campaigns []domain.Campaign
	if err := envelope.DecodeList(resp.Data, "campaigns", &campaigns); err != nil {
		logrus.WithError(err).Error("campaign: erro ao decodificar lista de campanhas")
		return nil, errors.Wrap(err, "resposta inesperada ao listar campanhas")
	}

	return campaigns, nil
}

// GetCampaign busca o detalhe de uma campanha
func (c *CampaignClient) GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	resp := c.api.Get(ctx, fmt.Sprintf("/api/v1/campaigns/%s", campaignID), nil)
	if !resp.Success {
		return nil, errors.New(resp.ErrorMessage())
	}

	campaign := &domain.Campaign{}
	if err := envelope.DecodeObject(resp.Data, campaign); err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Error("campaign: erro ao decodificar detalhe da campanha")
		return nil, errors.Wrap(err, "resposta inesperada ao buscar campanha")
	}

	return campaign, nil
}
