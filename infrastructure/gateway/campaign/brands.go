package campaign

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/creatorlift/dashboard-client/internal/domain"
	"github.com/creatorlift/dashboard-client/pkg/envelope"
)

// ListAgencyBrands lista as marcas vinculadas à agência para o seletor de
// marcas
func (c *CampaignClient) ListAgencyBrands(ctx context.Context) ([]domain.AgencyBrand, error) {
	resp := c.api.Get(ctx, "/api/v1/agency/brands", nil)
	if !resp.Success {
		return nil, errors.New(resp.ErrorMessage())
	}

	var brands []domain.AgencyBrand
	if err := envelope.DecodeList(resp.Data, "brands", &brands); err != nil {
		logrus.WithError(err).Error("campaign: erro ao decodificar lista de marcas")
		return nil, errors.Wrap(err, "resposta inesperada ao listar marcas")
	}

	return brands, nil
}
