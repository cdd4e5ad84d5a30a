package campaign

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/creatorlift/dashboard-client/internal/domain"
	"github.com/creatorlift/dashboard-client/pkg/envelope"
)

// ListApplications lista as candidaturas visíveis para o papel atual
// (revisão de agência/marca)
func (c *CampaignClient) ListApplications(ctx context.Context) ([]domain.Application, error) {
	resp := c.api.Get(ctx, "/api/v1/applications/", nil)
	if !resp.Success {
		return nil, errors.New(resp.ErrorMessage())
	}

	var applications []domain.Application
	if err := envelope.DecodeList(resp.Data, "applications", &applications); err != nil {
		logrus.WithError(err).Error("campaign: erro ao decodificar lista de candidaturas")
		return nil, errors.Wrap(err, "resposta inesperada ao listar candidaturas")
	}

	return applications, nil
}

// MyApplications lista as candidaturas do criador autenticado
func (c *CampaignClient) MyApplications(ctx context.Context) ([]domain.Application, error) {
	resp := c.api.Get(ctx, "/api/v1/applications/my-applications", nil)
	if !resp.Success {
		return nil, errors.New(resp.ErrorMessage())
	}

	var applications []domain.Application
	if err := envelope.DecodeList(resp.Data, "applications", &applications); err != nil {
		logrus.WithError(err).Error("campaign: erro ao decodificar candidaturas do usuário")
		return nil, errors.Wrap(err, "resposta inesperada ao listar candidaturas do usuário")
	}

	return applications, nil
}

// CreateApplication registra a candidatura do criador a uma campanha
func (c *CampaignClient) CreateApplication(ctx context.Context, req domain.CreateApplicationRequest) (*domain.Application, error) {
	resp := c.api.Post(ctx, "/api/v1/applications/", req)
	if !resp.Success {
		return nil, errors.New(resp.ErrorMessage())
	}

	application := &domain.Application{}
	if err := envelope.DecodeObject(resp.Data, application); err != nil {
		logrus.WithError(err).Error("campaign: erro ao decodificar candidatura criada")
		return nil, errors.Wrap(err, "resposta inesperada ao criar candidatura")
	}

	return application, nil
}
