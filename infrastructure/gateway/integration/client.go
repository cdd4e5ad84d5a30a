// Package integration é o gateway tipado do serviço de integrações externas
// (TikTok Shop, Instagram, Shopify, ...).
package integration

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/creatorlift/dashboard-client/infrastructure/gateway/httpclient"
	"github.com/creatorlift/dashboard-client/internal/domain"
	"github.com/creatorlift/dashboard-client/pkg/envelope"
)

type Client interface {
	ListIntegrations(ctx context.Context) ([]domain.IntegrationStatus, error)
	Connect(ctx context.Context, name string) (*domain.IntegrationStatus, error)
	Disconnect(ctx context.Context, name string) (*domain.IntegrationStatus, error)
}

type IntegrationClient struct {
	api *httpclient.Client
}

func NewClient(api *httpclient.Client) Client {
	return &IntegrationClient{api: api}
}

func (c *IntegrationClient) ListIntegrations(ctx context.Context) ([]domain.IntegrationStatus, error) {
	resp := c.api.Get(ctx, "/api/v1/agency/integrations", nil)
	if !resp.Success {
		return nil, errors.New(resp.ErrorMessage())
	}

	var integrations []domain.IntegrationStatus
	if err := envelope.DecodeList(resp.Data, "integrations", &integrations); err != nil {
		logrus.WithError(err).Error("integration: erro ao decodificar lista de integrações")
		return nil, errors.Wrap(err, "resposta inesperada ao listar integrações")
	}

	return integrations, nil
}

func (c *IntegrationClient) Connect(ctx context.Context, name string) (*domain.IntegrationStatus, error) {
	return c.toggle(ctx, name, "connect")
}

func (c *IntegrationClient) Disconnect(ctx context.Context, name string) (*domain.IntegrationStatus, error) {
	return c.toggle(ctx, name, "disconnect")
}

func (c *IntegrationClient) toggle(ctx context.Context, name string, action string) (*domain.IntegrationStatus, error) {
	resp := c.api.Post(ctx, fmt.Sprintf("/api/v1/agency/integrations/%s/%s", name, action), nil)
	if !resp.Success {
		return nil, errors.New(resp.ErrorMessage())
	}

	status := &domain.IntegrationStatus{}
	if err := envelope.DecodeObject(resp.Data, status); err != nil {
		logrus.WithError(err).WithField("integration", name).Error("integration: erro ao decodificar status da integração")
		return nil, errors.Wrap(err, "resposta inesperada ao alterar integração")
	}

	return status, nil
}
