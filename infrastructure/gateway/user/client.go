// Package user é o gateway tipado do serviço de usuários: perfil autenticado
// e configurações da agência.
package user

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/creatorlift/dashboard-client/infrastructure/gateway/httpclient"
	"github.com/creatorlift/dashboard-client/internal/domain"
	"github.com/creatorlift/dashboard-client/pkg/envelope"
)

type Client interface {
	Me(ctx context.Context) (*domain.User, error)
	GetAgencySettings(ctx context.Context) (*domain.AgencySettings, error)
	SaveAgencySettings(ctx context.Context, update domain.SettingsUpdate) error
}

type UserClient struct {
	api *httpclient.Client
}

func NewClient(api *httpclient.Client) Client {
	return &UserClient{api: api}
}

// Me busca o perfil do usuário autenticado
func (c *UserClient) Me(ctx context.Context) (*domain.User, error) {
	resp := c.api.Get(ctx, "/api/v1/users/me", nil)
	if !resp.Success {
		return nil, errors.New(resp.ErrorMessage())
	}

	me := &domain.User{}
	if err := envelope.DecodeObject(resp.Data, me); err != nil {
		logrus.WithError(err).Error("user: erro ao decodificar perfil do usuário")
		return nil, errors.Wrap(err, "resposta inesperada ao buscar perfil")
	}

	return me, nil
}

// GetAgencySettings busca as configurações gravadas da agência.
// Retorna (nil, nil) quando o backend ainda não tem configurações: o
// chamador decide o fallback.
func (c *UserClient) GetAgencySettings(ctx context.Context) (*domain.AgencySettings, error) {
	resp := c.api.Get(ctx, "/api/v1/agency/settings", nil)
	if !resp.Success {
		return nil, errors.New(resp.ErrorMessage())
	}

	if settingsAbsent(resp.Data) {
		return nil, nil
	}

	settings := &domain.AgencySettings{}
	if err := envelope.DecodeObject(resp.Data, settings); err != nil {
		logrus.WithError(err).Error("user: erro ao decodificar configurações da agência")
		return nil, errors.Wrap(err, "resposta inesperada ao buscar configurações")
	}

	return settings, nil
}

// SaveAgencySettings grava o patch de configurações no backend
func (c *UserClient) SaveAgencySettings(ctx context.Context, update domain.SettingsUpdate) error {
	resp := c.api.Put(ctx, "/api/v1/agency/settings", update)
	if !resp.Success {
		return errors.New(resp.ErrorMessage())
	}

	return nil
}

func settingsAbsent(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("{}"))
}
