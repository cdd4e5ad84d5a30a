package stores

import (
	"context"

	"github.com/creatorlift/dashboard-client/infrastructure/gateway/integration"
	"github.com/creatorlift/dashboard-client/internal/domain"
)

// IntegrationsStore é o store do painel de integrações externas. Quando o
// serviço de integrações está fora, a tela mostra a lista padrão com tudo
// desconectado em vez de quebrar.
type IntegrationsStore struct {
	state
	integrations []domain.IntegrationStatus
	gateway      integration.Client
}

type IntegrationsSnapshot struct {
	Integrations []domain.IntegrationStatus `json:"integrations"`
	Loading      bool                       `json:"loading"`
	Err          string                     `json:"error,omitempty"`
}

func NewIntegrationsStore(gateway integration.Client) *IntegrationsStore {
	return &IntegrationsStore{
		state:   newState(),
		gateway: gateway,
	}
}

func (s *IntegrationsStore) Refetch(ctx context.Context) {
	fetchCtx, generation := s.beginFetch(ctx)

	integrations, err := s.gateway.ListIntegrations(fetchCtx)
	if err != nil {
		s.finish(generation, err.Error(), func() {
			s.integrations = domain.DefaultIntegrations()
		})
		return
	}

	s.finish(generation, "", func() {
		s.integrations = integrations
	})
}

// Connect inicia a conexão de uma integração e atualiza a entrada local com
// o status devolvido pelo serviço
func (s *IntegrationsStore) Connect(ctx context.Context, name string) ActionResult {
	status, err := s.gateway.Connect(ctx, name)
	if err != nil {
		return actionFailed(err)
	}

	s.replace(*status)
	return actionOK()
}

// Disconnect desfaz a conexão de uma integração
func (s *IntegrationsStore) Disconnect(ctx context.Context, name string) ActionResult {
	status, err := s.gateway.Disconnect(ctx, name)
	if err != nil {
		return actionFailed(err)
	}

	s.replace(*status)
	return actionOK()
}

func (s *IntegrationsStore) replace(status domain.IntegrationStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.integrations {
		if s.integrations[i].Name == status.Name {
			s.integrations[i] = status
			return
		}
	}

	s.integrations = append(s.integrations, status)
}

func (s *IntegrationsStore) Snapshot() IntegrationsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return IntegrationsSnapshot{
		Integrations: append([]domain.IntegrationStatus(nil), s.integrations...),
		Loading:      s.loading,
		Err:          s.err,
	}
}
