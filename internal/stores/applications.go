package stores

import (
	"context"

	"github.com/creatorlift/dashboard-client/infrastructure/gateway/campaign"
	"github.com/creatorlift/dashboard-client/internal/domain"
)

// ApplicationsStore é o store da tela de revisão de candidaturas
type ApplicationsStore struct {
	state
	applications []domain.Application
	gateway      campaign.Client
}

type ApplicationsSnapshot struct {
	Applications []domain.Application `json:"applications"`
	Loading      bool                 `json:"loading"`
	Err          string               `json:"error,omitempty"`
}

func NewApplicationsStore(gateway campaign.Client) *ApplicationsStore {
	return &ApplicationsStore{
		state:   newState(),
		gateway: gateway,
	}
}

// Refetch busca a lista de candidaturas. Falha zera a lista e registra o
// erro no estado; não há retry automático.
func (s *ApplicationsStore) Refetch(ctx context.Context) {
	fetchCtx, generation := s.beginFetch(ctx)

	applications, err := s.gateway.ListApplications(fetchCtx)
	if err != nil {
		s.finish(generation, err.Error(), func() {
			s.applications = []domain.Application{}
		})
		return
	}

	s.finish(generation, "", func() {
		s.applications = applications
	})
}

// Apply registra a candidatura do criador a uma campanha e anexa o resultado
// à lista local
func (s *ApplicationsStore) Apply(ctx context.Context, campaignID string, note string) ActionResult {
	application, err := s.gateway.CreateApplication(ctx, domain.CreateApplicationRequest{
		CampaignID: campaignID,
		Note:       note,
	})
	if err != nil {
		return actionFailed(err)
	}

	s.mu.Lock()
	s.applications = append(s.applications, *application)
	s.mu.Unlock()

	return actionOK()
}

func (s *ApplicationsStore) Snapshot() ApplicationsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ApplicationsSnapshot{
		Applications: append([]domain.Application(nil), s.applications...),
		Loading:      s.loading,
		Err:          s.err,
	}
}
