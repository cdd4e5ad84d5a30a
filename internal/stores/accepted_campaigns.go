package stores

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/creatorlift/dashboard-client/infrastructure/gateway/campaign"
	"github.com/creatorlift/dashboard-client/internal/domain"
)

// maxAcceptedCampaigns limita o carrossel de campanhas aceitas do dashboard
// do criador
const maxAcceptedCampaigns = 4

// AcceptedCampaignsStore monta as campanhas em que o criador foi aprovado.
// Busca em dois estágios: candidaturas do usuário, filtro client-side por
// status aprovado (limitado às primeiras, na ordem do backend) e uma busca
// de detalhe por campanha, em paralelo.
type AcceptedCampaignsStore struct {
	state
	campaigns []domain.Campaign
	gateway   campaign.Client
}

type AcceptedCampaignsSnapshot struct {
	Campaigns []domain.Campaign `json:"campaigns"`
	Loading   bool              `json:"loading"`
	Err       string            `json:"error,omitempty"`
}

func NewAcceptedCampaignsStore(gateway campaign.Client) *AcceptedCampaignsStore {
	return &AcceptedCampaignsStore{
		state:   newState(),
		gateway: gateway,
	}
}

func (s *AcceptedCampaignsStore) Refetch(ctx context.Context) {
	fetchCtx, generation := s.beginFetch(ctx)

	applications, err := s.gateway.MyApplications(fetchCtx)
	if err != nil {
		s.finish(generation, err.Error(), func() {
			s.campaigns = []domain.Campaign{}
		})
		return
	}

	approved := make([]domain.Application, 0, maxAcceptedCampaigns)
	for _, application := range applications {
		if application.Status != domain.ApplicationApproved {
			continue
		}

		approved = append(approved, application)
		if len(approved) == maxAcceptedCampaigns {
			break
		}
	}

	// Uma busca de detalhe por campanha aprovada, em paralelo. Falha em uma
	// campanha é logada e excluída do resultado, nunca aborta o lote.
	results := make([]*domain.Campaign, len(approved))

	wg := sync.WaitGroup{}
	for i, application := range approved {
		wg.Add(1)
		go func(index int, campaignID string) {
			defer wg.Done()

			detail, err := s.gateway.GetCampaign(fetchCtx, campaignID)
			if err != nil {
				logrus.WithError(err).WithField("campaign_id", campaignID).
					Warn("accepted_campaigns: campanha aprovada excluída por falha na busca de detalhe")
				return
			}

			results[index] = detail
		}(i, application.CampaignID)
	}
	wg.Wait()

	campaigns := make([]domain.Campaign, 0, len(approved))
	for _, detail := range results {
		if detail != nil {
			campaigns = append(campaigns, *detail)
		}
	}

	s.finish(generation, "", func() {
		s.campaigns = campaigns
	})
}

func (s *AcceptedCampaignsStore) Snapshot() AcceptedCampaignsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return AcceptedCampaignsSnapshot{
		Campaigns: append([]domain.Campaign(nil), s.campaigns...),
		Loading:   s.loading,
		Err:       s.err,
	}
}
