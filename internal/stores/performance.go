package stores

import (
	"context"

	"github.com/creatorlift/dashboard-client/infrastructure/gateway/analytics"
	"github.com/creatorlift/dashboard-client/internal/domain"
	"github.com/creatorlift/dashboard-client/pkg/utils"
)

// Valores provisórios exibidos enquanto o serviço de analytics não serve
// estes agregados. Ficam separados dos campos confirmados de propósito: o
// consumidor precisa saber o que é medido e o que é estimado.
var placeholderEstimates = domain.EstimatedMetrics{
	TotalCampaigns:  12,
	ActiveCampaigns: 3,
	Followers:       25000,
	TotalViews:      150000,
	TotalLikes:      12000,
	TotalComments:   1800,
	TotalShares:     950,
}

// PerformanceStore é o store dos KPIs de um criador. Em caso de falha as
// métricas caem para o objeto zerado em vez de nil, para o dashboard
// renderizar zeros em vez de tratar estado nulo.
type PerformanceStore struct {
	state
	metrics   domain.PerformanceMetrics
	gateway   analytics.Client
	creatorID string
}

type PerformanceSnapshot struct {
	Metrics domain.PerformanceMetrics `json:"metrics"`
	Loading bool                      `json:"loading"`
	Err     string                    `json:"error,omitempty"`
}

func NewPerformanceStore(gateway analytics.Client, creatorID string) *PerformanceStore {
	return &PerformanceStore{
		state:     newState(),
		gateway:   gateway,
		creatorID: creatorID,
	}
}

func (s *PerformanceStore) Refetch(ctx context.Context) {
	fetchCtx, generation := s.beginFetch(ctx)

	raw, err := s.gateway.CreatorPerformance(fetchCtx, s.creatorID)
	if err != nil {
		s.finish(generation, err.Error(), func() {
			s.metrics = domain.PerformanceMetrics{}
		})
		return
	}

	metrics := deriveMetrics(raw)
	s.finish(generation, "", func() {
		s.metrics = metrics
	})
}

// deriveMetrics converte o DTO bruto na visão de métricas: scores chegam como
// string e são convertidos com tolerância; agregados ausentes recebem os
// valores provisórios
func deriveMetrics(raw *domain.CreatorPerformance) domain.PerformanceMetrics {
	if raw == nil {
		return domain.PerformanceMetrics{}
	}

	return domain.PerformanceMetrics{
		Confirmed: domain.ConfirmedMetrics{
			TotalGMV:          raw.TotalGMV,
			MonthGMV:          raw.MonthGMV,
			PostCount:         raw.PostCount,
			ConsistencyScore:  utils.RoundWithTwoDecimalPlace(utils.ParseFloatOrZero(raw.ConsistencyScore)),
			ReliabilityRating: utils.RoundWithTwoDecimalPlace(utils.ParseFloatOrZero(raw.ReliabilityRating)),
			AvgEngagementRate: utils.RoundWithTwoDecimalPlace(utils.ParseFloatOrZero(raw.AvgEngagementRate)),
		},
		Estimated: placeholderEstimates,
	}
}

func (s *PerformanceStore) Snapshot() PerformanceSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return PerformanceSnapshot{
		Metrics: s.metrics,
		Loading: s.loading,
		Err:     s.err,
	}
}
