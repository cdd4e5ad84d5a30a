// Package analytics é o gateway tipado do serviço de analytics: leaderboard
// e performance de criadores.
package analytics

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/creatorlift/dashboard-client/infrastructure/gateway/httpclient"
	"github.com/creatorlift/dashboard-client/internal/domain"
	"github.com/creatorlift/dashboard-client/pkg/envelope"
)

type Client interface {
	Leaderboard(ctx context.Context, period string) ([]domain.RawLeaderboardEntry, error)
	CreatorPerformance(ctx context.Context, creatorID string) (*domain.CreatorPerformance, error)
}

type AnalyticsClient struct {
	api *httpclient.Client
}

func NewClient(api *httpclient.Client) Client {
	return &AnalyticsClient{api: api}
}

// Leaderboard devolve as entradas do ranking na ordem escolhida pelo
// backend. period é opcional ("month", "all_time", ...).
func (c *AnalyticsClient) Leaderboard(ctx context.Context, period string) ([]domain.RawLeaderboardEntry, error) {
	var params url.Values
	if period != "" {
		params = url.Values{}
		params.Add("period", period)
	}

	resp := c.api.Get(ctx, "/api/v1/analytics/leaderboard", params)
	if !resp.Success {
		return nil, errors.New(resp.ErrorMessage())
	}

	var entries []domain.RawLeaderboardEntry
	if err := envelope.DecodeList(resp.Data, "leaderboard", &entries); err != nil {
		logrus.WithError(err).Error("analytics: erro ao decodificar leaderboard")
		return nil, errors.Wrap(err, "resposta inesperada ao buscar leaderboard")
	}

	return entries, nil
}

// CreatorPerformance busca o DTO bruto de performance de um criador
func (c *AnalyticsClient) CreatorPerformance(ctx context.Context, creatorID string) (*domain.CreatorPerformance, error) {
	resp := c.api.Get(ctx, fmt.Sprintf("/api/v1/creators/%s/performance", creatorID), nil)
	if !resp.Success {
		return nil, errors.New(resp.ErrorMessage())
	}

	performance := &domain.CreatorPerformance{}
	if err := envelope.DecodeObject(resp.Data, performance); err != nil {
		logrus.WithError(err).WithField("creator_id", creatorID).Error("analytics: erro ao decodificar performance")
		return nil, errors.Wrap(err, "resposta inesperada ao buscar performance")
	}

	return performance, nil
}
