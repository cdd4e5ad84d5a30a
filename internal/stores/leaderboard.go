package stores

import (
	"context"
	"fmt"

	"github.com/creatorlift/dashboard-client/infrastructure/gateway/analytics"
	"github.com/creatorlift/dashboard-client/internal/domain"
	"github.com/creatorlift/dashboard-client/pkg/querycache"
)

// LeaderboardStore é o store do ranking de criadores por GMV
type LeaderboardStore struct {
	state
	entries []domain.LeaderboardEntry
	gateway analytics.Client
	cache   *querycache.Cache
	period  string
	user    domain.Claims
}

type LeaderboardSnapshot struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
	Loading bool                      `json:"loading"`
	Err     string                    `json:"error,omitempty"`
}

func NewLeaderboardStore(gateway analytics.Client, cache *querycache.Cache, period string, user domain.Claims) *LeaderboardStore {
	return &LeaderboardStore{
		state:   newState(),
		gateway: gateway,
		cache:   cache,
		period:  period,
		user:    user,
	}
}

func (s *LeaderboardStore) cacheKey() string {
	return fmt.Sprintf("leaderboard:%s", s.period)
}

func (s *LeaderboardStore) Refetch(ctx context.Context) {
	fetchCtx, generation := s.beginFetch(ctx)

	if raw, ok := s.cache.Get(s.cacheKey()); ok {
		var cached []domain.RawLeaderboardEntry
		if err := codec.Unmarshal(raw, &cached); err == nil {
			s.finish(generation, "", func() {
				s.entries = s.derive(cached)
			})
			return
		}
		s.cache.Invalidate(s.cacheKey())
	}

	raw, err := s.gateway.Leaderboard(fetchCtx, s.period)
	if err != nil {
		s.finish(generation, err.Error(), func() {
			s.entries = []domain.LeaderboardEntry{}
		})
		return
	}

	if serialized, err := codec.Marshal(raw); err == nil {
		s.cache.SetList(s.cacheKey(), serialized)
	}

	s.finish(generation, "", func() {
		s.entries = s.derive(raw)
	})
}

// derive materializa a visão de ranking: rank é a posição no array (1-based),
// o badge vem da faixa de GMV e isCurrentUser compara com a identidade do
// token. Não há ordenação aqui, a ordem do backend é respeitada.
func (s *LeaderboardStore) derive(raw []domain.RawLeaderboardEntry) []domain.LeaderboardEntry {
	entries := make([]domain.LeaderboardEntry, 0, len(raw))

	for index, entry := range raw {
		entries = append(entries, domain.LeaderboardEntry{
			Rank:          index + 1,
			CreatorID:     entry.CreatorID,
			Name:          entry.Name,
			AvatarURL:     entry.AvatarURL,
			GMV:           entry.GMV,
			Badge:         domain.BadgeForGMV(entry.GMV),
			IsCurrentUser: s.user.UserID != "" && s.user.UserID == entry.CreatorID,
		})
	}

	return entries
}

func (s *LeaderboardStore) Snapshot() LeaderboardSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return LeaderboardSnapshot{
		Entries: append([]domain.LeaderboardEntry(nil), s.entries...),
		Loading: s.loading,
		Err:     s.err,
	}
}
