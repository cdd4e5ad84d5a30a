package stores

import (
	"context"

	"github.com/creatorlift/dashboard-client/infrastructure/gateway/campaign"
	"github.com/creatorlift/dashboard-client/internal/domain"
	"github.com/creatorlift/dashboard-client/pkg/querycache"
)

const brandsListKey = "brands:list"

// BrandsStore é o store do seletor de marcas da agência
type BrandsStore struct {
	state
	brands  []domain.AgencyBrand
	gateway campaign.Client
	cache   *querycache.Cache
}

type BrandsSnapshot struct {
	Brands  []domain.AgencyBrand `json:"brands"`
	Loading bool                 `json:"loading"`
	Err     string               `json:"error,omitempty"`
}

func NewBrandsStore(gateway campaign.Client, cache *querycache.Cache) *BrandsStore {
	return &BrandsStore{
		state:   newState(),
		gateway: gateway,
		cache:   cache,
	}
}

func (s *BrandsStore) Refetch(ctx context.Context) {
	fetchCtx, generation := s.beginFetch(ctx)

	if raw, ok := s.cache.Get(brandsListKey); ok {
		var cached []domain.AgencyBrand
		if err := codec.Unmarshal(raw, &cached); err == nil {
			s.finish(generation, "", func() {
				s.brands = cached
			})
			return
		}
		s.cache.Invalidate(brandsListKey)
	}

	brands, err := s.gateway.ListAgencyBrands(fetchCtx)
	if err != nil {
		s.finish(generation, err.Error(), func() {
			s.brands = []domain.AgencyBrand{}
		})
		return
	}

	if raw, err := codec.Marshal(brands); err == nil {
		s.cache.SetList(brandsListKey, raw)
	}

	s.finish(generation, "", func() {
		s.brands = brands
	})
}

func (s *BrandsStore) Snapshot() BrandsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return BrandsSnapshot{
		Brands:  append([]domain.AgencyBrand(nil), s.brands...),
		Loading: s.loading,
		Err:     s.err,
	}
}
