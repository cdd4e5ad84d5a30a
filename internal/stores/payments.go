package stores

import (
	"context"

	"github.com/creatorlift/dashboard-client/infrastructure/gateway/payment"
	"github.com/creatorlift/dashboard-client/internal/domain"
)

// PaymentsStore é o store da tela de meios de pagamento. Diferente das
// notificações, toda mutação aqui é pessimista: a lista local só muda depois
// do serviço confirmar.
type PaymentsStore struct {
	state
	methods []domain.PaymentMethod
	gateway payment.Client
}

type PaymentsSnapshot struct {
	Methods []domain.PaymentMethod `json:"methods"`
	Loading bool                   `json:"loading"`
	Err     string                 `json:"error,omitempty"`
}

func NewPaymentsStore(gateway payment.Client) *PaymentsStore {
	return &PaymentsStore{
		state:   newState(),
		gateway: gateway,
	}
}

func (s *PaymentsStore) Refetch(ctx context.Context) {
	fetchCtx, generation := s.beginFetch(ctx)

	methods, err := s.gateway.ListMethods(fetchCtx)
	if err != nil {
		s.finish(generation, err.Error(), func() {
			s.methods = []domain.PaymentMethod{}
		})
		return
	}

	s.finish(generation, "", func() {
		s.methods = methods
	})
}

func (s *PaymentsStore) Add(ctx context.Context, req domain.SavePaymentMethodRequest) ActionResult {
	method, err := s.gateway.AddMethod(ctx, req)
	if err != nil {
		return actionFailed(err)
	}

	s.mu.Lock()
	if method.IsDefault {
		s.clearDefaultLocked()
	}
	s.methods = append(s.methods, *method)
	s.mu.Unlock()

	return actionOK()
}

func (s *PaymentsStore) Update(ctx context.Context, methodID string, req domain.SavePaymentMethodRequest) ActionResult {
	method, err := s.gateway.UpdateMethod(ctx, methodID, req)
	if err != nil {
		return actionFailed(err)
	}

	s.mu.Lock()
	if method.IsDefault {
		s.clearDefaultLocked()
	}
	for i := range s.methods {
		if s.methods[i].ID == methodID {
			s.methods[i] = *method
			break
		}
	}
	s.mu.Unlock()

	return actionOK()
}

func (s *PaymentsStore) Delete(ctx context.Context, methodID string) ActionResult {
	if err := s.gateway.DeleteMethod(ctx, methodID); err != nil {
		return actionFailed(err)
	}

	s.mu.Lock()
	kept := s.methods[:0]
	for _, m := range s.methods {
		if m.ID != methodID {
			kept = append(kept, m)
		}
	}
	s.methods = kept
	s.mu.Unlock()

	return actionOK()
}

func (s *PaymentsStore) SetDefault(ctx context.Context, methodID string) ActionResult {
	if err := s.gateway.SetDefaultMethod(ctx, methodID); err != nil {
		return actionFailed(err)
	}

	s.mu.Lock()
	for i := range s.methods {
		s.methods[i].IsDefault = s.methods[i].ID == methodID
	}
	s.mu.Unlock()

	return actionOK()
}

// clearDefaultLocked exige o mutex já adquirido pelo chamador
func (s *PaymentsStore) clearDefaultLocked() {
	for i := range s.methods {
		s.methods[i].IsDefault = false
	}
}

func (s *PaymentsStore) Snapshot() PaymentsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return PaymentsSnapshot{
		Methods: append([]domain.PaymentMethod(nil), s.methods...),
		Loading: s.loading,
		Err:     s.err,
	}
}
