// Package stores implementa os stores de recursos do dashboard: cada store é
// dono exclusivo de uma fatia de estado (data/loading/error), busca no
// gateway correspondente, normaliza o payload para o tipo fixo do frontend e
// expõe refetch e ações de mutação.
//
// Máquina de estados por store: loading (inicial e a cada refetch) ->
// sucesso (data preenchido, error vazio) | falha (error preenchido, data
// resetado para o valor vazio/padrão, nunca deixado desatualizado).
package stores

import (
	"context"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// state é a base compartilhada de todos os stores. A geração identifica a
// busca mais recente: uma busca nova cancela a anterior e resultados tardios
// de gerações velhas são descartados, eliminando o last-write-wins por ordem
// de chegada.
type state struct {
	mu         sync.Mutex
	loading    bool
	err        string
	generation uint64
	cancel     context.CancelFunc
}

func newState() state {
	return state{loading: true}
}

// beginFetch cancela a busca em andamento, entra em loading e devolve o
// contexto derivado e a geração desta busca
func (s *state) beginFetch(ctx context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.generation++
	s.loading = true

	return fetchCtx, s.generation
}

// finish aplica o resultado da busca se ela ainda for a mais recente.
// apply roda com o lock tomado e deve apenas atribuir os campos de dados do
// store. Retorna false quando o resultado foi descartado por ser tardio.
func (s *state) finish(generation uint64, errMsg string, apply func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return false
	}

	s.loading = false
	s.err = errMsg
	if apply != nil {
		apply()
	}

	return true
}

// ActionResult é o retorno uniforme das ações de mutação. Ações nunca
// propagam erro Go nem panic; falha vira Success=false com mensagem
// exibível.
type ActionResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func actionOK() ActionResult {
	return ActionResult{Success: true}
}

func actionFailed(err error) ActionResult {
	return ActionResult{Success: false, Error: err.Error()}
}
