package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_DescartaGeracaoAntiga(t *testing.T) {
	s := newState()

	// Primeira busca em andamento
	firstCtx, firstGen := s.beginFetch(context.Background())

	// Segunda busca cancela a primeira e vira a geração corrente
	_, secondGen := s.beginFetch(context.Background())

	assert.Error(t, firstCtx.Err(), "a busca anterior deve ser cancelada")
	assert.Greater(t, secondGen, firstGen)

	// Resultado tardio da primeira busca é descartado
	applied := s.finish(firstGen, "", func() {
		t.Fatal("apply de geração antiga não pode rodar")
	})
	assert.False(t, applied)
	assert.True(t, s.loading, "resultado tardio não pode sair do loading")

	// Resultado da geração corrente é aplicado
	ran := false
	applied = s.finish(secondGen, "", func() { ran = true })
	assert.True(t, applied)
	assert.True(t, ran)
	assert.False(t, s.loading)
}

func TestState_TransicaoUnicaDeLoading(t *testing.T) {
	s := newState()
	assert.True(t, s.loading, "store nasce em loading")

	_, gen := s.beginFetch(context.Background())
	assert.True(t, s.loading)

	s.finish(gen, "", nil)
	assert.False(t, s.loading)
	assert.Empty(t, s.err)
}

func TestActionResult(t *testing.T) {
	ok := actionOK()
	assert.True(t, ok.Success)
	assert.Empty(t, ok.Error)

	failed := actionFailed(assert.AnError)
	assert.False(t, failed.Success)
	assert.Equal(t, assert.AnError.Error(), failed.Error)
}
