package stores

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/creatorlift/dashboard-client/infrastructure/gateway/user"
	"github.com/creatorlift/dashboard-client/internal/domain"
)

// SettingsStore é o store das configurações da agência. O contrato de
// persistência é local-first: leitura cai para defaults semeados com a
// identidade do usuário; gravação aplica o patch localmente SEMPRE e tenta o
// backend por melhor esforço. Do ponto de vista da UI, salvar nunca falha.
// O campo Synced do resultado diz se a gravação remota aconteceu.
type SettingsStore struct {
	state
	settings domain.AgencySettings
	gateway  user.Client
	identity domain.Claims
}

type SettingsSnapshot struct {
	Settings domain.AgencySettings `json:"settings"`
	Loading  bool                  `json:"loading"`
	Err      string                `json:"error,omitempty"`
}

// SaveResult é o retorno de SaveSettings. Success é sempre true; Synced
// indica se o backend confirmou a gravação.
type SaveResult struct {
	Success bool   `json:"success"`
	Synced  bool   `json:"synced"`
	Error   string `json:"error,omitempty"`
}

func NewSettingsStore(gateway user.Client, identity domain.Claims) *SettingsStore {
	return &SettingsStore{
		state:    newState(),
		gateway:  gateway,
		identity: identity,
	}
}

// Refetch busca as configurações gravadas; falha ou ausência sintetiza os
// defaults para a tela nunca abrir vazia
func (s *SettingsStore) Refetch(ctx context.Context) {
	fetchCtx, generation := s.beginFetch(ctx)

	settings, err := s.gateway.GetAgencySettings(fetchCtx)
	if err != nil {
		s.finish(generation, err.Error(), func() {
			s.settings = domain.DefaultAgencySettings(s.identity)
		})
		return
	}

	if settings == nil {
		// Backend sem configurações gravadas ainda
		s.finish(generation, "", func() {
			s.settings = domain.DefaultAgencySettings(s.identity)
		})
		return
	}

	s.finish(generation, "", func() {
		s.settings = *settings
	})
}

// SaveSettings aplica o patch no estado local e tenta gravar no backend.
// Falha remota é engolida: o resultado continua Success=true com
// Synced=false.
func (s *SettingsStore) SaveSettings(ctx context.Context, update domain.SettingsUpdate) SaveResult {
	s.mu.Lock()
	s.settings = update.Apply(s.settings)
	s.mu.Unlock()

	if err := s.gateway.SaveAgencySettings(ctx, update); err != nil {
		logrus.WithError(err).Warn("settings: gravação remota falhou, configurações mantidas localmente")
		return SaveResult{Success: true, Synced: false, Error: err.Error()}
	}

	return SaveResult{Success: true, Synced: true}
}

func (s *SettingsStore) Snapshot() SettingsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SettingsSnapshot{
		Settings: s.settings,
		Loading:  s.loading,
		Err:      s.err,
	}
}
