// Package querycache implementa o cache de consultas compartilhado entre os
// stores de recursos. A instância é criada uma única vez na inicialização e
// injetada explicitamente: não existe singleton de pacote.
package querycache

import (
	"encoding/json"
	"strings"
	"sync"
	"time"
)

// Config define as janelas de validade do cache. Listas e detalhes têm
// janelas separadas porque telas de listagem toleram mais tempo de dado
// desatualizado do que telas de detalhe.
type Config struct {
	ListTTL     time.Duration
	DetailTTL   time.Duration
	JanitorCron string
	Enabled     bool
}

type entry struct {
	data      json.RawMessage
	expiresAt time.Time
}

// Cache é um cache chave-valor com expiração por entrada.
// Seguro para uso concorrente.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	config  Config
	now     func() time.Time
}

// New cria uma instância de cache com a configuração informada
func New(cfg Config) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		config:  cfg,
		now:     time.Now,
	}
}

// Get retorna o payload bruto armazenado para a chave, se ainda válido
func (c *Cache) Get(key string) (json.RawMessage, bool) {
	if c == nil || !c.config.Enabled {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}

	return e.data, true
}

// SetList armazena um payload de listagem com a janela de validade de listas
func (c *Cache) SetList(key string, data json.RawMessage) {
	c.set(key, data, c.config.ListTTL)
}

// SetDetail armazena um payload de detalhe com a janela de validade curta
func (c *Cache) SetDetail(key string, data json.RawMessage) {
	c.set(key, data, c.config.DetailTTL)
}

func (c *Cache) set(key string, data json.RawMessage, ttl time.Duration) {
	if c == nil || !c.config.Enabled || ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		data:      data,
		expiresAt: c.now().Add(ttl),
	}
}

// Invalidate remove todas as entradas cuja chave começa com o prefixo.
// Usado pelas ações de mutação para derrubar listagens relacionadas.
func (c *Cache) Invalidate(prefix string) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Len retorna a quantidade de entradas armazenadas, incluindo expiradas
// ainda não varridas pelo janitor
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// purgeExpired remove as entradas vencidas
func (c *Cache) purgeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	now := c.now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}

	return removed
}
