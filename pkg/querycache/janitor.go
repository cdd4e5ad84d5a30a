package querycache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// Janitor agenda a varredura periódica de entradas expiradas do cache
type Janitor struct {
	scheduler *gocron.Scheduler
	cache     *Cache
	cron      string
}

// NewJanitor cria o agendador de limpeza para a instância de cache informada
func NewJanitor(cache *Cache) *Janitor {
	return &Janitor{
		scheduler: gocron.NewScheduler(time.Local),
		cache:     cache,
		cron:      cache.config.JanitorCron,
	}
}

// Start agenda a varredura e a executa em background até o contexto ser
// cancelado
func (j *Janitor) Start(ctx context.Context) error {
	if !j.cache.config.Enabled {
		logrus.Info("Cache de consultas desabilitado por configuração, janitor não iniciado")
		return nil
	}

	logrus.WithField("cron", j.cron).Info("Iniciando janitor do cache de consultas")

	_, err := j.scheduler.Cron(j.cron).Do(func() {
		removed := j.cache.purgeExpired()
		if removed > 0 {
			logrus.WithField("removed", removed).Debug("querycache: entradas expiradas removidas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar janitor do cache de consultas: %w", err)
	}

	j.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando janitor do cache de consultas")
		j.scheduler.Stop()
	}()

	return nil
}
