// Package scheduler contém os serviços de agendamento do painel
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/painel-leads-api/internal/config"
)

// Resyncer força as assinaturas ativas a reler suas coleções.
type Resyncer interface {
	Resync() int
}

type SnapshotRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// SnapshotRefreshService relê periodicamente todas as coleções assinadas, cobrindo
// notificações perdidas enquanto o listener do banco esteve desconectado.
type SnapshotRefreshService struct {
	scheduler           *gocron.Scheduler
	resyncer            Resyncer
	config              SnapshotRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRefreshed       int
}

func NewSnapshotRefreshService(resyncer Resyncer, cfg *config.Config) *SnapshotRefreshService {
	refreshConfig := SnapshotRefreshConfig{
		CronSchedule: cfg.SnapshotRefresh.CronSchedule,
		Enabled:      cfg.SnapshotRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de recarga das coleções carregada")

	return &SnapshotRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		resyncer:  resyncer,
		config:    refreshConfig,
	}
}

func (s *SnapshotRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de recarga das coleções desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga das coleções")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RefreshSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga das coleções: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga das coleções")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshSnapshots dispara a releitura e devolve quantas assinaturas foram sinalizadas.
func (s *SnapshotRefreshService) RefreshSnapshots() int {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Recarga das coleções já está em execução")
		return 0
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	refreshed := s.resyncer.Resync()
	s.lastRefreshed = refreshed

	logrus.WithField("subscriptions", refreshed).Info("Recarga das coleções solicitada")

	return refreshed
}

// TriggerManualSync inicia manualmente uma recarga das coleções
func (s *SnapshotRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga das coleções já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual das coleções")
	go s.RefreshSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_refreshed":         s.lastRefreshed,
	}
}
