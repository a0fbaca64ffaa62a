// Package scheduler contém os serviços de agendamento da aplicação.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/retail-backoffice-api/internal/config"
	"github.com/vfg2006/retail-backoffice-api/internal/domain"
	"github.com/vfg2006/retail-backoffice-api/internal/usecases/dashboarding"
	"github.com/vfg2006/retail-backoffice-api/pkg/utils"
)

type DashboardSnapshotConfig struct {
	CronSchedule string
	Enabled      bool
}

// DashboardSnapshotService grava diariamente o resumo do dashboard, para o
// frontend ter os números do dia anterior mesmo quando a consulta de vendas
// estiver lenta.
type DashboardSnapshotService struct {
	scheduler           *gocron.Scheduler
	summarizer          dashboarding.Summarizer
	snapshotRepo        repository.DashboardSnapshotRepository
	config              DashboardSnapshotConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDashboardSnapshotService(
	summarizer dashboarding.Summarizer,
	snapshotRepo repository.DashboardSnapshotRepository,
	cfg *config.Config,
) *DashboardSnapshotService {
	snapshotConfig := DashboardSnapshotConfig{
		CronSchedule: cfg.DashboardSnapshot.CronSchedule,
		Enabled:      cfg.DashboardSnapshot.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
	}).Info("Configuração do agendador de snapshot do dashboard carregada")

	return &DashboardSnapshotService{
		scheduler:    scheduler,
		summarizer:   summarizer,
		snapshotRepo: snapshotRepo,
		config:       snapshotConfig,
	}
}

func (s *DashboardSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de snapshot do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSnapshot(); err != nil {
			logrus.WithError(err).Error("Erro ao gravar snapshot do dashboard")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshot do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSnapshot calcula o resumo atual e grava o snapshot do dia
func (s *DashboardSnapshotService) RunSnapshot() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Snapshot do dashboard já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando snapshot do dashboard")

	summary, err := s.summarizer.Summarize()
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular resumo para o snapshot")
		return err
	}

	snapshot := &domain.DashboardSnapshot{
		SnapshotDate: utils.TruncateToDay(time.Now()),
		Summary:      *summary,
	}

	if err := s.snapshotRepo.SaveOrUpdateSnapshot(snapshot); err != nil {
		return err
	}

	logrus.Info("Snapshot do dashboard concluído")

	return nil
}
