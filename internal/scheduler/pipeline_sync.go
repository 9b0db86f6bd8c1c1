// Package scheduler contém os serviços de agendamento das execuções do pipeline
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/infrastructure/source"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/usecases/insighting"
)

type PipelineSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SourceFactory cria a origem de dados de cada execução agendada
type SourceFactory func() (source.RecordSource, error)

type PipelineSyncService struct {
	scheduler           *gocron.Scheduler
	insighter           insighting.Insighter
	newSource           SourceFactory
	config              PipelineSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastError           string
}

func NewPipelineSyncService(
	insighter insighting.Insighter,
	newSource SourceFactory,
	cfg *config.Config,
) *PipelineSyncService {
	syncConfig := PipelineSyncConfig{
		CronSchedule: cfg.PipelineSync.CronSchedule, // Default: 4h da manhã todos os dias
		SyncEnabled:  cfg.PipelineSync.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"source_kind":   cfg.Source.Kind,
	}).Info("Configuração do agendador do pipeline carregada")

	return &PipelineSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		insighter: insighter,
		newSource: newSource,
		config:    syncConfig,
	}
}

func (s *PipelineSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do pipeline desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do pipeline")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSync(ctx); err != nil {
			logrus.WithError(err).Error("Erro na execução agendada do pipeline")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar execução do pipeline: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do pipeline")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSync executa o pipeline sobre a origem configurada. Não faz nada se já houver execução em andamento.
func (s *PipelineSyncService) RunSync(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Execução do pipeline já está em andamento")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	runID, err := s.run(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastRunID = runID
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncMutex.Unlock()

	return err
}

func (s *PipelineSyncService) run(ctx context.Context) (string, error) {
	src, err := s.newSource()
	if err != nil {
		return "", fmt.Errorf("erro ao criar origem de dados: %w", err)
	}

	result, err := s.insighter.Run(ctx, src)
	if err != nil {
		return "", err
	}

	return result.Snapshot.RunID, nil
}

// TriggerManualSync inicia uma execução em segundo plano. Retorna false se já houver uma em andamento.
func (s *PipelineSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Execução do pipeline já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do pipeline")
	go func() {
		if err := s.RunSync(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na execução manual do pipeline")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *PipelineSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_id":            s.lastRunID,
		"last_error":             s.lastError,
	}
}
