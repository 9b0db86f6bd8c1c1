package insighting

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/sales-insights-api/infrastructure/source"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/metrics"
	"github.com/vfg2006/sales-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-insights-api/internal/usecases/cleaning"
	"github.com/vfg2006/sales-insights-api/internal/usecases/enriching"
	"github.com/vfg2006/sales-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

// Insighter executa o pipeline completo e consulta os resultados gravados
type Insighter interface {
	// Run lê a origem, limpa, enriquece, agrega e persiste o resultado
	Run(ctx context.Context, src source.RecordSource) (*domain.PipelineResult, error)

	GetLatestSnapshot(ctx context.Context) (*domain.KPISnapshot, error)
	GetSnapshot(ctx context.Context, runID string) (*domain.KPISnapshot, error)
}

type Service struct {
	cleaner    cleaning.Cleaner
	enricher   enriching.Enricher
	aggregator aggregating.Aggregator
	metrics    *metrics.PipelineMetrics

	snapshotRepository    repository.KPISnapshotRepository
	salesRecordRepository repository.SalesRecordRepository
	rankingService        ranking.RankingService
	useStorage            bool

	// Última execução, usada quando não há banco configurado
	mu     sync.RWMutex
	latest *domain.KPISnapshot
}

// NewService monta o pipeline. m pode ser nil.
func NewService(
	cleaner cleaning.Cleaner,
	enricher enriching.Enricher,
	aggregator aggregating.Aggregator,
	m *metrics.PipelineMetrics,
) *Service {
	return &Service{
		cleaner:    cleaner,
		enricher:   enricher,
		aggregator: aggregator,
		metrics:    m,
		useStorage: false, // Inicialmente sem banco
	}
}

// WithStorage habilita a persistência dos resultados
func (s *Service) WithStorage(
	snapshotRepo repository.KPISnapshotRepository,
	salesRecordRepo repository.SalesRecordRepository,
	rankingService ranking.RankingService,
) *Service {
	s.snapshotRepository = snapshotRepo
	s.salesRecordRepository = salesRecordRepo
	s.rankingService = rankingService
	s.useStorage = s.snapshotRepository != nil && s.salesRecordRepository != nil
	return s
}

func (s *Service) Run(ctx context.Context, src source.RecordSource) (*domain.PipelineResult, error) {
	startedAt := time.Now()

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, NewPipelineError(errors.Wrap(err, "erro ao gerar id da execução"), apiErrors.ErrInternalServer, "", "")
	}

	logger := logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"source": src.Name(),
	})
	logger.Info("Iniciando execução do pipeline")

	result, err := s.run(ctx, runID, startedAt, src, logger)
	if err != nil {
		s.metrics.ObserveRun(metrics.StatusFailure, time.Since(startedAt))
		logger.WithError(err).Error("Execução do pipeline falhou")
		return nil, err
	}

	status := metrics.StatusSuccess
	if len(result.Records) == 0 {
		status = metrics.StatusEmpty
	}
	s.metrics.ObserveReport(result.Snapshot.Report)
	s.metrics.ObserveRun(status, time.Since(startedAt))

	s.mu.Lock()
	s.latest = result.Snapshot
	s.mu.Unlock()

	logger.WithFields(logrus.Fields{
		"received":      result.Snapshot.Report.Received,
		"kept":          result.Snapshot.Report.Kept,
		"discarded":     result.Snapshot.Report.Discarded,
		"total_revenue": result.Snapshot.KPIs.TotalRevenue.String(),
		"duration":      time.Since(startedAt).String(),
	}).Info("Execução do pipeline concluída")

	return result, nil
}

func (s *Service) run(
	ctx context.Context,
	runID string,
	startedAt time.Time,
	src source.RecordSource,
	logger *logrus.Entry,
) (*domain.PipelineResult, error) {
	raws, err := src.Records(ctx)
	if err != nil {
		return nil, NewPipelineError(
			errors.Wrapf(ErrSourceUnavailable, "%s: %v", src.Name(), err),
			apiErrors.ErrSourceUnavailable,
			runID,
			"",
		)
	}

	clean, report := s.cleaner.Clean(raws)
	logger.WithFields(logrus.Fields{
		"received":  report.Received,
		"kept":      report.Kept,
		"by_reason": report.ByReason,
	}).Debug("Limpeza concluída")

	enriched, err := s.enricher.Enrich(clean)
	if err != nil {
		return nil, NewPipelineError(errors.Wrap(err, "erro ao enriquecer registros"), apiErrors.ErrInternalConsistency, runID, "")
	}

	kpis, err := s.aggregator.Aggregate(ctx, enriched)
	if err != nil {
		return nil, NewPipelineError(errors.Wrap(err, "erro ao agregar registros"), codeFor(err), runID, "")
	}

	result := &domain.PipelineResult{
		Snapshot: &domain.KPISnapshot{
			RunID:      runID,
			Source:     src.Name(),
			StartedAt:  startedAt,
			FinishedAt: time.Now(),
			Report:     report,
			KPIs:       kpis,
		},
		Records:  enriched,
		Warnings: []string{},
	}

	if len(enriched) == 0 {
		logger.Warn(domain.ErrEmptyInput.Error())
		result.Warnings = append(result.Warnings, domain.ErrEmptyInput.Error())
	}

	if s.useStorage {
		warnings, err := s.persist(ctx, result, logger)
		if err != nil {
			return nil, err
		}
		result.Warnings = append(result.Warnings, warnings...)
	}

	return result, nil
}

// persist grava snapshot e registros. Falha no ranking vira aviso, pois ele é derivado dos registros.
func (s *Service) persist(ctx context.Context, result *domain.PipelineResult, logger *logrus.Entry) ([]string, error) {
	runID := result.Snapshot.RunID

	if err := s.salesRecordRepository.SaveBatch(ctx, runID, result.Records); err != nil {
		return nil, NewPipelineError(errors.Wrap(err, ErrPersistence.Error()), apiErrors.ErrDatabaseOperation, runID, "registros")
	}

	if err := s.snapshotRepository.Save(ctx, result.Snapshot); err != nil {
		return nil, NewPipelineError(errors.Wrap(err, ErrPersistence.Error()), apiErrors.ErrDatabaseOperation, runID, "snapshot")
	}

	warnings := make([]string, 0)
	if s.rankingService == nil {
		return warnings, nil
	}

	period := aggregating.LatestPeriod(result.Records)
	if period == "" {
		return warnings, nil
	}

	if _, err := s.rankingService.UpdateCategoryRanking(ctx, period, aggregating.PeriodCategoryTotals(result.Records, period)); err != nil {
		logger.WithError(err).WithField("period", period).Warn("Erro ao atualizar ranking de categorias")
		warnings = append(warnings, err.Error())
	}

	return warnings, nil
}

func (s *Service) GetLatestSnapshot(ctx context.Context) (*domain.KPISnapshot, error) {
	if !s.useStorage {
		s.mu.RLock()
		defer s.mu.RUnlock()

		if s.latest == nil {
			return nil, NewPipelineError(ErrSnapshotNotFound, apiErrors.ErrNotFound, "", "nenhuma execução registrada")
		}
		return s.latest, nil
	}

	snapshot, err := s.snapshotRepository.GetLatest(ctx)
	if err != nil {
		return nil, NewPipelineError(err, apiErrors.ErrDatabaseOperation, "", "erro ao buscar última execução")
	}
	if snapshot == nil {
		return nil, NewPipelineError(ErrSnapshotNotFound, apiErrors.ErrNotFound, "", "nenhuma execução registrada")
	}

	return snapshot, nil
}

func (s *Service) GetSnapshot(ctx context.Context, runID string) (*domain.KPISnapshot, error) {
	if !s.useStorage {
		s.mu.RLock()
		defer s.mu.RUnlock()

		if s.latest == nil || s.latest.RunID != runID {
			return nil, NewPipelineError(ErrSnapshotNotFound, apiErrors.ErrNotFound, runID, "")
		}
		return s.latest, nil
	}

	snapshot, err := s.snapshotRepository.GetByRunID(ctx, runID)
	if err != nil {
		return nil, NewPipelineError(err, apiErrors.ErrDatabaseOperation, runID, "erro ao buscar execução")
	}
	if snapshot == nil {
		return nil, NewPipelineError(ErrSnapshotNotFound, apiErrors.ErrNotFound, runID, "")
	}

	return snapshot, nil
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrInternalConsistency):
		return apiErrors.ErrInternalConsistency
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apiErrors.ErrCommunication
	default:
		return apiErrors.ErrInternalServer
	}
}
