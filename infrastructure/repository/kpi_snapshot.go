package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const kpiSnapshotTable = "kpi_snapshots ks"

var kpiSnapshotColumns = []string{
	"ks.run_id",
	"ks.source",
	"ks.started_at",
	"ks.finished_at",
	"ks.report",
	"ks.kpis",
}

type KPISnapshotRepository interface {
	Save(ctx context.Context, snapshot *domain.KPISnapshot) error
	GetLatest(ctx context.Context) (*domain.KPISnapshot, error)
	GetByRunID(ctx context.Context, runID string) (*domain.KPISnapshot, error)
}

type kpiSnapshotRepository struct {
	conn postgres.Conn
}

func NewKPISnapshotRepository(conn postgres.Conn) KPISnapshotRepository {
	return &kpiSnapshotRepository{
		conn: conn,
	}
}

func (r *kpiSnapshotRepository) Save(ctx context.Context, snapshot *domain.KPISnapshot) error {
	report, err := json.Marshal(snapshot.Report)
	if err != nil {
		return fmt.Errorf("erro ao serializar relatório de descarte: %w", err)
	}

	kpis, err := json.Marshal(snapshot.KPIs)
	if err != nil {
		return fmt.Errorf("erro ao serializar KPIs: %w", err)
	}

	query, args, err := squirrel.
		Insert("kpi_snapshots").
		Columns("run_id", "source", "started_at", "finished_at", "report", "kpis").
		Values(snapshot.RunID, snapshot.Source, snapshot.StartedAt, snapshot.FinishedAt, report, kpis).
		Suffix(`
			ON CONFLICT (run_id) DO UPDATE SET
				finished_at = EXCLUDED.finished_at,
				report = EXCLUDED.report,
				kpis = EXCLUDED.kpis
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar snapshot %s: %w", snapshot.RunID, err)
	}

	return nil
}

// GetLatest retorna nil quando ainda não existe execução persistida
func (r *kpiSnapshotRepository) GetLatest(ctx context.Context) (*domain.KPISnapshot, error) {
	query, args, err := squirrel.
		Select(kpiSnapshotColumns...).
		From(kpiSnapshotTable).
		OrderBy("ks.finished_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanOne(r.conn.QueryRowContext(ctx, query, args...))
}

func (r *kpiSnapshotRepository) GetByRunID(ctx context.Context, runID string) (*domain.KPISnapshot, error) {
	query, args, err := squirrel.
		Select(kpiSnapshotColumns...).
		From(kpiSnapshotTable).
		Where(squirrel.Eq{"ks.run_id": runID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanOne(r.conn.QueryRowContext(ctx, query, args...))
}

func (r *kpiSnapshotRepository) scanOne(row *sql.Row) (*domain.KPISnapshot, error) {
	var (
		snapshot domain.KPISnapshot
		report   []byte
		kpis     []byte
	)

	err := row.Scan(
		&snapshot.RunID,
		&snapshot.Source,
		&snapshot.StartedAt,
		&snapshot.FinishedAt,
		&report,
		&kpis,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	snapshot.Report = &domain.DiscardReport{}
	if err := json.Unmarshal(report, snapshot.Report); err != nil {
		return nil, fmt.Errorf("erro ao decodificar relatório de descarte: %w", err)
	}

	snapshot.KPIs = domain.EmptyKPISet()
	if err := json.Unmarshal(kpis, snapshot.KPIs); err != nil {
		return nil, fmt.Errorf("erro ao decodificar KPIs: %w", err)
	}

	return &snapshot, nil
}
