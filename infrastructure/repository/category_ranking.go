package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

const (
	categoryRankingTable = "category_ranking cr"
)

var categoryRankingColumns = []string{
	"cr.id",
	"cr.period",
	"cr.category",
	"cr.revenue",
	"cr.orders",
	"cr.position",
	"cr.position_change",
	"cr.previous_position",
	"cr.created_at",
	"cr.updated_at",
}

type CategoryRankingRepository interface {
	GetByPeriod(ctx context.Context, period string) ([]domain.CategoryRankingItem, error)
	GetRanking(ctx context.Context, period string) (*domain.CategoryRankingResponse, error)
	SaveOrUpdate(ctx context.Context, period string, items []*domain.CategoryRankingItem) error
}

type categoryRankingRepository struct {
	conn postgres.Conn
}

func NewCategoryRankingRepository(conn postgres.Conn) CategoryRankingRepository {
	return &categoryRankingRepository{
		conn: conn,
	}
}

// GetRanking retorna o ranking do período. Período vazio usa o mais recente gravado.
func (r *categoryRankingRepository) GetRanking(ctx context.Context, period string) (*domain.CategoryRankingResponse, error) {
	queryBuilder := squirrel.
		Select(categoryRankingColumns...).
		From(categoryRankingTable).
		OrderBy("cr.position ASC").
		PlaceholderFormat(squirrel.Dollar)

	if period != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"cr.period": period})
	} else {
		queryBuilder = queryBuilder.Where("cr.period = (SELECT MAX(period) FROM category_ranking)")
	}

	items, err := r.list(ctx, queryBuilder)
	if err != nil {
		return nil, err
	}

	var lastUpdate time.Time
	for _, item := range items {
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
		if period == "" {
			period = item.Period
		}
	}

	// Se não há registros, usar tempo atual para lastUpdate
	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.CategoryRankingResponse{
		Period:     period,
		Ranking:    items,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *categoryRankingRepository) GetByPeriod(ctx context.Context, period string) ([]domain.CategoryRankingItem, error) {
	return r.list(ctx, squirrel.
		Select(categoryRankingColumns...).
		From(categoryRankingTable).
		Where(squirrel.Eq{"cr.period": period}).
		OrderBy("cr.position ASC").
		PlaceholderFormat(squirrel.Dollar))
}

// SaveOrUpdate substitui o ranking do período: categorias que saíram são removidas
func (r *categoryRankingRepository) SaveOrUpdate(ctx context.Context, period string, items []*domain.CategoryRankingItem) error {
	if len(items) == 0 {
		return nil
	}

	categories := make([]string, 0, len(items))
	query := squirrel.StatementBuilder.
		Insert("category_ranking").
		Columns(
			"period",
			"category",
			"revenue",
			"orders",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, item := range items {
		categories = append(categories, item.Category)
		query = query.Values(
			period,
			item.Category,
			item.Revenue,
			item.Orders,
			item.Position,
			item.PositionChange,
			item.PreviousPosition,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (period, category) DO UPDATE SET
			revenue = EXCLUDED.revenue,
			orders = EXCLUDED.orders,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	insertSQL, insertArgs, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	deleteSQL, deleteArgs, err := squirrel.
		Delete("category_ranking").
		Where(squirrel.Eq{"period": period}).
		Where(squirrel.NotEq{"category": categories}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover categorias antigas do ranking: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("erro ao executar query de inserção: %w", err)
		}

		return nil
	})
}

func (r *categoryRankingRepository) list(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]domain.CategoryRankingItem, error) {
	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]domain.CategoryRankingItem, 0)
	for rows.Next() {
		var item domain.CategoryRankingItem

		err := rows.Scan(
			&item.ID,
			&item.Period,
			&item.Category,
			&item.Revenue,
			&item.Orders,
			&item.Position,
			&item.PositionChange,
			&item.PreviousPosition,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}
