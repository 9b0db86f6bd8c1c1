package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// Linhas por INSERT. Mantém o total de parâmetros abaixo do limite do Postgres (65535).
const salesRecordBatchSize = 500

type SalesRecordRepository interface {
	SaveBatch(ctx context.Context, runID string, records []domain.EnrichedRecord) error
}

type salesRecordRepository struct {
	conn postgres.Conn
}

func NewSalesRecordRepository(conn postgres.Conn) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

// SaveBatch grava os registros enriquecidos de uma execução em uma única transação
func (r *salesRecordRepository) SaveBatch(ctx context.Context, runID string, records []domain.EnrichedRecord) error {
	if len(records) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(records); start += salesRecordBatchSize {
			end := min(start+salesRecordBatchSize, len(records))

			if err := r.insertBatch(ctx, tx, runID, records[start:end]); err != nil {
				return err
			}
		}

		logrus.WithFields(logrus.Fields{
			"run_id":  runID,
			"records": len(records),
		}).Debug("Registros de vendas gravados")

		return nil
	})
}

func (r *salesRecordRepository) insertBatch(ctx context.Context, q postgres.Queryer, runID string, records []domain.EnrichedRecord) error {
	query := squirrel.
		Insert("sales_records").
		Columns(
			"transaction_id",
			"run_id",
			"date",
			"customer_id",
			"product",
			"category",
			"region",
			"payment_method",
			"quantity",
			"unit_price",
			"discount",
			"age_group",
			"revenue",
			"net_revenue",
			"period",
			"quarter",
			"weekday",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, rec := range records {
		query = query.Values(
			rec.TransactionID(),
			runID,
			rec.Date(),
			rec.CustomerID(),
			rec.Product(),
			rec.Category(),
			rec.Region(),
			rec.PaymentMethod(),
			rec.Quantity(),
			rec.UnitPrice(),
			rec.Discount(),
			rec.AgeGroup(),
			rec.Revenue(),
			rec.NetRevenue(),
			rec.Period(),
			rec.Quarter(),
			rec.Weekday(),
		)
	}

	query = query.Suffix(`
		ON CONFLICT (transaction_id) DO UPDATE SET
			run_id = EXCLUDED.run_id,
			date = EXCLUDED.date,
			customer_id = EXCLUDED.customer_id,
			product = EXCLUDED.product,
			category = EXCLUDED.category,
			region = EXCLUDED.region,
			payment_method = EXCLUDED.payment_method,
			quantity = EXCLUDED.quantity,
			unit_price = EXCLUDED.unit_price,
			discount = EXCLUDED.discount,
			age_group = EXCLUDED.age_group,
			revenue = EXCLUDED.revenue,
			net_revenue = EXCLUDED.net_revenue,
			period = EXCLUDED.period,
			quarter = EXCLUDED.quarter,
			weekday = EXCLUDED.weekday,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao gravar lote de registros: %w", err)
	}

	return nil
}
