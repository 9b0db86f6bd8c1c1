package source

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// RowsSource entrega linhas já carregadas em memória
type RowsSource struct {
	name   string
	rows   []map[string]any
	mapper *Mapper
}

func NewRowsSource(name string, rows []map[string]any, mapper *Mapper) *RowsSource {
	return &RowsSource{name: name, rows: rows, mapper: mapper}
}

func (s *RowsSource) Name() string {
	return s.name
}

func (s *RowsSource) Records(ctx context.Context) ([]domain.RawRecord, error) {
	records := make([]domain.RawRecord, 0, len(s.rows))
	for _, row := range s.rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := s.mapper.Map(row)
		if err != nil {
			logrus.WithError(err).Warn("Linha não pôde ser convertida")
		}
		records = append(records, raw)
	}

	return records, nil
}
