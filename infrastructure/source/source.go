// Package source contém as origens de registros brutos do pipeline
package source

import (
	"context"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// RecordSource fornece as linhas brutas de uma execução
type RecordSource interface {
	Name() string
	Records(ctx context.Context) ([]domain.RawRecord, error)
}
