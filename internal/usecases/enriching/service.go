package enriching

import (
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

const stage = "enrich"

// Enricher calcula os campos derivados de cada registro limpo
type Enricher interface {
	Enrich(records []domain.CleanRecord) ([]domain.EnrichedRecord, error)
}

type Service struct{}

func NewService() Enricher {
	return &Service{}
}

// Enrich é um mapeamento 1:1 que preserva a ordem. Só falha quando um registro
// viola invariantes que a limpeza deveria ter garantido.
func (s *Service) Enrich(records []domain.CleanRecord) ([]domain.EnrichedRecord, error) {
	enriched := make([]domain.EnrichedRecord, 0, len(records))

	for _, record := range records {
		if err := record.Validate(); err != nil {
			return nil, &domain.InternalConsistencyError{
				Stage:         stage,
				TransactionID: record.TransactionID(),
				Detail:        err.Error(),
			}
		}

		e := domain.NewEnrichedRecord(record)
		if e.Revenue().IsNegative() || e.NetRevenue().IsNegative() {
			return nil, &domain.InternalConsistencyError{
				Stage:         stage,
				TransactionID: record.TransactionID(),
				Detail:        "receita derivada negativa: " + e.Revenue().String(),
			}
		}

		enriched = append(enriched, e)
	}

	return enriched, nil
}
