package source

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/sales-insights-api/infrastructure/integrator/storefront"
	storefrontdomain "github.com/vfg2006/sales-insights-api/infrastructure/integrator/storefront/domain"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// StorefrontSource busca os pedidos recentes na API da loja
type StorefrontSource struct {
	integrator   storefront.StorefrontIntegrator
	lookbackDays int
	mapper       *Mapper
	now          func() time.Time
}

func NewStorefrontSource(integrator storefront.StorefrontIntegrator, lookbackDays int, mapper *Mapper) *StorefrontSource {
	return &StorefrontSource{
		integrator:   integrator,
		lookbackDays: lookbackDays,
		mapper:       mapper,
		now:          time.Now,
	}
}

func (s *StorefrontSource) Name() string {
	return fmt.Sprintf("storefront:%dd", s.lookbackDays)
}

func (s *StorefrontSource) Records(ctx context.Context) ([]domain.RawRecord, error) {
	end := s.now()
	start := end.AddDate(0, 0, -s.lookbackDays)

	rows, err := s.integrator.GetSalesRows(ctx, storefrontdomain.GetSalesParams{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar pedidos da loja: %w", err)
	}

	return NewRowsSource(s.Name(), rows, s.mapper).Records(ctx)
}
