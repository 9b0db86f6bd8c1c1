package source

import (
	"fmt"

	"github.com/vfg2006/sales-insights-api/infrastructure/integrator/storefront"
	"github.com/vfg2006/sales-insights-api/internal/config"
)

// New cria a origem configurada em PIPELINE_SOURCE_KIND
func New(cfg *config.Config, mapper *Mapper, integrator storefront.StorefrontIntegrator) (RecordSource, error) {
	switch cfg.Source.Kind {
	case config.SourceKindCSV:
		return NewCSVSource(cfg.Source.Path, mapper), nil
	case config.SourceKindXLSX:
		return NewXLSXSource(cfg.Source.Path, cfg.Source.Sheet, mapper), nil
	case config.SourceKindStorefront:
		if integrator == nil {
			return nil, fmt.Errorf("integração com a loja não configurada")
		}
		return NewStorefrontSource(integrator, cfg.Storefront.LookbackDays, mapper), nil
	}

	return nil, fmt.Errorf("tipo de origem desconhecido: %q", cfg.Source.Kind)
}
