package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-insights-api/infrastructure/integrator/storefront/mocks"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	integrator := mocks.NewMockStorefrontIntegrator(gomock.NewController(t))

	tests := []struct {
		name         string
		kind         string
		withStore    bool
		expectedName string
		wantErr      bool
	}{
		{name: "CSV", kind: config.SourceKindCSV, expectedName: "csv:sales_data.csv"},
		{name: "Planilha", kind: config.SourceKindXLSX, expectedName: "xlsx:sales_data.csv"},
		{name: "Loja", kind: config.SourceKindStorefront, withStore: true, expectedName: "storefront:15d"},
		{name: "Loja sem integração", kind: config.SourceKindStorefront, wantErr: true},
		{name: "Tipo desconhecido", kind: "ftp", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				Source:     config.Source{Kind: tt.kind, Path: "data/raw/sales_data.csv"},
				Storefront: config.Storefront{LookbackDays: 15},
			}

			var src RecordSource
			var err error
			if tt.withStore {
				src, err = New(cfg, defaultMapper(), integrator)
			} else {
				src, err = New(cfg, defaultMapper(), nil)
			}

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, src.Name())
		})
	}
}
