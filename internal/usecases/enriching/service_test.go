package enriching

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

func newRecord(t *testing.T, id string, date time.Time, qty int64, price, discount string) domain.CleanRecord {
	t.Helper()

	r, err := domain.NewCleanRecord(domain.CleanRecordParams{
		TransactionID: id,
		Date:          date,
		CustomerID:    "C1",
		Product:       "P1",
		Category:      "A",
		Region:        "Europe",
		PaymentMethod: "PayPal",
		Quantity:      qty,
		UnitPrice:     decimal.RequireFromString(price),
		Discount:      decimal.RequireFromString(discount),
	})
	require.NoError(t, err)
	return r
}

func TestService_Enrich(t *testing.T) {
	records := []domain.CleanRecord{
		newRecord(t, "1", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), 2, "10", "0"),
		newRecord(t, "2", time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC), 3, "1.10", "0.30"),
		newRecord(t, "3", time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC), 1, "0", "0"),
	}

	enriched, err := NewService().Enrich(records)
	require.NoError(t, err)
	require.Len(t, enriched, 3)

	tests := []struct {
		name       string
		idx        int
		id         string
		revenue    string
		netRevenue string
		period     string
		quarter    string
		weekday    string
	}{
		{name: "Receita bruta simples", idx: 0, id: "1", revenue: "20", netRevenue: "20", period: "2024-02", quarter: "2024-Q1", weekday: "Saturday"},
		{name: "Receita com decimais e desconto", idx: 1, id: "2", revenue: "3.3", netRevenue: "3", period: "2024-11", quarter: "2024-Q4", weekday: "Saturday"},
		{name: "Preço zero gera receita zero", idx: 2, id: "3", revenue: "0", netRevenue: "0", period: "2023-07", quarter: "2023-Q3", weekday: "Saturday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := enriched[tt.idx]
			assert.Equal(t, tt.id, e.TransactionID())
			assert.True(t, e.Revenue().Equal(decimal.RequireFromString(tt.revenue)), "receita: %s", e.Revenue())
			assert.True(t, e.NetRevenue().Equal(decimal.RequireFromString(tt.netRevenue)), "receita líquida: %s", e.NetRevenue())
			assert.Equal(t, tt.period, e.Period())
			assert.Equal(t, tt.quarter, e.Quarter())
			assert.Equal(t, tt.weekday, e.Weekday())
		})
	}
}

func TestService_Enrich_EmptyInput(t *testing.T) {
	enriched, err := NewService().Enrich(nil)

	assert.NoError(t, err)
	assert.NotNil(t, enriched)
	assert.Empty(t, enriched)
}

func TestService_Enrich_InvalidRecordIsInternalError(t *testing.T) {
	valid := newRecord(t, "1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1, "1", "0")

	_, err := NewService().Enrich([]domain.CleanRecord{valid, {}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInternalConsistency))

	var consistencyErr *domain.InternalConsistencyError
	require.True(t, errors.As(err, &consistencyErr))
	assert.Equal(t, "enrich", consistencyErr.Stage)
}
