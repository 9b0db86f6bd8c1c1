package source

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// Nomes canônicos dos campos do RawRecord, iguais às tags mapstructure
var rawFields = []string{
	"transaction_id", "date", "customer_id", "product", "category",
	"region", "payment_method", "quantity", "unit_price", "discount",
	"age_group",
}

// Mapper converte uma linha chave-valor em RawRecord usando o mapeamento de colunas
type Mapper struct {
	columns map[string]string
}

func NewMapper(cols config.Columns) *Mapper {
	m := &Mapper{columns: make(map[string]string, len(rawFields)*2)}

	// Os nomes canônicos sempre são aceitos
	for _, f := range rawFields {
		m.columns[f] = f
	}

	configured := map[string]string{
		cols.TransactionID: "transaction_id",
		cols.Date:          "date",
		cols.CustomerID:    "customer_id",
		cols.Product:       "product",
		cols.Category:      "category",
		cols.Region:        "region",
		cols.PaymentMethod: "payment_method",
		cols.Quantity:      "quantity",
		cols.UnitPrice:     "unit_price",
		cols.Discount:      "discount",
		cols.AgeGroup:      "age_group",
	}
	for column, field := range configured {
		if column = normalizeColumn(column); column != "" {
			m.columns[column] = field
		}
	}

	return m
}

// Map decodifica uma linha. Colunas desconhecidas são ignoradas.
func (m *Mapper) Map(row map[string]any) (domain.RawRecord, error) {
	input := make(map[string]any, len(rawFields))
	for column, value := range row {
		field, ok := m.columns[normalizeColumn(column)]
		if !ok {
			continue
		}
		input[field] = stringify(value)
	}

	var raw domain.RawRecord
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &raw,
	})
	if err != nil {
		return domain.RawRecord{}, err
	}

	if err := decoder.Decode(input); err != nil {
		return domain.RawRecord{}, fmt.Errorf("erro ao converter linha: %w", err)
	}

	return raw, nil
}

// MapHeader converte uma linha posicional usando o cabeçalho
func (m *Mapper) MapHeader(header, values []string) (domain.RawRecord, error) {
	row := make(map[string]any, len(header))
	for i, column := range header {
		if i < len(values) {
			row[column] = values[i]
		}
	}
	return m.Map(row)
}

func normalizeColumn(column string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(column, "\ufeff")))
}

// stringify trata os tipos que a decodificação fraca não converte para string
func stringify(value any) any {
	switch v := value.(type) {
	case nil, string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
