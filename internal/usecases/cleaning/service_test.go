package cleaning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

func testConfig() config.Pipeline {
	cfg := config.DefaultPipeline()
	cfg.Categories = []string{"A", "B", "Home & Kitchen"}
	return cfg
}

func validRaw(id string) domain.RawRecord {
	return domain.RawRecord{
		TransactionID: id,
		Date:          "2024-01-15",
		CustomerID:    "C1",
		Product:       "Notebook",
		Category:      "A",
		Region:        "Europe",
		PaymentMethod: "PayPal",
		Quantity:      "2",
		UnitPrice:     "10",
		Discount:      "0",
		AgeGroup:      "26-35",
	}
}

func TestService_Clean_Rules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *domain.RawRecord)
		kept     bool
		reason   domain.DiscardReason
		validate func(t *testing.T, r domain.CleanRecord)
	}{
		{
			name:   "Linha válida é mantida",
			mutate: func(r *domain.RawRecord) {},
			kept:   true,
		},
		{
			name:   "Sem transaction id - descarta",
			mutate: func(r *domain.RawRecord) { r.TransactionID = "   " },
			reason: domain.ReasonMissingID,
		},
		{
			name:   "Data ausente - descarta",
			mutate: func(r *domain.RawRecord) { r.Date = "" },
			reason: domain.ReasonInvalidDate,
		},
		{
			name:   "Data inexistente no calendário - descarta",
			mutate: func(r *domain.RawRecord) { r.Date = "2024-02-30" },
			reason: domain.ReasonInvalidDate,
		},
		{
			name:   "Data em formato alternativo é aceita",
			mutate: func(r *domain.RawRecord) { r.Date = "15/01/2024" },
			kept:   true,
			validate: func(t *testing.T, r domain.CleanRecord) {
				assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), r.Date())
			},
		},
		{
			name:   "Data com horário é truncada para o dia",
			mutate: func(r *domain.RawRecord) { r.Date = "2024-01-15 18:30:00" },
			kept:   true,
			validate: func(t *testing.T, r domain.CleanRecord) {
				assert.Equal(t, "2024-01-15", r.Date().Format(domain.DateLayout))
			},
		},
		{
			name:   "Quantidade zero - descarta",
			mutate: func(r *domain.RawRecord) { r.Quantity = "0" },
			reason: domain.ReasonInvalidQuantity,
		},
		{
			name:   "Quantidade negativa - descarta",
			mutate: func(r *domain.RawRecord) { r.Quantity = "-3" },
			reason: domain.ReasonInvalidQuantity,
		},
		{
			name:   "Quantidade não numérica - descarta",
			mutate: func(r *domain.RawRecord) { r.Quantity = "dois" },
			reason: domain.ReasonInvalidQuantity,
		},
		{
			name:   "Quantidade fracionária - descarta",
			mutate: func(r *domain.RawRecord) { r.Quantity = "1.5" },
			reason: domain.ReasonInvalidQuantity,
		},
		{
			name:   "Quantidade inteira com casa decimal é aceita",
			mutate: func(r *domain.RawRecord) { r.Quantity = "3.0" },
			kept:   true,
			validate: func(t *testing.T, r domain.CleanRecord) {
				assert.Equal(t, int64(3), r.Quantity())
			},
		},
		{
			name:   "Quantidade no limite é aceita",
			mutate: func(r *domain.RawRecord) { r.Quantity = "1000000" },
			kept:   true,
			validate: func(t *testing.T, r domain.CleanRecord) {
				assert.Equal(t, int64(domain.MaxQuantity), r.Quantity())
			},
		},
		{
			name:   "Quantidade acima do limite - descarta",
			mutate: func(r *domain.RawRecord) { r.Quantity = "1000001" },
			reason: domain.ReasonInvalidQuantity,
		},
		{
			name:   "Quantidade no máximo do int64 - descarta",
			mutate: func(r *domain.RawRecord) { r.Quantity = "9223372036854775807" },
			reason: domain.ReasonInvalidQuantity,
		},
		{
			name:   "Preço negativo - descarta",
			mutate: func(r *domain.RawRecord) { r.UnitPrice = "-0.01" },
			reason: domain.ReasonInvalidPrice,
		},
		{
			name:   "Preço não numérico - descarta",
			mutate: func(r *domain.RawRecord) { r.UnitPrice = "abc" },
			reason: domain.ReasonInvalidPrice,
		},
		{
			name:   "Preço zero é mantido",
			mutate: func(r *domain.RawRecord) { r.UnitPrice = "0" },
			kept:   true,
			validate: func(t *testing.T, r domain.CleanRecord) {
				assert.True(t, r.UnitPrice().IsZero())
			},
		},
		{
			name:   "Desconto ausente vira zero",
			mutate: func(r *domain.RawRecord) { r.Discount = "" },
			kept:   true,
			validate: func(t *testing.T, r domain.CleanRecord) {
				assert.True(t, r.Discount().IsZero())
			},
		},
		{
			name:   "Desconto maior que o valor bruto - descarta",
			mutate: func(r *domain.RawRecord) { r.Discount = "20.01" },
			reason: domain.ReasonInvalidDiscount,
		},
		{
			name:   "Desconto negativo - descarta",
			mutate: func(r *domain.RawRecord) { r.Discount = "-1" },
			reason: domain.ReasonInvalidDiscount,
		},
		{
			name: "Texto é normalizado para a grafia canônica",
			mutate: func(r *domain.RawRecord) {
				r.Category = "  home   &  KITCHEN "
				r.Region = "europe"
				r.PaymentMethod = "paypal"
				r.Product = "  Notebook   Pro "
			},
			kept: true,
			validate: func(t *testing.T, r domain.CleanRecord) {
				assert.Equal(t, "Home & Kitchen", r.Category())
				assert.Equal(t, "Europe", r.Region())
				assert.Equal(t, "PayPal", r.PaymentMethod())
				assert.Equal(t, "Notebook Pro", r.Product())
			},
		},
		{
			name:   "Forma de pagamento ausente vira sentinela",
			mutate: func(r *domain.RawRecord) { r.PaymentMethod = "" },
			kept:   true,
			validate: func(t *testing.T, r domain.CleanRecord) {
				assert.Equal(t, "Unknown", r.PaymentMethod())
			},
		},
		{
			name:   "Faixa etária ausente vira sentinela",
			mutate: func(r *domain.RawRecord) { r.AgeGroup = "  " },
			kept:   true,
			validate: func(t *testing.T, r domain.CleanRecord) {
				assert.Equal(t, "Unknown", r.AgeGroup())
			},
		},
		{
			name:   "Faixa etária fora da enumeração vira sentinela",
			mutate: func(r *domain.RawRecord) { r.AgeGroup = "99+" },
			kept:   true,
			validate: func(t *testing.T, r domain.CleanRecord) {
				assert.Equal(t, "Unknown", r.AgeGroup())
			},
		},
		{
			name:   "Faixa etária conhecida é mantida",
			mutate: func(r *domain.RawRecord) { r.AgeGroup = " 56+ " },
			kept:   true,
			validate: func(t *testing.T, r domain.CleanRecord) {
				assert.Equal(t, "56+", r.AgeGroup())
			},
		},
		{
			name:   "Produto tem a caixa padronizada",
			mutate: func(r *domain.RawRecord) { r.Product = "NOTEBOOK gamer" },
			kept:   true,
			validate: func(t *testing.T, r domain.CleanRecord) {
				assert.Equal(t, "Notebook Gamer", r.Product())
			},
		},
		{
			name:   "Produto com o nome do sentinela vira sentinela",
			mutate: func(r *domain.RawRecord) { r.Product = "UNKNOWN" },
			kept:   true,
			validate: func(t *testing.T, r domain.CleanRecord) {
				assert.Equal(t, "Unknown", r.Product())
			},
		},
		{
			name:   "Id de cliente mantém a caixa original",
			mutate: func(r *domain.RawRecord) { r.CustomerID = " cust-001 " },
			kept:   true,
			validate: func(t *testing.T, r domain.CleanRecord) {
				assert.Equal(t, "cust-001", r.CustomerID())
			},
		},
		{
			name:   "Categoria fora da enumeração vira sentinela",
			mutate: func(r *domain.RawRecord) { r.Category = "Gadgets" },
			kept:   true,
			validate: func(t *testing.T, r domain.CleanRecord) {
				assert.Equal(t, "Unknown", r.Category())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw("T1")
			tt.mutate(&raw)

			records, report := NewService(testConfig()).Clean([]domain.RawRecord{raw})

			assert.Equal(t, 1, report.Received)
			if !tt.kept {
				assert.Empty(t, records)
				assert.Equal(t, 1, report.Discarded)
				assert.Equal(t, 1, report.ByReason[tt.reason])
				require.Len(t, report.Errors, 1)
				assert.Equal(t, 1, report.Errors[0].Row)
				assert.Equal(t, tt.reason, report.Errors[0].Reason)
				return
			}

			require.Len(t, records, 1)
			assert.Equal(t, 1, report.Kept)
			assert.NoError(t, records[0].Validate())
			if tt.validate != nil {
				tt.validate(t, records[0])
			}
		})
	}
}

func TestService_Clean_DuplicateKeepsFirstOccurrence(t *testing.T) {
	first := validRaw("1")
	second := validRaw("2")
	second.Quantity, second.UnitPrice, second.Category = "1", "5", "B"
	duplicate := validRaw("1")
	duplicate.Quantity = "3"

	records, report := NewService(testConfig()).Clean([]domain.RawRecord{first, second, duplicate})

	require.Len(t, records, 2)
	assert.Equal(t, "1", records[0].TransactionID())
	assert.Equal(t, int64(2), records[0].Quantity())
	assert.Equal(t, "2", records[1].TransactionID())
	assert.Equal(t, 1, report.ByReason[domain.ReasonDuplicateID])
	assert.Equal(t, 3, report.Errors[0].Row)
}

func TestService_Clean_DuplicateAfterInvalidFirstRow(t *testing.T) {
	invalid := validRaw("1")
	invalid.UnitPrice = "-5"
	valid := validRaw("1")

	records, report := NewService(testConfig()).Clean([]domain.RawRecord{invalid, valid})

	require.Len(t, records, 1)
	assert.Equal(t, 1, report.ByReason[domain.ReasonInvalidPrice])
	assert.Zero(t, report.ByReason[domain.ReasonDuplicateID])
}

func TestService_Clean_SubstitutionsAreCounted(t *testing.T) {
	raw := validRaw("1")
	raw.Category = ""
	raw.Region = "Atlantis"
	raw.CustomerID = " "
	unknown := validRaw("2")
	unknown.Category = "unknown"

	_, report := NewService(testConfig()).Clean([]domain.RawRecord{raw, unknown})

	assert.Equal(t, 1, report.Substitutions[domain.FieldCategory])
	assert.Equal(t, 1, report.Substitutions[domain.FieldRegion])
	assert.Equal(t, 1, report.Substitutions[domain.FieldCustomerID])
	assert.Zero(t, report.Substitutions[domain.FieldPaymentMethod])
	assert.Zero(t, report.Substitutions[domain.FieldAgeGroup])
}

func TestService_Clean_MissingAgeGroupColumnIsCounted(t *testing.T) {
	first := validRaw("1")
	first.AgeGroup = ""
	second := validRaw("2")
	second.AgeGroup = ""

	records, report := NewService(testConfig()).Clean([]domain.RawRecord{first, second})

	require.Len(t, records, 2)
	assert.Equal(t, "Unknown", records[0].AgeGroup())
	assert.Equal(t, 2, report.Substitutions[domain.FieldAgeGroup])
}

func TestService_Clean_DiscardedRowsDoNotCountSubstitutions(t *testing.T) {
	raw := validRaw("1")
	raw.Category = ""
	raw.Quantity = "0"

	_, report := NewService(testConfig()).Clean([]domain.RawRecord{raw})

	assert.Empty(t, report.Substitutions)
	assert.Equal(t, 1, report.Discarded)
}

func TestService_Clean_OpenEnumeration(t *testing.T) {
	cfg := testConfig()
	cfg.Regions = nil
	raw := validRaw("1")
	raw.Region = "  Lua  Cheia "

	records, report := NewService(cfg).Clean([]domain.RawRecord{raw})

	require.Len(t, records, 1)
	assert.Equal(t, "Lua Cheia", records[0].Region())
	assert.Empty(t, report.Substitutions)
}

func TestService_Clean_OpenEnumerationFoldsCase(t *testing.T) {
	cfg := testConfig()
	cfg.Categories = nil
	rows := make([]domain.RawRecord, 0)
	for i, category := range []string{"electronics", "ELECTRONICS", "  Electronics ", "eLeCtRoNiCs", "unknown"} {
		r := validRaw(string(rune('a' + i)))
		r.Category = category
		rows = append(rows, r)
	}

	records, report := NewService(cfg).Clean(rows)

	require.Len(t, records, 5)
	categories := make(map[string]int)
	for _, r := range records {
		categories[r.Category()]++
	}
	assert.Equal(t, map[string]int{"Electronics": 4, "Unknown": 1}, categories)
	assert.Empty(t, report.Substitutions)
}

func TestService_Clean_ProductCaseVariantsAreOneProduct(t *testing.T) {
	rows := []domain.RawRecord{validRaw("1"), validRaw("2"), validRaw("3")}
	rows[0].Product = "Laptop"
	rows[1].Product = "laptop"
	rows[2].Product = "LAPTOP "

	records, _ := NewService(testConfig()).Clean(rows)

	require.Len(t, records, 3)
	for _, r := range records {
		assert.Equal(t, "Laptop", r.Product())
	}
}

func TestService_Clean_PaddedUnknownLabel(t *testing.T) {
	cfg := testConfig()
	cfg.UnknownLabel = "  Unknown "
	raw := validRaw("1")
	raw.Category = ""

	records, _ := NewService(cfg).Clean([]domain.RawRecord{raw})

	require.Len(t, records, 1)
	assert.Equal(t, "Unknown", records[0].Category())
}

func TestService_Clean_Idempotent(t *testing.T) {
	rows := []domain.RawRecord{
		validRaw("1"),
		{TransactionID: " 2 ", Date: "2024-03-01T10:00:00Z", Category: "b", Quantity: "4", UnitPrice: "2.50", Discount: "1.25"},
		{TransactionID: "3", Date: "01/02/2024", Category: "xyz", Region: "ASIA", Product: "mesa DE jantar", Quantity: "1", UnitPrice: "0", AgeGroup: "18-25"},
		{TransactionID: "4", Date: "bad", Quantity: "1", UnitPrice: "1"},
		validRaw("1"),
	}
	svc := NewService(testConfig())

	first, _ := svc.Clean(rows)

	again := make([]domain.RawRecord, 0, len(first))
	for _, r := range first {
		again = append(again, r.Raw())
	}
	second, report := svc.Clean(again)

	require.Len(t, second, len(first))
	assert.Zero(t, report.Discarded)
	assert.Empty(t, report.Substitutions)
	for i := range first {
		assert.True(t, first[i].Equal(second[i]), "registro %d mudou na segunda limpeza", i)
	}
}

func TestService_Clean_EveryRecordSatisfiesConstraints(t *testing.T) {
	rows := []domain.RawRecord{
		{},
		{TransactionID: "x"},
		{TransactionID: "y", Date: "2024-01-01", Quantity: "1e2", UnitPrice: "1"},
		{TransactionID: "z", Date: "2024-01-01", Quantity: "99999999999999999999999", UnitPrice: "1"},
		{TransactionID: "w", Date: "2024-01-01", Quantity: "1", UnitPrice: "1", Discount: "1"},
		{TransactionID: "v", Date: "2024-13-01", Quantity: "1", UnitPrice: "1"},
	}

	records, report := NewService(testConfig()).Clean(rows)

	for _, r := range records {
		assert.NoError(t, r.Validate())
		assert.GreaterOrEqual(t, r.Quantity(), int64(1))
		assert.False(t, r.UnitPrice().IsNegative())
		assert.NotEmpty(t, r.Category())
	}
	assert.Equal(t, len(rows), report.Kept+report.Discarded)
	assert.Equal(t, 2, report.Kept)
}

func TestService_Clean_ErrorSamplesAreCapped(t *testing.T) {
	cfg := testConfig()
	cfg.MaxReportedErrors = 2
	rows := []domain.RawRecord{{}, {}, {}, {}}

	_, report := NewService(cfg).Clean(rows)

	assert.Equal(t, 4, report.Discarded)
	assert.Equal(t, 4, report.ByReason[domain.ReasonMissingID])
	assert.Len(t, report.Errors, 2)
}
