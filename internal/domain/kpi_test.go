package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func group(key string, revenue int64) GroupTotals {
	return GroupTotals{Key: key, Revenue: decimal.NewFromInt(revenue), Units: 1, Orders: 1}
}

func TestRankGroups(t *testing.T) {
	tests := []struct {
		name     string
		groups   []GroupTotals
		n        int
		expected []string
	}{
		{
			name:     "Ordena por receita decrescente",
			groups:   []GroupTotals{group("a", 1), group("b", 3), group("c", 2)},
			n:        10,
			expected: []string{"b", "c", "a"},
		},
		{
			name:     "Empate decidido pela chave crescente",
			groups:   []GroupTotals{group("zeta", 5), group("alfa", 5), group("beta", 5)},
			n:        10,
			expected: []string{"alfa", "beta", "zeta"},
		},
		{
			name:     "Limita ao top N",
			groups:   []GroupTotals{group("a", 1), group("b", 3), group("c", 2)},
			n:        2,
			expected: []string{"b", "c"},
		},
		{
			name:     "N zero devolve todos",
			groups:   []GroupTotals{group("a", 1), group("b", 3)},
			n:        0,
			expected: []string{"b", "a"},
		},
		{
			name:     "Entrada vazia",
			groups:   nil,
			n:        5,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := RankGroups(tt.groups, tt.n)

			assert.NotNil(t, ranked)
			keys := make([]string, 0, len(ranked))
			for i, r := range ranked {
				keys = append(keys, r.Key)
				assert.Equal(t, i+1, r.Position)
			}
			assert.Equal(t, tt.expected, keys)
		})
	}
}

func TestRankGroups_DoesNotMutateInput(t *testing.T) {
	groups := []GroupTotals{group("a", 1), group("b", 3)}

	RankGroups(groups, 1)

	assert.Equal(t, "a", groups[0].Key)
	assert.Equal(t, "b", groups[1].Key)
}

func TestDiscardReport(t *testing.T) {
	report := NewDiscardReport(1)

	report.AddDiscard(RowValidationError{Row: 1, Reason: ReasonMissingID})
	report.AddDiscard(RowValidationError{Row: 2, Reason: ReasonInvalidDate})
	report.AddSubstitution(FieldRegion)

	assert.Equal(t, 2, report.Discarded)
	assert.Equal(t, 1, report.ByReason[ReasonMissingID])
	assert.Equal(t, 1, report.ByReason[ReasonInvalidDate])
	assert.Len(t, report.Errors, 1)
	assert.Equal(t, 1, report.Substitutions[FieldRegion])
}

func TestEmptyKPISet_BreakdownNeverNil(t *testing.T) {
	kpis := EmptyKPISet()

	for _, dim := range Dimensions {
		assert.NotNil(t, kpis.Breakdown(dim), dim)
	}
	assert.Nil(t, kpis.Breakdown("weekday"))
}
