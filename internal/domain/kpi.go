package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Dimensões usadas nos agrupamentos
const (
	DimensionCategory      = "category"
	DimensionRegion        = "region"
	DimensionPaymentMethod = "payment_method"
	DimensionPeriod        = "period"
	DimensionQuarter       = "quarter"
	DimensionYear          = "year"
	DimensionAgeGroup      = "age_group"
	DimensionProduct       = "product"
)

// Dimensions lista as dimensões publicadas no KPISet
var Dimensions = []string{
	DimensionCategory,
	DimensionRegion,
	DimensionPaymentMethod,
	DimensionPeriod,
	DimensionQuarter,
	DimensionYear,
	DimensionAgeGroup,
}

// GroupTotals são os subtotais de uma chave dentro de um agrupamento
type GroupTotals struct {
	Key               string          `json:"key"`
	Revenue           decimal.Decimal `json:"revenue"`
	Units             int64           `json:"units"`
	Orders            int             `json:"orders"`
	Customers         int             `json:"customers"` // Clientes distintos, sem o sentinela
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	RevenueShare      decimal.Decimal `json:"revenue_share"` // Percentual da receita total
	OrderShare        decimal.Decimal `json:"order_share"`   // Percentual dos pedidos
}

// RankedGroup é uma posição no ranking top-N
type RankedGroup struct {
	Position int             `json:"position"`
	Key      string          `json:"key"`
	Revenue  decimal.Decimal `json:"revenue"`
	Units    int64           `json:"units"`
	Orders   int             `json:"orders"`
}

// KPISet é o resumo agregado de uma execução do pipeline. Nunca é alterado depois de construído.
type KPISet struct {
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	TotalNetRevenue      decimal.Decimal `json:"total_net_revenue"`
	TotalDiscount        decimal.Decimal `json:"total_discount"`
	DiscountRate         decimal.Decimal `json:"discount_rate"`
	TotalOrders          int             `json:"total_orders"`
	TotalUnits           int64           `json:"total_units"`
	AverageOrderValue    decimal.Decimal `json:"average_order_value"`
	AverageUnitsPerOrder decimal.Decimal `json:"average_units_per_order"`
	UniqueCustomers      int             `json:"unique_customers"`
	UniqueProducts       int             `json:"unique_products"`
	UniqueCategories     int             `json:"unique_categories"`

	ByCategory      []GroupTotals `json:"by_category"`
	ByRegion        []GroupTotals `json:"by_region"`
	ByPaymentMethod []GroupTotals `json:"by_payment_method"`
	ByPeriod        []GroupTotals `json:"by_period"`
	ByQuarter       []GroupTotals `json:"by_quarter"`
	ByYear          []GroupTotals `json:"by_year"`
	ByAgeGroup      []GroupTotals `json:"by_age_group"`

	TopCategories []RankedGroup `json:"top_categories"`
	TopProducts   []RankedGroup `json:"top_products"`
}

// EmptyKPISet retorna um KPISet com totais zerados e agrupamentos vazios (nunca nil)
func EmptyKPISet() *KPISet {
	return &KPISet{
		TotalRevenue:         decimal.Zero,
		TotalNetRevenue:      decimal.Zero,
		TotalDiscount:        decimal.Zero,
		DiscountRate:         decimal.Zero,
		AverageOrderValue:    decimal.Zero,
		AverageUnitsPerOrder: decimal.Zero,
		ByCategory:           []GroupTotals{},
		ByRegion:             []GroupTotals{},
		ByPaymentMethod:      []GroupTotals{},
		ByPeriod:             []GroupTotals{},
		ByQuarter:            []GroupTotals{},
		ByYear:               []GroupTotals{},
		ByAgeGroup:           []GroupTotals{},
		TopCategories:        []RankedGroup{},
		TopProducts:          []RankedGroup{},
	}
}

// Breakdown retorna o agrupamento de uma dimensão
func (k *KPISet) Breakdown(dimension string) []GroupTotals {
	switch dimension {
	case DimensionCategory:
		return k.ByCategory
	case DimensionRegion:
		return k.ByRegion
	case DimensionPaymentMethod:
		return k.ByPaymentMethod
	case DimensionPeriod:
		return k.ByPeriod
	case DimensionQuarter:
		return k.ByQuarter
	case DimensionYear:
		return k.ByYear
	case DimensionAgeGroup:
		return k.ByAgeGroup
	}
	return nil
}

// RankGroups ordena por receita decrescente, desempatando pela chave crescente,
// e devolve no máximo n posições. n <= 0 devolve todas.
func RankGroups(groups []GroupTotals, n int) []RankedGroup {
	sorted := make([]GroupTotals, len(groups))
	copy(sorted, groups)

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := sorted[i].Revenue.Cmp(sorted[j].Revenue)
		if cmp != 0 {
			return cmp > 0
		}
		return sorted[i].Key < sorted[j].Key
	})

	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}

	ranked := make([]RankedGroup, 0, len(sorted))
	for i, g := range sorted {
		ranked = append(ranked, RankedGroup{
			Position: i + 1,
			Key:      g.Key,
			Revenue:  g.Revenue,
			Units:    g.Units,
			Orders:   g.Orders,
		})
	}

	return ranked
}
