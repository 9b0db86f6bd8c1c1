package aggregating

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Intervalo de linhas entre verificações de cancelamento do contexto
const cancelCheckInterval = 1024

var hundred = decimal.NewFromInt(100)

// Aggregator calcula o conjunto fixo de KPIs a partir dos registros enriquecidos
type Aggregator interface {
	Aggregate(ctx context.Context, records []domain.EnrichedRecord) (*domain.KPISet, error)
}

type Service struct {
	cfg     config.Pipeline
	unknown string
}

func NewService(cfg config.Pipeline) Aggregator {
	return &Service{cfg: cfg, unknown: config.NormalizeLabel(cfg.UnknownLabel)}
}

type keyFunc func(r domain.EnrichedRecord) string

type dimension struct {
	name string
	key  keyFunc
}

var dimensions = []dimension{
	{name: domain.DimensionCategory, key: domain.EnrichedRecord.Category},
	{name: domain.DimensionRegion, key: domain.EnrichedRecord.Region},
	{name: domain.DimensionPaymentMethod, key: domain.EnrichedRecord.PaymentMethod},
	{name: domain.DimensionPeriod, key: domain.EnrichedRecord.Period},
	{name: domain.DimensionQuarter, key: domain.EnrichedRecord.Quarter},
	{name: domain.DimensionYear, key: domain.EnrichedRecord.YearLabel},
	{name: domain.DimensionAgeGroup, key: domain.EnrichedRecord.AgeGroup},
	{name: domain.DimensionProduct, key: domain.EnrichedRecord.Product},
}

// Aggregate não depende da ordem da entrada. Entrada vazia gera um KPISet zerado.
func (s *Service) Aggregate(ctx context.Context, records []domain.EnrichedRecord) (*domain.KPISet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kpis := domain.EmptyKPISet()
	if len(records) == 0 {
		return kpis, nil
	}

	if err := s.totals(ctx, records, kpis); err != nil {
		return nil, err
	}

	grp := grouping{
		unknown:      s.unknown,
		totalRevenue: kpis.TotalRevenue,
		totalOrders:  kpis.TotalOrders,
	}

	// Cada dimensão é reduzida em uma goroutine própria, sem estado compartilhado
	breakdowns := make(map[string][]domain.GroupTotals, len(dimensions))
	results := make([][]domain.GroupTotals, len(dimensions))
	g, gctx := errgroup.WithContext(ctx)
	for i, d := range dimensions {
		g.Go(func() error {
			groups, err := grp.by(gctx, records, d.key)
			if err != nil {
				return err
			}
			results[i] = groups
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for i, d := range dimensions {
		breakdowns[d.name] = results[i]
	}

	kpis.ByCategory = breakdowns[domain.DimensionCategory]
	kpis.ByRegion = breakdowns[domain.DimensionRegion]
	kpis.ByPaymentMethod = breakdowns[domain.DimensionPaymentMethod]
	kpis.ByPeriod = breakdowns[domain.DimensionPeriod]
	kpis.ByQuarter = breakdowns[domain.DimensionQuarter]
	kpis.ByYear = breakdowns[domain.DimensionYear]
	kpis.ByAgeGroup = breakdowns[domain.DimensionAgeGroup]

	kpis.TopCategories = domain.RankGroups(kpis.ByCategory, s.cfg.TopN)
	kpis.TopProducts = domain.RankGroups(breakdowns[domain.DimensionProduct], s.cfg.TopN)

	return kpis, nil
}

func (s *Service) totals(ctx context.Context, records []domain.EnrichedRecord, kpis *domain.KPISet) error {
	orders := make(map[string]struct{}, len(records))
	customers := make(map[string]struct{})
	products := make(map[string]struct{})
	categories := make(map[string]struct{})

	revenue, net, discount := decimal.Zero, decimal.Zero, decimal.Zero
	var units int64

	for i, r := range records {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		revenue = revenue.Add(r.Revenue())
		net = net.Add(r.NetRevenue())
		discount = discount.Add(r.Discount())
		units += r.Quantity()

		orders[r.TransactionID()] = struct{}{}
		s.addKnown(customers, r.CustomerID())
		s.addKnown(products, r.Product())
		s.addKnown(categories, r.Category())
	}

	kpis.TotalRevenue = revenue
	kpis.TotalNetRevenue = net
	kpis.TotalDiscount = discount
	kpis.TotalUnits = units
	kpis.TotalOrders = len(orders)
	kpis.UniqueCustomers = len(customers)
	kpis.UniqueProducts = len(products)
	kpis.UniqueCategories = len(categories)

	if !revenue.IsZero() {
		kpis.DiscountRate = discount.Div(revenue).Mul(hundred).Round(2)
	}

	if kpis.TotalOrders > 0 {
		totalOrders := decimal.NewFromInt(int64(kpis.TotalOrders))
		kpis.AverageOrderValue = revenue.Div(totalOrders).Round(2)
		kpis.AverageUnitsPerOrder = decimal.NewFromInt(units).Div(totalOrders).Round(2)
	}

	return nil
}

// addKnown ignora o sentinela nas contagens de valores distintos
func (s *Service) addKnown(set map[string]struct{}, value string) {
	addKnown(set, value, s.unknown)
}

func addKnown(set map[string]struct{}, value, unknown string) {
	if value == unknown {
		return
	}
	set[value] = struct{}{}
}

// grouping guarda os totais gerais usados nos percentuais de cada grupo
type grouping struct {
	unknown      string
	totalRevenue decimal.Decimal
	totalOrders  int
}

type accumulator struct {
	revenue   decimal.Decimal
	units     int64
	orders    map[string]struct{}
	customers map[string]struct{}
}

func (gr grouping) by(ctx context.Context, records []domain.EnrichedRecord, key keyFunc) ([]domain.GroupTotals, error) {
	acc := make(map[string]*accumulator)

	for i, r := range records {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		k := key(r)
		a, ok := acc[k]
		if !ok {
			a = &accumulator{
				revenue:   decimal.Zero,
				orders:    make(map[string]struct{}),
				customers: make(map[string]struct{}),
			}
			acc[k] = a
		}
		a.revenue = a.revenue.Add(r.Revenue())
		a.units += r.Quantity()
		a.orders[r.TransactionID()] = struct{}{}
		addKnown(a.customers, r.CustomerID(), gr.unknown)
	}

	groups := make([]domain.GroupTotals, 0, len(acc))
	for k, a := range acc {
		orders := len(a.orders)

		revenueShare := decimal.Zero
		if !gr.totalRevenue.IsZero() {
			revenueShare = a.revenue.Div(gr.totalRevenue).Mul(hundred).Round(2)
		}

		orderShare := decimal.Zero
		if gr.totalOrders > 0 {
			orderShare = decimal.NewFromInt(int64(orders)).Div(decimal.NewFromInt(int64(gr.totalOrders))).Mul(hundred).Round(2)
		}

		// Todo grupo tem ao menos um pedido
		aov := a.revenue.Div(decimal.NewFromInt(int64(orders))).Round(2)

		groups = append(groups, domain.GroupTotals{
			Key:               k,
			Revenue:           a.revenue,
			Units:             a.units,
			Orders:            orders,
			Customers:         len(a.customers),
			AverageOrderValue: aov,
			RevenueShare:      revenueShare,
			OrderShare:        orderShare,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})

	return groups, nil
}

// PeriodCategoryTotals agrupa por categoria apenas os registros de um período (yyyy-mm).
// Os percentuais são relativos ao próprio período e Customers não exclui o sentinela.
func PeriodCategoryTotals(records []domain.EnrichedRecord, period string) []domain.GroupTotals {
	filtered := make([]domain.EnrichedRecord, 0)
	grp := grouping{totalRevenue: decimal.Zero}
	orders := make(map[string]struct{})
	for _, r := range records {
		if r.Period() == period {
			filtered = append(filtered, r)
			grp.totalRevenue = grp.totalRevenue.Add(r.Revenue())
			orders[r.TransactionID()] = struct{}{}
		}
	}
	grp.totalOrders = len(orders)

	groups, _ := grp.by(context.Background(), filtered, domain.EnrichedRecord.Category)
	return groups
}

// LatestPeriod retorna o período mais recente presente nos registros
func LatestPeriod(records []domain.EnrichedRecord) string {
	latest := ""
	for _, r := range records {
		if r.Period() > latest {
			latest = r.Period()
		}
	}
	return latest
}
