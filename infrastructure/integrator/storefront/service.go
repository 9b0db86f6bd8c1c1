package storefront

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	storefrontdomain "github.com/vfg2006/sales-insights-api/infrastructure/integrator/storefront/domain"
	"github.com/vfg2006/sales-insights-api/infrastructure/integrator/storefront/storefrontclient"
)

type StorefrontIntegrator interface {
	GetSalesRows(ctx context.Context, params storefrontdomain.GetSalesParams) ([]map[string]any, error)
	CheckConnection(ctx context.Context) (bool, error)
}

type StorefrontService struct {
	Client storefrontclient.Client
}

func New(client storefrontclient.Client) StorefrontIntegrator {
	return &StorefrontService{
		Client: client,
	}
}

// GetSalesRows busca os pedidos do período e devolve uma linha por item vendido
func (s *StorefrontService) GetSalesRows(ctx context.Context, params storefrontdomain.GetSalesParams) ([]map[string]any, error) {
	orders, err := s.Client.GetSales(ctx, storefrontclient.SalesConsultationParams{
		StartDate: params.StartDate.Format(time.DateOnly),
		EndDate:   params.EndDate.Format(time.DateOnly),
	})
	if err != nil {
		return nil, err
	}

	rows := FlattenOrders(orders)

	logrus.WithFields(logrus.Fields{
		"orders": len(orders),
		"rows":   len(rows),
	}).Debug("Pedidos da loja convertidos em linhas")

	return rows, nil
}

func (s *StorefrontService) CheckConnection(ctx context.Context) (bool, error) {
	today := time.Now()
	_, err := s.Client.GetSales(ctx, storefrontclient.SalesConsultationParams{
		StartDate: today.Format(time.DateOnly),
		EndDate:   today.Format(time.DateOnly),
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

// FlattenOrders converte pedidos em linhas chave-valor com os nomes canônicos dos campos
func FlattenOrders(orders []storefrontdomain.Order) []map[string]any {
	rows := make([]map[string]any, 0, len(orders))

	for _, order := range orders {
		if slices.Contains(storefrontdomain.IgnoredStatuses, strings.ToLower(order.Status)) {
			continue
		}

		for i, item := range order.Items {
			rows = append(rows, map[string]any{
				"transaction_id": order.LineID(i),
				"date":           order.Date,
				"customer_id":    order.Customer.ID,
				"product":        item.Product,
				"category":       item.Category,
				"region":         order.Customer.Region,
				"payment_method": order.PaymentMethod,
				"quantity":       item.Quantity.String(),
				"unit_price":     item.UnitPrice.String(),
				"discount":       item.Discount.String(),
				"age_group":      order.Customer.AgeGroup,
			})
		}
	}

	return rows
}
