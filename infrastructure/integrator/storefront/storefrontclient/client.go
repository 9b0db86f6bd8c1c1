package storefrontclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-insights-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetSales(ctx context.Context, params SalesConsultationParams) (SalesConsultationResponse, error)
}

type StorefrontClient struct {
	httpClient *http.Client
	config     config.Storefront
}

// NewClient cria uma nova instância do cliente da API de pedidos
func NewClient(cfg config.Storefront) Client {
	return &StorefrontClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
