package storefrontclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	storefrontdomain "github.com/vfg2006/sales-insights-api/infrastructure/integrator/storefront/domain"
)

type SalesConsultationParams struct {
	StartDate string
	EndDate   string
}

type SalesConsultationResponse []storefrontdomain.Order

func (c *StorefrontClient) GetSales(ctx context.Context, params SalesConsultationParams) (SalesConsultationResponse, error) {
	var response SalesConsultationResponse

	ctx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/orders")

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("start_date", params.StartDate)
	query.Set("end_date", params.EndDate)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return response, fmt.Errorf("requisição falhou com status: %s: %s", resp.Status, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
