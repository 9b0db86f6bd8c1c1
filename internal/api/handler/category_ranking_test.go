package handler

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-insights-api/internal/usecases/ranking/mocks"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetCategoryRanking(t *testing.T) {
	response := &domain.CategoryRankingResponse{
		Period: "2024-01",
		Ranking: []domain.CategoryRankingItem{
			{Period: "2024-01", Category: "Books", Revenue: decimal.NewFromInt(30), Orders: 2, Position: 1, PositionChange: 1},
		},
	}

	tests := []struct {
		name           string
		target         string
		mockBehavior   func(m *mocks.MockRankingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Ranking do período",
			target: "/v1/rankings/categories?period=2024-01",
			mockBehavior: func(m *mocks.MockRankingService) {
				m.EXPECT().GetCategoryRanking(gomock.Any(), "2024-01").Return(response, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"category":"Books"`,
		},
		{
			name:   "Sem período usa o último",
			target: "/v1/rankings/categories",
			mockBehavior: func(m *mocks.MockRankingService) {
				m.EXPECT().GetCategoryRanking(gomock.Any(), "").Return(response, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"period":"2024-01"`,
		},
		{
			name:   "Período inválido",
			target: "/v1/rankings/categories?period=01-2024",
			mockBehavior: func(m *mocks.MockRankingService) {
				m.EXPECT().GetCategoryRanking(gomock.Any(), "01-2024").Return(nil,
					ranking.NewRankingError(ranking.ErrInvalidPeriod, apiErrors.ErrInvalidFormat, ""))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   apiErrors.ErrInvalidFormat,
		},
		{
			name:   "Nenhum ranking gravado",
			target: "/v1/rankings/categories",
			mockBehavior: func(m *mocks.MockRankingService) {
				m.EXPECT().GetCategoryRanking(gomock.Any(), "").Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   apiErrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockRankingService(ctrl)
			tt.mockBehavior(service)

			rec := serve(newRequest(http.MethodGet, tt.target, "", ""), viewerClaims, CategoryRanking(service)...)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
