package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-insights-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestKPIs(t *testing.T) {
	snapshot := &domain.KPISnapshot{RunID: "abc123", Source: "csv:sales.csv", KPIs: domain.EmptyKPISet()}

	tests := []struct {
		name           string
		target         string
		claims         *domain.Claims
		mockBehavior   func(m *mocks.MockInsighter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Última execução",
			target: "/v1/kpis/latest",
			claims: viewerClaims,
			mockBehavior: func(m *mocks.MockInsighter) {
				m.EXPECT().GetLatestSnapshot(gomock.Any()).Return(snapshot, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"run_id":"abc123"`,
		},
		{
			name:   "Nenhuma execução registrada",
			target: "/v1/kpis/latest",
			claims: viewerClaims,
			mockBehavior: func(m *mocks.MockInsighter) {
				m.EXPECT().GetLatestSnapshot(gomock.Any()).Return(nil,
					insighting.NewPipelineError(insighting.ErrSnapshotNotFound, apiErrors.ErrNotFound, "", ""))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   apiErrors.ErrNotFound,
		},
		{
			name:   "Execução por id",
			target: "/v1/kpis/abc123",
			claims: adminClaims,
			mockBehavior: func(m *mocks.MockInsighter) {
				m.EXPECT().GetSnapshot(gomock.Any(), "abc123").Return(snapshot, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"source":"csv:sales.csv"`,
		},
		{
			name:   "Erro de banco",
			target: "/v1/kpis/xyz",
			claims: adminClaims,
			mockBehavior: func(m *mocks.MockInsighter) {
				m.EXPECT().GetSnapshot(gomock.Any(), "xyz").Return(nil,
					insighting.NewPipelineError(assert.AnError, apiErrors.ErrDatabaseOperation, "xyz", ""))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   apiErrors.ErrDatabaseOperation,
		},
		{
			name:           "Sem autenticação",
			target:         "/v1/kpis/latest",
			mockBehavior:   func(m *mocks.MockInsighter) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockInsighter(ctrl)
			tt.mockBehavior(service)

			rec := serve(newRequest(http.MethodGet, tt.target, "", ""), tt.claims, KPIs(service)...)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestNotFound(t *testing.T) {
	rec := serve(newRequest(http.MethodGet, "/v1/nada", "", ""), nil, Healthcheck()...)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrNotFound)
}
