package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-insights-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockBehavior   func(m *mocks.MockAuthenticator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Login com sucesso",
			body: `{"username":"admin","password":"secret"}`,
			mockBehavior: func(m *mocks.MockAuthenticator) {
				m.EXPECT().LoginUser("admin", "secret").Return("jwt-token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"jwt-token"`,
		},
		{
			name:           "Corpo inválido",
			body:           `{`,
			mockBehavior:   func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   apiErrors.ErrInvalidRequest,
		},
		{
			name:           "Senha ausente",
			body:           `{"username":"admin"}`,
			mockBehavior:   func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   apiErrors.ErrMissingRequiredData,
		},
		{
			name: "Credenciais inválidas",
			body: `{"username":"admin","password":"errada"}`,
			mockBehavior: func(m *mocks.MockAuthenticator) {
				m.EXPECT().LoginUser("admin", "errada").Return("",
					authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "admin", ""))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   apiErrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auth := mocks.NewMockAuthenticator(ctrl)
			tt.mockBehavior(auth)

			rec := serve(newRequest(http.MethodPost, "/v1/login", ContentTypeJSON, tt.body), nil, Authentication(auth)...)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
