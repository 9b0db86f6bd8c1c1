package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/vfg2006/sales-insights-api/internal/api/handler/router"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-insights-api/pkg/middleware"
)

var (
	adminClaims  = &domain.Claims{UserName: "admin", UserRoleID: authenticating.RoleAdmin}
	viewerClaims = &domain.Claims{UserName: "viewer", UserRoleID: authenticating.RoleViewer}
)

// serve monta um router com as rotas informadas e executa a requisição
func serve(req *http.Request, claims *domain.Claims, routes ...router.Route) *httptest.ResponseRecorder {
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rt := router.New(router.WithRoutes(routes...), router.WithNotFound(NotFound()))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func newRequest(method, target, contentType string, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}
