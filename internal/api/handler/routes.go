package handler

import (
	"net/http"

	"github.com/vfg2006/sales-insights-api/internal/api/handler/router"
	"github.com/vfg2006/sales-insights-api/internal/metrics"
	"github.com/vfg2006/sales-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-insights-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Pipeline(service insighting.Insighter, upload PipelineUpload) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/pipeline/run",
			Method:      http.MethodPost,
			Handler:     RunPipeline(service, upload),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func KPIs(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/kpis/:runId",
			Method:      http.MethodGet,
			Handler:     GetKPIs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CategoryRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/rankings/categories",
			Method:      http.MethodGet,
			Handler:     GetCategoryRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Metrics(m *metrics.PipelineMetrics) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: m.Handler(),
		},
	}
}
