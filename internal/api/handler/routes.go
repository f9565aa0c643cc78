package handler

import (
	"net/http"

	"github.com/vfg2006/sales-plan-sync/infrastructure/repository"
	"github.com/vfg2006/sales-plan-sync/internal/api/handler/router"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/authenticating"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/synchronizing"
	"github.com/vfg2006/sales-plan-sync/pkg/middleware"
)

func Healthcheck(checks ...HealthCheck) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checks...),
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

func Sync(service synchronizing.Synchronizer, runs repository.SyncRunRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/period",
			Method:      http.MethodPost,
			Handler:     SyncPeriod(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sync/runs",
			Method:      http.MethodGet,
			Handler:     ListSyncRuns(runs),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Reports(service synchronizing.Synchronizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/day",
			Method:      http.MethodGet,
			Handler:     GetDayReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/reports/range",
			Method:      http.MethodGet,
			Handler:     GetRangeReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/reports/efficiency",
			Method:      http.MethodGet,
			Handler:     GetEfficiencyReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/reports/period/export",
			Method:      http.MethodGet,
			Handler:     ExportPeriodReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func RetailStores(service synchronizing.Synchronizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/retail-stores",
			Method:      http.MethodGet,
			Handler:     ListRetailStores(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(job CronJob) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(job),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(job),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
