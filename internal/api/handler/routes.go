package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/luciobotteri/refezionify-web/infrastructure/repository"
	"github.com/luciobotteri/refezionify-web/internal/api/handler/router"
	"github.com/luciobotteri/refezionify-web/internal/usecases/browsing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

// Page serve a página HTML e os dois documentos estáticos sob o base path.
// Com base path diferente de "/", a raiz redireciona para ele.
func Page(basePath string, deps MonthDeps) []router.Route {
	routes := []router.Route{
		{
			Path:    basePath,
			Method:  http.MethodGet,
			Handler: PageHandler(basePath, deps),
		},
		{
			Path:    basePath + deps.MenuFile,
			Method:  http.MethodGet,
			Handler: DocumentHandler(deps.Documents, repository.DocumentMenu),
		},
		{
			Path:    basePath + deps.NutritionFile,
			Method:  http.MethodGet,
			Handler: DocumentHandler(deps.Documents, repository.DocumentNutrition),
		},
	}

	if basePath != "/" && strings.HasPrefix(basePath, "/") {
		routes = append(routes, router.Route{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: http.RedirectHandler(basePath, http.StatusFound),
		})
	}

	return routes
}

func Months(deps MonthDeps) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/months",
			Method:  http.MethodGet,
			Handler: ListMonths(deps),
		},
		{
			Path:    "/v1/months/:month/view",
			Method:  http.MethodGet,
			Handler: GetMonthView(deps),
		},
		{
			Path:    "/v1/months/:month/export",
			Method:  http.MethodGet,
			Handler: ExportMonth(deps),
		},
	}
}

func Weather(deps MonthDeps) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/weather",
			Method:  http.MethodGet,
			Handler: GetWeather(deps.Weather),
		},
	}
}

func Sessions(store browsing.SessionStore, weatherGrace time.Duration) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions",
			Method:  http.MethodPost,
			Handler: CreateSession(store, weatherGrace),
		},
		{
			Path:    "/v1/sessions/:id",
			Method:  http.MethodGet,
			Handler: GetSession(store, weatherGrace),
		},
		{
			Path:    "/v1/sessions/:id/advance/:direction",
			Method:  http.MethodPost,
			Handler: AdvanceSession(store, weatherGrace),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
