package handler

import (
	"net/http"

	"github.com/vfg2006/price-analytics-api/infrastructure/datasource"
	"github.com/vfg2006/price-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/price-analytics-api/internal/usecases/analyzing"
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

// Analytics retorna as rotas de consulta do painel. Toda rota aceita os
// parâmetros product_id, dimension e month (ausente ou "all" = sem
// restrição).
func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/records",
			Method:  http.MethodGet,
			Handler: GetRecords(service),
		},
		{
			Path:    "/v1/stats/dimensions",
			Method:  http.MethodGet,
			Handler: GetDimensionStats(service),
		},
		{
			Path:    "/v1/stats/products",
			Method:  http.MethodGet,
			Handler: GetProductStats(service),
		},
		{
			Path:    "/v1/trend",
			Method:  http.MethodGet,
			Handler: GetTrend(service),
		},
		{
			Path:    "/v1/filters",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
	}
}

// Dataset retorna as rotas de gerenciamento do cache de origem.
func Dataset(loader datasource.Loader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset/status",
			Method:  http.MethodGet,
			Handler: GetDatasetStatus(loader),
		},
		{
			Path:    "/v1/dataset/reload",
			Method:  http.MethodPost,
			Handler: ReloadDataset(loader),
		},
	}
}
