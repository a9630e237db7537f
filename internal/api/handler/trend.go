package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/price-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/price-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/price-analytics-api/pkg/log"
)

// GetTrend retorna a série mensal completa (quantidade somada + preço
// médio) e o resumo da seleção para o gráfico de eixo duplo.
func GetTrend(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, err := parseSelection(r)
		if err != nil {
			logger.WithError(err).Warn("trend: invalid filter selection")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		series, err := service.Trend(selection)
		if err != nil {
			logger.WithError(err).Error("trend: failed to build trend series")
			writeChartError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"points":     len(series.Points),
			"product_id": selection.ProductID,
		}).Info("trend: series built")

		writeJSON(w, r, series)
	})
}

// writeChartError traduz falhas de construção do gráfico para a resposta
// padronizada, anexando os tamanhos dos agregados quando disponíveis.
func writeChartError(w http.ResponseWriter, err error) {
	var chartErr *analyzing.ChartError
	if errors.As(err, &chartErr) {
		apiErrors.WriteError(w, apiErrors.ErrChartBuild, chartErr.Error(), map[string]any{
			"price_rows": chartErr.PriceRows,
			"sales_rows": chartErr.SalesRows,
			"months":     chartErr.Months,
		})
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}
