package handler

import (
	"net/http"

	"github.com/vfg2006/price-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/price-analytics-api/pkg/log"
)

// GetDimensionStats retorna as estatísticas de preço por especificação.
func GetDimensionStats(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, err := parseSelection(r)
		if err != nil {
			logger.WithError(err).Warn("stats: invalid filter selection")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		stats, err := service.DimensionStats(selection)
		if err != nil {
			logger.WithError(err).Error("stats: failed to aggregate by dimension")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, r, stats)
	})
}

// GetProductStats retorna as estatísticas de preço por (CAI, descrição),
// incluindo o preço mais recente.
func GetProductStats(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, err := parseSelection(r)
		if err != nil {
			logger.WithError(err).Warn("stats: invalid filter selection")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		stats, err := service.ProductStats(selection)
		if err != nil {
			logger.WithError(err).Error("stats: failed to aggregate by product")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, r, stats)
	})
}
