package handler

import (
	"net/http"

	"github.com/vfg2006/price-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/price-analytics-api/pkg/log"
)

// GetFilterOptions retorna os valores distintos oferecidos pelos seletores
// do painel (CAI, especificação, mês).
func GetFilterOptions(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		options, err := service.FilterOptions()
		if err != nil {
			logger.WithError(err).Error("filters: failed to list filter options")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"product_ids": len(options.ProductIDs),
			"dimensions":  len(options.Dimensions),
			"months":      len(options.Months),
		}).Info("filters: options listed")

		writeJSON(w, r, options)
	})
}
