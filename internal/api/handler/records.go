package handler

import (
	"net/http"

	"github.com/vfg2006/price-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/price-analytics-api/pkg/log"
)

// GetRecords retorna a tabela principal do painel: preços filtrados com o
// embarque correspondente, ordenados por mês descendente.
func GetRecords(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, err := parseSelection(r)
		if err != nil {
			logger.WithError(err).Warn("records: invalid filter selection")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		records, err := service.Records(selection)
		if err != nil {
			logger.WithError(err).Error("records: failed to build merged record table")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"rows":       len(records),
			"product_id": selection.ProductID,
			"dimension":  selection.Dimension,
			"month":      selection.Month,
		}).Info("records: merged record table built")

		writeJSON(w, r, records)
	})
}
