package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/price-analytics-api/infrastructure/datasource"
	"github.com/vfg2006/price-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/price-analytics-api/pkg/log"
)

// GetDatasetStatus retorna o estado do cache: geração, horário da carga,
// contagens de linhas e os contadores de qualidade de dados.
func GetDatasetStatus(loader datasource.Loader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status, err := loader.Status()
		if err != nil {
			writeLoadError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"generation": status.Generation,
			"price_rows": status.PriceRows,
			"sales_rows": status.SalesRows,
		}).Info("dataset: status retrieved")

		writeJSON(w, r, status)
	})
}

// ReloadDataset invalida o cache e recarrega as origens imediatamente.
func ReloadDataset(loader datasource.Loader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dataset: manual reload requested")

		dataset, err := loader.Reload()
		if err != nil {
			logger.WithError(err).Error("dataset: reload failed")
			writeLoadError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"generation": dataset.Generation,
			"price_rows": len(dataset.Price),
			"sales_rows": len(dataset.Sales),
		}).Info("dataset: reloaded")

		writeJSON(w, r, dataset.Status())
	})
}

// writeLoadError traduz falhas de carga para a resposta padronizada,
// anexando o diagnóstico estruturado quando disponível.
func writeLoadError(w http.ResponseWriter, r *http.Request, err error) {
	var loadErr *datasource.LoadError
	if errors.As(err, &loadErr) {
		apiErrors.WriteError(w, apiErrors.ErrDataLoad, loadErr.Error(), map[string]any{
			"source":        loadErr.Source,
			"path":          loadErr.Path,
			"known_columns": loadErr.KnownColumns,
		})
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}
