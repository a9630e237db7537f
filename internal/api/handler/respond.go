package handler

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/price-analytics-api/internal/domain"
	"github.com/vfg2006/price-analytics-api/pkg/log"
	"github.com/vfg2006/price-analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa a resposta e loga falhas de codificação.
func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao codificar resposta")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// parseSelection monta a seleção trivalorada a partir dos parâmetros de
// consulta. Ausência ou "all" desliga o eixo; um mês definido precisa ser
// normalizável para a chave canônica YYYYMM.
func parseSelection(r *http.Request) (domain.FilterSelection, error) {
	selection := domain.FilterSelection{
		ProductID: r.URL.Query().Get("product_id"),
		Dimension: r.URL.Query().Get("dimension"),
		Month:     r.URL.Query().Get("month"),
	}

	if selection.HasMonth() {
		month, ok := utils.NormalizeMonth(selection.Month)
		if !ok {
			return selection, fmt.Errorf("mês inválido: %q", selection.Month)
		}
		selection.Month = month
	}

	return selection, nil
}
