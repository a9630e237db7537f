package analyzing

import (
	"github.com/vfg2006/price-analytics-api/internal/domain"
)

// ApplyFilters restringe as duas tabelas à seleção trivalorada. Função pura:
// eixos não definidos (ou com o sentinela "all") deixam todas as linhas
// passarem, portanto uma seleção vazia é a identidade e aplicar a mesma
// seleção duas vezes equivale a aplicá-la uma vez. O filtro de CAI atinge as
// duas tabelas; o de especificação só existe na tabela de preços; o de mês
// atinge as duas.
func ApplyFilters(
	price []domain.PriceRecord,
	sales []domain.SalesRecord,
	selection domain.FilterSelection,
) ([]domain.PriceRecord, []domain.SalesRecord) {
	filteredPrice := price
	filteredSales := sales

	if selection.HasProductID() {
		filteredPrice = filterPrice(filteredPrice, func(r domain.PriceRecord) bool {
			return r.ProductID == selection.ProductID
		})
		filteredSales = filterSales(filteredSales, func(r domain.SalesRecord) bool {
			return r.ProductID == selection.ProductID
		})
	}

	if selection.HasDimension() {
		filteredPrice = filterPrice(filteredPrice, func(r domain.PriceRecord) bool {
			return r.Dimension == selection.Dimension
		})
	}

	if selection.HasMonth() {
		filteredPrice = filterPrice(filteredPrice, func(r domain.PriceRecord) bool {
			return r.Month == selection.Month
		})
		filteredSales = filterSales(filteredSales, func(r domain.SalesRecord) bool {
			return r.Month == selection.Month
		})
	}

	return filteredPrice, filteredSales
}

// ApplyFloor restringe as duas tabelas a mês >= floor. É o recorte fixo do
// painel, aplicado ANTES da seleção do usuário e fora do alcance dela.
func ApplyFloor(
	price []domain.PriceRecord,
	sales []domain.SalesRecord,
	floor string,
) ([]domain.PriceRecord, []domain.SalesRecord) {
	if floor == "" {
		return price, sales
	}

	return filterPrice(price, func(r domain.PriceRecord) bool { return r.Month >= floor }),
		filterSales(sales, func(r domain.SalesRecord) bool { return r.Month >= floor })
}

func filterPrice(records []domain.PriceRecord, keep func(domain.PriceRecord) bool) []domain.PriceRecord {
	out := make([]domain.PriceRecord, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func filterSales(records []domain.SalesRecord, keep func(domain.SalesRecord) bool) []domain.SalesRecord {
	out := make([]domain.SalesRecord, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
