package analyzing

import (
	"github.com/vfg2006/price-analytics-api/internal/domain"
)

// Analyzer define as consultas do painel sobre o dataset carregado. Toda
// operação recebe a seleção de filtros como parâmetro simples — o núcleo
// não guarda estado de UI entre requisições.
type Analyzer interface {
	// Records devolve a tabela principal: preços filtrados com o embarque
	// correspondente, ordenados por mês descendente.
	Records(selection domain.FilterSelection) ([]domain.MergedRecord, error)

	// DimensionStats agrega os preços por especificação.
	DimensionStats(selection domain.FilterSelection) ([]domain.DimensionStats, error)

	// ProductStats agrega os preços por (CAI, descrição), incluindo o
	// preço mais recente na ordem dos meses.
	ProductStats(selection domain.FilterSelection) ([]domain.ProductStats, error)

	// Trend constrói a série mensal completa de quantidade e preço médio.
	Trend(selection domain.FilterSelection) (*domain.TrendSeries, error)

	// FilterOptions lista os valores disponíveis para cada eixo de filtro.
	FilterOptions() (*domain.FilterOptions, error)
}
