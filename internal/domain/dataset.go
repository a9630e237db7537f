package domain

import "time"

// Dataset é o resultado imutável de uma carga das duas tabelas de origem.
// Depois de carregado nada é mutado: filtros e agregações trabalham sobre
// cópias ou visões somente leitura.
type Dataset struct {
	Generation string    // ID curto da geração de cache
	LoadedAt   time.Time
	Price      []PriceRecord
	Sales      []SalesRecord

	// Colunas observadas em cada origem, para diagnóstico de falhas.
	PriceColumns []string
	SalesColumns []string

	// Carimbos de modificação dos arquivos de origem no momento da carga,
	// usados pelo watcher para detectar mudanças.
	SourceStamps map[string]time.Time

	Quality DataQuality
}

// DataQuality contabiliza as anomalias de linha silenciosamente filtradas
// ou normalizadas na carga, para que problemas de qualidade de dados fiquem
// visíveis sem transformá-los em erro.
type DataQuality struct {
	DroppedPriceRows int `json:"dropped_price_rows"` // Mês irrecuperável
	DroppedSalesRows int `json:"dropped_sales_rows"`
	FallbackPriceIDs int `json:"fallback_price_ids"` // CAI não numérico coagido para "0"
	FallbackSalesIDs int `json:"fallback_sales_ids"`
	NullPrices       int `json:"null_prices"` // Preço não numérico mantido como nulo
}

// DatasetStatus é a visão do estado do cache exposta pela API.
type DatasetStatus struct {
	Generation   string               `json:"generation"`
	LoadedAt     time.Time            `json:"loaded_at"`
	PriceRows    int                  `json:"price_rows"`
	SalesRows    int                  `json:"sales_rows"`
	SourceStamps map[string]time.Time `json:"source_stamps"`
	Quality      DataQuality          `json:"quality"`
}

// Status projeta o Dataset no formato de status da API.
func (d *Dataset) Status() *DatasetStatus {
	return &DatasetStatus{
		Generation:   d.Generation,
		LoadedAt:     d.LoadedAt,
		PriceRows:    len(d.Price),
		SalesRows:    len(d.Sales),
		SourceStamps: d.SourceStamps,
		Quality:      d.Quality,
	}
}
