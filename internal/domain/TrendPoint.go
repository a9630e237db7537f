package domain

// TrendPoint é um ponto da série de tendência: um por mês presente na UNIÃO
// dos meses das duas tabelas filtradas, em ordem ascendente. Meses sem
// embarque aparecem com quantidade 0; meses sem linha de preço aparecem com
// preço médio nulo — a série nunca é truncada para a interseção.
type TrendPoint struct {
	Month        string   `json:"month"`
	DisplayMonth string   `json:"display_month"` // YYYY/MM
	TotalQty     float64  `json:"total_qty"`
	AvgPrice     *float64 `json:"avg_price"`
}

// TrendSummary resume a seleção corrente para o cabeçalho do gráfico:
// preço médio e volume total do recorte, mais os produtos abrangidos.
type TrendSummary struct {
	AvgPrice *float64           `json:"avg_price"`
	TotalQty float64            `json:"total_qty"`
	Products []TrendProductInfo `json:"products,omitempty"`
}

// TrendProductInfo identifica um produto coberto pela seleção do gráfico.
type TrendProductInfo struct {
	ProductID   string `json:"product_id"`
	Description string `json:"description"`
	Dimension   string `json:"dimension"`
}

// TrendSeries é a resposta completa do construtor de tendência.
type TrendSeries struct {
	Points  []TrendPoint `json:"points"`
	Summary TrendSummary `json:"summary"`
}
