package domain

// MergedRecord é uma linha da tabela principal do painel: o left join das
// linhas de preço filtradas com as linhas de embarque em (mês, CAI). Linhas
// de preço sem embarque correspondente permanecem com ShippedQty 0 — nunca
// são descartadas nem duplicadas quando há mais de um embarque com a mesma
// chave (a primeira correspondência vence).
type MergedRecord struct {
	Month           string   `json:"month"`
	DisplayMonth    string   `json:"display_month"` // YYYY/MM
	Dimension       string   `json:"dimension"`
	ProductID       string   `json:"product_id"`
	Description     string   `json:"description"`
	NetPrice        *float64 `json:"net_price"`
	PriorMonthPrice *float64 `json:"prior_month_price"`
	PriceDelta      *float64 `json:"price_delta"`
	ShippedQty      float64  `json:"shipped_qty"`
}
