package domain

// DimensionStats agrega os preços líquidos não nulos de uma especificação.
// Especificações sem nenhum preço não nulo não entram no resultado.
type DimensionStats struct {
	Dimension string  `json:"dimension"`
	AvgPrice  float64 `json:"avg_price"`
	MinPrice  float64 `json:"min_price"`
	MaxPrice  float64 `json:"max_price"`
	Count     int     `json:"count"` // Linhas com preço não nulo
}

// ProductStats agrega os preços de um par (CAI, descrição). Os agregados
// ignoram preços nulos; LatestPrice é o último preço não nulo na ordenação
// ascendente por mês e fica nulo quando o grupo só tem preços nulos.
type ProductStats struct {
	ProductID   string   `json:"product_id"`
	Description string   `json:"description"`
	AvgPrice    *float64 `json:"avg_price"`
	MinPrice    *float64 `json:"min_price"`
	MaxPrice    *float64 `json:"max_price"`
	LatestPrice *float64 `json:"latest_price"`
}
