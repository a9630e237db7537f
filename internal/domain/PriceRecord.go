package domain

// PriceRecord representa uma linha da tabela de preços depois da
// normalização de chaves e do cálculo das colunas derivadas. Para um par
// (dimensão, CAI) fixo, as linhas são unicamente identificadas pelo mês.
type PriceRecord struct {
	Month       string   `json:"month"`      // Chave canônica YYYYMM
	Dimension   string   `json:"dimension"`  // Especificação do produto (规格)
	ProductID   string   `json:"product_id"` // CAI normalizado para string inteira
	Description string   `json:"description"`
	NetPrice    *float64 `json:"net_price"` // Nulo quando o valor de origem não é numérico

	// Derivados na carga: preço da linha imediatamente anterior do mesmo
	// grupo na ordenação por mês (lag posicional, não de calendário) e a
	// diferença entre os dois. Nulos quando não há linha anterior ou
	// quando um dos operandos é nulo.
	PriorMonthPrice *float64 `json:"prior_month_price"`
	PriceDelta      *float64 `json:"price_delta"`
}
