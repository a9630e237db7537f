package domain

// SalesRecord representa uma linha da tabela de embarques já restrita ao
// escritório alvo e com as chaves normalizadas.
type SalesRecord struct {
	Month      string  `json:"month"`       // Chave canônica YYYYMM
	ProductID  string  `json:"product_id"`  // Cai normalizado para string inteira
	Office     string  `json:"office"`
	ShippedQty float64 `json:"shipped_qty"`

	// Proxy de receita: quantidade embarcada × 1. O preço unitário de 1 é
	// um placeholder herdado da base de origem; não inventar precificação
	// enquanto não existir um campo real de preço por unidade.
	Revenue float64 `json:"revenue"`
}
