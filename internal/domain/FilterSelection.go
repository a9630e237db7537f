package domain

// SelectAll é o valor sentinela que desliga um eixo do filtro.
const SelectAll = "all"

// FilterSelection é a seleção trivalorada vinda da camada de apresentação.
// Cada campo vazio (ou igual a SelectAll) deixa passar todas as linhas do
// eixo correspondente. A seleção é efêmera: pertence à UI e atravessa o
// núcleo como parâmetro simples, nunca como estado mutável.
type FilterSelection struct {
	ProductID string `json:"product_id"`
	Dimension string `json:"dimension"`
	Month     string `json:"month"`
}

// HasProductID indica se o eixo de CAI está restrito.
func (f FilterSelection) HasProductID() bool {
	return f.ProductID != "" && f.ProductID != SelectAll
}

// HasDimension indica se o eixo de especificação está restrito.
func (f FilterSelection) HasDimension() bool {
	return f.Dimension != "" && f.Dimension != SelectAll
}

// HasMonth indica se o eixo de mês está restrito.
func (f FilterSelection) HasMonth() bool {
	return f.Month != "" && f.Month != SelectAll
}

// FilterOptions lista os valores distintos oferecidos pela UI para cada
// eixo de filtro, derivados da tabela de preços após o piso de meses.
type FilterOptions struct {
	ProductIDs    []string `json:"product_ids"`
	Dimensions    []string `json:"dimensions"`
	Months        []string `json:"months"`         // Chaves canônicas YYYYMM
	MonthsDisplay []string `json:"months_display"` // Mesmos meses no formato YYYY/MM
}
