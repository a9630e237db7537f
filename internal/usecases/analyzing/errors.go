package analyzing

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de análise
var (
	ErrEmptyAggregate = errors.New("trend aggregation produced no months")
)

// ChartError carrega o diagnóstico estruturado de uma falha na construção
// da série de tendência: os tamanhos dos agregados intermediários, no lugar
// dos dumps de estado parcial da implementação histórica. O chamador
// escolhe logar ou exibir; o erro original fica acessível via Unwrap.
type ChartError struct {
	Err       error
	PriceRows int
	SalesRows int
	Months    int
}

// Error implementa a interface error
func (e *ChartError) Error() string {
	return fmt.Sprintf(
		"construção da tendência: %s (linhas de preço: %d, linhas de embarque: %d, meses: %d)",
		e.Err.Error(), e.PriceRows, e.SalesRows, e.Months,
	)
}

// Unwrap retorna o erro subjacente
func (e *ChartError) Unwrap() error {
	return e.Err
}

// NewChartError cria um ChartError com os tamanhos dos agregados.
func NewChartError(err error, priceRows, salesRows, months int) *ChartError {
	return &ChartError{
		Err:       err,
		PriceRows: priceRows,
		SalesRows: salesRows,
		Months:    months,
	}
}
