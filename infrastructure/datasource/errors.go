package datasource

import (
	"errors"
	"fmt"
	"strings"
)

// Erros específicos do contexto de carga de dados
var (
	ErrSourceRead    = errors.New("error reading source file")
	ErrMissingColumn = errors.New("expected column not found in source")
	ErrEmptySource   = errors.New("source file has no data rows")
)

// LoadError é um erro de carga com o diagnóstico estruturado exigido pelo
// painel: qual origem falhou e as colunas conhecidas de cada tabela que
// chegou a ser lida. O chamador decide logar ou exibir; o erro original
// permanece acessível via Unwrap.
type LoadError struct {
	Err          error
	Source       string              // "price" ou "sales"
	Path         string              // Arquivo envolvido
	KnownColumns map[string][]string // Colunas observadas por origem
}

// Error implementa a interface error
func (e *LoadError) Error() string {
	parts := []string{fmt.Sprintf("carga da origem %s (%s): %s", e.Source, e.Path, e.Err.Error())}
	for source, cols := range e.KnownColumns {
		parts = append(parts, fmt.Sprintf("colunas conhecidas de %s: [%s]", source, strings.Join(cols, ", ")))
	}
	return strings.Join(parts, "; ")
}

// Unwrap retorna o erro subjacente
func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError cria um LoadError com as colunas conhecidas até o momento.
func NewLoadError(err error, source, path string, knownColumns map[string][]string) *LoadError {
	return &LoadError{
		Err:          err,
		Source:       source,
		Path:         path,
		KnownColumns: knownColumns,
	}
}
