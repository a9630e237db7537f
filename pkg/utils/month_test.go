package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMonth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{
			name:     "Chave canônica de 6 dígitos permanece inalterada",
			input:    "202401",
			expected: "202401",
			ok:       true,
		},
		{
			name:     "Valor com espaços nas bordas é aparado",
			input:    "  202403  ",
			expected: "202403",
			ok:       true,
		},
		{
			name:     "Menos de 6 dígitos ganha zeros à esquerda",
			input:    "2024",
			expected: "002024",
			ok:       true,
		},
		{
			name:     "Separador corta a sequência: só a primeira sequência vale",
			input:    "2024-01",
			expected: "002024",
			ok:       true,
		},
		{
			name:     "Rótulo antes dos dígitos é ignorado",
			input:    "mês 202402",
			expected: "202402",
			ok:       true,
		},
		{
			name:     "Valor decimal usa a parte inteira",
			input:    "202401.0",
			expected: "202401",
			ok:       true,
		},
		{
			name:     "Sem dígitos não há chave",
			input:    "sem data",
			expected: "",
			ok:       false,
		},
		{
			name:     "String vazia não há chave",
			input:    "",
			expected: "",
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeMonth(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// A normalização deve ser idempotente: normalizar uma chave já canônica não
// pode alterá-la.
func TestNormalizeMonth_Idempotente(t *testing.T) {
	for _, input := range []string{"202401", "2024-01", "jan/2024 ref 01", "000124"} {
		first, ok := NormalizeMonth(input)
		assert.True(t, ok)

		second, ok := NormalizeMonth(first)
		assert.True(t, ok)
		assert.Equal(t, first, second)
	}
}

func TestNormalizeProductID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{
			name:     "Inteiro permanece inalterado",
			input:    "123456",
			expected: "123456",
			ok:       true,
		},
		{
			name:     "Decimal vindo de planilha é truncado",
			input:    "123456.0",
			expected: "123456",
			ok:       true,
		},
		{
			name:     "Espaços nas bordas são aparados",
			input:    " 7890 ",
			expected: "7890",
			ok:       true,
		},
		{
			name:     "Não numérico cai no identificador de fallback",
			input:    "CAI-ABC",
			expected: "0",
			ok:       false,
		},
		{
			name:     "Vazio cai no identificador de fallback",
			input:    "",
			expected: "0",
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeProductID(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatMonthDisplay(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Chave canônica vira YYYY/MM",
			input:    "202401",
			expected: "2024/01",
		},
		{
			name:     "Chave fora do formato passa sem alteração",
			input:    "2024",
			expected: "2024",
		},
		{
			name:     "Vazio passa sem alteração",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMonthDisplay(tt.input))
		})
	}
}
