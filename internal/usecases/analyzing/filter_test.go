package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/price-analytics-api/internal/domain"
)

func floatPtr(f float64) *float64 {
	return &f
}

func samplePriceRows() []domain.PriceRecord {
	return []domain.PriceRecord{
		{Month: "202401", Dimension: "10x20", ProductID: "100", Description: "Produto A", NetPrice: floatPtr(10)},
		{Month: "202402", Dimension: "10x20", ProductID: "100", Description: "Produto A", NetPrice: floatPtr(12)},
		{Month: "202401", Dimension: "30x40", ProductID: "200", Description: "Produto B", NetPrice: floatPtr(20)},
		{Month: "202402", Dimension: "30x40", ProductID: "200", Description: "Produto B", NetPrice: nil},
	}
}

func sampleSalesRows() []domain.SalesRecord {
	return []domain.SalesRecord{
		{Month: "202401", ProductID: "100", Office: "HZ", ShippedQty: 5},
		{Month: "202402", ProductID: "100", Office: "HZ", ShippedQty: 7},
		{Month: "202401", ProductID: "200", Office: "HZ", ShippedQty: 3},
	}
}

func TestApplyFilters(t *testing.T) {
	tests := []struct {
		name          string
		selection     domain.FilterSelection
		expectedPrice int
		expectedSales int
	}{
		{
			name:          "Seleção vazia é a identidade",
			selection:     domain.FilterSelection{},
			expectedPrice: 4,
			expectedSales: 3,
		},
		{
			name: "Sentinela all em todos os eixos também é a identidade",
			selection: domain.FilterSelection{
				ProductID: domain.SelectAll,
				Dimension: domain.SelectAll,
				Month:     domain.SelectAll,
			},
			expectedPrice: 4,
			expectedSales: 3,
		},
		{
			name:          "Filtro de CAI atinge as duas tabelas",
			selection:     domain.FilterSelection{ProductID: "100"},
			expectedPrice: 2,
			expectedSales: 2,
		},
		{
			name:          "Filtro de especificação só atinge a tabela de preços",
			selection:     domain.FilterSelection{Dimension: "30x40"},
			expectedPrice: 2,
			expectedSales: 3,
		},
		{
			name:          "Filtro de mês atinge as duas tabelas",
			selection:     domain.FilterSelection{Month: "202401"},
			expectedPrice: 2,
			expectedSales: 2,
		},
		{
			name:          "Eixos combinados restringem em conjunto",
			selection:     domain.FilterSelection{ProductID: "100", Month: "202402"},
			expectedPrice: 1,
			expectedSales: 1,
		},
		{
			name:          "Valor inexistente devolve vazio sem erro",
			selection:     domain.FilterSelection{ProductID: "999"},
			expectedPrice: 0,
			expectedSales: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, sales := ApplyFilters(samplePriceRows(), sampleSalesRows(), tt.selection)
			assert.Len(t, price, tt.expectedPrice)
			assert.Len(t, sales, tt.expectedSales)
		})
	}
}

// Aplicar a mesma seleção duas vezes deve equivaler a aplicá-la uma vez.
func TestApplyFilters_Idempotente(t *testing.T) {
	selection := domain.FilterSelection{ProductID: "100", Month: "202401"}

	price1, sales1 := ApplyFilters(samplePriceRows(), sampleSalesRows(), selection)
	price2, sales2 := ApplyFilters(price1, sales1, selection)

	assert.Equal(t, price1, price2)
	assert.Equal(t, sales1, sales2)
}

func TestApplyFloor(t *testing.T) {
	price := []domain.PriceRecord{
		{Month: "202312", ProductID: "100"},
		{Month: "202401", ProductID: "100"},
		{Month: "202402", ProductID: "100"},
	}
	sales := []domain.SalesRecord{
		{Month: "202311", ProductID: "100"},
		{Month: "202401", ProductID: "100"},
	}

	t.Run("Meses anteriores ao piso são excluídos das duas tabelas", func(t *testing.T) {
		gotPrice, gotSales := ApplyFloor(price, sales, "202401")

		assert.Len(t, gotPrice, 2)
		assert.Len(t, gotSales, 1)
		for _, p := range gotPrice {
			assert.GreaterOrEqual(t, p.Month, "202401")
		}
	})

	t.Run("Piso vazio é a identidade", func(t *testing.T) {
		gotPrice, gotSales := ApplyFloor(price, sales, "")
		assert.Equal(t, price, gotPrice)
		assert.Equal(t, sales, gotSales)
	})
}
