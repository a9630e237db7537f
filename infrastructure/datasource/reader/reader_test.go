package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		hasError bool
	}{
		{name: "CSV é suportado", path: "dados.csv"},
		{name: "Extensão em maiúsculas é aceita", path: "dados.CSV"},
		{name: "XLSX é suportado", path: "dados.xlsx"},
		{name: "XLSM é suportado", path: "dados.xlsm"},
		{name: "Extensão desconhecida é rejeitada", path: "dados.parquet", hasError: true},
		{name: "Sem extensão é rejeitado", path: "dados", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rd, err := ForFile(tt.path)
			if tt.hasError {
				assert.Error(t, err)
				assert.Nil(t, rd)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, rd)
			}
		})
	}
}

func TestCSVReader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dados.csv")
	// Segunda linha mais curta que o cabeçalho, como planilhas reais
	content := "month,CAI,preco\n202401,100,10.5\n202402,200\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rd, err := ForFile(path)
	require.NoError(t, err)

	table, err := rd.Read(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"month", "CAI", "preco"}, table.Columns)
	assert.Len(t, table.Rows, 2)

	// Linha curta: a célula ausente vira string vazia, sem pânico
	assert.Equal(t, "10.5", table.Cell(table.Rows[0], 2))
	assert.Equal(t, "", table.Cell(table.Rows[1], 2))
}

func TestCSVReader_ArquivoInexistente(t *testing.T) {
	rd, err := ForFile("nao_existe.csv")
	require.NoError(t, err)

	_, err = rd.Read("nao_existe.csv")
	assert.Error(t, err)
}

func TestXLSXReader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dados.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"month", "CAI", "preco"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"202401", 100, 10.5}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rd, err := ForFile(path)
	require.NoError(t, err)

	table, err := rd.Read(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"month", "CAI", "preco"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "202401", table.Cell(table.Rows[0], 0))
	assert.Equal(t, "100", table.Cell(table.Rows[0], 1))
}

func TestTable_ColumnIndex(t *testing.T) {
	table := &Table{Columns: []string{"", "month", " CAI ", "preco"}}

	// Nomes de coluna são comparados após aparar espaços
	assert.Equal(t, 1, table.ColumnIndex("month"))
	assert.Equal(t, 2, table.ColumnIndex("CAI"))
	assert.Equal(t, -1, table.ColumnIndex("inexistente"))
}
