// Package reader lê arquivos tabulares (CSV ou XLSX) em uma tabela
// genérica de strings, deixando toda a interpretação de tipos para o
// serviço de carga.
package reader

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Table é o resultado bruto da leitura: cabeçalho + linhas de células.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex devolve a posição da coluna com o nome dado, ou -1.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if strings.TrimSpace(col) == name {
			return i
		}
	}
	return -1
}

// Cell devolve a célula (row, col) ou string vazia quando a linha é mais
// curta que o cabeçalho — planilhas reais frequentemente omitem células
// finais vazias.
func (t *Table) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// Reader lê um arquivo tabular do disco.
type Reader interface {
	Read(path string) (*Table, error)
}

// ForFile escolhe o leitor pela extensão do arquivo.
func ForFile(path string) (Reader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return csvReader{}, nil
	case ".xlsx", ".xlsm":
		return xlsxReader{}, nil
	default:
		return nil, errors.Errorf("extensão de arquivo não suportada: %s", filepath.Ext(path))
	}
}

type csvReader struct{}

func (csvReader) Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir arquivo CSV %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // Linhas curtas são completadas pelo Cell

	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler arquivo CSV %s", path)
	}

	if len(rows) == 0 {
		return nil, errors.Errorf("arquivo CSV vazio: %s", path)
	}

	return &Table{Columns: rows[0], Rows: rows[1:]}, nil
}

type xlsxReader struct{}

func (xlsxReader) Read(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir planilha %s", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Errorf("planilha sem abas: %s", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler aba %s de %s", sheets[0], path)
	}

	if len(rows) == 0 {
		return nil, errors.Errorf("planilha vazia: %s", path)
	}

	return &Table{Columns: rows[0], Rows: rows[1:]}, nil
}
