// Package datasource carrega as duas tabelas de origem do painel (preços e
// embarques), aplica a normalização de chaves e calcula as colunas
// derivadas. O resultado é memoizado por processo e só é recomputado por
// invalidação explícita — tipicamente pelo watcher quando os arquivos de
// origem mudam, ou pelo endpoint manual de reload.
package datasource

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-analytics-api/infrastructure/datasource/reader"
	"github.com/vfg2006/price-analytics-api/internal/config"
	"github.com/vfg2006/price-analytics-api/internal/domain"
	"github.com/vfg2006/price-analytics-api/pkg/utils"
)

// Nomes de coluna conforme as origens históricas
const (
	priceColMonth       = "month"
	priceColDimension   = "规格"
	priceColProductID   = "CAI"
	priceColDescription = "产品描述"
	priceColNetPrice    = "净价-不含售出"

	salesColMonth     = "ID_Month_Key"
	salesColOffice    = "Office"
	salesColProductID = "Cai"
	salesColQty       = "Shipped_Qty"
)

// Loader expõe o cache do dataset para o restante da aplicação.
type Loader interface {
	// Load devolve o dataset memoizado, carregando-o na primeira chamada.
	Load() (*domain.Dataset, error)
	// Reload invalida o cache e carrega de novo.
	Reload() (*domain.Dataset, error)
	// Invalidate descarta o cache sem recarregar.
	Invalidate()
	// Status devolve a visão de estado do cache, carregando se preciso.
	Status() (*domain.DatasetStatus, error)
}

// Service implementa Loader lendo os arquivos configurados.
type Service struct {
	cfg *config.Config

	mu    sync.Mutex
	cache *domain.Dataset
}

func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

func (s *Service) Load() (*domain.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache != nil {
		return s.cache, nil
	}

	dataset, err := s.build()
	if err != nil {
		// Surfaced antes do re-raise: o diagnóstico não pode mascarar a
		// falha original.
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			logrus.WithFields(logrus.Fields{
				"source":        loadErr.Source,
				"path":          loadErr.Path,
				"known_columns": loadErr.KnownColumns,
			}).Error("Falha na carga do dataset")
		}
		return nil, err
	}

	s.cache = dataset
	return s.cache, nil
}

func (s *Service) Reload() (*domain.Dataset, error) {
	s.Invalidate()
	return s.Load()
}

func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache != nil {
		logrus.WithField("generation", s.cache.Generation).Info("Cache do dataset invalidado")
	}
	s.cache = nil
}

func (s *Service) Status() (*domain.DatasetStatus, error) {
	dataset, err := s.Load()
	if err != nil {
		return nil, err
	}
	return dataset.Status(), nil
}

// build executa a carga completa: leitura, limpeza, normalização de chaves
// e colunas derivadas. Não toca no cache.
func (s *Service) build() (*domain.Dataset, error) {
	knownColumns := map[string][]string{}

	priceTable, err := s.readTable(s.cfg.Dataset.PriceFile, "price", knownColumns)
	if err != nil {
		return nil, err
	}
	knownColumns["price"] = priceTable.Columns

	salesTable, err := s.readTable(s.cfg.Dataset.SalesFile, "sales", knownColumns)
	if err != nil {
		return nil, err
	}
	knownColumns["sales"] = salesTable.Columns

	quality := domain.DataQuality{}

	priceRecords, err := s.parsePriceTable(priceTable, &quality)
	if err != nil {
		return nil, NewLoadError(err, "price", s.cfg.Dataset.PriceFile, knownColumns)
	}

	salesRecords, err := s.parseSalesTable(salesTable, &quality)
	if err != nil {
		return nil, NewLoadError(err, "sales", s.cfg.Dataset.SalesFile, knownColumns)
	}

	derivePriorPrices(priceRecords)

	generation, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID de geração do dataset")
	}

	dataset := &domain.Dataset{
		Generation:   generation,
		LoadedAt:     time.Now(),
		Price:        priceRecords,
		Sales:        salesRecords,
		PriceColumns: priceTable.Columns,
		SalesColumns: salesTable.Columns,
		SourceStamps: s.sourceStamps(),
		Quality:      quality,
	}

	logrus.WithFields(logrus.Fields{
		"generation":         generation,
		"price_rows":         len(priceRecords),
		"sales_rows":         len(salesRecords),
		"dropped_price_rows": quality.DroppedPriceRows,
		"dropped_sales_rows": quality.DroppedSalesRows,
		"fallback_price_ids": quality.FallbackPriceIDs,
		"fallback_sales_ids": quality.FallbackSalesIDs,
		"null_prices":        quality.NullPrices,
	}).Info("Dataset carregado com sucesso")

	return dataset, nil
}

func (s *Service) readTable(path, source string, knownColumns map[string][]string) (*reader.Table, error) {
	rd, err := reader.ForFile(path)
	if err != nil {
		return nil, NewLoadError(err, source, path, knownColumns)
	}

	table, err := rd.Read(path)
	if err != nil {
		return nil, NewLoadError(errors.Wrap(ErrSourceRead, err.Error()), source, path, knownColumns)
	}

	if len(table.Rows) == 0 {
		return nil, NewLoadError(ErrEmptySource, source, path, knownColumns)
	}

	return table, nil
}

// parsePriceTable converte a tabela bruta de preços em registros de
// domínio. A primeira coluna sem nome (índice do pandas na origem) é
// ignorada naturalmente pela busca nominal de colunas.
func (s *Service) parsePriceTable(table *reader.Table, quality *domain.DataQuality) ([]domain.PriceRecord, error) {
	cols := map[string]int{}
	for _, name := range []string{priceColMonth, priceColDimension, priceColProductID, priceColDescription, priceColNetPrice} {
		idx := table.ColumnIndex(name)
		if idx < 0 {
			return nil, errors.Wrap(ErrMissingColumn, name)
		}
		cols[name] = idx
	}

	records := make([]domain.PriceRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		month, ok := utils.NormalizeMonth(table.Cell(row, cols[priceColMonth]))
		if !ok {
			quality.DroppedPriceRows++
			continue
		}

		productID, ok := utils.NormalizeProductID(table.Cell(row, cols[priceColProductID]))
		if !ok {
			quality.FallbackPriceIDs++
		}

		// Preço não numérico vira nulo, não descarta a linha: ela continua
		// visível na tabela e fora dos agregados.
		netPrice := parseNullableFloat(table.Cell(row, cols[priceColNetPrice]))
		if netPrice == nil {
			quality.NullPrices++
		}

		records = append(records, domain.PriceRecord{
			Month:       month,
			Dimension:   strings.TrimSpace(table.Cell(row, cols[priceColDimension])),
			ProductID:   productID,
			Description: strings.TrimSpace(table.Cell(row, cols[priceColDescription])),
			NetPrice:    netPrice,
		})
	}

	return records, nil
}

func (s *Service) parseSalesTable(table *reader.Table, quality *domain.DataQuality) ([]domain.SalesRecord, error) {
	cols := map[string]int{}
	for _, name := range []string{salesColMonth, salesColOffice, salesColProductID, salesColQty} {
		idx := table.ColumnIndex(name)
		if idx < 0 {
			return nil, errors.Wrap(ErrMissingColumn, name)
		}
		cols[name] = idx
	}

	records := make([]domain.SalesRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		// Restringe ao escritório alvo antes de qualquer outra limpeza
		office := strings.TrimSpace(table.Cell(row, cols[salesColOffice]))
		if office != s.cfg.Dataset.TargetOffice {
			continue
		}

		month, ok := utils.NormalizeMonth(table.Cell(row, cols[salesColMonth]))
		if !ok {
			quality.DroppedSalesRows++
			continue
		}

		productID, ok := utils.NormalizeProductID(table.Cell(row, cols[salesColProductID]))
		if !ok {
			quality.FallbackSalesIDs++
		}

		qty := parseFloat(table.Cell(row, cols[salesColQty]))

		records = append(records, domain.SalesRecord{
			Month:      month,
			ProductID:  productID,
			Office:     office,
			ShippedQty: qty,
			// Proxy de receita com preço unitário 1 (placeholder herdado)
			Revenue: qty * 1,
		})
	}

	return records, nil
}

// derivePriorPrices calcula, por grupo (dimensão, CAI) ordenado por mês, o
// preço da linha anterior e o delta. O lag é POSICIONAL: com um mês ausente
// no grupo, a "anterior" continua sendo a última linha presente, não o mês
// adjacente do calendário.
func derivePriorPrices(records []domain.PriceRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Dimension != records[j].Dimension {
			return records[i].Dimension < records[j].Dimension
		}
		if records[i].ProductID != records[j].ProductID {
			return records[i].ProductID < records[j].ProductID
		}
		return records[i].Month < records[j].Month
	})

	for i := range records {
		if i == 0 || records[i].Dimension != records[i-1].Dimension || records[i].ProductID != records[i-1].ProductID {
			continue // Primeira linha do grupo: sem anterior
		}

		prior := records[i-1].NetPrice
		if prior == nil {
			continue
		}

		priorCopy := *prior
		records[i].PriorMonthPrice = &priorCopy

		if records[i].NetPrice != nil {
			delta := *records[i].NetPrice - priorCopy
			records[i].PriceDelta = &delta
		}
	}
}

func (s *Service) sourceStamps() map[string]time.Time {
	stamps := map[string]time.Time{}
	for _, path := range []string{s.cfg.Dataset.PriceFile, s.cfg.Dataset.SalesFile} {
		if info, err := os.Stat(path); err == nil {
			stamps[path] = info.ModTime()
		}
	}
	return stamps
}

func parseNullableFloat(raw string) *float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &value
}

func parseFloat(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}
