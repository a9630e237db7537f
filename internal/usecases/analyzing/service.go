package analyzing

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-analytics-api/infrastructure/datasource"
	"github.com/vfg2006/price-analytics-api/internal/config"
	"github.com/vfg2006/price-analytics-api/internal/domain"
	"github.com/vfg2006/price-analytics-api/pkg/utils"
)

// Service implementa Analyzer sobre o cache do datasource. Cada consulta é
// uma passada síncrona e pura: piso de meses, seleção do usuário e então a
// junção/agregação pedida.
type Service struct {
	cfg    *config.Config
	loader datasource.Loader
}

// NewService cria uma nova instância do serviço de análise
func NewService(cfg *config.Config, loader datasource.Loader) Analyzer {
	return &Service{
		cfg:    cfg,
		loader: loader,
	}
}

// filtered carrega o dataset e aplica piso + seleção.
func (s *Service) filtered(selection domain.FilterSelection) ([]domain.PriceRecord, []domain.SalesRecord, error) {
	dataset, err := s.loader.Load()
	if err != nil {
		return nil, nil, err
	}

	price, sales := ApplyFloor(dataset.Price, dataset.Sales, s.cfg.Dataset.FloorMonth)
	price, sales = ApplyFilters(price, sales, selection)
	return price, sales, nil
}

// Records faz o left join das linhas de preço filtradas com os embarques em
// (mês, CAI). Linhas de preço sem embarque permanecem com quantidade 0;
// embarques duplicados na mesma chave nunca duplicam a linha de preço — a
// primeira correspondência vence (defensivo: a origem trata a chave como
// única).
func (s *Service) Records(selection domain.FilterSelection) ([]domain.MergedRecord, error) {
	price, sales, err := s.filtered(selection)
	if err != nil {
		return nil, err
	}

	qtyByKey := make(map[string]float64, len(sales))
	for _, sale := range sales {
		key := sale.Month + "|" + sale.ProductID
		if _, exists := qtyByKey[key]; exists {
			continue
		}
		qtyByKey[key] = sale.ShippedQty
	}

	records := make([]domain.MergedRecord, 0, len(price))
	for _, p := range price {
		record := domain.MergedRecord{
			Month:           p.Month,
			DisplayMonth:    utils.FormatMonthDisplay(p.Month),
			Dimension:       p.Dimension,
			ProductID:       p.ProductID,
			Description:     p.Description,
			NetPrice:        roundNullable(p.NetPrice),
			PriorMonthPrice: roundNullable(p.PriorMonthPrice),
			PriceDelta:      roundNullable(p.PriceDelta),
			ShippedQty:      qtyByKey[p.Month+"|"+p.ProductID],
		}
		records = append(records, record)
	}

	// Mês descendente; desempate por especificação e CAI para manter a
	// ordenação determinística.
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Month != records[j].Month {
			return records[i].Month > records[j].Month
		}
		if records[i].Dimension != records[j].Dimension {
			return records[i].Dimension < records[j].Dimension
		}
		return records[i].ProductID < records[j].ProductID
	})

	return records, nil
}

// DimensionStats agrega net_price por especificação, ignorando preços
// nulos. Especificações sem nenhum preço não nulo ficam fora do resultado.
func (s *Service) DimensionStats(selection domain.FilterSelection) ([]domain.DimensionStats, error) {
	price, _, err := s.filtered(selection)
	if err != nil {
		return nil, err
	}

	type agg struct {
		sum   float64
		count int
		min   float64
		max   float64
	}

	byDimension := map[string]*agg{}
	for _, p := range price {
		if p.NetPrice == nil {
			continue
		}

		a, ok := byDimension[p.Dimension]
		if !ok {
			a = &agg{min: *p.NetPrice, max: *p.NetPrice}
			byDimension[p.Dimension] = a
		}

		a.sum += *p.NetPrice
		a.count++
		if *p.NetPrice < a.min {
			a.min = *p.NetPrice
		}
		if *p.NetPrice > a.max {
			a.max = *p.NetPrice
		}
	}

	stats := make([]domain.DimensionStats, 0, len(byDimension))
	for dimension, a := range byDimension {
		stats = append(stats, domain.DimensionStats{
			Dimension: dimension,
			AvgPrice:  utils.RoundWithTwoDecimalPlace(a.sum / float64(a.count)),
			MinPrice:  utils.RoundWithTwoDecimalPlace(a.min),
			MaxPrice:  utils.RoundWithTwoDecimalPlace(a.max),
			Count:     a.count,
		})
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].Dimension < stats[j].Dimension })

	logrus.WithFields(logrus.Fields{
		"dimensions": len(stats),
		"price_rows": len(price),
	}).Debug("Estatísticas por especificação calculadas")

	return stats, nil
}

// ProductStats agrega net_price por (CAI, descrição). O preço mais recente
// é o último não nulo na ordenação ascendente por mês; grupos só com preços
// nulos permanecem no resultado com agregados nulos, para visibilidade.
func (s *Service) ProductStats(selection domain.FilterSelection) ([]domain.ProductStats, error) {
	price, _, err := s.filtered(selection)
	if err != nil {
		return nil, err
	}

	ordered := make([]domain.PriceRecord, len(price))
	copy(ordered, price)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Month < ordered[j].Month })

	type agg struct {
		sum    float64
		count  int
		min    float64
		max    float64
		latest *float64
	}

	byProduct := map[[2]string]*agg{}
	keys := make([][2]string, 0)
	for _, p := range ordered {
		key := [2]string{p.ProductID, p.Description}
		a, ok := byProduct[key]
		if !ok {
			a = &agg{}
			byProduct[key] = a
			keys = append(keys, key)
		}

		if p.NetPrice == nil {
			continue
		}

		if a.count == 0 {
			a.min = *p.NetPrice
			a.max = *p.NetPrice
		}
		a.sum += *p.NetPrice
		a.count++
		if *p.NetPrice < a.min {
			a.min = *p.NetPrice
		}
		if *p.NetPrice > a.max {
			a.max = *p.NetPrice
		}

		latest := *p.NetPrice
		a.latest = &latest
	}

	stats := make([]domain.ProductStats, 0, len(keys))
	for _, key := range keys {
		a := byProduct[key]
		stat := domain.ProductStats{
			ProductID:   key[0],
			Description: key[1],
			LatestPrice: roundNullable(a.latest),
		}

		if a.count > 0 {
			avg := utils.RoundWithTwoDecimalPlace(a.sum / float64(a.count))
			min := utils.RoundWithTwoDecimalPlace(a.min)
			max := utils.RoundWithTwoDecimalPlace(a.max)
			stat.AvgPrice = &avg
			stat.MinPrice = &min
			stat.MaxPrice = &max
		}

		stats = append(stats, stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].ProductID != stats[j].ProductID {
			return stats[i].ProductID < stats[j].ProductID
		}
		return stats[i].Description < stats[j].Description
	})

	return stats, nil
}

// FilterOptions deriva os valores distintos de cada eixo a partir da tabela
// de preços após o piso de meses, como a origem fazia para os seletores.
func (s *Service) FilterOptions() (*domain.FilterOptions, error) {
	dataset, err := s.loader.Load()
	if err != nil {
		return nil, err
	}

	price, _ := ApplyFloor(dataset.Price, dataset.Sales, s.cfg.Dataset.FloorMonth)

	productIDs := map[string]struct{}{}
	dimensions := map[string]struct{}{}
	months := map[string]struct{}{}
	for _, p := range price {
		productIDs[p.ProductID] = struct{}{}
		dimensions[p.Dimension] = struct{}{}
		months[p.Month] = struct{}{}
	}

	options := &domain.FilterOptions{
		ProductIDs: sortedKeys(productIDs),
		Dimensions: sortedKeys(dimensions),
		Months:     sortedKeys(months),
	}

	options.MonthsDisplay = make([]string, 0, len(options.Months))
	for _, month := range options.Months {
		options.MonthsDisplay = append(options.MonthsDisplay, utils.FormatMonthDisplay(month))
	}

	return options, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func roundNullable(value *float64) *float64 {
	if value == nil {
		return nil
	}
	rounded := utils.RoundWithTwoDecimalPlace(*value)
	return &rounded
}
