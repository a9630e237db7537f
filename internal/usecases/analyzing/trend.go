package analyzing

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-analytics-api/internal/domain"
	"github.com/vfg2006/price-analytics-api/pkg/utils"
)

// Trend constrói a série mensal da seleção corrente e o resumo exibido no
// cabeçalho do gráfico. Falhas estruturais são devolvidas como ChartError
// com os tamanhos dos agregados, depois de logadas — a visão falha fechada,
// sem painel parcial com resultados escondidos.
func (s *Service) Trend(selection domain.FilterSelection) (*domain.TrendSeries, error) {
	price, sales, err := s.filtered(selection)
	if err != nil {
		return nil, err
	}

	series, err := BuildTrend(price, sales)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"selection": utils.PrettyJson(selection),
			"error":     err.Error(),
		}).Error("Falha na construção da série de tendência")
		return nil, err
	}

	return series, nil
}

// BuildTrend produz um ponto por mês presente na UNIÃO dos meses das duas
// tabelas: quantidade somada (0 quando o mês só existe em preços) e preço
// médio sobre os não nulos (nulo quando o mês só existe em embarques).
// Nunca trunca para a interseção. Função pura, ordenada por mês ascendente.
func BuildTrend(price []domain.PriceRecord, sales []domain.SalesRecord) (*domain.TrendSeries, error) {
	qtyByMonth := map[string]float64{}
	for _, sale := range sales {
		qtyByMonth[sale.Month] += sale.ShippedQty
	}

	type priceAgg struct {
		sum   float64
		count int
	}
	priceByMonth := map[string]*priceAgg{}
	monthSet := map[string]struct{}{}

	for _, p := range price {
		monthSet[p.Month] = struct{}{}
		if p.NetPrice == nil {
			continue
		}
		a, ok := priceByMonth[p.Month]
		if !ok {
			a = &priceAgg{}
			priceByMonth[p.Month] = a
		}
		a.sum += *p.NetPrice
		a.count++
	}
	for month := range qtyByMonth {
		monthSet[month] = struct{}{}
	}

	months := sortedKeys(monthSet)

	// Defensivo: linhas sem mês não deveriam sobreviver à carga.
	if len(months) == 0 && (len(price) > 0 || len(sales) > 0) {
		return nil, NewChartError(ErrEmptyAggregate, len(price), len(sales), 0)
	}

	points := make([]domain.TrendPoint, 0, len(months))
	for _, month := range months {
		point := domain.TrendPoint{
			Month:        month,
			DisplayMonth: utils.FormatMonthDisplay(month),
			TotalQty:     qtyByMonth[month],
		}

		if a, ok := priceByMonth[month]; ok {
			avg := utils.RoundWithTwoDecimalPlace(a.sum / float64(a.count))
			point.AvgPrice = &avg
		}

		points = append(points, point)
	}

	return &domain.TrendSeries{
		Points:  points,
		Summary: buildSummary(price, sales),
	}, nil
}

// buildSummary replica o bloco de título do gráfico de origem: preço médio
// e volume total do recorte, mais os produtos distintos abrangidos.
func buildSummary(price []domain.PriceRecord, sales []domain.SalesRecord) domain.TrendSummary {
	summary := domain.TrendSummary{}

	sum := 0.0
	count := 0
	seen := map[[3]string]struct{}{}
	for _, p := range price {
		key := [3]string{p.ProductID, p.Description, p.Dimension}
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			summary.Products = append(summary.Products, domain.TrendProductInfo{
				ProductID:   p.ProductID,
				Description: p.Description,
				Dimension:   p.Dimension,
			})
		}

		if p.NetPrice != nil {
			sum += *p.NetPrice
			count++
		}
	}

	if count > 0 {
		avg := utils.RoundWithTwoDecimalPlace(sum / float64(count))
		summary.AvgPrice = &avg
	}

	for _, sale := range sales {
		summary.TotalQty += sale.ShippedQty
	}

	sort.Slice(summary.Products, func(i, j int) bool {
		if summary.Products[i].ProductID != summary.Products[j].ProductID {
			return summary.Products[i].ProductID < summary.Products[j].ProductID
		}
		return summary.Products[i].Dimension < summary.Products[j].Dimension
	})

	return summary
}
