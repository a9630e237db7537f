package datasource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/price-analytics-api/internal/config"
	"github.com/vfg2006/price-analytics-api/internal/domain"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// Fixtures com o formato histórico: a tabela de preços carrega a primeira
// coluna sem nome (índice exportado junto com os dados).
const priceFixture = `,month,规格,CAI,产品描述,净价-不含售出
0,202401,10x20,100.0,Produto A,10.5
1,202402,10x20,100.0,Produto A,12.0
2,202404,10x20,100.0,Produto A,15.0
3,202401,30x40,200.0,Produto B,20.0
4,2024-02,30x40,200.0,Produto B,n/a
5,sem mes,30x40,200.0,Produto B,21.0
6,202401,50x60,ABC,Produto C,30.0
`

const salesFixture = `ID_Month_Key,Office,Cai,Shipped_Qty
202401,HZ,100.0,5
202402,HZ,100.0,7
202401,SH,100.0,999
202401,HZ,xyz,3
invalido,HZ,200.0,4
`

func newTestService(t *testing.T) *Service {
	t.Helper()

	dir := t.TempDir()
	pricePath := writeFixture(t, dir, "price_all.csv", priceFixture)
	salesPath := writeFixture(t, dir, "sales_all.csv", salesFixture)

	return NewService(&config.Config{
		Dataset: config.Dataset{
			PriceFile:    pricePath,
			SalesFile:    salesPath,
			TargetOffice: "HZ",
			FloorMonth:   "202401",
		},
	})
}

func TestService_Load(t *testing.T) {
	service := newTestService(t)

	dataset, err := service.Load()
	require.NoError(t, err)

	assert.NotEmpty(t, dataset.Generation)
	assert.False(t, dataset.LoadedAt.IsZero())

	// 7 linhas de preço, 1 descartada por mês irrecuperável
	assert.Len(t, dataset.Price, 6)
	assert.Equal(t, 1, dataset.Quality.DroppedPriceRows)

	// CAI não numérico coagido para "0" e contabilizado
	assert.Equal(t, 1, dataset.Quality.FallbackPriceIDs)

	// Preço não numérico mantido como nulo, sem descartar a linha
	assert.Equal(t, 1, dataset.Quality.NullPrices)

	// Embarques: fora SH (escritório), fora mês inválido; o CAI em fallback fica
	assert.Len(t, dataset.Sales, 3)
	assert.Equal(t, 1, dataset.Quality.DroppedSalesRows)
	assert.Equal(t, 1, dataset.Quality.FallbackSalesIDs)
	for _, sale := range dataset.Sales {
		assert.Equal(t, "HZ", sale.Office)
	}

	// Colunas observadas ficam registradas para diagnóstico
	assert.Contains(t, dataset.PriceColumns, "month")
	assert.Contains(t, dataset.SalesColumns, "ID_Month_Key")

	// Carimbos de modificação das duas origens
	assert.Len(t, dataset.SourceStamps, 2)
}

func TestService_Load_Normalizacao(t *testing.T) {
	service := newTestService(t)

	dataset, err := service.Load()
	require.NoError(t, err)

	byKey := map[string]domain.PriceRecord{}
	for _, p := range dataset.Price {
		byKey[p.Month+"|"+p.ProductID+"|"+p.Dimension] = p
	}

	// CAI decimal da planilha truncado para inteiro
	_, ok := byKey["202401|100|10x20"]
	assert.True(t, ok)

	// Mês com separador: só a primeira sequência de dígitos vale
	record, ok := byKey["002024|200|30x40"]
	require.True(t, ok)
	assert.Nil(t, record.NetPrice)

	// CAI não numérico cai no identificador "0"
	_, ok = byKey["202401|0|50x60"]
	assert.True(t, ok)
}

func TestService_Load_PrecoAnterior(t *testing.T) {
	service := newTestService(t)

	dataset, err := service.Load()
	require.NoError(t, err)

	type derived struct {
		prior *float64
		delta *float64
	}
	byMonth := map[string]derived{}
	for _, p := range dataset.Price {
		if p.ProductID == "100" && p.Dimension == "10x20" {
			byMonth[p.Month] = derived{prior: p.PriorMonthPrice, delta: p.PriceDelta}
		}
	}

	// Primeira linha do grupo não tem anterior
	assert.Nil(t, byMonth["202401"].prior)
	assert.Nil(t, byMonth["202401"].delta)

	require.NotNil(t, byMonth["202402"].prior)
	assert.Equal(t, 10.5, *byMonth["202402"].prior)
	assert.Equal(t, 1.5, *byMonth["202402"].delta)

	// Lag posicional: 202403 não existe no grupo, então a "anterior" de
	// 202404 é a linha de 202402, não o mês adjacente do calendário
	require.NotNil(t, byMonth["202404"].prior)
	assert.Equal(t, 12.0, *byMonth["202404"].prior)
	assert.Equal(t, 3.0, *byMonth["202404"].delta)
}

func TestService_Load_Memoizacao(t *testing.T) {
	service := newTestService(t)

	first, err := service.Load()
	require.NoError(t, err)

	second, err := service.Load()
	require.NoError(t, err)

	// Mesmo ponteiro: a segunda chamada devolve o cache, sem nova leitura
	assert.Same(t, first, second)
}

func TestService_ReloadEInvalidate(t *testing.T) {
	service := newTestService(t)

	first, err := service.Load()
	require.NoError(t, err)

	reloaded, err := service.Reload()
	require.NoError(t, err)

	// Recarga produz uma nova geração do cache
	assert.NotSame(t, first, reloaded)
	assert.NotEqual(t, first.Generation, reloaded.Generation)

	service.Invalidate()

	third, err := service.Load()
	require.NoError(t, err)
	assert.NotSame(t, reloaded, third)
}

func TestService_Status(t *testing.T) {
	service := newTestService(t)

	status, err := service.Status()
	require.NoError(t, err)

	assert.NotEmpty(t, status.Generation)
	assert.Equal(t, 6, status.PriceRows)
	assert.Equal(t, 3, status.SalesRows)
	assert.Equal(t, 1, status.Quality.DroppedPriceRows)
}

func TestService_Load_ArquivoAusente(t *testing.T) {
	dir := t.TempDir()
	salesPath := writeFixture(t, dir, "sales_all.csv", salesFixture)

	service := NewService(&config.Config{
		Dataset: config.Dataset{
			PriceFile:    filepath.Join(dir, "nao_existe.csv"),
			SalesFile:    salesPath,
			TargetOffice: "HZ",
		},
	})

	_, err := service.Load()
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "price", loadErr.Source)
	assert.Contains(t, loadErr.Path, "nao_existe.csv")
}

func TestService_Load_ColunaAusente(t *testing.T) {
	dir := t.TempDir()
	pricePath := writeFixture(t, dir, "price_all.csv", priceFixture)
	// Tabela de embarques sem a coluna de quantidade
	salesPath := writeFixture(t, dir, "sales_all.csv", "ID_Month_Key,Office,Cai\n202401,HZ,100\n")

	service := NewService(&config.Config{
		Dataset: config.Dataset{
			PriceFile:    pricePath,
			SalesFile:    salesPath,
			TargetOffice: "HZ",
		},
	})

	_, err := service.Load()
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "sales", loadErr.Source)
	assert.True(t, errors.Is(err, ErrMissingColumn))

	// O diagnóstico lista as colunas conhecidas das origens já lidas
	assert.Contains(t, loadErr.KnownColumns["price"], "month")
	assert.Contains(t, loadErr.KnownColumns["sales"], "Office")
	assert.Contains(t, err.Error(), "Shipped_Qty")
}

func TestService_Load_OrigemVazia(t *testing.T) {
	dir := t.TempDir()
	pricePath := writeFixture(t, dir, "price_all.csv", ",month,规格,CAI,产品描述,净价-不含售出\n")
	salesPath := writeFixture(t, dir, "sales_all.csv", salesFixture)

	service := NewService(&config.Config{
		Dataset: config.Dataset{
			PriceFile:    pricePath,
			SalesFile:    salesPath,
			TargetOffice: "HZ",
		},
	})

	_, err := service.Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptySource))
}
