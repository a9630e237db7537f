// Package scheduler contém o watcher que mantém o cache do dataset em dia
// com os arquivos de origem.
package scheduler

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-analytics-api/infrastructure/datasource"
	"github.com/vfg2006/price-analytics-api/internal/config"
)

type DatasetRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetRefreshService observa periodicamente a modificação dos arquivos
// de origem e recarrega o cache quando os carimbos divergem dos registrados
// na última carga. É a invalidação explícita do cache memoizado: sem ela o
// dataset vive pelo processo inteiro.
type DatasetRefreshService struct {
	scheduler *gocron.Scheduler
	loader    datasource.Loader
	sources   []string
	config    DatasetRefreshConfig

	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
}

func NewDatasetRefreshService(loader datasource.Loader, cfg *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: cfg.DatasetRefresh.CronSchedule,
		Enabled:      cfg.DatasetRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do watcher do dataset carregada")

	return &DatasetRefreshService{
		scheduler: scheduler,
		loader:    loader,
		sources:   []string{cfg.Dataset.PriceFile, cfg.Dataset.SalesFile},
		config:    refreshConfig,
	}
}

func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Watcher do dataset desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando watcher do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshIfStale(); err != nil {
			logrus.WithError(err).Error("Erro na verificação de mudança das origens")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o watcher do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o watcher quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando watcher do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshIfStale compara os carimbos de modificação atuais dos arquivos de
// origem com os registrados na carga corrente e recarrega quando divergem.
func (s *DatasetRefreshService) RefreshIfStale() error {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	if s.refreshRunning {
		logrus.Warn("Verificação de origens já está em execução")
		return nil
	}

	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	defer func() {
		s.refreshRunning = false
		s.lastRefreshCompletedAt = time.Now()
	}()

	dataset, err := s.loader.Load()
	if err != nil {
		return err
	}

	if !s.stale(dataset.SourceStamps) {
		return nil
	}

	logrus.WithField("generation", dataset.Generation).Info("Origens modificadas, recarregando dataset")

	reloaded, err := s.loader.Reload()
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"previous_generation": dataset.Generation,
		"generation":          reloaded.Generation,
		"price_rows":          len(reloaded.Price),
		"sales_rows":          len(reloaded.Sales),
	}).Info("Dataset recarregado pelo watcher")

	return nil
}

// stale indica se algum arquivo de origem mudou desde a carga registrada.
func (s *DatasetRefreshService) stale(stamps map[string]time.Time) bool {
	for _, source := range s.sources {
		info, err := os.Stat(source)
		if err != nil {
			// Arquivo sumiu ou inacessível: força a recarga para que a
			// falha apareça como erro de carga, não como dado velho.
			return true
		}

		stamp, ok := stamps[source]
		if !ok || !info.ModTime().Equal(stamp) {
			return true
		}
	}
	return false
}
