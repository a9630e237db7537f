package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-analytics-api/infrastructure/datasource"
	"github.com/vfg2006/price-analytics-api/internal/api"
	"github.com/vfg2006/price-analytics-api/internal/config"
	"github.com/vfg2006/price-analytics-api/internal/scheduler"
	"github.com/vfg2006/price-analytics-api/internal/usecases/analyzing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := datasource.NewService(cfg)

	// Carga antecipada: uma origem ausente ou malformada derruba o
	// processo na subida, em vez de servir um painel parcial.
	if _, err := loader.Load(); err != nil {
		logrus.WithError(err).Fatal("Erro na carga inicial do dataset")
	}

	analyzerService := analyzing.NewService(cfg, loader)

	refreshService := scheduler.NewDatasetRefreshService(loader, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o watcher do dataset")
	} else {
		logrus.Info("Watcher do dataset iniciado com sucesso")
	}

	server, err := api.New(cfg, analyzerService, loader)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
