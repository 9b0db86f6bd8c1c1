package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-insights-api/infrastructure/integrator/storefront"
	"github.com/vfg2006/sales-insights-api/infrastructure/integrator/storefront/storefrontclient"
	"github.com/vfg2006/sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/sales-insights-api/infrastructure/source"
	"github.com/vfg2006/sales-insights-api/internal/api"
	"github.com/vfg2006/sales-insights-api/internal/api/handler"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/metrics"
	"github.com/vfg2006/sales-insights-api/internal/scheduler"
	"github.com/vfg2006/sales-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-insights-api/internal/usecases/cleaning"
	"github.com/vfg2006/sales-insights-api/internal/usecases/enriching"
	"github.com/vfg2006/sales-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-insights-api/pkg/log"
)

func main() {
	// Formato dos logs antes de carregar a configuração
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	snapshotRepo := repository.NewKPISnapshotRepository(pgConn)
	salesRecordRepo := repository.NewSalesRecordRepository(pgConn)
	categoryRankingRepo := repository.NewCategoryRankingRepository(pgConn)

	authenticator := authenticating.NewService(cfg.Auth)
	rankingService := ranking.NewCategoryRankingService(categoryRankingRepo)
	pipelineMetrics := metrics.New()

	insightService := insighting.NewService(
		cleaning.NewService(cfg.Pipeline),
		enriching.NewService(),
		aggregating.NewService(cfg.Pipeline),
		pipelineMetrics,
	).WithStorage(snapshotRepo, salesRecordRepo, rankingService)

	storefrontIntegrator := storefront.New(storefrontclient.NewClient(cfg.Storefront))
	mapper := source.NewMapper(cfg.Pipeline.Columns)

	if cfg.Source.Kind == config.SourceKindStorefront {
		if ok, err := storefrontIntegrator.CheckConnection(ctx); !ok {
			logrus.WithError(err).Warn("Não foi possível conectar à API da loja")
		}
	}

	newSource := func() (source.RecordSource, error) {
		return source.New(cfg, mapper, storefrontIntegrator)
	}

	pipelineSyncService := scheduler.NewPipelineSyncService(insightService, newSource, cfg)

	// Inicia o agendador em background
	if err := pipelineSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do pipeline")
	} else {
		logrus.Info("Agendador do pipeline iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		insightService,
		rankingService,
		authenticator,
		pipelineMetrics,
		handler.PipelineUpload{
			Mapper:         mapper,
			DefaultSource:  newSource,
			MaxUploadBytes: cfg.Server.MaxUploadBytes,
		},
		pipelineSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
