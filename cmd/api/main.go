package main

import (
	"context"
	"net/http"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-sync-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-sync-api/infrastructure/repository"
	"github.com/vfg2006/ad-sync-api/internal/api"
	"github.com/vfg2006/ad-sync-api/internal/config"
	"github.com/vfg2006/ad-sync-api/internal/scheduler"
	"github.com/vfg2006/ad-sync-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-sync-api/internal/usecases/syncing"
	"golang.org/x/time/rate"
)

func main() {
	// Inicializa configuração de logs
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
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.EnsureSchema(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar schema do espelho")
		}
		logrus.Info("Schema do espelho aplicado com sucesso")
	}

	accountRepo := repository.NewAccountRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn, cfg.Sync.BatchSize)
	adSetRepo := repository.NewAdSetRepository(pgConn, cfg.Sync.BatchSize)
	adRepo := repository.NewAdRepository(pgConn, cfg.Sync.BatchSize)
	metricRepo := repository.NewMetricRepository(pgConn, cfg.Sync.BatchSize)
	chunkRepo := repository.NewSyncJobChunkRepository(pgConn)

	authenticator := authenticating.NewService(cfg.Auth)

	httpClient := &http.Client{Timeout: cfg.Meta.RequestTimeout}

	// Um único limiter por processo: todos os chunks dividem a cota do app
	limiter := rate.NewLimiter(rate.Every(cfg.Sync.PageInterval), 1)

	fetcher := metaclient.NewFetcher(httpClient, cfg.Sync.MaxRetries, cfg.Sync.BackoffBase)
	pager := metaclient.NewPager(fetcher, limiter, cfg.Sync.MaxPages)
	urls := metaclient.NewURLBuilder(cfg.Meta.URL, cfg.Sync.PageSize)
	metaIntegrator := meta.New(pager, urls)

	tokenExchanger := metaclient.NewTokenExchanger(httpClient, cfg.Meta.URL, cfg.Meta.AppID, cfg.Meta.AppSecret)

	structureReconciler := syncing.NewStructureReconciler(metaIntegrator, campaignRepo, adSetRepo, adRepo)
	metricsAggregator := syncing.NewMetricsAggregator(
		metaIntegrator,
		campaignRepo,
		adSetRepo,
		adRepo,
		metricRepo,
		cfg.Sync.ConversionValueMultiplier,
	)

	chunkRunner := syncing.NewChunkRunner(
		accountRepo,
		chunkRepo,
		structureReconciler,
		metricsAggregator,
		tokenExchanger,
		cfg.Sync,
	)

	chunkDispatchService := scheduler.NewChunkDispatchService(
		accountRepo,
		campaignRepo,
		adSetRepo,
		adRepo,
		chunkRunner,
		cfg,
	)

	if err := chunkDispatchService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de despacho de chunks")
	} else {
		logrus.Info("Agendador de despacho de chunks iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pgConn,
		authenticator,
		chunkRunner,
		chunkDispatchService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
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
