package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	kafkabroker "github.com/Egor213/LogStream/internal/broker/kafka"
	"github.com/Egor213/LogStream/internal/coldstorage"
	"github.com/Egor213/LogStream/internal/config"
	httpv1 "github.com/Egor213/LogStream/internal/controller/http/v1"
	"github.com/Egor213/LogStream/internal/index/pgindex"
	"github.com/Egor213/LogStream/internal/jobstatus"
	"github.com/Egor213/LogStream/internal/metrics"
	"github.com/Egor213/LogStream/internal/notifier"
	"github.com/Egor213/LogStream/internal/repo"
	"github.com/Egor213/LogStream/internal/scheduler"
	"github.com/Egor213/LogStream/internal/service"
	errorsUtils "github.com/Egor213/LogStream/pkg/errors"
	"github.com/Egor213/LogStream/pkg/httpserver"
	"github.com/Egor213/LogStream/pkg/logger"
	"github.com/Egor213/LogStream/pkg/postgres"
)

func Run() {
	// Config

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	// Migrations
	Migrate(cfg.PG.URL)

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer pg.Close()
	log.Info("Connected to DB")

	trManager := manager.Must(trmpgx.NewDefaultFactory(pg.Pool))

	// Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Kafka producers
	alertsProducer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.AlertsTopic,
	})
	defer alertsProducer.Close()

	eventsProducer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.EventsTopic,
	})
	defer eventsProducer.Close()

	// Repos
	repositories := repo.NewRepositories(pg)

	// Search index
	searchIndex := pgindex.New(pg, cfg.Search.IndexPrefix)

	// Cold storage
	archiver, err := coldstorage.NewFSArchiver(cfg.Archive.Dir)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Metrics
	counters := metrics.New()

	// Domain events
	dispatcher := service.NewDispatcher(eventsProducer)

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go dispatcher.Run(appCtx)

	// Services
	deps := service.ServicesDependencies{
		Repos:    repositories,
		Index:    searchIndex,
		Archiver: archiver,
		Notifier: notifier.NewKafkaNotifier(alertsProducer),
		Tx:       trManager,
		Events:   dispatcher,
		Counters: counters,

		ArchiveBatchSize:       cfg.Archive.BatchSize,
		ArchiveDeleteAfterDays: cfg.Archive.DeleteAfterDays,
	}
	services := service.NewServices(deps)

	// Scheduler
	jobs := jobstatus.NewRedisStore(redisClient)
	go scheduler.New(services, jobs).Run(appCtx)

	// HTTP API server
	log.Infof("Starting HTTP server...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	apiHandler := echo.New()
	httpv1.NewRouter(apiHandler, services, counters)
	apiServer := httpserver.New(apiHandler, httpserver.Port(cfg.HTTP.Port))

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-apiServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	cancel()

	err = apiServer.Shutdown()
	if err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}

	err = metricsServer.Shutdown()
	if err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
}
