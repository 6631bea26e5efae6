package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-stream-processor/config"
	"github.com/jeffleon2/draftea-stream-processor/internal/database"
	"github.com/jeffleon2/draftea-stream-processor/internal/handler"
	"github.com/jeffleon2/draftea-stream-processor/internal/metrics"
	"github.com/jeffleon2/draftea-stream-processor/internal/publisher"
	"github.com/jeffleon2/draftea-stream-processor/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-stream-processor/internal/rules"
	"github.com/jeffleon2/draftea-stream-processor/internal/service"
	"github.com/jeffleon2/draftea-stream-processor/internal/subscriber"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const serviceName = "stream-processor"

type App struct {
	config *config.Config
	Router *gin.Engine

	Aggregator *service.MetricsAggregator

	db       *gorm.DB
	rules    *rules.Loader
	handler  *handler.TransactionHandler
	consumer *subscriber.KafkaConsumer
	dlq      *publisher.KafkaPublisher
	notifier *publisher.AlertNotifier
}

func (a *App) Initialize(ctx context.Context, cfg *config.Config) error {
	a.config = cfg
	cfg.APP.ConfigureLogger()

	db, err := cfg.DB.GormConnect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.db = db

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	loader, err := rules.NewLoader(cfg.Pipeline.FraudRulesPath)
	if err != nil {
		return fmt.Errorf("failed to load fraud rules: %w", err)
	}
	a.rules = loader

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	retry := cfg.Kafka.GetRetryConfig()

	transactions := posgrest.NewTransactionStore(db)
	summaries := posgrest.NewSummaryStore(db)
	alerts := posgrest.NewAlertStore(db)
	windows := posgrest.NewMetricsStore(db)

	a.notifier = publisher.NewAlertNotifier(brokers, cfg.Kafka.FraudAlertsTopic)
	a.dlq = publisher.NewKafkaPublisher(brokers, []string{cfg.Kafka.DLQTopic}, retry)

	a.Aggregator = service.NewMetricsAggregator(
		windows,
		transactions,
		alerts,
		cfg.Pipeline.MetricsFlushInterval,
		cfg.Pipeline.HourlySummaryInterval,
		cfg.Pipeline.ShutdownFlushTimeout,
	)
	processing := service.NewProcessingService(
		transactions,
		service.NewSummaryService(summaries, transactions),
		service.NewFraudService(alerts, a.notifier, loader),
		a.Aggregator,
	)
	a.handler = handler.Transactions(processing)

	a.consumer = subscriber.NewTransactionConsumer(
		brokers,
		cfg.Kafka.TransactionsTopic,
		cfg.Kafka.ConsumerGroup,
		cfg.Kafka.ConsumerWorkers,
		a.dlq,
		cfg.Kafka.DLQTopic,
		retry,
	)

	metrics.RegisterMetrics()
	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes()

	return nil
}

// Run blocks until ctx is cancelled. The consumer drains its in-flight messages
// first, then the aggregator flushes the partial window, then the HTTP server and
// the Kafka writers are closed.
func (a *App) Run(ctx context.Context) error {
	stopWatch, err := a.rules.Watch()
	if err != nil {
		return fmt.Errorf("failed to watch fraud rules: %w", err)
	}
	defer stopWatch()

	aggCtx, stopAggregator := context.WithCancel(context.WithoutCancel(ctx))
	aggDone := make(chan struct{})
	go func() {
		defer close(aggDone)
		a.Aggregator.Run(aggCtx)
	}()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	serverErr := make(chan error, 1)
	go func() {
		logrus.Infof("HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	consumerCtx, stopConsumer := context.WithCancel(ctx)
	defer stopConsumer()
	go func() {
		select {
		case err := <-serverErr:
			logrus.WithError(err).Error("HTTP server failed")
			stopConsumer()
		case <-consumerCtx.Done():
		}
	}()

	logrus.Infof("Consuming transactions from %s", a.config.Kafka.TransactionsTopic)
	a.consumer.Listen(consumerCtx, a.handler.Handler)

	stopAggregator()
	<-aggDone

	return a.shutdown(server)
}

func (a *App) shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.Pipeline.ShutdownFlushTimeout)
	defer cancel()

	var errs []error
	if err := server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := a.notifier.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close alert notifier: %w", err))
	}
	if err := a.dlq.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close dlq publisher: %w", err))
	}
	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}

	logrus.Info("Stream processor stopped")
	return errors.Join(errs...)
}
