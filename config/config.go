package config

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		_ = godotenv.Load(".env")
	}

	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	if err := Config.Pipeline.Validate(); err != nil {
		return nil, err
	}
	return &Config, nil
}

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	APP
	DB
	Kafka
	Pipeline
}

type APP struct {
	PORT      string `env:"APP_PORT" envDefault:"8090"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

type DB struct {
	HOST         string `env:"DB_HOST" envDefault:"localhost"`
	USER         string `env:"DB_USER"`
	PASSWORD     string `env:"DB_PASSWORD"`
	NAME         string `env:"DB_NAME" envDefault:"banking"`
	PORT         string `env:"DB_PORT" envDefault:"5432"`
	SSLMODE      string `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
}

type Kafka struct {
	Brokers           string        `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConsumerGroup     string        `env:"KAFKA_CONSUMER_GROUP_ID" envDefault:"stream-processor"`
	TransactionsTopic string        `env:"KAFKA_TRANSACTIONS_TOPIC" envDefault:"banking-transactions"`
	FraudAlertsTopic  string        `env:"KAFKA_FRAUD_ALERTS_TOPIC" envDefault:"fraud-alerts"`
	DLQTopic          string        `env:"KAFKA_DLQ_TOPIC" envDefault:"banking-transactions.dlq"`
	ConsumerWorkers   int           `env:"KAFKA_CONSUMER_WORKERS" envDefault:"4"`
	RetryMaxAttempts  int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay    time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay     time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter       bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type Pipeline struct {
	MetricsFlushInterval  time.Duration `env:"METRICS_FLUSH_INTERVAL" envDefault:"1m"`
	HourlySummaryInterval time.Duration `env:"HOURLY_SUMMARY_INTERVAL" envDefault:"1h"`
	ShutdownFlushTimeout  time.Duration `env:"SHUTDOWN_FLUSH_TIMEOUT" envDefault:"10s"`
	FraudRulesPath        string        `env:"FRAUD_RULES_PATH"`
}

// Validate rejects intervals the aggregator timers cannot run with.
func (p Pipeline) Validate() error {
	if p.MetricsFlushInterval <= 0 {
		return fmt.Errorf("%w: METRICS_FLUSH_INTERVAL must be positive, got %s", ErrInvalidConfig, p.MetricsFlushInterval)
	}
	if p.HourlySummaryInterval <= 0 {
		return fmt.Errorf("%w: HOURLY_SUMMARY_INTERVAL must be positive, got %s", ErrInvalidConfig, p.HourlySummaryInterval)
	}
	return nil
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

// Backoff is the exponential delay before retry number attempt+1, capped at MaxDelay
// and spread by +/-15% when Jitter is set.
func (r RetryConfig) Backoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * r.BaseDelay

	if delay > r.MaxDelay {
		delay = r.MaxDelay
	}

	if r.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}

// ConfigureLogger applies the level and formatter to the package-level logrus logger.
func (a APP) ConfigureLogger() {
	level, err := logrus.ParseLevel(a.LogLevel)
	if err != nil {
		logrus.Warnf("Unknown log level %q, falling back to info", a.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if a.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
