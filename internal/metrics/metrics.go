package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultRetried = "retried"
	ResultDLQ     = "dlq"
)

var (
	TransactionsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "transactions_processed_total",
			Help: "Total number of transactions that completed the processing pipeline",
		},
	)

	FraudAlertsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fraud_alerts_generated_total",
			Help: "Total number of transactions that raised at least one fraud alert",
		},
	)

	FraudAlertsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fraud_alerts_created_total",
			Help: "Total number of fraud alerts persisted, by reason",
		},
		[]string{"reason"},
	)

	AlertsForwarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alerts_forwarded_total",
			Help: "Total number of high severity alerts handed to the notification topic",
		},
		[]string{"result"},
	)

	ProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "transaction_processing_duration_seconds",
			Help:    "Time spent processing a single transaction",
			Buckets: prometheus.DefBuckets,
		},
	)

	MetricsWindowsFlushed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "metrics_windows_flushed_total",
			Help: "Total number of metrics windows persisted",
		},
	)

	ConsumerMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "consumer_messages_total",
			Help: "Total number of transaction messages consumed, by outcome",
		},
		[]string{"result"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		TransactionsProcessed,
		FraudAlertsGenerated,
		FraudAlertsCreated,
		AlertsForwarded,
		ProcessingDuration,
		MetricsWindowsFlushed,
		ConsumerMessages,
	)
}
