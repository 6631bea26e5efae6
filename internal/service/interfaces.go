package service

import (
	"context"
	"time"

	"github.com/jeffleon2/draftea-stream-processor/internal/models"
	"github.com/jeffleon2/draftea-stream-processor/internal/rules"
	"github.com/shopspring/decimal"
)

// TransactionLog is the append-only durable transaction log.
type TransactionLog interface {
	Append(ctx context.Context, txn *models.Transaction) error
}

// TransactionHistory answers the per-customer history queries the summary is derived from.
type TransactionHistory interface {
	CountSince(ctx context.Context, customerID string, since time.Time) (int64, error)
	SumCompletedSince(ctx context.Context, customerID string, since time.Time) (decimal.Decimal, error)
	MostFrequentMerchantCategory(ctx context.Context, customerID string) (string, error)
	MostFrequentLocation(ctx context.Context, customerID string) (string, error)
	AvgRiskScore(ctx context.Context, customerID string) (*float64, error)
}

// HistoryTotals answers the store-wide totals used by the hourly cross-check.
type HistoryTotals interface {
	CountAllSince(ctx context.Context, since time.Time) (int64, error)
	SumAllCompletedSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
}

type SummaryRepo interface {
	Get(ctx context.Context, customerID string) (*models.CustomerSummary, error)
	Put(ctx context.Context, summary *models.CustomerSummary) error
}

type AlertRepo interface {
	SaveAll(ctx context.Context, alerts []models.FraudAlert) error
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

type MetricsRepo interface {
	SaveWindow(ctx context.Context, window *models.MetricsWindow) error
}

// Notifier hands a fraud alert to the notification subsystem. Delivery is best effort.
type Notifier interface {
	Notify(ctx context.Context, alert models.FraudAlert) error
}

// ThresholdSource yields the fraud thresholds currently in effect.
type ThresholdSource interface {
	Current() rules.Thresholds
}

type SummaryUpdater interface {
	UpdateSummary(ctx context.Context, txn *models.Transaction) (*models.CustomerSummary, error)
}

type FraudAnalyzer interface {
	AnalyzeTransaction(ctx context.Context, txn *models.Transaction, summary *models.CustomerSummary) (int, error)
}

type MetricsRecorder interface {
	Record(txn *models.Transaction)
	RecordAlerts(n int)
}
