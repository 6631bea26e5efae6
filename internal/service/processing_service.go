package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-stream-processor/internal/metrics"
	"github.com/jeffleon2/draftea-stream-processor/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	ErrPersistTransaction = errors.New("persist transaction")
	ErrUpdateSummary      = errors.New("update customer summary")
)

// ProcessingService runs the per-transaction pipeline: log the transaction, update
// the customer summary, score it for fraud and fold it into the metrics window.
// Only the first two steps can fail the transaction; the caller redelivers on error.
type ProcessingService struct {
	Transactions TransactionLog
	Summaries    SummaryUpdater
	Fraud        FraudAnalyzer
	Metrics      MetricsRecorder
	Now          func() time.Time
}

func NewProcessingService(log TransactionLog, summaries SummaryUpdater, fraud FraudAnalyzer, recorder MetricsRecorder) *ProcessingService {
	return &ProcessingService{
		Transactions: log,
		Summaries:    summaries,
		Fraud:        fraud,
		Metrics:      recorder,
		Now:          time.Now,
	}
}

func (s *ProcessingService) Process(ctx context.Context, txn *models.Transaction) error {
	start := time.Now()
	entry := logrus.WithFields(logrus.Fields{
		"transaction_id": txn.TransactionID,
		"customer_id":    txn.CustomerID,
	})

	txn.ProcessedAt = s.Now()
	if err := s.Transactions.Append(ctx, txn); err != nil {
		entry.WithError(err).Error("Error persisting transaction")
		return fmt.Errorf("%w %s: %v", ErrPersistTransaction, txn.TransactionID, err)
	}

	summary, err := s.Summaries.UpdateSummary(ctx, txn)
	if err != nil {
		entry.WithError(err).Error("Error updating customer summary")
		return fmt.Errorf("%w %s: %v", ErrUpdateSummary, txn.CustomerID, err)
	}

	alerts := s.analyze(ctx, entry, txn, summary)
	s.record(entry, txn, alerts)

	metrics.TransactionsProcessed.Inc()
	metrics.ProcessingDuration.Observe(time.Since(start).Seconds())
	entry.WithField("alerts", alerts).Debug("Transaction processed")
	return nil
}

// analyze never fails the transaction: a missed fraud check is logged and skipped.
func (s *ProcessingService) analyze(ctx context.Context, entry *logrus.Entry, txn *models.Transaction, summary *models.CustomerSummary) (alerts int) {
	defer func() {
		if r := recover(); r != nil {
			entry.WithField("panic", r).Error("Fraud analysis panicked")
			alerts = 0
		}
	}()

	n, err := s.Fraud.AnalyzeTransaction(ctx, txn, summary)
	if err != nil {
		entry.WithError(err).Error("Error during fraud analysis")
		return 0
	}
	if n > 0 {
		metrics.FraudAlertsGenerated.Inc()
	}
	return n
}

func (s *ProcessingService) record(entry *logrus.Entry, txn *models.Transaction, alerts int) {
	defer func() {
		if r := recover(); r != nil {
			entry.WithField("panic", r).Error("Metrics update panicked")
		}
	}()

	s.Metrics.RecordAlerts(alerts)
	s.Metrics.Record(txn)
}
