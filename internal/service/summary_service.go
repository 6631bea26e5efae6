package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-stream-processor/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	shortWindow = time.Hour
	longWindow  = 24 * time.Hour
)

// SummaryService maintains the rolling per-customer profile. Derived fields are
// re-read from the transaction history on every update so they always reflect
// the durable log, at the cost of several queries per event.
type SummaryService struct {
	Summaries SummaryRepo
	History   TransactionHistory
	Now       func() time.Time

	locks customerLocks
}

func NewSummaryService(summaries SummaryRepo, history TransactionHistory) *SummaryService {
	return &SummaryService{
		Summaries: summaries,
		History:   history,
		Now:       time.Now,
	}
}

// UpdateSummary folds txn into the customer's summary and persists it. A customer
// without a summary gets a fresh one. The transaction must already be in the log.
func (s *SummaryService) UpdateSummary(ctx context.Context, txn *models.Transaction) (*models.CustomerSummary, error) {
	unlock := s.locks.lock(txn.CustomerID)
	defer unlock()

	summary, err := s.Summaries.Get(ctx, txn.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("load summary for customer %s: %w", txn.CustomerID, err)
	}
	if summary == nil {
		summary = models.NewCustomerSummary(txn.CustomerID)
	}

	summary.TotalTransactions++
	if txn.IsCompleted() {
		summary.TotalAmount = summary.TotalAmount.Add(txn.Amount)
		summary.AvgAmount = averageAmount(summary.TotalAmount, summary.TotalTransactions)
	}

	if summary.LastTransactionTime.IsZero() || txn.Timestamp.After(summary.LastTransactionTime) {
		summary.LastTransactionTime = txn.Timestamp
	}

	if err := s.deriveFromHistory(ctx, summary); err != nil {
		return nil, err
	}

	now := s.Now()
	if err := s.refreshWindows(ctx, summary, now); err != nil {
		return nil, err
	}
	summary.UpdatedAt = now

	if err := s.Summaries.Put(ctx, summary); err != nil {
		return nil, fmt.Errorf("save summary for customer %s: %w", txn.CustomerID, err)
	}

	logrus.WithFields(logrus.Fields{
		"customer_id":        summary.CustomerID,
		"total_transactions": summary.TotalTransactions,
		"transactions_1h":    summary.TransactionsLast1Hour,
	}).Debug("Customer summary updated")

	return summary, nil
}

func (s *SummaryService) deriveFromHistory(ctx context.Context, summary *models.CustomerSummary) error {
	id := summary.CustomerID

	category, err := s.History.MostFrequentMerchantCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("merchant category for customer %s: %w", id, err)
	}
	summary.MostFrequentMerchantCategory = category

	location, err := s.History.MostFrequentLocation(ctx, id)
	if err != nil {
		return fmt.Errorf("preferred location for customer %s: %w", id, err)
	}
	summary.PreferredLocation = location

	avgRisk, err := s.History.AvgRiskScore(ctx, id)
	if err != nil {
		return fmt.Errorf("average risk for customer %s: %w", id, err)
	}
	summary.AvgRiskScore = avgRisk

	return nil
}

func (s *SummaryService) refreshWindows(ctx context.Context, summary *models.CustomerSummary, now time.Time) error {
	id := summary.CustomerID
	var err error

	if summary.TransactionsLast1Hour, err = s.History.CountSince(ctx, id, now.Add(-shortWindow)); err != nil {
		return fmt.Errorf("1h count for customer %s: %w", id, err)
	}
	if summary.AmountLast1Hour, err = s.History.SumCompletedSince(ctx, id, now.Add(-shortWindow)); err != nil {
		return fmt.Errorf("1h amount for customer %s: %w", id, err)
	}
	if summary.TransactionsLast24Hours, err = s.History.CountSince(ctx, id, now.Add(-longWindow)); err != nil {
		return fmt.Errorf("24h count for customer %s: %w", id, err)
	}
	if summary.AmountLast24Hours, err = s.History.SumCompletedSince(ctx, id, now.Add(-longWindow)); err != nil {
		return fmt.Errorf("24h amount for customer %s: %w", id, err)
	}
	return nil
}

// averageAmount is total/count rounded half-up to cents.
func averageAmount(total decimal.Decimal, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.DivRound(decimal.NewFromInt(count), 2)
}
