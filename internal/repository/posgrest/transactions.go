package posgrest

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jeffleon2/draftea-stream-processor/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionStore is the durable, append-only transaction log. Every
// history query used to derive customer aggregates lives here.
type TransactionStore struct {
	*repository[models.Transaction]
}

func NewTransactionStore(db *gorm.DB) *TransactionStore {
	return &TransactionStore{repository: New[models.Transaction](db, "transaction_id")}
}

// Append writes the event to the log; a redelivered transaction id is a no-op.
func (s *TransactionStore) Append(ctx context.Context, txn *models.Transaction) error {
	return s.CreateIfAbsent(ctx, txn)
}

func (s *TransactionStore) CountSince(ctx context.Context, customerID string, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("customer_id = ? AND timestamp >= ?", customerID, since).
		Count(&count).Error
	return count, err
}

// SumCompletedSince sums completed amounts at or after since; no rows sums to zero.
func (s *TransactionStore) SumCompletedSince(ctx context.Context, customerID string, since time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := s.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("SUM(amount)").
		Where("customer_id = ? AND timestamp >= ? AND status = ?", customerID, since, models.StatusCompleted).
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return nullToZero(total), nil
}

// MostFrequentMerchantCategory returns "" for a customer with no categorized history.
func (s *TransactionStore) MostFrequentMerchantCategory(ctx context.Context, customerID string) (string, error) {
	return s.mostFrequent(ctx, customerID, "merchant_category")
}

// MostFrequentLocation ranks source locations by use; ties go to the location seen first.
func (s *TransactionStore) MostFrequentLocation(ctx context.Context, customerID string) (string, error) {
	return s.mostFrequent(ctx, customerID, "source_location")
}

func (s *TransactionStore) mostFrequent(ctx context.Context, customerID, column string) (string, error) {
	var value sql.NullString
	err := s.db.WithContext(ctx).Model(&models.Transaction{}).
		Select(column).
		Where("customer_id = ? AND "+column+" IS NOT NULL AND "+column+" <> ''", customerID).
		Group(column).
		Order("COUNT(*) DESC, MIN(timestamp) ASC").
		Limit(1).
		Row().Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value.String, nil
}

// AvgRiskScore averages the scored history; nil when no event carried a score.
func (s *TransactionStore) AvgRiskScore(ctx context.Context, customerID string) (*float64, error) {
	var avg sql.NullFloat64
	err := s.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("AVG(risk_score)").
		Where("customer_id = ?", customerID).
		Row().Scan(&avg)
	if err != nil || !avg.Valid {
		return nil, err
	}
	return &avg.Float64, nil
}

func (s *TransactionStore) CountAllSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("timestamp >= ?", since).
		Count(&count).Error
	return count, err
}

func (s *TransactionStore) SumAllCompletedSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := s.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("SUM(amount)").
		Where("timestamp >= ? AND status = ?", since, models.StatusCompleted).
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return nullToZero(total), nil
}

// RecentByCustomer lists a customer's log newest first.
func (s *TransactionStore) RecentByCustomer(ctx context.Context, customerID string, limit int) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&txns).Error
	return txns, err
}

func nullToZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
