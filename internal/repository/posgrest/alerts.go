package posgrest

import (
	"context"
	"time"

	"github.com/jeffleon2/draftea-stream-processor/internal/models"
	"gorm.io/gorm"
)

type AlertStore struct {
	*repository[models.FraudAlert]
}

func NewAlertStore(db *gorm.DB) *AlertStore {
	return &AlertStore{repository: New[models.FraudAlert](db, "alert_id")}
}

func (s *AlertStore) SaveAll(ctx context.Context, alerts []models.FraudAlert) error {
	return s.CreateBatch(ctx, alerts)
}

func (s *AlertStore) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.FraudAlert{}).
		Where("timestamp >= ?", since).
		Count(&count).Error
	return count, err
}

func (s *AlertStore) ListByCustomer(ctx context.Context, customerID string) ([]models.FraudAlert, error) {
	return s.GetBy(ctx, "timestamp DESC", "customer_id = ?", customerID)
}

func (s *AlertStore) ListByStatus(ctx context.Context, status models.AlertStatus) ([]models.FraudAlert, error) {
	return s.GetBy(ctx, "timestamp DESC", "status = ?", status)
}
