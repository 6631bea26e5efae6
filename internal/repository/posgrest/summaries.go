package posgrest

import (
	"context"

	"github.com/jeffleon2/draftea-stream-processor/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SummaryStore struct {
	*repository[models.CustomerSummary]
}

func NewSummaryStore(db *gorm.DB) *SummaryStore {
	return &SummaryStore{repository: New[models.CustomerSummary](db, "customer_id")}
}

// Get returns (nil, nil) for a customer with no summary yet.
func (s *SummaryStore) Get(ctx context.Context, customerID string) (*models.CustomerSummary, error) {
	return s.GetByID(ctx, customerID)
}

func (s *SummaryStore) Put(ctx context.Context, summary *models.CustomerSummary) error {
	return s.Save(ctx, summary)
}

func (s *SummaryStore) HighValueCustomers(ctx context.Context, minAmount decimal.Decimal) ([]models.CustomerSummary, error) {
	return s.GetBy(ctx, "total_amount DESC", "total_amount > ?", minAmount)
}

func (s *SummaryStore) HighRiskCustomers(ctx context.Context, riskThreshold float64) ([]models.CustomerSummary, error) {
	return s.GetBy(ctx, "avg_risk_score DESC", "avg_risk_score > ?", riskThreshold)
}
