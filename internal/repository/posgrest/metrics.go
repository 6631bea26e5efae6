package posgrest

import (
	"context"
	"time"

	"github.com/jeffleon2/draftea-stream-processor/internal/models"
	"gorm.io/gorm"
)

type MetricsStore struct {
	*repository[models.MetricsWindow]
}

func NewMetricsStore(db *gorm.DB) *MetricsStore {
	return &MetricsStore{repository: New[models.MetricsWindow](db, "id")}
}

func (s *MetricsStore) SaveWindow(ctx context.Context, window *models.MetricsWindow) error {
	return s.Create(ctx, window)
}

// Range returns windows whose start falls in [start, end], oldest first.
func (s *MetricsStore) Range(ctx context.Context, start, end time.Time) ([]models.MetricsWindow, error) {
	return s.GetBy(ctx, "window_start ASC", "window_start >= ? AND window_start <= ?", start, end)
}
