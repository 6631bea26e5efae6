package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetricsWindow is an immutable snapshot of one flushed aggregation window.
type MetricsWindow struct {
	ID                     string           `json:"id" gorm:"column:id;primaryKey"`
	WindowStart            time.Time        `json:"windowStart" gorm:"column:window_start;index"`
	WindowEnd              time.Time        `json:"windowEnd" gorm:"column:window_end"`
	TotalTransactions      int64            `json:"totalTransactions" gorm:"column:total_transactions"`
	TotalAmount            decimal.Decimal  `json:"totalAmount" gorm:"column:total_amount;type:numeric(15,2)"`
	AvgAmount              decimal.Decimal  `json:"avgAmount" gorm:"column:avg_amount;type:numeric(15,2)"`
	TransactionsByType     map[string]int64 `json:"transactionsByType" gorm:"column:transactions_by_type;type:jsonb;serializer:json"`
	TransactionsByStatus   map[string]int64 `json:"transactionsByStatus" gorm:"column:transactions_by_status;type:jsonb;serializer:json"`
	TransactionsByLocation map[string]int64 `json:"transactionsByLocation" gorm:"column:transactions_by_location;type:jsonb;serializer:json"`
	AlertsGenerated        int64            `json:"alertsGenerated" gorm:"column:alerts_generated"`
	AvgRiskScore           float64          `json:"avgRiskScore" gorm:"column:avg_risk_score"`
	CreatedAt              time.Time        `json:"createdAt" gorm:"column:created_at"`
}

func (MetricsWindow) TableName() string {
	return "transaction_metrics"
}
