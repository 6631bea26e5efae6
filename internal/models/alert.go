package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type FraudReason string
type AlertStatus string

const (
	ReasonHighAmount           FraudReason = "HIGH_AMOUNT"
	ReasonFrequentTransactions FraudReason = "FREQUENT_TRANSACTIONS"
	ReasonUnusualLocation      FraudReason = "UNUSUAL_LOCATION"
	ReasonHighRiskScore        FraudReason = "HIGH_RISK_SCORE"
	ReasonVelocityCheckFailed  FraudReason = "VELOCITY_CHECK_FAILED"
	ReasonSuspiciousPattern    FraudReason = "SUSPICIOUS_PATTERN"

	AlertStatusNew           AlertStatus = "NEW"
	AlertStatusInvestigating AlertStatus = "INVESTIGATING"
	AlertStatusResolved      AlertStatus = "RESOLVED"
	AlertStatusFalsePositive AlertStatus = "FALSE_POSITIVE"
)

type FraudAlert struct {
	AlertID       string          `json:"alertId" gorm:"column:alert_id;primaryKey"`
	CustomerID    string          `json:"customerId" gorm:"column:customer_id;index;not null"`
	TransactionID string          `json:"transactionId" gorm:"column:transaction_id"`
	Reason        FraudReason     `json:"reason" gorm:"column:reason"`
	Description   string          `json:"description" gorm:"column:description;size:1000"`
	Severity      float64         `json:"severity" gorm:"column:severity"`
	Amount        decimal.Decimal `json:"amount" gorm:"column:amount;type:numeric(15,2)"`
	Timestamp     time.Time       `json:"timestamp" gorm:"column:timestamp;index;not null"`
	Status        AlertStatus     `json:"status" gorm:"column:status;index"`
	CreatedAt     time.Time       `json:"createdAt" gorm:"column:created_at"`
}

func (FraudAlert) TableName() string {
	return "fraud_alerts"
}

// MarshalJSON renders timestamps in the zone-less layout the notification service parses.
func (a FraudAlert) MarshalJSON() ([]byte, error) {
	type alias FraudAlert
	return json.Marshal(struct {
		alias
		Timestamp string `json:"timestamp"`
		CreatedAt string `json:"createdAt"`
	}{
		alias:     alias(a),
		Timestamp: a.Timestamp.Format(LocalTimeLayout),
		CreatedAt: a.CreatedAt.Format(LocalTimeLayout),
	})
}
