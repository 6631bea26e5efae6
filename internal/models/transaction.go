package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidTransaction = errors.New("invalid transaction")

type TransactionType string
type TransactionStatus string

const (
	TypePayment      TransactionType = "PAYMENT"
	TypeTransfer     TransactionType = "TRANSFER"
	TypeWithdrawal   TransactionType = "WITHDRAWAL"
	TypeDeposit      TransactionType = "DEPOSIT"
	TypeRefund       TransactionType = "REFUND"
	TypeSubscription TransactionType = "SUBSCRIPTION"
	TypeInvestment   TransactionType = "INVESTMENT"

	StatusPending    TransactionStatus = "PENDING"
	StatusCompleted  TransactionStatus = "COMPLETED"
	StatusFailed     TransactionStatus = "FAILED"
	StatusCancelled  TransactionStatus = "CANCELLED"
	StatusProcessing TransactionStatus = "PROCESSING"
)

// LocalTimeLayout is the zone-less timestamp layout used by the upstream producer
// and the notification service.
const LocalTimeLayout = "2006-01-02T15:04:05"

var timestampLayouts = []string{
	time.RFC3339Nano,
	LocalTimeLayout,
	"2006-01-02T15:04:05.999999999",
}

// Transaction is the inbound event and also the row appended to the durable transaction log.
type Transaction struct {
	TransactionID    string            `json:"transactionId" gorm:"column:transaction_id;primaryKey"`
	CustomerID       string            `json:"customerId" gorm:"column:customer_id;index;not null"`
	AccountNumber    string            `json:"accountNumber" gorm:"column:account_number"`
	Type             TransactionType   `json:"type" gorm:"column:type"`
	Amount           decimal.Decimal   `json:"amount" gorm:"column:amount;type:numeric(15,2)"`
	Currency         string            `json:"currency" gorm:"column:currency"`
	MerchantName     string            `json:"merchantName" gorm:"column:merchant_name"`
	MerchantCategory string            `json:"merchantCategory" gorm:"column:merchant_category;index"`
	Description      string            `json:"description,omitempty" gorm:"column:description"`
	Status           TransactionStatus `json:"status" gorm:"column:status"`
	SourceLocation   string            `json:"sourceLocation" gorm:"column:source_location"`
	Timestamp        time.Time         `json:"timestamp" gorm:"column:timestamp;index;not null"`
	IPAddress        string            `json:"ipAddress,omitempty" gorm:"column:ip_address"`
	DeviceID         string            `json:"deviceId,omitempty" gorm:"column:device_id"`
	IsInternational  bool              `json:"isInternational" gorm:"column:is_international"`
	RiskScore        *float64          `json:"riskScore,omitempty" gorm:"column:risk_score"`
	ProcessedAt      time.Time         `json:"-" gorm:"column:processed_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	type alias Transaction
	aux := struct {
		*alias
		Timestamp string `json:"timestamp"`
	}{alias: (*alias)(t)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Timestamp == "" {
		return nil
	}

	ts, err := ParseTimestamp(aux.Timestamp)
	if err != nil {
		return err
	}
	t.Timestamp = ts
	return nil
}

// ParseTimestamp accepts RFC 3339 timestamps and the zone-less producer layout (read as UTC).
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp %q", value)
}

func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.TransactionID) == "" {
		return fmt.Errorf("%w: transaction id is required", ErrInvalidTransaction)
	}
	if strings.TrimSpace(t.CustomerID) == "" {
		return fmt.Errorf("%w: customer id is required", ErrInvalidTransaction)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidTransaction)
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: invalid transaction type: %s", ErrInvalidTransaction, t.Type)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: invalid transaction status: %s", ErrInvalidTransaction, t.Status)
	}
	if t.Timestamp.IsZero() {
		return fmt.Errorf("%w: timestamp is required", ErrInvalidTransaction)
	}
	if t.RiskScore != nil && (*t.RiskScore < 0 || *t.RiskScore > 1) {
		return fmt.Errorf("%w: risk score out of range: %f", ErrInvalidTransaction, *t.RiskScore)
	}
	return nil
}

func (t *Transaction) IsCompleted() bool {
	return t.Status == StatusCompleted
}

func (tt *TransactionType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*tt = TransactionType(strings.ToUpper(strings.TrimSpace(raw)))
	if !tt.IsValid() {
		return fmt.Errorf("%w: invalid transaction type: %s", ErrInvalidTransaction, raw)
	}
	return nil
}

func (tt TransactionType) IsValid() bool {
	switch tt {
	case TypePayment, TypeTransfer, TypeWithdrawal, TypeDeposit, TypeRefund, TypeSubscription, TypeInvestment:
		return true
	default:
		return false
	}
}

func (s *TransactionStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = TransactionStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return fmt.Errorf("%w: invalid transaction status: %s", ErrInvalidTransaction, raw)
	}
	return nil
}

func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusCancelled, StatusProcessing:
		return true
	default:
		return false
	}
}
