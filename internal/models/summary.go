package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerSummary is the rolling behavioral profile kept per customer.
type CustomerSummary struct {
	CustomerID                   string          `json:"customerId" gorm:"column:customer_id;primaryKey"`
	TotalTransactions            int64           `json:"totalTransactions" gorm:"column:total_transactions;not null"`
	TotalAmount                  decimal.Decimal `json:"totalAmount" gorm:"column:total_amount;type:numeric(15,2);not null"`
	AvgAmount                    decimal.Decimal `json:"avgAmount" gorm:"column:avg_amount;type:numeric(15,2);not null"`
	MostFrequentMerchantCategory string          `json:"mostFrequentMerchantCategory,omitempty" gorm:"column:most_frequent_merchant_category"`
	PreferredLocation            string          `json:"preferredLocation,omitempty" gorm:"column:preferred_location"`
	LastTransactionTime          time.Time       `json:"lastTransactionTime" gorm:"column:last_transaction_time"`
	AvgRiskScore                 *float64        `json:"avgRiskScore,omitempty" gorm:"column:avg_risk_score"`
	TransactionsLast1Hour        int64           `json:"transactionsLast1Hour" gorm:"column:transactions_last_1_hour;not null"`
	AmountLast1Hour              decimal.Decimal `json:"amountLast1Hour" gorm:"column:amount_last_1_hour;type:numeric(15,2);not null"`
	TransactionsLast24Hours      int64           `json:"transactionsLast24Hours" gorm:"column:transactions_last_24_hours;not null"`
	AmountLast24Hours            decimal.Decimal `json:"amountLast24Hours" gorm:"column:amount_last_24_hours;type:numeric(15,2);not null"`
	UpdatedAt                    time.Time       `json:"updatedAt" gorm:"column:updated_at;not null"`
}

func (CustomerSummary) TableName() string {
	return "customer_summaries"
}

func NewCustomerSummary(customerID string) *CustomerSummary {
	return &CustomerSummary{
		CustomerID:        customerID,
		TotalAmount:       decimal.Zero,
		AvgAmount:         decimal.Zero,
		AmountLast1Hour:   decimal.Zero,
		AmountLast24Hours: decimal.Zero,
	}
}

func (s *CustomerSummary) HasPreferredLocation() bool {
	return s != nil && s.PreferredLocation != ""
}
