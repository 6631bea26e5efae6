package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-stream-processor/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_UnmarshalProducerPayload(t *testing.T) {
	raw := []byte(`{
		"transactionId": "TXN-1",
		"customerId": "CUST-1",
		"accountNumber": "ACC-9",
		"type": "payment",
		"amount": 1250.50,
		"currency": "MAD",
		"merchantName": "Marjane",
		"merchantCategory": "GROCERY",
		"status": "Completed",
		"sourceLocation": "Casablanca",
		"timestamp": "2025-03-14T23:15:00",
		"ipAddress": "10.0.0.1",
		"deviceId": "dev-1",
		"isInternational": true,
		"riskScore": 0.42
	}`)

	var txn models.Transaction
	require.NoError(t, json.Unmarshal(raw, &txn))

	assert.Equal(t, "TXN-1", txn.TransactionID)
	assert.Equal(t, models.TypePayment, txn.Type)
	assert.Equal(t, models.StatusCompleted, txn.Status)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("1250.50")))
	assert.Equal(t, time.Date(2025, 3, 14, 23, 15, 0, 0, time.UTC), txn.Timestamp)
	require.NotNil(t, txn.RiskScore)
	assert.InDelta(t, 0.42, *txn.RiskScore, 1e-9)
	assert.True(t, txn.IsInternational)
	assert.NoError(t, txn.Validate())
}

func TestTransaction_UnmarshalRFC3339Timestamp(t *testing.T) {
	raw := []byte(`{"transactionId":"T","customerId":"C","type":"DEPOSIT","amount":"10","status":"PENDING","timestamp":"2025-03-14T10:00:00+02:00"}`)

	var txn models.Transaction
	require.NoError(t, json.Unmarshal(raw, &txn))

	assert.True(t, txn.Timestamp.Equal(time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)))
	assert.Nil(t, txn.RiskScore)
}

func TestTransaction_UnmarshalRejectsUnknownEnum(t *testing.T) {
	raw := []byte(`{"transactionId":"T","customerId":"C","type":"BRIBE","amount":10,"status":"PENDING"}`)

	var txn models.Transaction
	err := json.Unmarshal(raw, &txn)

	assert.ErrorIs(t, err, models.ErrInvalidTransaction)
}

func TestTransaction_UnmarshalRejectsBadTimestamp(t *testing.T) {
	raw := []byte(`{"transactionId":"T","customerId":"C","type":"DEPOSIT","amount":10,"status":"PENDING","timestamp":"yesterday"}`)

	var txn models.Transaction
	assert.Error(t, json.Unmarshal(raw, &txn))
}

func TestTransaction_Validate(t *testing.T) {
	valid := func() models.Transaction {
		return models.Transaction{
			TransactionID: "T",
			CustomerID:    "C",
			Type:          models.TypeTransfer,
			Status:        models.StatusPending,
			Amount:        decimal.NewFromInt(5),
			Timestamp:     time.Now(),
		}
	}
	risk := 1.5

	cases := map[string]func(*models.Transaction){
		"missing transaction id": func(t *models.Transaction) { t.TransactionID = " " },
		"missing customer id":    func(t *models.Transaction) { t.CustomerID = "" },
		"negative amount":        func(t *models.Transaction) { t.Amount = decimal.NewFromInt(-1) },
		"unknown type":           func(t *models.Transaction) { t.Type = "GIFT" },
		"unknown status":         func(t *models.Transaction) { t.Status = "LOST" },
		"zero timestamp":         func(t *models.Transaction) { t.Timestamp = time.Time{} },
		"risk out of range":      func(t *models.Transaction) { t.RiskScore = &risk },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			txn := valid()
			mutate(&txn)
			assert.ErrorIs(t, txn.Validate(), models.ErrInvalidTransaction)
		})
	}

	txn := valid()
	assert.NoError(t, txn.Validate())
}

func TestFraudAlert_MarshalUsesLocalTimeLayout(t *testing.T) {
	alert := models.FraudAlert{
		AlertID:    "ALERT-1234ABCD",
		CustomerID: "C",
		Reason:     models.ReasonHighAmount,
		Severity:   0.7,
		Amount:     decimal.RequireFromString("10000.01"),
		Timestamp:  time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		CreatedAt:  time.Date(2025, 1, 2, 3, 4, 6, 0, time.UTC),
		Status:     models.AlertStatusNew,
	}

	data, err := json.Marshal(alert)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2025-01-02T03:04:05", decoded["timestamp"])
	assert.Equal(t, "2025-01-02T03:04:06", decoded["createdAt"])
	assert.Equal(t, "HIGH_AMOUNT", decoded["reason"])
	assert.Equal(t, "NEW", decoded["status"])
	assert.Equal(t, "10000.01", decoded["amount"])
}
