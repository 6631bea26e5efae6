package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jeffleon2/draftea-stream-processor/internal/models"
	"github.com/sirupsen/logrus"
)

type TransactionProcessorIn interface {
	Process(context.Context, *models.Transaction) error
}

type TransactionHandler struct {
	Processor TransactionProcessorIn
}

func Transactions(p TransactionProcessorIn) *TransactionHandler {
	return &TransactionHandler{
		Processor: p,
	}
}

// Handler decodes one transaction event and runs it through the pipeline. Payloads
// that can never succeed are reported as models.ErrInvalidTransaction.
func (h *TransactionHandler) Handler(ctx context.Context, raw []byte) error {
	var txn models.Transaction

	if err := json.Unmarshal(raw, &txn); err != nil {
		logrus.Errorf("Error unmarshalling Transaction: %s", err.Error())
		return fmt.Errorf("%w: %v", models.ErrInvalidTransaction, err)
	}

	if err := txn.Validate(); err != nil {
		logrus.Errorf("Rejecting transaction %s: %s", txn.TransactionID, err.Error())
		return err
	}

	if err := h.Processor.Process(ctx, &txn); err != nil {
		logrus.Errorf("Error processing transaction %s: %s", txn.TransactionID, err.Error())
		return err
	}

	logrus.WithField("transaction_id", txn.TransactionID).Debug("Transaction handled successfully")

	return nil
}
