package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-stream-processor/internal/metrics"
	"github.com/jeffleon2/draftea-stream-processor/internal/models"
	"github.com/jeffleon2/draftea-stream-processor/internal/rules"
	"github.com/sirupsen/logrus"
)

// FraudService scores transactions against the fraud rules, persists every alert
// raised and forwards the severe ones to the notification subsystem.
type FraudService struct {
	Alerts   AlertRepo
	Notifier Notifier
	Rules    ThresholdSource
	Now      func() time.Time
}

func NewFraudService(alerts AlertRepo, notifier Notifier, thresholds ThresholdSource) *FraudService {
	return &FraudService{
		Alerts:   alerts,
		Notifier: notifier,
		Rules:    thresholds,
		Now:      time.Now,
	}
}

// AnalyzeTransaction returns how many alerts were raised for txn. Alerts are persisted
// before any is forwarded; a forwarding failure is logged and never returned.
func (s *FraudService) AnalyzeTransaction(ctx context.Context, txn *models.Transaction, summary *models.CustomerSummary) (int, error) {
	th := s.Rules.Current()
	alerts := rules.Evaluate(txn, summary, th, s.Now())
	if len(alerts) == 0 {
		return 0, nil
	}

	if err := s.Alerts.SaveAll(ctx, alerts); err != nil {
		return 0, fmt.Errorf("save %d fraud alerts for transaction %s: %w", len(alerts), txn.TransactionID, err)
	}

	for _, alert := range alerts {
		metrics.FraudAlertsCreated.WithLabelValues(string(alert.Reason)).Inc()
		logrus.WithFields(logrus.Fields{
			"alert_id":       alert.AlertID,
			"customer_id":    alert.CustomerID,
			"transaction_id": alert.TransactionID,
			"reason":         alert.Reason,
			"severity":       alert.Severity,
		}).Warn("Fraud alert created")

		if !th.ShouldNotify(alert.Severity) {
			continue
		}
		if err := s.Notifier.Notify(ctx, alert); err != nil {
			metrics.AlertsForwarded.WithLabelValues(metrics.ResultFailure).Inc()
			logrus.WithError(err).WithField("alert_id", alert.AlertID).Error("Failed to forward fraud alert")
		}
	}

	return len(alerts), nil
}
