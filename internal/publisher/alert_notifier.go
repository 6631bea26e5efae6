package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jeffleon2/draftea-stream-processor/internal/metrics"
	"github.com/jeffleon2/draftea-stream-processor/internal/models"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// AlertNotifier forwards fraud alerts to the notification topic keyed by customer id.
// Writes are asynchronous and never retried. Delivery outcomes are counted once the
// writer reports them; failures are only logged.
type AlertNotifier struct {
	Writer MessageWriter
}

func NewAlertNotifier(brokers []string, topic string) *AlertNotifier {
	return &AlertNotifier{
		Writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			Async:        true,
			RequiredAcks: kafka.RequireOne,
			Completion:   logDelivery,
		},
	}
}

func (n *AlertNotifier) Notify(ctx context.Context, alert models.FraudAlert) error {
	data, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("error marshaling alert %s: %w", alert.AlertID, err)
	}

	return n.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(alert.CustomerID),
		Value: data,
	})
}

func (n *AlertNotifier) Close() error {
	return n.Writer.Close()
}

func logDelivery(messages []kafka.Message, err error) {
	if err == nil {
		metrics.AlertsForwarded.WithLabelValues(metrics.ResultSuccess).Add(float64(len(messages)))
		return
	}
	metrics.AlertsForwarded.WithLabelValues(metrics.ResultFailure).Add(float64(len(messages)))
	for _, m := range messages {
		logrus.WithError(err).WithField("customer_id", string(m.Key)).Error("Fraud alert delivery failed")
	}
}
