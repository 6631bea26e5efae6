package subscriber

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-stream-processor/config"
	"github.com/jeffleon2/draftea-stream-processor/internal/metrics"
	"github.com/jeffleon2/draftea-stream-processor/internal/models"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const fetchErrorPause = time.Second

// MessageReader is the part of *kafka.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type DLQPublisher interface {
	Publish(ctx context.Context, topic, key string, message interface{}) error
}

// Handler processes one message value. Errors wrapping models.ErrInvalidTransaction
// are not retried.
type Handler func(ctx context.Context, value []byte) error

// KafkaConsumer runs one reader per worker in the same consumer group, so each
// partition (and therefore each customer) is handled by a single goroutine in order.
type KafkaConsumer struct {
	Readers      []MessageReader
	DLQPublisher DLQPublisher
	DLQTopic     string
	RetryConfig  config.RetryConfig
}

func NewTransactionConsumer(
	brokers []string,
	topic string,
	groupID string,
	workers int,
	dlq DLQPublisher,
	dlqTopic string,
	retryConfig config.RetryConfig,
) *KafkaConsumer {
	if workers < 1 {
		workers = 1
	}
	if retryConfig.MaxAttempts < 1 {
		retryConfig.MaxAttempts = 1
	}

	readers := make([]MessageReader, workers)
	for i := range readers {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: dlq,
		DLQTopic:     dlqTopic,
		RetryConfig:  retryConfig,
	}
}

// Listen blocks until ctx is cancelled and every reader has finished its in-flight
// message, then closes the readers.
func (c *KafkaConsumer) Listen(ctx context.Context, handler Handler) {
	var wg sync.WaitGroup
	for _, reader := range c.Readers {
		wg.Add(1)
		go func(r MessageReader) {
			defer wg.Done()
			c.consume(ctx, r, handler)
		}(reader)
	}
	wg.Wait()

	for _, r := range c.Readers {
		if err := r.Close(); err != nil {
			logrus.WithError(err).Warn("Error closing Kafka reader")
		}
	}
	logrus.Info("Kafka consumer stopped")
}

func (c *KafkaConsumer) consume(ctx context.Context, r MessageReader, handler Handler) {
	for {
		msg, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logrus.WithError(err).Error("Kafka fetch error")
			select {
			case <-time.After(fetchErrorPause):
				continue
			case <-ctx.Done():
				return
			}
		}

		if !c.processMessage(ctx, msg, handler) {
			return
		}

		if err := r.CommitMessages(context.WithoutCancel(ctx), msg); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"partition": msg.Partition,
				"offset":    msg.Offset,
			}).Error("Error committing Kafka offset")
		}
	}
}

// processMessage reports whether msg is done with and may be committed. It is not
// done when shutdown interrupts the retries; the message is then redelivered.
func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message, handler Handler) bool {
	var lastErr error
	attempts := 0

	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		attempts++
		lastErr = handler(context.WithoutCancel(ctx), msg.Value)
		if lastErr == nil {
			metrics.ConsumerMessages.WithLabelValues(metrics.ResultSuccess).Inc()
			return true
		}
		if errors.Is(lastErr, models.ErrInvalidTransaction) || attempt == c.RetryConfig.MaxAttempts-1 {
			break
		}

		backoff := c.RetryConfig.Backoff(attempt)
		metrics.ConsumerMessages.WithLabelValues(metrics.ResultRetried).Inc()
		logrus.Warnf("Handler error, attempt %d/%d: %v. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, lastErr, backoff)

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return false
		}
	}

	logrus.Errorf("Message failed after %d attempts: topic=%s, key=%s", attempts, msg.Topic, string(msg.Key))
	metrics.ConsumerMessages.WithLabelValues(metrics.ResultDLQ).Inc()
	c.sendToDLQ(ctx, msg, lastErr, attempts)
	return true
}

func (c *KafkaConsumer) sendToDLQ(ctx context.Context, msg kafka.Message, cause error, attempts int) {
	if c.DLQPublisher == nil {
		return
	}

	dlqMessage := models.DLQMessage{
		OriginalTopic: msg.Topic,
		Key:           string(msg.Key),
		Value:         string(msg.Value),
		Error:         cause.Error(),
		Timestamp:     time.Now().UTC(),
		Attempts:      attempts,
	}
	err := c.DLQPublisher.Publish(context.WithoutCancel(ctx), c.DLQTopic, dlqMessage.Key, dlqMessage)
	if err != nil {
		logrus.Errorf("Failed to send message to DLQ: %v", err)
		return
	}
	logrus.Infof("Message sent to DLQ: original topic=%s, key=%s", msg.Topic, string(msg.Key))
}
