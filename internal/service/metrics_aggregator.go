package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-stream-processor/internal/metrics"
	"github.com/jeffleon2/draftea-stream-processor/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// MetricsSnapshot is a read of the in-window counters that does not reset them.
type MetricsSnapshot struct {
	Transactions int64            `json:"currentTransactionCount"`
	TotalAmount  decimal.Decimal  `json:"currentTotalAmount"`
	Alerts       int64            `json:"currentAlertCount"`
	ByType       map[string]int64 `json:"transactionsByType"`
	ByStatus     map[string]int64 `json:"transactionsByStatus"`
	ByLocation   map[string]int64 `json:"transactionsByLocation"`
}

// HourlySummary is the cross-check read from the durable stores, not from the counters.
type HourlySummary struct {
	Since        time.Time
	Transactions int64
	Amount       decimal.Decimal
	Alerts       int64
}

// MetricsAggregator keeps lock-free counters fed by every processed transaction and
// flushes them into one MetricsWindow per interval. Record may be called from any
// number of goroutines while a flush is running: each event lands in exactly one window.
type MetricsAggregator struct {
	Store           MetricsRepo
	Totals          HistoryTotals
	Alerts          AlertRepo
	Interval        time.Duration
	HourlyInterval  time.Duration
	ShutdownTimeout time.Duration
	Now             func() time.Time

	transactions atomic.Int64
	amountCents  atomic.Int64
	alerts       atomic.Int64
	riskSum      floatCounter
	byType       labelCounters
	byStatus     labelCounters
	byLocation   labelCounters
}

func NewMetricsAggregator(store MetricsRepo, totals HistoryTotals, alerts AlertRepo, interval, hourly, shutdownTimeout time.Duration) *MetricsAggregator {
	return &MetricsAggregator{
		Store:           store,
		Totals:          totals,
		Alerts:          alerts,
		Interval:        interval,
		HourlyInterval:  hourly,
		ShutdownTimeout: shutdownTimeout,
		Now:             time.Now,
	}
}

// Record counts one event. The transaction counter is bumped last: Flush swaps it
// first, so whatever a flush sees counted has all its other fields in place.
func (a *MetricsAggregator) Record(txn *models.Transaction) {
	a.amountCents.Add(toCents(txn.Amount))
	a.byType.inc(string(txn.Type))
	a.byStatus.inc(string(txn.Status))
	if txn.SourceLocation != "" {
		a.byLocation.inc(txn.SourceLocation)
	}
	if txn.RiskScore != nil {
		a.riskSum.add(*txn.RiskScore)
	}
	a.transactions.Add(1)
}

// RecordAlerts adds alerts to the open window. Call it before Record for the same
// event so the alerts never trail their transaction into an idle window.
func (a *MetricsAggregator) RecordAlerts(n int) {
	if n > 0 {
		a.alerts.Add(int64(n))
	}
}

func (a *MetricsAggregator) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Transactions: a.transactions.Load(),
		TotalAmount:  fromCents(a.amountCents.Load()),
		Alerts:       a.alerts.Load(),
		ByType:       a.byType.snapshot(),
		ByStatus:     a.byStatus.snapshot(),
		ByLocation:   a.byLocation.snapshot(),
	}
}

// Flush captures and resets every counter and persists the window starting at
// windowStart. It returns nil when no transaction was recorded since the last flush;
// the other counters are then left untouched and carry into the next window.
func (a *MetricsAggregator) Flush(ctx context.Context, windowStart time.Time) (*models.MetricsWindow, error) {
	count := a.transactions.Swap(0)
	if count == 0 {
		logrus.WithField("window_start", windowStart).Debug("No transactions in window, skipping metrics persistence")
		return nil, nil
	}

	total := fromCents(a.amountCents.Swap(0))
	byType := a.byType.drain()
	byStatus := a.byStatus.drain()
	byLocation := a.byLocation.drain()
	riskSum := a.riskSum.drain()
	alerts := a.alerts.Swap(0)

	window := &models.MetricsWindow{
		ID:                     uuid.NewString(),
		WindowStart:            windowStart,
		WindowEnd:              windowStart.Add(a.Interval),
		TotalTransactions:      count,
		TotalAmount:            total,
		AvgAmount:              averageAmount(total, count),
		TransactionsByType:     byType,
		TransactionsByStatus:   byStatus,
		TransactionsByLocation: byLocation,
		AlertsGenerated:        alerts,
		AvgRiskScore:           riskSum / float64(count),
		CreatedAt:              a.Now(),
	}

	if err := a.Store.SaveWindow(ctx, window); err != nil {
		return nil, fmt.Errorf("save metrics window %s: %w", windowStart.Format(time.RFC3339), err)
	}
	metrics.MetricsWindowsFlushed.Inc()

	logrus.WithFields(logrus.Fields{
		"window_start": windowStart,
		"transactions": count,
		"total_amount": total.StringFixed(2),
		"alerts":       alerts,
	}).Info("Metrics window persisted")

	return window, nil
}

// HourlySummary queries the stores for the totals of the last HourlyInterval.
func (a *MetricsAggregator) HourlySummary(ctx context.Context) (*HourlySummary, error) {
	since := a.Now().Add(-a.HourlyInterval)

	txns, err := a.Totals.CountAllSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("count transactions: %w", err)
	}
	amount, err := a.Totals.SumAllCompletedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("sum transactions: %w", err)
	}
	alerts, err := a.Alerts.CountSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("count alerts: %w", err)
	}

	summary := &HourlySummary{Since: since, Transactions: txns, Amount: amount, Alerts: alerts}
	logrus.WithFields(logrus.Fields{
		"transactions": txns,
		"amount":       amount.StringFixed(2),
		"alerts":       alerts,
	}).Info("Hourly summary")
	return summary, nil
}

// Run flushes on interval boundaries and logs the hourly summary until ctx is done,
// then flushes the partial window with a fresh context bounded by ShutdownTimeout.
func (a *MetricsAggregator) Run(ctx context.Context) {
	first := time.NewTimer(a.untilNextBoundary())
	defer first.Stop()
	hourly := time.NewTicker(a.HourlyInterval)
	defer hourly.Stop()

	var (
		ticker *time.Ticker
		ticks  <-chan time.Time
	)
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			a.flushOnShutdown()
			return
		case <-first.C:
			ticker = time.NewTicker(a.Interval)
			ticks = ticker.C
			a.flushElapsed(ctx)
		case <-ticks:
			a.flushElapsed(ctx)
		case <-hourly.C:
			if _, err := a.HourlySummary(ctx); err != nil {
				logrus.WithError(err).Error("Error generating hourly summary")
			}
		}
	}
}

// flushElapsed persists the window that ended at the boundary just reached.
func (a *MetricsAggregator) flushElapsed(ctx context.Context) {
	end := a.Now().Round(a.Interval)
	if _, err := a.Flush(ctx, end.Add(-a.Interval)); err != nil {
		logrus.WithError(err).Error("Error aggregating metrics")
	}
}

func (a *MetricsAggregator) flushOnShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), a.ShutdownTimeout)
	defer cancel()

	if _, err := a.Flush(ctx, a.Now().Truncate(a.Interval)); err != nil {
		logrus.WithError(err).Error("Error flushing final metrics window")
	}
}

func (a *MetricsAggregator) untilNextBoundary() time.Duration {
	now := a.Now()
	return now.Truncate(a.Interval).Add(a.Interval).Sub(now)
}

func toCents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

func fromCents(c int64) decimal.Decimal {
	return decimal.New(c, -2)
}
