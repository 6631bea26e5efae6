package service_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-stream-processor/internal/models"
	"github.com/jeffleon2/draftea-stream-processor/internal/service"
	"github.com/jeffleon2/draftea-stream-processor/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memoryWindows struct {
	mu      sync.Mutex
	windows []*models.MetricsWindow
}

func (m *memoryWindows) SaveWindow(_ context.Context, w *models.MetricsWindow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.windows = append(m.windows, w)
	return nil
}

func (m *memoryWindows) saved() []*models.MetricsWindow {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*models.MetricsWindow(nil), m.windows...)
}

func newAggregator(store service.MetricsRepo) *service.MetricsAggregator {
	a := service.NewMetricsAggregator(store, nil, nil, time.Minute, time.Hour, time.Second)
	a.Now = func() time.Time { return fixedNow }
	return a
}

func event(typ models.TransactionType, status models.TransactionStatus, location, amount string, risk *float64) *models.Transaction {
	return &models.Transaction{
		TransactionID:  "TXN",
		CustomerID:     "CUST-1",
		Type:           typ,
		Status:         status,
		SourceLocation: location,
		Amount:         decimal.RequireFromString(amount),
		RiskScore:      risk,
		Timestamp:      fixedNow,
	}
}

func TestFlush_EmptyWindowIsNotPersisted(t *testing.T) {
	store := mocks.NewMockMetricsRepo(t)
	agg := newAggregator(store)
	agg.RecordAlerts(3)

	window, err := agg.Flush(context.Background(), fixedNow.Truncate(time.Minute))

	require.NoError(t, err)
	assert.Nil(t, window)
	store.AssertNotCalled(t, "SaveWindow", mock.Anything, mock.Anything)
	assert.Equal(t, int64(3), agg.Snapshot().Alerts)
}

func TestFlush_IdleWindowCarriesPendingAlertsForward(t *testing.T) {
	store := &memoryWindows{}
	agg := newAggregator(store)
	start := fixedNow.Truncate(time.Minute)

	agg.RecordAlerts(1)
	idle, err := agg.Flush(context.Background(), start)
	require.NoError(t, err)
	require.Nil(t, idle)

	agg.Record(event(models.TypePayment, models.StatusCompleted, "Bogota", "250.00", nil))
	window, err := agg.Flush(context.Background(), start.Add(time.Minute))

	require.NoError(t, err)
	require.NotNil(t, window)
	assert.Equal(t, int64(1), window.TotalTransactions)
	assert.Equal(t, int64(1), window.AlertsGenerated)
	assert.Equal(t, "250.00", window.TotalAmount.StringFixed(2))
	assert.Equal(t, map[string]int64{"PAYMENT": 1}, window.TransactionsByType)
}

func TestFlush_CapturesRecordedEvents(t *testing.T) {
	store := mocks.NewMockMetricsRepo(t)
	agg := newAggregator(store)
	start := fixedNow.Truncate(time.Minute)
	low, high := 0.2, 0.9

	agg.Record(event(models.TypePayment, models.StatusCompleted, "New York", "100.00", &low))
	agg.Record(event(models.TypePayment, models.StatusFailed, "New York", "50.25", nil))
	agg.Record(event(models.TypeTransfer, models.StatusCompleted, "", "0.01", &high))
	agg.RecordAlerts(2)
	agg.RecordAlerts(0)

	store.EXPECT().
		SaveWindow(mock.Anything, mock.MatchedBy(func(w *models.MetricsWindow) bool {
			return w.ID != "" &&
				w.WindowStart.Equal(start) &&
				w.WindowEnd.Equal(start.Add(time.Minute)) &&
				w.TotalTransactions == 3 &&
				w.TotalAmount.StringFixed(2) == "150.26" &&
				w.AvgAmount.StringFixed(2) == "50.09" &&
				w.AlertsGenerated == 2 &&
				w.CreatedAt.Equal(fixedNow)
		})).
		Return(nil).
		Once()

	window, err := agg.Flush(context.Background(), start)

	require.NoError(t, err)
	require.NotNil(t, window)
	assert.Equal(t, map[string]int64{"PAYMENT": 2, "TRANSFER": 1}, window.TransactionsByType)
	assert.Equal(t, map[string]int64{"COMPLETED": 2, "FAILED": 1}, window.TransactionsByStatus)
	assert.Equal(t, map[string]int64{"New York": 2}, window.TransactionsByLocation)
	assert.InDelta(t, (0.2+0.9)/3, window.AvgRiskScore, 1e-9)

	next, err := agg.Flush(context.Background(), start.Add(time.Minute))
	require.NoError(t, err)
	assert.Nil(t, next, "counters reset by the previous flush")
}

func TestFlush_ZeroCountLabelsAreOmitted(t *testing.T) {
	store := &memoryWindows{}
	agg := newAggregator(store)

	agg.Record(event(models.TypeRefund, models.StatusPending, "Paris", "10.00", nil))
	_, err := agg.Flush(context.Background(), fixedNow)
	require.NoError(t, err)

	agg.Record(event(models.TypeDeposit, models.StatusCompleted, "Berlin", "10.00", nil))
	window, err := agg.Flush(context.Background(), fixedNow.Add(time.Minute))
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{"DEPOSIT": 1}, window.TransactionsByType)
	assert.Equal(t, map[string]int64{"COMPLETED": 1}, window.TransactionsByStatus)
	assert.Equal(t, map[string]int64{"Berlin": 1}, window.TransactionsByLocation)
}

func TestFlush_AverageOfNEvents(t *testing.T) {
	for _, n := range []int{1, 7, 250} {
		t.Run(fmt.Sprintf("%d events", n), func(t *testing.T) {
			store := &memoryWindows{}
			agg := newAggregator(store)
			total := decimal.Zero
			for i := 0; i < n; i++ {
				amount := decimal.New(int64(rand.IntN(1_000_000)), -2)
				total = total.Add(amount)
				agg.Record(event(models.TypePayment, models.StatusCompleted, "Austin", amount.StringFixed(2), nil))
			}

			window, err := agg.Flush(context.Background(), fixedNow)

			require.NoError(t, err)
			assert.Equal(t, int64(n), window.TotalTransactions)
			assert.True(t, total.Equal(window.TotalAmount))
			assert.True(t, total.DivRound(decimal.NewFromInt(int64(n)), 2).Equal(window.AvgAmount))
		})
	}
}

func TestFlush_SaveErrorIsReturned(t *testing.T) {
	store := mocks.NewMockMetricsRepo(t)
	agg := newAggregator(store)
	agg.Record(event(models.TypePayment, models.StatusCompleted, "Austin", "1.00", nil))

	store.EXPECT().SaveWindow(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	_, err := agg.Flush(context.Background(), fixedNow)

	assert.ErrorContains(t, err, "disk full")
}

func TestFlush_ConcurrentRecordingLosesNothing(t *testing.T) {
	const (
		workers = 8
		events  = 10_000
	)

	for round := 0; round < 5; round++ {
		store := &memoryWindows{}
		agg := newAggregator(store)

		stop := make(chan struct{})
		flusherDone := make(chan struct{})
		go func() {
			defer close(flusherDone)
			for i := 0; ; i++ {
				select {
				case <-stop:
					return
				default:
				}
				_, _ = agg.Flush(context.Background(), fixedNow.Add(time.Duration(i)*time.Minute))
				time.Sleep(time.Duration(rand.IntN(200)) * time.Microsecond)
			}
		}()

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for i := 0; i < events/workers; i++ {
					agg.RecordAlerts(1)
					agg.Record(event(models.TypePayment, models.StatusCompleted, fmt.Sprintf("city-%d", w), "1.00", nil))
				}
			}(w)
		}
		wg.Wait()
		close(stop)
		<-flusherDone

		_, err := agg.Flush(context.Background(), fixedNow.Add(-time.Minute))
		require.NoError(t, err)

		var count, alerts, byLocation int64
		total := decimal.Zero
		for _, w := range store.saved() {
			count += w.TotalTransactions
			alerts += w.AlertsGenerated
			total = total.Add(w.TotalAmount)
			for _, n := range w.TransactionsByLocation {
				byLocation += n
			}
		}
		assert.Equal(t, int64(events), count, "round %d", round)
		assert.Equal(t, int64(events), alerts, "round %d", round)
		assert.Equal(t, int64(events), byLocation, "round %d", round)
		assert.Equal(t, "10000.00", total.StringFixed(2), "round %d", round)
	}
}

func TestFlush_IdleGapsLoseNothing(t *testing.T) {
	const (
		workers = 8
		events  = 20_000
	)

	store := &memoryWindows{}
	agg := newAggregator(store)

	stop := make(chan struct{})
	flusherDone := make(chan struct{})
	go func() {
		defer close(flusherDone)
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			_, _ = agg.Flush(context.Background(), fixedNow.Add(time.Duration(i)*time.Minute))
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < events/workers; i++ {
				agg.RecordAlerts(1)
				agg.Record(event(models.TypeTransfer, models.StatusPending, "Quito", "1.00", nil))
				if rand.IntN(100) == 0 {
					time.Sleep(time.Microsecond)
				}
			}
		}()
	}
	wg.Wait()
	close(stop)
	<-flusherDone

	_, err := agg.Flush(context.Background(), fixedNow.Add(-time.Minute))
	require.NoError(t, err)

	var count, alerts, byStatus int64
	total := decimal.Zero
	for _, w := range store.saved() {
		count += w.TotalTransactions
		alerts += w.AlertsGenerated
		total = total.Add(w.TotalAmount)
		byStatus += w.TransactionsByStatus["PENDING"]
	}
	assert.Equal(t, int64(events), count)
	assert.Equal(t, int64(events), alerts)
	assert.Equal(t, int64(events), byStatus)
	assert.Equal(t, "20000.00", total.StringFixed(2))
	left := agg.Snapshot()
	assert.Zero(t, left.Transactions)
	assert.Zero(t, left.Alerts)
}

func TestSnapshot_DoesNotReset(t *testing.T) {
	agg := newAggregator(&memoryWindows{})
	agg.Record(event(models.TypeWithdrawal, models.StatusCompleted, "Lima", "20.50", nil))
	agg.RecordAlerts(1)

	first := agg.Snapshot()
	second := agg.Snapshot()

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), first.Transactions)
	assert.Equal(t, "20.50", first.TotalAmount.StringFixed(2))
	assert.Equal(t, map[string]int64{"WITHDRAWAL": 1}, first.ByType)
	assert.Equal(t, map[string]int64{"Lima": 1}, first.ByLocation)
}

func TestHourlySummary_ReadsDurableTotals(t *testing.T) {
	totals := mocks.NewMockHistoryTotals(t)
	alerts := mocks.NewMockAlertRepo(t)
	agg := service.NewMetricsAggregator(&memoryWindows{}, totals, alerts, time.Minute, time.Hour, time.Second)
	agg.Now = func() time.Time { return fixedNow }
	since := fixedNow.Add(-time.Hour)
	ctx := context.Background()

	totals.EXPECT().CountAllSince(ctx, since).Return(int64(1200), nil).Once()
	totals.EXPECT().SumAllCompletedSince(ctx, since).Return(decimal.RequireFromString("98765.43"), nil).Once()
	alerts.EXPECT().CountSince(ctx, since).Return(int64(17), nil).Once()

	summary, err := agg.HourlySummary(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(1200), summary.Transactions)
	assert.Equal(t, "98765.43", summary.Amount.StringFixed(2))
	assert.Equal(t, int64(17), summary.Alerts)
}

func TestHourlySummary_Error(t *testing.T) {
	totals := mocks.NewMockHistoryTotals(t)
	agg := service.NewMetricsAggregator(&memoryWindows{}, totals, mocks.NewMockAlertRepo(t), time.Minute, time.Hour, time.Second)

	totals.EXPECT().CountAllSince(mock.Anything, mock.Anything).Return(int64(0), errors.New("timeout")).Once()

	_, err := agg.HourlySummary(context.Background())

	assert.ErrorContains(t, err, "timeout")
}

func TestRun_FlushesPartialWindowOnShutdown(t *testing.T) {
	store := &memoryWindows{}
	agg := service.NewMetricsAggregator(store, nil, nil, time.Hour, 24*time.Hour, time.Second)
	agg.Now = func() time.Time { return fixedNow }
	agg.Record(event(models.TypePayment, models.StatusCompleted, "Austin", "5.00", nil))
	agg.Record(event(models.TypePayment, models.StatusCompleted, "Austin", "7.00", nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		agg.Run(ctx)
	}()
	cancel()
	<-done

	windows := store.saved()
	require.Len(t, windows, 1)
	assert.Equal(t, int64(2), windows[0].TotalTransactions)
	assert.Equal(t, fixedNow.Truncate(time.Hour), windows[0].WindowStart)
}

func TestRun_FlushesOnInterval(t *testing.T) {
	store := &memoryWindows{}
	agg := service.NewMetricsAggregator(store, nil, nil, 20*time.Millisecond, time.Hour, time.Second)
	agg.Record(event(models.TypePayment, models.StatusCompleted, "Austin", "5.00", nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		agg.Run(ctx)
	}()

	assert.Eventually(t, func() bool { return len(store.saved()) == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	windows := store.saved()
	require.Len(t, windows, 1)
	assert.Equal(t, windows[0].WindowStart.Add(20*time.Millisecond), windows[0].WindowEnd)
}
