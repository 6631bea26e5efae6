package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-stream-processor/internal/models"
	"github.com/jeffleon2/draftea-stream-processor/internal/service"
	"github.com/jeffleon2/draftea-stream-processor/internal/service/mocks"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)

func completedTxn(id, amount string, ts time.Time) *models.Transaction {
	return &models.Transaction{
		TransactionID:    id,
		CustomerID:       "CUST-1",
		Type:             models.TypePayment,
		Amount:           decimal.RequireFromString(amount),
		Currency:         "USD",
		MerchantCategory: "GROCERY",
		Status:           models.StatusCompleted,
		SourceLocation:   "New York",
		Timestamp:        ts,
	}
}

func newSummaryService(t *testing.T) (*service.SummaryService, *mocks.MockSummaryRepo, *mocks.MockTransactionHistory) {
	repo := mocks.NewMockSummaryRepo(t)
	history := mocks.NewMockTransactionHistory(t)
	svc := service.NewSummaryService(repo, history)
	svc.Now = func() time.Time { return fixedNow }
	return svc, repo, history
}

func expectHistory(history *mocks.MockTransactionHistory, count1h int64, amount1h string, count24h int64, amount24h string) {
	history.EXPECT().MostFrequentMerchantCategory(mock.Anything, "CUST-1").Return("GROCERY", nil).Once()
	history.EXPECT().MostFrequentLocation(mock.Anything, "CUST-1").Return("New York", nil).Once()
	avg := 0.25
	history.EXPECT().AvgRiskScore(mock.Anything, "CUST-1").Return(&avg, nil).Once()
	history.EXPECT().CountSince(mock.Anything, "CUST-1", fixedNow.Add(-time.Hour)).Return(count1h, nil).Once()
	history.EXPECT().SumCompletedSince(mock.Anything, "CUST-1", fixedNow.Add(-time.Hour)).Return(decimal.RequireFromString(amount1h), nil).Once()
	history.EXPECT().CountSince(mock.Anything, "CUST-1", fixedNow.Add(-24*time.Hour)).Return(count24h, nil).Once()
	history.EXPECT().SumCompletedSince(mock.Anything, "CUST-1", fixedNow.Add(-24*time.Hour)).Return(decimal.RequireFromString(amount24h), nil).Once()
}

func TestUpdateSummary_FirstTransactionCreatesSummary(t *testing.T) {
	svc, repo, history := newSummaryService(t)
	ctx := context.Background()
	txn := completedTxn("TXN-1", "125.50", fixedNow.Add(-time.Minute))

	repo.EXPECT().Get(ctx, "CUST-1").Return(nil, nil).Once()
	expectHistory(history, 1, "125.50", 1, "125.50")
	repo.EXPECT().
		Put(ctx, mock.MatchedBy(func(s *models.CustomerSummary) bool {
			return s.CustomerID == "CUST-1" &&
				s.TotalTransactions == 1 &&
				s.TotalAmount.Equal(decimal.RequireFromString("125.50")) &&
				s.AvgAmount.Equal(decimal.RequireFromString("125.50")) &&
				s.LastTransactionTime.Equal(txn.Timestamp) &&
				s.MostFrequentMerchantCategory == "GROCERY" &&
				s.PreferredLocation == "New York" &&
				s.AvgRiskScore != nil && *s.AvgRiskScore == 0.25 &&
				s.TransactionsLast1Hour == 1 &&
				s.TransactionsLast24Hours == 1 &&
				s.UpdatedAt.Equal(fixedNow)
		})).
		Return(nil).
		Once()

	summary, err := svc.UpdateSummary(ctx, txn)

	require.NoError(t, err)
	assert.Equal(t, "125.50", summary.AmountLast1Hour.StringFixed(2))
}

func TestUpdateSummary_IncompleteTransactionOnlyCounts(t *testing.T) {
	svc, repo, history := newSummaryService(t)
	ctx := context.Background()
	existing := models.NewCustomerSummary("CUST-1")
	existing.TotalTransactions = 2
	existing.TotalAmount = decimal.RequireFromString("300.00")
	existing.AvgAmount = decimal.RequireFromString("150.00")
	existing.LastTransactionTime = fixedNow.Add(-2 * time.Hour)

	txn := completedTxn("TXN-3", "999.99", fixedNow.Add(-time.Minute))
	txn.Status = models.StatusFailed

	repo.EXPECT().Get(ctx, "CUST-1").Return(existing, nil).Once()
	expectHistory(history, 1, "0", 3, "300.00")
	repo.EXPECT().Put(ctx, existing).Return(nil).Once()

	summary, err := svc.UpdateSummary(ctx, txn)

	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalTransactions)
	assert.Equal(t, "300.00", summary.TotalAmount.StringFixed(2))
	assert.Equal(t, "150.00", summary.AvgAmount.StringFixed(2))
	assert.Equal(t, txn.Timestamp, summary.LastTransactionTime)
}

func TestUpdateSummary_AverageRoundsHalfUp(t *testing.T) {
	svc, repo, history := newSummaryService(t)
	ctx := context.Background()
	existing := models.NewCustomerSummary("CUST-1")
	existing.TotalTransactions = 1
	existing.TotalAmount = decimal.RequireFromString("0.02")

	repo.EXPECT().Get(ctx, "CUST-1").Return(existing, nil).Once()
	expectHistory(history, 2, "0.05", 2, "0.05")
	repo.EXPECT().Put(ctx, existing).Return(nil).Once()

	summary, err := svc.UpdateSummary(ctx, completedTxn("TXN-4", "0.03", fixedNow))

	require.NoError(t, err)
	// 0.05 / 2 = 0.025
	assert.Equal(t, "0.03", summary.AvgAmount.StringFixed(2))
}

func TestUpdateSummary_OlderEventDoesNotRegressLastTransactionTime(t *testing.T) {
	svc, repo, history := newSummaryService(t)
	ctx := context.Background()
	latest := fixedNow.Add(-time.Minute)
	existing := models.NewCustomerSummary("CUST-1")
	existing.TotalTransactions = 1
	existing.LastTransactionTime = latest

	repo.EXPECT().Get(ctx, "CUST-1").Return(existing, nil).Once()
	expectHistory(history, 2, "20.00", 2, "20.00")
	repo.EXPECT().Put(ctx, existing).Return(nil).Once()

	summary, err := svc.UpdateSummary(ctx, completedTxn("TXN-0", "10.00", latest.Add(-3*time.Hour)))

	require.NoError(t, err)
	assert.Equal(t, latest, summary.LastTransactionTime)
}

func TestUpdateSummary_LoadError(t *testing.T) {
	svc, repo, _ := newSummaryService(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	repo.EXPECT().Get(ctx, "CUST-1").Return(nil, dbErr).Once()

	summary, err := svc.UpdateSummary(ctx, completedTxn("TXN-1", "1.00", fixedNow))

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, dbErr)
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestUpdateSummary_HistoryErrorSkipsSave(t *testing.T) {
	svc, repo, history := newSummaryService(t)
	ctx := context.Background()
	dbErr := errors.New("query timeout")

	repo.EXPECT().Get(ctx, "CUST-1").Return(nil, nil).Once()
	history.EXPECT().MostFrequentMerchantCategory(mock.Anything, "CUST-1").Return("", dbErr).Once()

	_, err := svc.UpdateSummary(ctx, completedTxn("TXN-1", "1.00", fixedNow))

	assert.ErrorIs(t, err, dbErr)
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestUpdateSummary_SaveError(t *testing.T) {
	svc, repo, history := newSummaryService(t)
	ctx := context.Background()
	dbErr := errors.New("deadlock detected")

	repo.EXPECT().Get(ctx, "CUST-1").Return(nil, nil).Once()
	expectHistory(history, 1, "1.00", 1, "1.00")
	repo.EXPECT().Put(ctx, mock.Anything).Return(dbErr).Once()

	_, err := svc.UpdateSummary(ctx, completedTxn("TXN-1", "1.00", fixedNow))

	assert.ErrorIs(t, err, dbErr)
}

// memorySummaries keeps summaries in a map and reports an empty history.
type memorySummaries struct {
	byID map[string]*models.CustomerSummary
}

func (m *memorySummaries) Get(_ context.Context, id string) (*models.CustomerSummary, error) {
	return m.byID[id], nil
}

func (m *memorySummaries) Put(_ context.Context, s *models.CustomerSummary) error {
	m.byID[s.CustomerID] = s
	return nil
}

func (m *memorySummaries) CountSince(context.Context, string, time.Time) (int64, error) {
	return 0, nil
}

func (m *memorySummaries) SumCompletedSince(context.Context, string, time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (m *memorySummaries) MostFrequentMerchantCategory(context.Context, string) (string, error) {
	return "", nil
}

func (m *memorySummaries) MostFrequentLocation(context.Context, string) (string, error) {
	return "", nil
}

func (m *memorySummaries) AvgRiskScore(context.Context, string) (*float64, error) {
	return nil, nil
}

func newMemorySummaryService() *service.SummaryService {
	store := &memorySummaries{byID: map[string]*models.CustomerSummary{}}
	svc := service.NewSummaryService(store, store)
	svc.Now = func() time.Time { return fixedNow }
	return svc
}

func TestUpdateSummary_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("running average is completed total over count rounded half-up", prop.ForAll(
		func(cents []int64) bool {
			svc := newMemorySummaryService()
			var sum int64
			for i, c := range cents {
				sum += c
				n := int64(i + 1)
				txn := completedTxn("TXN", "0", fixedNow)
				txn.Amount = decimal.New(c, -2)

				summary, err := svc.UpdateSummary(context.Background(), txn)
				if err != nil {
					return false
				}
				wantCents := (2*sum + n) / (2 * n)
				if summary.AvgAmount.Shift(2).IntPart() != wantCents || summary.TotalAmount.Shift(2).IntPart() != sum {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int64Range(0, 10_000_000)),
	))

	properties.Property("last transaction time never moves backwards", prop.ForAll(
		func(offsets []int64) bool {
			svc := newMemorySummaryService()
			var latest time.Time
			for _, off := range offsets {
				ts := fixedNow.Add(-time.Duration(off) * time.Second)
				if ts.After(latest) {
					latest = ts
				}
				summary, err := svc.UpdateSummary(context.Background(), completedTxn("TXN", "1.00", ts))
				if err != nil || !summary.LastTransactionTime.Equal(latest) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int64Range(0, 86_400)),
	))

	properties.TestingRun(t)
}
